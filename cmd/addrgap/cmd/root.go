// Copyright 2024-2025 The Addrgap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd contains the addrgap commands.
package cmd

import (
	"context"
	"flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

const shortHelp = "Report the unused address space of Azure virtual networks"

const longHelp = `addrgap enumerates the Azure subscriptions visible to the current
credentials, lists every virtual network, and reports which portions of each
declared address prefix are not covered by any subnet, both as inclusive
address ranges and as the minimal CIDR blocks covering them.

The gap computation is also available offline through "addrgap gaps", with
container and subnet prefixes supplied on the command line.`

// NewRootCommand initializes the tree of commands.
func NewRootCommand(ctx context.Context) *cobra.Command {
	// rootCmd represents the base command when called without any subcommands.
	var rootCmd = &cobra.Command{
		Use:   "addrgap",
		Short: shortHelp,
		Long:  longHelp,
	}

	flagset := flag.NewFlagSet("klog", flag.PanicOnError)
	klog.InitFlags(flagset)
	rootCmd.PersistentFlags().AddGoFlagSet(flagset)
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose output")

	rootCmd.AddCommand(newReportCommand(ctx))
	rootCmd.AddCommand(newGapsCommand(ctx))
	rootCmd.AddCommand(newVersionCommand(ctx))
	return rootCmd
}
