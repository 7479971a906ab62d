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

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"

	"github.com/addrgap/addrgap/pkg/addrspace"
	"github.com/addrgap/addrgap/pkg/inventory"
	"github.com/addrgap/addrgap/pkg/output"
	"github.com/addrgap/addrgap/pkg/report"
)

type gapsOptions struct {
	containers   []string
	subnets      []string
	outputFormat string
}

func newGapsCommand(_ context.Context) *cobra.Command {
	opts := &gapsOptions{}

	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "Compute unused ranges for prefixes supplied on the command line",
		Long: `Compute which portions of one or more container prefixes are not covered
by the given subnet prefixes, without contacting Azure. Subnets are matched
against the container they overlap, so disjoint containers may share one
subnet list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			return opts.run(verbose)
		},
	}

	cmd.Flags().StringArrayVar(&opts.containers, "container", nil,
		"Container CIDR whose unused ranges are reported (repeatable)")
	cmd.Flags().StringArrayVar(&opts.subnets, "subnet", nil,
		"Subnet CIDR covering part of a container (repeatable)")
	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", outputText,
		"Output format: text or json")

	utilruntime.Must(cmd.MarkFlagRequired("container"))
	return cmd
}

func (o *gapsOptions) run(verbose bool) error {
	if o.outputFormat != outputText && o.outputFormat != outputJSON {
		return fmt.Errorf("unsupported output format %q", o.outputFormat)
	}

	// Command-line prefixes are rejected upfront, unlike inventory records
	// where a malformed entry is logged and skipped.
	for _, cidr := range append(append([]string{}, o.containers...), o.subnets...) {
		if _, err := addrspace.ParsePrefix(cidr); err != nil {
			return err
		}
	}

	vnet := inventory.NewLocalVirtualNetwork("command line", o.containers, o.subnets)
	reports := report.Build([]inventory.VirtualNetwork{vnet})

	if o.outputFormat == outputJSON {
		return report.RenderJSON(os.Stdout, reports)
	}
	report.Render(output.NewPrinter(verbose), reports)
	return nil
}
