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

	"github.com/addrgap/addrgap/pkg/inventory"
	"github.com/addrgap/addrgap/pkg/output"
	"github.com/addrgap/addrgap/pkg/report"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type reportOptions struct {
	subscriptionID string
	outputFormat   string
}

func newReportCommand(ctx context.Context) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Scan Azure and report unused address ranges per virtual network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			return opts.run(ctx, verbose)
		},
	}

	cmd.Flags().StringVar(&opts.subscriptionID, "subscription-id", "",
		"Restrict the scan to the subscription with this ID (optional)")
	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", outputText,
		"Output format: text or json")
	return cmd
}

func (o *reportOptions) run(ctx context.Context, verbose bool) error {
	if o.outputFormat != outputText && o.outputFormat != outputJSON {
		return fmt.Errorf("unsupported output format %q", o.outputFormat)
	}

	printer := output.NewPrinter(verbose)

	client, err := inventory.NewClient()
	printer.CheckErr(err)

	spinner := printer.StartSpinner("Listing subscriptions")
	subscriptions, err := client.Subscriptions(ctx)
	printer.CheckErr(err)

	if o.subscriptionID != "" {
		subscriptions = filterSubscriptions(subscriptions, o.subscriptionID)
		if len(subscriptions) == 0 {
			printer.CheckErr(fmt.Errorf("no visible subscription with ID %q", o.subscriptionID))
		}
	}

	var vnets []inventory.VirtualNetwork
	for _, sub := range subscriptions {
		spinner.UpdateText(fmt.Sprintf("Scanning subscription %q", sub.DisplayName))
		nets, err := client.VirtualNetworks(ctx, sub)
		printer.CheckErr(err)
		vnets = append(vnets, nets...)
	}
	spinner.Success(fmt.Sprintf("Found %d virtual networks across %d subscriptions",
		len(vnets), len(subscriptions)))

	reports := report.Build(vnets)
	if o.outputFormat == outputJSON {
		return report.RenderJSON(os.Stdout, reports)
	}
	report.Render(printer, reports)
	return nil
}

func filterSubscriptions(subscriptions []inventory.Subscription, id string) []inventory.Subscription {
	var out []inventory.Subscription
	for _, sub := range subscriptions {
		if sub.SubscriptionID == id {
			out = append(out, sub)
		}
	}
	return out
}
