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

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"net/netip"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/addrgap/addrgap/pkg/output"
)

// Render prints the report through printer, one section per virtual network.
func Render(printer *output.Printer, vnets []VNet) {
	if len(vnets) == 0 {
		printer.Warning.Println("No virtual networks found")
		return
	}
	for i := range vnets {
		render(printer, &vnets[i])
	}
}

// RenderJSON writes the report to w as an indented JSON document.
func RenderJSON(w io.Writer, vnets []VNet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(vnets)
}

func render(printer *output.Printer, vnet *VNet) {
	title := vnet.Name
	if vnet.Location != "" {
		title = fmt.Sprintf("%s (%s)", vnet.Name, vnet.Location)
	}
	printer.Section.Println(title)

	if vnet.SubscriptionName != "" {
		printer.Info.Printfln("Subscription: %s (%s)", vnet.SubscriptionName, vnet.SubscriptionID)
	}
	if vnet.SubscriptionResourceID != "" {
		printer.Info.Printfln("Subscription ID: %s", vnet.SubscriptionResourceID)
	}
	if len(vnet.SubscriptionTags) > 0 {
		printer.Info.Printfln("Subscription tags: %s", formatTags(vnet.SubscriptionTags))
	}
	printer.Info.Printfln("Address prefixes: %s", strings.Join(vnet.AddressPrefixes, ", "))
	printer.Info.Printfln("Total addresses: %s", vnet.AddressCount)
	if len(vnet.Tags) > 0 {
		printer.Info.Printfln("Tags: %s", formatTags(vnet.Tags))
	}

	if len(vnet.Subnets) > 0 {
		items := make([]pterm.BulletListItem, 0, len(vnet.Subnets))
		for _, subnet := range vnet.Subnets {
			items = append(items, pterm.BulletListItem{
				Level: 1,
				Text: fmt.Sprintf("%s: %s (%s addresses)",
					subnet.Name, strings.Join(subnet.AddressPrefixes, ", "), subnet.AddressCount),
			})
		}
		printer.Info.Println("Subnets:")
		// Render never fails when writing to stdout.
		_ = pterm.DefaultBulletList.WithItems(items).Render()
	}

	for _, prefixGaps := range vnet.Gaps {
		if len(prefixGaps.Gaps) == 0 {
			printer.Success.Printfln("%s: fully allocated", prefixGaps.Prefix)
			continue
		}

		items := make([]pterm.BulletListItem, 0, len(prefixGaps.Gaps))
		for _, gap := range prefixGaps.Gaps {
			items = append(items, pterm.BulletListItem{
				Level: 1,
				Text:  fmt.Sprintf("%s [%s]", gap.Interval, joinPrefixes(gap.Prefixes)),
			})
		}
		printer.Warning.Printfln("Unused ranges in %s:", prefixGaps.Prefix)
		_ = pterm.DefaultBulletList.WithItems(items).Render()
	}
}

func joinPrefixes(prefixes []netip.Prefix) string {
	texts := make([]string, len(prefixes))
	for i, prefix := range prefixes {
		texts[i] = prefix.String()
	}
	return strings.Join(texts, ", ")
}

func formatTags(tags map[string]string) string {
	pairs := make([]string, 0, len(tags))
	for k, v := range tags {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ", ")
}
