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

// Package report runs the gap computation over inventory records and
// renders the result for terminals and machines.
package report

import (
	"net/netip"

	"k8s.io/klog/v2"

	"github.com/addrgap/addrgap/pkg/addrspace"
	"github.com/addrgap/addrgap/pkg/inventory"
)

// PrefixGaps lists the uncovered ranges within one declared address prefix
// of a virtual network.
type PrefixGaps struct {
	Prefix string          `json:"prefix"`
	Gaps   []addrspace.Gap `json:"gaps"`
}

// VNet couples an inventory record with the gaps of each of its address
// prefixes.
type VNet struct {
	inventory.VirtualNetwork
	Gaps []PrefixGaps `json:"gaps"`
}

// Build runs the gap computation for every address prefix of every virtual
// network. A prefix that fails to parse, container and subnet side alike, is
// logged and skipped: a single malformed record must not void the report.
func Build(vnets []inventory.VirtualNetwork) []VNet {
	out := make([]VNet, 0, len(vnets))
	for i := range vnets {
		out = append(out, build(&vnets[i]))
	}
	return out
}

func build(vnet *inventory.VirtualNetwork) VNet {
	var subnets []netip.Prefix
	for _, subnet := range vnet.Subnets {
		for _, cidr := range subnet.AddressPrefixes {
			prefix, err := addrspace.ParsePrefix(cidr)
			if err != nil {
				klog.Warningf("VNet %q: skipping prefix of subnet %q: %v", vnet.Name, subnet.Name, err)
				continue
			}
			subnets = append(subnets, prefix)
		}
	}

	out := VNet{VirtualNetwork: *vnet}
	for _, cidr := range vnet.AddressPrefixes {
		container, err := addrspace.ParsePrefix(cidr)
		if err != nil {
			klog.Warningf("VNet %q: skipping address prefix: %v", vnet.Name, err)
			continue
		}

		gaps, err := addrspace.FindGaps(container, subnets)
		if err != nil {
			klog.Warningf("VNet %q: gap computation failed for %q: %v", vnet.Name, cidr, err)
			continue
		}

		out.Gaps = append(out.Gaps, PrefixGaps{Prefix: container.String(), Gaps: gaps})
	}
	return out
}
