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

package inventory

// NewLocalVirtualNetwork assembles a VirtualNetwork record from
// caller-supplied prefixes, outside any Azure inventory. It feeds the same
// report pipeline used for scanned networks.
func NewLocalVirtualNetwork(name string, addressPrefixes, subnetPrefixes []string) VirtualNetwork {
	vnet := VirtualNetwork{
		Name:            name,
		AddressPrefixes: addressPrefixes,
		AddressCount:    countPrefixes(addressPrefixes),
	}
	if len(subnetPrefixes) > 0 {
		vnet.Subnets = []Subnet{{
			Name:            "declared",
			AddressPrefixes: subnetPrefixes,
			AddressCount:    countPrefixes(subnetPrefixes),
		}}
	}
	return vnet
}
