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

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"k8s.io/klog/v2"

	"github.com/addrgap/addrgap/pkg/addrspace"
)

// VirtualNetworks lists all the virtual networks of a subscription,
// flattening each into a VirtualNetwork record.
func (c *Client) VirtualNetworks(ctx context.Context, sub Subscription) ([]VirtualNetwork, error) {
	client, err := armnetwork.NewVirtualNetworksClient(sub.SubscriptionID, c.cred, nil)
	if err != nil {
		return nil, fmt.Errorf("creating virtual networks client: %w", err)
	}

	var vnets []VirtualNetwork
	pager := client.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing virtual networks of subscription %q: %w", sub.SubscriptionID, err)
		}
		for _, vnet := range page.Value {
			vnets = append(vnets, newVirtualNetwork(sub, vnet))
		}
	}

	klog.V(2).Infof("Subscription %q: found %d virtual networks", sub.DisplayName, len(vnets))
	return vnets, nil
}

func newVirtualNetwork(sub Subscription, vnet *armnetwork.VirtualNetwork) VirtualNetwork {
	out := VirtualNetwork{
		SubscriptionID:         sub.SubscriptionID,
		SubscriptionResourceID: sub.ID,
		SubscriptionName:       sub.DisplayName,
		SubscriptionTags:       sub.Tags,
		TenantID:               sub.TenantID,
		Name:                   deref(vnet.Name),
		Location:               deref(vnet.Location),
		Tags:                   derefTags(vnet.Tags),
	}

	if vnet.Properties != nil {
		if vnet.Properties.AddressSpace != nil {
			out.AddressPrefixes = derefSlice(vnet.Properties.AddressSpace.AddressPrefixes)
		}
		for _, subnet := range vnet.Properties.Subnets {
			out.Subnets = append(out.Subnets, newSubnet(subnet))
		}
	}

	out.AddressCount = countPrefixes(out.AddressPrefixes)
	return out
}

func newSubnet(subnet *armnetwork.Subnet) Subnet {
	out := Subnet{Name: deref(subnet.Name)}

	if subnet.Properties != nil {
		// Azure populates either the plural or the singular prefix field.
		out.AddressPrefixes = derefSlice(subnet.Properties.AddressPrefixes)
		if len(out.AddressPrefixes) == 0 && subnet.Properties.AddressPrefix != nil {
			out.AddressPrefixes = []string{*subnet.Properties.AddressPrefix}
		}
	}

	out.AddressCount = countPrefixes(out.AddressPrefixes)
	return out
}

// countPrefixes sums the address cardinality of the given CIDRs. An entry
// that fails to parse is logged and counted as zero.
func countPrefixes(cidrs []string) *big.Int {
	total := new(big.Int)
	for _, cidr := range cidrs {
		count, err := addrspace.CountCIDR(cidr)
		if err != nil {
			klog.Warningf("Skipping address count: %v", err)
			continue
		}
		total.Add(total, count)
	}
	return total
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefSlice(in []*string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func derefTags(in map[string]*string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = deref(v)
	}
	return out
}
