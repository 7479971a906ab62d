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
	"bytes"
	"encoding/json"
	"net/netip"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/addrgap/addrgap/pkg/inventory"
)

var _ = Describe("Building the gap report", func() {
	newVNet := func(prefixes []string, subnetPrefixes ...[]string) inventory.VirtualNetwork {
		vnet := inventory.VirtualNetwork{
			Name:            "test-vnet",
			Location:        "westeurope",
			AddressPrefixes: prefixes,
		}
		for _, sp := range subnetPrefixes {
			vnet.Subnets = append(vnet.Subnets, inventory.Subnet{Name: "subnet", AddressPrefixes: sp})
		}
		return vnet
	}

	When("subnets partially cover the address space", func() {
		It("should report the uncovered ranges per prefix", func() {
			vnet := newVNet([]string{"10.0.0.0/24"}, []string{"10.0.0.0/26"}, []string{"10.0.0.128/26"})

			reports := Build([]inventory.VirtualNetwork{vnet})
			Expect(reports).To(HaveLen(1))
			Expect(reports[0].Gaps).To(HaveLen(1))

			gaps := reports[0].Gaps[0]
			Expect(gaps.Prefix).To(Equal("10.0.0.0/24"))
			Expect(gaps.Gaps).To(HaveLen(2))
			Expect(gaps.Gaps[0].Interval.String()).To(Equal("10.0.0.64 - 10.0.0.127"))
			Expect(gaps.Gaps[0].Prefixes).To(ConsistOf(netip.MustParsePrefix("10.0.0.64/26")))
			Expect(gaps.Gaps[1].Interval.String()).To(Equal("10.0.0.192 - 10.0.0.255"))
			Expect(gaps.Gaps[1].Prefixes).To(ConsistOf(netip.MustParsePrefix("10.0.0.192/26")))
		})
	})

	When("the virtual network has multiple address spaces", func() {
		It("should attribute subnets to the space they overlap", func() {
			vnet := newVNet(
				[]string{"10.0.0.0/24", "192.168.0.0/24"},
				[]string{"10.0.0.0/24"},
				[]string{"192.168.0.0/25"},
			)

			reports := Build([]inventory.VirtualNetwork{vnet})
			Expect(reports[0].Gaps).To(HaveLen(2))
			Expect(reports[0].Gaps[0].Gaps).To(BeEmpty())
			Expect(reports[0].Gaps[1].Gaps).To(HaveLen(1))
			Expect(reports[0].Gaps[1].Gaps[0].Interval.String()).To(Equal("192.168.0.128 - 192.168.0.255"))
		})
	})

	When("a record carries malformed prefixes", func() {
		It("should skip them and keep the rest of the report", func() {
			vnet := newVNet(
				[]string{"bogus", "10.0.0.0/24"},
				[]string{"also-bogus", "10.0.0.0/25"},
			)

			reports := Build([]inventory.VirtualNetwork{vnet})
			Expect(reports[0].Gaps).To(HaveLen(1))
			Expect(reports[0].Gaps[0].Prefix).To(Equal("10.0.0.0/24"))
			Expect(reports[0].Gaps[0].Gaps).To(HaveLen(1))
			Expect(reports[0].Gaps[0].Gaps[0].Interval.String()).To(Equal("10.0.0.128 - 10.0.0.255"))
		})
	})

	It("should render to JSON with textual addresses", func() {
		vnet := newVNet([]string{"10.0.0.0/24"}, []string{"10.0.0.0/25"})
		vnet.SubscriptionResourceID = "/subscriptions/sub-id"
		vnet.SubscriptionTags = map[string]string{"env": "prod"}

		var buf bytes.Buffer
		Expect(RenderJSON(&buf, Build([]inventory.VirtualNetwork{vnet}))).To(Succeed())

		var decoded []map[string]interface{}
		Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded).To(HaveLen(1))
		Expect(decoded[0]).To(HaveKey("gaps"))
		Expect(decoded[0]).To(HaveKeyWithValue("subscriptionResourceId", "/subscriptions/sub-id"))
		Expect(decoded[0]).To(HaveKey("subscriptionTags"))
		Expect(buf.String()).To(ContainSubstring(`"10.0.0.128/25"`))
		Expect(buf.String()).To(ContainSubstring(`"first": "10.0.0.128"`))
	})
})
