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

package addrspace

import (
	"errors"
	"math/big"
	"net/netip"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Address counting", func() {
	It("should count IPv4 prefixes", func() {
		Expect(Count(netip.MustParsePrefix("10.0.0.0/24"))).To(Equal(big.NewInt(256)))
		Expect(Count(netip.MustParsePrefix("10.0.0.1/32"))).To(Equal(big.NewInt(1)))
		Expect(Count(netip.MustParsePrefix("0.0.0.0/0"))).To(Equal(new(big.Int).Lsh(big.NewInt(1), 32)))
	})

	It("should count IPv6 prefixes without truncation", func() {
		Expect(Count(netip.MustParsePrefix("::/0"))).To(Equal(new(big.Int).Lsh(big.NewInt(1), 128)))
		Expect(Count(netip.MustParsePrefix("2001:db8::/64"))).To(Equal(new(big.Int).Lsh(big.NewInt(1), 64)))
	})

	Context("CountCIDR", func() {
		It("should parse non-strictly before counting", func() {
			count, err := CountCIDR("10.0.0.57/24")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(big.NewInt(256)))
		})

		It("should surface a *ParseError on malformed input", func() {
			_, err := CountCIDR("10.0.0.0/99")
			Expect(err).To(HaveOccurred())

			parseErr := &ParseError{}
			Expect(errors.As(err, &parseErr)).To(BeTrue())
		})
	})
})
