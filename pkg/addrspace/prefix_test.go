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
	"net/netip"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Prefix parsing and queries", func() {
	Context("ParsePrefix", func() {
		When("the input is canonical", func() {
			It("should round-trip through String", func() {
				for _, text := range []string{
					"10.0.0.0/24",
					"0.0.0.0/0",
					"192.168.1.128/25",
					"255.255.255.255/32",
					"2001:db8::/32",
					"::/0",
					"fe80::1/128",
				} {
					prefix, err := ParsePrefix(text)
					Expect(err).NotTo(HaveOccurred())
					Expect(prefix.String()).To(Equal(text))
				}
			})
		})

		When("host bits are set", func() {
			It("should normalize to the containing network", func() {
				prefix, err := ParsePrefix("10.0.0.57/24")
				Expect(err).NotTo(HaveOccurred())
				Expect(prefix).To(Equal(netip.MustParsePrefix("10.0.0.0/24")))

				prefix, err = ParsePrefix("2001:db8::42/64")
				Expect(err).NotTo(HaveOccurred())
				Expect(prefix).To(Equal(netip.MustParsePrefix("2001:db8::/64")))
			})
		})

		When("the input is malformed", func() {
			It("should return a *ParseError", func() {
				for _, text := range []string{
					"10.0.0.0",
					"10.0.0.0/33",
					"10.0.0.256/24",
					"2001:db8::/129",
					"not-a-cidr",
					"",
				} {
					_, err := ParsePrefix(text)
					Expect(err).To(HaveOccurred(), "input %q", text)

					parseErr := &ParseError{}
					Expect(errors.As(err, &parseErr)).To(BeTrue(), "input %q", text)
					Expect(parseErr.Text).To(Equal(text))
				}
			})
		})
	})

	Context("Contains", func() {
		It("should report full containment only", func() {
			outer := netip.MustParsePrefix("10.0.0.0/16")

			ok, err := Contains(outer, netip.MustParsePrefix("10.0.4.0/24"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			ok, err = Contains(outer, outer)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			// The containing direction is not symmetric.
			ok, err = Contains(netip.MustParsePrefix("10.0.4.0/24"), outer)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())

			ok, err = Contains(outer, netip.MustParsePrefix("11.0.0.0/24"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("should reject mixed families", func() {
			_, err := Contains(netip.MustParsePrefix("10.0.0.0/16"), netip.MustParsePrefix("2001:db8::/64"))
			Expect(err).To(MatchError(ErrFamilyMismatch))
		})
	})

	Context("Overlaps", func() {
		It("should report any intersection", func() {
			a := netip.MustParsePrefix("10.0.0.0/24")

			ok, err := Overlaps(a, netip.MustParsePrefix("10.0.0.128/25"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			// Containment in either direction overlaps.
			ok, err = Overlaps(a, netip.MustParsePrefix("10.0.0.0/8"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			ok, err = Overlaps(a, netip.MustParsePrefix("10.0.1.0/24"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("should reject mixed families", func() {
			_, err := Overlaps(netip.MustParsePrefix("::/0"), netip.MustParsePrefix("0.0.0.0/0"))
			Expect(err).To(MatchError(ErrFamilyMismatch))
		})
	})

	Context("FirstAddr and LastAddr", func() {
		It("should return the range endpoints", func() {
			prefix := netip.MustParsePrefix("10.0.0.0/24")
			Expect(FirstAddr(prefix)).To(Equal(netip.MustParseAddr("10.0.0.0")))
			Expect(LastAddr(prefix)).To(Equal(netip.MustParseAddr("10.0.0.255")))

			prefix = netip.MustParsePrefix("192.168.1.64/26")
			Expect(LastAddr(prefix)).To(Equal(netip.MustParseAddr("192.168.1.127")))

			prefix = netip.MustParsePrefix("0.0.0.0/0")
			Expect(LastAddr(prefix)).To(Equal(netip.MustParseAddr("255.255.255.255")))

			prefix = netip.MustParsePrefix("2001:db8::/64")
			Expect(LastAddr(prefix)).To(Equal(netip.MustParseAddr("2001:db8::ffff:ffff:ffff:ffff")))

			prefix = netip.MustParsePrefix("::/0")
			Expect(LastAddr(prefix)).To(Equal(netip.MustParseAddr("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")))
		})
	})
})
