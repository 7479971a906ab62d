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

import "net/netip"

// ParsePrefix parses a CIDR string in "address/length" notation, for either
// address family. Parsing is non-strict: an address with host bits set is
// normalized to its containing network rather than rejected. Malformed text
// and out-of-range prefix lengths yield a *ParseError.
func ParsePrefix(text string) (netip.Prefix, error) {
	prefix, err := netip.ParsePrefix(text)
	if err != nil {
		return netip.Prefix{}, &ParseError{Text: text, Err: err}
	}
	return prefix.Masked(), nil
}

// Contains reports whether the entire address range of inner lies within
// outer. It returns ErrFamilyMismatch when the two prefixes belong to
// different address families.
func Contains(outer, inner netip.Prefix) (bool, error) {
	if !sameFamily(outer.Addr(), inner.Addr()) {
		return false, ErrFamilyMismatch
	}
	return outer.Bits() <= inner.Bits() && outer.Overlaps(inner), nil
}

// Overlaps reports whether the address ranges of the two prefixes intersect,
// regardless of containment direction. It returns ErrFamilyMismatch when the
// two prefixes belong to different address families.
func Overlaps(a, b netip.Prefix) (bool, error) {
	if !sameFamily(a.Addr(), b.Addr()) {
		return false, ErrFamilyMismatch
	}
	return a.Overlaps(b), nil
}
