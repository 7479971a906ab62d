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

// addrWidth returns the bit width of the address family of a.
func addrWidth(a netip.Addr) int {
	if a.Is4() {
		return 32
	}
	return 128
}

// bitOffset returns the position of the first family bit within the 16-byte
// form of a. IPv4 values start at bit 96 of their IPv4-mapped form.
func bitOffset(a netip.Addr) int {
	if a.Is4() {
		return 96
	}
	return 0
}

func sameFamily(a, b netip.Addr) bool {
	return a.Is4() == b.Is4()
}

// FirstAddr returns the network address of prefix, i.e. its lowest address.
func FirstAddr(prefix netip.Prefix) netip.Addr {
	return prefix.Masked().Addr()
}

// LastAddr returns the highest address contained in prefix (the broadcast
// address, for IPv4).
func LastAddr(prefix netip.Prefix) netip.Addr {
	prefix = prefix.Masked()
	addr := prefix.Addr()
	u := u128Of(addr).bitsSetFrom(bitOffset(addr) + prefix.Bits())
	return u.addr(addr.Is4())
}
