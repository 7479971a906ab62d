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
	"encoding/binary"
	"math/bits"
	"net/netip"
)

// uint128 is a big-endian 128-bit unsigned integer holding the raw value of
// an address in its 16-byte form. IPv4 addresses are carried in their
// IPv4-mapped representation, so their value occupies the low 32 bits.
type uint128 struct {
	hi uint64
	lo uint64
}

func u128Of(addr netip.Addr) uint128 {
	b := addr.As16()
	return uint128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// addr converts u back to a netip.Addr, unmapping IPv4 values.
func (u uint128) addr(is4 bool) netip.Addr {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:], u.lo)
	a := netip.AddrFrom16(b)
	if is4 {
		return a.Unmap()
	}
	return a
}

func (u uint128) or(m uint128) uint128 { return uint128{u.hi | m.hi, u.lo | m.lo} }
func (u uint128) not() uint128         { return uint128{^u.hi, ^u.lo} }

func (u uint128) compare(v uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	default:
		return 0
	}
}

// mask6 returns the mask with the leading bit bits set.
func mask6(bit int) uint128 {
	switch {
	case bit <= 0:
		return uint128{}
	case bit <= 64:
		return uint128{hi: ^uint64(0) << (64 - bit)}
	default:
		return uint128{hi: ^uint64(0), lo: ^uint64(0) << (128 - bit)}
	}
}

// bitsSetFrom returns u with all bits from position bit onward set,
// positions counted MSB-first.
func (u uint128) bitsSetFrom(bit int) uint128 {
	return u.or(mask6(bit).not())
}

func (u uint128) trailingZeros() int {
	if u.lo != 0 {
		return bits.TrailingZeros64(u.lo)
	}
	return 64 + bits.TrailingZeros64(u.hi)
}

func (u uint128) addOne() uint128 {
	lo, carry := bits.Add64(u.lo, 1, 0)
	return uint128{hi: u.hi + carry, lo: lo}
}
