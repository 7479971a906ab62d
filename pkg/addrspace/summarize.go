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
	"fmt"
	"net/netip"
)

// Summarize converts the inclusive address range [first, last] into the
// minimal ordered list of CIDR blocks exactly covering it.
//
// At every step the largest prefix is emitted whose base is first and whose
// size is limited both by the alignment of first and by the end of the
// range; first then advances past the emitted block.
//
// It returns ErrFamilyMismatch when the endpoints belong to different
// address families and ErrInvalidRange when first is greater than last.
func Summarize(first, last netip.Addr) ([]netip.Prefix, error) {
	if !first.IsValid() || !last.IsValid() {
		return nil, fmt.Errorf("%w: invalid endpoint", ErrInvalidRange)
	}
	if !sameFamily(first, last) {
		return nil, ErrFamilyMismatch
	}
	if last.Less(first) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, first, last)
	}

	var (
		is4    = first.Is4()
		width  = addrWidth(first)
		offset = bitOffset(first)
		cur    = u128Of(first)
		end    = u128Of(last)
	)

	var prefixes []netip.Prefix
	for {
		// The largest block based at cur is bounded by its alignment...
		align := cur.trailingZeros()
		if align > width {
			align = width
		}
		bits := width - align

		// ...and must not extend past the end of the range.
		blockLast := cur.bitsSetFrom(offset + bits)
		for blockLast.compare(end) > 0 {
			bits++
			blockLast = cur.bitsSetFrom(offset + bits)
		}

		prefixes = append(prefixes, netip.PrefixFrom(cur.addr(is4), bits))

		if blockLast.compare(end) == 0 {
			return prefixes, nil
		}
		cur = blockLast.addOne()
	}
}
