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
	"math/big"
	"net/netip"
)

// Count returns the number of addresses contained in prefix, i.e.
// 2^(width−length). IPv6 counts exceed any fixed-width integer, hence the
// arbitrary-precision result.
func Count(prefix netip.Prefix) *big.Int {
	width := addrWidth(prefix.Addr())
	return new(big.Int).Lsh(big.NewInt(1), uint(width-prefix.Bits()))
}

// CountCIDR parses text non-strictly and returns its address count. A
// malformed CIDR surfaces the *ParseError; treating the failure as a zero
// count is a policy that belongs to the caller.
func CountCIDR(text string) (*big.Int, error) {
	prefix, err := ParsePrefix(text)
	if err != nil {
		return nil, err
	}
	return Count(prefix), nil
}
