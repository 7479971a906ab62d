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
	"sort"

	"k8s.io/apimachinery/pkg/util/runtime"
)

// Gap is a sub-range of a container prefix not covered by any of its
// subnets, together with the minimal list of CIDR blocks exactly covering
// the uncovered interval.
type Gap struct {
	Interval Interval       `json:"interval"`
	Prefixes []netip.Prefix `json:"prefixes"`
}

// FindGaps computes the ordered list of sub-ranges of container left
// uncovered by subnets. Subnets of a different address family or entirely
// outside container are ignored, so the same subnet list may be matched
// against multiple disjoint containers. Overlapping or duplicate subnets are
// tolerated: the sweep only ever advances forward, so they merge into one
// covered span. A subnet extending beyond the container is clipped to the
// container's last address.
func FindGaps(container netip.Prefix, subnets []netip.Prefix) ([]Gap, error) {
	if !container.IsValid() {
		return nil, fmt.Errorf("invalid container prefix %q", container)
	}
	container = container.Masked()
	first, last := container.Addr(), LastAddr(container)

	relevant := make([]netip.Prefix, 0, len(subnets))
	for _, subnet := range subnets {
		if !subnet.IsValid() || !sameFamily(subnet.Addr(), first) {
			continue
		}
		if container.Overlaps(subnet) {
			relevant = append(relevant, subnet.Masked())
		}
	}
	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Addr().Less(relevant[j].Addr())
	})

	var gaps []Gap
	cursor := first
	for _, subnet := range relevant {
		if cursor.Less(subnet.Addr()) {
			gaps = append(gaps, newGap(cursor, subnet.Addr().Prev()))
		}

		subnetLast := LastAddr(subnet)
		if last.Less(subnetLast) {
			subnetLast = last
		}

		// Next returns the invalid address past the family maximum; the
		// cursor going invalid means coverage reached the end of the space.
		if next := subnetLast.Next(); !next.IsValid() {
			return gaps, nil
		} else if cursor.Less(next) {
			cursor = next
		}
	}

	if !last.Less(cursor) {
		gaps = append(gaps, newGap(cursor, last))
	}
	return gaps, nil
}

// newGap assembles a Gap from an interval whose invariants hold by
// construction of the sweep.
func newGap(first, last netip.Addr) Gap {
	interval, err := NewInterval(first, last)
	runtime.Must(err)

	prefixes, err := Summarize(first, last)
	runtime.Must(err)

	return Gap{Interval: interval, Prefixes: prefixes}
}
