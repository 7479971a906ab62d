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

// Interval is an inclusive [First, Last] address range. First and Last
// always belong to the same address family and First never exceeds Last.
type Interval struct {
	First netip.Addr `json:"first"`
	Last  netip.Addr `json:"last"`
}

// NewInterval builds an Interval, validating its invariants: it returns
// ErrFamilyMismatch when the endpoints belong to different families and
// ErrInvalidRange when first is greater than last.
func NewInterval(first, last netip.Addr) (Interval, error) {
	if !first.IsValid() || !last.IsValid() {
		return Interval{}, fmt.Errorf("%w: invalid endpoint", ErrInvalidRange)
	}
	if !sameFamily(first, last) {
		return Interval{}, ErrFamilyMismatch
	}
	if last.Less(first) {
		return Interval{}, ErrInvalidRange
	}
	return Interval{First: first, Last: last}, nil
}

// String renders the interval as "first - last".
func (i Interval) String() string {
	return fmt.Sprintf("%s - %s", i.First, i.Last)
}
