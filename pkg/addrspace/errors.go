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
	"fmt"
)

var (
	// ErrInvalidRange is returned when the start address of a range is
	// greater than its end address.
	ErrInvalidRange = errors.New("start address must not exceed end address")

	// ErrFamilyMismatch is returned when an operation is attempted across
	// different address families.
	ErrFamilyMismatch = errors.New("mismatching address families")
)

// ParseError reports a CIDR or address string that could not be parsed.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid CIDR %q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying parsing error.
func (e *ParseError) Unwrap() error { return e.Err }
