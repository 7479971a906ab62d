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

// Package addrspace implements the address-space arithmetic the gap report
// is built on: non-strict CIDR parsing, containment and overlap queries,
// address counting, summarization of an inclusive address range into the
// minimal set of covering CIDR blocks, and the sweep computing the portions
// of a container prefix left uncovered by its subnets.
//
// The package is pure: it performs no I/O, keeps no state across calls and
// may be invoked concurrently.
package addrspace
