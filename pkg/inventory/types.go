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

package inventory

import "math/big"

// Subscription is the subset of an Azure subscription record the report
// consumes.
type Subscription struct {
	ID             string            `json:"id"`
	SubscriptionID string            `json:"subscriptionId"`
	DisplayName    string            `json:"displayName"`
	TenantID       string            `json:"tenantId"`
	Tags           map[string]string `json:"tags,omitempty"`
}

// Subnet is a subnet of a virtual network, with the address cardinality of
// its prefixes already computed.
type Subnet struct {
	Name            string   `json:"name"`
	AddressPrefixes []string `json:"addressPrefixes"`
	AddressCount    *big.Int `json:"addressCount"`
}

// VirtualNetwork is a flattened Azure virtual network record. The
// subscription it belongs to is denormalized onto it, tags included, so a
// record is self-describing once the report is serialized.
type VirtualNetwork struct {
	SubscriptionID         string            `json:"subscriptionId"`
	SubscriptionResourceID string            `json:"subscriptionResourceId,omitempty"`
	SubscriptionName       string            `json:"subscriptionName"`
	SubscriptionTags       map[string]string `json:"subscriptionTags,omitempty"`
	TenantID               string            `json:"tenantId"`
	Name                   string            `json:"name"`
	Location               string            `json:"location"`
	Tags                   map[string]string `json:"tags,omitempty"`
	AddressPrefixes        []string          `json:"addressPrefixes"`
	AddressCount           *big.Int          `json:"addressCount"`
	Subnets                []Subnet          `json:"subnets"`
}
