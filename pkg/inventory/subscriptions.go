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

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"k8s.io/klog/v2"
)

// Subscriptions lists all the subscriptions visible to the credential.
func (c *Client) Subscriptions(ctx context.Context) ([]Subscription, error) {
	client, err := armsubscriptions.NewClient(c.cred, nil)
	if err != nil {
		return nil, fmt.Errorf("creating subscriptions client: %w", err)
	}

	var subs []Subscription
	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing subscriptions: %w", err)
		}
		for _, sub := range page.Value {
			subs = append(subs, newSubscription(sub))
		}
	}

	klog.V(2).Infof("Found %d subscriptions", len(subs))
	return subs, nil
}

func newSubscription(sub *armsubscriptions.Subscription) Subscription {
	return Subscription{
		ID:             deref(sub.ID),
		SubscriptionID: deref(sub.SubscriptionID),
		DisplayName:    deref(sub.DisplayName),
		TenantID:       deref(sub.TenantID),
		Tags:           derefTags(sub.Tags),
	}
}
