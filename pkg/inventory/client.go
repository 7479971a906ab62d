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
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"k8s.io/klog/v2"
)

// Service principal environment variables.
const (
	tenantIDEnv     = "AZ_TENANT_ID"
	clientIDEnv     = "AZ_CLIENT_ID"
	clientSecretEnv = "AZ_CLIENT_SECRET"
)

// Client queries Azure Resource Manager for subscriptions and virtual
// networks.
type Client struct {
	cred azcore.TokenCredential
}

// NewClient returns a Client authenticating through the AZ_TENANT_ID,
// AZ_CLIENT_ID and AZ_CLIENT_SECRET service principal variables when all
// three are set, and through the default credential chain (environment,
// managed identity, Azure CLI session) otherwise.
func NewClient() (*Client, error) {
	cred, err := newCredential()
	if err != nil {
		return nil, fmt.Errorf("retrieving Azure credentials: %w", err)
	}
	return &Client{cred: cred}, nil
}

func newCredential() (azcore.TokenCredential, error) {
	tenantID := os.Getenv(tenantIDEnv)
	clientID := os.Getenv(clientIDEnv)
	clientSecret := os.Getenv(clientSecretEnv)

	if tenantID != "" && clientID != "" && clientSecret != "" {
		klog.V(3).Infof("Authenticating with the %q service principal", clientID)
		return azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, nil)
	}

	klog.V(3).Info("Service principal variables not set, falling back to the default credential chain")
	return azidentity.NewDefaultAzureCredential(nil)
}
