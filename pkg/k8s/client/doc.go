// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client provides the shared Kubernetes client used when reports are
// published to a ConfigMap.
//
// GetKubeClient builds the client on first use and returns the same instance
// (or the same error) afterwards:
//
//	c, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
// Credentials are discovered in this order:
//   - the KUBECONFIG environment variable
//   - ~/.kube/config, when the file exists
//   - the in-cluster service account
//
// BuildKubeClient bypasses the cache for an explicit kubeconfig path.
//
// Tests substitute k8s.io/client-go/kubernetes/fake through the Interface
// alias; see serializer.WithKubeClient.
package client
