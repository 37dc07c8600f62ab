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

// Package header provides the common envelope for tally documents.
//
// Every document tally emits (for example an aggregated outcome report)
// carries a Kubernetes-style header with Kind, APIVersion and free-form
// Metadata:
//
//	h := header.New(
//	    header.WithKind(header.KindOutcomeReport),
//	    header.WithAPIVersion(header.APIVersion),
//	    header.WithMetadata("source", "/reports"),
//	)
//
// Init stamps a header with a UTC RFC3339 timestamp and the tool version:
//
//	var r report.Report
//	r.Init(header.KindOutcomeReport, header.APIVersion, version)
package header
