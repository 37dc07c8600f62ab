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

// Package defaults provides centralized configuration constants for tally.
//
// This package defines loader sizing, timeout values and server limits used
// across the codebase. Centralizing these values keeps the CLI, the API server
// and library callers consistent.
//
// # Usage
//
//	import "github.com/NVIDIA/tally/pkg/defaults"
//
//	l, err := loader.New(loader.WithWorkers(defaults.LoaderWorkers))
//
// # Guidelines
//
//   - Loader: 8 concurrent parses unless overridden
//   - HTTP handlers: 30s for outcome aggregation requests
//   - Server shutdown: 30s for graceful shutdown
package defaults
