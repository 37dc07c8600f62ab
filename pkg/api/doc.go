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

// Package api wires tally's HTTP API onto pkg/server.
//
// Serve builds a loader for a report directory, registers the outcome routes
// and blocks until the process receives SIGINT or SIGTERM:
//
//	if err := api.Serve(ctx, "/var/lib/tally/reports"); err != nil {
//	    return err
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /v1/outcomes: an OutcomeReport built from the directory
//
// System endpoints (no rate limiting):
//   - GET /health: liveness
//   - GET /ready: readiness
//   - GET /metrics: Prometheus metrics, including tally_loader_*
//
// # Query Parameters (GET /v1/outcomes)
//
//   - format: xml or json; defaults to TALLY_REPORT_FORMAT, then xml
//   - result: only outcomes with this result (success, failure, ...)
//   - tag: only outcomes carrying this tag name
//   - rows: include per-outcome rows (true/false, default true)
//
// Example:
//
//	curl "http://localhost:8080/v1/outcomes?format=json&result=failure"
//
// The directory is reloaded on every request. A load that takes longer than
// defaults.OutcomesHandlerTimeout is answered with 503; a missing or
// unreadable directory with 404.
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - TALLY_REPORT_FORMAT, TALLY_LOADER_WORKERS: loader defaults
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/tally/pkg/api.version=1.0.0'"
package api
