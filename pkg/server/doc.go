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

// Package server provides the HTTP server shared by tally's network
// surfaces.
//
// The server owns process-level concerns: listening, graceful shutdown on
// SIGINT/SIGTERM, health and readiness probes, Prometheus metrics and a
// middleware chain applied to every application route. Application handlers
// are supplied by the caller:
//
//	s := server.New(
//	    server.WithName("tally"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/outcomes": h.HandleOutcomes,
//	    }),
//	)
//	err := s.Run(ctx)
//
// # Endpoints
//
// System endpoints, served without rate limiting:
//   - GET /health: liveness
//   - GET /ready: readiness, 503 until the listener is up and during shutdown
//   - GET /metrics: Prometheus exposition
//
// Application endpoints pass through, outermost first: RED metrics, API
// version negotiation (X-API-Version), request IDs (X-Request-Id), panic
// recovery, token bucket rate limiting (429 with Retry-After) and debug
// request logging.
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr, which map
// pkg/errors codes to HTTP status codes and write an ErrorResponse body
// carrying the request ID.
//
// # Configuration
//
// NewConfig returns defaults from pkg/defaults, overridden by the PORT and
// SHUTDOWN_TIMEOUT_SECONDS environment variables.
package server
