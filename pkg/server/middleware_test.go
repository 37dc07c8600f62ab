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

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/time/rate"
)

func newTestServer(limiter *rate.Limiter) *Server {
	return &Server{
		config:      NewConfig(),
		rateLimiter: limiter,
	}
}

func statusHandler(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	provided := uuid.New().String()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generated when absent", header: ""},
		{name: "kept when valid", header: provided, wantSame: true},
		{name: "replaced when invalid", header: "outcome-run-42"},
	}

	s := newTestServer(rate.NewLimiter(100, 200))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				captured = RequestIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/outcomes", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if _, err := uuid.Parse(captured); err != nil {
				t.Fatalf("expected a UUID request ID, got %q", captured)
			}
			if tt.wantSame && captured != tt.header {
				t.Errorf("expected request ID %s, got %s", tt.header, captured)
			}
			if !tt.wantSame && captured == tt.header {
				t.Errorf("expected request ID %q to be replaced", tt.header)
			}
			if got := rec.Header().Get("X-Request-Id"); got != captured {
				t.Errorf("X-Request-Id = %q, want %q", got, captured)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	var captured string
	handler := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = APIVersionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/outcomes", nil)
	req.Header.Set("Accept", vendorMediaPrefix+"v1+json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if captured != "v1" {
		t.Errorf("expected v1 in context, got %q", captured)
	}
	if got := rec.Header().Get("X-API-Version"); got != "v1" {
		t.Errorf("X-API-Version = %q, want v1", got)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		limiter     *rate.Limiter
		wantCalled  bool
		wantStatus  int
		wantHeaders []string
	}{
		{
			name:        "allows within limit",
			limiter:     rate.NewLimiter(100, 200),
			wantCalled:  true,
			wantStatus:  http.StatusOK,
			wantHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		},
		{
			name:        "rejects without capacity",
			limiter:     rate.NewLimiter(0, 0),
			wantStatus:  http.StatusTooManyRequests,
			wantHeaders: []string{"Retry-After"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(tt.limiter)
			before := testutil.ToFloat64(rateLimitRejects)

			called := false
			handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, "/v1/outcomes", nil))

			if called != tt.wantCalled {
				t.Errorf("handler called = %v, want %v", called, tt.wantCalled)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			for _, h := range tt.wantHeaders {
				if rec.Header().Get(h) == "" {
					t.Errorf("expected header %s", h)
				}
			}

			rejected := testutil.ToFloat64(rateLimitRejects) - before
			if tt.wantCalled && rejected != 0 || !tt.wantCalled && rejected != 1 {
				t.Errorf("unexpected rate limit rejects delta %v", rejected)
			}
		})
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	t.Run("recovers panic", func(t *testing.T) {
		before := testutil.ToFloat64(panicRecoveries)
		handler := s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
			panic("parser exploded")
		})

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/outcomes", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", rec.Code)
		}
		if got := testutil.ToFloat64(panicRecoveries); got != before+1 {
			t.Errorf("expected panic recoveries %v, got %v", before+1, got)
		}
	})

	t.Run("passes normal requests", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.panicRecoveryMiddleware(statusHandler(http.StatusOK))(rec, httptest.NewRequest(http.MethodGet, "/v1/outcomes", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})
}

func TestLoggingMiddleware_PreservesStatus(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	for _, code := range []int{http.StatusOK, http.StatusBadRequest, http.StatusNotFound, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			handler := s.requestIDMiddleware(s.loggingMiddleware(statusHandler(code)))

			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, "/v1/outcomes", nil))

			if rec.Code != code {
				t.Errorf("expected status %d, got %d", code, rec.Code)
			}
		})
	}
}

func TestMiddlewareChain_PropagatesContext(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	var hasRequestID, hasAPIVersion bool
	handler := s.withMiddleware("/test", func(w http.ResponseWriter, r *http.Request) {
		hasRequestID = r.Context().Value(contextKeyRequestID) != nil
		hasAPIVersion = r.Context().Value(contextKeyAPIVersion) != nil
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if !hasRequestID {
		t.Error("expected request ID in context")
	}
	if !hasAPIVersion {
		t.Error("expected API version in context")
	}
}

func TestMiddlewareChain_SetsAllHeaders(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	handler := s.withMiddleware("/test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	expectedHeaders := []string{
		"X-Request-Id",
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"X-API-Version",
	}

	for _, header := range expectedHeaders {
		if rec.Header().Get(header) == "" {
			t.Errorf("expected header %s to be set", header)
		}
	}
}

func TestMetricsMiddleware_RecordsStatus(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test", "418")
	before := testutil.ToFloat64(counter)

	handler := s.metricsMiddleware("/metrics-test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics-test", nil))

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("expected counter %v, got %v", before+1, got)
	}
	if got := testutil.ToFloat64(httpRequestsInFlight); got != 0 {
		t.Errorf("expected no in-flight requests after completion, got %v", got)
	}
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	unmatched := httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	before := testutil.ToFloat64(unmatched)

	handler := s.metricsMiddleware("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/a", "/b/c", "/d?x=1"} {
		handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(unmatched); got != before+3 {
		t.Errorf("expected unmatched counter %v, got %v", before+3, got)
	}
}

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		route string
		path  string
		want  string
	}{
		{route: "/", path: "/", want: "/"},
		{route: "/", path: "/unknown", want: unmatchedRoute},
		{route: "/v1/outcomes", path: "/v1/outcomes", want: "/v1/outcomes"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if got := routeLabel(tt.route, req); got != tt.want {
				t.Errorf("routeLabel(%q, %q) = %q, want %q", tt.route, tt.path, got, tt.want)
			}
		})
	}
}

func TestResponseWriter_IgnoresDuplicateWriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.Status() != http.StatusAccepted || rec.Code != http.StatusAccepted {
		t.Errorf("expected first status to win, got %d/%d", rw.Status(), rec.Code)
	}
	if rw.Unwrap() != rec {
		t.Error("expected Unwrap to return the wrapped writer")
	}
}
