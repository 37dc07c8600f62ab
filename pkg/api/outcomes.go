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

package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/tally/pkg/defaults"
	"github.com/NVIDIA/tally/pkg/errors"
	"github.com/NVIDIA/tally/pkg/loader"
	"github.com/NVIDIA/tally/pkg/outcome"
	"github.com/NVIDIA/tally/pkg/report"
	"github.com/NVIDIA/tally/pkg/serializer"
	"github.com/NVIDIA/tally/pkg/server"
)

// OutcomesHandler serves reports built from the outcome files of one
// directory. Every request reloads the directory.
type OutcomesHandler struct {
	dir     string
	loader  *loader.Loader
	version string
	timeout time.Duration
}

// HandlerOption configures an OutcomesHandler.
type HandlerOption func(*OutcomesHandler)

// WithTimeout bounds how long a request waits for a load.
func WithTimeout(d time.Duration) HandlerOption {
	return func(h *OutcomesHandler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// WithReportVersion sets the version recorded in report metadata.
func WithReportVersion(v string) HandlerOption {
	return func(h *OutcomesHandler) {
		h.version = v
	}
}

// NewOutcomesHandler returns a handler loading dir with l.
func NewOutcomesHandler(dir string, l *loader.Loader, opts ...HandlerOption) *OutcomesHandler {
	h := &OutcomesHandler{
		dir:     dir,
		loader:  l,
		timeout: defaults.OutcomesHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type outcomesQuery struct {
	format loader.OutcomeFormat
	result outcome.TestResult
	tag    string
	rows   bool
}

func parseOutcomesQuery(r *http.Request) (outcomesQuery, error) {
	q := r.URL.Query()
	oq := outcomesQuery{
		tag:  strings.TrimSpace(q.Get("tag")),
		rows: true,
	}

	if v := q.Get("format"); v != "" {
		f, err := loader.ParseFormat(v)
		if err != nil {
			return oq, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid format parameter", err,
				map[string]any{"format": v})
		}
		oq.format = f
	}

	if v := q.Get("result"); v != "" {
		res, err := outcome.ParseTestResult(v)
		if err != nil {
			return oq, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid result parameter", err,
				map[string]any{"result": v, "supported": outcome.SupportedResults()})
		}
		oq.result = res
	}

	if v := q.Get("rows"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return oq, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid rows parameter", err,
				map[string]any{"rows": v})
		}
		oq.rows = b
	}

	return oq, nil
}

type loadResult struct {
	set *outcome.Outcomes
	err error
}

// HandleOutcomes handles GET /v1/outcomes.
//
// Query parameters:
//   - format: xml or json, overriding the loader's format
//   - result: keep only outcomes with this result
//   - tag: keep only outcomes carrying this tag name
//   - rows: include per-outcome rows (default true)
func (h *OutcomesHandler) HandleOutcomes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	q, err := parseOutcomesQuery(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid outcomes query", nil)
		return
	}

	l := h.loader
	if q.format != "" {
		l = l.ForFormat(q.format)
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	// Loads cannot be canceled; a timed-out load finishes in the background.
	ch := make(chan loadResult, 1)
	go func() {
		set, err := l.LoadFrom(h.dir)
		ch <- loadResult{set: set, err: err}
	}()

	var res loadResult
	select {
	case <-ctx.Done():
		server.WriteError(w, r, http.StatusServiceUnavailable, errors.ErrCodeUnavailable,
			"Timed out loading outcomes", true, map[string]any{"timeout": h.timeout.String()})
		return
	case res = <-ch:
	}

	if res.err != nil {
		server.WriteErrorFromErr(w, r, res.err, "Failed to load outcomes", nil)
		return
	}

	set := res.set
	if q.result != "" {
		set = set.WithResult(q.result)
	}
	if q.tag != "" {
		set = set.WithTag(q.tag)
	}

	rpt := report.New(set,
		report.WithSource(h.dir),
		report.WithFormat(l.Format().String()),
		report.WithVersion(h.version),
		report.WithRows(q.rows))

	w.Header().Set("Cache-Control", "no-store")
	serializer.RespondJSON(w, http.StatusOK, rpt)
}
