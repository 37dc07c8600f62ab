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
	"log/slog"
	"net/http"

	"github.com/NVIDIA/tally/pkg/loader"
	"github.com/NVIDIA/tally/pkg/logging"
	"github.com/NVIDIA/tally/pkg/server"
)

const (
	name           = "tally-api-server"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/tally/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the application routes serving dir.
func Routes(dir string, l *loader.Loader) map[string]http.HandlerFunc {
	h := NewOutcomesHandler(dir, l, WithReportVersion(version))
	return map[string]http.HandlerFunc{
		"/v1/outcomes": h.HandleOutcomes,
	}
}

// Serve starts the API server for the outcome files in dir and blocks until
// shutdown. Loader options not given are read from the environment.
func Serve(ctx context.Context, dir string, opts ...loader.Option) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"dir", dir,
	)

	l, err := loader.New(opts...)
	if err != nil {
		slog.Error("invalid loader configuration", "error", err)
		return err
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(dir, l)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
