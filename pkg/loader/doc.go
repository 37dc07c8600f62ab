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

// Package loader discovers serialized test outcome files in a directory and
// parses them in parallel into an immutable outcome.Outcomes set.
//
// # Formats
//
// Outcome files are either XML (root element <acceptance-test-run>) or JSON.
// Only one format is active per load; files of the other format in the same
// directory are ignored. The active format comes from, in order of
// precedence:
//   - an explicit WithFormat option, LoadFromInFormat or Builder.InFormat
//   - the TALLY_REPORT_FORMAT environment variable ("xml" or "json")
//   - the default, XML
//
// An unsupported TALLY_REPORT_FORMAT value is a configuration error; it is
// never silently replaced by the default.
//
// # Loading
//
// Discovery lists the immediate entries of the directory whose names end
// with the active extension, compared case-insensitively. Subdirectories are
// never entered.
//
// Files are parsed by a fixed-size worker pool (8 by default, see WithWorkers
// and TALLY_LOADER_WORKERS) and LoadFrom blocks until every file has been
// attempted. Parsing is fail-soft: a malformed, truncated or unreadable file
// contributes no outcome and never fails the load. A parser panic is
// recovered at the worker boundary and treated the same way.
//
// The only error LoadFrom surfaces for a valid configuration is a directory
// access failure (missing path, not a directory, permission denied), reported
// with code errors.ErrCodeNotFound. In that case no partial result is
// returned.
//
// Result order follows worker completion order and is not deterministic.
//
// # Usage
//
//	set, err := loader.LoadFrom("target/site/reports")
//
//	set, err := loader.LoadFromInFormat(dir, loader.FormatJSON)
//
//	set, err := loader.LoadOutcomes().InFormat(loader.FormatJSON).From(dir)
//
// A Loader can be built once and reused; it is safe for concurrent use:
//
//	l, err := loader.New(loader.WithWorkers(16))
//	if err != nil {
//	    return err
//	}
//	set, err := l.LoadFrom(dir)
//
// # Metrics
//
// Loads are instrumented with Prometheus collectors prefixed tally_loader_
// and registered with the default registry.
package loader
