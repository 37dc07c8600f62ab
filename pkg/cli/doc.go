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

// Package cli implements the tally command line.
//
// # Commands
//
// aggregate - Load a directory once and write a report:
//
//	tally aggregate --dir reports [--format xml|json] [--workers 8] \
//	    [--output report.json|cm://namespace/name] [--output-format json|yaml|table]
//
// Every outcome file of the selected format in the directory (not its
// subdirectories) is parsed in parallel. Files that fail to parse are
// skipped. The report carries result counts, per-story summaries, tags and
// one row per outcome.
//
// With --fail-on-failure the command exits with status 2 when any outcome
// failed or errored. --metrics-file writes the loader's Prometheus metrics
// in text exposition format, for node_exporter's textfile collector or CI
// artifacts.
//
// serve - Serve reports over HTTP:
//
//	tally serve --dir reports
//
// See package api for the endpoints.
//
// # Environment
//
//	LOG_LEVEL             log level (debug, info, warn, error)
//	TALLY_REPORT_FORMAT   default for --format
//	TALLY_LOADER_WORKERS  default for --workers
//	TALLY_OUTPUT          default for --output
//	KUBECONFIG            kubeconfig used for cm:// outputs
package cli
