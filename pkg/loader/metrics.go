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

package loader

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Parse failure reasons.
const (
	failureDecode  = "decode"
	failureInvalid = "invalid"
	failurePanic   = "panic"
)

var (
	loadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tally_loader_load_duration_seconds",
			Help:    "Time taken to load all outcome files from a directory",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"format"},
	)

	loadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tally_loader_loads_total",
			Help: "Total number of directory loads",
		},
		[]string{"format", "status"}, // success or error
	)

	filesDiscovered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tally_loader_files_discovered_total",
			Help: "Total number of outcome files found by discovery",
		},
		[]string{"format"},
	)

	outcomesLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tally_loader_outcomes_loaded_total",
			Help: "Total number of outcome files parsed successfully",
		},
		[]string{"format"},
	)

	parseFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tally_loader_parse_failures_total",
			Help: "Total number of outcome files that produced no outcome",
		},
		[]string{"format", "reason"}, // decode, invalid, panic
	)

	lastLoadOutcomes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tally_loader_last_load_outcomes",
			Help: "Number of outcomes returned by the most recent load",
		},
		[]string{"format"},
	)
)
