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

// Package outcome defines the test outcome record and the immutable
// aggregate that tally hands to reporting.
//
// # Overview
//
// A TestOutcome is the result of one previously executed test scenario, as
// written to disk by the test runner. Outcomes are produced by the loader
// package and collected into an Outcomes set:
//
//	set := outcome.NewOutcomes(list)
//	fmt.Println(set.Len(), set.Result())
//	for o := range set.WithResult(outcome.ResultFailure).Each() {
//	    fmt.Println(o.DisplayTitle())
//	}
//
// # Immutability
//
// NewOutcomes copies its input and every query returns either a value or a
// new Outcomes. Nothing mutates a set after construction, so a set may be
// shared between goroutines without locking.
//
// # Results
//
// TestResult values are ordered by severity. The overall result of a set is
// the most severe result of its members:
//
//	UNDEFINED < IGNORED < SKIPPED < SUCCESS < PENDING < FAILURE < ERROR
package outcome
