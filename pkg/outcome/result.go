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

package outcome

import (
	"fmt"
	"strings"
)

// TestResult is the result of a test outcome or a single step.
type TestResult string

const (
	ResultUndefined TestResult = "UNDEFINED"
	ResultIgnored   TestResult = "IGNORED"
	ResultSkipped   TestResult = "SKIPPED"
	ResultSuccess   TestResult = "SUCCESS"
	ResultPending   TestResult = "PENDING"
	ResultFailure   TestResult = "FAILURE"
	ResultError     TestResult = "ERROR"
)

var severity = map[TestResult]int{
	ResultUndefined: 0,
	ResultIgnored:   1,
	ResultSkipped:   2,
	ResultSuccess:   3,
	ResultPending:   4,
	ResultFailure:   5,
	ResultError:     6,
}

// SupportedResults returns all results in severity order.
func SupportedResults() []TestResult {
	return []TestResult{
		ResultUndefined,
		ResultIgnored,
		ResultSkipped,
		ResultSuccess,
		ResultPending,
		ResultFailure,
		ResultError,
	}
}

// ParseTestResult parses a result name case-insensitively.
// An empty string yields ResultUndefined.
func ParseTestResult(s string) (TestResult, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if v == "" {
		return ResultUndefined, nil
	}
	r := TestResult(v)
	if _, ok := severity[r]; !ok {
		return "", fmt.Errorf("unknown test result: %q", s)
	}
	return r, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so JSON values and XML
// attributes are parsed case-insensitively and unknown values are rejected.
func (r *TestResult) UnmarshalText(text []byte) error {
	parsed, err := ParseTestResult(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// String returns the string representation of the result.
func (r TestResult) String() string {
	return string(r)
}

// IsValid reports whether r is a known result.
func (r TestResult) IsValid() bool {
	_, ok := severity[r]
	return ok
}

// Severity returns the ordinal used to pick the overall result of a set.
func (r TestResult) Severity() int {
	return severity[r]
}

// IsFailing reports whether r counts against a run (FAILURE or ERROR).
func (r TestResult) IsFailing() bool {
	return r == ResultFailure || r == ResultError
}

// MostSevere returns the most severe of the given results, or ResultUndefined
// when none are given.
func MostSevere(results ...TestResult) TestResult {
	worst := ResultUndefined
	for _, r := range results {
		if r.Severity() > worst.Severity() {
			worst = r
		}
	}
	return worst
}
