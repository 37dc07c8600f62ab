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

package report

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/NVIDIA/tally/pkg/header"
	"github.com/NVIDIA/tally/pkg/outcome"
)

// unassignedStory groups outcomes without a user story.
const unassignedStory = "(none)"

// Report summarizes an outcome set.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	ID      string          `json:"id" yaml:"id"`
	Source  string          `json:"source,omitempty" yaml:"source,omitempty"`
	Format  string          `json:"format,omitempty" yaml:"format,omitempty"`
	Summary outcome.Summary `json:"summary" yaml:"summary"`
	Stories []StorySummary  `json:"stories,omitempty" yaml:"stories,omitempty"`
	Tags    []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Rows    []Row           `json:"outcomes,omitempty" yaml:"outcomes,omitempty"`
}

// StorySummary holds the counts of one user story.
type StorySummary struct {
	Name           string             `json:"name" yaml:"name"`
	Total          int                `json:"total" yaml:"total"`
	Success        int                `json:"success" yaml:"success"`
	PercentPassing float64            `json:"percentPassing" yaml:"percentPassing"`
	Result         outcome.TestResult `json:"result" yaml:"result"`
}

// Row is the one-line view of an outcome.
type Row struct {
	Title          string             `json:"title" yaml:"title"`
	Story          string             `json:"story,omitempty" yaml:"story,omitempty"`
	Result         outcome.TestResult `json:"result" yaml:"result"`
	DurationMillis int64              `json:"durationMillis" yaml:"durationMillis"`
	Steps          int                `json:"steps" yaml:"steps"`
	Tags           []string           `json:"tags,omitempty" yaml:"tags,omitempty"`
	Issues         []string           `json:"issues,omitempty" yaml:"issues,omitempty"`
}

type config struct {
	source  string
	format  string
	version string
	rows    bool
	newID   func() string
}

// Option configures report construction.
type Option func(*config)

// WithSource records where the outcomes were loaded from.
func WithSource(source string) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithFormat records the outcome file format.
func WithFormat(format string) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithVersion sets the tool version in the header metadata.
func WithVersion(version string) Option {
	return func(c *config) {
		c.version = version
	}
}

// WithRows controls whether per-outcome rows are included. Default true.
func WithRows(include bool) Option {
	return func(c *config) {
		c.rows = include
	}
}

// WithIDGenerator replaces the random report ID source.
func WithIDGenerator(fn func() string) Option {
	return func(c *config) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New builds a Report from set. A nil set yields an empty report.
func New(set *outcome.Outcomes, opts ...Option) *Report {
	cfg := &config{
		rows:  true,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Report{
		ID:      cfg.newID(),
		Source:  cfg.source,
		Format:  cfg.format,
		Summary: set.Summary(),
		Stories: storySummaries(set),
	}
	r.Init(header.KindOutcomeReport, header.APIVersion, cfg.version)

	for _, t := range set.Tags() {
		r.Tags = append(r.Tags, t.String())
	}

	if cfg.rows {
		r.Rows = rows(set)
	}

	return r
}

// Failing reports whether the set contained any failure or error.
func (r *Report) Failing() bool {
	return r.Summary.Failure > 0 || r.Summary.Error > 0
}

func storySummaries(set *outcome.Outcomes) []StorySummary {
	groups := set.ByStory()
	if len(groups) == 0 {
		return nil
	}

	out := make([]StorySummary, 0, len(groups))
	for name, g := range groups {
		if name == "" {
			name = unassignedStory
		}
		out = append(out, StorySummary{
			Name:           name,
			Total:          g.Len(),
			Success:        g.Count(outcome.ResultSuccess),
			PercentPassing: g.PercentPassing(),
			Result:         g.Result(),
		})
	}
	slices.SortFunc(out, func(a, b StorySummary) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

func rows(set *outcome.Outcomes) []Row {
	if set.Len() == 0 {
		return nil
	}

	out := make([]Row, 0, set.Len())
	for o := range set.Each() {
		row := Row{
			Title:          o.DisplayTitle(),
			Story:          o.StoryName(),
			Result:         o.EffectiveResult(),
			DurationMillis: o.Duration,
			Steps:          o.StepCount(),
			Issues:         slices.Clone(o.Issues),
		}
		for _, t := range o.Tags {
			row.Tags = append(row.Tags, t.String())
		}
		out = append(out, row)
	}
	slices.SortFunc(out, func(a, b Row) int {
		return cmp.Or(
			cmp.Compare(a.Story, b.Story),
			cmp.Compare(a.Title, b.Title),
			cmp.Compare(a.Result, b.Result),
			cmp.Compare(a.DurationMillis, b.DurationMillis),
		)
	})
	return out
}
