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
	"iter"
	"slices"
	"sort"
	"strings"
	"time"
)

// Outcomes is an immutable, ordered set of test outcomes.
// A nil *Outcomes behaves as an empty set.
type Outcomes struct {
	outcomes []TestOutcome
}

// NewOutcomes returns a set holding a copy of list, in the same order.
func NewOutcomes(list []TestOutcome) *Outcomes {
	return &Outcomes{outcomes: slices.Clone(list)}
}

// Empty returns a set with no outcomes.
func Empty() *Outcomes {
	return &Outcomes{}
}

// Len returns the number of outcomes in the set.
func (o *Outcomes) Len() int {
	if o == nil {
		return 0
	}
	return len(o.outcomes)
}

// All returns a copy of the outcomes in set order.
func (o *Outcomes) All() []TestOutcome {
	if o == nil {
		return []TestOutcome{}
	}
	out := make([]TestOutcome, len(o.outcomes))
	copy(out, o.outcomes)
	return out
}

// Each iterates over the outcomes in set order.
func (o *Outcomes) Each() iter.Seq[TestOutcome] {
	return func(yield func(TestOutcome) bool) {
		if o == nil {
			return
		}
		for _, t := range o.outcomes {
			if !yield(t) {
				return
			}
		}
	}
}

// Filter returns the outcomes for which keep returns true.
func (o *Outcomes) Filter(keep func(TestOutcome) bool) *Outcomes {
	out := &Outcomes{}
	for t := range o.Each() {
		if keep(t) {
			out.outcomes = append(out.outcomes, t)
		}
	}
	return out
}

// Count returns the number of outcomes with the given effective result.
func (o *Outcomes) Count(r TestResult) int {
	n := 0
	for t := range o.Each() {
		if t.EffectiveResult() == r {
			n++
		}
	}
	return n
}

// WithResult returns the outcomes whose effective result is r.
func (o *Outcomes) WithResult(r TestResult) *Outcomes {
	return o.Filter(func(t TestOutcome) bool {
		return t.EffectiveResult() == r
	})
}

// WithTag returns the outcomes carrying a tag named name.
func (o *Outcomes) WithTag(name string) *Outcomes {
	return o.Filter(func(t TestOutcome) bool {
		return t.HasTag(name)
	})
}

// WithTagType returns the outcomes carrying a tag of the given type.
func (o *Outcomes) WithTagType(tagType string) *Outcomes {
	return o.Filter(func(t TestOutcome) bool {
		return t.HasTagType(tagType)
	})
}

// Tags returns the distinct tags of the set, sorted by type then name.
func (o *Outcomes) Tags() []Tag {
	seen := make(map[Tag]struct{})
	var tags []Tag
	for t := range o.Each() {
		for _, tag := range t.Tags {
			key := Tag{Name: strings.ToLower(tag.Name), Type: strings.ToLower(tag.Type)}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Type != tags[j].Type {
			return tags[i].Type < tags[j].Type
		}
		return tags[i].Name < tags[j].Name
	})
	return tags
}

// TagTypes returns the distinct non-empty tag types of the set, sorted.
func (o *Outcomes) TagTypes() []string {
	seen := make(map[string]struct{})
	for _, tag := range o.Tags() {
		if tag.Type != "" {
			seen[tag.Type] = struct{}{}
		}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ByStory groups the outcomes by user story name. Outcomes without a story
// are grouped under the empty name.
func (o *Outcomes) ByStory() map[string]*Outcomes {
	groups := make(map[string]*Outcomes)
	for t := range o.Each() {
		name := t.StoryName()
		g, ok := groups[name]
		if !ok {
			g = &Outcomes{}
			groups[name] = g
		}
		g.outcomes = append(g.outcomes, t)
	}
	return groups
}

// Result returns the most severe effective result in the set.
func (o *Outcomes) Result() TestResult {
	worst := ResultUndefined
	for t := range o.Each() {
		worst = MostSevere(worst, t.EffectiveResult())
	}
	return worst
}

// Duration returns the summed execution time of the set.
func (o *Outcomes) Duration() time.Duration {
	var d time.Duration
	for t := range o.Each() {
		d += t.Elapsed()
	}
	return d
}

// StepCount returns the number of leaf steps across the set.
func (o *Outcomes) StepCount() int {
	n := 0
	for t := range o.Each() {
		n += t.StepCount()
	}
	return n
}

// PercentPassing returns the share of successful outcomes in [0, 100].
// An empty set is 0% passing.
func (o *Outcomes) PercentPassing() float64 {
	total := o.Len()
	if total == 0 {
		return 0
	}
	return float64(o.Count(ResultSuccess)) * 100 / float64(total)
}

// Summary holds aggregate counts for a set.
type Summary struct {
	Total          int        `json:"total" yaml:"total"`
	Success        int        `json:"success" yaml:"success"`
	Failure        int        `json:"failure" yaml:"failure"`
	Error          int        `json:"error" yaml:"error"`
	Pending        int        `json:"pending" yaml:"pending"`
	Ignored        int        `json:"ignored" yaml:"ignored"`
	Skipped        int        `json:"skipped" yaml:"skipped"`
	Steps          int        `json:"steps" yaml:"steps"`
	DurationMillis int64      `json:"durationMillis" yaml:"durationMillis"`
	PercentPassing float64    `json:"percentPassing" yaml:"percentPassing"`
	Result         TestResult `json:"result" yaml:"result"`
}

// Summary computes the aggregate counts of the set.
func (o *Outcomes) Summary() Summary {
	s := Summary{
		Total:          o.Len(),
		Steps:          o.StepCount(),
		DurationMillis: o.Duration().Milliseconds(),
		PercentPassing: o.PercentPassing(),
		Result:         o.Result(),
	}
	for t := range o.Each() {
		switch t.EffectiveResult() {
		case ResultSuccess:
			s.Success++
		case ResultFailure:
			s.Failure++
		case ResultError:
			s.Error++
		case ResultPending:
			s.Pending++
		case ResultIgnored:
			s.Ignored++
		case ResultSkipped:
			s.Skipped++
		case ResultUndefined:
		}
	}
	return s
}
