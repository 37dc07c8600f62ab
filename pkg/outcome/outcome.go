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
	"encoding/xml"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TestOutcome is the recorded result of one executed test scenario.
//
// The same struct describes both report encodings: XML files have an
// <acceptance-test-run> root element with attributes for the scalar fields,
// JSON files use the camelCase field names.
type TestOutcome struct {
	XMLName xml.Name `json:"-" yaml:"-" xml:"acceptance-test-run"`

	// Name is the method-style name of the test, e.g. "shouldFindTheBestDeal".
	Name string `json:"name" yaml:"name" xml:"name,attr"`

	// Title is an optional human-readable title. DisplayTitle derives one
	// from Name when it is empty.
	Title string `json:"title,omitempty" yaml:"title,omitempty" xml:"title,attr,omitempty"`

	Result TestResult `json:"result" yaml:"result" xml:"result,attr"`

	// Duration is the execution time in milliseconds.
	Duration int64 `json:"duration,omitempty" yaml:"duration,omitempty" xml:"duration,attr,omitempty"`

	StartTime time.Time `json:"startTime,omitzero" yaml:"startTime,omitempty" xml:"timestamp,attr,omitempty"`

	SessionID string `json:"sessionId,omitempty" yaml:"sessionId,omitempty" xml:"session-id,attr,omitempty"`

	UserStory *Story `json:"userStory,omitempty" yaml:"userStory,omitempty" xml:"user-story,omitempty"`

	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty" xml:"tags>tag"`

	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty" xml:"issues>issue"`

	Steps []Step `json:"testSteps,omitempty" yaml:"testSteps,omitempty" xml:"test-step"`
}

// Story identifies the user story a test outcome belongs to.
type Story struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty" xml:"id,attr,omitempty"`
	Name string `json:"name" yaml:"name" xml:"name,attr"`
	Path string `json:"path,omitempty" yaml:"path,omitempty" xml:"path,attr,omitempty"`
}

// Tag is a typed label attached to an outcome, e.g. {Name: "smoke", Type: "feature"}.
type Tag struct {
	Name string `json:"name" yaml:"name" xml:"name,attr"`
	Type string `json:"type,omitempty" yaml:"type,omitempty" xml:"type,attr,omitempty"`
}

// String returns "type:name", or just the name for untyped tags.
func (t Tag) String() string {
	if t.Type == "" {
		return t.Name
	}
	return t.Type + ":" + t.Name
}

// Step is one step of a test outcome. Steps nest to form groups.
type Step struct {
	Description  string     `json:"description" yaml:"description" xml:"description"`
	Result       TestResult `json:"result" yaml:"result" xml:"result,attr"`
	Duration     int64      `json:"duration,omitempty" yaml:"duration,omitempty" xml:"duration,attr,omitempty"`
	ErrorMessage string     `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty" xml:"error,omitempty"`
	Children     []Step     `json:"children,omitempty" yaml:"children,omitempty" xml:"test-step"`
}

// IsGroup reports whether the step contains nested steps.
func (s Step) IsGroup() bool {
	return len(s.Children) > 0
}

// leafCount counts the non-group steps below and including s.
func (s Step) leafCount() int {
	if !s.IsGroup() {
		return 1
	}
	n := 0
	for _, c := range s.Children {
		n += c.leafCount()
	}
	return n
}

// Validate checks that the outcome identifies a test and carries a known result.
func (o TestOutcome) Validate() error {
	if strings.TrimSpace(o.Name) == "" && strings.TrimSpace(o.Title) == "" {
		return fmt.Errorf("test outcome has neither name nor title")
	}
	if o.Result != "" && !o.Result.IsValid() {
		return fmt.Errorf("test outcome %q has unknown result %q", o.Name, o.Result)
	}
	if o.Duration < 0 {
		return fmt.Errorf("test outcome %q has negative duration %d", o.Name, o.Duration)
	}
	return nil
}

// DisplayTitle returns Title, or a sentence derived from Name:
// "shouldFindTheBestDeal" and "should_find_the_best_deal" both become
// "Should find the best deal".
func (o TestOutcome) DisplayTitle() string {
	if t := strings.TrimSpace(o.Title); t != "" {
		return t
	}
	return Humanize(o.Name)
}

// StoryName returns the user story name, or an empty string.
func (o TestOutcome) StoryName() string {
	if o.UserStory == nil {
		return ""
	}
	return o.UserStory.Name
}

// HasTag reports whether the outcome carries a tag with the given name,
// compared case-insensitively.
func (o TestOutcome) HasTag(name string) bool {
	for _, t := range o.Tags {
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

// HasTagType reports whether the outcome carries a tag of the given type.
func (o TestOutcome) HasTagType(tagType string) bool {
	for _, t := range o.Tags {
		if strings.EqualFold(t.Type, tagType) {
			return true
		}
	}
	return false
}

// Elapsed returns Duration as a time.Duration.
func (o TestOutcome) Elapsed() time.Duration {
	return time.Duration(o.Duration) * time.Millisecond
}

// StepCount returns the number of leaf steps.
func (o TestOutcome) StepCount() int {
	n := 0
	for _, s := range o.Steps {
		n += s.leafCount()
	}
	return n
}

// EffectiveResult returns Result when set, otherwise the most severe leaf
// step result.
func (o TestOutcome) EffectiveResult() TestResult {
	if o.Result != "" && o.Result != ResultUndefined {
		return o.Result
	}
	var results []TestResult
	var walk func([]Step)
	walk = func(steps []Step) {
		for _, s := range steps {
			if s.IsGroup() {
				walk(s.Children)
				continue
			}
			results = append(results, s.Result)
		}
	}
	walk(o.Steps)
	return MostSevere(results...)
}

// Humanize turns a method-style identifier into a sentence.
func Humanize(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}
	for i, w := range words {
		if !isAcronym(w) {
			words[i] = strings.ToLower(w)
		}
	}
	// Caser is stateful and must not be shared across goroutines.
	words[0] = cases.Title(language.English, cases.NoLower).String(words[0])
	return strings.Join(words, " ")
}

func splitWords(name string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(strings.TrimSpace(name))
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			flush()
			continue
		case unicode.IsUpper(r) && i > 0:
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

func isAcronym(w string) bool {
	if len([]rune(w)) < 2 {
		return false
	}
	for _, r := range w {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
