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
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/tally/pkg/outcome"
)

func TestXMLParser(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "login.xml", xmlOutcome("shouldLogIn", "FAILURE"))

	got, ok := XMLParser{}.Parse(path)
	require.True(t, ok)

	assert.Equal(t, "shouldLogIn", got.Name)
	assert.Equal(t, outcome.ResultFailure, got.Result)
	assert.Equal(t, int64(120), got.Duration)
	assert.Equal(t, time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC), got.StartTime.UTC())
	assert.Equal(t, "s-1", got.SessionID)
	require.NotNil(t, got.UserStory)
	assert.Equal(t, "Authentication", got.UserStory.Name)
	assert.Equal(t, "stories/auth.story", got.UserStory.Path)
	assert.Equal(t, []outcome.Tag{{Name: "smoke", Type: "feature"}, {Name: "web", Type: "platform"}}, got.Tags)
	assert.Equal(t, []string{"QA-17"}, got.Issues)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, "Open the login page", got.Steps[0].Description)
	require.Len(t, got.Steps[1].Children, 1)
	assert.Equal(t, "Press the login button", got.Steps[1].Children[0].Description)
	assert.Equal(t, 2, got.StepCount())
}

func TestJSONParser(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "cart.json", jsonOutcome("shouldAddToCart", "success"))

	got, ok := JSONParser{}.Parse(path)
	require.True(t, ok)

	assert.Equal(t, "shouldAddToCart", got.Name)
	assert.Equal(t, outcome.ResultSuccess, got.Result)
	assert.Equal(t, int64(75), got.Duration)
	require.NotNil(t, got.UserStory)
	assert.Equal(t, "Cart", got.UserStory.Name)
	require.Len(t, got.Steps, 1)
	assert.Equal(t, "Add item", got.Steps[0].Description)
}

func TestParserFailSoft(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		parser  Parser
		file    string
		content string
		reason  string
	}{
		{
			name:    "truncated xml",
			parser:  XMLParser{},
			file:    "truncated.xml",
			content: `<acceptance-test-run name="x" result="SUCCESS"><test-step`,
			reason:  failureDecode,
		},
		{
			name:    "wrong root element",
			parser:  XMLParser{},
			file:    "junit.xml",
			content: `<testsuite name="x"/>`,
			reason:  failureDecode,
		},
		{
			name:    "empty xml",
			parser:  XMLParser{},
			file:    "empty.xml",
			content: ``,
			reason:  failureDecode,
		},
		{
			name:    "unknown result",
			parser:  XMLParser{},
			file:    "odd.xml",
			content: `<acceptance-test-run name="x" result="MAYBE"/>`,
			reason:  failureDecode,
		},
		{
			name:    "anonymous xml",
			parser:  XMLParser{},
			file:    "anon.xml",
			content: `<acceptance-test-run result="SUCCESS"/>`,
			reason:  failureInvalid,
		},
		{
			name:    "truncated json",
			parser:  JSONParser{},
			file:    "truncated.json",
			content: `{"name": "x", "result": "SUC`,
			reason:  failureDecode,
		},
		{
			name:    "json array",
			parser:  JSONParser{},
			file:    "array.json",
			content: `[1, 2, 3]`,
			reason:  failureDecode,
		},
		{
			name:    "negative duration",
			parser:  JSONParser{},
			file:    "negative.json",
			content: `{"name": "x", "duration": -5}`,
			reason:  failureInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, dir, tt.file, tt.content)
			var format string
			switch tt.parser.(type) {
			case XMLParser:
				format = FormatXML.String()
			default:
				format = FormatJSON.String()
			}
			before := testutil.ToFloat64(parseFailures.WithLabelValues(format, tt.reason))

			got, ok := tt.parser.Parse(path)
			assert.False(t, ok)
			assert.Equal(t, outcome.TestOutcome{}, got)
			assert.Equal(t, before+1, testutil.ToFloat64(parseFailures.WithLabelValues(format, tt.reason)))
		})
	}
}

func TestParserMissingFile(t *testing.T) {
	_, ok := XMLParser{}.Parse("/nonexistent/outcome.xml")
	assert.False(t, ok)
}

func TestParserFor(t *testing.T) {
	p, err := ParserFor(FormatXML)
	require.NoError(t, err)
	assert.IsType(t, XMLParser{}, p)

	p, err = ParserFor(FormatJSON)
	require.NoError(t, err)
	assert.IsType(t, JSONParser{}, p)

	_, err = ParserFor(OutcomeFormat("yaml"))
	assert.Error(t, err)
}

func TestParserFunc(t *testing.T) {
	p := ParserFunc(func(path string) (outcome.TestOutcome, bool) {
		return outcome.TestOutcome{Name: path}, true
	})
	got, ok := p.Parse("x.xml")
	assert.True(t, ok)
	assert.Equal(t, "x.xml", got.Name)
}
