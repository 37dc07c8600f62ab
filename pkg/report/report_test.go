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
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/tally/pkg/header"
	"github.com/NVIDIA/tally/pkg/outcome"
	"github.com/NVIDIA/tally/pkg/serializer"
)

func fixtureSet() *outcome.Outcomes {
	return outcome.NewOutcomes([]outcome.TestOutcome{
		{
			Name:      "shouldRemoveItem",
			Result:    outcome.ResultFailure,
			Duration:  200,
			UserStory: &outcome.Story{Name: "Cart"},
			Tags:      []outcome.Tag{{Name: "smoke", Type: "feature"}},
			Issues:    []string{"QA-9"},
			Steps:     []outcome.Step{{Result: outcome.ResultFailure}},
		},
		{
			Name:      "shouldAddItem",
			Result:    outcome.ResultSuccess,
			Duration:  100,
			UserStory: &outcome.Story{Name: "Cart"},
			Steps:     []outcome.Step{{Result: outcome.ResultSuccess}, {Result: outcome.ResultSuccess}},
		},
		{
			Name:   "shouldLogIn",
			Title:  "Log in with valid credentials",
			Result: outcome.ResultSuccess,
		},
	})
}

func TestNew(t *testing.T) {
	rpt := New(fixtureSet(),
		WithSource("/reports"),
		WithFormat("xml"),
		WithVersion("v1.2.3"),
		WithIDGenerator(func() string { return "fixed" }))

	assert.Equal(t, header.KindOutcomeReport, rpt.Kind)
	assert.Equal(t, header.APIVersion, rpt.APIVersion)
	assert.Equal(t, "v1.2.3", rpt.Metadata["version"])
	assert.NotEmpty(t, rpt.Metadata["timestamp"])
	assert.Equal(t, "fixed", rpt.ID)
	assert.Equal(t, "/reports", rpt.Source)
	assert.Equal(t, "xml", rpt.Format)

	assert.Equal(t, 3, rpt.Summary.Total)
	assert.Equal(t, 2, rpt.Summary.Success)
	assert.Equal(t, 1, rpt.Summary.Failure)
	assert.Equal(t, outcome.ResultFailure, rpt.Summary.Result)
	assert.True(t, rpt.Failing())

	require.Len(t, rpt.Stories, 2)
	assert.Equal(t, "(none)", rpt.Stories[0].Name)
	assert.Equal(t, "Cart", rpt.Stories[1].Name)
	assert.Equal(t, 2, rpt.Stories[1].Total)
	assert.Equal(t, 1, rpt.Stories[1].Success)
	assert.InDelta(t, 50.0, rpt.Stories[1].PercentPassing, 0.001)
	assert.Equal(t, outcome.ResultFailure, rpt.Stories[1].Result)

	assert.Equal(t, []string{"feature:smoke"}, rpt.Tags)

	require.Len(t, rpt.Rows, 3)
	assert.Equal(t, "Log in with valid credentials", rpt.Rows[0].Title)
	assert.Equal(t, "Should add item", rpt.Rows[1].Title)
	assert.Equal(t, 2, rpt.Rows[1].Steps)
	assert.Equal(t, "Should remove item", rpt.Rows[2].Title)
	assert.Equal(t, []string{"feature:smoke"}, rpt.Rows[2].Tags)
	assert.Equal(t, []string{"QA-9"}, rpt.Rows[2].Issues)
}

func TestNewDefaultID(t *testing.T) {
	rpt := New(fixtureSet())
	_, err := uuid.Parse(rpt.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, rpt.ID, New(fixtureSet()).ID)
}

func TestNewWithoutRows(t *testing.T) {
	rpt := New(fixtureSet(), WithRows(false))
	assert.Nil(t, rpt.Rows)
	assert.Equal(t, 3, rpt.Summary.Total)
}

func TestNewEmpty(t *testing.T) {
	for name, set := range map[string]*outcome.Outcomes{
		"nil":   nil,
		"empty": outcome.Empty(),
	} {
		t.Run(name, func(t *testing.T) {
			rpt := New(set)
			assert.Equal(t, 0, rpt.Summary.Total)
			assert.Nil(t, rpt.Stories)
			assert.Nil(t, rpt.Rows)
			assert.Nil(t, rpt.Tags)
			assert.False(t, rpt.Failing())
		})
	}
}

func TestReportIndependentOfLoadOrder(t *testing.T) {
	all := fixtureSet().All()
	reversed := make([]outcome.TestOutcome, len(all))
	for i, o := range all {
		reversed[len(all)-1-i] = o
	}

	id := WithIDGenerator(func() string { return "id" })
	a := New(outcome.NewOutcomes(all), id)
	b := New(outcome.NewOutcomes(reversed), id)

	assert.Equal(t, a.Rows, b.Rows)
	assert.Equal(t, a.Stories, b.Stories)
	assert.Equal(t, a.Summary, b.Summary)
}

func TestReportSerialization(t *testing.T) {
	rpt := New(fixtureSet(), WithVersion("v1"))

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(rpt)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "OutcomeReport", got["kind"])
		assert.Equal(t, header.APIVersion, got["apiVersion"])
		assert.Contains(t, got, "summary")
		assert.Contains(t, got, "outcomes")
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(rpt)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, "OutcomeReport", got["kind"])
		assert.NotContains(t, got, "header")
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, serializer.NewWriter(serializer.FormatTable, &buf).Serialize(context.Background(), rpt))
		out := buf.String()
		assert.Contains(t, out, "Summary.Total")
		assert.Contains(t, out, "Kind")
		assert.Contains(t, out, "Rows.[0].Title")
	})
}
