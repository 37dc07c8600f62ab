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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureOutcomes() []TestOutcome {
	return []TestOutcome{
		{
			Name:      "shouldAddToCart",
			Result:    ResultSuccess,
			Duration:  100,
			UserStory: &Story{Name: "Cart"},
			Tags:      []Tag{{Name: "smoke", Type: "feature"}},
			Steps:     []Step{{Result: ResultSuccess}, {Result: ResultSuccess}},
		},
		{
			Name:      "shouldRemoveFromCart",
			Result:    ResultFailure,
			Duration:  250,
			UserStory: &Story{Name: "Cart"},
			Tags:      []Tag{{Name: "Smoke", Type: "feature"}, {Name: "web", Type: "platform"}},
			Steps:     []Step{{Result: ResultFailure}},
		},
		{
			Name:      "shouldPay",
			Result:    ResultPending,
			UserStory: &Story{Name: "Checkout"},
		},
		{
			Name:   "shouldLogin",
			Result: ResultSuccess,
		},
	}
}

func TestNewOutcomesCopiesInput(t *testing.T) {
	list := fixtureOutcomes()
	set := NewOutcomes(list)

	list[0].Name = "mutated"
	assert.Equal(t, "shouldAddToCart", set.All()[0].Name)

	all := set.All()
	all[1].Name = "mutated"
	assert.Equal(t, "shouldRemoveFromCart", set.All()[1].Name)
}

func TestOutcomesPreservesOrder(t *testing.T) {
	set := NewOutcomes(fixtureOutcomes())

	var names []string
	for o := range set.Each() {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"shouldAddToCart", "shouldRemoveFromCart", "shouldPay", "shouldLogin"}, names)
}

func TestEachStopsEarly(t *testing.T) {
	set := NewOutcomes(fixtureOutcomes())
	n := 0
	for range set.Each() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestNilOutcomesIsEmpty(t *testing.T) {
	var set *Outcomes
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.All())
	assert.Equal(t, ResultUndefined, set.Result())
	assert.Equal(t, 0.0, set.PercentPassing())
	assert.Equal(t, 0, set.WithTag("smoke").Len())
	assert.Equal(t, 0, Empty().Len())
}

func TestOutcomesCounts(t *testing.T) {
	set := NewOutcomes(fixtureOutcomes())

	assert.Equal(t, 4, set.Len())
	assert.Equal(t, 2, set.Count(ResultSuccess))
	assert.Equal(t, 1, set.Count(ResultFailure))
	assert.Equal(t, 1, set.Count(ResultPending))
	assert.Equal(t, ResultFailure, set.Result())
	assert.Equal(t, 350*time.Millisecond, set.Duration())
	assert.Equal(t, 3, set.StepCount())
	assert.InDelta(t, 50.0, set.PercentPassing(), 0.001)
}

func TestOutcomesFilters(t *testing.T) {
	set := NewOutcomes(fixtureOutcomes())

	assert.Equal(t, 2, set.WithTag("smoke").Len())
	assert.Equal(t, 1, set.WithTagType("platform").Len())
	failures := set.WithResult(ResultFailure)
	require.Equal(t, 1, failures.Len())
	assert.Equal(t, "shouldRemoveFromCart", failures.All()[0].Name)
	assert.Equal(t, 4, set.Len(), "filtering must not change the source set")
}

func TestOutcomesTags(t *testing.T) {
	set := NewOutcomes(fixtureOutcomes())

	assert.Equal(t, []Tag{{Name: "smoke", Type: "feature"}, {Name: "web", Type: "platform"}}, set.Tags())
	assert.Equal(t, []string{"feature", "platform"}, set.TagTypes())
}

func TestOutcomesByStory(t *testing.T) {
	groups := NewOutcomes(fixtureOutcomes()).ByStory()

	require.Len(t, groups, 3)
	assert.Equal(t, 2, groups["Cart"].Len())
	assert.Equal(t, 1, groups["Checkout"].Len())
	assert.Equal(t, 1, groups[""].Len())
	assert.Equal(t, ResultFailure, groups["Cart"].Result())
}

func TestOutcomesSummary(t *testing.T) {
	s := NewOutcomes(fixtureOutcomes()).Summary()

	assert.Equal(t, Summary{
		Total:          4,
		Success:        2,
		Failure:        1,
		Pending:        1,
		Steps:          3,
		DurationMillis: 350,
		PercentPassing: 50,
		Result:         ResultFailure,
	}, s)
}
