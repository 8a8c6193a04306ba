// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package analytics

import (
	"testing"

	"github.com/akaru-cli/akaru/internal/tiered"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionsInsufficientData(t *testing.T) {
	out := GenerateSuggestions(tiered.Stats{Total: 4}, MoodWindow{}, tiered.StreakStatus{}, nil, nil)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "Not enough data")
}

func TestSuggestionsFallback(t *testing.T) {
	stats := tiered.Stats{Total: 10}
	out := GenerateSuggestions(stats, MoodWindow{Trend: TrendStable}, tiered.StreakStatus{}, nil, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "System operating normally. Keep using it consistently.", out[0])
}

func TestSuggestionsStreakWarningComesFirst(t *testing.T) {
	stats := tiered.Stats{Total: 10}
	streak := tiered.StreakStatus{Current: 6, Warning: "Not active today yet, the streak can still continue."}

	out := GenerateSuggestions(stats, MoodWindow{Trend: TrendStable}, streak, nil, nil)
	require.Len(t, out, 2)
	assert.Contains(t, out[0], "⚠ STREAK:")
	assert.Contains(t, out[1], "6-day streak")
}

func TestSuggestionsStreakRegression(t *testing.T) {
	stats := tiered.Stats{Total: 10}
	streak := tiered.StreakStatus{Current: 2, Best: 9}

	out := GenerateSuggestions(stats, MoodWindow{Trend: TrendStable}, streak, nil, nil)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "far below your best run")
}

func TestSuggestionsNegativeSpike(t *testing.T) {
	stats := tiered.Stats{Total: 10}
	moodW := MoodWindow{
		Trend: TrendStable,
		Distribution: map[string]int{
			tiered.MoodNegative: 5,
			tiered.MoodPositive: 2,
		},
	}

	out := GenerateSuggestions(stats, moodW, tiered.StreakStatus{}, nil, nil)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "5 negative-mood interactions")
}

func TestSuggestionsLateNightPeak(t *testing.T) {
	stats := tiered.Stats{Total: 10}
	pattern := &Pattern{PeakHour: 2, Label: HourLabel(2)}

	out := GenerateSuggestions(stats, MoodWindow{Trend: TrendStable}, tiered.StreakStatus{}, pattern, nil)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "02:00 (late night)")
	assert.Contains(t, out[0], "sleep quality")
}

func TestSuggestionsFixedOrder(t *testing.T) {
	stats := tiered.Stats{Total: 60, ShortCount: 25}
	moodW := MoodWindow{
		Trend: TrendWorsening,
		Distribution: map[string]int{
			tiered.MoodNegative: 4,
			tiered.MoodPositive: 1,
		},
	}
	streak := tiered.StreakStatus{Current: 7, Best: 7}
	pattern := &Pattern{PeakHour: 10, Label: HourLabel(10)}
	topics := []TopicCount{{Topic: "work", Count: 8}, {Topic: "study", Count: 3}}

	out := GenerateSuggestions(stats, moodW, streak, pattern, topics)
	require.Len(t, out, 6)
	assert.Contains(t, out[0], "7-day streak")
	assert.Contains(t, out[1], "trending down")
	assert.Contains(t, out[2], "negative-mood interactions")
	assert.Contains(t, out[3], "10:00 (late morning)")
	assert.Contains(t, out[4], "almost full")
	assert.Contains(t, out[5], "'work' (8x), 'study' (3x)")
}

func TestSuggestionsNameOnlyTopTwoTopics(t *testing.T) {
	stats := tiered.Stats{Total: 10}
	topics := []TopicCount{
		{Topic: "work", Count: 9},
		{Topic: "study", Count: 8},
		{Topic: "health", Count: 7},
		{Topic: "finance", Count: 6},
	}

	out := GenerateSuggestions(stats, MoodWindow{Trend: TrendStable}, tiered.StreakStatus{}, nil, topics)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "'work' (9x), 'study' (8x)")
	assert.NotContains(t, out[0], "health")
	assert.NotContains(t, out[0], "finance")
}

func TestSuggestionsDeterministic(t *testing.T) {
	stats := tiered.Stats{Total: 60, ShortCount: 25}
	moodW := MoodWindow{
		Trend: TrendImproving,
		Distribution: map[string]int{
			tiered.MoodPositive: 6,
			tiered.MoodNegative: 2,
		},
	}
	streak := tiered.StreakStatus{Current: 5, Best: 5}
	pattern := &Pattern{PeakHour: 16, Label: HourLabel(16)}
	topics := []TopicCount{{Topic: "work", Count: 4}}

	first := GenerateSuggestions(stats, moodW, streak, pattern, topics)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GenerateSuggestions(stats, moodW, streak, pattern, topics))
	}
}
