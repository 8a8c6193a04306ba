// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package analytics

import (
	"testing"
	"time"

	"github.com/akaru-cli/akaru/internal/activity"
	"github.com/akaru-cli/akaru/internal/mood"
	"github.com/akaru-cli/akaru/internal/tiered"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var moodNow = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

func moodLog(labels ...string) []tiered.MoodLogEntry {
	out := make([]tiered.MoodLogEntry, 0, len(labels))
	for i, l := range labels {
		out = append(out, tiered.MoodLogEntry{
			Time: moodNow.AddDate(0, 0, -(len(labels) - 1 - i)),
			Mood: l,
		})
	}
	return out
}

func TestMoodAnalysisNoData(t *testing.T) {
	w := MoodAnalysis(tiered.ShortTerm{}, tiered.LongTerm{}, 7, moodNow)
	assert.Equal(t, TrendNoData, w.Trend)
	assert.Empty(t, w.Distribution)
	assert.Empty(t, w.Dominant)
}

func TestMoodAnalysisImproving(t *testing.T) {
	long := tiered.LongTerm{MoodLog: moodLog(
		tiered.MoodNegative, tiered.MoodNegative, tiered.MoodNegative,
		tiered.MoodPositive, tiered.MoodPositive, tiered.MoodPositive,
	)}

	w := MoodAnalysis(tiered.ShortTerm{}, long, 7, moodNow)
	assert.Equal(t, TrendImproving, w.Trend)
	assert.Equal(t, 3, w.Distribution[tiered.MoodPositive])
	assert.Equal(t, 3, w.Distribution[tiered.MoodNegative])
}

func TestMoodAnalysisWorsening(t *testing.T) {
	long := tiered.LongTerm{MoodLog: moodLog(
		tiered.MoodPositive, tiered.MoodPositive,
		tiered.MoodNegative, tiered.MoodNegative,
	)}

	w := MoodAnalysis(tiered.ShortTerm{}, long, 7, moodNow)
	assert.Equal(t, TrendWorsening, w.Trend)
}

func TestMoodAnalysisAlternatingWeek(t *testing.T) {
	// Seven days alternating positive/negative: halves are [p n p] and
	// [n p n p] with signed sums 1 and 0, so the trend worsens.
	long := tiered.LongTerm{MoodLog: moodLog(
		tiered.MoodPositive, tiered.MoodNegative, tiered.MoodPositive,
		tiered.MoodNegative, tiered.MoodPositive, tiered.MoodNegative,
		tiered.MoodPositive,
	)}

	w := MoodAnalysis(tiered.ShortTerm{}, long, 7, moodNow)
	assert.Equal(t, TrendWorsening, w.Trend)
	assert.Equal(t, 4, w.Distribution[tiered.MoodPositive])
	assert.Equal(t, 3, w.Distribution[tiered.MoodNegative])
	assert.Equal(t, tiered.MoodPositive, w.Dominant)
}

func TestMoodAnalysisDominantTieBreaksOnFirstSeen(t *testing.T) {
	long := tiered.LongTerm{MoodLog: moodLog(
		tiered.MoodNegative, tiered.MoodPositive,
		tiered.MoodNegative, tiered.MoodPositive,
	)}

	w := MoodAnalysis(tiered.ShortTerm{}, long, 7, moodNow)
	assert.Equal(t, tiered.MoodNegative, w.Dominant)
}

func TestMoodAnalysisIgnoresStaleEntries(t *testing.T) {
	long := tiered.LongTerm{MoodLog: []tiered.MoodLogEntry{
		{Time: moodNow.AddDate(0, 0, -30), Mood: tiered.MoodNegative},
		{Time: moodNow, Mood: tiered.MoodPositive},
	}}

	w := MoodAnalysis(tiered.ShortTerm{}, long, 7, moodNow)
	assert.Equal(t, 1, w.Distribution[tiered.MoodPositive])
	assert.Zero(t, w.Distribution[tiered.MoodNegative])
}

func TestMoodAnalysisFallsBackToHistoryTags(t *testing.T) {
	short := tiered.ShortTerm{History: []tiered.Entry{
		{Time: moodNow.AddDate(0, 0, -1), Tags: tiered.Tags{Mood: tiered.MoodConfused}},
		{Time: moodNow, Tags: tiered.Tags{Mood: tiered.MoodConfused}},
	}}

	w := MoodAnalysis(short, tiered.LongTerm{}, 7, moodNow)
	assert.Equal(t, 2, w.Distribution[tiered.MoodConfused])
	assert.Equal(t, tiered.MoodConfused, w.Dominant)
}

func TestMoodVsProductivityNilWhenEmpty(t *testing.T) {
	logs := []activity.Entry{{T: moodNow, Intent: "NOTE"}}
	entries := []mood.Entry{{Date: "2026-03-10", Mood: 4}}

	assert.Nil(t, MoodVsProductivity(nil, logs))
	assert.Nil(t, MoodVsProductivity(entries, nil))
}

func TestMoodVsProductivitySplitsByActiveDates(t *testing.T) {
	logs := []activity.Entry{
		{T: time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC), Intent: "NOTE"},
		{T: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), Intent: "TASK"},
	}
	entries := []mood.Entry{
		{Date: "2026-03-08", Mood: 5},
		{Date: "2026-03-09", Mood: 2},
		{Date: "2026-03-10", Mood: 4},
	}

	corr := MoodVsProductivity(entries, logs)
	require.NotNil(t, corr)
	require.NotNil(t, corr.ActiveAvg)
	require.NotNil(t, corr.InactiveAvg)
	assert.InDelta(t, 4.5, *corr.ActiveAvg, 0.001)
	assert.InDelta(t, 2.0, *corr.InactiveAvg, 0.001)
}

func TestMoodVsProductivityNilSideWhenAllActive(t *testing.T) {
	logs := []activity.Entry{{T: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), Intent: "NOTE"}}
	entries := []mood.Entry{{Date: "2026-03-10", Mood: 3}}

	corr := MoodVsProductivity(entries, logs)
	require.NotNil(t, corr)
	require.NotNil(t, corr.ActiveAvg)
	assert.Nil(t, corr.InactiveAvg)
}
