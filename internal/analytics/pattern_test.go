// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package analytics

import (
	"testing"
	"time"

	"github.com/akaru-cli/akaru/internal/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2026, 3, 10, hour, 0, 0, 0, time.UTC)
}

func TestActivityPatternEmpty(t *testing.T) {
	assert.Nil(t, ActivityPattern(nil))
	assert.Nil(t, ActivityPattern([]activity.Entry{{Intent: "NOTE"}}))
}

func TestActivityPatternPeak(t *testing.T) {
	logs := []activity.Entry{
		{T: at(9), Intent: "NOTE"},
		{T: at(14), Intent: "TASK"},
		{T: at(14), Intent: "NOTE"},
		{T: at(22), Intent: "MOOD"},
	}

	p := ActivityPattern(logs)
	require.NotNil(t, p)
	assert.Equal(t, 14, p.PeakHour)
	assert.Equal(t, "midday", p.Label)
	assert.Equal(t, 2, p.Histogram[14])
}

func TestActivityPatternTieBreaksOnFirstSeen(t *testing.T) {
	logs := []activity.Entry{
		{T: at(16), Intent: "NOTE"},
		{T: at(9), Intent: "NOTE"},
		{T: at(9), Intent: "NOTE"},
		{T: at(16), Intent: "NOTE"},
	}

	p := ActivityPattern(logs)
	require.NotNil(t, p)
	assert.Equal(t, 16, p.PeakHour)
}

func TestHourLabel(t *testing.T) {
	cases := []struct {
		hour  int
		label string
	}{
		{5, "morning"},
		{8, "morning"},
		{9, "late morning"},
		{11, "late morning"},
		{12, "midday"},
		{14, "midday"},
		{15, "afternoon"},
		{17, "afternoon"},
		{18, "evening"},
		{20, "evening"},
		{21, "late night"},
		{23, "late night"},
		{0, "late night"},
		{4, "late night"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.label, HourLabel(tc.hour), "hour %d", tc.hour)
	}
}

func TestIntentDistribution(t *testing.T) {
	logs := []activity.Entry{
		{T: at(9), Intent: "NOTE"},
		{T: at(10), Intent: "TASK"},
		{T: at(11), Intent: "NOTE"},
		{T: at(12), Intent: "MOOD"},
		{T: at(13), Intent: ""},
	}

	dist := IntentDistribution(logs, 2)
	require.Len(t, dist, 2)
	assert.Equal(t, IntentCount{Intent: "NOTE", Count: 2}, dist[0])
	// TASK and MOOD both count 1, TASK was logged first
	assert.Equal(t, IntentCount{Intent: "TASK", Count: 1}, dist[1])
}
