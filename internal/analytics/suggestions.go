// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package analytics

import (
	"fmt"
	"strings"

	"github.com/akaru-cli/akaru/internal/tiered"
)

// shortNearFull is the short-term fill level that triggers the
// memory-volume suggestion, just below the promotion threshold
const shortNearFull = 20

// minInteractions is the data floor below which only the
// insufficient-data message is produced
const minInteractions = 5

// dominantTopics is how many topics the topic suggestion names
const dominantTopics = 2

// GenerateSuggestions produces the ordered tactical suggestion list.
// Rules fire in fixed priority order, so identical inputs always yield
// the identical sequence.
func GenerateSuggestions(stats tiered.Stats, moodW MoodWindow, streak tiered.StreakStatus, pattern *Pattern, topTopics []TopicCount) []string {
	if stats.Total < minInteractions {
		return []string{"Not enough data yet. Use the assistant more often so habit patterns can be read."}
	}

	var out []string

	if streak.Warning != "" {
		out = append(out, fmt.Sprintf("⚠ STREAK: %s", streak.Warning))
	}
	if streak.Current >= 5 {
		out = append(out, fmt.Sprintf("🔥 %d-day streak. Keep it up, this is a solid pattern.", streak.Current))
	} else if streak.Current > 0 && streak.Best > 0 && streak.Current < streak.Best/2 {
		out = append(out, fmt.Sprintf("Your streak (%d days) is far below your best run (%d days). Did something change?",
			streak.Current, streak.Best))
	}

	switch moodW.Trend {
	case TrendWorsening:
		out = append(out, "📉 Your mood is trending down over this period. Check your workload or sleep pattern.")
	case TrendImproving:
		out = append(out, "📈 Your mood is trending up. Keep the current routine going.")
	}

	negCount := moodW.Distribution[tiered.MoodNegative]
	posCount := moodW.Distribution[tiered.MoodPositive]
	if negCount > posCount && negCount > 3 {
		out = append(out, fmt.Sprintf("There were %d negative-mood interactions this week. Consider scheduling recovery time.", negCount))
	}

	if pattern != nil {
		if pattern.PeakHour >= 0 && pattern.PeakHour < 5 {
			out = append(out, fmt.Sprintf("You are most active around %02d:00 (late night). Watch your sleep quality and long-term focus.", pattern.PeakHour))
		} else {
			out = append(out, fmt.Sprintf("You are most productive around %02d:00 (%s). Schedule important tasks in that window.", pattern.PeakHour, pattern.Label))
		}
	}

	if stats.ShortCount > shortNearFull {
		out = append(out, "Short-term memory is almost full. Entries will soon be promoted to long-term automatically.")
	} else if stats.Total > 50 {
		out = append(out, fmt.Sprintf("You already have %d recorded interactions. Review the weekly analysis to measure consistency.", stats.Total))
	}

	if len(topTopics) > 0 {
		// Only the two dominant topics are named, however long the list.
		top := topTopics
		if len(top) > dominantTopics {
			top = top[:dominantTopics]
		}
		parts := make([]string, 0, len(top))
		for _, tc := range top {
			parts = append(parts, fmt.Sprintf("'%s' (%dx)", tc.Topic, tc.Count))
		}
		out = append(out, fmt.Sprintf("Most frequent topics: %s. This is what occupies your mind the most.", strings.Join(parts, ", ")))
	}

	if len(out) == 0 {
		out = append(out, "System operating normally. Keep using it consistently.")
	}
	return out
}
