// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package analytics

import (
	"time"

	"github.com/akaru-cli/akaru/internal/activity"
	"github.com/akaru-cli/akaru/internal/mood"
	"github.com/akaru-cli/akaru/internal/tiered"
)

// Trend values of a mood analysis window
const (
	TrendImproving = "improving"
	TrendWorsening = "worsening"
	TrendStable    = "stable"
	TrendNoData    = "no data"
)

// MoodWindow is the analysis of mood tags over a recent window
type MoodWindow struct {
	Distribution map[string]int
	Trend        string
	Dominant     string
	Raw          []tiered.MoodLogEntry
}

// MoodCorrelation compares average journal mood on active vs inactive
// days. A nil side means no observations fell on that kind of day.
type MoodCorrelation struct {
	ActiveAvg   *float64
	InactiveAvg *float64
}

// MoodAnalysis inspects the long-term mood log over the last `days`
// days. When the window is empty it falls back to mood tags found in
// the combined short+long history. Trend compares the signed mood sum
// of the chronological first half of the window against the second
// half. Dominant is the most frequent label; on equal counts the label
// seen first in the scanned log wins.
func MoodAnalysis(short tiered.ShortTerm, long tiered.LongTerm, days int, now time.Time) MoodWindow {
	cutoff := now.AddDate(0, 0, -days).Format(DateLayout)

	var window []tiered.MoodLogEntry
	for _, e := range long.MoodLog {
		if e.Time.Format(DateLayout) >= cutoff {
			window = append(window, e)
		}
	}

	if len(window) == 0 {
		combined := append(append([]tiered.Entry{}, short.History...), long.History...)
		for _, e := range combined {
			if e.Tags.Mood != "" && e.Time.Format(DateLayout) >= cutoff {
				window = append(window, tiered.MoodLogEntry{Time: e.Time, Mood: e.Tags.Mood})
			}
		}
	}

	if len(window) == 0 {
		return MoodWindow{Distribution: map[string]int{}, Trend: TrendNoData}
	}

	dist := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, e := range window {
		if _, ok := firstSeen[e.Mood]; !ok {
			firstSeen[e.Mood] = i
		}
		dist[e.Mood]++
	}

	dominant := ""
	for label, c := range dist {
		if dominant == "" || c > dist[dominant] || (c == dist[dominant] && firstSeen[label] < firstSeen[dominant]) {
			dominant = label
		}
	}

	mid := len(window) / 2
	s1 := signedMoodSum(window[:mid])
	s2 := signedMoodSum(window[mid:])
	trend := TrendStable
	if s2 > s1 {
		trend = TrendImproving
	} else if s2 < s1 {
		trend = TrendWorsening
	}

	return MoodWindow{
		Distribution: dist,
		Trend:        trend,
		Dominant:     dominant,
		Raw:          window,
	}
}

func signedMoodSum(entries []tiered.MoodLogEntry) int {
	sum := 0
	for _, e := range entries {
		switch e.Mood {
		case tiered.MoodPositive:
			sum++
		case tiered.MoodNegative:
			sum--
		}
	}
	return sum
}

// MoodVsProductivity intersects journal dates with the set of dates
// present in the flat activity log. Returns nil when either the journal
// or the log is empty.
func MoodVsProductivity(entries []mood.Entry, logs []activity.Entry) *MoodCorrelation {
	if len(entries) == 0 || len(logs) == 0 {
		return nil
	}

	activeDates := make(map[string]bool, len(logs))
	for _, e := range logs {
		if !e.T.IsZero() {
			activeDates[e.T.Format(DateLayout)] = true
		}
	}

	var activeSum, activeN, inactiveSum, inactiveN int
	for _, e := range entries {
		if activeDates[e.Date] {
			activeSum += e.Mood
			activeN++
		} else {
			inactiveSum += e.Mood
			inactiveN++
		}
	}

	corr := &MoodCorrelation{}
	if activeN > 0 {
		avg := round1(float64(activeSum) / float64(activeN))
		corr.ActiveAvg = &avg
	}
	if inactiveN > 0 {
		avg := round1(float64(inactiveSum) / float64(inactiveN))
		corr.InactiveAvg = &avg
	}
	return corr
}
