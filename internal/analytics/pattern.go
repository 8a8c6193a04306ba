// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package analytics

import (
	"sort"
	"time"

	"github.com/akaru-cli/akaru/internal/activity"
)

// Pattern describes when activity happens across the day
type Pattern struct {
	PeakHour  int
	Label     string
	Histogram map[int]int
}

// IntentCount is one entry of the intent distribution
type IntentCount struct {
	Intent string
	Count  int
}

// ActivityPattern finds the most frequent hour-of-day in the flat log.
// Ties are broken by the hour encountered first in log order. Returns
// nil when the log holds no timestamped entries.
func ActivityPattern(logs []activity.Entry) *Pattern {
	times := make([]time.Time, 0, len(logs))
	for _, e := range logs {
		if !e.T.IsZero() {
			times = append(times, e.T)
		}
	}
	return HourPattern(times)
}

// HourPattern builds an hour histogram from the given timestamps and
// picks the peak. Shared by the flat-log pattern and the weekly summary
// over the tiered history.
func HourPattern(times []time.Time) *Pattern {
	if len(times) == 0 {
		return nil
	}

	counts := make(map[int]int)
	firstSeen := make(map[int]int)
	for i, t := range times {
		h := t.Hour()
		if _, ok := firstSeen[h]; !ok {
			firstSeen[h] = i
		}
		counts[h]++
	}

	peak := -1
	for h, c := range counts {
		if peak < 0 || c > counts[peak] || (c == counts[peak] && firstSeen[h] < firstSeen[peak]) {
			peak = h
		}
	}

	return &Pattern{
		PeakHour:  peak,
		Label:     HourLabel(peak),
		Histogram: counts,
	}
}

// HourLabel buckets an hour of day into a report label
func HourLabel(h int) string {
	switch {
	case h >= 5 && h < 9:
		return "morning"
	case h >= 9 && h < 12:
		return "late morning"
	case h >= 12 && h < 15:
		return "midday"
	case h >= 15 && h < 18:
		return "afternoon"
	case h >= 18 && h < 21:
		return "evening"
	default:
		return "late night"
	}
}

// IntentDistribution counts intents in the flat log and returns the top
// n, count descending, earlier-logged intents winning ties.
func IntentDistribution(logs []activity.Entry, n int) []IntentCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, e := range logs {
		intent := e.Intent
		if intent == "" {
			intent = "?"
		}
		if _, ok := firstSeen[intent]; !ok {
			firstSeen[intent] = i
		}
		counts[intent]++
	}

	out := make([]IntentCount, 0, len(counts))
	for intent, c := range counts {
		out = append(out, IntentCount{Intent: intent, Count: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Intent] < firstSeen[out[j].Intent]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
