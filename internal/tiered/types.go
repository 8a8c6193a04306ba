// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tiered

import "time"

// Mood tag values carried by history entries
const (
	MoodPositive = "positif"
	MoodNegative = "negatif"
	MoodConfused = "bingung"
)

// Tags holds the optional annotations of a history entry
type Tags struct {
	Mood   string   `json:"mood,omitempty"`
	Topics []string `json:"topics,omitempty"`
}

// Entry is one interaction in the short- or long-term history
type Entry struct {
	Time time.Time `json:"time"`
	Tags Tags      `json:"tags"`
}

// MoodLogEntry is a mood observation folded out during promotion
type MoodLogEntry struct {
	Time time.Time `json:"time"`
	Mood string    `json:"mood"`
}

// Streak is the long-term activity streak record. It is independent of
// the session-context streak and only ever advances on activity; it does
// not decay on inactivity (the gap is reported read-time instead).
type Streak struct {
	Current  int    `json:"current"`
	LastDate string `json:"last_date"`
	Best     int    `json:"best"`
}

// ShortTerm is the recent, unprocessed interaction buffer
type ShortTerm struct {
	Created time.Time `json:"created"`
	History []Entry   `json:"history"`
}

// LongTerm is the aggregated, capped interaction history with its
// derived side tables
type LongTerm struct {
	Created   time.Time      `json:"created"`
	History   []Entry        `json:"history"`
	MoodLog   []MoodLogEntry `json:"mood_log"`
	TopicFreq map[string]int `json:"topic_freq"`
	Streak    Streak         `json:"streak"`
}

// Stats is a summary of the memory condition for reports and watchdogs
type Stats struct {
	ShortCount int
	LongCount  int
	Total      int
	TopicFreq  map[string]int
	MoodLogLen int
	Streak     Streak
	ShortFull  bool
}

// Limits holds the capacity thresholds of the tiered log
type Limits struct {
	ShortTermMax int
	LongTermMax  int
	MoodLogMax   int
}

// DefaultLimits mirror the persisted-format caps
func DefaultLimits() Limits {
	return Limits{ShortTermMax: 30, LongTermMax: 200, MoodLogMax: 500}
}
