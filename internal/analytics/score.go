// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package analytics derives statistics from the persisted collections:
// productivity score, activity pattern, mood analysis, topic frequency
// and the tactical suggestions built on top of them.
//
// Every function is a pure read over snapshots passed in by the caller;
// nothing is cached and malformed data degrades to zero/empty results,
// never to an error.
package analytics

import (
	"time"

	"github.com/akaru-cli/akaru/internal/activity"
	"github.com/akaru-cli/akaru/internal/ledger"
)

// DateLayout is the calendar-day format used in date comparisons
const DateLayout = "2006-01-02"

// Score is the 0-100 productivity score with its breakdown
type Score struct {
	Total       int
	TaskScore   int // completion ratio, up to 40
	NoteScore   int // notes in the last 7 days, up to 30
	StreakScore int // consecutive active days from the flat log, up to 30
	StreakDays  int
	DoneTasks   int
	TotalTasks  int
	NotesWeek   int
}

// ProductivityScore computes the score from the ledger document and the
// flat activity log, evaluated now.
func ProductivityScore(doc ledger.Document, logs []activity.Entry, now time.Time) Score {
	var s Score

	s.TotalTasks = len(doc.Tasks)
	for _, t := range doc.Tasks {
		if t.Done {
			s.DoneTasks++
		}
	}
	if s.TotalTasks > 0 {
		s.TaskScore = s.DoneTasks * 40 / s.TotalTasks
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, n := range doc.Notes {
		if n.CreatedAt.After(weekAgo) {
			s.NotesWeek++
		}
	}
	s.NoteScore = min(s.NotesWeek*6, 30)

	activeDays := make(map[string]bool, len(logs))
	for _, e := range logs {
		if !e.T.IsZero() {
			activeDays[e.T.Format(DateLayout)] = true
		}
	}
	// Walk backward from today, stopping at the first inactive day
	for i := 0; i < 14; i++ {
		day := now.AddDate(0, 0, -i).Format(DateLayout)
		if !activeDays[day] {
			break
		}
		s.StreakDays++
	}
	s.StreakScore = min(s.StreakDays*3, 30)

	s.Total = s.TaskScore + s.NoteScore + s.StreakScore
	return s
}
