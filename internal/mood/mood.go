// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package mood owns the append-only mood/energy check-in journal.
//
// Check-ins are additive: several entries may land on the same day and
// "today" views use the last one. Nothing is ever deduplicated.
package mood

import (
	"fmt"
	"math"
	"time"

	"github.com/akaru-cli/akaru/internal/store"
)

// DateLayout is the calendar-day format stored on entries
const DateLayout = "2006-01-02"

// statsWindow is the number of most recent entries aggregated by Stats
const statsWindow = 30

// Entry is one mood/energy check-in
type Entry struct {
	T      time.Time `json:"t"`
	Date   string    `json:"date"`
	Mood   int       `json:"mood"`
	Energy int       `json:"energy"`
	Note   string    `json:"note"`
}

// Summary aggregates the most recent check-ins
type Summary struct {
	Count      int
	AvgMood    float64
	AvgEnergy  float64
	LastMood   int
	LastEnergy int
}

// Journal manages the mood document at a fixed path
type Journal struct {
	path string
}

// OpenJournal creates a journal over the given document path
func OpenJournal(path string) *Journal {
	return &Journal{path: path}
}

func defaultEntries() []Entry {
	return []Entry{}
}

// Entries returns all check-ins, oldest first
func (j *Journal) Entries() []Entry {
	entries := store.Load(j.path, defaultEntries)
	if entries == nil {
		entries = []Entry{}
	}
	return entries
}

// Record appends a check-in and persists the journal. Mood and energy
// must be in [1,5].
func (j *Journal) Record(moodVal, energy int, note string) (Entry, error) {
	return j.RecordAt(time.Now(), moodVal, energy, note)
}

// RecordAt appends a check-in stamped with the given time
func (j *Journal) RecordAt(now time.Time, moodVal, energy int, note string) (Entry, error) {
	if moodVal < 1 || moodVal > 5 {
		return Entry{}, fmt.Errorf("mood must be between 1 and 5, got %d", moodVal)
	}
	if energy < 1 || energy > 5 {
		return Entry{}, fmt.Errorf("energy must be between 1 and 5, got %d", energy)
	}

	entry := Entry{
		T:      now,
		Date:   now.Format(DateLayout),
		Mood:   moodVal,
		Energy: energy,
		Note:   note,
	}

	entries := j.Entries()
	entries = append(entries, entry)
	if err := store.Save(j.path, entries); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Recent returns at most n check-ins, most recent last
func (j *Journal) Recent(n int) []Entry {
	entries := j.Entries()
	if n < 0 {
		n = 0
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries
}

// Stats summarizes the last 30 check-ins, or nil when none exist.
// Averages are rounded to one decimal place.
func (j *Journal) Stats() *Summary {
	recent := j.Recent(statsWindow)
	if len(recent) == 0 {
		return nil
	}

	var moodSum, energySum int
	for _, e := range recent {
		moodSum += e.Mood
		energySum += e.Energy
	}

	last := recent[len(recent)-1]
	return &Summary{
		Count:      len(recent),
		AvgMood:    round1(float64(moodSum) / float64(len(recent))),
		AvgEnergy:  round1(float64(energySum) / float64(len(recent))),
		LastMood:   last.Mood,
		LastEnergy: last.Energy,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
