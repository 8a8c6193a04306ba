// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package tiered owns the two-level interaction history: a short-term
// buffer of fresh entries and a capped long-term history with derived
// topic-frequency and mood side tables.
//
// Entries accumulate in short-term until the promotion threshold is
// reached, then Promote folds them into the long-term aggregates in one
// transition. Every operation loads the current documents from disk so
// no stale state is ever aggregated.
package tiered

import (
	"time"

	"github.com/akaru-cli/akaru/internal/store"
)

// DateLayout is the calendar-day format used by the streak record
const DateLayout = "2006-01-02"

// Manager operates the short/long-term document pair
type Manager struct {
	shortPath string
	longPath  string
	limits    Limits
}

// NewManager creates a manager over the given document paths
func NewManager(shortPath, longPath string, limits Limits) *Manager {
	return &Manager{shortPath: shortPath, longPath: longPath, limits: limits}
}

func defaultShort() ShortTerm {
	return ShortTerm{Created: time.Now(), History: []Entry{}}
}

func defaultLong() LongTerm {
	return LongTerm{
		Created:   time.Now(),
		History:   []Entry{},
		MoodLog:   []MoodLogEntry{},
		TopicFreq: map[string]int{},
	}
}

// LoadShort reads the short-term document, backfilling defaults
func (m *Manager) LoadShort() ShortTerm {
	short := store.Load(m.shortPath, defaultShort)
	if short.History == nil {
		short.History = []Entry{}
	}
	return short
}

// LoadLong reads the long-term document, backfilling defaults
func (m *Manager) LoadLong() LongTerm {
	long := store.Load(m.longPath, defaultLong)
	if long.History == nil {
		long.History = []Entry{}
	}
	if long.MoodLog == nil {
		long.MoodLog = []MoodLogEntry{}
	}
	if long.TopicFreq == nil {
		long.TopicFreq = map[string]int{}
	}
	return long
}

// mainDocument is the bridge history document written by the chat front
// end; only its history list is consumed here.
type mainDocument struct {
	History []Entry `json:"history"`
}

// SyncFromMain pulls entries from the bridge history document into
// short-term. Returns the number of new entries merged.
func (m *Manager) SyncFromMain(mainPath string) (int, error) {
	main := store.Load(mainPath, func() mainDocument { return mainDocument{} })
	return m.Sync(main.History)
}

// Sync merges entries not already present in short-term, keyed by entry
// timestamp. Source order is preserved; nothing is ever removed.
func (m *Manager) Sync(entries []Entry) (int, error) {
	short := m.LoadShort()

	seen := make(map[int64]bool, len(short.History))
	for _, e := range short.History {
		seen[e.Time.UnixNano()] = true
	}

	added := 0
	for _, e := range entries {
		if seen[e.Time.UnixNano()] {
			continue
		}
		short.History = append(short.History, e)
		seen[e.Time.UnixNano()] = true
		added++
	}

	if added == 0 {
		return 0, nil
	}
	if err := store.Save(m.shortPath, short); err != nil {
		return 0, err
	}
	return added, nil
}

// Promote folds the short-term buffer into the long-term aggregates.
// Returns false without writing anything while the buffer is below the
// promotion threshold. The long-term side is saved before short-term is
// cleared so a crash in between cannot lose entries.
func (m *Manager) Promote() (bool, error) {
	short := m.LoadShort()
	if len(short.History) < m.limits.ShortTermMax {
		return false, nil
	}

	long := m.LoadLong()

	for _, e := range short.History {
		for _, topic := range e.Tags.Topics {
			long.TopicFreq[topic]++
		}
	}

	for _, e := range short.History {
		if e.Tags.Mood != "" {
			long.MoodLog = append(long.MoodLog, MoodLogEntry{Time: e.Time, Mood: e.Tags.Mood})
		}
	}
	if len(long.MoodLog) > m.limits.MoodLogMax {
		long.MoodLog = append([]MoodLogEntry{}, long.MoodLog[len(long.MoodLog)-m.limits.MoodLogMax:]...)
	}

	long.History = append(long.History, short.History...)
	if len(long.History) > m.limits.LongTermMax {
		long.History = append([]Entry{}, long.History[len(long.History)-m.limits.LongTermMax:]...)
	}

	if err := store.Save(m.longPath, long); err != nil {
		return false, err
	}

	short.History = []Entry{}
	if err := store.Save(m.shortPath, short); err != nil {
		return false, err
	}
	return true, nil
}

// Flush trims the long-term history to the most recent keepLast entries
// and returns the number removed. Independent of promotion.
func (m *Manager) Flush(keepLast int) (int, error) {
	long := m.LoadLong()
	before := len(long.History)
	if keepLast < 0 {
		keepLast = 0
	}
	if before > keepLast {
		long.History = append([]Entry{}, long.History[before-keepLast:]...)
	}
	if err := store.Save(m.longPath, long); err != nil {
		return 0, err
	}
	return before - len(long.History), nil
}

// Stats summarizes the current memory condition
func (m *Manager) Stats() Stats {
	short := m.LoadShort()
	long := m.LoadLong()
	return Stats{
		ShortCount: len(short.History),
		LongCount:  len(long.History),
		Total:      len(short.History) + len(long.History),
		TopicFreq:  long.TopicFreq,
		MoodLogLen: len(long.MoodLog),
		Streak:     long.Streak,
		ShortFull:  len(short.History) >= m.limits.ShortTermMax,
	}
}
