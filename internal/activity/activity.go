// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package activity owns the flat, capped log of executed commands. It is
// distinct from the tiered short/long-term history: the flat log feeds
// the 14-day streak inside the productivity score and the hour histogram.
package activity

import (
	"time"

	"github.com/akaru-cli/akaru/internal/store"
)

// Entry is one executed command
type Entry struct {
	T      time.Time `json:"t"`
	Intent string    `json:"intent"`
	OK     bool      `json:"ok"`
	Note   string    `json:"note,omitempty"`
}

// Log is the capped append-only command record
type Log struct {
	path    string
	max     int
	entries []Entry
}

func defaultEntries() []Entry {
	return []Entry{}
}

// Open loads the log at path. max caps the entry count; once exceeded
// only the newest max/2 entries are kept.
func Open(path string, max int) *Log {
	l := &Log{path: path, max: max}
	l.Reload()
	return l
}

// Reload re-reads the log from disk
func (l *Log) Reload() {
	l.entries = store.Load(l.path, defaultEntries)
	if l.entries == nil {
		l.entries = []Entry{}
	}
}

// Entries returns the current entries, oldest first
func (l *Log) Entries() []Entry {
	return l.entries
}

// Append records a command execution and persists the log
func (l *Log) Append(intent string, ok bool, note string) error {
	return l.AppendAt(time.Now(), intent, ok, note)
}

// AppendAt records a command execution at the given time
func (l *Log) AppendAt(now time.Time, intent string, ok bool, note string) error {
	l.entries = append(l.entries, Entry{T: now, Intent: intent, OK: ok, Note: note})
	if len(l.entries) > l.max {
		keep := l.max / 2
		l.entries = append([]Entry{}, l.entries[len(l.entries)-keep:]...)
	}
	return store.Save(l.path, l.entries)
}

// Reset clears the log and persists the empty state
func (l *Log) Reset() error {
	l.entries = []Entry{}
	return store.Save(l.path, l.entries)
}
