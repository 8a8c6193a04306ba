// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package session tracks the per-installation session context: last
// activity, session count and the context-based streak counter.
//
// This streak is independent from the one kept inside the long-term
// memory document (package tiered); reports reference each on its own.
package session

import (
	"time"

	"github.com/akaru-cli/akaru/internal/store"
)

// DateLayout is the calendar-day format used for streak comparisons
const DateLayout = "2006-01-02"

// Context is the persisted singleton session record
type Context struct {
	LastActiveAt   *time.Time `json:"last_active_at"`
	LastIntent     string     `json:"last_intent"`
	LastNote       string     `json:"last_note"`
	SessionCount   int        `json:"session_count"`
	StreakDays     int        `json:"streak_days"`
	LastActiveDate string     `json:"last_active_date"`
}

// Manager owns the session context document at a fixed path
type Manager struct {
	path string
	ctx  Context
}

func defaultContext() Context {
	return Context{}
}

// Open loads the session context, substituting an empty record when the
// file is missing or corrupt.
func Open(path string) *Manager {
	m := &Manager{path: path}
	m.ctx = store.Load(path, defaultContext)
	return m
}

// Context returns a copy of the current session record
func (m *Manager) Context() Context {
	return m.ctx
}

// StartSession increments the session counter and persists, called once
// per process start.
func (m *Manager) StartSession() error {
	m.ctx.SessionCount++
	return store.Save(m.path, m.ctx)
}

// Touch records a user action at the current time
func (m *Manager) Touch(intent, noteText string) error {
	return m.TouchAt(time.Now(), intent, noteText)
}

// TouchAt records a user action at the given time: updates last-active
// fields and applies the streak law. Within the same day the streak is
// unchanged; exactly one day after the stored date it increments; any
// larger gap or first-ever activity resets it to 1.
func (m *Manager) TouchAt(now time.Time, intent, noteText string) error {
	m.ctx.LastActiveAt = &now
	m.ctx.LastIntent = intent
	if noteText != "" {
		if r := []rune(noteText); len(r) > 80 {
			noteText = string(r[:80])
		}
		m.ctx.LastNote = noteText
	}

	today := now.Format(DateLayout)
	if m.ctx.LastActiveDate != today {
		yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
		if m.ctx.LastActiveDate == yesterday {
			m.ctx.StreakDays++
		} else {
			m.ctx.StreakDays = 1
		}
		m.ctx.LastActiveDate = today
	}

	return store.Save(m.path, m.ctx)
}
