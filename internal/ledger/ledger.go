// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ledger owns the persisted notes and tasks collections.
//
// Every mutation is written back to disk immediately; there is no batching.
// Deleting or completing an id that does not exist is reported through the
// return value, never as an error.
package ledger

import (
	"strings"
	"time"

	"github.com/akaru-cli/akaru/internal/store"
)

// Ledger manages the notes+tasks document at a fixed path
type Ledger struct {
	path string
	doc  Document
}

func defaultDocument() Document {
	return Document{Notes: []Note{}, Tasks: []Task{}}
}

// Open loads the ledger document at path, substituting an empty
// document when the file is missing or corrupt.
func Open(path string) *Ledger {
	l := &Ledger{path: path}
	l.Reload()
	return l
}

// Reload re-reads the document from disk
func (l *Ledger) Reload() {
	l.doc = store.Load(l.path, defaultDocument)
	if l.doc.Notes == nil {
		l.doc.Notes = []Note{}
	}
	if l.doc.Tasks == nil {
		l.doc.Tasks = []Task{}
	}
}

// Notes returns the current notes in insertion order
func (l *Ledger) Notes() []Note {
	return l.doc.Notes
}

// Tasks returns the current tasks in insertion order
func (l *Ledger) Tasks() []Task {
	return l.doc.Tasks
}

// AddNote appends a new note and persists the document.
// IDs grow strictly; deletion never frees an id for reuse.
func (l *Ledger) AddNote(text string) (Note, error) {
	note := Note{
		ID:        nextNoteID(l.doc.Notes),
		CreatedAt: time.Now(),
		Text:      text,
	}
	l.doc.Notes = append(l.doc.Notes, note)
	if err := l.save(); err != nil {
		return Note{}, err
	}
	return note, nil
}

// DeleteNote removes the note with the given id. Returns false without
// touching disk when no such note exists.
func (l *Ledger) DeleteNote(id int) (bool, error) {
	kept := l.doc.Notes[:0:0]
	for _, n := range l.doc.Notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(l.doc.Notes) {
		return false, nil
	}
	l.doc.Notes = kept
	if err := l.save(); err != nil {
		return false, err
	}
	return true, nil
}

// AddTask appends a new not-done task and persists the document
func (l *Ledger) AddTask(text string) (Task, error) {
	task := Task{
		ID:        nextTaskID(l.doc.Tasks),
		CreatedAt: time.Now(),
		Text:      text,
	}
	l.doc.Tasks = append(l.doc.Tasks, task)
	if err := l.save(); err != nil {
		return Task{}, err
	}
	return task, nil
}

// CompleteTask marks the task done and stamps CompletedAt. Re-completing
// an already-done task overwrites the stamp. Returns nil when the id is
// unknown.
func (l *Ledger) CompleteTask(id int) (*Task, error) {
	for i := range l.doc.Tasks {
		if l.doc.Tasks[i].ID == id {
			now := time.Now()
			l.doc.Tasks[i].Done = true
			l.doc.Tasks[i].CompletedAt = &now
			if err := l.save(); err != nil {
				return nil, err
			}
			t := l.doc.Tasks[i]
			return &t, nil
		}
	}
	return nil, nil
}

// DeleteTask removes the task with the given id. Returns false without
// touching disk when no such task exists.
func (l *Ledger) DeleteTask(id int) (bool, error) {
	kept := l.doc.Tasks[:0:0]
	for _, t := range l.doc.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(l.doc.Tasks) {
		return false, nil
	}
	l.doc.Tasks = kept
	if err := l.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Search returns notes and tasks whose text contains the query,
// case-insensitive, notes first, each in insertion order.
func (l *Ledger) Search(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []Match
	for _, n := range l.doc.Notes {
		if strings.Contains(strings.ToLower(n.Text), q) {
			matches = append(matches, Match{Kind: "note", ID: n.ID, Text: n.Text})
		}
	}
	for _, t := range l.doc.Tasks {
		if strings.Contains(strings.ToLower(t.Text), q) {
			matches = append(matches, Match{Kind: "task", ID: t.ID, Text: t.Text, Done: t.Done})
		}
	}
	return matches
}

func (l *Ledger) save() error {
	return store.Save(l.path, l.doc)
}

// nextNoteID assigns last id + 1. Appends keep ids ordered, so the last
// element always carries the maximum.
func nextNoteID(notes []Note) int {
	if len(notes) == 0 {
		return 1
	}
	return notes[len(notes)-1].ID + 1
}

func nextTaskID(tasks []Task) int {
	if len(tasks) == 0 {
		return 1
	}
	return tasks[len(tasks)-1].ID + 1
}
