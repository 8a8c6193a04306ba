// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ledger

import "time"

// Note is an immutable free-text record
type Note struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Text      string    `json:"text"`
}

// Task is a completable item. CompletedAt is set iff Done is true.
type Task struct {
	ID          int        `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	Text        string     `json:"text"`
	Done        bool       `json:"done"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Document is the persisted notes+tasks collection
type Document struct {
	Notes []Note `json:"notes"`
	Tasks []Task `json:"tasks"`
}

// Match is a search hit over notes and tasks
type Match struct {
	Kind string // "note" or "task"
	ID   int
	Text string
	Done bool
}
