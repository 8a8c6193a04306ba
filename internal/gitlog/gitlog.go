// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gitlog keeps a local git history of the data directory so
// every change to the persisted JSON documents can be inspected and
// rolled back. Snapshots are local only, there are no remotes.
package gitlog

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// DefaultAuthor and DefaultEmail sign snapshots when the configuration
// leaves them empty.
const (
	DefaultAuthor = "akaru"
	DefaultEmail  = "akaru@localhost"
)

// Snapshotter commits data-directory changes to a local repository.
type Snapshotter struct {
	dir    string
	author string
	email  string
	repo   *git.Repository
}

// Open opens the repository at the data directory, initializing it on
// first use.
func Open(dir, author, email string) (*Snapshotter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if author == "" {
		author = DefaultAuthor
	}
	if email == "" {
		email = DefaultEmail
	}

	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(dir, false)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize snapshot repository: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to open snapshot repository: %w", err)
	}

	return &Snapshotter{dir: dir, author: author, email: email, repo: repo}, nil
}

// Snapshot stages everything under the data directory and commits it.
// A clean worktree is not an error; it reports false and commits
// nothing.
func (s *Snapshotter) Snapshot(message string) (bool, error) {
	return s.SnapshotAt(message, time.Now())
}

// SnapshotAt is Snapshot with an explicit commit timestamp, for tests.
func (s *Snapshotter) SnapshotAt(message string, now time.Time) (bool, error) {
	worktree, err := s.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree: %w", err)
	}

	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return false, fmt.Errorf("failed to stage changes: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}
	if status.IsClean() {
		return false, nil
	}

	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  s.author,
			Email: s.email,
			When:  now,
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return true, nil
}

// History returns up to maxCount snapshot messages, newest first. An
// empty repository yields an empty history.
func (s *Snapshotter) History(maxCount int) ([]string, error) {
	ref, err := s.repo.Head()
	if err != nil {
		return nil, nil
	}

	iter, err := s.repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot log: %w", err)
	}
	defer iter.Close()

	var messages []string
	err = iter.ForEach(func(c *object.Commit) error {
		if maxCount > 0 && len(messages) >= maxCount {
			return errStopIteration
		}
		messages = append(messages, c.Message)
		return nil
	})
	if err != nil && !errors.Is(err, errStopIteration) {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return messages, nil
}

var errStopIteration = errors.New("stop iteration")

// MessageFormats provides the standard snapshot message shapes.
type MessageFormats struct{}

// Note returns the message for a note lifecycle change.
func (MessageFormats) Note(verb string, id int) string {
	return fmt.Sprintf("note: %s note #%d", verb, id)
}

// Task returns the message for a task lifecycle change.
func (MessageFormats) Task(verb string, id int) string {
	return fmt.Sprintf("task: %s task #%d", verb, id)
}

// MoodCheckin returns the message for a mood check-in.
func (MessageFormats) MoodCheckin(date string) string {
	return fmt.Sprintf("mood: check-in on %s", date)
}

// Promotion returns the message for a short-to-long promotion.
func (MessageFormats) Promotion(count int) string {
	return fmt.Sprintf("memory: promote %d entries to long-term", count)
}

// SessionClose returns the message for an end-of-session snapshot.
func (MessageFormats) SessionClose(sessionCount int) string {
	return fmt.Sprintf("session: close session %d", sessionCount)
}
