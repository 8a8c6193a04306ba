// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package activity

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	l := Open(path, 80)

	require.NoError(t, l.Append("NOTE", true, ""))
	require.NoError(t, l.Append("TASK_ADD", false, "goal_violation"))

	reopened := Open(path, 80)
	entries := reopened.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "NOTE", entries[0].Intent)
	assert.True(t, entries[0].OK)
	assert.Equal(t, "goal_violation", entries[1].Note)
	assert.False(t, entries[1].OK)
}

func TestCapDropsOldestHalf(t *testing.T) {
	l := Open(filepath.Join(t.TempDir(), "log.json"), 10)

	for i := 0; i < 11; i++ {
		require.NoError(t, l.Append(fmt.Sprintf("INTENT_%d", i), true, ""))
	}

	// 11th append exceeds the cap of 10; only the newest 5 survive
	entries := l.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, "INTENT_6", entries[0].Intent)
	assert.Equal(t, "INTENT_10", entries[4].Intent)
}

func TestReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	l := Open(path, 80)
	require.NoError(t, l.Append("NOTE", true, ""))

	require.NoError(t, l.Reset())
	assert.Empty(t, l.Entries())
	assert.Empty(t, Open(path, 80).Entries())
}
