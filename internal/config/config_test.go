// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "User", cfg.Username)
	assert.Equal(t, 80, cfg.Memory.MaxLogs)
	assert.Equal(t, 30, cfg.Memory.ShortTermMax)
	assert.Equal(t, 200, cfg.Memory.LongTermMax)
	assert.Equal(t, 500, cfg.Memory.MoodLogMax)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.Git.Snapshots)
	assert.NotEmpty(t, cfg.LazyKeywords)
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"username": "Rio",
		"color": false,
		"memory": {"max_logs": 40}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "Rio", cfg.Username)
	assert.False(t, cfg.Color)
	assert.Equal(t, 40, cfg.Memory.MaxLogs)
	// Unset keys are backfilled with defaults
	assert.Equal(t, 30, cfg.Memory.ShortTermMax)
	assert.Equal(t, 200, cfg.Memory.LongTermMax)
}

func TestLoadFromPathInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "max_logs too small",
			content: `{"memory": {"max_logs": 1}}`,
			errMsg:  "max_logs",
		},
		{
			name:    "long_term smaller than short_term",
			content: `{"memory": {"short_term_max": 50, "long_term_max": 10}}`,
			errMsg:  "long_term_max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadFromPath(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfigPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/tmp/akaru-test"

	assert.Equal(t, "/tmp/akaru-test/memory.json", cfg.LedgerFile())
	assert.Equal(t, "/tmp/akaru-test/log.json", cfg.LogFile())
	assert.Equal(t, "/tmp/akaru-test/context.json", cfg.ContextFile())
	assert.Equal(t, "/tmp/akaru-test/mood.json", cfg.MoodFile())
	assert.Equal(t, "/tmp/akaru-test/memory/short_term.json", cfg.ShortTermFile())
	assert.Equal(t, "/tmp/akaru-test/memory/long_term.json", cfg.LongTermFile())
	assert.Equal(t, "/tmp/akaru-test/exports", cfg.ExportDir())
}
