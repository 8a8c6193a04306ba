// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDoc struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Items []string `json:"items"`
}

func defaultSample() sampleDoc {
	return sampleDoc{Name: "default"}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	doc := Load(path, defaultSample)
	assert.Equal(t, "default", doc.Name)
	assert.Zero(t, doc.Count)
}

func TestLoadCorruptFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0644))

	doc := Load(path, defaultSample)
	assert.Equal(t, "default", doc.Name)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	in := sampleDoc{Name: "akaru", Count: 3, Items: []string{"a", "b"}}

	require.NoError(t, Save(path, in))

	out := Load(path, defaultSample)
	assert.Equal(t, in, out)
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "doc.json")

	require.NoError(t, Save(path, sampleDoc{Name: "x"}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, Save(path, sampleDoc{Name: "akaru", Count: 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  \"name\""))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, Save(path, sampleDoc{Name: "x"}))
	require.NoError(t, Save(path, sampleDoc{Name: "y"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.json", entries[0].Name())
}
