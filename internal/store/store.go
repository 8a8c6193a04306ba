// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package store provides load/save of JSON documents on local disk.
//
// Loading favors availability over strictness: a missing or corrupt file is
// silently replaced by a caller-supplied default, never surfaced as an error.
// Saving writes the full document pretty-printed through a temp file rename
// so a crash mid-write never leaves a half-written file behind.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the JSON document at path into a value of type T.
// When the file is missing or cannot be parsed, the result of def is
// returned instead.
func Load[T any](path string, def func() T) T {
	data, err := os.ReadFile(path)
	if err != nil {
		return def()
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return def()
	}
	return doc
}

// Save serializes doc as pretty-printed JSON and writes it to path,
// creating parent directories if needed.
func Save(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Write to a temp file in the same directory, then rename over the
	// target so readers never observe a partial document.
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
