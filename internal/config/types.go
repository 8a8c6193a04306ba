// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import "path/filepath"

// Config is the complete application configuration
type Config struct {
	Username string `mapstructure:"username" json:"username"`
	Goal     string `mapstructure:"goal" json:"goal"`
	DataDir  string `mapstructure:"data_dir" json:"data_dir"`

	StrictMode     bool `mapstructure:"strict_mode" json:"strict_mode"`
	ShowTimestamps bool `mapstructure:"show_timestamps" json:"show_timestamps"`
	Color          bool `mapstructure:"color" json:"color"`

	Memory MemoryConfig `mapstructure:"memory" json:"memory"`
	Git    GitConfig    `mapstructure:"git" json:"git"`

	// LazyKeywords trigger the goal-violation guard on note/task input
	LazyKeywords []string `mapstructure:"lazy_keywords" json:"lazy_keywords"`
}

// MemoryConfig holds the capacity limits of the persisted collections
type MemoryConfig struct {
	// MaxLogs caps the flat activity log; the oldest half is dropped
	// once the cap is exceeded
	MaxLogs int `mapstructure:"max_logs" json:"max_logs"`
	// ShortTermMax is the promotion threshold of the short-term history
	ShortTermMax int `mapstructure:"short_term_max" json:"short_term_max"`
	// LongTermMax caps the long-term history after any save
	LongTermMax int `mapstructure:"long_term_max" json:"long_term_max"`
	// MoodLogMax caps the long-term mood log
	MoodLogMax int `mapstructure:"mood_log_max" json:"mood_log_max"`
}

// GitConfig controls the optional local git snapshots of the data directory
type GitConfig struct {
	Snapshots bool   `mapstructure:"snapshots" json:"snapshots"`
	Author    string `mapstructure:"author" json:"author"`
	Email     string `mapstructure:"email" json:"email"`
}

// LedgerFile returns the path of the notes+tasks document
func (c *Config) LedgerFile() string {
	return filepath.Join(c.DataDir, "memory.json")
}

// LogFile returns the path of the flat activity log document
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "log.json")
}

// ContextFile returns the path of the session context document
func (c *Config) ContextFile() string {
	return filepath.Join(c.DataDir, "context.json")
}

// MoodFile returns the path of the mood journal document
func (c *Config) MoodFile() string {
	return filepath.Join(c.DataDir, "mood.json")
}

// ShortTermFile returns the path of the short-term history document
func (c *Config) ShortTermFile() string {
	return filepath.Join(c.DataDir, "memory", "short_term.json")
}

// LongTermFile returns the path of the long-term history document
func (c *Config) LongTermFile() string {
	return filepath.Join(c.DataDir, "memory", "long_term.json")
}

// MainHistoryFile returns the path of the bridge history document that
// feeds the short-term sync
func (c *Config) MainHistoryFile() string {
	return filepath.Join(c.DataDir, "history.json")
}

// ExportDir returns the directory for exported insight reports
func (c *Config) ExportDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// InsightLogFile returns the path of the append-only insight log
func (c *Config) InsightLogFile() string {
	return filepath.Join(c.DataDir, "logs", "insights.log")
}
