// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/akaru-cli/akaru/internal/store"
)

const (
	// DefaultDataDirName is the data directory under the user home
	DefaultDataDirName = ".akaru/data"
	// DefaultConfigFile is the configuration filename inside the data dir
	DefaultConfigFile = "config.json"
)

// Load reads configuration from <data dir>/config.json, falling back to
// defaults when the file does not exist.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	dataDir := filepath.Join(homeDir, DefaultDataDirName)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(dataDir)

	setDefaults(v, dataDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return loadFromDefaults(v)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads configuration from a specific file path
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	setDefaults(v, filepath.Dir(path))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("username", "User")
	v.SetDefault("goal", "Stay consistent every single day")
	v.SetDefault("data_dir", dataDir)

	v.SetDefault("strict_mode", true)
	v.SetDefault("show_timestamps", true)
	v.SetDefault("color", true)

	v.SetDefault("memory.max_logs", 80)
	v.SetDefault("memory.short_term_max", 30)
	v.SetDefault("memory.long_term_max", 200)
	v.SetDefault("memory.mood_log_max", 500)

	v.SetDefault("git.snapshots", false)
	v.SetDefault("git.author", "Akaru")
	v.SetDefault("git.email", "journal@akaru.local")

	v.SetDefault("lazy_keywords", []string{
		"later maybe", "lazy", "whatever", "skip it", "give up", "cant be bothered",
	})
}

// loadFromDefaults creates a config from default values
func loadFromDefaults(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default config: %w", err)
	}
	return &cfg, nil
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if cfg.Memory.MaxLogs < 2 {
		return fmt.Errorf("memory.max_logs must be at least 2, got %d", cfg.Memory.MaxLogs)
	}
	if cfg.Memory.ShortTermMax < 1 {
		return fmt.Errorf("memory.short_term_max must be at least 1, got %d", cfg.Memory.ShortTermMax)
	}
	if cfg.Memory.LongTermMax < cfg.Memory.ShortTermMax {
		return fmt.Errorf("memory.long_term_max (%d) must not be smaller than memory.short_term_max (%d)",
			cfg.Memory.LongTermMax, cfg.Memory.ShortTermMax)
	}
	if cfg.Memory.MoodLogMax < 1 {
		return fmt.Errorf("memory.mood_log_max must be at least 1, got %d", cfg.Memory.MoodLogMax)
	}
	return nil
}

// EnsureDataDir creates the data directory if it doesn't exist
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Save writes the configuration to <data dir>/config.json.
func (c *Config) Save() error {
	if err := store.Save(filepath.Join(c.DataDir, DefaultConfigFile), c); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, DefaultDataDirName)

	v := viper.New()
	setDefaults(v, dataDir)
	cfg, _ := loadFromDefaults(v)
	return cfg
}
