// Package config handles application configuration management.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all SkillLet data (~/.skilllet or $XDG_DATA_HOME/skilllet)
	BaseDir string `yaml:"-"`

	// DefaultSort is the sort mode used when none is given
	// (trending, newest, popular, quick).
	DefaultSort string `yaml:"default_sort"`

	// DefaultAuthor is used for created skills when not logged in.
	DefaultAuthor string `yaml:"default_author"`

	// PageSize caps list output in the CLI.
	PageSize int `yaml:"page_size"`

	// Debug enables verbose database logging.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseDir:       DefaultBaseDir(),
		DefaultSort:   "trending",
		DefaultAuthor: "anonymous",
		PageSize:      20,
	}
}

// Load reads configuration from the optional config file and environment.
// Load order: defaults, then config.yaml under the base dir, then env vars.
func Load() (*Config, error) {
	cfg := Default()

	if dir := os.Getenv("SKILLLET_DATA_DIR"); dir != "" {
		cfg.BaseDir = dir
	}

	if err := loadFile(cfg, filepath.Join(cfg.BaseDir, "config.yaml")); err != nil {
		return nil, err
	}

	if sortMode := os.Getenv("SKILLLET_DEFAULT_SORT"); sortMode != "" {
		cfg.DefaultSort = sortMode
	}
	if author := os.Getenv("SKILLLET_AUTHOR"); author != "" {
		cfg.DefaultAuthor = author
	}
	if os.Getenv("SKILLLET_DEBUG") == "1" {
		cfg.Debug = true
	}

	if err := os.MkdirAll(cfg.BaseDir, 0755); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile merges config.yaml into cfg. A missing file is not an error.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
