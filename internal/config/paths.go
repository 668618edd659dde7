package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	Database string // State SQLite database
	Config   string // Config file
	LogDir   string // Log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Database: filepath.Join(cfg.BaseDir, "skilllet.db"),
		Config:   filepath.Join(cfg.BaseDir, "config.yaml"),
		LogDir:   cfg.BaseDir,
	}
}

// DefaultBaseDir returns the default base directory. XDG data home is
// preferred; ~/.skilllet is the fallback when it cannot be resolved.
func DefaultBaseDir() string {
	if xdg.DataHome != "" {
		return filepath.Join(xdg.DataHome, "skilllet")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skilllet"
	}
	return filepath.Join(home, ".skilllet")
}
