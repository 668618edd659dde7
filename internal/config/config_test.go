package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotEmpty(t, cfg.BaseDir)
	assert.Equal(t, "trending", cfg.DefaultSort)
	assert.Equal(t, "anonymous", cfg.DefaultAuthor)
	assert.Equal(t, 20, cfg.PageSize)
	assert.False(t, cfg.Debug)
}

func TestLoad_DataDirFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SKILLLET_DATA_DIR", tmpDir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, tmpDir, cfg.BaseDir)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SKILLLET_DATA_DIR", tmpDir)

	content := "default_sort: newest\ndefault_author: testwriter\npage_size: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "newest", cfg.DefaultSort)
	assert.Equal(t, "testwriter", cfg.DefaultAuthor)
	assert.Equal(t, 5, cfg.PageSize)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SKILLLET_DATA_DIR", tmpDir)
	t.Setenv("SKILLLET_DEFAULT_SORT", "popular")
	t.Setenv("SKILLLET_AUTHOR", "envwriter")
	t.Setenv("SKILLLET_DEBUG", "1")

	content := "default_sort: newest\ndefault_author: filewriter\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "popular", cfg.DefaultSort)
	assert.Equal(t, "envwriter", cfg.DefaultAuthor)
	assert.True(t, cfg.Debug)
}

func TestLoad_MissingConfigFileIsFine(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SKILLLET_DATA_DIR", filepath.Join(tmpDir, "fresh"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "trending", cfg.DefaultSort)

	// Load creates the base dir.
	info, err := os.Stat(cfg.BaseDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetPaths(t *testing.T) {
	cfg := &Config{BaseDir: "/data/skilllet"}
	paths := GetPaths(cfg)

	assert.Equal(t, filepath.Join("/data/skilllet", "skilllet.db"), paths.Database)
	assert.Equal(t, filepath.Join("/data/skilllet", "config.yaml"), paths.Config)
	assert.Equal(t, "/data/skilllet", paths.LogDir)
}
