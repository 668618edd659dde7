package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilllet/skilllet/internal/config"
)

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "skilllet", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()

	var names []string
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{
		"assess", "bookmark", "bookmarks", "browse", "categories",
		"complete", "create", "info", "leaderboard", "login", "logout",
		"progress", "recommend", "search", "stats", "trending",
		"upvote", "whoami",
	} {
		assert.Contains(t, names, want)
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("abc")
	assert.Error(t, err)

	_, err = parseID("")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly ten", truncate("exactly ten", 11))
	assert.Equal(t, "long st...", truncate("long string here", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestResolveSort(t *testing.T) {
	a := &app{cfg: config.Default()}

	mode, err := resolveSort(a, "")
	require.NoError(t, err)
	assert.Equal(t, "trending", mode, "empty falls back to the configured default")

	mode, err = resolveSort(a, "newest")
	require.NoError(t, err)
	assert.Equal(t, "newest", mode)

	_, err = resolveSort(a, "alphabetical")
	assert.Error(t, err)
}
