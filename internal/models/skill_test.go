package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"React", " hooks ", "react", "", "JavaScript"})
	assert.Equal(t, []string{"react", "hooks", "javascript"}, got)

	assert.Empty(t, NormalizeTags(nil))
	assert.Empty(t, NormalizeTags([]string{"", "  "}))
}

func TestIsValidType(t *testing.T) {
	for _, typ := range ValidTypes() {
		assert.True(t, IsValidType(typ))
	}
	assert.False(t, IsValidType("podcast"))
	assert.False(t, IsValidType(""))
	assert.False(t, IsValidType("Video"), "types are lowercase")
}

func TestVoteTallyTotal(t *testing.T) {
	tally := NewVoteTally()
	assert.Zero(t, tally.Total())

	tally.Difficulty[DifficultyEasy] = 3
	tally.Time[Time5To10] = 2
	assert.Equal(t, 5, tally.Total())
}
