package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilllet/skilllet/internal/models"
)

func TestSkills(t *testing.T) {
	skills := Skills()
	require.Len(t, skills, 5)

	seen := make(map[int64]bool)
	for _, sk := range skills {
		assert.False(t, seen[sk.ID], "duplicate id %d", sk.ID)
		seen[sk.ID] = true

		assert.NotEmpty(t, sk.Title)
		assert.NotEmpty(t, sk.Description)
		assert.NotEmpty(t, sk.Category)
		assert.NotEqual(t, models.CategoryAll, sk.Category)
		assert.True(t, models.IsValidType(sk.Type), "skill %d has type %q", sk.ID, sk.Type)
		assert.Positive(t, sk.EstimatedTime)
		assert.False(t, sk.CreatedAt.IsZero())
	}
}

func TestSkills_ReturnsFreshCopies(t *testing.T) {
	first := Skills()
	first[0].Title = "mutated"
	first[0].Tags[0] = "mutated"

	second := Skills()
	assert.NotEqual(t, "mutated", second[0].Title)
	assert.NotEqual(t, "mutated", second[0].Tags[0])
}

func TestUsers(t *testing.T) {
	users := Users()
	require.Len(t, users, 2)
	assert.Equal(t, "DataPro", users[0].Username)
	assert.Equal(t, "StyleGuru", users[1].Username)
}

func TestUserByName(t *testing.T) {
	u, ok := UserByName("DataPro")
	require.True(t, ok)
	assert.Equal(t, int64(1), u.ID)

	u, ok = UserByName("styleguru")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, "StyleGuru", u.Username)

	_, ok = UserByName("nobody")
	assert.False(t, ok)
}
