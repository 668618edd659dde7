package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilllet/skilllet/internal/models"
	"github.com/skilllet/skilllet/internal/seed"
)

func TestTopContributors(t *testing.T) {
	got := TopContributors(seed.Skills(), 10)

	require.Len(t, got, 5, "each seed author appears once")
	assert.Equal(t, "ReactMaster", got[0].Username)
	assert.Equal(t, 234, got[0].TotalUpvotes)
	assert.Equal(t, 3890, got[0].TotalViews)
	assert.Equal(t, 1, got[0].SkillsCreated)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i].TotalUpvotes, got[i-1].TotalUpvotes)
	}
}

func TestTopContributors_AggregatesByAuthor(t *testing.T) {
	skills := []models.Skill{
		{Author: "alice", Upvotes: 10, Views: 100},
		{Author: "bob", Upvotes: 5, Views: 50},
		{Author: "alice", Upvotes: 7, Views: 30},
	}

	got := TopContributors(skills, 10)
	require.Len(t, got, 2)
	assert.Equal(t, Contributor{
		Username:      "alice",
		SkillsCreated: 2,
		TotalUpvotes:  17,
		TotalViews:    130,
	}, got[0])
}

func TestTopContributors_TiesBreakAlphabetically(t *testing.T) {
	skills := []models.Skill{
		{Author: "zoe", Upvotes: 10},
		{Author: "amy", Upvotes: 10},
	}

	got := TopContributors(skills, 10)
	require.Len(t, got, 2)
	assert.Equal(t, "amy", got[0].Username)
	assert.Equal(t, "zoe", got[1].Username)
}

func TestTopContributors_Limit(t *testing.T) {
	assert.Len(t, TopContributors(seed.Skills(), 2), 2)
	assert.Empty(t, TopContributors(nil, 5))
}

func TestTopSkills(t *testing.T) {
	got := TopSkills(seed.Skills(), 3)

	require.Len(t, got, 3)
	assert.Equal(t, int64(3), got[0].ID) // 234 upvotes
	assert.Equal(t, int64(4), got[1].ID) // 178
	assert.Equal(t, int64(1), got[2].ID) // 156
}

func TestTopTrending(t *testing.T) {
	got := TopTrending(seed.Skills(), 2)

	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}
