// Package leaderboard aggregates per-author contribution stats over the
// catalog.
package leaderboard

import (
	"sort"

	"github.com/skilllet/skilllet/internal/models"
	"github.com/skilllet/skilllet/internal/rank"
)

// Contributor holds aggregate stats for one skill author.
type Contributor struct {
	Username      string `json:"username"`
	SkillsCreated int    `json:"skills_created"`
	TotalUpvotes  int    `json:"total_upvotes"`
	TotalViews    int    `json:"total_views"`
}

// TopContributors returns up to n authors ranked by total upvotes.
// Ties break alphabetically so the ordering is deterministic.
func TopContributors(skills []models.Skill, n int) []Contributor {
	byAuthor := make(map[string]*Contributor)
	for i := range skills {
		sk := &skills[i]
		c, ok := byAuthor[sk.Author]
		if !ok {
			c = &Contributor{Username: sk.Author}
			byAuthor[sk.Author] = c
		}
		c.SkillsCreated++
		c.TotalUpvotes += sk.Upvotes
		c.TotalViews += sk.Views
	}

	out := make([]Contributor, 0, len(byAuthor))
	for _, c := range byAuthor {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalUpvotes != out[j].TotalUpvotes {
			return out[i].TotalUpvotes > out[j].TotalUpvotes
		}
		return out[i].Username < out[j].Username
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// TopSkills returns up to n skills ranked by upvotes.
func TopSkills(skills []models.Skill, n int) []models.Skill {
	out := rank.Sorted(skills, rank.SortPopular)
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// TopTrending returns up to n skills ranked by trending score.
func TopTrending(skills []models.Skill, n int) []models.Skill {
	return rank.TopTrending(skills, n)
}
