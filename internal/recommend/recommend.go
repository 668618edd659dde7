// Package recommend derives skill recommendations from the user's
// completion history. The heuristics are deliberately simple: category and
// tag overlap with completed skills, with trending score as the tiebreaker.
package recommend

import (
	"sort"

	"github.com/skilllet/skilllet/internal/models"
	"github.com/skilllet/skilllet/internal/rank"
)

// Profile summarizes the user's interests based on completed skills.
type Profile struct {
	Categories map[string]int
	Tags       map[string]int
	AvgMinutes float64
}

// BuildProfile analyzes the completed subset of the catalog.
// With no completions, AvgMinutes defaults to 5.
func BuildProfile(skills []models.Skill, completed []int64) Profile {
	done := make(map[int64]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	p := Profile{
		Categories: make(map[string]int),
		Tags:       make(map[string]int),
		AvgMinutes: 5,
	}

	totalMinutes := 0
	count := 0
	for i := range skills {
		sk := &skills[i]
		if !done[sk.ID] {
			continue
		}
		p.Categories[sk.Category]++
		for _, tag := range sk.Tags {
			p.Tags[tag]++
		}
		totalMinutes += sk.EstimatedTime
		count++
	}
	if count > 0 {
		p.AvgMinutes = float64(totalMinutes) / float64(count)
	}
	return p
}

// TopCategories returns up to n preferred categories, most completed first.
func (p Profile) TopCategories(n int) []string {
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(p.Categories))
	for name, count := range p.Categories {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}

// score weighs how well a skill matches the profile. Category match counts
// more than individual tag overlap.
func (p Profile) score(sk models.Skill) float64 {
	s := float64(p.Categories[sk.Category]) * 3
	for _, tag := range sk.Tags {
		s += float64(p.Tags[tag])
	}
	return s
}

// Recommendation pairs a skill with the reason it was suggested.
type Recommendation struct {
	Skill  models.Skill
	Reason string
}

// Recommend returns up to n uncompleted skills ranked by profile match,
// falling back to trending score so new users still get suggestions.
func Recommend(skills []models.Skill, completed []int64, n int) []Recommendation {
	done := make(map[int64]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	profile := BuildProfile(skills, completed)

	candidates := make([]models.Skill, 0, len(skills))
	for i := range skills {
		if !done[skills[i].ID] {
			candidates = append(candidates, skills[i])
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := profile.score(candidates[i]), profile.score(candidates[j])
		if si != sj {
			return si > sj
		}
		return rank.TrendingScore(candidates[i]) > rank.TrendingScore(candidates[j])
	})

	if n >= 0 && n < len(candidates) {
		candidates = candidates[:n]
	}

	out := make([]Recommendation, len(candidates))
	for i, sk := range candidates {
		out[i] = Recommendation{Skill: sk, Reason: Reason(sk, profile)}
	}
	return out
}

// Reason explains a recommendation in the user's terms.
func Reason(sk models.Skill, profile Profile) string {
	if profile.Categories[sk.Category] > 0 {
		return "Based on your interest in " + sk.Category
	}
	for _, tag := range sk.Tags {
		if profile.Tags[tag] > 0 {
			return "Similar to your " + tag + " skills"
		}
	}
	return "Popular in the community"
}
