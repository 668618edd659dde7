// Package rank provides the display-ordering computations consumers rely
// on: the trending score and the catalog sort modes. All sorts are stable,
// so ties keep their input order.
package rank

import (
	"sort"

	"github.com/skilllet/skilllet/internal/models"
)

// Sort modes.
const (
	SortTrending = "trending"
	SortNewest   = "newest"
	SortPopular  = "popular"
	SortQuickest = "quick"
)

// Modes returns all supported sort modes.
func Modes() []string {
	return []string{SortTrending, SortNewest, SortPopular, SortQuickest}
}

// IsValidMode reports whether mode is a known sort mode.
func IsValidMode(mode string) bool {
	switch mode {
	case SortTrending, SortNewest, SortPopular, SortQuickest:
		return true
	}
	return false
}

// TrendingScore ranks a skill by engagement: upvotes plus a tenth of views.
func TrendingScore(sk models.Skill) float64 {
	return float64(sk.Upvotes) + float64(sk.Views)*0.1
}

// Sorted returns a new slice sorted by the given mode. Unknown modes return
// the input order unchanged.
func Sorted(skills []models.Skill, mode string) []models.Skill {
	out := append([]models.Skill(nil), skills...)
	switch mode {
	case SortTrending:
		sort.SliceStable(out, func(i, j int) bool {
			return TrendingScore(out[i]) > TrendingScore(out[j])
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Upvotes > out[j].Upvotes
		})
	case SortQuickest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EstimatedTime < out[j].EstimatedTime
		})
	}
	return out
}

// TopTrending returns the n highest-scoring skills by trending score.
func TopTrending(skills []models.Skill, n int) []models.Skill {
	out := Sorted(skills, SortTrending)
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
