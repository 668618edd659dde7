// Package seed provides the built-in catalog the store starts from each
// session. The catalog is intentionally not persisted; only the user's
// relationship to it is.
package seed

import (
	"strings"
	"time"

	"github.com/skilllet/skilllet/internal/models"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// Skills returns the seed catalog in its canonical order (newest first).
func Skills() []models.Skill {
	return []models.Skill{
		{
			ID:            1,
			Title:         "Basic Excel Formulas",
			Description:   "Learn essential Excel formulas like SUM, AVERAGE, and VLOOKUP in just 8 minutes",
			Category:      "Tech",
			EstimatedTime: 8,
			Tags:          []string{"excel", "formulas", "productivity"},
			Author:        "DataPro",
			Upvotes:       156,
			Views:         2340,
			Type:          models.TypeVideo,
			Content:       "https://example.com/excel-video.mp4",
			Thumbnail:     "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=400&h=250&fit=crop",
			CreatedAt:     date("2024-01-15"),
			Comments:      23,
		},
		{
			ID:            2,
			Title:         "How to Tie a Tie",
			Description:   "Master the classic four-in-hand knot with this step-by-step visual guide",
			Category:      "Lifestyle",
			EstimatedTime: 5,
			Tags:          []string{"style", "formal", "basics"},
			Author:        "StyleGuru",
			Upvotes:       89,
			Views:         1250,
			Type:          models.TypeInfographic,
			Content:       "Step-by-step instructions for tying a perfect tie...",
			Thumbnail:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=250&fit=crop",
			CreatedAt:     date("2024-01-12"),
			Comments:      12,
		},
		{
			ID:            3,
			Title:         "React useEffect Basics",
			Description:   "Understand React's useEffect hook with practical examples and common patterns",
			Category:      "Tech",
			EstimatedTime: 10,
			Tags:          []string{"react", "hooks", "javascript"},
			Author:        "ReactMaster",
			Upvotes:       234,
			Views:         3890,
			Type:          models.TypeText,
			Content:       "The useEffect hook is one of the most important React hooks...",
			Thumbnail:     "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400&h=250&fit=crop",
			CreatedAt:     date("2024-01-10"),
			Comments:      45,
		},
		{
			ID:            4,
			Title:         "5-Minute Morning Stretches",
			Description:   "Quick stretching routine to energize your day and improve flexibility",
			Category:      "Health",
			EstimatedTime: 5,
			Tags:          []string{"fitness", "stretching", "morning"},
			Author:        "FitnessPro",
			Upvotes:       178,
			Views:         2100,
			Type:          models.TypeVideo,
			Content:       "https://example.com/stretch-video.mp4",
			Thumbnail:     "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=250&fit=crop",
			CreatedAt:     date("2024-01-08"),
			Comments:      18,
		},
		{
			ID:            5,
			Title:         "Basic Photography Composition",
			Description:   "Learn the rule of thirds and other essential composition techniques",
			Category:      "Creative",
			EstimatedTime: 7,
			Tags:          []string{"photography", "composition", "basics"},
			Author:        "PhotoArt",
			Upvotes:       145,
			Views:         1876,
			Type:          models.TypeInfographic,
			Content:       "Photography composition rules and techniques...",
			Thumbnail:     "https://images.unsplash.com/photo-1606983340126-99ab4feaa64a?w=400&h=250&fit=crop",
			CreatedAt:     date("2024-01-05"),
			Comments:      31,
		},
	}
}

// Users returns the built-in user records available for login.
func Users() []models.User {
	return []models.User{
		{
			ID:       1,
			Username: "DataPro",
			Email:    "datapro@example.com",
			Avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop",
			Badges:   []string{"Excel Expert", "Top Contributor", "Rising Star"},
			JoinedAt: "2023-06-15",
		},
		{
			ID:       2,
			Username: "StyleGuru",
			Email:    "styleguru@example.com",
			Avatar:   "https://images.unsplash.com/photo-1494790108755-2616b612b789?w=100&h=100&fit=crop",
			Badges:   []string{"Style Master", "Community Helper"},
			JoinedAt: "2023-08-20",
		},
	}
}

// UserByName looks up a seed user by username, case-insensitively.
func UserByName(username string) (models.User, bool) {
	for _, u := range Users() {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return models.User{}, false
}
