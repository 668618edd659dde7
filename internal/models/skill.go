// Package models defines the core data structures for SkillLet.
package models

import (
	"strings"
	"time"
)

// Skill represents a single bite-sized learning unit in the catalog.
type Skill struct {
	ID int64 `json:"id"`

	// Content
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"` // Free text or URL depending on Type
	Thumbnail   string `json:"thumbnail"`

	// Categorization
	Category string   `json:"category"`
	Type     string   `json:"type"` // video, text, or infographic
	Tags     []string `json:"tags"`

	// Attribution (display name only, no referential integrity)
	Author string `json:"author"`

	// EstimatedTime is the expected learning time in minutes.
	EstimatedTime int `json:"estimated_time"`

	// Counters; incremented one at a time, never decremented.
	Upvotes  int `json:"upvotes"`
	Views    int `json:"views"`
	Comments int `json:"comments"`

	CreatedAt time.Time `json:"created_at"`
}

// Content types.
const (
	TypeVideo       = "video"
	TypeText        = "text"
	TypeInfographic = "infographic"
)

// ValidTypes returns all valid content types.
func ValidTypes() []string {
	return []string{TypeVideo, TypeText, TypeInfographic}
}

// IsValidType reports whether t is a known content type.
func IsValidType(t string) bool {
	switch t {
	case TypeVideo, TypeText, TypeInfographic:
		return true
	}
	return false
}

// CategoryAll is the filter sentinel matching every category.
const CategoryAll = "All"

// NormalizeTags lowercases and deduplicates tags, preserving order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// Draft holds the caller-supplied fields of a skill to be created.
// ID, counters, and CreatedAt are assigned by the store.
type Draft struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	EstimatedTime int      `json:"estimated_time"`
	Type          string   `json:"type"`
	Tags          []string `json:"tags"`
	Author        string   `json:"author"`
	Content       string   `json:"content"`
	Thumbnail     string   `json:"thumbnail"`
}

// CatalogStats provides aggregate statistics over the catalog.
type CatalogStats struct {
	TotalSkills     int     `json:"total_skills"`
	TotalCategories int     `json:"total_categories"`
	TotalUpvotes    int     `json:"total_upvotes"`
	TotalViews      int     `json:"total_views"`
	AvgMinutes      float64 `json:"avg_minutes"`
}
