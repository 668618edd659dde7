package store

import (
	"strings"

	"github.com/skilllet/skilllet/internal/models"
)

// SetCategory updates the category filter and synchronously recomputes the
// filtered view. The sentinel "All" matches every category.
func (s *Store) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = category
	s.filtered = s.computeFiltered()
}

// SetSearchQuery updates the search filter and synchronously recomputes the
// filtered view.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
	s.filtered = s.computeFiltered()
}

// SelectedCategory returns the active category filter.
func (s *Store) SelectedCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedCategory
}

// SearchQuery returns the active search filter.
func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// FilteredSkills returns a copy of the derived filtered view.
func (s *Store) FilteredSkills() []models.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySkills(s.filtered)
}

// RefreshFilter recomputes the filtered view from the catalog and the
// current filter state. Idempotent.
func (s *Store) RefreshFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filtered = s.computeFiltered()
}

// computeFiltered derives the filtered view as a pure function of
// (skills, selectedCategory, searchQuery). Category matching is exact and
// case-sensitive; the query is a case-insensitive substring match over
// title, description, and tags. Catalog order is preserved. Caller holds
// at least a read lock.
func (s *Store) computeFiltered() []models.Skill {
	return Filter(s.skills, s.selectedCategory, s.searchQuery)
}

// Filter applies the catalog filter to an arbitrary skill slice. The result
// is always a subset of the input with order preserved; an "All"/"" filter
// returns a copy of the input.
func Filter(skills []models.Skill, category, query string) []models.Skill {
	out := make([]models.Skill, 0, len(skills))
	q := strings.ToLower(query)
	for i := range skills {
		sk := &skills[i]
		if category != models.CategoryAll && category != "" && sk.Category != category {
			continue
		}
		if q != "" && !matchesQuery(sk, q) {
			continue
		}
		out = append(out, copySkill(*sk))
	}
	return out
}

func matchesQuery(sk *models.Skill, q string) bool {
	if strings.Contains(strings.ToLower(sk.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(sk.Description), q) {
		return true
	}
	for _, tag := range sk.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
