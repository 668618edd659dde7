// Package store implements the SkillLet skill store: the single source of
// truth for the skill catalog, the current user's relationship to each skill
// (completed, bookmarked, progress, votes), and the active catalog filter.
//
// The store is an explicit, injected object with a defined construction
// lifecycle rather than a process-wide global, so tests can run many
// instances side by side. All mutating operations are synchronous; a mutex
// lets the CLI and TUI share one instance. Reads return copies.
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/skilllet/skilllet/internal/models"
)

// Persister is the durable side-channel for the persisted state slice.
// Implementations must treat the snapshot as an opaque whole; the store
// writes through on every mutation that touches the slice and reads once
// at construction.
type Persister interface {
	LoadState() (*models.PersistedState, error)
	SaveState(*models.PersistedState) error
}

// Logger receives non-fatal persistence failures. In-memory state stays
// authoritative for the session when a save fails.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// Options configures store construction.
type Options struct {
	Seed      []models.Skill
	Persister Persister // optional; nil disables persistence
	Logger    Logger    // optional
	Clock     func() time.Time
}

// Store is the process-wide state container for the skill catalog and the
// current user's derived state.
type Store struct {
	mu sync.RWMutex

	skills   []models.Skill
	filtered []models.Skill
	nextID   int64

	selectedCategory string
	searchQuery      string

	currentUser     *models.User
	isAuthenticated bool

	completed map[int64]bool
	bookmarks map[int64]bool
	progress  map[int64]models.ProgressRecord
	votes     map[int64]models.VoteTally

	persister Persister
	logger    Logger
	now       func() time.Time
}

// New constructs a store seeded with the given catalog and rehydrated from
// the persister, if one is provided. Persisted entries pointing at skill ids
// that no longer resolve are pruned so no dangling references survive a
// restart.
func New(opts Options) (*Store, error) {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	s := &Store{
		skills:           append([]models.Skill(nil), opts.Seed...),
		selectedCategory: models.CategoryAll,
		completed:        make(map[int64]bool),
		bookmarks:        make(map[int64]bool),
		progress:         make(map[int64]models.ProgressRecord),
		votes:            make(map[int64]models.VoteTally),
		persister:        opts.Persister,
		logger:           opts.Logger,
		now:              now,
	}

	// Skill ids are assigned from a monotonic counter seeded above the
	// largest seed id, so two creations in the same clock tick can never
	// collide and an id is never reused.
	for _, sk := range s.skills {
		if sk.ID >= s.nextID {
			s.nextID = sk.ID + 1
		}
	}
	if s.nextID == 0 {
		s.nextID = 1
	}

	if s.persister != nil {
		state, err := s.persister.LoadState()
		if err != nil {
			return nil, fmt.Errorf("rehydrate state: %w", err)
		}
		if state != nil {
			s.restore(state)
		}
	}

	s.filtered = s.computeFiltered()
	return s, nil
}

// restore applies a persisted snapshot, dropping entries for unknown ids.
func (s *Store) restore(state *models.PersistedState) {
	known := make(map[int64]bool, len(s.skills))
	for _, sk := range s.skills {
		known[sk.ID] = true
	}

	s.currentUser = state.CurrentUser
	s.isAuthenticated = state.IsAuthenticated

	for _, id := range state.CompletedSkills {
		if known[id] {
			s.completed[id] = true
		}
	}
	for _, id := range state.BookmarkedSkills {
		if known[id] {
			s.bookmarks[id] = true
		}
	}
	for id, rec := range state.UserProgress {
		if known[id] {
			s.progress[id] = rec
		}
	}
	for id, tally := range state.Votes {
		if known[id] {
			s.votes[id] = tally
		}
	}

	// Keep the completed set and the progress map consistent: the set is
	// derivable from records with Completed=true.
	for id, rec := range s.progress {
		if rec.Completed {
			s.completed[id] = true
		}
	}
}

// snapshotLocked builds the persisted slice. Caller holds at least a read lock.
func (s *Store) snapshotLocked() *models.PersistedState {
	state := &models.PersistedState{
		CurrentUser:      s.currentUser,
		IsAuthenticated:  s.isAuthenticated,
		CompletedSkills:  sortedIDs(s.completed),
		BookmarkedSkills: sortedIDs(s.bookmarks),
		UserProgress:     make(map[int64]models.ProgressRecord, len(s.progress)),
		Votes:            make(map[int64]models.VoteTally, len(s.votes)),
	}
	for id, rec := range s.progress {
		state.UserProgress[id] = rec
	}
	for id, tally := range s.votes {
		state.Votes[id] = tally
	}
	return state
}

// persistLocked writes the state slice through to durable storage.
// Failures are non-fatal: they are logged and the session continues with
// in-memory state as the authority.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveState(s.snapshotLocked()); err != nil && s.logger != nil {
		s.logger.Errorf("persist state: %v", err)
	}
}

func sortedIDs(set map[int64]bool) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Login sets the current user and marks the session authenticated.
// The caller is trusted; there is no credential handling.
func (s *Store) Login(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.currentUser = &u
	s.isAuthenticated = true
	s.persistLocked()
}

// Logout clears the session. Progress and bookmarks are deliberately left
// intact; they are global across sessions in the current design.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
	s.isAuthenticated = false
	s.persistLocked()
}

// CurrentUser returns the logged-in user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}

// IsAuthenticated reports whether a user is logged in.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

// AddSkill validates a draft, fills in the generated fields, and prepends
// the new skill to the catalog (and to the filtered view, matching or not,
// so a just-created skill is immediately visible).
func (s *Store) AddSkill(draft models.Draft) (models.Skill, error) {
	if err := validateDraft(draft); err != nil {
		return models.Skill{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	skill := models.Skill{
		ID:            s.nextID,
		Title:         draft.Title,
		Description:   draft.Description,
		Category:      draft.Category,
		EstimatedTime: draft.EstimatedTime,
		Type:          draft.Type,
		Tags:          models.NormalizeTags(draft.Tags),
		Author:        draft.Author,
		Content:       draft.Content,
		Thumbnail:     draft.Thumbnail,
		CreatedAt:     s.now(),
	}
	s.nextID++

	s.skills = append([]models.Skill{skill}, s.skills...)
	s.filtered = append([]models.Skill{skill}, s.filtered...)
	return skill, nil
}

func validateDraft(draft models.Draft) error {
	switch {
	case draft.Title == "":
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	case draft.Description == "":
		return fmt.Errorf("%w: description must not be empty", ErrValidation)
	case draft.Category == "" || draft.Category == models.CategoryAll:
		return fmt.Errorf("%w: category must be a real category", ErrValidation)
	case draft.EstimatedTime <= 0:
		return fmt.Errorf("%w: estimated time must be positive", ErrValidation)
	case !models.IsValidType(draft.Type):
		return fmt.Errorf("%w: unknown content type %q", ErrValidation, draft.Type)
	}
	return nil
}

// UpvoteSkill increments the skill's upvote counter by exactly one.
// Returns ErrNotFound for an unknown id so callers can distinguish
// "applied" from "ignored".
func (s *Store) UpvoteSkill(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bumpLocked(id, func(sk *models.Skill) { sk.Upvotes++ })
}

// RecordView increments the skill's view counter by exactly one.
func (s *Store) RecordView(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bumpLocked(id, func(sk *models.Skill) { sk.Views++ })
}

// bumpLocked applies a counter mutation in both the catalog and the
// filtered view. Caller holds the write lock.
func (s *Store) bumpLocked(id int64, apply func(*models.Skill)) error {
	found := false
	for i := range s.skills {
		if s.skills[i].ID == id {
			apply(&s.skills[i])
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	for i := range s.filtered {
		if s.filtered[i].ID == id {
			apply(&s.filtered[i])
			break
		}
	}
	return nil
}

// CompleteSkill marks a skill completed. Idempotent: completing an already
// completed skill leaves the set unchanged (the progress timestamp is
// refreshed). There is no reversal; completion is a one-way transition.
func (s *Store) CompleteSkill(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.existsLocked(id) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	s.completed[id] = true
	s.progress[id] = models.ProgressRecord{Completed: true, CompletedAt: s.now()}
	s.persistLocked()
	return nil
}

// ToggleBookmark flips the skill's membership in the bookmark set and
// returns the new membership state.
func (s *Store) ToggleBookmark(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.existsLocked(id) {
		return false, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	if s.bookmarks[id] {
		delete(s.bookmarks, id)
	} else {
		s.bookmarks[id] = true
	}
	s.persistLocked()
	return s.bookmarks[id], nil
}

func (s *Store) existsLocked(id int64) bool {
	for i := range s.skills {
		if s.skills[i].ID == id {
			return true
		}
	}
	return false
}

// SkillByID returns the skill with the given id. The second return value is
// false when the id does not resolve; ids frequently come from stale input.
func (s *Store) SkillByID(id int64) (models.Skill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.skills {
		if s.skills[i].ID == id {
			return copySkill(s.skills[i]), true
		}
	}
	return models.Skill{}, false
}

// IsCompleted reports whether the skill is in the completed set.
func (s *Store) IsCompleted(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completed[id]
}

// IsBookmarked reports whether the skill is in the bookmark set.
func (s *Store) IsBookmarked(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookmarks[id]
}

// Progress returns the progress record for a skill, if one exists.
func (s *Store) Progress(id int64) (models.ProgressRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.progress[id]
	return rec, ok
}

// CompletedIDs returns the completed set in ascending id order.
func (s *Store) CompletedIDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedIDs(s.completed)
}

// BookmarkedIDs returns the bookmark set in ascending id order.
func (s *Store) BookmarkedIDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedIDs(s.bookmarks)
}

// Skills returns a copy of the full catalog in its current order
// (insertion order, newest creations first).
func (s *Store) Skills() []models.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySkills(s.skills)
}

// Categories returns the sentinel "All" followed by the lexicographically
// sorted distinct categories currently in the catalog. Recomputed on every
// call since categories grow as skills are added.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var cats []string
	for i := range s.skills {
		c := s.skills[i].Category
		if !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	sort.Strings(cats)
	return append([]string{models.CategoryAll}, cats...)
}

// Stats returns aggregate statistics over the catalog.
func (s *Store) Stats() models.CatalogStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.CatalogStats{TotalSkills: len(s.skills)}
	seen := make(map[string]bool)
	totalMinutes := 0
	for i := range s.skills {
		sk := &s.skills[i]
		stats.TotalUpvotes += sk.Upvotes
		stats.TotalViews += sk.Views
		totalMinutes += sk.EstimatedTime
		seen[sk.Category] = true
	}
	stats.TotalCategories = len(seen)
	if len(s.skills) > 0 {
		stats.AvgMinutes = float64(totalMinutes) / float64(len(s.skills))
	}
	return stats
}

func copySkill(sk models.Skill) models.Skill {
	out := sk
	out.Tags = append([]string(nil), sk.Tags...)
	return out
}

func copySkills(in []models.Skill) []models.Skill {
	out := make([]models.Skill, len(in))
	for i := range in {
		out[i] = copySkill(in[i])
	}
	return out
}
