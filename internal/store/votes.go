package store

import (
	"fmt"

	"github.com/skilllet/skilllet/internal/models"
)

// VoteDifficulty records one community difficulty vote for a skill.
// The level must be one of the five-point ordinal scale.
func (s *Store) VoteDifficulty(id int64, level string) error {
	if !containsString(models.DifficultyLevels(), level) {
		return fmt.Errorf("%w: unknown difficulty %q", ErrValidation, level)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.existsLocked(id) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	tally := s.tallyLocked(id)
	tally.Difficulty[level]++
	s.votes[id] = tally
	s.persistLocked()
	return nil
}

// VoteTime records one community time-estimate vote for a skill.
func (s *Store) VoteTime(id int64, bucket string) error {
	if !containsString(models.TimeBuckets(), bucket) {
		return fmt.Errorf("%w: unknown time bucket %q", ErrValidation, bucket)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.existsLocked(id) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	tally := s.tallyLocked(id)
	tally.Time[bucket]++
	s.votes[id] = tally
	s.persistLocked()
	return nil
}

// Votes returns a copy of the vote tally for a skill. The second return
// value is false when no votes have been recorded.
func (s *Store) Votes(id int64) (models.VoteTally, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tally, ok := s.votes[id]
	if !ok {
		return models.VoteTally{}, false
	}
	out := models.NewVoteTally()
	for k, v := range tally.Difficulty {
		out.Difficulty[k] = v
	}
	for k, v := range tally.Time {
		out.Time[k] = v
	}
	return out, true
}

func (s *Store) tallyLocked(id int64) models.VoteTally {
	tally, ok := s.votes[id]
	if !ok {
		tally = models.NewVoteTally()
	}
	return tally
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
