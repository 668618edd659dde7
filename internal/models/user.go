package models

import "time"

// User is the current session's user record.
// There is no credential handling; login is a direct state assignment.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Avatar   string   `json:"avatar"`
	Badges   []string `json:"badges"`
	JoinedAt string   `json:"joined_at"`
}

// ProgressRecord marks a skill as completed for the current user.
type ProgressRecord struct {
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completed_at"`
}

// PersistedState is the slice of store state written through to durable
// storage on every mutation that touches it. The catalog itself is not
// part of the slice; each session restarts from the seed catalog.
type PersistedState struct {
	CurrentUser      *User                    `json:"current_user"`
	IsAuthenticated  bool                     `json:"is_authenticated"`
	CompletedSkills  []int64                  `json:"completed_skills"`
	BookmarkedSkills []int64                  `json:"bookmarked_skills"`
	UserProgress     map[int64]ProgressRecord `json:"user_progress"`
	Votes            map[int64]VoteTally      `json:"votes,omitempty"`
}
