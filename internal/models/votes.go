package models

// Difficulty levels for community assessment, ordinal 1..5.
const (
	DifficultyVeryEasy = "Very Easy"
	DifficultyEasy     = "Easy"
	DifficultyMedium   = "Medium"
	DifficultyHard     = "Hard"
	DifficultyVeryHard = "Very Hard"
)

// DifficultyLevels returns the scale in ascending order.
func DifficultyLevels() []string {
	return []string{
		DifficultyVeryEasy,
		DifficultyEasy,
		DifficultyMedium,
		DifficultyHard,
		DifficultyVeryHard,
	}
}

// Time-estimate buckets for community assessment.
const (
	TimeUnder5 = "Under 5 min"
	Time5To10  = "5-10 min"
	Time10To15 = "10-15 min"
	Time15To20 = "15-20 min"
	TimeOver20 = "Over 20 min"
)

// TimeBuckets returns the time scale in ascending order.
func TimeBuckets() []string {
	return []string{TimeUnder5, Time5To10, Time10To15, Time15To20, TimeOver20}
}

// VoteTally holds per-skill community votes on difficulty and time estimate.
type VoteTally struct {
	Difficulty map[string]int `json:"difficulty"`
	Time       map[string]int `json:"time"`
}

// NewVoteTally returns an empty tally with both maps allocated.
func NewVoteTally() VoteTally {
	return VoteTally{
		Difficulty: make(map[string]int),
		Time:       make(map[string]int),
	}
}

// Total returns the combined number of votes in the tally.
func (v VoteTally) Total() int {
	n := 0
	for _, c := range v.Difficulty {
		n += c
	}
	for _, c := range v.Time {
		n += c
	}
	return n
}
