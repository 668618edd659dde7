package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilllet/skilllet/internal/models"
)

func TestAverageDifficulty(t *testing.T) {
	testCases := []struct {
		name  string
		votes map[string]int
		want  string
	}{
		{
			name:  "single vote",
			votes: map[string]int{models.DifficultyMedium: 1},
			want:  models.DifficultyMedium,
		},
		{
			name: "mixed votes land on medium",
			// (1*3 + 2*6 + 3*20 + 4*9 + 5*3) / 41 = 117/41 ≈ 2.854
			votes: map[string]int{
				models.DifficultyVeryEasy: 3,
				models.DifficultyEasy:     6,
				models.DifficultyMedium:   20,
				models.DifficultyHard:     9,
				models.DifficultyVeryHard: 3,
			},
			want: models.DifficultyMedium,
		},
		{
			name: "boundary 1.5 rounds down",
			// (1 + 2) / 2 = 1.5
			votes: map[string]int{
				models.DifficultyVeryEasy: 1,
				models.DifficultyEasy:     1,
			},
			want: models.DifficultyVeryEasy,
		},
		{
			name: "just above 4.5 is very hard",
			// (4 + 5*9) / 10 = 4.9
			votes: map[string]int{
				models.DifficultyHard:     1,
				models.DifficultyVeryHard: 9,
			},
			want: models.DifficultyVeryHard,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AverageDifficulty(tc.votes)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAverageDifficulty_NoVotes(t *testing.T) {
	_, ok := AverageDifficulty(nil)
	assert.False(t, ok)

	_, ok = AverageDifficulty(map[string]int{})
	assert.False(t, ok)

	_, ok = AverageDifficulty(map[string]int{models.DifficultyEasy: 0})
	assert.False(t, ok, "zero-count entries carry no votes")
}

func TestAverageTime(t *testing.T) {
	testCases := []struct {
		name  string
		votes map[string]int
		want  string
	}{
		{
			name:  "single bucket",
			votes: map[string]int{models.Time10To15: 4},
			want:  models.Time10To15,
		},
		{
			name: "weighted toward quick",
			// (2.5*8 + 7.5*2) / 10 = 3.5
			votes: map[string]int{
				models.TimeUnder5: 8,
				models.Time5To10:  2,
			},
			want: models.TimeUnder5,
		},
		{
			name: "over twenty dominates",
			// (25*5 + 17.5) / 6 ≈ 23.75
			votes: map[string]int{
				models.TimeOver20: 5,
				models.Time15To20: 1,
			},
			want: models.TimeOver20,
		},
		{
			name: "boundary 10 stays in lower bucket",
			// (7.5 + 12.5) / 2 = 10
			votes: map[string]int{
				models.Time5To10:  1,
				models.Time10To15: 1,
			},
			want: models.Time5To10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AverageTime(tc.votes)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAverageTime_NoVotes(t *testing.T) {
	_, ok := AverageTime(nil)
	assert.False(t, ok)
}

func TestDistribution(t *testing.T) {
	tallies := map[int64]models.VoteTally{
		1: {Difficulty: map[string]int{models.DifficultyEasy: 3}},
		2: {Difficulty: map[string]int{models.DifficultyEasy: 1, models.DifficultyMedium: 1}},
		3: {Difficulty: map[string]int{models.DifficultyVeryHard: 2}},
		4: {}, // no votes, skipped
	}

	dist := Distribution(tallies)
	assert.Equal(t, 2, dist[models.DifficultyEasy], "2.5 average lands on easy")
	assert.Equal(t, 1, dist[models.DifficultyVeryHard])
	assert.Equal(t, 0, dist[models.DifficultyMedium])
	assert.Len(t, dist, 5, "every bucket is present")
}
