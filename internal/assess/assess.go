// Package assess aggregates community votes on skill difficulty and time
// estimates into a single bucket per skill.
//
// Difficulty uses a discrete five-point ordinal scale weighted 1..5; the
// weighted average is mapped back to a bucket at half-point boundaries.
// Time estimates use bucket midpoints {2.5, 7.5, 12.5, 17.5, 25} minutes
// with thresholds at {5, 10, 15, 20}.
package assess

import (
	"github.com/skilllet/skilllet/internal/models"
)

var difficultyWeights = map[string]float64{
	models.DifficultyVeryEasy: 1,
	models.DifficultyEasy:     2,
	models.DifficultyMedium:   3,
	models.DifficultyHard:     4,
	models.DifficultyVeryHard: 5,
}

var timeWeights = map[string]float64{
	models.TimeUnder5: 2.5,
	models.Time5To10:  7.5,
	models.Time10To15: 12.5,
	models.Time15To20: 17.5,
	models.TimeOver20: 25,
}

// AverageDifficulty reduces a difficulty tally to its consensus bucket.
// Returns false when the tally holds no votes.
func AverageDifficulty(votes map[string]int) (string, bool) {
	avg, ok := weightedAverage(votes, difficultyWeights)
	if !ok {
		return "", false
	}
	switch {
	case avg <= 1.5:
		return models.DifficultyVeryEasy, true
	case avg <= 2.5:
		return models.DifficultyEasy, true
	case avg <= 3.5:
		return models.DifficultyMedium, true
	case avg <= 4.5:
		return models.DifficultyHard, true
	default:
		return models.DifficultyVeryHard, true
	}
}

// AverageTime reduces a time-estimate tally to its consensus bucket.
// Returns false when the tally holds no votes.
func AverageTime(votes map[string]int) (string, bool) {
	avg, ok := weightedAverage(votes, timeWeights)
	if !ok {
		return "", false
	}
	switch {
	case avg <= 5:
		return models.TimeUnder5, true
	case avg <= 10:
		return models.Time5To10, true
	case avg <= 15:
		return models.Time10To15, true
	case avg <= 20:
		return models.Time15To20, true
	default:
		return models.TimeOver20, true
	}
}

func weightedAverage(votes map[string]int, weights map[string]float64) (float64, bool) {
	var totalWeight float64
	var totalVotes int
	for bucket, count := range votes {
		totalWeight += weights[bucket] * float64(count)
		totalVotes += count
	}
	if totalVotes == 0 {
		return 0, false
	}
	return totalWeight / float64(totalVotes), true
}

// Distribution counts how many tallies resolve to each difficulty bucket.
// Tallies without votes are skipped.
func Distribution(tallies map[int64]models.VoteTally) map[string]int {
	dist := make(map[string]int, 5)
	for _, level := range models.DifficultyLevels() {
		dist[level] = 0
	}
	for _, tally := range tallies {
		if bucket, ok := AverageDifficulty(tally.Difficulty); ok {
			dist[bucket]++
		}
	}
	return dist
}
