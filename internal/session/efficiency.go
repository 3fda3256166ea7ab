package session

import "github.com/ankur/codedrill/internal/store"

// Baseline solve-time expectations per difficulty, used until the
// learner's own rolling averages accumulate.
var baselineMs = map[string]int{
	store.DifficultyEasy:   15 * 60 * 1000,
	store.DifficultyMedium: 25 * 60 * 1000,
	store.DifficultyHard:   40 * 60 * 1000,
}

// efficiencyCap bounds the score so one very fast session can't dominate
// the rolling signal.
const efficiencyCap = 1.5

// EfficiencyScore compares expected solve time (per-difficulty averages,
// falling back to baselines) against actual time. 1.0 means on pace,
// above means faster than the learner's own history. Clamped to
// [0, efficiencyCap]; zero actual time yields 0 (no signal).
func EfficiencyScore(attempts []store.AttemptData, stats map[string]store.DifficultyTimeStat) float64 {
	var expected, actual int
	for _, a := range attempts {
		actual += a.TimeSpentMs
		if s, ok := stats[a.Difficulty]; ok && s.Count > 0 {
			expected += s.AvgMs
		} else {
			expected += baselineMs[a.Difficulty]
		}
	}
	if actual <= 0 || expected <= 0 {
		return 0
	}
	score := float64(expected) / float64(actual)
	if score > efficiencyCap {
		score = efficiencyCap
	}
	return score
}

// UpdateDifficultyStats folds the session's attempts into the rolling
// per-difficulty solve-time averages. Returns a new map; the input is
// not mutated.
func UpdateDifficultyStats(stats map[string]store.DifficultyTimeStat, attempts []store.AttemptData) map[string]store.DifficultyTimeStat {
	out := make(map[string]store.DifficultyTimeStat, len(stats))
	for k, v := range stats {
		out[k] = v
	}
	for _, a := range attempts {
		if a.TimeSpentMs <= 0 {
			continue
		}
		s := out[a.Difficulty]
		s.AvgMs = (s.AvgMs*s.Count + a.TimeSpentMs) / (s.Count + 1)
		s.Count++
		out[a.Difficulty] = s
	}
	return out
}
