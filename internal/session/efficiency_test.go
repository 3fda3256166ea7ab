package session

import (
	"testing"

	"github.com/ankur/codedrill/internal/store"
)

func TestEfficiencyScore_OnBaselinePace(t *testing.T) {
	attempts := []store.AttemptData{
		{Difficulty: store.DifficultyEasy, TimeSpentMs: baselineMs[store.DifficultyEasy]},
	}
	got := EfficiencyScore(attempts, nil)
	if got != 1.0 {
		t.Errorf("on-pace score = %f, want 1.0", got)
	}
}

func TestEfficiencyScore_UsesRollingStats(t *testing.T) {
	stats := map[string]store.DifficultyTimeStat{
		store.DifficultyEasy: {AvgMs: 10_000, Count: 5},
	}
	attempts := []store.AttemptData{
		{Difficulty: store.DifficultyEasy, TimeSpentMs: 20_000},
	}
	got := EfficiencyScore(attempts, stats)
	if got != 0.5 {
		t.Errorf("score = %f, want 0.5 (twice the learner's own average)", got)
	}
}

func TestEfficiencyScore_Capped(t *testing.T) {
	attempts := []store.AttemptData{
		{Difficulty: store.DifficultyHard, TimeSpentMs: 1},
	}
	got := EfficiencyScore(attempts, nil)
	if got != efficiencyCap {
		t.Errorf("score = %f, want cap %f", got, efficiencyCap)
	}
}

func TestEfficiencyScore_NoSignal(t *testing.T) {
	if got := EfficiencyScore(nil, nil); got != 0 {
		t.Errorf("empty session score = %f, want 0", got)
	}
	attempts := []store.AttemptData{{Difficulty: store.DifficultyEasy, TimeSpentMs: 0}}
	if got := EfficiencyScore(attempts, nil); got != 0 {
		t.Errorf("zero-time score = %f, want 0", got)
	}
}

func TestUpdateDifficultyStats_RollingAverage(t *testing.T) {
	stats := map[string]store.DifficultyTimeStat{
		store.DifficultyEasy: {AvgMs: 10_000, Count: 1},
	}
	attempts := []store.AttemptData{
		{Difficulty: store.DifficultyEasy, TimeSpentMs: 20_000},
	}
	got := UpdateDifficultyStats(stats, attempts)

	s := got[store.DifficultyEasy]
	if s.AvgMs != 15_000 || s.Count != 2 {
		t.Errorf("got avg %d count %d, want 15000/2", s.AvgMs, s.Count)
	}
	// The input map must not change.
	if stats[store.DifficultyEasy].Count != 1 {
		t.Error("input stats map was mutated")
	}
}

func TestUpdateDifficultyStats_SkipsZeroTime(t *testing.T) {
	got := UpdateDifficultyStats(nil, []store.AttemptData{
		{Difficulty: store.DifficultyEasy, TimeSpentMs: 0},
	})
	if _, ok := got[store.DifficultyEasy]; ok {
		t.Error("zero-time attempts must not enter the rolling average")
	}
}
