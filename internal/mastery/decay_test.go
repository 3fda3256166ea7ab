package mastery

import (
	"testing"
	"time"
)

func TestDecayScore_NeverSucceeded(t *testing.T) {
	got := DecayScore(nil, time.Now())
	if got != 1.0 {
		t.Errorf("DecayScore(nil) = %f, want 1.0", got)
	}
}

func TestDecayScore_Fresh(t *testing.T) {
	now := time.Now()
	got := DecayScore(&now, now)
	if got != 1.0 {
		t.Errorf("same-instant decay = %f, want 1.0", got)
	}
}

func TestDecayScore_HalfLife(t *testing.T) {
	now := time.Now()
	then := now.Add(-14 * 24 * time.Hour)
	got := DecayScore(&then, now)
	want := DecayFloor + (1.0-DecayFloor)*0.5
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("14-day decay = %f, want %f", got, want)
	}
}

func TestDecayScore_MonotoneNonIncreasing(t *testing.T) {
	now := time.Now()
	prev := 1.0
	for days := 1; days <= 120; days += 7 {
		then := now.Add(-time.Duration(days) * 24 * time.Hour)
		got := DecayScore(&then, now)
		if got > prev {
			t.Errorf("decay increased at day %d: %f > %f", days, got, prev)
		}
		prev = got
	}
}

func TestDecayScore_FloorHolds(t *testing.T) {
	now := time.Now()
	then := now.Add(-10 * 365 * 24 * time.Hour)
	got := DecayScore(&then, now)
	if got < DecayFloor {
		t.Errorf("decay %f fell below floor %f", got, DecayFloor)
	}
	if got > DecayFloor+0.001 {
		t.Errorf("decay %f should be at the floor after ten years", got)
	}
}
