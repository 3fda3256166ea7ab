package mastery

import (
	"math"
	"time"
)

const (
	// DecayFloor is the minimum decay score. Mastery fades with disuse
	// but never resets to zero.
	DecayFloor = 0.25

	// decayHalfLifeDays controls how fast freshness fades: the score
	// drops halfway to the floor roughly every two weeks without a
	// successful attempt.
	decayHalfLifeDays = 14.0
)

// DecayScore returns the freshness multiplier for a topic given its most
// recent successful attempt. Monotone non-increasing in elapsed time,
// starting at 1.0 and approaching DecayFloor. A nil lastSuccess (never
// succeeded) yields the default 1.0: there is nothing to forget yet.
func DecayScore(lastSuccess *time.Time, now time.Time) float64 {
	if lastSuccess == nil {
		return 1.0
	}
	days := now.Sub(*lastSuccess).Hours() / 24
	if days <= 0 {
		return 1.0
	}
	return DecayFloor + (1.0-DecayFloor)*math.Pow(0.5, days/decayHalfLifeDays)
}
