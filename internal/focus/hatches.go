package focus

import (
	"fmt"

	"github.com/ankur/codedrill/internal/store"
	"github.com/ankur/codedrill/internal/topics"
)

// Hatch thresholds.
const (
	// lowEfficiencyThreshold marks sessions where the learner is taking
	// far longer than their own baseline.
	lowEfficiencyThreshold = 0.5

	// tierStreakMin is how many focus topics of a single tier count as a
	// streak worth flagging.
	tierStreakMin = 2
)

// detectHatches inspects the learner state and mastery snapshot for
// applicable escape hatches. Hatches never change the topic set here;
// they are surfaced in the reasoning trail so downstream session
// generation can ease difficulty or inject variety.
func detectHatches(state *store.LearnerStateData, daysSinceProgress float64) []string {
	var hatches []string

	if daysSinceProgress >= StagnationDays {
		hatches = append(hatches,
			fmt.Sprintf("stagnation-hatch: %.0f days without progress", daysSinceProgress))
	}

	if state.LastEfficiency > 0 && state.LastEfficiency < lowEfficiencyThreshold {
		hatches = append(hatches,
			fmt.Sprintf("low-efficiency-hatch: efficiency %.2f", state.LastEfficiency))
	}

	if tier, ok := singleTierStreak(state.FocusTags); ok {
		hatches = append(hatches,
			fmt.Sprintf("single-tier-streak: all focus topics are %s", tier))
	}

	return hatches
}

// singleTierStreak reports whether every current focus topic sits in one
// tier.
func singleTierStreak(focusTags []string) (topics.Tier, bool) {
	if len(focusTags) < tierStreakMin {
		return "", false
	}
	var tier topics.Tier
	for i, id := range focusTags {
		t, err := topics.Get(id)
		if err != nil {
			return "", false
		}
		if i == 0 {
			tier = t.Tier
			continue
		}
		if t.Tier != tier {
			return "", false
		}
	}
	return tier, true
}
