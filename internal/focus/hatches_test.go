package focus

import (
	"strings"
	"testing"

	"github.com/ankur/codedrill/internal/store"
)

func TestDetectHatches_None(t *testing.T) {
	state := &store.LearnerStateData{
		FocusTags:      []string{"arrays", "two-pointers"},
		LastEfficiency: 0.9,
	}
	got := detectHatches(state, 2)
	if len(got) != 0 {
		t.Errorf("got hatches %v, want none", got)
	}
}

func TestDetectHatches_Stagnation(t *testing.T) {
	got := detectHatches(&store.LearnerStateData{}, StagnationDays)
	if len(got) != 1 || !strings.HasPrefix(got[0], "stagnation-hatch") {
		t.Errorf("got %v, want single stagnation-hatch", got)
	}
}

func TestDetectHatches_LowEfficiency(t *testing.T) {
	state := &store.LearnerStateData{LastEfficiency: 0.3}
	got := detectHatches(state, 0)
	if len(got) != 1 || !strings.HasPrefix(got[0], "low-efficiency-hatch") {
		t.Errorf("got %v, want single low-efficiency-hatch", got)
	}
}

func TestDetectHatches_ZeroEfficiencyIsNoSignal(t *testing.T) {
	state := &store.LearnerStateData{LastEfficiency: 0}
	if got := detectHatches(state, 0); len(got) != 0 {
		t.Errorf("got %v, want none for unset efficiency", got)
	}
}

func TestDetectHatches_SingleTierStreak(t *testing.T) {
	state := &store.LearnerStateData{
		FocusTags:      []string{"arrays", "strings", "stack"},
		LastEfficiency: 1.0,
	}
	got := detectHatches(state, 0)
	if len(got) != 1 || !strings.HasPrefix(got[0], "single-tier-streak") {
		t.Errorf("got %v, want single-tier-streak", got)
	}
}

func TestSingleTierStreak_MixedTiers(t *testing.T) {
	if _, ok := singleTierStreak([]string{"arrays", "graphs"}); ok {
		t.Error("mixed tiers should not count as a streak")
	}
}

func TestSingleTierStreak_TooShort(t *testing.T) {
	if _, ok := singleTierStreak([]string{"arrays"}); ok {
		t.Error("a single focus topic is not a streak")
	}
}

func TestSingleTierStreak_UnknownTopic(t *testing.T) {
	if _, ok := singleTierStreak([]string{"arrays", "no-such-topic"}); ok {
		t.Error("unknown topics should disable streak detection")
	}
}
