package focus

import (
	"context"
	"testing"
	"time"

	"github.com/ankur/codedrill/internal/store"
	"github.com/ankur/codedrill/internal/topics"
)

// countingAttempts satisfies store.AttemptRepo for the volume signal.
type countingAttempts struct {
	count int
}

func (c *countingAttempts) Append(ctx context.Context, data store.AttemptData) error { return nil }
func (c *countingAttempts) All(ctx context.Context) ([]store.AttemptData, error)     { return nil, nil }
func (c *countingAttempts) BySession(ctx context.Context, sessionID string) ([]store.AttemptData, error) {
	return nil, nil
}
func (c *countingAttempts) InRange(ctx context.Context, from, to time.Time) ([]store.AttemptData, error) {
	return nil, nil
}
func (c *countingAttempts) TotalCount(ctx context.Context) (int, error) { return c.count, nil }

// panicRanker trips the pipeline's failsafe recovery.
type panicRanker struct{}

func (panicRanker) Rank(in topics.RankInput) []topics.Candidate { panic("ranker exploded") }
func (panicRanker) RankTier(tier topics.Tier, mastered map[string]bool) []topics.Candidate {
	panic("ranker exploded")
}

func testEngine(attemptCount int) *Engine {
	return NewEngine(topics.NewRanker(), &countingAttempts{count: attemptCount}, nil, nil, nil, nil, nil)
}

func TestDecide_OnboardingGate(t *testing.T) {
	eng := testEngine(50)
	state := &store.LearnerStateData{SessionsCompleted: 0, LastAccuracy: 0.9}
	prefs := &store.SettingsData{PreferredTopics: []string{"graphs", "trie", "union-find"}}

	d := eng.Decide(context.Background(), state, nil, prefs)

	if d.TagCount != 1 || len(d.ActiveTags) != 1 {
		t.Fatalf("onboarding decision has %d tags, want exactly 1", len(d.ActiveTags))
	}
	// The single topic is system-ranked; the three preferences are ignored.
	for _, p := range prefs.PreferredTopics {
		if d.ActiveTags[0] == p {
			t.Errorf("onboarding picked preferred topic %q, must be system-ranked", p)
		}
	}
	if len(d.AvailableTags) == 0 {
		t.Error("available tags should carry the full candidate pool")
	}
}

func TestDecide_CountFollowsBands(t *testing.T) {
	eng := testEngine(25)
	state := &store.LearnerStateData{SessionsCompleted: 5, LastAccuracy: 0.9}

	d := eng.Decide(context.Background(), state, nil, nil)

	if d.TagCount != 4 || len(d.ActiveTags) != 4 {
		t.Errorf("got %d tags at high accuracy and volume, want 4", len(d.ActiveTags))
	}
	if d.PerformanceLevel != LevelAdvanced {
		t.Errorf("level = %q, want %q", d.PerformanceLevel, LevelAdvanced)
	}
}

func TestDecide_LowVolumeSingleTopic(t *testing.T) {
	eng := testEngine(2)
	state := &store.LearnerStateData{SessionsCompleted: 5, LastAccuracy: 0.9}

	d := eng.Decide(context.Background(), state, nil, nil)
	if d.TagCount != 1 {
		t.Errorf("got %d tags below the volume gate, want 1", d.TagCount)
	}
}

func TestDecide_PreferenceReordersNotMembership(t *testing.T) {
	eng := testEngine(25)
	state := &store.LearnerStateData{SessionsCompleted: 5, LastAccuracy: 0.9}

	base := eng.Decide(context.Background(), state, nil, nil)
	last := base.ActiveTags[len(base.ActiveTags)-1]

	prefs := &store.SettingsData{PreferredTopics: []string{last}}
	d := eng.Decide(context.Background(), state, nil, prefs)

	if d.ActiveTags[0] != last {
		t.Errorf("preferred topic %q should sort first, got order %v", last, d.ActiveTags)
	}
	if !sameSet(base.ActiveTags, d.ActiveTags) {
		t.Errorf("preference changed membership: %v vs %v", base.ActiveTags, d.ActiveTags)
	}
}

func TestDecide_PreferenceOutsideChosenIgnored(t *testing.T) {
	eng := testEngine(25)
	state := &store.LearnerStateData{SessionsCompleted: 5, LastAccuracy: 0.9}

	base := eng.Decide(context.Background(), state, nil, nil)
	prefs := &store.SettingsData{PreferredTopics: []string{"arrays"}}
	d := eng.Decide(context.Background(), state, nil, prefs)

	if !sameSet(base.ActiveTags, d.ActiveTags) {
		t.Errorf("out-of-set preference changed membership: %v vs %v", base.ActiveTags, d.ActiveTags)
	}
	for _, tag := range d.ActiveTags {
		if tag == "arrays" {
			t.Error("preference outside the chosen set must not join it")
		}
	}
}

func TestDecide_TierOverride(t *testing.T) {
	eng := testEngine(25)
	state := &store.LearnerStateData{SessionsCompleted: 5, LastAccuracy: 0.9}
	prefs := &store.SettingsData{TierOverride: "fundamental"}

	d := eng.Decide(context.Background(), state, nil, prefs)

	for _, tag := range d.ActiveTags {
		top, err := topics.Get(tag)
		if err != nil {
			t.Fatalf("chosen unknown topic %q", tag)
		}
		if top.Tier != topics.TierFundamental {
			t.Errorf("tier override chose %q from tier %q", tag, top.Tier)
		}
	}
}

func TestDecide_StagnationForcesMaxCount(t *testing.T) {
	eng := testEngine(2)
	stale := time.Now().Add(-20 * 24 * time.Hour)
	state := &store.LearnerStateData{
		SessionsCompleted: 5,
		LastAccuracy:      0.5,
		LastProgressDate:  &stale,
	}

	d := eng.Decide(context.Background(), state, nil, nil)
	if d.TagCount != MaxTopicCount {
		t.Errorf("stagnated count = %d, want %d", d.TagCount, MaxTopicCount)
	}
}

func TestDecide_MasteredTopicsSink(t *testing.T) {
	eng := testEngine(2)
	snapshot := map[string]store.MasteryData{}
	for _, id := range topics.AllIDs() {
		snapshot[id] = store.MasteryData{Topic: id, Mastered: id != "graphs", DecayScore: 1.0}
	}
	state := &store.LearnerStateData{SessionsCompleted: 5, LastAccuracy: 0.9}

	d := eng.Decide(context.Background(), state, snapshot, nil)
	if len(d.ActiveTags) != 1 || d.ActiveTags[0] != "graphs" {
		t.Errorf("got %v, want the single unmastered topic graphs", d.ActiveTags)
	}
}

func TestDecide_PanicDegradesToFailsafe(t *testing.T) {
	eng := NewEngine(panicRanker{}, nil, nil, nil, nil, nil, nil)
	state := &store.LearnerStateData{SessionsCompleted: 5, LastAccuracy: 0.9}

	d := eng.Decide(context.Background(), state, nil, nil)

	want := Failsafe()
	if len(d.ActiveTags) != 1 || d.ActiveTags[0] != want.ActiveTags[0] {
		t.Errorf("got %v, want failsafe %v", d.ActiveTags, want.ActiveTags)
	}
	if d.Reasoning != want.Reasoning {
		t.Errorf("reasoning = %q, want %q", d.Reasoning, want.Reasoning)
	}
}

func TestDecide_NilInputs(t *testing.T) {
	eng := testEngine(0)
	d := eng.Decide(context.Background(), nil, nil, nil)
	if len(d.ActiveTags) == 0 {
		t.Error("nil inputs must still yield a decision")
	}
}

func TestPerformanceLevel_Bands(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     string
	}{
		{0.0, LevelStruggling},
		{0.39, LevelStruggling},
		{0.40, LevelBuilding},
		{0.64, LevelBuilding},
		{0.65, LevelProficient},
		{0.84, LevelProficient},
		{0.85, LevelAdvanced},
		{1.0, LevelAdvanced},
	}
	for _, tt := range tests {
		if got := PerformanceLevel(tt.accuracy); got != tt.want {
			t.Errorf("PerformanceLevel(%.2f) = %q, want %q", tt.accuracy, got, tt.want)
		}
	}
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, x := range a {
		set[x] = true
	}
	for _, y := range b {
		if !set[y] {
			return false
		}
	}
	return true
}
