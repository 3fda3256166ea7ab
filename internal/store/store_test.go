package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	data := SessionData{
		SessionID:   "abc-123",
		Status:      StatusDraft,
		SessionType: TypeStandard,
		Origin:      OriginGenerator,
		Problems: []ProblemSlot{
			{ProblemID: "p1", Topic: "arrays", Difficulty: DifficultyEasy},
			{ProblemID: "p2", Topic: "arrays", Difficulty: DifficultyMedium},
		},
		LastActivity: time.Now(),
		CreatedAt:    time.Now(),
	}
	if err := repo.Create(ctx, data); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.BySessionID(ctx, "abc-123")
	if err != nil {
		t.Fatalf("BySessionID: %v", err)
	}
	if got == nil {
		t.Fatal("expected session, got nil")
	}
	if got.Status != StatusDraft || len(got.Problems) != 2 {
		t.Errorf("got %+v", got)
	}
	if got.Problems[0].ProblemID != "p1" {
		t.Errorf("problem slots not preserved: %+v", got.Problems)
	}

	missing, err := repo.BySessionID(ctx, "no-such")
	if err != nil {
		t.Fatalf("BySessionID missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing session should be nil, got %+v", missing)
	}
}

func TestSessionRepo_GetOrCreateActive(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	fresh := SessionData{
		SessionID: "first", Status: StatusDraft,
		SessionType: TypeStandard, Origin: OriginGenerator,
		LastActivity: time.Now(), CreatedAt: time.Now(),
	}
	got, created, err := repo.GetOrCreateActive(ctx, []string{TypeStandard}, fresh)
	if err != nil {
		t.Fatalf("GetOrCreateActive: %v", err)
	}
	if !created || got.SessionID != "first" {
		t.Errorf("first call: created=%v session=%s, want fresh creation", created, got.SessionID)
	}

	second := fresh
	second.SessionID = "second"
	got, created, err = repo.GetOrCreateActive(ctx, []string{TypeStandard}, second)
	if err != nil {
		t.Fatalf("GetOrCreateActive again: %v", err)
	}
	if created || got.SessionID != "first" {
		t.Errorf("second call: created=%v session=%s, want existing first", created, got.SessionID)
	}

	interview := fresh
	interview.SessionID = "iv"
	interview.SessionType = TypeInterviewLike
	_, created, err = repo.GetOrCreateActive(ctx, []string{TypeInterviewLike}, interview)
	if err != nil {
		t.Fatalf("GetOrCreateActive interview: %v", err)
	}
	if !created {
		t.Error("different type should not resume the standard session")
	}
}

func TestStateRepo_FieldScoping(t *testing.T) {
	s := openTestStore(t)
	repo := s.State()
	ctx := context.Background()

	state, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.SessionsCompleted != 0 {
		t.Errorf("fresh state sessions completed = %d, want 0", state.SessionsCompleted)
	}

	if err := repo.SaveFocus(ctx, FocusFields{
		FocusTags: []string{"arrays", "strings"}, TagCount: 2, PerformanceLevel: "building",
	}); err != nil {
		t.Fatalf("SaveFocus: %v", err)
	}
	if err := repo.SaveLifecycle(ctx, LifecycleFields{
		SessionsCompleted: 3, LastAccuracy: 0.75, LastProgressDate: time.Now(),
	}); err != nil {
		t.Fatalf("SaveLifecycle: %v", err)
	}

	state, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	// Lifecycle save must not clobber focus-owned fields, and vice versa.
	if len(state.FocusTags) != 2 || state.TagCount != 2 {
		t.Errorf("focus fields lost: %+v", state)
	}
	if state.SessionsCompleted != 3 || state.LastAccuracy != 0.75 {
		t.Errorf("lifecycle fields lost: %+v", state)
	}
	if state.LastProgressDate == nil {
		t.Error("last progress date not persisted")
	}
}

func TestSettingsRepo_MissingRowDefaults(t *testing.T) {
	s := openTestStore(t)
	prefs, err := s.Settings().Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if prefs == nil {
		t.Fatal("expected empty defaults, got nil")
	}
	if len(prefs.PreferredTopics) != 0 || prefs.TierOverride != "" {
		t.Errorf("got %+v, want empty preferences", prefs)
	}
}

func TestMasteryRepo_UpsertOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.Mastery()
	ctx := context.Background()

	if err := repo.Upsert(ctx, MasteryData{Topic: "arrays", TotalAttempts: 5, SuccessfulAttempts: 3, DecayScore: 1.0}); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, MasteryData{Topic: "arrays", TotalAttempts: 6, SuccessfulAttempts: 4, DecayScore: 0.9, Mastered: false}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, err := repo.ByTopic(ctx, "arrays")
	if err != nil {
		t.Fatalf("ByTopic: %v", err)
	}
	if got == nil || got.TotalAttempts != 6 || got.SuccessfulAttempts != 4 {
		t.Errorf("got %+v, want overwritten 4/6", got)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d records, want 1 (upsert, not append)", len(all))
	}
}

func TestSequenceCounter_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prev, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("Next %d: %v", i, err)
		}
		if n != prev+1 {
			t.Errorf("sequence jumped from %d to %d", prev, n)
		}
		prev = n
	}
}

func TestEventRepo_CrossTypeSequence(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	if err := events.AppendDecisionEvent(ctx, DecisionEventData{
		Tags: []string{"arrays"}, TagCount: 1, Reasoning: "r", PerformanceLevel: "building",
	}); err != nil {
		t.Fatalf("AppendDecisionEvent: %v", err)
	}
	if err := events.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "create", SessionType: TypeStandard,
	}); err != nil {
		t.Fatalf("AppendSessionEvent: %v", err)
	}

	// Both event types draw from the same counter.
	n, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if n < 3 {
		t.Errorf("sequence = %d after two events, want at least 3", n)
	}
}
