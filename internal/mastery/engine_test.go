package mastery

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ankur/codedrill/internal/store"
	"github.com/ankur/codedrill/internal/topics"
)

type fakeAttempts struct {
	attempts []store.AttemptData
	err      error
}

func (f *fakeAttempts) Append(ctx context.Context, data store.AttemptData) error {
	f.attempts = append(f.attempts, data)
	return nil
}

func (f *fakeAttempts) All(ctx context.Context) ([]store.AttemptData, error) {
	return f.attempts, f.err
}

func (f *fakeAttempts) BySession(ctx context.Context, sessionID string) ([]store.AttemptData, error) {
	var out []store.AttemptData
	for _, a := range f.attempts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttempts) InRange(ctx context.Context, from, to time.Time) ([]store.AttemptData, error) {
	return f.attempts, nil
}

func (f *fakeAttempts) TotalCount(ctx context.Context) (int, error) {
	return len(f.attempts), nil
}

type fakeMastery struct {
	records    map[string]store.MasteryData
	failTopics map[string]bool
}

func newFakeMastery() *fakeMastery {
	return &fakeMastery{records: make(map[string]store.MasteryData)}
}

func (f *fakeMastery) Upsert(ctx context.Context, data store.MasteryData) error {
	if f.failTopics[data.Topic] {
		return fmt.Errorf("upsert %s: boom", data.Topic)
	}
	f.records[data.Topic] = data
	return nil
}

func (f *fakeMastery) All(ctx context.Context) ([]store.MasteryData, error) {
	out := make([]store.MasteryData, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeMastery) ByTopic(ctx context.Context, topic string) (*store.MasteryData, error) {
	if r, ok := f.records[topic]; ok {
		return &r, nil
	}
	return nil, nil
}

func attempt(topic string, success bool, at time.Time) store.AttemptData {
	return store.AttemptData{
		ProblemID:   "p",
		Topics:      []string{topic},
		Success:     success,
		TimeSpentMs: 60_000,
		Difficulty:  store.DifficultyEasy,
		Timestamp:   at,
	}
}

func TestRecompute_Aggregates(t *testing.T) {
	now := time.Now()
	attempts := &fakeAttempts{}
	for i := 0; i < 9; i++ {
		attempts.attempts = append(attempts.attempts, attempt("arrays", true, now.Add(-time.Duration(i)*time.Hour)))
	}
	attempts.attempts = append(attempts.attempts, attempt("arrays", false, now))

	repo := newFakeMastery()
	eng := NewEngine(attempts, repo, nil)

	records, err := eng.Recompute(context.Background())
	if err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if len(records) != len(topics.AllIDs()) {
		t.Errorf("got %d records, want one per catalog topic (%d)", len(records), len(topics.AllIDs()))
	}

	r := repo.records["arrays"]
	if r.TotalAttempts != 10 || r.SuccessfulAttempts != 9 {
		t.Errorf("arrays aggregate = %d/%d, want 9/10", r.SuccessfulAttempts, r.TotalAttempts)
	}
	if !r.Mastered {
		t.Error("arrays at 9/10 should be mastered")
	}
	if r.LastSuccessAt == nil {
		t.Fatal("arrays should carry last success timestamp")
	}
}

func TestRecompute_ZeroAttemptTopicsGetRecords(t *testing.T) {
	repo := newFakeMastery()
	eng := NewEngine(&fakeAttempts{}, repo, nil)

	if _, err := eng.Recompute(context.Background()); err != nil {
		t.Fatalf("Recompute: %v", err)
	}

	r, ok := repo.records["graphs"]
	if !ok {
		t.Fatal("unattempted catalog topic should still get a record")
	}
	if r.TotalAttempts != 0 || r.Mastered {
		t.Errorf("unattempted record = %+v, want zero attempts and not mastered", r)
	}
	if r.DecayScore != 1.0 {
		t.Errorf("unattempted decay = %f, want 1.0", r.DecayScore)
	}
}

func TestRecompute_SkipsMalformed(t *testing.T) {
	now := time.Now()
	attempts := &fakeAttempts{attempts: []store.AttemptData{
		{ID: 1, Topics: nil, Success: true, Timestamp: now},
		{ID: 2, Topics: []string{"arrays"}, TimeSpentMs: -5, Success: true, Timestamp: now},
		attempt("arrays", true, now),
	}}
	repo := newFakeMastery()
	eng := NewEngine(attempts, repo, nil)

	if _, err := eng.Recompute(context.Background()); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if got := repo.records["arrays"].TotalAttempts; got != 1 {
		t.Errorf("arrays total = %d, want 1 (malformed rows skipped)", got)
	}
}

func TestRecompute_OutOfCatalogTopic(t *testing.T) {
	attempts := &fakeAttempts{attempts: []store.AttemptData{
		attempt("segment-trees", true, time.Now()),
	}}
	repo := newFakeMastery()
	eng := NewEngine(attempts, repo, nil)

	if _, err := eng.Recompute(context.Background()); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if _, ok := repo.records["segment-trees"]; !ok {
		t.Error("imported history outside the catalog should still get a record")
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	attempts := &fakeAttempts{attempts: []store.AttemptData{
		attempt("arrays", true, time.Now()),
		attempt("arrays", false, time.Now()),
	}}
	repo := newFakeMastery()
	eng := NewEngine(attempts, repo, nil)

	if _, err := eng.Recompute(context.Background()); err != nil {
		t.Fatalf("first Recompute: %v", err)
	}
	first := repo.records["arrays"]

	if _, err := eng.Recompute(context.Background()); err != nil {
		t.Fatalf("second Recompute: %v", err)
	}
	second := repo.records["arrays"]

	if first.TotalAttempts != second.TotalAttempts || first.SuccessfulAttempts != second.SuccessfulAttempts {
		t.Errorf("recompute not idempotent: %+v then %+v", first, second)
	}
}

func TestRecompute_ContinuesPastUpsertFailure(t *testing.T) {
	attempts := &fakeAttempts{attempts: []store.AttemptData{
		attempt("arrays", true, time.Now()),
		attempt("strings", true, time.Now()),
	}}
	repo := newFakeMastery()
	repo.failTopics = map[string]bool{"arrays": true}
	eng := NewEngine(attempts, repo, nil)

	records, err := eng.Recompute(context.Background())
	if err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if _, ok := repo.records["strings"]; !ok {
		t.Error("failure on one topic must not abort the others")
	}
	for _, r := range records {
		if r.Topic == "arrays" {
			t.Error("failed topic should not appear among persisted records")
		}
	}
}
