package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ankur/codedrill/internal/store"
)

type fakeAttemptRepo struct {
	attempts []store.AttemptData
}

func (f *fakeAttemptRepo) Append(ctx context.Context, data store.AttemptData) error {
	data.ID = len(f.attempts) + 1
	f.attempts = append(f.attempts, data)
	return nil
}

func (f *fakeAttemptRepo) All(ctx context.Context) ([]store.AttemptData, error) {
	return f.attempts, nil
}

func (f *fakeAttemptRepo) BySession(ctx context.Context, sessionID string) ([]store.AttemptData, error) {
	var out []store.AttemptData
	for _, a := range f.attempts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) InRange(ctx context.Context, from, to time.Time) ([]store.AttemptData, error) {
	return f.attempts, nil
}

func (f *fakeAttemptRepo) TotalCount(ctx context.Context) (int, error) {
	return len(f.attempts), nil
}

type fakeSessionRepo struct {
	rows map[string]*store.SessionData
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{rows: make(map[string]*store.SessionData)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, data store.SessionData) error {
	d := data
	f.rows[d.SessionID] = &d
	return nil
}

func (f *fakeSessionRepo) BySessionID(ctx context.Context, sessionID string) (*store.SessionData, error) {
	if s, ok := f.rows[sessionID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeSessionRepo) LatestByStatus(ctx context.Context, status string, types []string) (*store.SessionData, error) {
	var best *store.SessionData
	for _, s := range f.rows {
		if s.Status != status || !containsType(types, s.SessionType) {
			continue
		}
		if best == nil || s.LastActivity.After(best.LastActivity) {
			best = s
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &cp, nil
}

func (f *fakeSessionRepo) Active(ctx context.Context, types []string) ([]store.SessionData, error) {
	var out []store.SessionData
	for _, s := range f.rows {
		if (s.Status == store.StatusDraft || s.Status == store.StatusInProgress) && containsType(types, s.SessionType) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) NonTerminal(ctx context.Context) ([]store.SessionData, error) {
	var out []store.SessionData
	for _, s := range f.rows {
		if s.Status != store.StatusCompleted && s.Status != store.StatusExpired {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) UpdateStatus(ctx context.Context, sessionID, status string, accuracy float64, durationSecs int) error {
	s, ok := f.rows[sessionID]
	if !ok {
		return errors.New("no such session")
	}
	s.Status = status
	s.Accuracy = accuracy
	s.DurationSecs = durationSecs
	return nil
}

func (f *fakeSessionRepo) Touch(ctx context.Context, sessionID string, currentIndex int, at time.Time) error {
	s, ok := f.rows[sessionID]
	if !ok {
		return errors.New("no such session")
	}
	s.CurrentIndex = currentIndex
	s.LastActivity = at
	if s.Status == store.StatusDraft {
		s.Status = store.StatusInProgress
	}
	return nil
}

func (f *fakeSessionRepo) GetOrCreateActive(ctx context.Context, compatTypes []string, fresh store.SessionData) (*store.SessionData, bool, error) {
	active, _ := f.Active(ctx, compatTypes)
	if len(active) > 0 {
		cp := active[0]
		return &cp, false, nil
	}
	if err := f.Create(ctx, fresh); err != nil {
		return nil, false, err
	}
	cp := fresh
	return &cp, true, nil
}

func containsType(types []string, t string) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

type fakeStateRepo struct {
	state store.LearnerStateData
}

func (f *fakeStateRepo) Load(ctx context.Context) (*store.LearnerStateData, error) {
	cp := f.state
	return &cp, nil
}

func (f *fakeStateRepo) SaveLifecycle(ctx context.Context, fields store.LifecycleFields) error {
	f.state.SessionsCompleted = fields.SessionsCompleted
	f.state.LastAccuracy = fields.LastAccuracy
	f.state.LastEfficiency = fields.LastEfficiency
	f.state.DifficultyTimeStats = fields.DifficultyTimeStats
	d := fields.LastProgressDate
	f.state.LastProgressDate = &d
	return nil
}

func (f *fakeStateRepo) SaveFocus(ctx context.Context, fields store.FocusFields) error {
	f.state.FocusTags = fields.FocusTags
	f.state.TagCount = fields.TagCount
	f.state.PerformanceLevel = fields.PerformanceLevel
	return nil
}

type fakeEventRepo struct {
	sessionEvents []store.SessionEventData
}

func (f *fakeEventRepo) AppendDecisionEvent(ctx context.Context, data store.DecisionEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendSessionEvent(ctx context.Context, data store.SessionEventData) error {
	f.sessionEvents = append(f.sessionEvents, data)
	return nil
}

type fixture struct {
	manager  *Manager
	sessions *fakeSessionRepo
	attempts *fakeAttemptRepo
	state    *fakeStateRepo
	events   *fakeEventRepo
}

func newFixture() *fixture {
	f := &fixture{
		sessions: newFakeSessionRepo(),
		attempts: &fakeAttemptRepo{},
		state:    &fakeStateRepo{state: store.LearnerStateData{FocusTags: []string{"arrays"}}},
		events:   &fakeEventRepo{},
	}
	f.manager = NewManager(Deps{
		Sessions: f.sessions,
		Attempts: f.attempts,
		State:    f.state,
		Events:   f.events,
	})
	return f
}

func seedSession(f *fixture, status, typ string, problems int) *store.SessionData {
	s := &store.SessionData{
		SessionID:    "seed-" + status + "-" + typ,
		Status:       status,
		SessionType:  typ,
		Origin:       store.OriginGenerator,
		LastActivity: time.Now(),
		CreatedAt:    time.Now(),
	}
	for i := 0; i < problems; i++ {
		s.Problems = append(s.Problems, store.ProblemSlot{
			ProblemID:  s.SessionID + "-p" + string(rune('a'+i)),
			Topic:      "arrays",
			Difficulty: store.DifficultyEasy,
		})
	}
	f.sessions.rows[s.SessionID] = s
	return s
}

func TestCreate_SchedulesProblemsFromFocus(t *testing.T) {
	f := newFixture()

	s, err := f.manager.Create(context.Background(), TypeStandard, OriginGenerator)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Status != store.StatusDraft {
		t.Errorf("new session status = %q, want draft", s.Status)
	}
	// One focus tag, default two problems per topic.
	if len(s.Problems) != 2 {
		t.Errorf("got %d problems, want 2", len(s.Problems))
	}
	for _, p := range s.Problems {
		if p.Topic != "arrays" {
			t.Errorf("scheduled topic %q, want arrays", p.Topic)
		}
	}
}

func TestCreate_ForceCompletesExistingActive(t *testing.T) {
	f := newFixture()
	old := seedSession(f, store.StatusInProgress, store.TypeStandard, 2)

	if _, err := f.manager.Create(context.Background(), TypeStandard, OriginGenerator); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := f.sessions.rows[old.SessionID].Status; got != store.StatusCompleted {
		t.Errorf("old session status = %q, want completed", got)
	}
	// The feedback loop is reserved for organic completions.
	if f.state.state.SessionsCompleted != 0 {
		t.Error("forced completion must not advance the completed-session count")
	}
}

func TestResume_PrefersInProgressOverDraft(t *testing.T) {
	f := newFixture()
	seedSession(f, store.StatusDraft, store.TypeStandard, 2)
	ip := seedSession(f, store.StatusInProgress, store.TypeStandard, 2)

	s, err := f.manager.Resume(context.Background(), TypeStandard)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if s == nil || s.SessionID != ip.SessionID {
		t.Errorf("resumed %v, want in_progress session %s", s, ip.SessionID)
	}
}

func TestResume_IncompatibleTypeYieldsNil(t *testing.T) {
	f := newFixture()
	seedSession(f, store.StatusInProgress, store.TypeInterviewLike, 2)

	s, err := f.manager.Resume(context.Background(), TypeFullInterview)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if s != nil {
		t.Errorf("resumed %s across incompatible interview types, want nil", s.SessionID)
	}
}

func TestGetOrCreate_ResumesExisting(t *testing.T) {
	f := newFixture()
	existing := seedSession(f, store.StatusInProgress, store.TypeStandard, 2)

	s, created, err := f.manager.GetOrCreate(context.Background(), TypeStandard, OriginGenerator)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if created {
		t.Error("should have resumed, not created")
	}
	if s.SessionID != existing.SessionID {
		t.Errorf("got %s, want existing %s", s.SessionID, existing.SessionID)
	}
}

func TestGetOrCreate_CreatesWhenNone(t *testing.T) {
	f := newFixture()

	s, created, err := f.manager.GetOrCreate(context.Background(), TypeStandard, OriginGenerator)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if !created {
		t.Error("expected a fresh session")
	}
	if _, ok := f.sessions.rows[s.SessionID]; !ok {
		t.Error("created session was not persisted")
	}
}

func TestGetOrCreate_TypesDoNotBlockEachOther(t *testing.T) {
	f := newFixture()
	seedSession(f, store.StatusInProgress, store.TypeStandard, 2)

	s, created, err := f.manager.GetOrCreate(context.Background(), TypeInterviewLike, OriginGenerator)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if !created {
		t.Error("interview request must not resume the standard session")
	}
	if s.SessionType != store.TypeInterviewLike {
		t.Errorf("created type %q, want interview_like", s.SessionType)
	}
}

func TestGetOrCreate_ConcurrentCallersShareOneSession(t *testing.T) {
	f := newFixture()

	const callers = 8
	ids := make(chan string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, _, err := f.manager.GetOrCreate(context.Background(), TypeStandard, OriginGenerator)
			if err != nil {
				t.Errorf("GetOrCreate: %v", err)
				return
			}
			ids <- s.SessionID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		seen[id] = true
	}
	if len(seen) != 1 {
		t.Errorf("concurrent callers got %d distinct sessions, want 1", len(seen))
	}
	if len(f.sessions.rows) != 1 {
		t.Errorf("store holds %d sessions, want 1", len(f.sessions.rows))
	}
}

func TestRecordAttempt_RejectsFinishedSession(t *testing.T) {
	f := newFixture()
	s := seedSession(f, store.StatusCompleted, store.TypeStandard, 2)

	_, err := f.manager.RecordAttempt(context.Background(), s.SessionID, store.AttemptData{
		ProblemID: s.Problems[0].ProblemID, Topics: []string{"arrays"},
	})
	if !errors.Is(err, ErrSessionFinished) {
		t.Errorf("got %v, want ErrSessionFinished", err)
	}
}

func TestRecordAttempt_PartialProgress(t *testing.T) {
	f := newFixture()
	s := seedSession(f, store.StatusInProgress, store.TypeStandard, 3)

	completed, err := f.manager.RecordAttempt(context.Background(), s.SessionID, store.AttemptData{
		ProblemID: s.Problems[0].ProblemID, Topics: []string{"arrays"},
		Success: true, TimeSpentMs: 60_000,
	})
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if completed {
		t.Error("one of three problems must not complete the session")
	}
	if got := f.sessions.rows[s.SessionID].CurrentIndex; got != 1 {
		t.Errorf("cursor = %d, want 1", got)
	}
}

func TestRecordAttempt_AutoCompletes(t *testing.T) {
	f := newFixture()
	s := seedSession(f, store.StatusInProgress, store.TypeStandard, 2)

	for i, p := range s.Problems {
		completed, err := f.manager.RecordAttempt(context.Background(), s.SessionID, store.AttemptData{
			ProblemID: p.ProblemID, Topics: []string{"arrays"},
			Success: i == 0, TimeSpentMs: 60_000, Difficulty: store.DifficultyEasy,
		})
		if err != nil {
			t.Fatalf("RecordAttempt %d: %v", i, err)
		}
		if want := i == len(s.Problems)-1; completed != want {
			t.Errorf("attempt %d: completed = %v, want %v", i, completed, want)
		}
	}

	row := f.sessions.rows[s.SessionID]
	if row.Status != store.StatusCompleted {
		t.Errorf("status = %q, want completed", row.Status)
	}
	if row.Accuracy != 0.5 {
		t.Errorf("accuracy = %f, want 0.5", row.Accuracy)
	}
	if f.state.state.SessionsCompleted != 1 {
		t.Errorf("sessions completed = %d, want 1", f.state.state.SessionsCompleted)
	}
	if f.state.state.LastAccuracy != 0.5 {
		t.Errorf("last accuracy = %f, want 0.5", f.state.state.LastAccuracy)
	}
	if f.state.state.LastProgressDate == nil {
		t.Error("completion must stamp last progress date")
	}
}

func TestRecordAttempt_TrackingSessionNeverAutoCompletes(t *testing.T) {
	f := newFixture()
	s := seedSession(f, store.StatusInProgress, store.TypeStandard, 0)
	s.Origin = store.OriginTracking

	completed, err := f.manager.RecordAttempt(context.Background(), s.SessionID, store.AttemptData{
		ProblemID: "external-1", Topics: []string{"arrays"}, Success: true, TimeSpentMs: 60_000,
	})
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if completed {
		t.Error("sessions without a schedule must not auto-complete")
	}
}

func TestSweep_AppliesExpiry(t *testing.T) {
	f := newFixture()
	s := seedSession(f, store.StatusDraft, store.TypeStandard, 2)
	s.LastActivity = time.Now().Add(-48 * time.Hour)

	res, err := f.manager.Sweep(context.Background(), false)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if res.Expired != 1 {
		t.Errorf("expired = %d, want 1", res.Expired)
	}
	if got := f.sessions.rows[s.SessionID].Status; got != store.StatusExpired {
		t.Errorf("status = %q, want expired", got)
	}
}

func TestSweep_DryRunAppliesNothing(t *testing.T) {
	f := newFixture()
	s := seedSession(f, store.StatusDraft, store.TypeStandard, 2)
	s.LastActivity = time.Now().Add(-48 * time.Hour)

	res, err := f.manager.Sweep(context.Background(), true)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(res.Findings) != 1 || res.Findings[0].Applied {
		t.Errorf("dry run findings = %+v, want one unapplied", res.Findings)
	}
	if got := f.sessions.rows[s.SessionID].Status; got != store.StatusDraft {
		t.Errorf("dry run changed status to %q", got)
	}
}

func TestSweep_AutoCompletesNearlyDone(t *testing.T) {
	f := newFixture()
	s := seedSession(f, store.StatusInProgress, store.TypeStandard, 5)
	s.LastActivity = time.Now().Add(-8 * time.Hour)
	for _, p := range s.Problems[:4] {
		f.attempts.attempts = append(f.attempts.attempts, store.AttemptData{
			SessionID: s.SessionID, ProblemID: p.ProblemID,
			Topics: []string{"arrays"}, Success: true, TimeSpentMs: 60_000,
		})
	}

	res, err := f.manager.Sweep(context.Background(), false)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if res.AutoCompleted != 1 {
		t.Errorf("auto-completed = %d, want 1", res.AutoCompleted)
	}
	if got := f.sessions.rows[s.SessionID].Status; got != store.StatusCompleted {
		t.Errorf("status = %q, want completed", got)
	}
}
