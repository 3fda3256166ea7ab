package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/ankur/codedrill/internal/focus"
	"github.com/ankur/codedrill/internal/mastery"
	"github.com/ankur/codedrill/internal/notify"
	"github.com/ankur/codedrill/internal/store"
)

// ErrSessionFinished is returned when an attempt targets a completed or
// expired session.
var ErrSessionFinished = fmt.Errorf("session already completed or expired")

// Deps wires a Manager. Notifier may be nil (no cross-instance channel);
// Events may be nil (no audit log).
type Deps struct {
	Sessions store.SessionRepo
	Attempts store.AttemptRepo
	State    store.StateRepo
	Events   store.EventRepo

	Mastery *mastery.Engine
	Focus   *focus.Engine

	Notifier notify.Publisher

	ProblemsPerTopic int
	Staleness        StalenessConfig
	Log              *slog.Logger
}

// Manager owns the session lifecycle: creation, resumption, attempt
// recording, completion and the staleness sweep. It is the single
// authoritative writer of the lifecycle-owned learner state fields,
// including last_progress_date.
type Manager struct {
	sessions store.SessionRepo
	attempts store.AttemptRepo
	state    store.StateRepo
	events   store.EventRepo

	masteryEng *mastery.Engine
	focusEng   *focus.Engine
	notifier   notify.Publisher

	sf               singleflight.Group
	retryCfg         store.RetryConfig
	staleCfg         StalenessConfig
	problemsPerTopic int
	log              *slog.Logger
	now              func() time.Time
}

// NewManager creates a session lifecycle manager.
func NewManager(d Deps) *Manager {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	if d.Notifier == nil {
		d.Notifier = notify.NopPublisher{}
	}
	if d.ProblemsPerTopic <= 0 {
		d.ProblemsPerTopic = 2
	}
	if d.Staleness == (StalenessConfig{}) {
		d.Staleness = DefaultStalenessConfig()
	}
	return &Manager{
		sessions:         d.Sessions,
		attempts:         d.Attempts,
		state:            d.State,
		events:           d.Events,
		masteryEng:       d.Mastery,
		focusEng:         d.Focus,
		notifier:         d.Notifier,
		retryCfg:         store.DefaultRetryConfig(),
		staleCfg:         d.Staleness,
		problemsPerTopic: d.ProblemsPerTopic,
		log:              d.Log,
		now:              time.Now,
	}
}

// Create builds a new session from the current focus decision. Any
// existing draft or in_progress session of the same type is forcibly
// completed first: the single-active-session-per-type invariant is
// self-healing, never a user-facing error.
func (m *Manager) Create(ctx context.Context, typ Type, origin Origin) (*store.SessionData, error) {
	if err := m.forceCompleteActive(ctx, typ); err != nil {
		return nil, err
	}

	fresh, err := m.buildSession(ctx, typ, origin)
	if err != nil {
		return nil, err
	}
	if err := m.sessions.Create(ctx, *fresh); err != nil {
		return nil, err
	}

	m.audit(ctx, store.SessionEventData{
		SessionID: fresh.SessionID, Action: "create", SessionType: string(typ),
	})
	m.notifier.Publish(ctx, notify.Event{
		Action: notify.ActionSessionCreate, SessionID: fresh.SessionID, SessionType: string(typ),
	})
	return fresh, nil
}

// Resume returns the most recent in_progress session of a compatible
// type, falling back to draft. An incompatible match yields nil, not the
// wrong session: fail fast over silent misuse.
func (m *Manager) Resume(ctx context.Context, typ Type) (*store.SessionData, error) {
	compat := CompatibleTypes(typ)

	s, err := m.sessions.LatestByStatus(ctx, store.StatusInProgress, compat)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s, err = m.sessions.LatestByStatus(ctx, store.StatusDraft, compat)
		if err != nil {
			return nil, err
		}
	}
	if s == nil {
		return nil, nil
	}

	m.audit(ctx, store.SessionEventData{
		SessionID: s.SessionID, Action: "resume", SessionType: s.SessionType,
	})
	return s, nil
}

// GetOrCreate resumes, and creates only when resume yields nothing.
// Concurrent callers for the same type collapse onto one flight
// in-process, and the check-then-create runs as a single store
// transaction, so two near-simultaneous calls can never both create.
// Exclusivity is scoped per session type: different types never block
// each other.
func (m *Manager) GetOrCreate(ctx context.Context, typ Type, origin Origin) (*store.SessionData, bool, error) {
	type result struct {
		session *store.SessionData
		created bool
	}

	v, err, _ := m.sf.Do(string(typ), func() (any, error) {
		fresh, err := m.buildSession(ctx, typ, origin)
		if err != nil {
			return nil, err
		}
		s, created, err := m.sessions.GetOrCreateActive(ctx, CompatibleTypes(typ), *fresh)
		if err != nil {
			return nil, err
		}
		if created {
			m.audit(ctx, store.SessionEventData{
				SessionID: s.SessionID, Action: "create", SessionType: string(typ),
			})
			m.notifier.Publish(ctx, notify.Event{
				Action: notify.ActionSessionCreate, SessionID: s.SessionID, SessionType: string(typ),
			})
		}
		return result{session: s, created: created}, nil
	})
	if err != nil {
		return nil, false, err
	}
	r := v.(result)
	return r.session, r.created, nil
}

// RecordAttempt appends an attempt to a session (critical path: errors
// propagate) and auto-completes the session once every scheduled problem
// has at least one attempt. Returns whether the attempt completed the
// session.
func (m *Manager) RecordAttempt(ctx context.Context, sessionID string, att store.AttemptData) (bool, error) {
	s, err := m.sessions.BySessionID(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if s == nil {
		return false, fmt.Errorf("record attempt: session %s not found", sessionID)
	}
	if s.Status == store.StatusCompleted || s.Status == store.StatusExpired {
		return false, fmt.Errorf("record attempt on %s: %w", sessionID, ErrSessionFinished)
	}

	att.SessionID = sessionID
	if att.Timestamp.IsZero() {
		att.Timestamp = m.now()
	}
	if err := m.attempts.Append(ctx, att); err != nil {
		return false, err
	}

	all, err := m.attempts.BySession(ctx, sessionID)
	if err != nil {
		return false, err
	}

	idx := len(all)
	if idx > len(s.Problems) {
		idx = len(s.Problems)
	}
	if err := m.sessions.Touch(ctx, sessionID, idx, m.now()); err != nil {
		return false, err
	}

	if !allProblemsAttempted(s.Problems, all) {
		return false, nil
	}
	if err := m.complete(ctx, s, all); err != nil {
		return true, err
	}
	return true, nil
}

// complete transitions the session to completed and runs the feedback
// loop: lifecycle state first (so the decision sees the fresh
// performance), then mastery recompute, then the focus re-decision.
// Lifecycle and focus own disjoint learner-state fields, so the two
// saves cannot race each other's updates.
func (m *Manager) complete(ctx context.Context, s *store.SessionData, all []store.AttemptData) error {
	accuracy, durationSecs := summarize(all)

	if err := m.sessions.UpdateStatus(ctx, s.SessionID, store.StatusCompleted, accuracy, durationSecs); err != nil {
		return err
	}

	state, err := m.state.Load(ctx)
	if err != nil {
		return err
	}
	stats := UpdateDifficultyStats(state.DifficultyTimeStats, all)
	if err := m.state.SaveLifecycle(ctx, store.LifecycleFields{
		SessionsCompleted:   state.SessionsCompleted + 1,
		LastAccuracy:        accuracy,
		LastEfficiency:      EfficiencyScore(all, state.DifficultyTimeStats),
		DifficultyTimeStats: stats,
		LastProgressDate:    m.now(),
	}); err != nil {
		return err
	}

	if m.masteryEng != nil {
		if _, err := m.masteryEng.Recompute(ctx); err != nil {
			m.log.Warn("mastery recompute after completion failed", "error", err)
		}
	}
	if m.focusEng != nil {
		if _, err := m.focusEng.DecideAndSave(ctx); err != nil {
			m.log.Warn("focus re-decision after completion failed", "error", err)
		}
	}

	m.audit(ctx, store.SessionEventData{
		SessionID: s.SessionID, Action: "complete", SessionType: s.SessionType,
		Accuracy: accuracy, DurationSecs: durationSecs,
	})
	m.notifier.Publish(ctx, notify.Event{
		Action: notify.ActionSessionComplete, SessionID: s.SessionID, SessionType: s.SessionType,
	})
	return nil
}

// Expire transitions a session to the expired terminal state.
func (m *Manager) Expire(ctx context.Context, s *store.SessionData) error {
	if err := m.sessions.UpdateStatus(ctx, s.SessionID, store.StatusExpired, s.Accuracy, s.DurationSecs); err != nil {
		return err
	}
	m.audit(ctx, store.SessionEventData{
		SessionID: s.SessionID, Action: "expire", SessionType: s.SessionType,
	})
	m.notifier.Publish(ctx, notify.Event{
		Action: notify.ActionSessionExpire, SessionID: s.SessionID, SessionType: s.SessionType,
	})
	return nil
}

// forceCompleteActive completes every lingering draft/in_progress session
// of the given type. Forced completions close the row with whatever
// attempts exist; they do not run the feedback loop, which is reserved
// for organic completions.
func (m *Manager) forceCompleteActive(ctx context.Context, typ Type) error {
	active, err := m.sessions.Active(ctx, CompatibleTypes(typ))
	if err != nil {
		return err
	}
	for _, s := range active {
		all, err := m.attempts.BySession(ctx, s.SessionID)
		if err != nil {
			return err
		}
		accuracy, durationSecs := summarize(all)
		if err := m.sessions.UpdateStatus(ctx, s.SessionID, store.StatusCompleted, accuracy, durationSecs); err != nil {
			return err
		}
		m.audit(ctx, store.SessionEventData{
			SessionID: s.SessionID, Action: "complete", SessionType: s.SessionType,
			Accuracy: accuracy, DurationSecs: durationSecs,
		})
	}
	return nil
}

// buildSession assembles a fresh draft session from the current focus
// decision. When no focus has been decided yet (first run), the focus
// engine is consulted to seed one.
func (m *Manager) buildSession(ctx context.Context, typ Type, origin Origin) (*store.SessionData, error) {
	state, err := m.state.Load(ctx)
	if err != nil {
		return nil, err
	}

	focusTags := state.FocusTags
	level := state.PerformanceLevel
	if len(focusTags) == 0 && m.focusEng != nil {
		d, err := m.focusEng.DecideAndSave(ctx)
		if err != nil {
			m.log.Warn("seeding focus decision failed, using failsafe tags", "error", err)
		}
		focusTags = d.ActiveTags
		level = d.PerformanceLevel
	}
	if len(focusTags) == 0 {
		focusTags = focus.Failsafe().ActiveTags
	}

	var problems []store.ProblemSlot
	if origin == OriginGenerator {
		for _, topic := range focusTags {
			for i := 0; i < m.problemsPerTopic; i++ {
				problems = append(problems, store.ProblemSlot{
					ProblemID:  uuid.NewString(),
					Topic:      topic,
					Difficulty: difficultyFor(level, typ),
				})
			}
		}
	}

	now := m.now()
	return &store.SessionData{
		SessionID:    uuid.NewString(),
		Status:       store.StatusDraft,
		SessionType:  string(typ),
		Origin:       string(origin),
		Problems:     problems,
		LastActivity: now,
		CreatedAt:    now,
	}, nil
}

// audit appends a session audit event with bounded retry. Non-critical.
func (m *Manager) audit(ctx context.Context, data store.SessionEventData) {
	if m.events == nil {
		return
	}
	err := store.Retry(ctx, m.retryCfg, func(ctx context.Context) error {
		return m.events.AppendSessionEvent(ctx, data)
	})
	if err != nil {
		m.log.Warn("session audit write abandoned", "error", err)
	}
}

// summarize computes accuracy and duration from the attempt list.
func summarize(all []store.AttemptData) (float64, int) {
	if len(all) == 0 {
		return 0, 0
	}
	successes := 0
	totalMs := 0
	for _, a := range all {
		if a.Success {
			successes++
		}
		totalMs += a.TimeSpentMs
	}
	return float64(successes) / float64(len(all)), totalMs / 1000
}

// allProblemsAttempted reports whether every scheduled problem has at
// least one attempt. Sessions without a schedule (tracking origin) never
// auto-complete.
func allProblemsAttempted(problems []store.ProblemSlot, all []store.AttemptData) bool {
	if len(problems) == 0 {
		return false
	}
	attempted := make(map[string]bool, len(all))
	for _, a := range all {
		attempted[a.ProblemID] = true
	}
	for _, p := range problems {
		if !attempted[p.ProblemID] {
			return false
		}
	}
	return true
}

// difficultyFor picks the scheduled difficulty from the learner's level
// and the session type. Interview sessions skew harder.
func difficultyFor(level string, typ Type) string {
	if typ == TypeFullInterview {
		return store.DifficultyHard
	}
	switch level {
	case focus.LevelStruggling:
		return store.DifficultyEasy
	case focus.LevelProficient:
		return store.DifficultyMedium
	case focus.LevelAdvanced:
		if typ.IsInterview() {
			return store.DifficultyHard
		}
		return store.DifficultyMedium
	default:
		if typ.IsInterview() {
			return store.DifficultyMedium
		}
		return store.DifficultyEasy
	}
}
