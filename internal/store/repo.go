package store

import (
	"context"
	"time"
)

// AttemptData is one immutable problem submission.
type AttemptData struct {
	ID          int
	ProblemID   string
	Topics      []string
	Success     bool
	TimeSpentMs int
	Difficulty  string
	SessionID   string
	Timestamp   time.Time
}

// ProblemSlot is one scheduled problem inside a session.
type ProblemSlot struct {
	ProblemID  string
	Topic      string
	Difficulty string
}

// SessionData is a practice session row.
type SessionData struct {
	SessionID    string
	Status       string
	SessionType  string
	Origin       string
	Problems     []ProblemSlot
	CurrentIndex int
	LastActivity time.Time
	Accuracy     float64
	DurationSecs int
	CreatedAt    time.Time
}

// MasteryData is the per-topic mastery record.
type MasteryData struct {
	Topic              string
	TotalAttempts      int
	SuccessfulAttempts int
	DecayScore         float64
	Mastered           bool
	LastSuccessAt      *time.Time
}

// DifficultyTimeStat is a rolling solve-time average for one difficulty.
type DifficultyTimeStat struct {
	AvgMs int
	Count int
}

// LearnerStateData is the singleton learner state row.
type LearnerStateData struct {
	SessionsCompleted   int
	LastAccuracy        float64
	LastEfficiency      float64
	FocusTags           []string
	TagCount            int
	PerformanceLevel    string
	DifficultyTimeStats map[string]DifficultyTimeStat
	LastProgressDate    *time.Time
}

// LifecycleFields are the LearnerState fields owned by the session
// lifecycle machine.
type LifecycleFields struct {
	SessionsCompleted   int
	LastAccuracy        float64
	LastEfficiency      float64
	DifficultyTimeStats map[string]DifficultyTimeStat
	LastProgressDate    time.Time
}

// FocusFields are the LearnerState fields owned by the focus engine.
type FocusFields struct {
	FocusTags        []string
	TagCount         int
	PerformanceLevel string
}

// SettingsData is the learner's declared preferences, read-only here.
type SettingsData struct {
	PreferredTopics []string
	TierOverride    string
}

// DecisionEventData is the audit payload for one focus decision.
type DecisionEventData struct {
	Tags             []string
	TagCount         int
	Reasoning        string
	PerformanceLevel string
}

// SessionEventData is the audit payload for one lifecycle transition.
type SessionEventData struct {
	SessionID    string
	Action       string
	SessionType  string
	Accuracy     float64
	DurationSecs int
}

// AttemptRepo provides access to the attempt log.
type AttemptRepo interface {
	// Append records a new attempt. Critical path: errors propagate.
	Append(ctx context.Context, data AttemptData) error

	// All returns every attempt, oldest first.
	All(ctx context.Context) ([]AttemptData, error)

	// BySession returns the attempts of one session, oldest first.
	BySession(ctx context.Context, sessionID string) ([]AttemptData, error)

	// InRange returns attempts with from <= timestamp <= to, oldest first.
	InRange(ctx context.Context, from, to time.Time) ([]AttemptData, error)

	// TotalCount returns the number of recorded attempts.
	TotalCount(ctx context.Context) (int, error)
}

// SessionRepo provides access to practice session rows.
type SessionRepo interface {
	// Create persists a new session row.
	Create(ctx context.Context, data SessionData) error

	// BySessionID returns the session with the given UUID, or nil.
	BySessionID(ctx context.Context, sessionID string) (*SessionData, error)

	// LatestByStatus returns the most recently active session with the
	// given status among the given types, or nil.
	LatestByStatus(ctx context.Context, status string, types []string) (*SessionData, error)

	// Active returns every draft or in_progress session of the given
	// types, most recent first.
	Active(ctx context.Context, types []string) ([]SessionData, error)

	// NonTerminal returns every session that is neither completed nor
	// expired, for the staleness sweep.
	NonTerminal(ctx context.Context) ([]SessionData, error)

	// UpdateStatus sets status, accuracy and duration of one session.
	UpdateStatus(ctx context.Context, sessionID, status string, accuracy float64, durationSecs int) error

	// Touch advances the problem cursor and refreshes last_activity.
	Touch(ctx context.Context, sessionID string, currentIndex int, at time.Time) error

	// GetOrCreateActive atomically returns an existing draft/in_progress
	// session of a compatible type or creates fresh inside one store
	// transaction. The bool reports whether a new row was created.
	GetOrCreateActive(ctx context.Context, compatTypes []string, fresh SessionData) (*SessionData, bool, error)
}

// MasteryRepo provides access to per-topic mastery records.
type MasteryRepo interface {
	// Upsert overwrites the record for data.Topic.
	Upsert(ctx context.Context, data MasteryData) error

	// All returns every mastery record, ordered by topic.
	All(ctx context.Context) ([]MasteryData, error)

	// ByTopic returns the record for one topic, or nil.
	ByTopic(ctx context.Context, topic string) (*MasteryData, error)
}

// StateRepo provides access to the singleton learner state.
type StateRepo interface {
	// Load returns the learner state, creating the default row on first use.
	Load(ctx context.Context) (*LearnerStateData, error)

	// SaveLifecycle persists only the lifecycle-owned fields.
	SaveLifecycle(ctx context.Context, f LifecycleFields) error

	// SaveFocus persists only the focus-owned fields.
	SaveFocus(ctx context.Context, f FocusFields) error
}

// SettingsRepo reads the learner's declared preferences.
type SettingsRepo interface {
	// Load returns the preferences, or empty defaults when unset.
	Load(ctx context.Context) (*SettingsData, error)
}

// EventRepo provides append access to audit events. Both appends are
// non-critical: callers wrap them in Retry and log failures.
type EventRepo interface {
	AppendDecisionEvent(ctx context.Context, data DecisionEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
}
