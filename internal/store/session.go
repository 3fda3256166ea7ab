package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ankur/codedrill/ent"
	"github.com/ankur/codedrill/ent/practicesession"
	entschema "github.com/ankur/codedrill/ent/schema"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, data SessionData) error {
	if err := createSession(ctx, r.client, data); err != nil {
		return err
	}
	return nil
}

func createSession(ctx context.Context, client *ent.Client, data SessionData) error {
	now := time.Now()
	if data.LastActivity.IsZero() {
		data.LastActivity = now
	}
	if data.CreatedAt.IsZero() {
		data.CreatedAt = now
	}
	_, err := client.PracticeSession.Create().
		SetSessionID(data.SessionID).
		SetStatus(data.Status).
		SetSessionType(data.SessionType).
		SetOrigin(data.Origin).
		SetProblems(slotsToSchema(data.Problems)).
		SetCurrentIndex(data.CurrentIndex).
		SetLastActivity(data.LastActivity).
		SetAccuracy(data.Accuracy).
		SetDurationSecs(data.DurationSecs).
		SetCreatedAt(data.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) BySessionID(ctx context.Context, sessionID string) (*SessionData, error) {
	row, err := r.client.PracticeSession.Query().
		Where(practicesession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session %s: %w", sessionID, err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) LatestByStatus(ctx context.Context, status string, types []string) (*SessionData, error) {
	row, err := r.client.PracticeSession.Query().
		Where(
			practicesession.Status(status),
			practicesession.SessionTypeIn(types...),
		).
		Order(ent.Desc(practicesession.FieldLastActivity)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest %s session: %w", status, err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) Active(ctx context.Context, types []string) ([]SessionData, error) {
	rows, err := r.client.PracticeSession.Query().
		Where(
			practicesession.StatusIn(StatusDraft, StatusInProgress),
			practicesession.SessionTypeIn(types...),
		).
		Order(ent.Desc(practicesession.FieldLastActivity)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active sessions: %w", err)
	}
	return sessionsFromRows(rows), nil
}

func (r *sessionRepo) NonTerminal(ctx context.Context) ([]SessionData, error) {
	rows, err := r.client.PracticeSession.Query().
		Where(practicesession.StatusIn(StatusDraft, StatusInProgress)).
		Order(ent.Desc(practicesession.FieldLastActivity)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query non-terminal sessions: %w", err)
	}
	return sessionsFromRows(rows), nil
}

func (r *sessionRepo) UpdateStatus(ctx context.Context, sessionID, status string, accuracy float64, durationSecs int) error {
	n, err := r.client.PracticeSession.Update().
		Where(practicesession.SessionID(sessionID)).
		SetStatus(status).
		SetAccuracy(accuracy).
		SetDurationSecs(durationSecs).
		SetLastActivity(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update session status: session %s not found", sessionID)
	}
	return nil
}

func (r *sessionRepo) Touch(ctx context.Context, sessionID string, currentIndex int, at time.Time) error {
	n, err := r.client.PracticeSession.Update().
		Where(practicesession.SessionID(sessionID)).
		SetCurrentIndex(currentIndex).
		SetLastActivity(at).
		SetStatus(StatusInProgress).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("touch session: session %s not found", sessionID)
	}
	return nil
}

// GetOrCreateActive runs the check-then-create as a single transaction so
// two near-simultaneous callers cannot both create an active session of
// the same type. SQLite serializes writers, so the second transaction
// observes the first one's row.
func (r *sessionRepo) GetOrCreateActive(ctx context.Context, compatTypes []string, fresh SessionData) (*SessionData, bool, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin get-or-create: %w", err)
	}

	row, err := tx.PracticeSession.Query().
		Where(
			practicesession.StatusIn(StatusInProgress, StatusDraft),
			practicesession.SessionTypeIn(compatTypes...),
		).
		Order(ent.Desc(practicesession.FieldLastActivity)).
		First(ctx)
	switch {
	case err == nil:
		existing := sessionFromRow(row)
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("commit get-or-create: %w", err)
		}
		return existing, false, nil

	case !ent.IsNotFound(err):
		_ = tx.Rollback()
		return nil, false, fmt.Errorf("query active session: %w", err)
	}

	if err := createSession(ctx, tx.Client(), fresh); err != nil {
		_ = tx.Rollback()
		return nil, false, err
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit get-or-create: %w", err)
	}
	created := fresh
	return &created, true, nil
}

func sessionFromRow(row *ent.PracticeSession) *SessionData {
	return &SessionData{
		SessionID:    row.SessionID,
		Status:       row.Status,
		SessionType:  row.SessionType,
		Origin:       row.Origin,
		Problems:     slotsFromSchema(row.Problems),
		CurrentIndex: row.CurrentIndex,
		LastActivity: row.LastActivity,
		Accuracy:     row.Accuracy,
		DurationSecs: row.DurationSecs,
		CreatedAt:    row.CreatedAt,
	}
}

func sessionsFromRows(rows []*ent.PracticeSession) []SessionData {
	out := make([]SessionData, 0, len(rows))
	for _, row := range rows {
		out = append(out, *sessionFromRow(row))
	}
	return out
}

func slotsToSchema(slots []ProblemSlot) []entschema.ProblemSlot {
	out := make([]entschema.ProblemSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, entschema.ProblemSlot{
			ProblemID:  s.ProblemID,
			Topic:      s.Topic,
			Difficulty: s.Difficulty,
		})
	}
	return out
}

func slotsFromSchema(slots []entschema.ProblemSlot) []ProblemSlot {
	out := make([]ProblemSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, ProblemSlot{
			ProblemID:  s.ProblemID,
			Topic:      s.Topic,
			Difficulty: s.Difficulty,
		})
	}
	return out
}
