package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ankur/codedrill/ent"
	"github.com/ankur/codedrill/ent/attempt"
)

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.client.Attempt.Create().
		SetProblemID(data.ProblemID).
		SetTopics(data.Topics).
		SetSuccess(data.Success).
		SetTimeSpentMs(data.TimeSpentMs).
		SetDifficulty(data.Difficulty).
		SetSessionID(data.SessionID).
		SetTimestamp(ts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) All(ctx context.Context) ([]AttemptData, error) {
	rows, err := r.client.Attempt.Query().
		Order(ent.Asc(attempt.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return attemptsFromRows(rows), nil
}

func (r *attemptRepo) BySession(ctx context.Context, sessionID string) ([]AttemptData, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.SessionID(sessionID)).
		Order(ent.Asc(attempt.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session attempts: %w", err)
	}
	return attemptsFromRows(rows), nil
}

func (r *attemptRepo) InRange(ctx context.Context, from, to time.Time) ([]AttemptData, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.TimestampGTE(from), attempt.TimestampLTE(to)).
		Order(ent.Asc(attempt.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts in range: %w", err)
	}
	return attemptsFromRows(rows), nil
}

func (r *attemptRepo) TotalCount(ctx context.Context) (int, error) {
	n, err := r.client.Attempt.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}

func attemptsFromRows(rows []*ent.Attempt) []AttemptData {
	out := make([]AttemptData, 0, len(rows))
	for _, a := range rows {
		out = append(out, AttemptData{
			ID:          a.ID,
			ProblemID:   a.ProblemID,
			Topics:      a.Topics,
			Success:     a.Success,
			TimeSpentMs: a.TimeSpentMs,
			Difficulty:  a.Difficulty,
			SessionID:   a.SessionID,
			Timestamp:   a.Timestamp,
		})
	}
	return out
}
