package store

import (
	"context"
	"fmt"

	"github.com/ankur/codedrill/ent"
	"github.com/ankur/codedrill/ent/learnerstate"
	entschema "github.com/ankur/codedrill/ent/schema"
)

// singletonID is the fixed row id for singleton state tables.
const singletonID = 1

type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) Load(ctx context.Context) (*LearnerStateData, error) {
	row, err := r.client.LearnerState.Query().
		Where(learnerstate.SingletonID(singletonID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query learner state: %w", err)
		}
		row, err = r.client.LearnerState.Create().
			SetSingletonID(singletonID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("init learner state: %w", err)
		}
	}
	return stateFromRow(row), nil
}

func (r *stateRepo) SaveLifecycle(ctx context.Context, f LifecycleFields) error {
	if _, err := r.Load(ctx); err != nil {
		return err
	}
	_, err := r.client.LearnerState.Update().
		Where(learnerstate.SingletonID(singletonID)).
		SetSessionsCompleted(f.SessionsCompleted).
		SetLastAccuracy(f.LastAccuracy).
		SetLastEfficiency(f.LastEfficiency).
		SetDifficultyTimeStats(statsToSchema(f.DifficultyTimeStats)).
		SetLastProgressDate(f.LastProgressDate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lifecycle state: %w", err)
	}
	return nil
}

func (r *stateRepo) SaveFocus(ctx context.Context, f FocusFields) error {
	if _, err := r.Load(ctx); err != nil {
		return err
	}
	_, err := r.client.LearnerState.Update().
		Where(learnerstate.SingletonID(singletonID)).
		SetFocusTags(f.FocusTags).
		SetTagCount(f.TagCount).
		SetPerformanceLevel(f.PerformanceLevel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save focus state: %w", err)
	}
	return nil
}

func stateFromRow(row *ent.LearnerState) *LearnerStateData {
	return &LearnerStateData{
		SessionsCompleted:   row.SessionsCompleted,
		LastAccuracy:        row.LastAccuracy,
		LastEfficiency:      row.LastEfficiency,
		FocusTags:           row.FocusTags,
		TagCount:            row.TagCount,
		PerformanceLevel:    row.PerformanceLevel,
		DifficultyTimeStats: statsFromSchema(row.DifficultyTimeStats),
		LastProgressDate:    row.LastProgressDate,
	}
}

func statsToSchema(stats map[string]DifficultyTimeStat) map[string]entschema.DifficultyTimeStat {
	out := make(map[string]entschema.DifficultyTimeStat, len(stats))
	for k, v := range stats {
		out[k] = entschema.DifficultyTimeStat{AvgMs: v.AvgMs, Count: v.Count}
	}
	return out
}

func statsFromSchema(stats map[string]entschema.DifficultyTimeStat) map[string]DifficultyTimeStat {
	out := make(map[string]DifficultyTimeStat, len(stats))
	for k, v := range stats {
		out[k] = DifficultyTimeStat{AvgMs: v.AvgMs, Count: v.Count}
	}
	return out
}
