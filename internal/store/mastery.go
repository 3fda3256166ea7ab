package store

import (
	"context"
	"fmt"

	"github.com/ankur/codedrill/ent"
	"github.com/ankur/codedrill/ent/tagmastery"
)

type masteryRepo struct {
	client *ent.Client
}

// Upsert overwrites the record for data.Topic. Recomputes replace rows
// wholesale, so a read-then-write pair is sufficient here; the engine is
// the only writer.
func (r *masteryRepo) Upsert(ctx context.Context, data MasteryData) error {
	existing, err := r.client.TagMastery.Query().
		Where(tagmastery.Topic(data.Topic)).
		Only(ctx)
	switch {
	case err == nil:
		upd := existing.Update().
			SetTotalAttempts(data.TotalAttempts).
			SetSuccessfulAttempts(data.SuccessfulAttempts).
			SetDecayScore(data.DecayScore).
			SetMastered(data.Mastered)
		if data.LastSuccessAt != nil {
			upd = upd.SetLastSuccessAt(*data.LastSuccessAt)
		} else {
			upd = upd.ClearLastSuccessAt()
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update mastery for %s: %w", data.Topic, err)
		}
		return nil

	case ent.IsNotFound(err):
		create := r.client.TagMastery.Create().
			SetTopic(data.Topic).
			SetTotalAttempts(data.TotalAttempts).
			SetSuccessfulAttempts(data.SuccessfulAttempts).
			SetDecayScore(data.DecayScore).
			SetMastered(data.Mastered)
		if data.LastSuccessAt != nil {
			create = create.SetLastSuccessAt(*data.LastSuccessAt)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create mastery for %s: %w", data.Topic, err)
		}
		return nil

	default:
		return fmt.Errorf("query mastery for %s: %w", data.Topic, err)
	}
}

func (r *masteryRepo) All(ctx context.Context) ([]MasteryData, error) {
	rows, err := r.client.TagMastery.Query().
		Order(ent.Asc(tagmastery.FieldTopic)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery records: %w", err)
	}
	out := make([]MasteryData, 0, len(rows))
	for _, row := range rows {
		out = append(out, masteryFromRow(row))
	}
	return out, nil
}

func (r *masteryRepo) ByTopic(ctx context.Context, topic string) (*MasteryData, error) {
	row, err := r.client.TagMastery.Query().
		Where(tagmastery.Topic(topic)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query mastery for %s: %w", topic, err)
	}
	m := masteryFromRow(row)
	return &m, nil
}

func masteryFromRow(row *ent.TagMastery) MasteryData {
	return MasteryData{
		Topic:              row.Topic,
		TotalAttempts:      row.TotalAttempts,
		SuccessfulAttempts: row.SuccessfulAttempts,
		DecayScore:         row.DecayScore,
		Mastered:           row.Mastered,
		LastSuccessAt:      row.LastSuccessAt,
	}
}
