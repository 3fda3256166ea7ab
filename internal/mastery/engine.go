package mastery

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/ankur/codedrill/internal/store"
	"github.com/ankur/codedrill/internal/topics"
)

// Record is one recomputed per-topic mastery record, with the ladder rule
// that granted mastery (empty when not mastered).
type Record struct {
	store.MasteryData
	RuleLabel string
}

// Engine recomputes per-topic mastery from the full attempt log.
type Engine struct {
	attempts store.AttemptRepo
	mastery  store.MasteryRepo
	ladder   Ladder
	log      *slog.Logger
	now      func() time.Time
}

// NewEngine creates a mastery engine using the default ladder.
func NewEngine(attempts store.AttemptRepo, masteryRepo store.MasteryRepo, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		attempts: attempts,
		mastery:  masteryRepo,
		ladder:   DefaultLadder(),
		log:      log,
		now:      time.Now,
	}
}

// topicAgg accumulates attempt counts for one topic.
type topicAgg struct {
	total       int
	successful  int
	lastSuccess *time.Time
}

// Recompute rebuilds every mastery record from the attempt log and
// persists them with overwrite semantics. Catalog topics with no attempts
// get a zero-attempt record so downstream consumers treat "unattempted"
// uniformly. Malformed attempts are skipped per-record; a persistence
// failure on one topic logs and does not abort the remaining topics. The
// returned slice holds whatever was successfully persisted, ordered by
// topic.
func (e *Engine) Recompute(ctx context.Context) ([]Record, error) {
	all, err := e.attempts.All(ctx)
	if err != nil {
		return nil, err
	}

	aggs := make(map[string]*topicAgg)
	for _, t := range topics.AllIDs() {
		aggs[t] = &topicAgg{}
	}

	for _, a := range all {
		if len(a.Topics) == 0 {
			e.log.Warn("skipping attempt with no topics", "attempt_id", a.ID)
			continue
		}
		if a.TimeSpentMs < 0 {
			e.log.Warn("skipping attempt with negative time", "attempt_id", a.ID)
			continue
		}
		for _, topic := range a.Topics {
			if topic == "" {
				continue
			}
			agg := aggs[topic]
			if agg == nil {
				// Attempts may reference topics outside the catalog
				// (imported history); they still get a record.
				agg = &topicAgg{}
				aggs[topic] = agg
			}
			agg.total++
			if a.Success {
				agg.successful++
				ts := a.Timestamp
				if agg.lastSuccess == nil || ts.After(*agg.lastSuccess) {
					agg.lastSuccess = &ts
				}
			}
		}
	}

	now := e.now()
	names := make([]string, 0, len(aggs))
	for t := range aggs {
		names = append(names, t)
	}
	sort.Strings(names)

	var persisted []Record
	for _, topic := range names {
		agg := aggs[topic]
		mastered, label := e.ladder.Evaluate(agg.total, agg.successful)
		rec := Record{
			MasteryData: store.MasteryData{
				Topic:              topic,
				TotalAttempts:      agg.total,
				SuccessfulAttempts: agg.successful,
				DecayScore:         DecayScore(agg.lastSuccess, now),
				Mastered:           mastered,
				LastSuccessAt:      agg.lastSuccess,
			},
			RuleLabel: label,
		}

		if err := e.mastery.Upsert(ctx, rec.MasteryData); err != nil {
			e.log.Warn("persist mastery record failed, continuing",
				"topic", topic, "error", err)
			continue
		}
		persisted = append(persisted, rec)
	}

	return persisted, nil
}

// Snapshot returns the persisted mastery records keyed by topic.
func (e *Engine) Snapshot(ctx context.Context) (map[string]store.MasteryData, error) {
	records, err := e.mastery.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]store.MasteryData, len(records))
	for _, r := range records {
		out[r.Topic] = r
	}
	return out, nil
}
