package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TagMastery is the per-topic mastery record. One row per topic, keyed by
// topic name; the mastery engine overwrites rows on every recompute rather
// than appending history.
type TagMastery struct {
	ent.Schema
}

func (TagMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			Unique().
			NotEmpty(),
		field.Int("total_attempts").
			Default(0).
			NonNegative(),
		field.Int("successful_attempts").
			Default(0).
			NonNegative(),
		field.Float("decay_score").
			Default(1.0).
			Comment("Freshness multiplier, decreases with days since last success"),
		field.Bool("mastered").
			Default(false),
		field.Time("last_success_at").
			Optional().
			Nillable().
			Comment("Most recent successful attempt on this topic"),
	}
}

func (TagMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("mastered"),
	}
}
