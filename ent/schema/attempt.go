package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records a single problem submission. Attempts are immutable
// once written; mastery is always recomputed from the full attempt log.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("problem_id").
			NotEmpty().
			Comment("Identifier of the practiced problem"),
		field.JSON("topics", []string{}).
			Comment("Topic tags the problem exercises"),
		field.Bool("success").
			Comment("Whether the submission was accepted"),
		field.Int("time_spent_ms").
			Default(0).
			Comment("Wall-clock solve time in milliseconds"),
		field.String("difficulty").
			Default("medium").
			Comment("easy, medium or hard"),
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning practice session"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("timestamp"),
	}
}
