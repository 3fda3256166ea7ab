package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSession is a single practice session record, owned by the
// session lifecycle state machine. Status transitions are one-directional:
// draft -> in_progress -> completed, with expired reachable from draft or
// in_progress via the staleness sweep.
type PracticeSession struct {
	ent.Schema
}

// ProblemSlot is the serialized form of one scheduled problem.
type ProblemSlot struct {
	ProblemID  string `json:"problem_id"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("Opaque UUID handed to callers"),
		field.String("status").
			Default("draft").
			Comment("draft, in_progress, completed or expired"),
		field.String("session_type").
			Default("standard").
			Comment("standard, interview_like or full_interview"),
		field.String("origin").
			Default("generator").
			Comment("generator or tracking"),
		field.JSON("problems", []ProblemSlot{}).
			Optional().
			Comment("Ordered scheduled problem list"),
		field.Int("current_index").
			Default(0),
		field.Time("last_activity").
			Default(time.Now),
		field.Float("accuracy").
			Default(0).
			Comment("Set on completion"),
		field.Int("duration_secs").
			Default(0).
			Comment("Set on completion"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("status", "session_type"),
		index.Fields("last_activity"),
	}
}
