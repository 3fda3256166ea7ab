package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle transitions (create, resume,
// complete, expire) for audit and cross-instance reconciliation.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session the event belongs to"),
		field.String("action").
			NotEmpty().
			Comment("create, resume, complete or expire"),
		field.String("session_type").
			Default("standard"),
		field.Float("accuracy").
			Default(0).
			Comment("Final accuracy (complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (complete only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
