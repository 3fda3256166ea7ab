package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionEvent records one focus decision for audit and analytics.
type DecisionEvent struct {
	ent.Schema
}

func (DecisionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DecisionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.JSON("tags", []string{}).
			Comment("Chosen focus topics, ordered"),
		field.Int("tag_count"),
		field.String("reasoning").
			Comment("Pipeline reasoning trail"),
		field.String("performance_level"),
	}
}

func (DecisionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("performance_level"),
	}
}
