package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserSettings holds the learner's declared preferences. The scheduler
// core reads this row and never writes it; the settings surface owns it.
type UserSettings struct {
	ent.Schema
}

func (UserSettings) Fields() []ent.Field {
	return []ent.Field{
		field.Int("singleton_id").
			Unique().
			Comment("Always 1; enforces a single row"),
		field.JSON("preferred_topics", []string{}).
			Optional().
			Comment("Topics the learner asked to focus on, ordered"),
		field.String("tier_override").
			Optional().
			Comment("Explicit tier the learner wants to study from, empty when unset"),
	}
}
