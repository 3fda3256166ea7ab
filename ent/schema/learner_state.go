package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LearnerState is the process-wide singleton state row (id = 1). The
// lifecycle machine owns the session counters, performance and progress
// fields; the focus engine owns the focus fields. Each side persists only
// the fields it owns so a completion cycle cannot lose the other's update.
type LearnerState struct {
	ent.Schema
}

// DifficultyTimeStat is a rolling average of solve time for one
// difficulty tier.
type DifficultyTimeStat struct {
	AvgMs int `json:"avg_ms"`
	Count int `json:"count"`
}

func (LearnerState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("singleton_id").
			Unique().
			Comment("Always 1; enforces a single row"),
		field.Int("sessions_completed").
			Default(0),
		field.Float("last_accuracy").
			Default(0),
		field.Float("last_efficiency").
			Default(0),
		field.JSON("focus_tags", []string{}).
			Optional().
			Comment("Current focus decision, ordered"),
		field.Int("tag_count").
			Default(1),
		field.String("performance_level").
			Default("building"),
		field.JSON("difficulty_time_stats", map[string]DifficultyTimeStat{}).
			Optional(),
		field.Time("last_progress_date").
			Optional().
			Nillable().
			Comment("Written only by the lifecycle machine at completion"),
	}
}
