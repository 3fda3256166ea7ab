// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "problem_id", Type: field.TypeString},
		{Name: "topics", Type: field.TypeJSON},
		{Name: "success", Type: field.TypeBool},
		{Name: "time_spent_ms", Type: field.TypeInt, Default: 0},
		{Name: "difficulty", Type: field.TypeString, Default: "medium"},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[6]},
			},
			{
				Name:    "attempt_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[7]},
			},
		},
	}
	// DecisionEventsColumns holds the columns for the "decision_events" table.
	DecisionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "tags", Type: field.TypeJSON},
		{Name: "tag_count", Type: field.TypeInt},
		{Name: "reasoning", Type: field.TypeString},
		{Name: "performance_level", Type: field.TypeString},
	}
	// DecisionEventsTable holds the schema information for the "decision_events" table.
	DecisionEventsTable = &schema.Table{
		Name:       "decision_events",
		Columns:    DecisionEventsColumns,
		PrimaryKey: []*schema.Column{DecisionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[1]},
			},
			{
				Name:    "decisionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[2]},
			},
			{
				Name:    "decisionevent_performance_level",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[6]},
			},
		},
	}
	// LearnerStatesColumns holds the columns for the "learner_states" table.
	LearnerStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "singleton_id", Type: field.TypeInt, Unique: true},
		{Name: "sessions_completed", Type: field.TypeInt, Default: 0},
		{Name: "last_accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "last_efficiency", Type: field.TypeFloat64, Default: 0},
		{Name: "focus_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "tag_count", Type: field.TypeInt, Default: 1},
		{Name: "performance_level", Type: field.TypeString, Default: "building"},
		{Name: "difficulty_time_stats", Type: field.TypeJSON, Nullable: true},
		{Name: "last_progress_date", Type: field.TypeTime, Nullable: true},
	}
	// LearnerStatesTable holds the schema information for the "learner_states" table.
	LearnerStatesTable = &schema.Table{
		Name:       "learner_states",
		Columns:    LearnerStatesColumns,
		PrimaryKey: []*schema.Column{LearnerStatesColumns[0]},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeString, Default: "draft"},
		{Name: "session_type", Type: field.TypeString, Default: "standard"},
		{Name: "origin", Type: field.TypeString, Default: "generator"},
		{Name: "problems", Type: field.TypeJSON, Nullable: true},
		{Name: "current_index", Type: field.TypeInt, Default: 0},
		{Name: "last_activity", Type: field.TypeTime},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_session_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1]},
			},
			{
				Name:    "practicesession_status_session_type",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[2], PracticeSessionsColumns[3]},
			},
			{
				Name:    "practicesession_last_activity",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[7]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "session_type", Type: field.TypeString, Default: "standard"},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// TagMasteriesColumns holds the columns for the "tag_masteries" table.
	TagMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString, Unique: true},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "successful_attempts", Type: field.TypeInt, Default: 0},
		{Name: "decay_score", Type: field.TypeFloat64, Default: 1},
		{Name: "mastered", Type: field.TypeBool, Default: false},
		{Name: "last_success_at", Type: field.TypeTime, Nullable: true},
	}
	// TagMasteriesTable holds the schema information for the "tag_masteries" table.
	TagMasteriesTable = &schema.Table{
		Name:       "tag_masteries",
		Columns:    TagMasteriesColumns,
		PrimaryKey: []*schema.Column{TagMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tagmastery_topic",
				Unique:  false,
				Columns: []*schema.Column{TagMasteriesColumns[1]},
			},
			{
				Name:    "tagmastery_mastered",
				Unique:  false,
				Columns: []*schema.Column{TagMasteriesColumns[5]},
			},
		},
	}
	// UserSettingsColumns holds the columns for the "user_settings" table.
	UserSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "singleton_id", Type: field.TypeInt, Unique: true},
		{Name: "preferred_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "tier_override", Type: field.TypeString, Nullable: true},
	}
	// UserSettingsTable holds the schema information for the "user_settings" table.
	UserSettingsTable = &schema.Table{
		Name:       "user_settings",
		Columns:    UserSettingsColumns,
		PrimaryKey: []*schema.Column{UserSettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		DecisionEventsTable,
		LearnerStatesTable,
		PracticeSessionsTable,
		SessionEventsTable,
		TagMasteriesTable,
		UserSettingsTable,
	}
)

func init() {
}
