// Code generated by ent, DO NOT EDIT.

package learnerstate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnerstate type in the database.
	Label = "learner_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSingletonID holds the string denoting the singleton_id field in the database.
	FieldSingletonID = "singleton_id"
	// FieldSessionsCompleted holds the string denoting the sessions_completed field in the database.
	FieldSessionsCompleted = "sessions_completed"
	// FieldLastAccuracy holds the string denoting the last_accuracy field in the database.
	FieldLastAccuracy = "last_accuracy"
	// FieldLastEfficiency holds the string denoting the last_efficiency field in the database.
	FieldLastEfficiency = "last_efficiency"
	// FieldFocusTags holds the string denoting the focus_tags field in the database.
	FieldFocusTags = "focus_tags"
	// FieldTagCount holds the string denoting the tag_count field in the database.
	FieldTagCount = "tag_count"
	// FieldPerformanceLevel holds the string denoting the performance_level field in the database.
	FieldPerformanceLevel = "performance_level"
	// FieldDifficultyTimeStats holds the string denoting the difficulty_time_stats field in the database.
	FieldDifficultyTimeStats = "difficulty_time_stats"
	// FieldLastProgressDate holds the string denoting the last_progress_date field in the database.
	FieldLastProgressDate = "last_progress_date"
	// Table holds the table name of the learnerstate in the database.
	Table = "learner_states"
)

// Columns holds all SQL columns for learnerstate fields.
var Columns = []string{
	FieldID,
	FieldSingletonID,
	FieldSessionsCompleted,
	FieldLastAccuracy,
	FieldLastEfficiency,
	FieldFocusTags,
	FieldTagCount,
	FieldPerformanceLevel,
	FieldDifficultyTimeStats,
	FieldLastProgressDate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSessionsCompleted holds the default value on creation for the "sessions_completed" field.
	DefaultSessionsCompleted int
	// DefaultLastAccuracy holds the default value on creation for the "last_accuracy" field.
	DefaultLastAccuracy float64
	// DefaultLastEfficiency holds the default value on creation for the "last_efficiency" field.
	DefaultLastEfficiency float64
	// DefaultTagCount holds the default value on creation for the "tag_count" field.
	DefaultTagCount int
	// DefaultPerformanceLevel holds the default value on creation for the "performance_level" field.
	DefaultPerformanceLevel string
)

// OrderOption defines the ordering options for the LearnerState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySingletonID orders the results by the singleton_id field.
func BySingletonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSingletonID, opts...).ToFunc()
}

// BySessionsCompleted orders the results by the sessions_completed field.
func BySessionsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsCompleted, opts...).ToFunc()
}

// ByLastAccuracy orders the results by the last_accuracy field.
func ByLastAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAccuracy, opts...).ToFunc()
}

// ByLastEfficiency orders the results by the last_efficiency field.
func ByLastEfficiency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEfficiency, opts...).ToFunc()
}

// ByTagCount orders the results by the tag_count field.
func ByTagCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTagCount, opts...).ToFunc()
}

// ByPerformanceLevel orders the results by the performance_level field.
func ByPerformanceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformanceLevel, opts...).ToFunc()
}

// ByLastProgressDate orders the results by the last_progress_date field.
func ByLastProgressDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProgressDate, opts...).ToFunc()
}
