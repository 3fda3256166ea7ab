// Code generated by ent, DO NOT EDIT.

package tagmastery

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tagmastery type in the database.
	Label = "tag_mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldSuccessfulAttempts holds the string denoting the successful_attempts field in the database.
	FieldSuccessfulAttempts = "successful_attempts"
	// FieldDecayScore holds the string denoting the decay_score field in the database.
	FieldDecayScore = "decay_score"
	// FieldMastered holds the string denoting the mastered field in the database.
	FieldMastered = "mastered"
	// FieldLastSuccessAt holds the string denoting the last_success_at field in the database.
	FieldLastSuccessAt = "last_success_at"
	// Table holds the table name of the tagmastery in the database.
	Table = "tag_masteries"
)

// Columns holds all SQL columns for tagmastery fields.
var Columns = []string{
	FieldID,
	FieldTopic,
	FieldTotalAttempts,
	FieldSuccessfulAttempts,
	FieldDecayScore,
	FieldMastered,
	FieldLastSuccessAt,
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
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// TotalAttemptsValidator is a validator for the "total_attempts" field. It is called by the builders before save.
	TotalAttemptsValidator func(int) error
	// DefaultSuccessfulAttempts holds the default value on creation for the "successful_attempts" field.
	DefaultSuccessfulAttempts int
	// SuccessfulAttemptsValidator is a validator for the "successful_attempts" field. It is called by the builders before save.
	SuccessfulAttemptsValidator func(int) error
	// DefaultDecayScore holds the default value on creation for the "decay_score" field.
	DefaultDecayScore float64
	// DefaultMastered holds the default value on creation for the "mastered" field.
	DefaultMastered bool
)

// OrderOption defines the ordering options for the TagMastery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// BySuccessfulAttempts orders the results by the successful_attempts field.
func BySuccessfulAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessfulAttempts, opts...).ToFunc()
}

// ByDecayScore orders the results by the decay_score field.
func ByDecayScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecayScore, opts...).ToFunc()
}

// ByMastered orders the results by the mastered field.
func ByMastered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastered, opts...).ToFunc()
}

// ByLastSuccessAt orders the results by the last_success_at field.
func ByLastSuccessAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSuccessAt, opts...).ToFunc()
}
