// Code generated by ent, DO NOT EDIT.

package usersettings

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the usersettings type in the database.
	Label = "user_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSingletonID holds the string denoting the singleton_id field in the database.
	FieldSingletonID = "singleton_id"
	// FieldPreferredTopics holds the string denoting the preferred_topics field in the database.
	FieldPreferredTopics = "preferred_topics"
	// FieldTierOverride holds the string denoting the tier_override field in the database.
	FieldTierOverride = "tier_override"
	// Table holds the table name of the usersettings in the database.
	Table = "user_settings"
)

// Columns holds all SQL columns for usersettings fields.
var Columns = []string{
	FieldID,
	FieldSingletonID,
	FieldPreferredTopics,
	FieldTierOverride,
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

// OrderOption defines the ordering options for the UserSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySingletonID orders the results by the singleton_id field.
func BySingletonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSingletonID, opts...).ToFunc()
}

// ByTierOverride orders the results by the tier_override field.
func ByTierOverride(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTierOverride, opts...).ToFunc()
}
