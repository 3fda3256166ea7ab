// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ankur/codedrill/ent/tagmastery"
)

// TagMastery is the model entity for the TagMastery schema.
type TagMastery struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// SuccessfulAttempts holds the value of the "successful_attempts" field.
	SuccessfulAttempts int `json:"successful_attempts,omitempty"`
	// Freshness multiplier, decreases with days since last success
	DecayScore float64 `json:"decay_score,omitempty"`
	// Mastered holds the value of the "mastered" field.
	Mastered bool `json:"mastered,omitempty"`
	// Most recent successful attempt on this topic
	LastSuccessAt *time.Time `json:"last_success_at,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TagMastery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tagmastery.FieldMastered:
			values[i] = new(sql.NullBool)
		case tagmastery.FieldDecayScore:
			values[i] = new(sql.NullFloat64)
		case tagmastery.FieldID, tagmastery.FieldTotalAttempts, tagmastery.FieldSuccessfulAttempts:
			values[i] = new(sql.NullInt64)
		case tagmastery.FieldTopic:
			values[i] = new(sql.NullString)
		case tagmastery.FieldLastSuccessAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TagMastery fields.
func (_m *TagMastery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tagmastery.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tagmastery.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case tagmastery.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case tagmastery.FieldSuccessfulAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successful_attempts", values[i])
			} else if value.Valid {
				_m.SuccessfulAttempts = int(value.Int64)
			}
		case tagmastery.FieldDecayScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field decay_score", values[i])
			} else if value.Valid {
				_m.DecayScore = value.Float64
			}
		case tagmastery.FieldMastered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mastered", values[i])
			} else if value.Valid {
				_m.Mastered = value.Bool
			}
		case tagmastery.FieldLastSuccessAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_success_at", values[i])
			} else if value.Valid {
				_m.LastSuccessAt = new(time.Time)
				*_m.LastSuccessAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TagMastery.
// This includes values selected through modifiers, order, etc.
func (_m *TagMastery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TagMastery.
// Note that you need to call TagMastery.Unwrap() before calling this method if this TagMastery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TagMastery) Update() *TagMasteryUpdateOne {
	return NewTagMasteryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TagMastery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TagMastery) Unwrap() *TagMastery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TagMastery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TagMastery) String() string {
	var builder strings.Builder
	builder.WriteString("TagMastery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("successful_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessfulAttempts))
	builder.WriteString(", ")
	builder.WriteString("decay_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DecayScore))
	builder.WriteString(", ")
	builder.WriteString("mastered=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastered))
	builder.WriteString(", ")
	if v := _m.LastSuccessAt; v != nil {
		builder.WriteString("last_success_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TagMasteries is a parsable slice of TagMastery.
type TagMasteries []*TagMastery
