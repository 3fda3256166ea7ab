// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ankur/codedrill/ent/learnerstate"
	"github.com/ankur/codedrill/ent/schema"
)

// LearnerState is the model entity for the LearnerState schema.
type LearnerState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Always 1; enforces a single row
	SingletonID int `json:"singleton_id,omitempty"`
	// SessionsCompleted holds the value of the "sessions_completed" field.
	SessionsCompleted int `json:"sessions_completed,omitempty"`
	// LastAccuracy holds the value of the "last_accuracy" field.
	LastAccuracy float64 `json:"last_accuracy,omitempty"`
	// LastEfficiency holds the value of the "last_efficiency" field.
	LastEfficiency float64 `json:"last_efficiency,omitempty"`
	// Current focus decision, ordered
	FocusTags []string `json:"focus_tags,omitempty"`
	// TagCount holds the value of the "tag_count" field.
	TagCount int `json:"tag_count,omitempty"`
	// PerformanceLevel holds the value of the "performance_level" field.
	PerformanceLevel string `json:"performance_level,omitempty"`
	// DifficultyTimeStats holds the value of the "difficulty_time_stats" field.
	DifficultyTimeStats map[string]schema.DifficultyTimeStat `json:"difficulty_time_stats,omitempty"`
	// Written only by the lifecycle machine at completion
	LastProgressDate *time.Time `json:"last_progress_date,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnerstate.FieldFocusTags, learnerstate.FieldDifficultyTimeStats:
			values[i] = new([]byte)
		case learnerstate.FieldLastAccuracy, learnerstate.FieldLastEfficiency:
			values[i] = new(sql.NullFloat64)
		case learnerstate.FieldID, learnerstate.FieldSingletonID, learnerstate.FieldSessionsCompleted, learnerstate.FieldTagCount:
			values[i] = new(sql.NullInt64)
		case learnerstate.FieldPerformanceLevel:
			values[i] = new(sql.NullString)
		case learnerstate.FieldLastProgressDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerState fields.
func (_m *LearnerState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnerstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnerstate.FieldSingletonID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field singleton_id", values[i])
			} else if value.Valid {
				_m.SingletonID = int(value.Int64)
			}
		case learnerstate.FieldSessionsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_completed", values[i])
			} else if value.Valid {
				_m.SessionsCompleted = int(value.Int64)
			}
		case learnerstate.FieldLastAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field last_accuracy", values[i])
			} else if value.Valid {
				_m.LastAccuracy = value.Float64
			}
		case learnerstate.FieldLastEfficiency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field last_efficiency", values[i])
			} else if value.Valid {
				_m.LastEfficiency = value.Float64
			}
		case learnerstate.FieldFocusTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field focus_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FocusTags); err != nil {
					return fmt.Errorf("unmarshal field focus_tags: %w", err)
				}
			}
		case learnerstate.FieldTagCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tag_count", values[i])
			} else if value.Valid {
				_m.TagCount = int(value.Int64)
			}
		case learnerstate.FieldPerformanceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field performance_level", values[i])
			} else if value.Valid {
				_m.PerformanceLevel = value.String
			}
		case learnerstate.FieldDifficultyTimeStats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_time_stats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DifficultyTimeStats); err != nil {
					return fmt.Errorf("unmarshal field difficulty_time_stats: %w", err)
				}
			}
		case learnerstate.FieldLastProgressDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_progress_date", values[i])
			} else if value.Valid {
				_m.LastProgressDate = new(time.Time)
				*_m.LastProgressDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerState.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerState.
// Note that you need to call LearnerState.Unwrap() before calling this method if this LearnerState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerState) Update() *LearnerStateUpdateOne {
	return NewLearnerStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerState) Unwrap() *LearnerState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerState) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("singleton_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SingletonID))
	builder.WriteString(", ")
	builder.WriteString("sessions_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsCompleted))
	builder.WriteString(", ")
	builder.WriteString("last_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastAccuracy))
	builder.WriteString(", ")
	builder.WriteString("last_efficiency=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastEfficiency))
	builder.WriteString(", ")
	builder.WriteString("focus_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.FocusTags))
	builder.WriteString(", ")
	builder.WriteString("tag_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TagCount))
	builder.WriteString(", ")
	builder.WriteString("performance_level=")
	builder.WriteString(_m.PerformanceLevel)
	builder.WriteString(", ")
	builder.WriteString("difficulty_time_stats=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyTimeStats))
	builder.WriteString(", ")
	if v := _m.LastProgressDate; v != nil {
		builder.WriteString("last_progress_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LearnerStates is a parsable slice of LearnerState.
type LearnerStates []*LearnerState
