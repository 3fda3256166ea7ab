// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ankur/codedrill/ent/learnerstate"
	"github.com/ankur/codedrill/ent/predicate"
	"github.com/ankur/codedrill/ent/schema"
)

// LearnerStateUpdate is the builder for updating LearnerState entities.
type LearnerStateUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerStateMutation
}

// Where appends a list predicates to the LearnerStateUpdate builder.
func (_u *LearnerStateUpdate) Where(ps ...predicate.LearnerState) *LearnerStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSingletonID sets the "singleton_id" field.
func (_u *LearnerStateUpdate) SetSingletonID(v int) *LearnerStateUpdate {
	_u.mutation.ResetSingletonID()
	_u.mutation.SetSingletonID(v)
	return _u
}

// SetNillableSingletonID sets the "singleton_id" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillableSingletonID(v *int) *LearnerStateUpdate {
	if v != nil {
		_u.SetSingletonID(*v)
	}
	return _u
}

// AddSingletonID adds value to the "singleton_id" field.
func (_u *LearnerStateUpdate) AddSingletonID(v int) *LearnerStateUpdate {
	_u.mutation.AddSingletonID(v)
	return _u
}

// SetSessionsCompleted sets the "sessions_completed" field.
func (_u *LearnerStateUpdate) SetSessionsCompleted(v int) *LearnerStateUpdate {
	_u.mutation.ResetSessionsCompleted()
	_u.mutation.SetSessionsCompleted(v)
	return _u
}

// SetNillableSessionsCompleted sets the "sessions_completed" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillableSessionsCompleted(v *int) *LearnerStateUpdate {
	if v != nil {
		_u.SetSessionsCompleted(*v)
	}
	return _u
}

// AddSessionsCompleted adds value to the "sessions_completed" field.
func (_u *LearnerStateUpdate) AddSessionsCompleted(v int) *LearnerStateUpdate {
	_u.mutation.AddSessionsCompleted(v)
	return _u
}

// SetLastAccuracy sets the "last_accuracy" field.
func (_u *LearnerStateUpdate) SetLastAccuracy(v float64) *LearnerStateUpdate {
	_u.mutation.ResetLastAccuracy()
	_u.mutation.SetLastAccuracy(v)
	return _u
}

// SetNillableLastAccuracy sets the "last_accuracy" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillableLastAccuracy(v *float64) *LearnerStateUpdate {
	if v != nil {
		_u.SetLastAccuracy(*v)
	}
	return _u
}

// AddLastAccuracy adds value to the "last_accuracy" field.
func (_u *LearnerStateUpdate) AddLastAccuracy(v float64) *LearnerStateUpdate {
	_u.mutation.AddLastAccuracy(v)
	return _u
}

// SetLastEfficiency sets the "last_efficiency" field.
func (_u *LearnerStateUpdate) SetLastEfficiency(v float64) *LearnerStateUpdate {
	_u.mutation.ResetLastEfficiency()
	_u.mutation.SetLastEfficiency(v)
	return _u
}

// SetNillableLastEfficiency sets the "last_efficiency" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillableLastEfficiency(v *float64) *LearnerStateUpdate {
	if v != nil {
		_u.SetLastEfficiency(*v)
	}
	return _u
}

// AddLastEfficiency adds value to the "last_efficiency" field.
func (_u *LearnerStateUpdate) AddLastEfficiency(v float64) *LearnerStateUpdate {
	_u.mutation.AddLastEfficiency(v)
	return _u
}

// SetFocusTags sets the "focus_tags" field.
func (_u *LearnerStateUpdate) SetFocusTags(v []string) *LearnerStateUpdate {
	_u.mutation.SetFocusTags(v)
	return _u
}

// AppendFocusTags appends value to the "focus_tags" field.
func (_u *LearnerStateUpdate) AppendFocusTags(v []string) *LearnerStateUpdate {
	_u.mutation.AppendFocusTags(v)
	return _u
}

// ClearFocusTags clears the value of the "focus_tags" field.
func (_u *LearnerStateUpdate) ClearFocusTags() *LearnerStateUpdate {
	_u.mutation.ClearFocusTags()
	return _u
}

// SetTagCount sets the "tag_count" field.
func (_u *LearnerStateUpdate) SetTagCount(v int) *LearnerStateUpdate {
	_u.mutation.ResetTagCount()
	_u.mutation.SetTagCount(v)
	return _u
}

// SetNillableTagCount sets the "tag_count" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillableTagCount(v *int) *LearnerStateUpdate {
	if v != nil {
		_u.SetTagCount(*v)
	}
	return _u
}

// AddTagCount adds value to the "tag_count" field.
func (_u *LearnerStateUpdate) AddTagCount(v int) *LearnerStateUpdate {
	_u.mutation.AddTagCount(v)
	return _u
}

// SetPerformanceLevel sets the "performance_level" field.
func (_u *LearnerStateUpdate) SetPerformanceLevel(v string) *LearnerStateUpdate {
	_u.mutation.SetPerformanceLevel(v)
	return _u
}

// SetNillablePerformanceLevel sets the "performance_level" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillablePerformanceLevel(v *string) *LearnerStateUpdate {
	if v != nil {
		_u.SetPerformanceLevel(*v)
	}
	return _u
}

// SetDifficultyTimeStats sets the "difficulty_time_stats" field.
func (_u *LearnerStateUpdate) SetDifficultyTimeStats(v map[string]schema.DifficultyTimeStat) *LearnerStateUpdate {
	_u.mutation.SetDifficultyTimeStats(v)
	return _u
}

// ClearDifficultyTimeStats clears the value of the "difficulty_time_stats" field.
func (_u *LearnerStateUpdate) ClearDifficultyTimeStats() *LearnerStateUpdate {
	_u.mutation.ClearDifficultyTimeStats()
	return _u
}

// SetLastProgressDate sets the "last_progress_date" field.
func (_u *LearnerStateUpdate) SetLastProgressDate(v time.Time) *LearnerStateUpdate {
	_u.mutation.SetLastProgressDate(v)
	return _u
}

// SetNillableLastProgressDate sets the "last_progress_date" field if the given value is not nil.
func (_u *LearnerStateUpdate) SetNillableLastProgressDate(v *time.Time) *LearnerStateUpdate {
	if v != nil {
		_u.SetLastProgressDate(*v)
	}
	return _u
}

// ClearLastProgressDate clears the value of the "last_progress_date" field.
func (_u *LearnerStateUpdate) ClearLastProgressDate() *LearnerStateUpdate {
	_u.mutation.ClearLastProgressDate()
	return _u
}

// Mutation returns the LearnerStateMutation object of the builder.
func (_u *LearnerStateUpdate) Mutation() *LearnerStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearnerStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerstate.Table, learnerstate.Columns, sqlgraph.NewFieldSpec(learnerstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SingletonID(); ok {
		_spec.SetField(learnerstate.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSingletonID(); ok {
		_spec.AddField(learnerstate.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsCompleted(); ok {
		_spec.SetField(learnerstate.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsCompleted(); ok {
		_spec.AddField(learnerstate.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccuracy(); ok {
		_spec.SetField(learnerstate.FieldLastAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastAccuracy(); ok {
		_spec.AddField(learnerstate.FieldLastAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastEfficiency(); ok {
		_spec.SetField(learnerstate.FieldLastEfficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastEfficiency(); ok {
		_spec.AddField(learnerstate.FieldLastEfficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FocusTags(); ok {
		_spec.SetField(learnerstate.FieldFocusTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerstate.FieldFocusTags, value)
		})
	}
	if _u.mutation.FocusTagsCleared() {
		_spec.ClearField(learnerstate.FieldFocusTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.TagCount(); ok {
		_spec.SetField(learnerstate.FieldTagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTagCount(); ok {
		_spec.AddField(learnerstate.FieldTagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PerformanceLevel(); ok {
		_spec.SetField(learnerstate.FieldPerformanceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyTimeStats(); ok {
		_spec.SetField(learnerstate.FieldDifficultyTimeStats, field.TypeJSON, value)
	}
	if _u.mutation.DifficultyTimeStatsCleared() {
		_spec.ClearField(learnerstate.FieldDifficultyTimeStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastProgressDate(); ok {
		_spec.SetField(learnerstate.FieldLastProgressDate, field.TypeTime, value)
	}
	if _u.mutation.LastProgressDateCleared() {
		_spec.ClearField(learnerstate.FieldLastProgressDate, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerStateUpdateOne is the builder for updating a single LearnerState entity.
type LearnerStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerStateMutation
}

// SetSingletonID sets the "singleton_id" field.
func (_u *LearnerStateUpdateOne) SetSingletonID(v int) *LearnerStateUpdateOne {
	_u.mutation.ResetSingletonID()
	_u.mutation.SetSingletonID(v)
	return _u
}

// SetNillableSingletonID sets the "singleton_id" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillableSingletonID(v *int) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetSingletonID(*v)
	}
	return _u
}

// AddSingletonID adds value to the "singleton_id" field.
func (_u *LearnerStateUpdateOne) AddSingletonID(v int) *LearnerStateUpdateOne {
	_u.mutation.AddSingletonID(v)
	return _u
}

// SetSessionsCompleted sets the "sessions_completed" field.
func (_u *LearnerStateUpdateOne) SetSessionsCompleted(v int) *LearnerStateUpdateOne {
	_u.mutation.ResetSessionsCompleted()
	_u.mutation.SetSessionsCompleted(v)
	return _u
}

// SetNillableSessionsCompleted sets the "sessions_completed" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillableSessionsCompleted(v *int) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetSessionsCompleted(*v)
	}
	return _u
}

// AddSessionsCompleted adds value to the "sessions_completed" field.
func (_u *LearnerStateUpdateOne) AddSessionsCompleted(v int) *LearnerStateUpdateOne {
	_u.mutation.AddSessionsCompleted(v)
	return _u
}

// SetLastAccuracy sets the "last_accuracy" field.
func (_u *LearnerStateUpdateOne) SetLastAccuracy(v float64) *LearnerStateUpdateOne {
	_u.mutation.ResetLastAccuracy()
	_u.mutation.SetLastAccuracy(v)
	return _u
}

// SetNillableLastAccuracy sets the "last_accuracy" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillableLastAccuracy(v *float64) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetLastAccuracy(*v)
	}
	return _u
}

// AddLastAccuracy adds value to the "last_accuracy" field.
func (_u *LearnerStateUpdateOne) AddLastAccuracy(v float64) *LearnerStateUpdateOne {
	_u.mutation.AddLastAccuracy(v)
	return _u
}

// SetLastEfficiency sets the "last_efficiency" field.
func (_u *LearnerStateUpdateOne) SetLastEfficiency(v float64) *LearnerStateUpdateOne {
	_u.mutation.ResetLastEfficiency()
	_u.mutation.SetLastEfficiency(v)
	return _u
}

// SetNillableLastEfficiency sets the "last_efficiency" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillableLastEfficiency(v *float64) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetLastEfficiency(*v)
	}
	return _u
}

// AddLastEfficiency adds value to the "last_efficiency" field.
func (_u *LearnerStateUpdateOne) AddLastEfficiency(v float64) *LearnerStateUpdateOne {
	_u.mutation.AddLastEfficiency(v)
	return _u
}

// SetFocusTags sets the "focus_tags" field.
func (_u *LearnerStateUpdateOne) SetFocusTags(v []string) *LearnerStateUpdateOne {
	_u.mutation.SetFocusTags(v)
	return _u
}

// AppendFocusTags appends value to the "focus_tags" field.
func (_u *LearnerStateUpdateOne) AppendFocusTags(v []string) *LearnerStateUpdateOne {
	_u.mutation.AppendFocusTags(v)
	return _u
}

// ClearFocusTags clears the value of the "focus_tags" field.
func (_u *LearnerStateUpdateOne) ClearFocusTags() *LearnerStateUpdateOne {
	_u.mutation.ClearFocusTags()
	return _u
}

// SetTagCount sets the "tag_count" field.
func (_u *LearnerStateUpdateOne) SetTagCount(v int) *LearnerStateUpdateOne {
	_u.mutation.ResetTagCount()
	_u.mutation.SetTagCount(v)
	return _u
}

// SetNillableTagCount sets the "tag_count" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillableTagCount(v *int) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetTagCount(*v)
	}
	return _u
}

// AddTagCount adds value to the "tag_count" field.
func (_u *LearnerStateUpdateOne) AddTagCount(v int) *LearnerStateUpdateOne {
	_u.mutation.AddTagCount(v)
	return _u
}

// SetPerformanceLevel sets the "performance_level" field.
func (_u *LearnerStateUpdateOne) SetPerformanceLevel(v string) *LearnerStateUpdateOne {
	_u.mutation.SetPerformanceLevel(v)
	return _u
}

// SetNillablePerformanceLevel sets the "performance_level" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillablePerformanceLevel(v *string) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetPerformanceLevel(*v)
	}
	return _u
}

// SetDifficultyTimeStats sets the "difficulty_time_stats" field.
func (_u *LearnerStateUpdateOne) SetDifficultyTimeStats(v map[string]schema.DifficultyTimeStat) *LearnerStateUpdateOne {
	_u.mutation.SetDifficultyTimeStats(v)
	return _u
}

// ClearDifficultyTimeStats clears the value of the "difficulty_time_stats" field.
func (_u *LearnerStateUpdateOne) ClearDifficultyTimeStats() *LearnerStateUpdateOne {
	_u.mutation.ClearDifficultyTimeStats()
	return _u
}

// SetLastProgressDate sets the "last_progress_date" field.
func (_u *LearnerStateUpdateOne) SetLastProgressDate(v time.Time) *LearnerStateUpdateOne {
	_u.mutation.SetLastProgressDate(v)
	return _u
}

// SetNillableLastProgressDate sets the "last_progress_date" field if the given value is not nil.
func (_u *LearnerStateUpdateOne) SetNillableLastProgressDate(v *time.Time) *LearnerStateUpdateOne {
	if v != nil {
		_u.SetLastProgressDate(*v)
	}
	return _u
}

// ClearLastProgressDate clears the value of the "last_progress_date" field.
func (_u *LearnerStateUpdateOne) ClearLastProgressDate() *LearnerStateUpdateOne {
	_u.mutation.ClearLastProgressDate()
	return _u
}

// Mutation returns the LearnerStateMutation object of the builder.
func (_u *LearnerStateUpdateOne) Mutation() *LearnerStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerStateUpdate builder.
func (_u *LearnerStateUpdateOne) Where(ps ...predicate.LearnerState) *LearnerStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerStateUpdateOne) Select(field string, fields ...string) *LearnerStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerState entity.
func (_u *LearnerStateUpdateOne) Save(ctx context.Context) (*LearnerState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerStateUpdateOne) SaveX(ctx context.Context) *LearnerState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearnerStateUpdateOne) sqlSave(ctx context.Context) (_node *LearnerState, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerstate.Table, learnerstate.Columns, sqlgraph.NewFieldSpec(learnerstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerstate.FieldID)
		for _, f := range fields {
			if !learnerstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SingletonID(); ok {
		_spec.SetField(learnerstate.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSingletonID(); ok {
		_spec.AddField(learnerstate.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsCompleted(); ok {
		_spec.SetField(learnerstate.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsCompleted(); ok {
		_spec.AddField(learnerstate.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccuracy(); ok {
		_spec.SetField(learnerstate.FieldLastAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastAccuracy(); ok {
		_spec.AddField(learnerstate.FieldLastAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastEfficiency(); ok {
		_spec.SetField(learnerstate.FieldLastEfficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastEfficiency(); ok {
		_spec.AddField(learnerstate.FieldLastEfficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FocusTags(); ok {
		_spec.SetField(learnerstate.FieldFocusTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerstate.FieldFocusTags, value)
		})
	}
	if _u.mutation.FocusTagsCleared() {
		_spec.ClearField(learnerstate.FieldFocusTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.TagCount(); ok {
		_spec.SetField(learnerstate.FieldTagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTagCount(); ok {
		_spec.AddField(learnerstate.FieldTagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PerformanceLevel(); ok {
		_spec.SetField(learnerstate.FieldPerformanceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyTimeStats(); ok {
		_spec.SetField(learnerstate.FieldDifficultyTimeStats, field.TypeJSON, value)
	}
	if _u.mutation.DifficultyTimeStatsCleared() {
		_spec.ClearField(learnerstate.FieldDifficultyTimeStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastProgressDate(); ok {
		_spec.SetField(learnerstate.FieldLastProgressDate, field.TypeTime, value)
	}
	if _u.mutation.LastProgressDateCleared() {
		_spec.ClearField(learnerstate.FieldLastProgressDate, field.TypeTime)
	}
	_node = &LearnerState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
