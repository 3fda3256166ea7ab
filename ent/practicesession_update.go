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
	"github.com/ankur/codedrill/ent/practicesession"
	"github.com/ankur/codedrill/ent/predicate"
	"github.com/ankur/codedrill/ent/schema"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeSessionUpdate) SetSessionID(v string) *PracticeSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableSessionID(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PracticeSessionUpdate) SetStatus(v string) *PracticeSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableStatus(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *PracticeSessionUpdate) SetSessionType(v string) *PracticeSessionUpdate {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableSessionType(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *PracticeSessionUpdate) SetOrigin(v string) *PracticeSessionUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableOrigin(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetProblems sets the "problems" field.
func (_u *PracticeSessionUpdate) SetProblems(v []schema.ProblemSlot) *PracticeSessionUpdate {
	_u.mutation.SetProblems(v)
	return _u
}

// AppendProblems appends value to the "problems" field.
func (_u *PracticeSessionUpdate) AppendProblems(v []schema.ProblemSlot) *PracticeSessionUpdate {
	_u.mutation.AppendProblems(v)
	return _u
}

// ClearProblems clears the value of the "problems" field.
func (_u *PracticeSessionUpdate) ClearProblems() *PracticeSessionUpdate {
	_u.mutation.ClearProblems()
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *PracticeSessionUpdate) SetCurrentIndex(v int) *PracticeSessionUpdate {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableCurrentIndex(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *PracticeSessionUpdate) AddCurrentIndex(v int) *PracticeSessionUpdate {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *PracticeSessionUpdate) SetLastActivity(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableLastActivity(v *time.Time) *PracticeSessionUpdate {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *PracticeSessionUpdate) SetAccuracy(v float64) *PracticeSessionUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableAccuracy(v *float64) *PracticeSessionUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *PracticeSessionUpdate) AddAccuracy(v float64) *PracticeSessionUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *PracticeSessionUpdate) SetDurationSecs(v int) *PracticeSessionUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableDurationSecs(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *PracticeSessionUpdate) AddDurationSecs(v int) *PracticeSessionUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practicesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practicesession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(practicesession.FieldSessionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(practicesession.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Problems(); ok {
		_spec.SetField(practicesession.FieldProblems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProblems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldProblems, value)
		})
	}
	if _u.mutation.ProblemsCleared() {
		_spec.ClearField(practicesession.FieldProblems, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(practicesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(practicesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(practicesession.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(practicesession.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(practicesession.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeSessionUpdateOne) SetSessionID(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableSessionID(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PracticeSessionUpdateOne) SetStatus(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableStatus(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *PracticeSessionUpdateOne) SetSessionType(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableSessionType(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *PracticeSessionUpdateOne) SetOrigin(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableOrigin(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetProblems sets the "problems" field.
func (_u *PracticeSessionUpdateOne) SetProblems(v []schema.ProblemSlot) *PracticeSessionUpdateOne {
	_u.mutation.SetProblems(v)
	return _u
}

// AppendProblems appends value to the "problems" field.
func (_u *PracticeSessionUpdateOne) AppendProblems(v []schema.ProblemSlot) *PracticeSessionUpdateOne {
	_u.mutation.AppendProblems(v)
	return _u
}

// ClearProblems clears the value of the "problems" field.
func (_u *PracticeSessionUpdateOne) ClearProblems() *PracticeSessionUpdateOne {
	_u.mutation.ClearProblems()
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *PracticeSessionUpdateOne) SetCurrentIndex(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableCurrentIndex(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *PracticeSessionUpdateOne) AddCurrentIndex(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *PracticeSessionUpdateOne) SetLastActivity(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableLastActivity(v *time.Time) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *PracticeSessionUpdateOne) SetAccuracy(v float64) *PracticeSessionUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableAccuracy(v *float64) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *PracticeSessionUpdateOne) AddAccuracy(v float64) *PracticeSessionUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *PracticeSessionUpdateOne) SetDurationSecs(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableDurationSecs(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *PracticeSessionUpdateOne) AddDurationSecs(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSession entity.
func (_u *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practicesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practicesession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(practicesession.FieldSessionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(practicesession.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Problems(); ok {
		_spec.SetField(practicesession.FieldProblems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProblems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldProblems, value)
		})
	}
	if _u.mutation.ProblemsCleared() {
		_spec.ClearField(practicesession.FieldProblems, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(practicesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(practicesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(practicesession.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(practicesession.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(practicesession.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &PracticeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
