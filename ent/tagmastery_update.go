// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankur/codedrill/ent/predicate"
	"github.com/ankur/codedrill/ent/tagmastery"
)

// TagMasteryUpdate is the builder for updating TagMastery entities.
type TagMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *TagMasteryMutation
}

// Where appends a list predicates to the TagMasteryUpdate builder.
func (_u *TagMasteryUpdate) Where(ps ...predicate.TagMastery) *TagMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TagMasteryUpdate) SetTopic(v string) *TagMasteryUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TagMasteryUpdate) SetNillableTopic(v *string) *TagMasteryUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *TagMasteryUpdate) SetTotalAttempts(v int) *TagMasteryUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *TagMasteryUpdate) SetNillableTotalAttempts(v *int) *TagMasteryUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *TagMasteryUpdate) AddTotalAttempts(v int) *TagMasteryUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetSuccessfulAttempts sets the "successful_attempts" field.
func (_u *TagMasteryUpdate) SetSuccessfulAttempts(v int) *TagMasteryUpdate {
	_u.mutation.ResetSuccessfulAttempts()
	_u.mutation.SetSuccessfulAttempts(v)
	return _u
}

// SetNillableSuccessfulAttempts sets the "successful_attempts" field if the given value is not nil.
func (_u *TagMasteryUpdate) SetNillableSuccessfulAttempts(v *int) *TagMasteryUpdate {
	if v != nil {
		_u.SetSuccessfulAttempts(*v)
	}
	return _u
}

// AddSuccessfulAttempts adds value to the "successful_attempts" field.
func (_u *TagMasteryUpdate) AddSuccessfulAttempts(v int) *TagMasteryUpdate {
	_u.mutation.AddSuccessfulAttempts(v)
	return _u
}

// SetDecayScore sets the "decay_score" field.
func (_u *TagMasteryUpdate) SetDecayScore(v float64) *TagMasteryUpdate {
	_u.mutation.ResetDecayScore()
	_u.mutation.SetDecayScore(v)
	return _u
}

// SetNillableDecayScore sets the "decay_score" field if the given value is not nil.
func (_u *TagMasteryUpdate) SetNillableDecayScore(v *float64) *TagMasteryUpdate {
	if v != nil {
		_u.SetDecayScore(*v)
	}
	return _u
}

// AddDecayScore adds value to the "decay_score" field.
func (_u *TagMasteryUpdate) AddDecayScore(v float64) *TagMasteryUpdate {
	_u.mutation.AddDecayScore(v)
	return _u
}

// SetMastered sets the "mastered" field.
func (_u *TagMasteryUpdate) SetMastered(v bool) *TagMasteryUpdate {
	_u.mutation.SetMastered(v)
	return _u
}

// SetNillableMastered sets the "mastered" field if the given value is not nil.
func (_u *TagMasteryUpdate) SetNillableMastered(v *bool) *TagMasteryUpdate {
	if v != nil {
		_u.SetMastered(*v)
	}
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *TagMasteryUpdate) SetLastSuccessAt(v time.Time) *TagMasteryUpdate {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *TagMasteryUpdate) SetNillableLastSuccessAt(v *time.Time) *TagMasteryUpdate {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *TagMasteryUpdate) ClearLastSuccessAt() *TagMasteryUpdate {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// Mutation returns the TagMasteryMutation object of the builder.
func (_u *TagMasteryUpdate) Mutation() *TagMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TagMasteryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TagMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TagMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TagMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TagMasteryUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := tagmastery.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TagMastery.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := tagmastery.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "TagMastery.total_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessfulAttempts(); ok {
		if err := tagmastery.SuccessfulAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "successful_attempts", err: fmt.Errorf(`ent: validator failed for field "TagMastery.successful_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *TagMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tagmastery.Table, tagmastery.Columns, sqlgraph.NewFieldSpec(tagmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(tagmastery.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(tagmastery.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(tagmastery.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulAttempts(); ok {
		_spec.SetField(tagmastery.FieldSuccessfulAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulAttempts(); ok {
		_spec.AddField(tagmastery.FieldSuccessfulAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DecayScore(); ok {
		_spec.SetField(tagmastery.FieldDecayScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDecayScore(); ok {
		_spec.AddField(tagmastery.FieldDecayScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mastered(); ok {
		_spec.SetField(tagmastery.FieldMastered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(tagmastery.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(tagmastery.FieldLastSuccessAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tagmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TagMasteryUpdateOne is the builder for updating a single TagMastery entity.
type TagMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TagMasteryMutation
}

// SetTopic sets the "topic" field.
func (_u *TagMasteryUpdateOne) SetTopic(v string) *TagMasteryUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TagMasteryUpdateOne) SetNillableTopic(v *string) *TagMasteryUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *TagMasteryUpdateOne) SetTotalAttempts(v int) *TagMasteryUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *TagMasteryUpdateOne) SetNillableTotalAttempts(v *int) *TagMasteryUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *TagMasteryUpdateOne) AddTotalAttempts(v int) *TagMasteryUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetSuccessfulAttempts sets the "successful_attempts" field.
func (_u *TagMasteryUpdateOne) SetSuccessfulAttempts(v int) *TagMasteryUpdateOne {
	_u.mutation.ResetSuccessfulAttempts()
	_u.mutation.SetSuccessfulAttempts(v)
	return _u
}

// SetNillableSuccessfulAttempts sets the "successful_attempts" field if the given value is not nil.
func (_u *TagMasteryUpdateOne) SetNillableSuccessfulAttempts(v *int) *TagMasteryUpdateOne {
	if v != nil {
		_u.SetSuccessfulAttempts(*v)
	}
	return _u
}

// AddSuccessfulAttempts adds value to the "successful_attempts" field.
func (_u *TagMasteryUpdateOne) AddSuccessfulAttempts(v int) *TagMasteryUpdateOne {
	_u.mutation.AddSuccessfulAttempts(v)
	return _u
}

// SetDecayScore sets the "decay_score" field.
func (_u *TagMasteryUpdateOne) SetDecayScore(v float64) *TagMasteryUpdateOne {
	_u.mutation.ResetDecayScore()
	_u.mutation.SetDecayScore(v)
	return _u
}

// SetNillableDecayScore sets the "decay_score" field if the given value is not nil.
func (_u *TagMasteryUpdateOne) SetNillableDecayScore(v *float64) *TagMasteryUpdateOne {
	if v != nil {
		_u.SetDecayScore(*v)
	}
	return _u
}

// AddDecayScore adds value to the "decay_score" field.
func (_u *TagMasteryUpdateOne) AddDecayScore(v float64) *TagMasteryUpdateOne {
	_u.mutation.AddDecayScore(v)
	return _u
}

// SetMastered sets the "mastered" field.
func (_u *TagMasteryUpdateOne) SetMastered(v bool) *TagMasteryUpdateOne {
	_u.mutation.SetMastered(v)
	return _u
}

// SetNillableMastered sets the "mastered" field if the given value is not nil.
func (_u *TagMasteryUpdateOne) SetNillableMastered(v *bool) *TagMasteryUpdateOne {
	if v != nil {
		_u.SetMastered(*v)
	}
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *TagMasteryUpdateOne) SetLastSuccessAt(v time.Time) *TagMasteryUpdateOne {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *TagMasteryUpdateOne) SetNillableLastSuccessAt(v *time.Time) *TagMasteryUpdateOne {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *TagMasteryUpdateOne) ClearLastSuccessAt() *TagMasteryUpdateOne {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// Mutation returns the TagMasteryMutation object of the builder.
func (_u *TagMasteryUpdateOne) Mutation() *TagMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TagMasteryUpdate builder.
func (_u *TagMasteryUpdateOne) Where(ps ...predicate.TagMastery) *TagMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TagMasteryUpdateOne) Select(field string, fields ...string) *TagMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TagMastery entity.
func (_u *TagMasteryUpdateOne) Save(ctx context.Context) (*TagMastery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TagMasteryUpdateOne) SaveX(ctx context.Context) *TagMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TagMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TagMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TagMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := tagmastery.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TagMastery.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := tagmastery.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "TagMastery.total_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessfulAttempts(); ok {
		if err := tagmastery.SuccessfulAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "successful_attempts", err: fmt.Errorf(`ent: validator failed for field "TagMastery.successful_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *TagMasteryUpdateOne) sqlSave(ctx context.Context) (_node *TagMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tagmastery.Table, tagmastery.Columns, sqlgraph.NewFieldSpec(tagmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TagMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tagmastery.FieldID)
		for _, f := range fields {
			if !tagmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tagmastery.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(tagmastery.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(tagmastery.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(tagmastery.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulAttempts(); ok {
		_spec.SetField(tagmastery.FieldSuccessfulAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulAttempts(); ok {
		_spec.AddField(tagmastery.FieldSuccessfulAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DecayScore(); ok {
		_spec.SetField(tagmastery.FieldDecayScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDecayScore(); ok {
		_spec.AddField(tagmastery.FieldDecayScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mastered(); ok {
		_spec.SetField(tagmastery.FieldMastered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(tagmastery.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(tagmastery.FieldLastSuccessAt, field.TypeTime)
	}
	_node = &TagMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tagmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
