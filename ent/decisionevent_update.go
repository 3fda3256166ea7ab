// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ankur/codedrill/ent/decisionevent"
	"github.com/ankur/codedrill/ent/predicate"
)

// DecisionEventUpdate is the builder for updating DecisionEvent entities.
type DecisionEventUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionEventMutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdate) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTags sets the "tags" field.
func (_u *DecisionEventUpdate) SetTags(v []string) *DecisionEventUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *DecisionEventUpdate) AppendTags(v []string) *DecisionEventUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// SetTagCount sets the "tag_count" field.
func (_u *DecisionEventUpdate) SetTagCount(v int) *DecisionEventUpdate {
	_u.mutation.ResetTagCount()
	_u.mutation.SetTagCount(v)
	return _u
}

// SetNillableTagCount sets the "tag_count" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableTagCount(v *int) *DecisionEventUpdate {
	if v != nil {
		_u.SetTagCount(*v)
	}
	return _u
}

// AddTagCount adds value to the "tag_count" field.
func (_u *DecisionEventUpdate) AddTagCount(v int) *DecisionEventUpdate {
	_u.mutation.AddTagCount(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *DecisionEventUpdate) SetReasoning(v string) *DecisionEventUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableReasoning(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetPerformanceLevel sets the "performance_level" field.
func (_u *DecisionEventUpdate) SetPerformanceLevel(v string) *DecisionEventUpdate {
	_u.mutation.SetPerformanceLevel(v)
	return _u
}

// SetNillablePerformanceLevel sets the "performance_level" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillablePerformanceLevel(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetPerformanceLevel(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdate) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DecisionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(decisionevent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decisionevent.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.TagCount(); ok {
		_spec.SetField(decisionevent.FieldTagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTagCount(); ok {
		_spec.AddField(decisionevent.FieldTagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(decisionevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.PerformanceLevel(); ok {
		_spec.SetField(decisionevent.FieldPerformanceLevel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionEventUpdateOne is the builder for updating a single DecisionEvent entity.
type DecisionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionEventMutation
}

// SetTags sets the "tags" field.
func (_u *DecisionEventUpdateOne) SetTags(v []string) *DecisionEventUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *DecisionEventUpdateOne) AppendTags(v []string) *DecisionEventUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// SetTagCount sets the "tag_count" field.
func (_u *DecisionEventUpdateOne) SetTagCount(v int) *DecisionEventUpdateOne {
	_u.mutation.ResetTagCount()
	_u.mutation.SetTagCount(v)
	return _u
}

// SetNillableTagCount sets the "tag_count" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableTagCount(v *int) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetTagCount(*v)
	}
	return _u
}

// AddTagCount adds value to the "tag_count" field.
func (_u *DecisionEventUpdateOne) AddTagCount(v int) *DecisionEventUpdateOne {
	_u.mutation.AddTagCount(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *DecisionEventUpdateOne) SetReasoning(v string) *DecisionEventUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableReasoning(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetPerformanceLevel sets the "performance_level" field.
func (_u *DecisionEventUpdateOne) SetPerformanceLevel(v string) *DecisionEventUpdateOne {
	_u.mutation.SetPerformanceLevel(v)
	return _u
}

// SetNillablePerformanceLevel sets the "performance_level" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillablePerformanceLevel(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetPerformanceLevel(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdateOne) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdateOne) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionEventUpdateOne) Select(field string, fields ...string) *DecisionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionEvent entity.
func (_u *DecisionEventUpdateOne) Save(ctx context.Context) (*DecisionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) SaveX(ctx context.Context) *DecisionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DecisionEventUpdateOne) sqlSave(ctx context.Context) (_node *DecisionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionevent.FieldID)
		for _, f := range fields {
			if !decisionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionevent.FieldID {
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
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(decisionevent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decisionevent.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.TagCount(); ok {
		_spec.SetField(decisionevent.FieldTagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTagCount(); ok {
		_spec.AddField(decisionevent.FieldTagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(decisionevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.PerformanceLevel(); ok {
		_spec.SetField(decisionevent.FieldPerformanceLevel, field.TypeString, value)
	}
	_node = &DecisionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
