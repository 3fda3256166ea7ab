// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankur/codedrill/ent/learnerstate"
	"github.com/ankur/codedrill/ent/schema"
)

// LearnerStateCreate is the builder for creating a LearnerState entity.
type LearnerStateCreate struct {
	config
	mutation *LearnerStateMutation
	hooks    []Hook
}

// SetSingletonID sets the "singleton_id" field.
func (_c *LearnerStateCreate) SetSingletonID(v int) *LearnerStateCreate {
	_c.mutation.SetSingletonID(v)
	return _c
}

// SetSessionsCompleted sets the "sessions_completed" field.
func (_c *LearnerStateCreate) SetSessionsCompleted(v int) *LearnerStateCreate {
	_c.mutation.SetSessionsCompleted(v)
	return _c
}

// SetNillableSessionsCompleted sets the "sessions_completed" field if the given value is not nil.
func (_c *LearnerStateCreate) SetNillableSessionsCompleted(v *int) *LearnerStateCreate {
	if v != nil {
		_c.SetSessionsCompleted(*v)
	}
	return _c
}

// SetLastAccuracy sets the "last_accuracy" field.
func (_c *LearnerStateCreate) SetLastAccuracy(v float64) *LearnerStateCreate {
	_c.mutation.SetLastAccuracy(v)
	return _c
}

// SetNillableLastAccuracy sets the "last_accuracy" field if the given value is not nil.
func (_c *LearnerStateCreate) SetNillableLastAccuracy(v *float64) *LearnerStateCreate {
	if v != nil {
		_c.SetLastAccuracy(*v)
	}
	return _c
}

// SetLastEfficiency sets the "last_efficiency" field.
func (_c *LearnerStateCreate) SetLastEfficiency(v float64) *LearnerStateCreate {
	_c.mutation.SetLastEfficiency(v)
	return _c
}

// SetNillableLastEfficiency sets the "last_efficiency" field if the given value is not nil.
func (_c *LearnerStateCreate) SetNillableLastEfficiency(v *float64) *LearnerStateCreate {
	if v != nil {
		_c.SetLastEfficiency(*v)
	}
	return _c
}

// SetFocusTags sets the "focus_tags" field.
func (_c *LearnerStateCreate) SetFocusTags(v []string) *LearnerStateCreate {
	_c.mutation.SetFocusTags(v)
	return _c
}

// SetTagCount sets the "tag_count" field.
func (_c *LearnerStateCreate) SetTagCount(v int) *LearnerStateCreate {
	_c.mutation.SetTagCount(v)
	return _c
}

// SetNillableTagCount sets the "tag_count" field if the given value is not nil.
func (_c *LearnerStateCreate) SetNillableTagCount(v *int) *LearnerStateCreate {
	if v != nil {
		_c.SetTagCount(*v)
	}
	return _c
}

// SetPerformanceLevel sets the "performance_level" field.
func (_c *LearnerStateCreate) SetPerformanceLevel(v string) *LearnerStateCreate {
	_c.mutation.SetPerformanceLevel(v)
	return _c
}

// SetNillablePerformanceLevel sets the "performance_level" field if the given value is not nil.
func (_c *LearnerStateCreate) SetNillablePerformanceLevel(v *string) *LearnerStateCreate {
	if v != nil {
		_c.SetPerformanceLevel(*v)
	}
	return _c
}

// SetDifficultyTimeStats sets the "difficulty_time_stats" field.
func (_c *LearnerStateCreate) SetDifficultyTimeStats(v map[string]schema.DifficultyTimeStat) *LearnerStateCreate {
	_c.mutation.SetDifficultyTimeStats(v)
	return _c
}

// SetLastProgressDate sets the "last_progress_date" field.
func (_c *LearnerStateCreate) SetLastProgressDate(v time.Time) *LearnerStateCreate {
	_c.mutation.SetLastProgressDate(v)
	return _c
}

// SetNillableLastProgressDate sets the "last_progress_date" field if the given value is not nil.
func (_c *LearnerStateCreate) SetNillableLastProgressDate(v *time.Time) *LearnerStateCreate {
	if v != nil {
		_c.SetLastProgressDate(*v)
	}
	return _c
}

// Mutation returns the LearnerStateMutation object of the builder.
func (_c *LearnerStateCreate) Mutation() *LearnerStateMutation {
	return _c.mutation
}

// Save creates the LearnerState in the database.
func (_c *LearnerStateCreate) Save(ctx context.Context) (*LearnerState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerStateCreate) SaveX(ctx context.Context) *LearnerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerStateCreate) defaults() {
	if _, ok := _c.mutation.SessionsCompleted(); !ok {
		v := learnerstate.DefaultSessionsCompleted
		_c.mutation.SetSessionsCompleted(v)
	}
	if _, ok := _c.mutation.LastAccuracy(); !ok {
		v := learnerstate.DefaultLastAccuracy
		_c.mutation.SetLastAccuracy(v)
	}
	if _, ok := _c.mutation.LastEfficiency(); !ok {
		v := learnerstate.DefaultLastEfficiency
		_c.mutation.SetLastEfficiency(v)
	}
	if _, ok := _c.mutation.TagCount(); !ok {
		v := learnerstate.DefaultTagCount
		_c.mutation.SetTagCount(v)
	}
	if _, ok := _c.mutation.PerformanceLevel(); !ok {
		v := learnerstate.DefaultPerformanceLevel
		_c.mutation.SetPerformanceLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerStateCreate) check() error {
	if _, ok := _c.mutation.SingletonID(); !ok {
		return &ValidationError{Name: "singleton_id", err: errors.New(`ent: missing required field "LearnerState.singleton_id"`)}
	}
	if _, ok := _c.mutation.SessionsCompleted(); !ok {
		return &ValidationError{Name: "sessions_completed", err: errors.New(`ent: missing required field "LearnerState.sessions_completed"`)}
	}
	if _, ok := _c.mutation.LastAccuracy(); !ok {
		return &ValidationError{Name: "last_accuracy", err: errors.New(`ent: missing required field "LearnerState.last_accuracy"`)}
	}
	if _, ok := _c.mutation.LastEfficiency(); !ok {
		return &ValidationError{Name: "last_efficiency", err: errors.New(`ent: missing required field "LearnerState.last_efficiency"`)}
	}
	if _, ok := _c.mutation.TagCount(); !ok {
		return &ValidationError{Name: "tag_count", err: errors.New(`ent: missing required field "LearnerState.tag_count"`)}
	}
	if _, ok := _c.mutation.PerformanceLevel(); !ok {
		return &ValidationError{Name: "performance_level", err: errors.New(`ent: missing required field "LearnerState.performance_level"`)}
	}
	return nil
}

func (_c *LearnerStateCreate) sqlSave(ctx context.Context) (*LearnerState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnerStateCreate) createSpec() (*LearnerState, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnerstate.Table, sqlgraph.NewFieldSpec(learnerstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SingletonID(); ok {
		_spec.SetField(learnerstate.FieldSingletonID, field.TypeInt, value)
		_node.SingletonID = value
	}
	if value, ok := _c.mutation.SessionsCompleted(); ok {
		_spec.SetField(learnerstate.FieldSessionsCompleted, field.TypeInt, value)
		_node.SessionsCompleted = value
	}
	if value, ok := _c.mutation.LastAccuracy(); ok {
		_spec.SetField(learnerstate.FieldLastAccuracy, field.TypeFloat64, value)
		_node.LastAccuracy = value
	}
	if value, ok := _c.mutation.LastEfficiency(); ok {
		_spec.SetField(learnerstate.FieldLastEfficiency, field.TypeFloat64, value)
		_node.LastEfficiency = value
	}
	if value, ok := _c.mutation.FocusTags(); ok {
		_spec.SetField(learnerstate.FieldFocusTags, field.TypeJSON, value)
		_node.FocusTags = value
	}
	if value, ok := _c.mutation.TagCount(); ok {
		_spec.SetField(learnerstate.FieldTagCount, field.TypeInt, value)
		_node.TagCount = value
	}
	if value, ok := _c.mutation.PerformanceLevel(); ok {
		_spec.SetField(learnerstate.FieldPerformanceLevel, field.TypeString, value)
		_node.PerformanceLevel = value
	}
	if value, ok := _c.mutation.DifficultyTimeStats(); ok {
		_spec.SetField(learnerstate.FieldDifficultyTimeStats, field.TypeJSON, value)
		_node.DifficultyTimeStats = value
	}
	if value, ok := _c.mutation.LastProgressDate(); ok {
		_spec.SetField(learnerstate.FieldLastProgressDate, field.TypeTime, value)
		_node.LastProgressDate = &value
	}
	return _node, _spec
}

// LearnerStateCreateBulk is the builder for creating many LearnerState entities in bulk.
type LearnerStateCreateBulk struct {
	config
	err      error
	builders []*LearnerStateCreate
}

// Save creates the LearnerState entities in the database.
func (_c *LearnerStateCreateBulk) Save(ctx context.Context) ([]*LearnerState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearnerStateCreateBulk) SaveX(ctx context.Context) []*LearnerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
