// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankur/codedrill/ent/tagmastery"
)

// TagMasteryCreate is the builder for creating a TagMastery entity.
type TagMasteryCreate struct {
	config
	mutation *TagMasteryMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *TagMasteryCreate) SetTopic(v string) *TagMasteryCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *TagMasteryCreate) SetTotalAttempts(v int) *TagMasteryCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *TagMasteryCreate) SetNillableTotalAttempts(v *int) *TagMasteryCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetSuccessfulAttempts sets the "successful_attempts" field.
func (_c *TagMasteryCreate) SetSuccessfulAttempts(v int) *TagMasteryCreate {
	_c.mutation.SetSuccessfulAttempts(v)
	return _c
}

// SetNillableSuccessfulAttempts sets the "successful_attempts" field if the given value is not nil.
func (_c *TagMasteryCreate) SetNillableSuccessfulAttempts(v *int) *TagMasteryCreate {
	if v != nil {
		_c.SetSuccessfulAttempts(*v)
	}
	return _c
}

// SetDecayScore sets the "decay_score" field.
func (_c *TagMasteryCreate) SetDecayScore(v float64) *TagMasteryCreate {
	_c.mutation.SetDecayScore(v)
	return _c
}

// SetNillableDecayScore sets the "decay_score" field if the given value is not nil.
func (_c *TagMasteryCreate) SetNillableDecayScore(v *float64) *TagMasteryCreate {
	if v != nil {
		_c.SetDecayScore(*v)
	}
	return _c
}

// SetMastered sets the "mastered" field.
func (_c *TagMasteryCreate) SetMastered(v bool) *TagMasteryCreate {
	_c.mutation.SetMastered(v)
	return _c
}

// SetNillableMastered sets the "mastered" field if the given value is not nil.
func (_c *TagMasteryCreate) SetNillableMastered(v *bool) *TagMasteryCreate {
	if v != nil {
		_c.SetMastered(*v)
	}
	return _c
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_c *TagMasteryCreate) SetLastSuccessAt(v time.Time) *TagMasteryCreate {
	_c.mutation.SetLastSuccessAt(v)
	return _c
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_c *TagMasteryCreate) SetNillableLastSuccessAt(v *time.Time) *TagMasteryCreate {
	if v != nil {
		_c.SetLastSuccessAt(*v)
	}
	return _c
}

// Mutation returns the TagMasteryMutation object of the builder.
func (_c *TagMasteryCreate) Mutation() *TagMasteryMutation {
	return _c.mutation
}

// Save creates the TagMastery in the database.
func (_c *TagMasteryCreate) Save(ctx context.Context) (*TagMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TagMasteryCreate) SaveX(ctx context.Context) *TagMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TagMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TagMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TagMasteryCreate) defaults() {
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := tagmastery.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.SuccessfulAttempts(); !ok {
		v := tagmastery.DefaultSuccessfulAttempts
		_c.mutation.SetSuccessfulAttempts(v)
	}
	if _, ok := _c.mutation.DecayScore(); !ok {
		v := tagmastery.DefaultDecayScore
		_c.mutation.SetDecayScore(v)
	}
	if _, ok := _c.mutation.Mastered(); !ok {
		v := tagmastery.DefaultMastered
		_c.mutation.SetMastered(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TagMasteryCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "TagMastery.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := tagmastery.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TagMastery.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "TagMastery.total_attempts"`)}
	}
	if v, ok := _c.mutation.TotalAttempts(); ok {
		if err := tagmastery.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "TagMastery.total_attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuccessfulAttempts(); !ok {
		return &ValidationError{Name: "successful_attempts", err: errors.New(`ent: missing required field "TagMastery.successful_attempts"`)}
	}
	if v, ok := _c.mutation.SuccessfulAttempts(); ok {
		if err := tagmastery.SuccessfulAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "successful_attempts", err: fmt.Errorf(`ent: validator failed for field "TagMastery.successful_attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DecayScore(); !ok {
		return &ValidationError{Name: "decay_score", err: errors.New(`ent: missing required field "TagMastery.decay_score"`)}
	}
	if _, ok := _c.mutation.Mastered(); !ok {
		return &ValidationError{Name: "mastered", err: errors.New(`ent: missing required field "TagMastery.mastered"`)}
	}
	return nil
}

func (_c *TagMasteryCreate) sqlSave(ctx context.Context) (*TagMastery, error) {
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

func (_c *TagMasteryCreate) createSpec() (*TagMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &TagMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tagmastery.Table, sqlgraph.NewFieldSpec(tagmastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(tagmastery.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(tagmastery.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.SuccessfulAttempts(); ok {
		_spec.SetField(tagmastery.FieldSuccessfulAttempts, field.TypeInt, value)
		_node.SuccessfulAttempts = value
	}
	if value, ok := _c.mutation.DecayScore(); ok {
		_spec.SetField(tagmastery.FieldDecayScore, field.TypeFloat64, value)
		_node.DecayScore = value
	}
	if value, ok := _c.mutation.Mastered(); ok {
		_spec.SetField(tagmastery.FieldMastered, field.TypeBool, value)
		_node.Mastered = value
	}
	if value, ok := _c.mutation.LastSuccessAt(); ok {
		_spec.SetField(tagmastery.FieldLastSuccessAt, field.TypeTime, value)
		_node.LastSuccessAt = &value
	}
	return _node, _spec
}

// TagMasteryCreateBulk is the builder for creating many TagMastery entities in bulk.
type TagMasteryCreateBulk struct {
	config
	err      error
	builders []*TagMasteryCreate
}

// Save creates the TagMastery entities in the database.
func (_c *TagMasteryCreateBulk) Save(ctx context.Context) ([]*TagMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TagMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TagMasteryMutation)
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
func (_c *TagMasteryCreateBulk) SaveX(ctx context.Context) []*TagMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TagMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TagMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
