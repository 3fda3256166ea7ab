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
	"github.com/ankur/codedrill/ent/predicate"
	"github.com/ankur/codedrill/ent/usersettings"
)

// UserSettingsUpdate is the builder for updating UserSettings entities.
type UserSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *UserSettingsMutation
}

// Where appends a list predicates to the UserSettingsUpdate builder.
func (_u *UserSettingsUpdate) Where(ps ...predicate.UserSettings) *UserSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSingletonID sets the "singleton_id" field.
func (_u *UserSettingsUpdate) SetSingletonID(v int) *UserSettingsUpdate {
	_u.mutation.ResetSingletonID()
	_u.mutation.SetSingletonID(v)
	return _u
}

// SetNillableSingletonID sets the "singleton_id" field if the given value is not nil.
func (_u *UserSettingsUpdate) SetNillableSingletonID(v *int) *UserSettingsUpdate {
	if v != nil {
		_u.SetSingletonID(*v)
	}
	return _u
}

// AddSingletonID adds value to the "singleton_id" field.
func (_u *UserSettingsUpdate) AddSingletonID(v int) *UserSettingsUpdate {
	_u.mutation.AddSingletonID(v)
	return _u
}

// SetPreferredTopics sets the "preferred_topics" field.
func (_u *UserSettingsUpdate) SetPreferredTopics(v []string) *UserSettingsUpdate {
	_u.mutation.SetPreferredTopics(v)
	return _u
}

// AppendPreferredTopics appends value to the "preferred_topics" field.
func (_u *UserSettingsUpdate) AppendPreferredTopics(v []string) *UserSettingsUpdate {
	_u.mutation.AppendPreferredTopics(v)
	return _u
}

// ClearPreferredTopics clears the value of the "preferred_topics" field.
func (_u *UserSettingsUpdate) ClearPreferredTopics() *UserSettingsUpdate {
	_u.mutation.ClearPreferredTopics()
	return _u
}

// SetTierOverride sets the "tier_override" field.
func (_u *UserSettingsUpdate) SetTierOverride(v string) *UserSettingsUpdate {
	_u.mutation.SetTierOverride(v)
	return _u
}

// SetNillableTierOverride sets the "tier_override" field if the given value is not nil.
func (_u *UserSettingsUpdate) SetNillableTierOverride(v *string) *UserSettingsUpdate {
	if v != nil {
		_u.SetTierOverride(*v)
	}
	return _u
}

// ClearTierOverride clears the value of the "tier_override" field.
func (_u *UserSettingsUpdate) ClearTierOverride() *UserSettingsUpdate {
	_u.mutation.ClearTierOverride()
	return _u
}

// Mutation returns the UserSettingsMutation object of the builder.
func (_u *UserSettingsUpdate) Mutation() *UserSettingsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserSettingsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(usersettings.Table, usersettings.Columns, sqlgraph.NewFieldSpec(usersettings.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SingletonID(); ok {
		_spec.SetField(usersettings.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSingletonID(); ok {
		_spec.AddField(usersettings.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredTopics(); ok {
		_spec.SetField(usersettings.FieldPreferredTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, usersettings.FieldPreferredTopics, value)
		})
	}
	if _u.mutation.PreferredTopicsCleared() {
		_spec.ClearField(usersettings.FieldPreferredTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.TierOverride(); ok {
		_spec.SetField(usersettings.FieldTierOverride, field.TypeString, value)
	}
	if _u.mutation.TierOverrideCleared() {
		_spec.ClearField(usersettings.FieldTierOverride, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usersettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserSettingsUpdateOne is the builder for updating a single UserSettings entity.
type UserSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserSettingsMutation
}

// SetSingletonID sets the "singleton_id" field.
func (_u *UserSettingsUpdateOne) SetSingletonID(v int) *UserSettingsUpdateOne {
	_u.mutation.ResetSingletonID()
	_u.mutation.SetSingletonID(v)
	return _u
}

// SetNillableSingletonID sets the "singleton_id" field if the given value is not nil.
func (_u *UserSettingsUpdateOne) SetNillableSingletonID(v *int) *UserSettingsUpdateOne {
	if v != nil {
		_u.SetSingletonID(*v)
	}
	return _u
}

// AddSingletonID adds value to the "singleton_id" field.
func (_u *UserSettingsUpdateOne) AddSingletonID(v int) *UserSettingsUpdateOne {
	_u.mutation.AddSingletonID(v)
	return _u
}

// SetPreferredTopics sets the "preferred_topics" field.
func (_u *UserSettingsUpdateOne) SetPreferredTopics(v []string) *UserSettingsUpdateOne {
	_u.mutation.SetPreferredTopics(v)
	return _u
}

// AppendPreferredTopics appends value to the "preferred_topics" field.
func (_u *UserSettingsUpdateOne) AppendPreferredTopics(v []string) *UserSettingsUpdateOne {
	_u.mutation.AppendPreferredTopics(v)
	return _u
}

// ClearPreferredTopics clears the value of the "preferred_topics" field.
func (_u *UserSettingsUpdateOne) ClearPreferredTopics() *UserSettingsUpdateOne {
	_u.mutation.ClearPreferredTopics()
	return _u
}

// SetTierOverride sets the "tier_override" field.
func (_u *UserSettingsUpdateOne) SetTierOverride(v string) *UserSettingsUpdateOne {
	_u.mutation.SetTierOverride(v)
	return _u
}

// SetNillableTierOverride sets the "tier_override" field if the given value is not nil.
func (_u *UserSettingsUpdateOne) SetNillableTierOverride(v *string) *UserSettingsUpdateOne {
	if v != nil {
		_u.SetTierOverride(*v)
	}
	return _u
}

// ClearTierOverride clears the value of the "tier_override" field.
func (_u *UserSettingsUpdateOne) ClearTierOverride() *UserSettingsUpdateOne {
	_u.mutation.ClearTierOverride()
	return _u
}

// Mutation returns the UserSettingsMutation object of the builder.
func (_u *UserSettingsUpdateOne) Mutation() *UserSettingsMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserSettingsUpdate builder.
func (_u *UserSettingsUpdateOne) Where(ps ...predicate.UserSettings) *UserSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserSettingsUpdateOne) Select(field string, fields ...string) *UserSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserSettings entity.
func (_u *UserSettingsUpdateOne) Save(ctx context.Context) (*UserSettings, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSettingsUpdateOne) SaveX(ctx context.Context) *UserSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserSettingsUpdateOne) sqlSave(ctx context.Context) (_node *UserSettings, err error) {
	_spec := sqlgraph.NewUpdateSpec(usersettings.Table, usersettings.Columns, sqlgraph.NewFieldSpec(usersettings.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usersettings.FieldID)
		for _, f := range fields {
			if !usersettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usersettings.FieldID {
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
		_spec.SetField(usersettings.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSingletonID(); ok {
		_spec.AddField(usersettings.FieldSingletonID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredTopics(); ok {
		_spec.SetField(usersettings.FieldPreferredTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, usersettings.FieldPreferredTopics, value)
		})
	}
	if _u.mutation.PreferredTopicsCleared() {
		_spec.ClearField(usersettings.FieldPreferredTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.TierOverride(); ok {
		_spec.SetField(usersettings.FieldTierOverride, field.TypeString, value)
	}
	if _u.mutation.TierOverrideCleared() {
		_spec.ClearField(usersettings.FieldTierOverride, field.TypeString)
	}
	_node = &UserSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usersettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
