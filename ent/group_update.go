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
	"github.com/samacademy/cohortgen/ent/group"
	"github.com/samacademy/cohortgen/ent/predicate"
	"github.com/samacademy/cohortgen/internal/content"
)

// GroupUpdate is the builder for updating Group entities.
type GroupUpdate struct {
	config
	hooks    []Hook
	mutation *GroupMutation
}

// Where appends a list predicates to the GroupUpdate builder.
func (_u *GroupUpdate) Where(ps ...predicate.Group) *GroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *GroupUpdate) SetTaskID(v int) *GroupUpdate {
	_u.mutation.ResetTaskID()
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableTaskID(v *int) *GroupUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// AddTaskID adds value to the "task_id" field.
func (_u *GroupUpdate) AddTaskID(v int) *GroupUpdate {
	_u.mutation.AddTaskID(v)
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *GroupUpdate) SetClassID(v int) *GroupUpdate {
	_u.mutation.ResetClassID()
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableClassID(v *int) *GroupUpdate {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// AddClassID adds value to the "class_id" field.
func (_u *GroupUpdate) AddClassID(v int) *GroupUpdate {
	_u.mutation.AddClassID(v)
	return _u
}

// SetNumber sets the "number" field.
func (_u *GroupUpdate) SetNumber(v int) *GroupUpdate {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableNumber(v *int) *GroupUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *GroupUpdate) AddNumber(v int) *GroupUpdate {
	_u.mutation.AddNumber(v)
	return _u
}

// SetMembers sets the "members" field.
func (_u *GroupUpdate) SetMembers(v []string) *GroupUpdate {
	_u.mutation.SetMembers(v)
	return _u
}

// AppendMembers appends value to the "members" field.
func (_u *GroupUpdate) AppendMembers(v []string) *GroupUpdate {
	_u.mutation.AppendMembers(v)
	return _u
}

// SetCombo sets the "combo" field.
func (_u *GroupUpdate) SetCombo(v content.Combo) *GroupUpdate {
	_u.mutation.SetCombo(v)
	return _u
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableCombo(v *content.Combo) *GroupUpdate {
	if v != nil {
		_u.SetCombo(*v)
	}
	return _u
}

// SetVariantTaskID sets the "variant_task_id" field.
func (_u *GroupUpdate) SetVariantTaskID(v int) *GroupUpdate {
	_u.mutation.ResetVariantTaskID()
	_u.mutation.SetVariantTaskID(v)
	return _u
}

// SetNillableVariantTaskID sets the "variant_task_id" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableVariantTaskID(v *int) *GroupUpdate {
	if v != nil {
		_u.SetVariantTaskID(*v)
	}
	return _u
}

// AddVariantTaskID adds value to the "variant_task_id" field.
func (_u *GroupUpdate) AddVariantTaskID(v int) *GroupUpdate {
	_u.mutation.AddVariantTaskID(v)
	return _u
}

// ClearVariantTaskID clears the value of the "variant_task_id" field.
func (_u *GroupUpdate) ClearVariantTaskID() *GroupUpdate {
	_u.mutation.ClearVariantTaskID()
	return _u
}

// Mutation returns the GroupMutation object of the builder.
func (_u *GroupUpdate) Mutation() *GroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupUpdate) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := group.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Group.number": %w`, err)}
		}
	}
	return nil
}

func (_u *GroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(group.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskID(); ok {
		_spec.AddField(group.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(group.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClassID(); ok {
		_spec.AddField(group.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(group.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(group.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Members(); ok {
		_spec.SetField(group.FieldMembers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMembers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, group.FieldMembers, value)
		})
	}
	if value, ok := _u.mutation.Combo(); ok {
		_spec.SetField(group.FieldCombo, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.VariantTaskID(); ok {
		_spec.SetField(group.FieldVariantTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVariantTaskID(); ok {
		_spec.AddField(group.FieldVariantTaskID, field.TypeInt, value)
	}
	if _u.mutation.VariantTaskIDCleared() {
		_spec.ClearField(group.FieldVariantTaskID, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupUpdateOne is the builder for updating a single Group entity.
type GroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupMutation
}

// SetTaskID sets the "task_id" field.
func (_u *GroupUpdateOne) SetTaskID(v int) *GroupUpdateOne {
	_u.mutation.ResetTaskID()
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableTaskID(v *int) *GroupUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// AddTaskID adds value to the "task_id" field.
func (_u *GroupUpdateOne) AddTaskID(v int) *GroupUpdateOne {
	_u.mutation.AddTaskID(v)
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *GroupUpdateOne) SetClassID(v int) *GroupUpdateOne {
	_u.mutation.ResetClassID()
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableClassID(v *int) *GroupUpdateOne {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// AddClassID adds value to the "class_id" field.
func (_u *GroupUpdateOne) AddClassID(v int) *GroupUpdateOne {
	_u.mutation.AddClassID(v)
	return _u
}

// SetNumber sets the "number" field.
func (_u *GroupUpdateOne) SetNumber(v int) *GroupUpdateOne {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableNumber(v *int) *GroupUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *GroupUpdateOne) AddNumber(v int) *GroupUpdateOne {
	_u.mutation.AddNumber(v)
	return _u
}

// SetMembers sets the "members" field.
func (_u *GroupUpdateOne) SetMembers(v []string) *GroupUpdateOne {
	_u.mutation.SetMembers(v)
	return _u
}

// AppendMembers appends value to the "members" field.
func (_u *GroupUpdateOne) AppendMembers(v []string) *GroupUpdateOne {
	_u.mutation.AppendMembers(v)
	return _u
}

// SetCombo sets the "combo" field.
func (_u *GroupUpdateOne) SetCombo(v content.Combo) *GroupUpdateOne {
	_u.mutation.SetCombo(v)
	return _u
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableCombo(v *content.Combo) *GroupUpdateOne {
	if v != nil {
		_u.SetCombo(*v)
	}
	return _u
}

// SetVariantTaskID sets the "variant_task_id" field.
func (_u *GroupUpdateOne) SetVariantTaskID(v int) *GroupUpdateOne {
	_u.mutation.ResetVariantTaskID()
	_u.mutation.SetVariantTaskID(v)
	return _u
}

// SetNillableVariantTaskID sets the "variant_task_id" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableVariantTaskID(v *int) *GroupUpdateOne {
	if v != nil {
		_u.SetVariantTaskID(*v)
	}
	return _u
}

// AddVariantTaskID adds value to the "variant_task_id" field.
func (_u *GroupUpdateOne) AddVariantTaskID(v int) *GroupUpdateOne {
	_u.mutation.AddVariantTaskID(v)
	return _u
}

// ClearVariantTaskID clears the value of the "variant_task_id" field.
func (_u *GroupUpdateOne) ClearVariantTaskID() *GroupUpdateOne {
	_u.mutation.ClearVariantTaskID()
	return _u
}

// Mutation returns the GroupMutation object of the builder.
func (_u *GroupUpdateOne) Mutation() *GroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the GroupUpdate builder.
func (_u *GroupUpdateOne) Where(ps ...predicate.Group) *GroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupUpdateOne) Select(field string, fields ...string) *GroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Group entity.
func (_u *GroupUpdateOne) Save(ctx context.Context) (*Group, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupUpdateOne) SaveX(ctx context.Context) *Group {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupUpdateOne) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := group.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Group.number": %w`, err)}
		}
	}
	return nil
}

func (_u *GroupUpdateOne) sqlSave(ctx context.Context) (_node *Group, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Group.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, group.FieldID)
		for _, f := range fields {
			if !group.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != group.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(group.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskID(); ok {
		_spec.AddField(group.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(group.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClassID(); ok {
		_spec.AddField(group.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(group.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(group.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Members(); ok {
		_spec.SetField(group.FieldMembers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMembers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, group.FieldMembers, value)
		})
	}
	if value, ok := _u.mutation.Combo(); ok {
		_spec.SetField(group.FieldCombo, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.VariantTaskID(); ok {
		_spec.SetField(group.FieldVariantTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVariantTaskID(); ok {
		_spec.AddField(group.FieldVariantTaskID, field.TypeInt, value)
	}
	if _u.mutation.VariantTaskIDCleared() {
		_spec.ClearField(group.FieldVariantTaskID, field.TypeInt)
	}
	_node = &Group{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
