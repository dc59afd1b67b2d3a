// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/samacademy/cohortgen/ent/task"
	"github.com/samacademy/cohortgen/internal/content"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *TaskCreate) SetKind(v string) *TaskCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TaskCreate) SetTopic(v string) *TaskCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v string) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *string) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetClassID sets the "class_id" field.
func (_c *TaskCreate) SetClassID(v int) *TaskCreate {
	_c.mutation.SetClassID(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *TaskCreate) SetParentID(v int) *TaskCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableParentID(v *int) *TaskCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *TaskCreate) SetGroupID(v int) *TaskCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableGroupID(v *int) *TaskCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetCombo sets the "combo" field.
func (_c *TaskCreate) SetCombo(v content.Combo) *TaskCreate {
	_c.mutation.SetCombo(v)
	return _c
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCombo(v *content.Combo) *TaskCreate {
	if v != nil {
		_c.SetCombo(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *TaskCreate) SetPayload(v content.Payload) *TaskCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePayload(v *content.Payload) *TaskCreate {
	if v != nil {
		_c.SetPayload(*v)
	}
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *TaskCreate) SetPurpose(v string) *TaskCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePurpose(v *string) *TaskCreate {
	if v != nil {
		_c.SetPurpose(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *TaskCreate) SetGrade(v string) *TaskCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *TaskCreate) SetSubject(v string) *TaskCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetLengthMinutes sets the "length_minutes" field.
func (_c *TaskCreate) SetLengthMinutes(v int) *TaskCreate {
	_c.mutation.SetLengthMinutes(v)
	return _c
}

// SetNillableLengthMinutes sets the "length_minutes" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLengthMinutes(v *int) *TaskCreate {
	if v != nil {
		_c.SetLengthMinutes(*v)
	}
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *TaskCreate) SetQuestionType(v string) *TaskCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *TaskCreate) SetNillableQuestionType(v *string) *TaskCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetNumQuestions sets the "num_questions" field.
func (_c *TaskCreate) SetNumQuestions(v int) *TaskCreate {
	_c.mutation.SetNumQuestions(v)
	return _c
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_c *TaskCreate) SetNillableNumQuestions(v *int) *TaskCreate {
	if v != nil {
		_c.SetNumQuestions(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		v := task.DefaultPurpose
		_c.mutation.SetPurpose(v)
	}
	if _, ok := _c.mutation.LengthMinutes(); !ok {
		v := task.DefaultLengthMinutes
		_c.mutation.SetLengthMinutes(v)
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := task.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
	if _, ok := _c.mutation.NumQuestions(); !ok {
		v := task.DefaultNumQuestions
		_c.mutation.SetNumQuestions(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Task.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := task.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Task.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Task.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := task.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Task.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if _, ok := _c.mutation.ClassID(); !ok {
		return &ValidationError{Name: "class_id", err: errors.New(`ent: missing required field "Task.class_id"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "Task.purpose"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "Task.grade"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Task.subject"`)}
	}
	if _, ok := _c.mutation.LengthMinutes(); !ok {
		return &ValidationError{Name: "length_minutes", err: errors.New(`ent: missing required field "Task.length_minutes"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Task.question_type"`)}
	}
	if _, ok := _c.mutation.NumQuestions(); !ok {
		return &ValidationError{Name: "num_questions", err: errors.New(`ent: missing required field "Task.num_questions"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(task.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(task.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ClassID(); ok {
		_spec.SetField(task.FieldClassID, field.TypeInt, value)
		_node.ClassID = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(task.FieldParentID, field.TypeInt, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(task.FieldGroupID, field.TypeInt, value)
		_node.GroupID = &value
	}
	if value, ok := _c.mutation.Combo(); ok {
		_spec.SetField(task.FieldCombo, field.TypeJSON, value)
		_node.Combo = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(task.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(task.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(task.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(task.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.LengthMinutes(); ok {
		_spec.SetField(task.FieldLengthMinutes, field.TypeInt, value)
		_node.LengthMinutes = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(task.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.NumQuestions(); ok {
		_spec.SetField(task.FieldNumQuestions, field.TypeInt, value)
		_node.NumQuestions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
