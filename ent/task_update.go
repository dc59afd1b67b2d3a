// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/samacademy/cohortgen/ent/predicate"
	"github.com/samacademy/cohortgen/ent/task"
	"github.com/samacademy/cohortgen/internal/content"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *TaskUpdate) SetKind(v string) *TaskUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableKind(v *string) *TaskUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TaskUpdate) SetTopic(v string) *TaskUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTopic(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v string) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *string) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *TaskUpdate) SetClassID(v int) *TaskUpdate {
	_u.mutation.ResetClassID()
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableClassID(v *int) *TaskUpdate {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// AddClassID adds value to the "class_id" field.
func (_u *TaskUpdate) AddClassID(v int) *TaskUpdate {
	_u.mutation.AddClassID(v)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *TaskUpdate) SetParentID(v int) *TaskUpdate {
	_u.mutation.ResetParentID()
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableParentID(v *int) *TaskUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// AddParentID adds value to the "parent_id" field.
func (_u *TaskUpdate) AddParentID(v int) *TaskUpdate {
	_u.mutation.AddParentID(v)
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *TaskUpdate) ClearParentID() *TaskUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *TaskUpdate) SetGroupID(v int) *TaskUpdate {
	_u.mutation.ResetGroupID()
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableGroupID(v *int) *TaskUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// AddGroupID adds value to the "group_id" field.
func (_u *TaskUpdate) AddGroupID(v int) *TaskUpdate {
	_u.mutation.AddGroupID(v)
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *TaskUpdate) ClearGroupID() *TaskUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetCombo sets the "combo" field.
func (_u *TaskUpdate) SetCombo(v content.Combo) *TaskUpdate {
	_u.mutation.SetCombo(v)
	return _u
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCombo(v *content.Combo) *TaskUpdate {
	if v != nil {
		_u.SetCombo(*v)
	}
	return _u
}

// ClearCombo clears the value of the "combo" field.
func (_u *TaskUpdate) ClearCombo() *TaskUpdate {
	_u.mutation.ClearCombo()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TaskUpdate) SetPayload(v content.Payload) *TaskUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePayload(v *content.Payload) *TaskUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *TaskUpdate) ClearPayload() *TaskUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *TaskUpdate) SetPurpose(v string) *TaskUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePurpose(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *TaskUpdate) SetGrade(v string) *TaskUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableGrade(v *string) *TaskUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TaskUpdate) SetSubject(v string) *TaskUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSubject(v *string) *TaskUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLengthMinutes sets the "length_minutes" field.
func (_u *TaskUpdate) SetLengthMinutes(v int) *TaskUpdate {
	_u.mutation.ResetLengthMinutes()
	_u.mutation.SetLengthMinutes(v)
	return _u
}

// SetNillableLengthMinutes sets the "length_minutes" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLengthMinutes(v *int) *TaskUpdate {
	if v != nil {
		_u.SetLengthMinutes(*v)
	}
	return _u
}

// AddLengthMinutes adds value to the "length_minutes" field.
func (_u *TaskUpdate) AddLengthMinutes(v int) *TaskUpdate {
	_u.mutation.AddLengthMinutes(v)
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *TaskUpdate) SetQuestionType(v string) *TaskUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableQuestionType(v *string) *TaskUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetNumQuestions sets the "num_questions" field.
func (_u *TaskUpdate) SetNumQuestions(v int) *TaskUpdate {
	_u.mutation.ResetNumQuestions()
	_u.mutation.SetNumQuestions(v)
	return _u
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableNumQuestions(v *int) *TaskUpdate {
	if v != nil {
		_u.SetNumQuestions(*v)
	}
	return _u
}

// AddNumQuestions adds value to the "num_questions" field.
func (_u *TaskUpdate) AddNumQuestions(v int) *TaskUpdate {
	_u.mutation.AddNumQuestions(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := task.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Task.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := task.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Task.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(task.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(task.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(task.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClassID(); ok {
		_spec.AddField(task.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(task.FieldParentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParentID(); ok {
		_spec.AddField(task.FieldParentID, field.TypeInt, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(task.FieldParentID, field.TypeInt)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(task.FieldGroupID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupID(); ok {
		_spec.AddField(task.FieldGroupID, field.TypeInt, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(task.FieldGroupID, field.TypeInt)
	}
	if value, ok := _u.mutation.Combo(); ok {
		_spec.SetField(task.FieldCombo, field.TypeJSON, value)
	}
	if _u.mutation.ComboCleared() {
		_spec.ClearField(task.FieldCombo, field.TypeJSON)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(task.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(task.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(task.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(task.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(task.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.LengthMinutes(); ok {
		_spec.SetField(task.FieldLengthMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLengthMinutes(); ok {
		_spec.AddField(task.FieldLengthMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(task.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumQuestions(); ok {
		_spec.SetField(task.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumQuestions(); ok {
		_spec.AddField(task.FieldNumQuestions, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetKind sets the "kind" field.
func (_u *TaskUpdateOne) SetKind(v string) *TaskUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableKind(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TaskUpdateOne) SetTopic(v string) *TaskUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTopic(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v string) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *TaskUpdateOne) SetClassID(v int) *TaskUpdateOne {
	_u.mutation.ResetClassID()
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableClassID(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// AddClassID adds value to the "class_id" field.
func (_u *TaskUpdateOne) AddClassID(v int) *TaskUpdateOne {
	_u.mutation.AddClassID(v)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *TaskUpdateOne) SetParentID(v int) *TaskUpdateOne {
	_u.mutation.ResetParentID()
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParentID(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// AddParentID adds value to the "parent_id" field.
func (_u *TaskUpdateOne) AddParentID(v int) *TaskUpdateOne {
	_u.mutation.AddParentID(v)
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *TaskUpdateOne) ClearParentID() *TaskUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *TaskUpdateOne) SetGroupID(v int) *TaskUpdateOne {
	_u.mutation.ResetGroupID()
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableGroupID(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// AddGroupID adds value to the "group_id" field.
func (_u *TaskUpdateOne) AddGroupID(v int) *TaskUpdateOne {
	_u.mutation.AddGroupID(v)
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *TaskUpdateOne) ClearGroupID() *TaskUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetCombo sets the "combo" field.
func (_u *TaskUpdateOne) SetCombo(v content.Combo) *TaskUpdateOne {
	_u.mutation.SetCombo(v)
	return _u
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCombo(v *content.Combo) *TaskUpdateOne {
	if v != nil {
		_u.SetCombo(*v)
	}
	return _u
}

// ClearCombo clears the value of the "combo" field.
func (_u *TaskUpdateOne) ClearCombo() *TaskUpdateOne {
	_u.mutation.ClearCombo()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TaskUpdateOne) SetPayload(v content.Payload) *TaskUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePayload(v *content.Payload) *TaskUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *TaskUpdateOne) ClearPayload() *TaskUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *TaskUpdateOne) SetPurpose(v string) *TaskUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePurpose(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *TaskUpdateOne) SetGrade(v string) *TaskUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableGrade(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TaskUpdateOne) SetSubject(v string) *TaskUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSubject(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLengthMinutes sets the "length_minutes" field.
func (_u *TaskUpdateOne) SetLengthMinutes(v int) *TaskUpdateOne {
	_u.mutation.ResetLengthMinutes()
	_u.mutation.SetLengthMinutes(v)
	return _u
}

// SetNillableLengthMinutes sets the "length_minutes" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLengthMinutes(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetLengthMinutes(*v)
	}
	return _u
}

// AddLengthMinutes adds value to the "length_minutes" field.
func (_u *TaskUpdateOne) AddLengthMinutes(v int) *TaskUpdateOne {
	_u.mutation.AddLengthMinutes(v)
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *TaskUpdateOne) SetQuestionType(v string) *TaskUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableQuestionType(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetNumQuestions sets the "num_questions" field.
func (_u *TaskUpdateOne) SetNumQuestions(v int) *TaskUpdateOne {
	_u.mutation.ResetNumQuestions()
	_u.mutation.SetNumQuestions(v)
	return _u
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableNumQuestions(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetNumQuestions(*v)
	}
	return _u
}

// AddNumQuestions adds value to the "num_questions" field.
func (_u *TaskUpdateOne) AddNumQuestions(v int) *TaskUpdateOne {
	_u.mutation.AddNumQuestions(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := task.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Task.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := task.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Task.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(task.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(task.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(task.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClassID(); ok {
		_spec.AddField(task.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(task.FieldParentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParentID(); ok {
		_spec.AddField(task.FieldParentID, field.TypeInt, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(task.FieldParentID, field.TypeInt)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(task.FieldGroupID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupID(); ok {
		_spec.AddField(task.FieldGroupID, field.TypeInt, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(task.FieldGroupID, field.TypeInt)
	}
	if value, ok := _u.mutation.Combo(); ok {
		_spec.SetField(task.FieldCombo, field.TypeJSON, value)
	}
	if _u.mutation.ComboCleared() {
		_spec.ClearField(task.FieldCombo, field.TypeJSON)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(task.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(task.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(task.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(task.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(task.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.LengthMinutes(); ok {
		_spec.SetField(task.FieldLengthMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLengthMinutes(); ok {
		_spec.AddField(task.FieldLengthMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(task.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumQuestions(); ok {
		_spec.SetField(task.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumQuestions(); ok {
		_spec.AddField(task.FieldNumQuestions, field.TypeInt, value)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
