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
	"github.com/samacademy/cohortgen/ent/sessionfeedback"
	"github.com/samacademy/cohortgen/internal/content"
)

// SessionFeedbackUpdate is the builder for updating SessionFeedback entities.
type SessionFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *SessionFeedbackMutation
}

// Where appends a list predicates to the SessionFeedbackUpdate builder.
func (_u *SessionFeedbackUpdate) Where(ps ...predicate.SessionFeedback) *SessionFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionFeedbackUpdate) SetSessionID(v string) *SessionFeedbackUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableSessionID(v *string) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionFeedbackUpdate) SetLearnerID(v string) *SessionFeedbackUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableLearnerID(v *string) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *SessionFeedbackUpdate) SetClassID(v int) *SessionFeedbackUpdate {
	_u.mutation.ResetClassID()
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableClassID(v *int) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// AddClassID adds value to the "class_id" field.
func (_u *SessionFeedbackUpdate) AddClassID(v int) *SessionFeedbackUpdate {
	_u.mutation.AddClassID(v)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SessionFeedbackUpdate) SetTaskID(v int) *SessionFeedbackUpdate {
	_u.mutation.ResetTaskID()
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableTaskID(v *int) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// AddTaskID adds value to the "task_id" field.
func (_u *SessionFeedbackUpdate) AddTaskID(v int) *SessionFeedbackUpdate {
	_u.mutation.AddTaskID(v)
	return _u
}

// SetComboKey sets the "combo_key" field.
func (_u *SessionFeedbackUpdate) SetComboKey(v string) *SessionFeedbackUpdate {
	_u.mutation.SetComboKey(v)
	return _u
}

// SetNillableComboKey sets the "combo_key" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableComboKey(v *string) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetComboKey(*v)
	}
	return _u
}

// SetCombo sets the "combo" field.
func (_u *SessionFeedbackUpdate) SetCombo(v content.Combo) *SessionFeedbackUpdate {
	_u.mutation.SetCombo(v)
	return _u
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableCombo(v *content.Combo) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetCombo(*v)
	}
	return _u
}

// ClearCombo clears the value of the "combo" field.
func (_u *SessionFeedbackUpdate) ClearCombo() *SessionFeedbackUpdate {
	_u.mutation.ClearCombo()
	return _u
}

// SetKind sets the "kind" field.
func (_u *SessionFeedbackUpdate) SetKind(v string) *SessionFeedbackUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableKind(v *string) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionFeedbackUpdate) SetTopic(v string) *SessionFeedbackUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableTopic(v *string) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *SessionFeedbackUpdate) SetPurpose(v string) *SessionFeedbackUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillablePurpose(v *string) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetLengthBucket sets the "length_bucket" field.
func (_u *SessionFeedbackUpdate) SetLengthBucket(v string) *SessionFeedbackUpdate {
	_u.mutation.SetLengthBucket(v)
	return _u
}

// SetNillableLengthBucket sets the "length_bucket" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableLengthBucket(v *string) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetLengthBucket(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SessionFeedbackUpdate) SetGrade(v string) *SessionFeedbackUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableGrade(v *string) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SessionFeedbackUpdate) SetSubject(v string) *SessionFeedbackUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableSubject(v *string) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetClarity sets the "clarity" field.
func (_u *SessionFeedbackUpdate) SetClarity(v float64) *SessionFeedbackUpdate {
	_u.mutation.ResetClarity()
	_u.mutation.SetClarity(v)
	return _u
}

// SetNillableClarity sets the "clarity" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableClarity(v *float64) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetClarity(*v)
	}
	return _u
}

// AddClarity adds value to the "clarity" field.
func (_u *SessionFeedbackUpdate) AddClarity(v float64) *SessionFeedbackUpdate {
	_u.mutation.AddClarity(v)
	return _u
}

// SetEngagement sets the "engagement" field.
func (_u *SessionFeedbackUpdate) SetEngagement(v float64) *SessionFeedbackUpdate {
	_u.mutation.ResetEngagement()
	_u.mutation.SetEngagement(v)
	return _u
}

// SetNillableEngagement sets the "engagement" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableEngagement(v *float64) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetEngagement(*v)
	}
	return _u
}

// AddEngagement adds value to the "engagement" field.
func (_u *SessionFeedbackUpdate) AddEngagement(v float64) *SessionFeedbackUpdate {
	_u.mutation.AddEngagement(v)
	return _u
}

// SetCognitiveLoad sets the "cognitive_load" field.
func (_u *SessionFeedbackUpdate) SetCognitiveLoad(v float64) *SessionFeedbackUpdate {
	_u.mutation.ResetCognitiveLoad()
	_u.mutation.SetCognitiveLoad(v)
	return _u
}

// SetNillableCognitiveLoad sets the "cognitive_load" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableCognitiveLoad(v *float64) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetCognitiveLoad(*v)
	}
	return _u
}

// AddCognitiveLoad adds value to the "cognitive_load" field.
func (_u *SessionFeedbackUpdate) AddCognitiveLoad(v float64) *SessionFeedbackUpdate {
	_u.mutation.AddCognitiveLoad(v)
	return _u
}

// SetAttentionSpan sets the "attention_span" field.
func (_u *SessionFeedbackUpdate) SetAttentionSpan(v float64) *SessionFeedbackUpdate {
	_u.mutation.ResetAttentionSpan()
	_u.mutation.SetAttentionSpan(v)
	return _u
}

// SetNillableAttentionSpan sets the "attention_span" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableAttentionSpan(v *float64) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetAttentionSpan(*v)
	}
	return _u
}

// AddAttentionSpan adds value to the "attention_span" field.
func (_u *SessionFeedbackUpdate) AddAttentionSpan(v float64) *SessionFeedbackUpdate {
	_u.mutation.AddAttentionSpan(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SessionFeedbackUpdate) SetConfidence(v float64) *SessionFeedbackUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableConfidence(v *float64) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SessionFeedbackUpdate) AddConfidence(v float64) *SessionFeedbackUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFatigueTrend sets the "fatigue_trend" field.
func (_u *SessionFeedbackUpdate) SetFatigueTrend(v string) *SessionFeedbackUpdate {
	_u.mutation.SetFatigueTrend(v)
	return _u
}

// SetNillableFatigueTrend sets the "fatigue_trend" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableFatigueTrend(v *string) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetFatigueTrend(*v)
	}
	return _u
}

// SetFatigueSlope sets the "fatigue_slope" field.
func (_u *SessionFeedbackUpdate) SetFatigueSlope(v float64) *SessionFeedbackUpdate {
	_u.mutation.ResetFatigueSlope()
	_u.mutation.SetFatigueSlope(v)
	return _u
}

// SetNillableFatigueSlope sets the "fatigue_slope" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableFatigueSlope(v *float64) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetFatigueSlope(*v)
	}
	return _u
}

// AddFatigueSlope adds value to the "fatigue_slope" field.
func (_u *SessionFeedbackUpdate) AddFatigueSlope(v float64) *SessionFeedbackUpdate {
	_u.mutation.AddFatigueSlope(v)
	return _u
}

// SetRawMetrics sets the "raw_metrics" field.
func (_u *SessionFeedbackUpdate) SetRawMetrics(v map[string]float64) *SessionFeedbackUpdate {
	_u.mutation.SetRawMetrics(v)
	return _u
}

// ClearRawMetrics clears the value of the "raw_metrics" field.
func (_u *SessionFeedbackUpdate) ClearRawMetrics() *SessionFeedbackUpdate {
	_u.mutation.ClearRawMetrics()
	return _u
}

// SetSurveySubmissionID sets the "survey_submission_id" field.
func (_u *SessionFeedbackUpdate) SetSurveySubmissionID(v string) *SessionFeedbackUpdate {
	_u.mutation.SetSurveySubmissionID(v)
	return _u
}

// SetNillableSurveySubmissionID sets the "survey_submission_id" field if the given value is not nil.
func (_u *SessionFeedbackUpdate) SetNillableSurveySubmissionID(v *string) *SessionFeedbackUpdate {
	if v != nil {
		_u.SetSurveySubmissionID(*v)
	}
	return _u
}

// Mutation returns the SessionFeedbackMutation object of the builder.
func (_u *SessionFeedbackUpdate) Mutation() *SessionFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionFeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionFeedbackUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionfeedback.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionFeedback.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessionfeedback.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionFeedback.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionfeedback.Table, sessionfeedback.Columns, sqlgraph.NewFieldSpec(sessionfeedback.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionfeedback.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessionfeedback.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(sessionfeedback.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClassID(); ok {
		_spec.AddField(sessionfeedback.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(sessionfeedback.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskID(); ok {
		_spec.AddField(sessionfeedback.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ComboKey(); ok {
		_spec.SetField(sessionfeedback.FieldComboKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Combo(); ok {
		_spec.SetField(sessionfeedback.FieldCombo, field.TypeJSON, value)
	}
	if _u.mutation.ComboCleared() {
		_spec.ClearField(sessionfeedback.FieldCombo, field.TypeJSON)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(sessionfeedback.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionfeedback.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(sessionfeedback.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.LengthBucket(); ok {
		_spec.SetField(sessionfeedback.FieldLengthBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(sessionfeedback.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(sessionfeedback.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Clarity(); ok {
		_spec.SetField(sessionfeedback.FieldClarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClarity(); ok {
		_spec.AddField(sessionfeedback.FieldClarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Engagement(); ok {
		_spec.SetField(sessionfeedback.FieldEngagement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagement(); ok {
		_spec.AddField(sessionfeedback.FieldEngagement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CognitiveLoad(); ok {
		_spec.SetField(sessionfeedback.FieldCognitiveLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCognitiveLoad(); ok {
		_spec.AddField(sessionfeedback.FieldCognitiveLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttentionSpan(); ok {
		_spec.SetField(sessionfeedback.FieldAttentionSpan, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAttentionSpan(); ok {
		_spec.AddField(sessionfeedback.FieldAttentionSpan, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(sessionfeedback.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(sessionfeedback.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FatigueTrend(); ok {
		_spec.SetField(sessionfeedback.FieldFatigueTrend, field.TypeString, value)
	}
	if value, ok := _u.mutation.FatigueSlope(); ok {
		_spec.SetField(sessionfeedback.FieldFatigueSlope, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFatigueSlope(); ok {
		_spec.AddField(sessionfeedback.FieldFatigueSlope, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawMetrics(); ok {
		_spec.SetField(sessionfeedback.FieldRawMetrics, field.TypeJSON, value)
	}
	if _u.mutation.RawMetricsCleared() {
		_spec.ClearField(sessionfeedback.FieldRawMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.SurveySubmissionID(); ok {
		_spec.SetField(sessionfeedback.FieldSurveySubmissionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionFeedbackUpdateOne is the builder for updating a single SessionFeedback entity.
type SessionFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionFeedbackMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionFeedbackUpdateOne) SetSessionID(v string) *SessionFeedbackUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableSessionID(v *string) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionFeedbackUpdateOne) SetLearnerID(v string) *SessionFeedbackUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableLearnerID(v *string) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *SessionFeedbackUpdateOne) SetClassID(v int) *SessionFeedbackUpdateOne {
	_u.mutation.ResetClassID()
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableClassID(v *int) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// AddClassID adds value to the "class_id" field.
func (_u *SessionFeedbackUpdateOne) AddClassID(v int) *SessionFeedbackUpdateOne {
	_u.mutation.AddClassID(v)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SessionFeedbackUpdateOne) SetTaskID(v int) *SessionFeedbackUpdateOne {
	_u.mutation.ResetTaskID()
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableTaskID(v *int) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// AddTaskID adds value to the "task_id" field.
func (_u *SessionFeedbackUpdateOne) AddTaskID(v int) *SessionFeedbackUpdateOne {
	_u.mutation.AddTaskID(v)
	return _u
}

// SetComboKey sets the "combo_key" field.
func (_u *SessionFeedbackUpdateOne) SetComboKey(v string) *SessionFeedbackUpdateOne {
	_u.mutation.SetComboKey(v)
	return _u
}

// SetNillableComboKey sets the "combo_key" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableComboKey(v *string) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetComboKey(*v)
	}
	return _u
}

// SetCombo sets the "combo" field.
func (_u *SessionFeedbackUpdateOne) SetCombo(v content.Combo) *SessionFeedbackUpdateOne {
	_u.mutation.SetCombo(v)
	return _u
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableCombo(v *content.Combo) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetCombo(*v)
	}
	return _u
}

// ClearCombo clears the value of the "combo" field.
func (_u *SessionFeedbackUpdateOne) ClearCombo() *SessionFeedbackUpdateOne {
	_u.mutation.ClearCombo()
	return _u
}

// SetKind sets the "kind" field.
func (_u *SessionFeedbackUpdateOne) SetKind(v string) *SessionFeedbackUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableKind(v *string) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionFeedbackUpdateOne) SetTopic(v string) *SessionFeedbackUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableTopic(v *string) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *SessionFeedbackUpdateOne) SetPurpose(v string) *SessionFeedbackUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillablePurpose(v *string) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetLengthBucket sets the "length_bucket" field.
func (_u *SessionFeedbackUpdateOne) SetLengthBucket(v string) *SessionFeedbackUpdateOne {
	_u.mutation.SetLengthBucket(v)
	return _u
}

// SetNillableLengthBucket sets the "length_bucket" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableLengthBucket(v *string) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetLengthBucket(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SessionFeedbackUpdateOne) SetGrade(v string) *SessionFeedbackUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableGrade(v *string) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SessionFeedbackUpdateOne) SetSubject(v string) *SessionFeedbackUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableSubject(v *string) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetClarity sets the "clarity" field.
func (_u *SessionFeedbackUpdateOne) SetClarity(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.ResetClarity()
	_u.mutation.SetClarity(v)
	return _u
}

// SetNillableClarity sets the "clarity" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableClarity(v *float64) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetClarity(*v)
	}
	return _u
}

// AddClarity adds value to the "clarity" field.
func (_u *SessionFeedbackUpdateOne) AddClarity(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.AddClarity(v)
	return _u
}

// SetEngagement sets the "engagement" field.
func (_u *SessionFeedbackUpdateOne) SetEngagement(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.ResetEngagement()
	_u.mutation.SetEngagement(v)
	return _u
}

// SetNillableEngagement sets the "engagement" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableEngagement(v *float64) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetEngagement(*v)
	}
	return _u
}

// AddEngagement adds value to the "engagement" field.
func (_u *SessionFeedbackUpdateOne) AddEngagement(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.AddEngagement(v)
	return _u
}

// SetCognitiveLoad sets the "cognitive_load" field.
func (_u *SessionFeedbackUpdateOne) SetCognitiveLoad(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.ResetCognitiveLoad()
	_u.mutation.SetCognitiveLoad(v)
	return _u
}

// SetNillableCognitiveLoad sets the "cognitive_load" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableCognitiveLoad(v *float64) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetCognitiveLoad(*v)
	}
	return _u
}

// AddCognitiveLoad adds value to the "cognitive_load" field.
func (_u *SessionFeedbackUpdateOne) AddCognitiveLoad(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.AddCognitiveLoad(v)
	return _u
}

// SetAttentionSpan sets the "attention_span" field.
func (_u *SessionFeedbackUpdateOne) SetAttentionSpan(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.ResetAttentionSpan()
	_u.mutation.SetAttentionSpan(v)
	return _u
}

// SetNillableAttentionSpan sets the "attention_span" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableAttentionSpan(v *float64) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetAttentionSpan(*v)
	}
	return _u
}

// AddAttentionSpan adds value to the "attention_span" field.
func (_u *SessionFeedbackUpdateOne) AddAttentionSpan(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.AddAttentionSpan(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SessionFeedbackUpdateOne) SetConfidence(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableConfidence(v *float64) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SessionFeedbackUpdateOne) AddConfidence(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFatigueTrend sets the "fatigue_trend" field.
func (_u *SessionFeedbackUpdateOne) SetFatigueTrend(v string) *SessionFeedbackUpdateOne {
	_u.mutation.SetFatigueTrend(v)
	return _u
}

// SetNillableFatigueTrend sets the "fatigue_trend" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableFatigueTrend(v *string) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetFatigueTrend(*v)
	}
	return _u
}

// SetFatigueSlope sets the "fatigue_slope" field.
func (_u *SessionFeedbackUpdateOne) SetFatigueSlope(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.ResetFatigueSlope()
	_u.mutation.SetFatigueSlope(v)
	return _u
}

// SetNillableFatigueSlope sets the "fatigue_slope" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableFatigueSlope(v *float64) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetFatigueSlope(*v)
	}
	return _u
}

// AddFatigueSlope adds value to the "fatigue_slope" field.
func (_u *SessionFeedbackUpdateOne) AddFatigueSlope(v float64) *SessionFeedbackUpdateOne {
	_u.mutation.AddFatigueSlope(v)
	return _u
}

// SetRawMetrics sets the "raw_metrics" field.
func (_u *SessionFeedbackUpdateOne) SetRawMetrics(v map[string]float64) *SessionFeedbackUpdateOne {
	_u.mutation.SetRawMetrics(v)
	return _u
}

// ClearRawMetrics clears the value of the "raw_metrics" field.
func (_u *SessionFeedbackUpdateOne) ClearRawMetrics() *SessionFeedbackUpdateOne {
	_u.mutation.ClearRawMetrics()
	return _u
}

// SetSurveySubmissionID sets the "survey_submission_id" field.
func (_u *SessionFeedbackUpdateOne) SetSurveySubmissionID(v string) *SessionFeedbackUpdateOne {
	_u.mutation.SetSurveySubmissionID(v)
	return _u
}

// SetNillableSurveySubmissionID sets the "survey_submission_id" field if the given value is not nil.
func (_u *SessionFeedbackUpdateOne) SetNillableSurveySubmissionID(v *string) *SessionFeedbackUpdateOne {
	if v != nil {
		_u.SetSurveySubmissionID(*v)
	}
	return _u
}

// Mutation returns the SessionFeedbackMutation object of the builder.
func (_u *SessionFeedbackUpdateOne) Mutation() *SessionFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionFeedbackUpdate builder.
func (_u *SessionFeedbackUpdateOne) Where(ps ...predicate.SessionFeedback) *SessionFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionFeedbackUpdateOne) Select(field string, fields ...string) *SessionFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionFeedback entity.
func (_u *SessionFeedbackUpdateOne) Save(ctx context.Context) (*SessionFeedback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionFeedbackUpdateOne) SaveX(ctx context.Context) *SessionFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionFeedbackUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionfeedback.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionFeedback.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessionfeedback.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionFeedback.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *SessionFeedback, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionfeedback.Table, sessionfeedback.Columns, sqlgraph.NewFieldSpec(sessionfeedback.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionfeedback.FieldID)
		for _, f := range fields {
			if !sessionfeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionfeedback.FieldID {
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
		_spec.SetField(sessionfeedback.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessionfeedback.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(sessionfeedback.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClassID(); ok {
		_spec.AddField(sessionfeedback.FieldClassID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(sessionfeedback.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskID(); ok {
		_spec.AddField(sessionfeedback.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ComboKey(); ok {
		_spec.SetField(sessionfeedback.FieldComboKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Combo(); ok {
		_spec.SetField(sessionfeedback.FieldCombo, field.TypeJSON, value)
	}
	if _u.mutation.ComboCleared() {
		_spec.ClearField(sessionfeedback.FieldCombo, field.TypeJSON)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(sessionfeedback.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionfeedback.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(sessionfeedback.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.LengthBucket(); ok {
		_spec.SetField(sessionfeedback.FieldLengthBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(sessionfeedback.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(sessionfeedback.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Clarity(); ok {
		_spec.SetField(sessionfeedback.FieldClarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClarity(); ok {
		_spec.AddField(sessionfeedback.FieldClarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Engagement(); ok {
		_spec.SetField(sessionfeedback.FieldEngagement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagement(); ok {
		_spec.AddField(sessionfeedback.FieldEngagement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CognitiveLoad(); ok {
		_spec.SetField(sessionfeedback.FieldCognitiveLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCognitiveLoad(); ok {
		_spec.AddField(sessionfeedback.FieldCognitiveLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttentionSpan(); ok {
		_spec.SetField(sessionfeedback.FieldAttentionSpan, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAttentionSpan(); ok {
		_spec.AddField(sessionfeedback.FieldAttentionSpan, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(sessionfeedback.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(sessionfeedback.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FatigueTrend(); ok {
		_spec.SetField(sessionfeedback.FieldFatigueTrend, field.TypeString, value)
	}
	if value, ok := _u.mutation.FatigueSlope(); ok {
		_spec.SetField(sessionfeedback.FieldFatigueSlope, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFatigueSlope(); ok {
		_spec.AddField(sessionfeedback.FieldFatigueSlope, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawMetrics(); ok {
		_spec.SetField(sessionfeedback.FieldRawMetrics, field.TypeJSON, value)
	}
	if _u.mutation.RawMetricsCleared() {
		_spec.ClearField(sessionfeedback.FieldRawMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.SurveySubmissionID(); ok {
		_spec.SetField(sessionfeedback.FieldSurveySubmissionID, field.TypeString, value)
	}
	_node = &SessionFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
