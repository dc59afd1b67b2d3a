// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/samacademy/cohortgen/ent/sessionfeedback"
	"github.com/samacademy/cohortgen/internal/content"
)

// SessionFeedbackCreate is the builder for creating a SessionFeedback entity.
type SessionFeedbackCreate struct {
	config
	mutation *SessionFeedbackMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SessionFeedbackCreate) SetSequence(v int64) *SessionFeedbackCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionFeedbackCreate) SetTimestamp(v time.Time) *SessionFeedbackCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableTimestamp(v *time.Time) *SessionFeedbackCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionFeedbackCreate) SetSessionID(v string) *SessionFeedbackCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *SessionFeedbackCreate) SetLearnerID(v string) *SessionFeedbackCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetClassID sets the "class_id" field.
func (_c *SessionFeedbackCreate) SetClassID(v int) *SessionFeedbackCreate {
	_c.mutation.SetClassID(v)
	return _c
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableClassID(v *int) *SessionFeedbackCreate {
	if v != nil {
		_c.SetClassID(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *SessionFeedbackCreate) SetTaskID(v int) *SessionFeedbackCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableTaskID(v *int) *SessionFeedbackCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetComboKey sets the "combo_key" field.
func (_c *SessionFeedbackCreate) SetComboKey(v string) *SessionFeedbackCreate {
	_c.mutation.SetComboKey(v)
	return _c
}

// SetCombo sets the "combo" field.
func (_c *SessionFeedbackCreate) SetCombo(v content.Combo) *SessionFeedbackCreate {
	_c.mutation.SetCombo(v)
	return _c
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableCombo(v *content.Combo) *SessionFeedbackCreate {
	if v != nil {
		_c.SetCombo(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *SessionFeedbackCreate) SetKind(v string) *SessionFeedbackCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *SessionFeedbackCreate) SetTopic(v string) *SessionFeedbackCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *SessionFeedbackCreate) SetPurpose(v string) *SessionFeedbackCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetLengthBucket sets the "length_bucket" field.
func (_c *SessionFeedbackCreate) SetLengthBucket(v string) *SessionFeedbackCreate {
	_c.mutation.SetLengthBucket(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *SessionFeedbackCreate) SetGrade(v string) *SessionFeedbackCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *SessionFeedbackCreate) SetSubject(v string) *SessionFeedbackCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetClarity sets the "clarity" field.
func (_c *SessionFeedbackCreate) SetClarity(v float64) *SessionFeedbackCreate {
	_c.mutation.SetClarity(v)
	return _c
}

// SetNillableClarity sets the "clarity" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableClarity(v *float64) *SessionFeedbackCreate {
	if v != nil {
		_c.SetClarity(*v)
	}
	return _c
}

// SetEngagement sets the "engagement" field.
func (_c *SessionFeedbackCreate) SetEngagement(v float64) *SessionFeedbackCreate {
	_c.mutation.SetEngagement(v)
	return _c
}

// SetNillableEngagement sets the "engagement" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableEngagement(v *float64) *SessionFeedbackCreate {
	if v != nil {
		_c.SetEngagement(*v)
	}
	return _c
}

// SetCognitiveLoad sets the "cognitive_load" field.
func (_c *SessionFeedbackCreate) SetCognitiveLoad(v float64) *SessionFeedbackCreate {
	_c.mutation.SetCognitiveLoad(v)
	return _c
}

// SetNillableCognitiveLoad sets the "cognitive_load" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableCognitiveLoad(v *float64) *SessionFeedbackCreate {
	if v != nil {
		_c.SetCognitiveLoad(*v)
	}
	return _c
}

// SetAttentionSpan sets the "attention_span" field.
func (_c *SessionFeedbackCreate) SetAttentionSpan(v float64) *SessionFeedbackCreate {
	_c.mutation.SetAttentionSpan(v)
	return _c
}

// SetNillableAttentionSpan sets the "attention_span" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableAttentionSpan(v *float64) *SessionFeedbackCreate {
	if v != nil {
		_c.SetAttentionSpan(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SessionFeedbackCreate) SetConfidence(v float64) *SessionFeedbackCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableConfidence(v *float64) *SessionFeedbackCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetFatigueTrend sets the "fatigue_trend" field.
func (_c *SessionFeedbackCreate) SetFatigueTrend(v string) *SessionFeedbackCreate {
	_c.mutation.SetFatigueTrend(v)
	return _c
}

// SetNillableFatigueTrend sets the "fatigue_trend" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableFatigueTrend(v *string) *SessionFeedbackCreate {
	if v != nil {
		_c.SetFatigueTrend(*v)
	}
	return _c
}

// SetFatigueSlope sets the "fatigue_slope" field.
func (_c *SessionFeedbackCreate) SetFatigueSlope(v float64) *SessionFeedbackCreate {
	_c.mutation.SetFatigueSlope(v)
	return _c
}

// SetNillableFatigueSlope sets the "fatigue_slope" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableFatigueSlope(v *float64) *SessionFeedbackCreate {
	if v != nil {
		_c.SetFatigueSlope(*v)
	}
	return _c
}

// SetRawMetrics sets the "raw_metrics" field.
func (_c *SessionFeedbackCreate) SetRawMetrics(v map[string]float64) *SessionFeedbackCreate {
	_c.mutation.SetRawMetrics(v)
	return _c
}

// SetSurveySubmissionID sets the "survey_submission_id" field.
func (_c *SessionFeedbackCreate) SetSurveySubmissionID(v string) *SessionFeedbackCreate {
	_c.mutation.SetSurveySubmissionID(v)
	return _c
}

// SetNillableSurveySubmissionID sets the "survey_submission_id" field if the given value is not nil.
func (_c *SessionFeedbackCreate) SetNillableSurveySubmissionID(v *string) *SessionFeedbackCreate {
	if v != nil {
		_c.SetSurveySubmissionID(*v)
	}
	return _c
}

// Mutation returns the SessionFeedbackMutation object of the builder.
func (_c *SessionFeedbackCreate) Mutation() *SessionFeedbackMutation {
	return _c.mutation
}

// Save creates the SessionFeedback in the database.
func (_c *SessionFeedbackCreate) Save(ctx context.Context) (*SessionFeedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionFeedbackCreate) SaveX(ctx context.Context) *SessionFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionFeedbackCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionfeedback.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ClassID(); !ok {
		v := sessionfeedback.DefaultClassID
		_c.mutation.SetClassID(v)
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		v := sessionfeedback.DefaultTaskID
		_c.mutation.SetTaskID(v)
	}
	if _, ok := _c.mutation.Clarity(); !ok {
		v := sessionfeedback.DefaultClarity
		_c.mutation.SetClarity(v)
	}
	if _, ok := _c.mutation.Engagement(); !ok {
		v := sessionfeedback.DefaultEngagement
		_c.mutation.SetEngagement(v)
	}
	if _, ok := _c.mutation.CognitiveLoad(); !ok {
		v := sessionfeedback.DefaultCognitiveLoad
		_c.mutation.SetCognitiveLoad(v)
	}
	if _, ok := _c.mutation.AttentionSpan(); !ok {
		v := sessionfeedback.DefaultAttentionSpan
		_c.mutation.SetAttentionSpan(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := sessionfeedback.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.FatigueTrend(); !ok {
		v := sessionfeedback.DefaultFatigueTrend
		_c.mutation.SetFatigueTrend(v)
	}
	if _, ok := _c.mutation.FatigueSlope(); !ok {
		v := sessionfeedback.DefaultFatigueSlope
		_c.mutation.SetFatigueSlope(v)
	}
	if _, ok := _c.mutation.SurveySubmissionID(); !ok {
		v := sessionfeedback.DefaultSurveySubmissionID
		_c.mutation.SetSurveySubmissionID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionFeedbackCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionFeedback.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionFeedback.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionFeedback.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionfeedback.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionFeedback.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "SessionFeedback.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := sessionfeedback.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionFeedback.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClassID(); !ok {
		return &ValidationError{Name: "class_id", err: errors.New(`ent: missing required field "SessionFeedback.class_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SessionFeedback.task_id"`)}
	}
	if _, ok := _c.mutation.ComboKey(); !ok {
		return &ValidationError{Name: "combo_key", err: errors.New(`ent: missing required field "SessionFeedback.combo_key"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "SessionFeedback.kind"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "SessionFeedback.topic"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "SessionFeedback.purpose"`)}
	}
	if _, ok := _c.mutation.LengthBucket(); !ok {
		return &ValidationError{Name: "length_bucket", err: errors.New(`ent: missing required field "SessionFeedback.length_bucket"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "SessionFeedback.grade"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "SessionFeedback.subject"`)}
	}
	if _, ok := _c.mutation.Clarity(); !ok {
		return &ValidationError{Name: "clarity", err: errors.New(`ent: missing required field "SessionFeedback.clarity"`)}
	}
	if _, ok := _c.mutation.Engagement(); !ok {
		return &ValidationError{Name: "engagement", err: errors.New(`ent: missing required field "SessionFeedback.engagement"`)}
	}
	if _, ok := _c.mutation.CognitiveLoad(); !ok {
		return &ValidationError{Name: "cognitive_load", err: errors.New(`ent: missing required field "SessionFeedback.cognitive_load"`)}
	}
	if _, ok := _c.mutation.AttentionSpan(); !ok {
		return &ValidationError{Name: "attention_span", err: errors.New(`ent: missing required field "SessionFeedback.attention_span"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "SessionFeedback.confidence"`)}
	}
	if _, ok := _c.mutation.FatigueTrend(); !ok {
		return &ValidationError{Name: "fatigue_trend", err: errors.New(`ent: missing required field "SessionFeedback.fatigue_trend"`)}
	}
	if _, ok := _c.mutation.FatigueSlope(); !ok {
		return &ValidationError{Name: "fatigue_slope", err: errors.New(`ent: missing required field "SessionFeedback.fatigue_slope"`)}
	}
	if _, ok := _c.mutation.SurveySubmissionID(); !ok {
		return &ValidationError{Name: "survey_submission_id", err: errors.New(`ent: missing required field "SessionFeedback.survey_submission_id"`)}
	}
	return nil
}

func (_c *SessionFeedbackCreate) sqlSave(ctx context.Context) (*SessionFeedback, error) {
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

func (_c *SessionFeedbackCreate) createSpec() (*SessionFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionfeedback.Table, sqlgraph.NewFieldSpec(sessionfeedback.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionfeedback.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionfeedback.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionfeedback.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(sessionfeedback.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ClassID(); ok {
		_spec.SetField(sessionfeedback.FieldClassID, field.TypeInt, value)
		_node.ClassID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(sessionfeedback.FieldTaskID, field.TypeInt, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.ComboKey(); ok {
		_spec.SetField(sessionfeedback.FieldComboKey, field.TypeString, value)
		_node.ComboKey = value
	}
	if value, ok := _c.mutation.Combo(); ok {
		_spec.SetField(sessionfeedback.FieldCombo, field.TypeJSON, value)
		_node.Combo = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(sessionfeedback.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(sessionfeedback.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(sessionfeedback.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.LengthBucket(); ok {
		_spec.SetField(sessionfeedback.FieldLengthBucket, field.TypeString, value)
		_node.LengthBucket = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(sessionfeedback.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(sessionfeedback.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Clarity(); ok {
		_spec.SetField(sessionfeedback.FieldClarity, field.TypeFloat64, value)
		_node.Clarity = value
	}
	if value, ok := _c.mutation.Engagement(); ok {
		_spec.SetField(sessionfeedback.FieldEngagement, field.TypeFloat64, value)
		_node.Engagement = value
	}
	if value, ok := _c.mutation.CognitiveLoad(); ok {
		_spec.SetField(sessionfeedback.FieldCognitiveLoad, field.TypeFloat64, value)
		_node.CognitiveLoad = value
	}
	if value, ok := _c.mutation.AttentionSpan(); ok {
		_spec.SetField(sessionfeedback.FieldAttentionSpan, field.TypeFloat64, value)
		_node.AttentionSpan = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(sessionfeedback.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.FatigueTrend(); ok {
		_spec.SetField(sessionfeedback.FieldFatigueTrend, field.TypeString, value)
		_node.FatigueTrend = value
	}
	if value, ok := _c.mutation.FatigueSlope(); ok {
		_spec.SetField(sessionfeedback.FieldFatigueSlope, field.TypeFloat64, value)
		_node.FatigueSlope = value
	}
	if value, ok := _c.mutation.RawMetrics(); ok {
		_spec.SetField(sessionfeedback.FieldRawMetrics, field.TypeJSON, value)
		_node.RawMetrics = value
	}
	if value, ok := _c.mutation.SurveySubmissionID(); ok {
		_spec.SetField(sessionfeedback.FieldSurveySubmissionID, field.TypeString, value)
		_node.SurveySubmissionID = value
	}
	return _node, _spec
}

// SessionFeedbackCreateBulk is the builder for creating many SessionFeedback entities in bulk.
type SessionFeedbackCreateBulk struct {
	config
	err      error
	builders []*SessionFeedbackCreate
}

// Save creates the SessionFeedback entities in the database.
func (_c *SessionFeedbackCreateBulk) Save(ctx context.Context) ([]*SessionFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionFeedbackMutation)
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
func (_c *SessionFeedbackCreateBulk) SaveX(ctx context.Context) []*SessionFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
