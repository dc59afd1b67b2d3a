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
	"github.com/samacademy/cohortgen/ent/performanceprofile"
	"github.com/samacademy/cohortgen/ent/predicate"
)

// PerformanceProfileUpdate is the builder for updating PerformanceProfile entities.
type PerformanceProfileUpdate struct {
	config
	hooks    []Hook
	mutation *PerformanceProfileMutation
}

// Where appends a list predicates to the PerformanceProfileUpdate builder.
func (_u *PerformanceProfileUpdate) Where(ps ...predicate.PerformanceProfile) *PerformanceProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetComboKey sets the "combo_key" field.
func (_u *PerformanceProfileUpdate) SetComboKey(v string) *PerformanceProfileUpdate {
	_u.mutation.SetComboKey(v)
	return _u
}

// SetNillableComboKey sets the "combo_key" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableComboKey(v *string) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetComboKey(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PerformanceProfileUpdate) SetTopic(v string) *PerformanceProfileUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableTopic(v *string) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *PerformanceProfileUpdate) SetPurpose(v string) *PerformanceProfileUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillablePurpose(v *string) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetLengthBucket sets the "length_bucket" field.
func (_u *PerformanceProfileUpdate) SetLengthBucket(v string) *PerformanceProfileUpdate {
	_u.mutation.SetLengthBucket(v)
	return _u
}

// SetNillableLengthBucket sets the "length_bucket" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableLengthBucket(v *string) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetLengthBucket(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PerformanceProfileUpdate) SetKind(v string) *PerformanceProfileUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableKind(v *string) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PerformanceProfileUpdate) SetGrade(v string) *PerformanceProfileUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableGrade(v *string) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PerformanceProfileUpdate) SetSubject(v string) *PerformanceProfileUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableSubject(v *string) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetClarityAvg sets the "clarity_avg" field.
func (_u *PerformanceProfileUpdate) SetClarityAvg(v float64) *PerformanceProfileUpdate {
	_u.mutation.ResetClarityAvg()
	_u.mutation.SetClarityAvg(v)
	return _u
}

// SetNillableClarityAvg sets the "clarity_avg" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableClarityAvg(v *float64) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetClarityAvg(*v)
	}
	return _u
}

// AddClarityAvg adds value to the "clarity_avg" field.
func (_u *PerformanceProfileUpdate) AddClarityAvg(v float64) *PerformanceProfileUpdate {
	_u.mutation.AddClarityAvg(v)
	return _u
}

// SetEngagementAvg sets the "engagement_avg" field.
func (_u *PerformanceProfileUpdate) SetEngagementAvg(v float64) *PerformanceProfileUpdate {
	_u.mutation.ResetEngagementAvg()
	_u.mutation.SetEngagementAvg(v)
	return _u
}

// SetNillableEngagementAvg sets the "engagement_avg" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableEngagementAvg(v *float64) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetEngagementAvg(*v)
	}
	return _u
}

// AddEngagementAvg adds value to the "engagement_avg" field.
func (_u *PerformanceProfileUpdate) AddEngagementAvg(v float64) *PerformanceProfileUpdate {
	_u.mutation.AddEngagementAvg(v)
	return _u
}

// SetConfidenceAvg sets the "confidence_avg" field.
func (_u *PerformanceProfileUpdate) SetConfidenceAvg(v float64) *PerformanceProfileUpdate {
	_u.mutation.ResetConfidenceAvg()
	_u.mutation.SetConfidenceAvg(v)
	return _u
}

// SetNillableConfidenceAvg sets the "confidence_avg" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableConfidenceAvg(v *float64) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetConfidenceAvg(*v)
	}
	return _u
}

// AddConfidenceAvg adds value to the "confidence_avg" field.
func (_u *PerformanceProfileUpdate) AddConfidenceAvg(v float64) *PerformanceProfileUpdate {
	_u.mutation.AddConfidenceAvg(v)
	return _u
}

// SetAttentionAvg sets the "attention_avg" field.
func (_u *PerformanceProfileUpdate) SetAttentionAvg(v float64) *PerformanceProfileUpdate {
	_u.mutation.ResetAttentionAvg()
	_u.mutation.SetAttentionAvg(v)
	return _u
}

// SetNillableAttentionAvg sets the "attention_avg" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableAttentionAvg(v *float64) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetAttentionAvg(*v)
	}
	return _u
}

// AddAttentionAvg adds value to the "attention_avg" field.
func (_u *PerformanceProfileUpdate) AddAttentionAvg(v float64) *PerformanceProfileUpdate {
	_u.mutation.AddAttentionAvg(v)
	return _u
}

// SetFatigueSlope sets the "fatigue_slope" field.
func (_u *PerformanceProfileUpdate) SetFatigueSlope(v float64) *PerformanceProfileUpdate {
	_u.mutation.ResetFatigueSlope()
	_u.mutation.SetFatigueSlope(v)
	return _u
}

// SetNillableFatigueSlope sets the "fatigue_slope" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableFatigueSlope(v *float64) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetFatigueSlope(*v)
	}
	return _u
}

// AddFatigueSlope adds value to the "fatigue_slope" field.
func (_u *PerformanceProfileUpdate) AddFatigueSlope(v float64) *PerformanceProfileUpdate {
	_u.mutation.AddFatigueSlope(v)
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *PerformanceProfileUpdate) SetSessionCount(v int) *PerformanceProfileUpdate {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableSessionCount(v *int) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *PerformanceProfileUpdate) AddSessionCount(v int) *PerformanceProfileUpdate {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetPerformanceScore sets the "performance_score" field.
func (_u *PerformanceProfileUpdate) SetPerformanceScore(v float64) *PerformanceProfileUpdate {
	_u.mutation.ResetPerformanceScore()
	_u.mutation.SetPerformanceScore(v)
	return _u
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillablePerformanceScore(v *float64) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetPerformanceScore(*v)
	}
	return _u
}

// AddPerformanceScore adds value to the "performance_score" field.
func (_u *PerformanceProfileUpdate) AddPerformanceScore(v float64) *PerformanceProfileUpdate {
	_u.mutation.AddPerformanceScore(v)
	return _u
}

// SetProfileStatus sets the "profile_status" field.
func (_u *PerformanceProfileUpdate) SetProfileStatus(v string) *PerformanceProfileUpdate {
	_u.mutation.SetProfileStatus(v)
	return _u
}

// SetNillableProfileStatus sets the "profile_status" field if the given value is not nil.
func (_u *PerformanceProfileUpdate) SetNillableProfileStatus(v *string) *PerformanceProfileUpdate {
	if v != nil {
		_u.SetProfileStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PerformanceProfileUpdate) SetUpdatedAt(v time.Time) *PerformanceProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PerformanceProfileMutation object of the builder.
func (_u *PerformanceProfileUpdate) Mutation() *PerformanceProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PerformanceProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PerformanceProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PerformanceProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := performanceprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceProfileUpdate) check() error {
	if v, ok := _u.mutation.ComboKey(); ok {
		if err := performanceprofile.ComboKeyValidator(v); err != nil {
			return &ValidationError{Name: "combo_key", err: fmt.Errorf(`ent: validator failed for field "PerformanceProfile.combo_key": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performanceprofile.Table, performanceprofile.Columns, sqlgraph.NewFieldSpec(performanceprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ComboKey(); ok {
		_spec.SetField(performanceprofile.FieldComboKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(performanceprofile.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(performanceprofile.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.LengthBucket(); ok {
		_spec.SetField(performanceprofile.FieldLengthBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(performanceprofile.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(performanceprofile.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(performanceprofile.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClarityAvg(); ok {
		_spec.SetField(performanceprofile.FieldClarityAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClarityAvg(); ok {
		_spec.AddField(performanceprofile.FieldClarityAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EngagementAvg(); ok {
		_spec.SetField(performanceprofile.FieldEngagementAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementAvg(); ok {
		_spec.AddField(performanceprofile.FieldEngagementAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceAvg(); ok {
		_spec.SetField(performanceprofile.FieldConfidenceAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceAvg(); ok {
		_spec.AddField(performanceprofile.FieldConfidenceAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttentionAvg(); ok {
		_spec.SetField(performanceprofile.FieldAttentionAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAttentionAvg(); ok {
		_spec.AddField(performanceprofile.FieldAttentionAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FatigueSlope(); ok {
		_spec.SetField(performanceprofile.FieldFatigueSlope, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFatigueSlope(); ok {
		_spec.AddField(performanceprofile.FieldFatigueSlope, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(performanceprofile.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(performanceprofile.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PerformanceScore(); ok {
		_spec.SetField(performanceprofile.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceScore(); ok {
		_spec.AddField(performanceprofile.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProfileStatus(); ok {
		_spec.SetField(performanceprofile.FieldProfileStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(performanceprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performanceprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PerformanceProfileUpdateOne is the builder for updating a single PerformanceProfile entity.
type PerformanceProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PerformanceProfileMutation
}

// SetComboKey sets the "combo_key" field.
func (_u *PerformanceProfileUpdateOne) SetComboKey(v string) *PerformanceProfileUpdateOne {
	_u.mutation.SetComboKey(v)
	return _u
}

// SetNillableComboKey sets the "combo_key" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableComboKey(v *string) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetComboKey(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PerformanceProfileUpdateOne) SetTopic(v string) *PerformanceProfileUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableTopic(v *string) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *PerformanceProfileUpdateOne) SetPurpose(v string) *PerformanceProfileUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillablePurpose(v *string) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetLengthBucket sets the "length_bucket" field.
func (_u *PerformanceProfileUpdateOne) SetLengthBucket(v string) *PerformanceProfileUpdateOne {
	_u.mutation.SetLengthBucket(v)
	return _u
}

// SetNillableLengthBucket sets the "length_bucket" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableLengthBucket(v *string) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetLengthBucket(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PerformanceProfileUpdateOne) SetKind(v string) *PerformanceProfileUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableKind(v *string) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PerformanceProfileUpdateOne) SetGrade(v string) *PerformanceProfileUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableGrade(v *string) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PerformanceProfileUpdateOne) SetSubject(v string) *PerformanceProfileUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableSubject(v *string) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetClarityAvg sets the "clarity_avg" field.
func (_u *PerformanceProfileUpdateOne) SetClarityAvg(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.ResetClarityAvg()
	_u.mutation.SetClarityAvg(v)
	return _u
}

// SetNillableClarityAvg sets the "clarity_avg" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableClarityAvg(v *float64) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetClarityAvg(*v)
	}
	return _u
}

// AddClarityAvg adds value to the "clarity_avg" field.
func (_u *PerformanceProfileUpdateOne) AddClarityAvg(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.AddClarityAvg(v)
	return _u
}

// SetEngagementAvg sets the "engagement_avg" field.
func (_u *PerformanceProfileUpdateOne) SetEngagementAvg(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.ResetEngagementAvg()
	_u.mutation.SetEngagementAvg(v)
	return _u
}

// SetNillableEngagementAvg sets the "engagement_avg" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableEngagementAvg(v *float64) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetEngagementAvg(*v)
	}
	return _u
}

// AddEngagementAvg adds value to the "engagement_avg" field.
func (_u *PerformanceProfileUpdateOne) AddEngagementAvg(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.AddEngagementAvg(v)
	return _u
}

// SetConfidenceAvg sets the "confidence_avg" field.
func (_u *PerformanceProfileUpdateOne) SetConfidenceAvg(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.ResetConfidenceAvg()
	_u.mutation.SetConfidenceAvg(v)
	return _u
}

// SetNillableConfidenceAvg sets the "confidence_avg" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableConfidenceAvg(v *float64) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetConfidenceAvg(*v)
	}
	return _u
}

// AddConfidenceAvg adds value to the "confidence_avg" field.
func (_u *PerformanceProfileUpdateOne) AddConfidenceAvg(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.AddConfidenceAvg(v)
	return _u
}

// SetAttentionAvg sets the "attention_avg" field.
func (_u *PerformanceProfileUpdateOne) SetAttentionAvg(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.ResetAttentionAvg()
	_u.mutation.SetAttentionAvg(v)
	return _u
}

// SetNillableAttentionAvg sets the "attention_avg" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableAttentionAvg(v *float64) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetAttentionAvg(*v)
	}
	return _u
}

// AddAttentionAvg adds value to the "attention_avg" field.
func (_u *PerformanceProfileUpdateOne) AddAttentionAvg(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.AddAttentionAvg(v)
	return _u
}

// SetFatigueSlope sets the "fatigue_slope" field.
func (_u *PerformanceProfileUpdateOne) SetFatigueSlope(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.ResetFatigueSlope()
	_u.mutation.SetFatigueSlope(v)
	return _u
}

// SetNillableFatigueSlope sets the "fatigue_slope" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableFatigueSlope(v *float64) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetFatigueSlope(*v)
	}
	return _u
}

// AddFatigueSlope adds value to the "fatigue_slope" field.
func (_u *PerformanceProfileUpdateOne) AddFatigueSlope(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.AddFatigueSlope(v)
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *PerformanceProfileUpdateOne) SetSessionCount(v int) *PerformanceProfileUpdateOne {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableSessionCount(v *int) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *PerformanceProfileUpdateOne) AddSessionCount(v int) *PerformanceProfileUpdateOne {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetPerformanceScore sets the "performance_score" field.
func (_u *PerformanceProfileUpdateOne) SetPerformanceScore(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.ResetPerformanceScore()
	_u.mutation.SetPerformanceScore(v)
	return _u
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillablePerformanceScore(v *float64) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetPerformanceScore(*v)
	}
	return _u
}

// AddPerformanceScore adds value to the "performance_score" field.
func (_u *PerformanceProfileUpdateOne) AddPerformanceScore(v float64) *PerformanceProfileUpdateOne {
	_u.mutation.AddPerformanceScore(v)
	return _u
}

// SetProfileStatus sets the "profile_status" field.
func (_u *PerformanceProfileUpdateOne) SetProfileStatus(v string) *PerformanceProfileUpdateOne {
	_u.mutation.SetProfileStatus(v)
	return _u
}

// SetNillableProfileStatus sets the "profile_status" field if the given value is not nil.
func (_u *PerformanceProfileUpdateOne) SetNillableProfileStatus(v *string) *PerformanceProfileUpdateOne {
	if v != nil {
		_u.SetProfileStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PerformanceProfileUpdateOne) SetUpdatedAt(v time.Time) *PerformanceProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PerformanceProfileMutation object of the builder.
func (_u *PerformanceProfileUpdateOne) Mutation() *PerformanceProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the PerformanceProfileUpdate builder.
func (_u *PerformanceProfileUpdateOne) Where(ps ...predicate.PerformanceProfile) *PerformanceProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PerformanceProfileUpdateOne) Select(field string, fields ...string) *PerformanceProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PerformanceProfile entity.
func (_u *PerformanceProfileUpdateOne) Save(ctx context.Context) (*PerformanceProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceProfileUpdateOne) SaveX(ctx context.Context) *PerformanceProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PerformanceProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PerformanceProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := performanceprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceProfileUpdateOne) check() error {
	if v, ok := _u.mutation.ComboKey(); ok {
		if err := performanceprofile.ComboKeyValidator(v); err != nil {
			return &ValidationError{Name: "combo_key", err: fmt.Errorf(`ent: validator failed for field "PerformanceProfile.combo_key": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceProfileUpdateOne) sqlSave(ctx context.Context) (_node *PerformanceProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performanceprofile.Table, performanceprofile.Columns, sqlgraph.NewFieldSpec(performanceprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PerformanceProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, performanceprofile.FieldID)
		for _, f := range fields {
			if !performanceprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != performanceprofile.FieldID {
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
	if value, ok := _u.mutation.ComboKey(); ok {
		_spec.SetField(performanceprofile.FieldComboKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(performanceprofile.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(performanceprofile.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.LengthBucket(); ok {
		_spec.SetField(performanceprofile.FieldLengthBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(performanceprofile.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(performanceprofile.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(performanceprofile.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClarityAvg(); ok {
		_spec.SetField(performanceprofile.FieldClarityAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClarityAvg(); ok {
		_spec.AddField(performanceprofile.FieldClarityAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EngagementAvg(); ok {
		_spec.SetField(performanceprofile.FieldEngagementAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementAvg(); ok {
		_spec.AddField(performanceprofile.FieldEngagementAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceAvg(); ok {
		_spec.SetField(performanceprofile.FieldConfidenceAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceAvg(); ok {
		_spec.AddField(performanceprofile.FieldConfidenceAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttentionAvg(); ok {
		_spec.SetField(performanceprofile.FieldAttentionAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAttentionAvg(); ok {
		_spec.AddField(performanceprofile.FieldAttentionAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FatigueSlope(); ok {
		_spec.SetField(performanceprofile.FieldFatigueSlope, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFatigueSlope(); ok {
		_spec.AddField(performanceprofile.FieldFatigueSlope, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(performanceprofile.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(performanceprofile.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PerformanceScore(); ok {
		_spec.SetField(performanceprofile.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceScore(); ok {
		_spec.AddField(performanceprofile.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProfileStatus(); ok {
		_spec.SetField(performanceprofile.FieldProfileStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(performanceprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PerformanceProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performanceprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
