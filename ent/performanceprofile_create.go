// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/samacademy/cohortgen/ent/performanceprofile"
)

// PerformanceProfileCreate is the builder for creating a PerformanceProfile entity.
type PerformanceProfileCreate struct {
	config
	mutation *PerformanceProfileMutation
	hooks    []Hook
}

// SetComboKey sets the "combo_key" field.
func (_c *PerformanceProfileCreate) SetComboKey(v string) *PerformanceProfileCreate {
	_c.mutation.SetComboKey(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *PerformanceProfileCreate) SetTopic(v string) *PerformanceProfileCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *PerformanceProfileCreate) SetPurpose(v string) *PerformanceProfileCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetLengthBucket sets the "length_bucket" field.
func (_c *PerformanceProfileCreate) SetLengthBucket(v string) *PerformanceProfileCreate {
	_c.mutation.SetLengthBucket(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *PerformanceProfileCreate) SetKind(v string) *PerformanceProfileCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *PerformanceProfileCreate) SetGrade(v string) *PerformanceProfileCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PerformanceProfileCreate) SetSubject(v string) *PerformanceProfileCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetClarityAvg sets the "clarity_avg" field.
func (_c *PerformanceProfileCreate) SetClarityAvg(v float64) *PerformanceProfileCreate {
	_c.mutation.SetClarityAvg(v)
	return _c
}

// SetNillableClarityAvg sets the "clarity_avg" field if the given value is not nil.
func (_c *PerformanceProfileCreate) SetNillableClarityAvg(v *float64) *PerformanceProfileCreate {
	if v != nil {
		_c.SetClarityAvg(*v)
	}
	return _c
}

// SetEngagementAvg sets the "engagement_avg" field.
func (_c *PerformanceProfileCreate) SetEngagementAvg(v float64) *PerformanceProfileCreate {
	_c.mutation.SetEngagementAvg(v)
	return _c
}

// SetNillableEngagementAvg sets the "engagement_avg" field if the given value is not nil.
func (_c *PerformanceProfileCreate) SetNillableEngagementAvg(v *float64) *PerformanceProfileCreate {
	if v != nil {
		_c.SetEngagementAvg(*v)
	}
	return _c
}

// SetConfidenceAvg sets the "confidence_avg" field.
func (_c *PerformanceProfileCreate) SetConfidenceAvg(v float64) *PerformanceProfileCreate {
	_c.mutation.SetConfidenceAvg(v)
	return _c
}

// SetNillableConfidenceAvg sets the "confidence_avg" field if the given value is not nil.
func (_c *PerformanceProfileCreate) SetNillableConfidenceAvg(v *float64) *PerformanceProfileCreate {
	if v != nil {
		_c.SetConfidenceAvg(*v)
	}
	return _c
}

// SetAttentionAvg sets the "attention_avg" field.
func (_c *PerformanceProfileCreate) SetAttentionAvg(v float64) *PerformanceProfileCreate {
	_c.mutation.SetAttentionAvg(v)
	return _c
}

// SetNillableAttentionAvg sets the "attention_avg" field if the given value is not nil.
func (_c *PerformanceProfileCreate) SetNillableAttentionAvg(v *float64) *PerformanceProfileCreate {
	if v != nil {
		_c.SetAttentionAvg(*v)
	}
	return _c
}

// SetFatigueSlope sets the "fatigue_slope" field.
func (_c *PerformanceProfileCreate) SetFatigueSlope(v float64) *PerformanceProfileCreate {
	_c.mutation.SetFatigueSlope(v)
	return _c
}

// SetNillableFatigueSlope sets the "fatigue_slope" field if the given value is not nil.
func (_c *PerformanceProfileCreate) SetNillableFatigueSlope(v *float64) *PerformanceProfileCreate {
	if v != nil {
		_c.SetFatigueSlope(*v)
	}
	return _c
}

// SetSessionCount sets the "session_count" field.
func (_c *PerformanceProfileCreate) SetSessionCount(v int) *PerformanceProfileCreate {
	_c.mutation.SetSessionCount(v)
	return _c
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_c *PerformanceProfileCreate) SetNillableSessionCount(v *int) *PerformanceProfileCreate {
	if v != nil {
		_c.SetSessionCount(*v)
	}
	return _c
}

// SetPerformanceScore sets the "performance_score" field.
func (_c *PerformanceProfileCreate) SetPerformanceScore(v float64) *PerformanceProfileCreate {
	_c.mutation.SetPerformanceScore(v)
	return _c
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_c *PerformanceProfileCreate) SetNillablePerformanceScore(v *float64) *PerformanceProfileCreate {
	if v != nil {
		_c.SetPerformanceScore(*v)
	}
	return _c
}

// SetProfileStatus sets the "profile_status" field.
func (_c *PerformanceProfileCreate) SetProfileStatus(v string) *PerformanceProfileCreate {
	_c.mutation.SetProfileStatus(v)
	return _c
}

// SetNillableProfileStatus sets the "profile_status" field if the given value is not nil.
func (_c *PerformanceProfileCreate) SetNillableProfileStatus(v *string) *PerformanceProfileCreate {
	if v != nil {
		_c.SetProfileStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PerformanceProfileCreate) SetCreatedAt(v time.Time) *PerformanceProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PerformanceProfileCreate) SetNillableCreatedAt(v *time.Time) *PerformanceProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PerformanceProfileCreate) SetUpdatedAt(v time.Time) *PerformanceProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PerformanceProfileCreate) SetNillableUpdatedAt(v *time.Time) *PerformanceProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PerformanceProfileMutation object of the builder.
func (_c *PerformanceProfileCreate) Mutation() *PerformanceProfileMutation {
	return _c.mutation
}

// Save creates the PerformanceProfile in the database.
func (_c *PerformanceProfileCreate) Save(ctx context.Context) (*PerformanceProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PerformanceProfileCreate) SaveX(ctx context.Context) *PerformanceProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PerformanceProfileCreate) defaults() {
	if _, ok := _c.mutation.ClarityAvg(); !ok {
		v := performanceprofile.DefaultClarityAvg
		_c.mutation.SetClarityAvg(v)
	}
	if _, ok := _c.mutation.EngagementAvg(); !ok {
		v := performanceprofile.DefaultEngagementAvg
		_c.mutation.SetEngagementAvg(v)
	}
	if _, ok := _c.mutation.ConfidenceAvg(); !ok {
		v := performanceprofile.DefaultConfidenceAvg
		_c.mutation.SetConfidenceAvg(v)
	}
	if _, ok := _c.mutation.AttentionAvg(); !ok {
		v := performanceprofile.DefaultAttentionAvg
		_c.mutation.SetAttentionAvg(v)
	}
	if _, ok := _c.mutation.FatigueSlope(); !ok {
		v := performanceprofile.DefaultFatigueSlope
		_c.mutation.SetFatigueSlope(v)
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		v := performanceprofile.DefaultSessionCount
		_c.mutation.SetSessionCount(v)
	}
	if _, ok := _c.mutation.PerformanceScore(); !ok {
		v := performanceprofile.DefaultPerformanceScore
		_c.mutation.SetPerformanceScore(v)
	}
	if _, ok := _c.mutation.ProfileStatus(); !ok {
		v := performanceprofile.DefaultProfileStatus
		_c.mutation.SetProfileStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := performanceprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := performanceprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PerformanceProfileCreate) check() error {
	if _, ok := _c.mutation.ComboKey(); !ok {
		return &ValidationError{Name: "combo_key", err: errors.New(`ent: missing required field "PerformanceProfile.combo_key"`)}
	}
	if v, ok := _c.mutation.ComboKey(); ok {
		if err := performanceprofile.ComboKeyValidator(v); err != nil {
			return &ValidationError{Name: "combo_key", err: fmt.Errorf(`ent: validator failed for field "PerformanceProfile.combo_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "PerformanceProfile.topic"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "PerformanceProfile.purpose"`)}
	}
	if _, ok := _c.mutation.LengthBucket(); !ok {
		return &ValidationError{Name: "length_bucket", err: errors.New(`ent: missing required field "PerformanceProfile.length_bucket"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PerformanceProfile.kind"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "PerformanceProfile.grade"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "PerformanceProfile.subject"`)}
	}
	if _, ok := _c.mutation.ClarityAvg(); !ok {
		return &ValidationError{Name: "clarity_avg", err: errors.New(`ent: missing required field "PerformanceProfile.clarity_avg"`)}
	}
	if _, ok := _c.mutation.EngagementAvg(); !ok {
		return &ValidationError{Name: "engagement_avg", err: errors.New(`ent: missing required field "PerformanceProfile.engagement_avg"`)}
	}
	if _, ok := _c.mutation.ConfidenceAvg(); !ok {
		return &ValidationError{Name: "confidence_avg", err: errors.New(`ent: missing required field "PerformanceProfile.confidence_avg"`)}
	}
	if _, ok := _c.mutation.AttentionAvg(); !ok {
		return &ValidationError{Name: "attention_avg", err: errors.New(`ent: missing required field "PerformanceProfile.attention_avg"`)}
	}
	if _, ok := _c.mutation.FatigueSlope(); !ok {
		return &ValidationError{Name: "fatigue_slope", err: errors.New(`ent: missing required field "PerformanceProfile.fatigue_slope"`)}
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		return &ValidationError{Name: "session_count", err: errors.New(`ent: missing required field "PerformanceProfile.session_count"`)}
	}
	if _, ok := _c.mutation.PerformanceScore(); !ok {
		return &ValidationError{Name: "performance_score", err: errors.New(`ent: missing required field "PerformanceProfile.performance_score"`)}
	}
	if _, ok := _c.mutation.ProfileStatus(); !ok {
		return &ValidationError{Name: "profile_status", err: errors.New(`ent: missing required field "PerformanceProfile.profile_status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PerformanceProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PerformanceProfile.updated_at"`)}
	}
	return nil
}

func (_c *PerformanceProfileCreate) sqlSave(ctx context.Context) (*PerformanceProfile, error) {
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

func (_c *PerformanceProfileCreate) createSpec() (*PerformanceProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &PerformanceProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(performanceprofile.Table, sqlgraph.NewFieldSpec(performanceprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ComboKey(); ok {
		_spec.SetField(performanceprofile.FieldComboKey, field.TypeString, value)
		_node.ComboKey = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(performanceprofile.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(performanceprofile.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.LengthBucket(); ok {
		_spec.SetField(performanceprofile.FieldLengthBucket, field.TypeString, value)
		_node.LengthBucket = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(performanceprofile.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(performanceprofile.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(performanceprofile.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.ClarityAvg(); ok {
		_spec.SetField(performanceprofile.FieldClarityAvg, field.TypeFloat64, value)
		_node.ClarityAvg = value
	}
	if value, ok := _c.mutation.EngagementAvg(); ok {
		_spec.SetField(performanceprofile.FieldEngagementAvg, field.TypeFloat64, value)
		_node.EngagementAvg = value
	}
	if value, ok := _c.mutation.ConfidenceAvg(); ok {
		_spec.SetField(performanceprofile.FieldConfidenceAvg, field.TypeFloat64, value)
		_node.ConfidenceAvg = value
	}
	if value, ok := _c.mutation.AttentionAvg(); ok {
		_spec.SetField(performanceprofile.FieldAttentionAvg, field.TypeFloat64, value)
		_node.AttentionAvg = value
	}
	if value, ok := _c.mutation.FatigueSlope(); ok {
		_spec.SetField(performanceprofile.FieldFatigueSlope, field.TypeFloat64, value)
		_node.FatigueSlope = value
	}
	if value, ok := _c.mutation.SessionCount(); ok {
		_spec.SetField(performanceprofile.FieldSessionCount, field.TypeInt, value)
		_node.SessionCount = value
	}
	if value, ok := _c.mutation.PerformanceScore(); ok {
		_spec.SetField(performanceprofile.FieldPerformanceScore, field.TypeFloat64, value)
		_node.PerformanceScore = value
	}
	if value, ok := _c.mutation.ProfileStatus(); ok {
		_spec.SetField(performanceprofile.FieldProfileStatus, field.TypeString, value)
		_node.ProfileStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(performanceprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(performanceprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PerformanceProfileCreateBulk is the builder for creating many PerformanceProfile entities in bulk.
type PerformanceProfileCreateBulk struct {
	config
	err      error
	builders []*PerformanceProfileCreate
}

// Save creates the PerformanceProfile entities in the database.
func (_c *PerformanceProfileCreateBulk) Save(ctx context.Context) ([]*PerformanceProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PerformanceProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PerformanceProfileMutation)
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
func (_c *PerformanceProfileCreateBulk) SaveX(ctx context.Context) []*PerformanceProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
