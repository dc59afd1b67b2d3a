// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/samacademy/cohortgen/ent/class"
	"github.com/samacademy/cohortgen/ent/enrollment"
	"github.com/samacademy/cohortgen/ent/generationevent"
	"github.com/samacademy/cohortgen/ent/group"
	"github.com/samacademy/cohortgen/ent/performanceprofile"
	"github.com/samacademy/cohortgen/ent/predicate"
	"github.com/samacademy/cohortgen/ent/sessionfeedback"
	"github.com/samacademy/cohortgen/ent/task"
	"github.com/samacademy/cohortgen/internal/content"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeClass              = "Class"
	TypeEnrollment         = "Enrollment"
	TypeGenerationEvent    = "GenerationEvent"
	TypeGroup              = "Group"
	TypePerformanceProfile = "PerformanceProfile"
	TypeSessionFeedback    = "SessionFeedback"
	TypeTask               = "Task"
)

// ClassMutation represents an operation that mutates the Class nodes in the graph.
type ClassMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	grade         *string
	subject       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Class, error)
	predicates    []predicate.Class
}

var _ ent.Mutation = (*ClassMutation)(nil)

// classOption allows management of the mutation configuration using functional options.
type classOption func(*ClassMutation)

// newClassMutation creates new mutation for the Class entity.
func newClassMutation(c config, op Op, opts ...classOption) *ClassMutation {
	m := &ClassMutation{
		config:        c,
		op:            op,
		typ:           TypeClass,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClassID sets the ID field of the mutation.
func withClassID(id int) classOption {
	return func(m *ClassMutation) {
		var (
			err   error
			once  sync.Once
			value *Class
		)
		m.oldValue = func(ctx context.Context) (*Class, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Class.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClass sets the old Class of the mutation.
func withClass(node *Class) classOption {
	return func(m *ClassMutation) {
		m.oldValue = func(context.Context) (*Class, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClassMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClassMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClassMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClassMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Class.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ClassMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ClassMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Class entity.
// If the Class object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ClassMutation) ResetName() {
	m.name = nil
}

// SetGrade sets the "grade" field.
func (m *ClassMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *ClassMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Class entity.
// If the Class object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *ClassMutation) ResetGrade() {
	m.grade = nil
}

// SetSubject sets the "subject" field.
func (m *ClassMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *ClassMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Class entity.
// If the Class object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *ClassMutation) ResetSubject() {
	m.subject = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClassMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClassMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Class entity.
// If the Class object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClassMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ClassMutation builder.
func (m *ClassMutation) Where(ps ...predicate.Class) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClassMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClassMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Class, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClassMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClassMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Class).
func (m *ClassMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClassMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, class.FieldName)
	}
	if m.grade != nil {
		fields = append(fields, class.FieldGrade)
	}
	if m.subject != nil {
		fields = append(fields, class.FieldSubject)
	}
	if m.created_at != nil {
		fields = append(fields, class.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClassMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case class.FieldName:
		return m.Name()
	case class.FieldGrade:
		return m.Grade()
	case class.FieldSubject:
		return m.Subject()
	case class.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClassMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case class.FieldName:
		return m.OldName(ctx)
	case class.FieldGrade:
		return m.OldGrade(ctx)
	case class.FieldSubject:
		return m.OldSubject(ctx)
	case class.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Class field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClassMutation) SetField(name string, value ent.Value) error {
	switch name {
	case class.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case class.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case class.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case class.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Class field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClassMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClassMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClassMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Class numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClassMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClassMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClassMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Class nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClassMutation) ResetField(name string) error {
	switch name {
	case class.FieldName:
		m.ResetName()
		return nil
	case class.FieldGrade:
		m.ResetGrade()
		return nil
	case class.FieldSubject:
		m.ResetSubject()
		return nil
	case class.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Class field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClassMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClassMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClassMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClassMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClassMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClassMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClassMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Class unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClassMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Class edge %s", name)
}

// EnrollmentMutation represents an operation that mutates the Enrollment nodes in the graph.
type EnrollmentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	class_id      *int
	addclass_id   *int
	learner_id    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Enrollment, error)
	predicates    []predicate.Enrollment
}

var _ ent.Mutation = (*EnrollmentMutation)(nil)

// enrollmentOption allows management of the mutation configuration using functional options.
type enrollmentOption func(*EnrollmentMutation)

// newEnrollmentMutation creates new mutation for the Enrollment entity.
func newEnrollmentMutation(c config, op Op, opts ...enrollmentOption) *EnrollmentMutation {
	m := &EnrollmentMutation{
		config:        c,
		op:            op,
		typ:           TypeEnrollment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnrollmentID sets the ID field of the mutation.
func withEnrollmentID(id int) enrollmentOption {
	return func(m *EnrollmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Enrollment
		)
		m.oldValue = func(ctx context.Context) (*Enrollment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Enrollment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnrollment sets the old Enrollment of the mutation.
func withEnrollment(node *Enrollment) enrollmentOption {
	return func(m *EnrollmentMutation) {
		m.oldValue = func(context.Context) (*Enrollment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnrollmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnrollmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnrollmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnrollmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Enrollment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClassID sets the "class_id" field.
func (m *EnrollmentMutation) SetClassID(i int) {
	m.class_id = &i
	m.addclass_id = nil
}

// ClassID returns the value of the "class_id" field in the mutation.
func (m *EnrollmentMutation) ClassID() (r int, exists bool) {
	v := m.class_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClassID returns the old "class_id" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldClassID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassID: %w", err)
	}
	return oldValue.ClassID, nil
}

// AddClassID adds i to the "class_id" field.
func (m *EnrollmentMutation) AddClassID(i int) {
	if m.addclass_id != nil {
		*m.addclass_id += i
	} else {
		m.addclass_id = &i
	}
}

// AddedClassID returns the value that was added to the "class_id" field in this mutation.
func (m *EnrollmentMutation) AddedClassID() (r int, exists bool) {
	v := m.addclass_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetClassID resets all changes to the "class_id" field.
func (m *EnrollmentMutation) ResetClassID() {
	m.class_id = nil
	m.addclass_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *EnrollmentMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *EnrollmentMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *EnrollmentMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EnrollmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnrollmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EnrollmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EnrollmentMutation builder.
func (m *EnrollmentMutation) Where(ps ...predicate.Enrollment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnrollmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnrollmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Enrollment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnrollmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnrollmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Enrollment).
func (m *EnrollmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnrollmentMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.class_id != nil {
		fields = append(fields, enrollment.FieldClassID)
	}
	if m.learner_id != nil {
		fields = append(fields, enrollment.FieldLearnerID)
	}
	if m.created_at != nil {
		fields = append(fields, enrollment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnrollmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case enrollment.FieldClassID:
		return m.ClassID()
	case enrollment.FieldLearnerID:
		return m.LearnerID()
	case enrollment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnrollmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case enrollment.FieldClassID:
		return m.OldClassID(ctx)
	case enrollment.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case enrollment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Enrollment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrollmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case enrollment.FieldClassID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassID(v)
		return nil
	case enrollment.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case enrollment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Enrollment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnrollmentMutation) AddedFields() []string {
	var fields []string
	if m.addclass_id != nil {
		fields = append(fields, enrollment.FieldClassID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnrollmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case enrollment.FieldClassID:
		return m.AddedClassID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrollmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case enrollment.FieldClassID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClassID(v)
		return nil
	}
	return fmt.Errorf("unknown Enrollment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnrollmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnrollmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnrollmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Enrollment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnrollmentMutation) ResetField(name string) error {
	switch name {
	case enrollment.FieldClassID:
		m.ResetClassID()
		return nil
	case enrollment.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case enrollment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Enrollment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnrollmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnrollmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnrollmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnrollmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnrollmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnrollmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnrollmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Enrollment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnrollmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Enrollment edge %s", name)
}

// GenerationEventMutation represents an operation that mutates the GenerationEvent nodes in the graph.
type GenerationEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*GenerationEvent, error)
	predicates       []predicate.GenerationEvent
}

var _ ent.Mutation = (*GenerationEventMutation)(nil)

// generationeventOption allows management of the mutation configuration using functional options.
type generationeventOption func(*GenerationEventMutation)

// newGenerationEventMutation creates new mutation for the GenerationEvent entity.
func newGenerationEventMutation(c config, op Op, opts ...generationeventOption) *GenerationEventMutation {
	m := &GenerationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationEventID sets the ID field of the mutation.
func withGenerationEventID(id int) generationeventOption {
	return func(m *GenerationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationEvent
		)
		m.oldValue = func(ctx context.Context) (*GenerationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationEvent sets the old GenerationEvent of the mutation.
func withGenerationEvent(node *GenerationEvent) generationeventOption {
	return func(m *GenerationEventMutation) {
		m.oldValue = func(context.Context) (*GenerationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *GenerationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *GenerationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *GenerationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *GenerationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *GenerationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *GenerationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *GenerationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *GenerationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *GenerationEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *GenerationEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *GenerationEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *GenerationEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *GenerationEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *GenerationEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *GenerationEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *GenerationEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *GenerationEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *GenerationEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *GenerationEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *GenerationEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *GenerationEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *GenerationEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *GenerationEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *GenerationEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *GenerationEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *GenerationEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *GenerationEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *GenerationEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *GenerationEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *GenerationEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *GenerationEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *GenerationEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *GenerationEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *GenerationEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *GenerationEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *GenerationEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *GenerationEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *GenerationEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the GenerationEventMutation builder.
func (m *GenerationEventMutation) Where(ps ...predicate.GenerationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationEvent).
func (m *GenerationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, generationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, generationevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, generationevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, generationevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, generationevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, generationevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, generationevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, generationevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, generationevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, generationevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationevent.FieldSequence:
		return m.Sequence()
	case generationevent.FieldTimestamp:
		return m.Timestamp()
	case generationevent.FieldProvider:
		return m.Provider()
	case generationevent.FieldModel:
		return m.Model()
	case generationevent.FieldPurpose:
		return m.Purpose()
	case generationevent.FieldInputTokens:
		return m.InputTokens()
	case generationevent.FieldOutputTokens:
		return m.OutputTokens()
	case generationevent.FieldLatencyMs:
		return m.LatencyMs()
	case generationevent.FieldSuccess:
		return m.Success()
	case generationevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationevent.FieldSequence:
		return m.OldSequence(ctx)
	case generationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case generationevent.FieldProvider:
		return m.OldProvider(ctx)
	case generationevent.FieldModel:
		return m.OldModel(ctx)
	case generationevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case generationevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case generationevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case generationevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case generationevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case generationevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case generationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case generationevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case generationevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case generationevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case generationevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case generationevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case generationevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case generationevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case generationevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, generationevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, generationevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, generationevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, generationevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationevent.FieldSequence:
		return m.AddedSequence()
	case generationevent.FieldInputTokens:
		return m.AddedInputTokens()
	case generationevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case generationevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case generationevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case generationevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case generationevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GenerationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationEventMutation) ResetField(name string) error {
	switch name {
	case generationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case generationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case generationevent.FieldProvider:
		m.ResetProvider()
		return nil
	case generationevent.FieldModel:
		m.ResetModel()
		return nil
	case generationevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case generationevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case generationevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case generationevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case generationevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case generationevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GenerationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GenerationEvent edge %s", name)
}

// GroupMutation represents an operation that mutates the Group nodes in the graph.
type GroupMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	task_id            *int
	addtask_id         *int
	class_id           *int
	addclass_id        *int
	number             *int
	addnumber          *int
	members            *[]string
	appendmembers      []string
	combo              *content.Combo
	variant_task_id    *int
	addvariant_task_id *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Group, error)
	predicates         []predicate.Group
}

var _ ent.Mutation = (*GroupMutation)(nil)

// groupOption allows management of the mutation configuration using functional options.
type groupOption func(*GroupMutation)

// newGroupMutation creates new mutation for the Group entity.
func newGroupMutation(c config, op Op, opts ...groupOption) *GroupMutation {
	m := &GroupMutation{
		config:        c,
		op:            op,
		typ:           TypeGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupID sets the ID field of the mutation.
func withGroupID(id int) groupOption {
	return func(m *GroupMutation) {
		var (
			err   error
			once  sync.Once
			value *Group
		)
		m.oldValue = func(ctx context.Context) (*Group, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Group.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroup sets the old Group of the mutation.
func withGroup(node *Group) groupOption {
	return func(m *GroupMutation) {
		m.oldValue = func(context.Context) (*Group, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Group.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *GroupMutation) SetTaskID(i int) {
	m.task_id = &i
	m.addtask_id = nil
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *GroupMutation) TaskID() (r int, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldTaskID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// AddTaskID adds i to the "task_id" field.
func (m *GroupMutation) AddTaskID(i int) {
	if m.addtask_id != nil {
		*m.addtask_id += i
	} else {
		m.addtask_id = &i
	}
}

// AddedTaskID returns the value that was added to the "task_id" field in this mutation.
func (m *GroupMutation) AddedTaskID() (r int, exists bool) {
	v := m.addtask_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *GroupMutation) ResetTaskID() {
	m.task_id = nil
	m.addtask_id = nil
}

// SetClassID sets the "class_id" field.
func (m *GroupMutation) SetClassID(i int) {
	m.class_id = &i
	m.addclass_id = nil
}

// ClassID returns the value of the "class_id" field in the mutation.
func (m *GroupMutation) ClassID() (r int, exists bool) {
	v := m.class_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClassID returns the old "class_id" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldClassID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassID: %w", err)
	}
	return oldValue.ClassID, nil
}

// AddClassID adds i to the "class_id" field.
func (m *GroupMutation) AddClassID(i int) {
	if m.addclass_id != nil {
		*m.addclass_id += i
	} else {
		m.addclass_id = &i
	}
}

// AddedClassID returns the value that was added to the "class_id" field in this mutation.
func (m *GroupMutation) AddedClassID() (r int, exists bool) {
	v := m.addclass_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetClassID resets all changes to the "class_id" field.
func (m *GroupMutation) ResetClassID() {
	m.class_id = nil
	m.addclass_id = nil
}

// SetNumber sets the "number" field.
func (m *GroupMutation) SetNumber(i int) {
	m.number = &i
	m.addnumber = nil
}

// Number returns the value of the "number" field in the mutation.
func (m *GroupMutation) Number() (r int, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// AddNumber adds i to the "number" field.
func (m *GroupMutation) AddNumber(i int) {
	if m.addnumber != nil {
		*m.addnumber += i
	} else {
		m.addnumber = &i
	}
}

// AddedNumber returns the value that was added to the "number" field in this mutation.
func (m *GroupMutation) AddedNumber() (r int, exists bool) {
	v := m.addnumber
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumber resets all changes to the "number" field.
func (m *GroupMutation) ResetNumber() {
	m.number = nil
	m.addnumber = nil
}

// SetMembers sets the "members" field.
func (m *GroupMutation) SetMembers(s []string) {
	m.members = &s
	m.appendmembers = nil
}

// Members returns the value of the "members" field in the mutation.
func (m *GroupMutation) Members() (r []string, exists bool) {
	v := m.members
	if v == nil {
		return
	}
	return *v, true
}

// OldMembers returns the old "members" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldMembers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMembers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMembers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMembers: %w", err)
	}
	return oldValue.Members, nil
}

// AppendMembers adds s to the "members" field.
func (m *GroupMutation) AppendMembers(s []string) {
	m.appendmembers = append(m.appendmembers, s...)
}

// AppendedMembers returns the list of values that were appended to the "members" field in this mutation.
func (m *GroupMutation) AppendedMembers() ([]string, bool) {
	if len(m.appendmembers) == 0 {
		return nil, false
	}
	return m.appendmembers, true
}

// ResetMembers resets all changes to the "members" field.
func (m *GroupMutation) ResetMembers() {
	m.members = nil
	m.appendmembers = nil
}

// SetCombo sets the "combo" field.
func (m *GroupMutation) SetCombo(c content.Combo) {
	m.combo = &c
}

// Combo returns the value of the "combo" field in the mutation.
func (m *GroupMutation) Combo() (r content.Combo, exists bool) {
	v := m.combo
	if v == nil {
		return
	}
	return *v, true
}

// OldCombo returns the old "combo" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCombo(ctx context.Context) (v content.Combo, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCombo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCombo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCombo: %w", err)
	}
	return oldValue.Combo, nil
}

// ResetCombo resets all changes to the "combo" field.
func (m *GroupMutation) ResetCombo() {
	m.combo = nil
}

// SetVariantTaskID sets the "variant_task_id" field.
func (m *GroupMutation) SetVariantTaskID(i int) {
	m.variant_task_id = &i
	m.addvariant_task_id = nil
}

// VariantTaskID returns the value of the "variant_task_id" field in the mutation.
func (m *GroupMutation) VariantTaskID() (r int, exists bool) {
	v := m.variant_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantTaskID returns the old "variant_task_id" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldVariantTaskID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantTaskID: %w", err)
	}
	return oldValue.VariantTaskID, nil
}

// AddVariantTaskID adds i to the "variant_task_id" field.
func (m *GroupMutation) AddVariantTaskID(i int) {
	if m.addvariant_task_id != nil {
		*m.addvariant_task_id += i
	} else {
		m.addvariant_task_id = &i
	}
}

// AddedVariantTaskID returns the value that was added to the "variant_task_id" field in this mutation.
func (m *GroupMutation) AddedVariantTaskID() (r int, exists bool) {
	v := m.addvariant_task_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearVariantTaskID clears the value of the "variant_task_id" field.
func (m *GroupMutation) ClearVariantTaskID() {
	m.variant_task_id = nil
	m.addvariant_task_id = nil
	m.clearedFields[group.FieldVariantTaskID] = struct{}{}
}

// VariantTaskIDCleared returns if the "variant_task_id" field was cleared in this mutation.
func (m *GroupMutation) VariantTaskIDCleared() bool {
	_, ok := m.clearedFields[group.FieldVariantTaskID]
	return ok
}

// ResetVariantTaskID resets all changes to the "variant_task_id" field.
func (m *GroupMutation) ResetVariantTaskID() {
	m.variant_task_id = nil
	m.addvariant_task_id = nil
	delete(m.clearedFields, group.FieldVariantTaskID)
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GroupMutation builder.
func (m *GroupMutation) Where(ps ...predicate.Group) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Group, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Group).
func (m *GroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task_id != nil {
		fields = append(fields, group.FieldTaskID)
	}
	if m.class_id != nil {
		fields = append(fields, group.FieldClassID)
	}
	if m.number != nil {
		fields = append(fields, group.FieldNumber)
	}
	if m.members != nil {
		fields = append(fields, group.FieldMembers)
	}
	if m.combo != nil {
		fields = append(fields, group.FieldCombo)
	}
	if m.variant_task_id != nil {
		fields = append(fields, group.FieldVariantTaskID)
	}
	if m.created_at != nil {
		fields = append(fields, group.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case group.FieldTaskID:
		return m.TaskID()
	case group.FieldClassID:
		return m.ClassID()
	case group.FieldNumber:
		return m.Number()
	case group.FieldMembers:
		return m.Members()
	case group.FieldCombo:
		return m.Combo()
	case group.FieldVariantTaskID:
		return m.VariantTaskID()
	case group.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case group.FieldTaskID:
		return m.OldTaskID(ctx)
	case group.FieldClassID:
		return m.OldClassID(ctx)
	case group.FieldNumber:
		return m.OldNumber(ctx)
	case group.FieldMembers:
		return m.OldMembers(ctx)
	case group.FieldCombo:
		return m.OldCombo(ctx)
	case group.FieldVariantTaskID:
		return m.OldVariantTaskID(ctx)
	case group.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Group field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case group.FieldTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case group.FieldClassID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassID(v)
		return nil
	case group.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case group.FieldMembers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMembers(v)
		return nil
	case group.FieldCombo:
		v, ok := value.(content.Combo)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCombo(v)
		return nil
	case group.FieldVariantTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantTaskID(v)
		return nil
	case group.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMutation) AddedFields() []string {
	var fields []string
	if m.addtask_id != nil {
		fields = append(fields, group.FieldTaskID)
	}
	if m.addclass_id != nil {
		fields = append(fields, group.FieldClassID)
	}
	if m.addnumber != nil {
		fields = append(fields, group.FieldNumber)
	}
	if m.addvariant_task_id != nil {
		fields = append(fields, group.FieldVariantTaskID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case group.FieldTaskID:
		return m.AddedTaskID()
	case group.FieldClassID:
		return m.AddedClassID()
	case group.FieldNumber:
		return m.AddedNumber()
	case group.FieldVariantTaskID:
		return m.AddedVariantTaskID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case group.FieldTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskID(v)
		return nil
	case group.FieldClassID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClassID(v)
		return nil
	case group.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumber(v)
		return nil
	case group.FieldVariantTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVariantTaskID(v)
		return nil
	}
	return fmt.Errorf("unknown Group numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(group.FieldVariantTaskID) {
		fields = append(fields, group.FieldVariantTaskID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMutation) ClearField(name string) error {
	switch name {
	case group.FieldVariantTaskID:
		m.ClearVariantTaskID()
		return nil
	}
	return fmt.Errorf("unknown Group nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMutation) ResetField(name string) error {
	switch name {
	case group.FieldTaskID:
		m.ResetTaskID()
		return nil
	case group.FieldClassID:
		m.ResetClassID()
		return nil
	case group.FieldNumber:
		m.ResetNumber()
		return nil
	case group.FieldMembers:
		m.ResetMembers()
		return nil
	case group.FieldCombo:
		m.ResetCombo()
		return nil
	case group.FieldVariantTaskID:
		m.ResetVariantTaskID()
		return nil
	case group.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Group unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Group edge %s", name)
}

// PerformanceProfileMutation represents an operation that mutates the PerformanceProfile nodes in the graph.
type PerformanceProfileMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	combo_key            *string
	topic                *string
	purpose              *string
	length_bucket        *string
	kind                 *string
	grade                *string
	subject              *string
	clarity_avg          *float64
	addclarity_avg       *float64
	engagement_avg       *float64
	addengagement_avg    *float64
	confidence_avg       *float64
	addconfidence_avg    *float64
	attention_avg        *float64
	addattention_avg     *float64
	fatigue_slope        *float64
	addfatigue_slope     *float64
	session_count        *int
	addsession_count     *int
	performance_score    *float64
	addperformance_score *float64
	profile_status       *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*PerformanceProfile, error)
	predicates           []predicate.PerformanceProfile
}

var _ ent.Mutation = (*PerformanceProfileMutation)(nil)

// performanceprofileOption allows management of the mutation configuration using functional options.
type performanceprofileOption func(*PerformanceProfileMutation)

// newPerformanceProfileMutation creates new mutation for the PerformanceProfile entity.
func newPerformanceProfileMutation(c config, op Op, opts ...performanceprofileOption) *PerformanceProfileMutation {
	m := &PerformanceProfileMutation{
		config:        c,
		op:            op,
		typ:           TypePerformanceProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPerformanceProfileID sets the ID field of the mutation.
func withPerformanceProfileID(id int) performanceprofileOption {
	return func(m *PerformanceProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *PerformanceProfile
		)
		m.oldValue = func(ctx context.Context) (*PerformanceProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PerformanceProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerformanceProfile sets the old PerformanceProfile of the mutation.
func withPerformanceProfile(node *PerformanceProfile) performanceprofileOption {
	return func(m *PerformanceProfileMutation) {
		m.oldValue = func(context.Context) (*PerformanceProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PerformanceProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PerformanceProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PerformanceProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PerformanceProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PerformanceProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetComboKey sets the "combo_key" field.
func (m *PerformanceProfileMutation) SetComboKey(s string) {
	m.combo_key = &s
}

// ComboKey returns the value of the "combo_key" field in the mutation.
func (m *PerformanceProfileMutation) ComboKey() (r string, exists bool) {
	v := m.combo_key
	if v == nil {
		return
	}
	return *v, true
}

// OldComboKey returns the old "combo_key" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldComboKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComboKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComboKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComboKey: %w", err)
	}
	return oldValue.ComboKey, nil
}

// ResetComboKey resets all changes to the "combo_key" field.
func (m *PerformanceProfileMutation) ResetComboKey() {
	m.combo_key = nil
}

// SetTopic sets the "topic" field.
func (m *PerformanceProfileMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *PerformanceProfileMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *PerformanceProfileMutation) ResetTopic() {
	m.topic = nil
}

// SetPurpose sets the "purpose" field.
func (m *PerformanceProfileMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *PerformanceProfileMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *PerformanceProfileMutation) ResetPurpose() {
	m.purpose = nil
}

// SetLengthBucket sets the "length_bucket" field.
func (m *PerformanceProfileMutation) SetLengthBucket(s string) {
	m.length_bucket = &s
}

// LengthBucket returns the value of the "length_bucket" field in the mutation.
func (m *PerformanceProfileMutation) LengthBucket() (r string, exists bool) {
	v := m.length_bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldLengthBucket returns the old "length_bucket" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldLengthBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLengthBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLengthBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLengthBucket: %w", err)
	}
	return oldValue.LengthBucket, nil
}

// ResetLengthBucket resets all changes to the "length_bucket" field.
func (m *PerformanceProfileMutation) ResetLengthBucket() {
	m.length_bucket = nil
}

// SetKind sets the "kind" field.
func (m *PerformanceProfileMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *PerformanceProfileMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *PerformanceProfileMutation) ResetKind() {
	m.kind = nil
}

// SetGrade sets the "grade" field.
func (m *PerformanceProfileMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *PerformanceProfileMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *PerformanceProfileMutation) ResetGrade() {
	m.grade = nil
}

// SetSubject sets the "subject" field.
func (m *PerformanceProfileMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *PerformanceProfileMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *PerformanceProfileMutation) ResetSubject() {
	m.subject = nil
}

// SetClarityAvg sets the "clarity_avg" field.
func (m *PerformanceProfileMutation) SetClarityAvg(f float64) {
	m.clarity_avg = &f
	m.addclarity_avg = nil
}

// ClarityAvg returns the value of the "clarity_avg" field in the mutation.
func (m *PerformanceProfileMutation) ClarityAvg() (r float64, exists bool) {
	v := m.clarity_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldClarityAvg returns the old "clarity_avg" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldClarityAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClarityAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClarityAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClarityAvg: %w", err)
	}
	return oldValue.ClarityAvg, nil
}

// AddClarityAvg adds f to the "clarity_avg" field.
func (m *PerformanceProfileMutation) AddClarityAvg(f float64) {
	if m.addclarity_avg != nil {
		*m.addclarity_avg += f
	} else {
		m.addclarity_avg = &f
	}
}

// AddedClarityAvg returns the value that was added to the "clarity_avg" field in this mutation.
func (m *PerformanceProfileMutation) AddedClarityAvg() (r float64, exists bool) {
	v := m.addclarity_avg
	if v == nil {
		return
	}
	return *v, true
}

// ResetClarityAvg resets all changes to the "clarity_avg" field.
func (m *PerformanceProfileMutation) ResetClarityAvg() {
	m.clarity_avg = nil
	m.addclarity_avg = nil
}

// SetEngagementAvg sets the "engagement_avg" field.
func (m *PerformanceProfileMutation) SetEngagementAvg(f float64) {
	m.engagement_avg = &f
	m.addengagement_avg = nil
}

// EngagementAvg returns the value of the "engagement_avg" field in the mutation.
func (m *PerformanceProfileMutation) EngagementAvg() (r float64, exists bool) {
	v := m.engagement_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementAvg returns the old "engagement_avg" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldEngagementAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementAvg: %w", err)
	}
	return oldValue.EngagementAvg, nil
}

// AddEngagementAvg adds f to the "engagement_avg" field.
func (m *PerformanceProfileMutation) AddEngagementAvg(f float64) {
	if m.addengagement_avg != nil {
		*m.addengagement_avg += f
	} else {
		m.addengagement_avg = &f
	}
}

// AddedEngagementAvg returns the value that was added to the "engagement_avg" field in this mutation.
func (m *PerformanceProfileMutation) AddedEngagementAvg() (r float64, exists bool) {
	v := m.addengagement_avg
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagementAvg resets all changes to the "engagement_avg" field.
func (m *PerformanceProfileMutation) ResetEngagementAvg() {
	m.engagement_avg = nil
	m.addengagement_avg = nil
}

// SetConfidenceAvg sets the "confidence_avg" field.
func (m *PerformanceProfileMutation) SetConfidenceAvg(f float64) {
	m.confidence_avg = &f
	m.addconfidence_avg = nil
}

// ConfidenceAvg returns the value of the "confidence_avg" field in the mutation.
func (m *PerformanceProfileMutation) ConfidenceAvg() (r float64, exists bool) {
	v := m.confidence_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceAvg returns the old "confidence_avg" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldConfidenceAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceAvg: %w", err)
	}
	return oldValue.ConfidenceAvg, nil
}

// AddConfidenceAvg adds f to the "confidence_avg" field.
func (m *PerformanceProfileMutation) AddConfidenceAvg(f float64) {
	if m.addconfidence_avg != nil {
		*m.addconfidence_avg += f
	} else {
		m.addconfidence_avg = &f
	}
}

// AddedConfidenceAvg returns the value that was added to the "confidence_avg" field in this mutation.
func (m *PerformanceProfileMutation) AddedConfidenceAvg() (r float64, exists bool) {
	v := m.addconfidence_avg
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceAvg resets all changes to the "confidence_avg" field.
func (m *PerformanceProfileMutation) ResetConfidenceAvg() {
	m.confidence_avg = nil
	m.addconfidence_avg = nil
}

// SetAttentionAvg sets the "attention_avg" field.
func (m *PerformanceProfileMutation) SetAttentionAvg(f float64) {
	m.attention_avg = &f
	m.addattention_avg = nil
}

// AttentionAvg returns the value of the "attention_avg" field in the mutation.
func (m *PerformanceProfileMutation) AttentionAvg() (r float64, exists bool) {
	v := m.attention_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldAttentionAvg returns the old "attention_avg" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldAttentionAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttentionAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttentionAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttentionAvg: %w", err)
	}
	return oldValue.AttentionAvg, nil
}

// AddAttentionAvg adds f to the "attention_avg" field.
func (m *PerformanceProfileMutation) AddAttentionAvg(f float64) {
	if m.addattention_avg != nil {
		*m.addattention_avg += f
	} else {
		m.addattention_avg = &f
	}
}

// AddedAttentionAvg returns the value that was added to the "attention_avg" field in this mutation.
func (m *PerformanceProfileMutation) AddedAttentionAvg() (r float64, exists bool) {
	v := m.addattention_avg
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttentionAvg resets all changes to the "attention_avg" field.
func (m *PerformanceProfileMutation) ResetAttentionAvg() {
	m.attention_avg = nil
	m.addattention_avg = nil
}

// SetFatigueSlope sets the "fatigue_slope" field.
func (m *PerformanceProfileMutation) SetFatigueSlope(f float64) {
	m.fatigue_slope = &f
	m.addfatigue_slope = nil
}

// FatigueSlope returns the value of the "fatigue_slope" field in the mutation.
func (m *PerformanceProfileMutation) FatigueSlope() (r float64, exists bool) {
	v := m.fatigue_slope
	if v == nil {
		return
	}
	return *v, true
}

// OldFatigueSlope returns the old "fatigue_slope" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldFatigueSlope(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFatigueSlope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFatigueSlope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFatigueSlope: %w", err)
	}
	return oldValue.FatigueSlope, nil
}

// AddFatigueSlope adds f to the "fatigue_slope" field.
func (m *PerformanceProfileMutation) AddFatigueSlope(f float64) {
	if m.addfatigue_slope != nil {
		*m.addfatigue_slope += f
	} else {
		m.addfatigue_slope = &f
	}
}

// AddedFatigueSlope returns the value that was added to the "fatigue_slope" field in this mutation.
func (m *PerformanceProfileMutation) AddedFatigueSlope() (r float64, exists bool) {
	v := m.addfatigue_slope
	if v == nil {
		return
	}
	return *v, true
}

// ResetFatigueSlope resets all changes to the "fatigue_slope" field.
func (m *PerformanceProfileMutation) ResetFatigueSlope() {
	m.fatigue_slope = nil
	m.addfatigue_slope = nil
}

// SetSessionCount sets the "session_count" field.
func (m *PerformanceProfileMutation) SetSessionCount(i int) {
	m.session_count = &i
	m.addsession_count = nil
}

// SessionCount returns the value of the "session_count" field in the mutation.
func (m *PerformanceProfileMutation) SessionCount() (r int, exists bool) {
	v := m.session_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionCount returns the old "session_count" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldSessionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionCount: %w", err)
	}
	return oldValue.SessionCount, nil
}

// AddSessionCount adds i to the "session_count" field.
func (m *PerformanceProfileMutation) AddSessionCount(i int) {
	if m.addsession_count != nil {
		*m.addsession_count += i
	} else {
		m.addsession_count = &i
	}
}

// AddedSessionCount returns the value that was added to the "session_count" field in this mutation.
func (m *PerformanceProfileMutation) AddedSessionCount() (r int, exists bool) {
	v := m.addsession_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionCount resets all changes to the "session_count" field.
func (m *PerformanceProfileMutation) ResetSessionCount() {
	m.session_count = nil
	m.addsession_count = nil
}

// SetPerformanceScore sets the "performance_score" field.
func (m *PerformanceProfileMutation) SetPerformanceScore(f float64) {
	m.performance_score = &f
	m.addperformance_score = nil
}

// PerformanceScore returns the value of the "performance_score" field in the mutation.
func (m *PerformanceProfileMutation) PerformanceScore() (r float64, exists bool) {
	v := m.performance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformanceScore returns the old "performance_score" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldPerformanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformanceScore: %w", err)
	}
	return oldValue.PerformanceScore, nil
}

// AddPerformanceScore adds f to the "performance_score" field.
func (m *PerformanceProfileMutation) AddPerformanceScore(f float64) {
	if m.addperformance_score != nil {
		*m.addperformance_score += f
	} else {
		m.addperformance_score = &f
	}
}

// AddedPerformanceScore returns the value that was added to the "performance_score" field in this mutation.
func (m *PerformanceProfileMutation) AddedPerformanceScore() (r float64, exists bool) {
	v := m.addperformance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPerformanceScore resets all changes to the "performance_score" field.
func (m *PerformanceProfileMutation) ResetPerformanceScore() {
	m.performance_score = nil
	m.addperformance_score = nil
}

// SetProfileStatus sets the "profile_status" field.
func (m *PerformanceProfileMutation) SetProfileStatus(s string) {
	m.profile_status = &s
}

// ProfileStatus returns the value of the "profile_status" field in the mutation.
func (m *PerformanceProfileMutation) ProfileStatus() (r string, exists bool) {
	v := m.profile_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileStatus returns the old "profile_status" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldProfileStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileStatus: %w", err)
	}
	return oldValue.ProfileStatus, nil
}

// ResetProfileStatus resets all changes to the "profile_status" field.
func (m *PerformanceProfileMutation) ResetProfileStatus() {
	m.profile_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PerformanceProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PerformanceProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PerformanceProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PerformanceProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PerformanceProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PerformanceProfile entity.
// If the PerformanceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PerformanceProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PerformanceProfileMutation builder.
func (m *PerformanceProfileMutation) Where(ps ...predicate.PerformanceProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PerformanceProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PerformanceProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PerformanceProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PerformanceProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PerformanceProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PerformanceProfile).
func (m *PerformanceProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PerformanceProfileMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.combo_key != nil {
		fields = append(fields, performanceprofile.FieldComboKey)
	}
	if m.topic != nil {
		fields = append(fields, performanceprofile.FieldTopic)
	}
	if m.purpose != nil {
		fields = append(fields, performanceprofile.FieldPurpose)
	}
	if m.length_bucket != nil {
		fields = append(fields, performanceprofile.FieldLengthBucket)
	}
	if m.kind != nil {
		fields = append(fields, performanceprofile.FieldKind)
	}
	if m.grade != nil {
		fields = append(fields, performanceprofile.FieldGrade)
	}
	if m.subject != nil {
		fields = append(fields, performanceprofile.FieldSubject)
	}
	if m.clarity_avg != nil {
		fields = append(fields, performanceprofile.FieldClarityAvg)
	}
	if m.engagement_avg != nil {
		fields = append(fields, performanceprofile.FieldEngagementAvg)
	}
	if m.confidence_avg != nil {
		fields = append(fields, performanceprofile.FieldConfidenceAvg)
	}
	if m.attention_avg != nil {
		fields = append(fields, performanceprofile.FieldAttentionAvg)
	}
	if m.fatigue_slope != nil {
		fields = append(fields, performanceprofile.FieldFatigueSlope)
	}
	if m.session_count != nil {
		fields = append(fields, performanceprofile.FieldSessionCount)
	}
	if m.performance_score != nil {
		fields = append(fields, performanceprofile.FieldPerformanceScore)
	}
	if m.profile_status != nil {
		fields = append(fields, performanceprofile.FieldProfileStatus)
	}
	if m.created_at != nil {
		fields = append(fields, performanceprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, performanceprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PerformanceProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case performanceprofile.FieldComboKey:
		return m.ComboKey()
	case performanceprofile.FieldTopic:
		return m.Topic()
	case performanceprofile.FieldPurpose:
		return m.Purpose()
	case performanceprofile.FieldLengthBucket:
		return m.LengthBucket()
	case performanceprofile.FieldKind:
		return m.Kind()
	case performanceprofile.FieldGrade:
		return m.Grade()
	case performanceprofile.FieldSubject:
		return m.Subject()
	case performanceprofile.FieldClarityAvg:
		return m.ClarityAvg()
	case performanceprofile.FieldEngagementAvg:
		return m.EngagementAvg()
	case performanceprofile.FieldConfidenceAvg:
		return m.ConfidenceAvg()
	case performanceprofile.FieldAttentionAvg:
		return m.AttentionAvg()
	case performanceprofile.FieldFatigueSlope:
		return m.FatigueSlope()
	case performanceprofile.FieldSessionCount:
		return m.SessionCount()
	case performanceprofile.FieldPerformanceScore:
		return m.PerformanceScore()
	case performanceprofile.FieldProfileStatus:
		return m.ProfileStatus()
	case performanceprofile.FieldCreatedAt:
		return m.CreatedAt()
	case performanceprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PerformanceProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case performanceprofile.FieldComboKey:
		return m.OldComboKey(ctx)
	case performanceprofile.FieldTopic:
		return m.OldTopic(ctx)
	case performanceprofile.FieldPurpose:
		return m.OldPurpose(ctx)
	case performanceprofile.FieldLengthBucket:
		return m.OldLengthBucket(ctx)
	case performanceprofile.FieldKind:
		return m.OldKind(ctx)
	case performanceprofile.FieldGrade:
		return m.OldGrade(ctx)
	case performanceprofile.FieldSubject:
		return m.OldSubject(ctx)
	case performanceprofile.FieldClarityAvg:
		return m.OldClarityAvg(ctx)
	case performanceprofile.FieldEngagementAvg:
		return m.OldEngagementAvg(ctx)
	case performanceprofile.FieldConfidenceAvg:
		return m.OldConfidenceAvg(ctx)
	case performanceprofile.FieldAttentionAvg:
		return m.OldAttentionAvg(ctx)
	case performanceprofile.FieldFatigueSlope:
		return m.OldFatigueSlope(ctx)
	case performanceprofile.FieldSessionCount:
		return m.OldSessionCount(ctx)
	case performanceprofile.FieldPerformanceScore:
		return m.OldPerformanceScore(ctx)
	case performanceprofile.FieldProfileStatus:
		return m.OldProfileStatus(ctx)
	case performanceprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case performanceprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PerformanceProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case performanceprofile.FieldComboKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComboKey(v)
		return nil
	case performanceprofile.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case performanceprofile.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case performanceprofile.FieldLengthBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLengthBucket(v)
		return nil
	case performanceprofile.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case performanceprofile.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case performanceprofile.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case performanceprofile.FieldClarityAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClarityAvg(v)
		return nil
	case performanceprofile.FieldEngagementAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementAvg(v)
		return nil
	case performanceprofile.FieldConfidenceAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceAvg(v)
		return nil
	case performanceprofile.FieldAttentionAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttentionAvg(v)
		return nil
	case performanceprofile.FieldFatigueSlope:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFatigueSlope(v)
		return nil
	case performanceprofile.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionCount(v)
		return nil
	case performanceprofile.FieldPerformanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformanceScore(v)
		return nil
	case performanceprofile.FieldProfileStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileStatus(v)
		return nil
	case performanceprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case performanceprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PerformanceProfileMutation) AddedFields() []string {
	var fields []string
	if m.addclarity_avg != nil {
		fields = append(fields, performanceprofile.FieldClarityAvg)
	}
	if m.addengagement_avg != nil {
		fields = append(fields, performanceprofile.FieldEngagementAvg)
	}
	if m.addconfidence_avg != nil {
		fields = append(fields, performanceprofile.FieldConfidenceAvg)
	}
	if m.addattention_avg != nil {
		fields = append(fields, performanceprofile.FieldAttentionAvg)
	}
	if m.addfatigue_slope != nil {
		fields = append(fields, performanceprofile.FieldFatigueSlope)
	}
	if m.addsession_count != nil {
		fields = append(fields, performanceprofile.FieldSessionCount)
	}
	if m.addperformance_score != nil {
		fields = append(fields, performanceprofile.FieldPerformanceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PerformanceProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case performanceprofile.FieldClarityAvg:
		return m.AddedClarityAvg()
	case performanceprofile.FieldEngagementAvg:
		return m.AddedEngagementAvg()
	case performanceprofile.FieldConfidenceAvg:
		return m.AddedConfidenceAvg()
	case performanceprofile.FieldAttentionAvg:
		return m.AddedAttentionAvg()
	case performanceprofile.FieldFatigueSlope:
		return m.AddedFatigueSlope()
	case performanceprofile.FieldSessionCount:
		return m.AddedSessionCount()
	case performanceprofile.FieldPerformanceScore:
		return m.AddedPerformanceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case performanceprofile.FieldClarityAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClarityAvg(v)
		return nil
	case performanceprofile.FieldEngagementAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementAvg(v)
		return nil
	case performanceprofile.FieldConfidenceAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceAvg(v)
		return nil
	case performanceprofile.FieldAttentionAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttentionAvg(v)
		return nil
	case performanceprofile.FieldFatigueSlope:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFatigueSlope(v)
		return nil
	case performanceprofile.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionCount(v)
		return nil
	case performanceprofile.FieldPerformanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPerformanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PerformanceProfileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PerformanceProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PerformanceProfileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PerformanceProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PerformanceProfileMutation) ResetField(name string) error {
	switch name {
	case performanceprofile.FieldComboKey:
		m.ResetComboKey()
		return nil
	case performanceprofile.FieldTopic:
		m.ResetTopic()
		return nil
	case performanceprofile.FieldPurpose:
		m.ResetPurpose()
		return nil
	case performanceprofile.FieldLengthBucket:
		m.ResetLengthBucket()
		return nil
	case performanceprofile.FieldKind:
		m.ResetKind()
		return nil
	case performanceprofile.FieldGrade:
		m.ResetGrade()
		return nil
	case performanceprofile.FieldSubject:
		m.ResetSubject()
		return nil
	case performanceprofile.FieldClarityAvg:
		m.ResetClarityAvg()
		return nil
	case performanceprofile.FieldEngagementAvg:
		m.ResetEngagementAvg()
		return nil
	case performanceprofile.FieldConfidenceAvg:
		m.ResetConfidenceAvg()
		return nil
	case performanceprofile.FieldAttentionAvg:
		m.ResetAttentionAvg()
		return nil
	case performanceprofile.FieldFatigueSlope:
		m.ResetFatigueSlope()
		return nil
	case performanceprofile.FieldSessionCount:
		m.ResetSessionCount()
		return nil
	case performanceprofile.FieldPerformanceScore:
		m.ResetPerformanceScore()
		return nil
	case performanceprofile.FieldProfileStatus:
		m.ResetProfileStatus()
		return nil
	case performanceprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case performanceprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PerformanceProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PerformanceProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PerformanceProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PerformanceProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PerformanceProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PerformanceProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PerformanceProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PerformanceProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PerformanceProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PerformanceProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PerformanceProfile edge %s", name)
}

// SessionFeedbackMutation represents an operation that mutates the SessionFeedback nodes in the graph.
type SessionFeedbackMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	sequence             *int64
	addsequence          *int64
	timestamp            *time.Time
	session_id           *string
	learner_id           *string
	class_id             *int
	addclass_id          *int
	task_id              *int
	addtask_id           *int
	combo_key            *string
	combo                *content.Combo
	kind                 *string
	topic                *string
	purpose              *string
	length_bucket        *string
	grade                *string
	subject              *string
	clarity              *float64
	addclarity           *float64
	engagement           *float64
	addengagement        *float64
	cognitive_load       *float64
	addcognitive_load    *float64
	attention_span       *float64
	addattention_span    *float64
	confidence           *float64
	addconfidence        *float64
	fatigue_trend        *string
	fatigue_slope        *float64
	addfatigue_slope     *float64
	raw_metrics          *map[string]float64
	survey_submission_id *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SessionFeedback, error)
	predicates           []predicate.SessionFeedback
}

var _ ent.Mutation = (*SessionFeedbackMutation)(nil)

// sessionfeedbackOption allows management of the mutation configuration using functional options.
type sessionfeedbackOption func(*SessionFeedbackMutation)

// newSessionFeedbackMutation creates new mutation for the SessionFeedback entity.
func newSessionFeedbackMutation(c config, op Op, opts ...sessionfeedbackOption) *SessionFeedbackMutation {
	m := &SessionFeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionFeedbackID sets the ID field of the mutation.
func withSessionFeedbackID(id int) sessionfeedbackOption {
	return func(m *SessionFeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionFeedback
		)
		m.oldValue = func(ctx context.Context) (*SessionFeedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionFeedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionFeedback sets the old SessionFeedback of the mutation.
func withSessionFeedback(node *SessionFeedback) sessionfeedbackOption {
	return func(m *SessionFeedbackMutation) {
		m.oldValue = func(context.Context) (*SessionFeedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionFeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionFeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionFeedbackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionFeedbackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionFeedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionFeedbackMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionFeedbackMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionFeedbackMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionFeedbackMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionFeedbackMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionFeedbackMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionFeedbackMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionFeedbackMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionFeedbackMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionFeedbackMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionFeedbackMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *SessionFeedbackMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *SessionFeedbackMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *SessionFeedbackMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetClassID sets the "class_id" field.
func (m *SessionFeedbackMutation) SetClassID(i int) {
	m.class_id = &i
	m.addclass_id = nil
}

// ClassID returns the value of the "class_id" field in the mutation.
func (m *SessionFeedbackMutation) ClassID() (r int, exists bool) {
	v := m.class_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClassID returns the old "class_id" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldClassID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassID: %w", err)
	}
	return oldValue.ClassID, nil
}

// AddClassID adds i to the "class_id" field.
func (m *SessionFeedbackMutation) AddClassID(i int) {
	if m.addclass_id != nil {
		*m.addclass_id += i
	} else {
		m.addclass_id = &i
	}
}

// AddedClassID returns the value that was added to the "class_id" field in this mutation.
func (m *SessionFeedbackMutation) AddedClassID() (r int, exists bool) {
	v := m.addclass_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetClassID resets all changes to the "class_id" field.
func (m *SessionFeedbackMutation) ResetClassID() {
	m.class_id = nil
	m.addclass_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *SessionFeedbackMutation) SetTaskID(i int) {
	m.task_id = &i
	m.addtask_id = nil
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SessionFeedbackMutation) TaskID() (r int, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldTaskID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// AddTaskID adds i to the "task_id" field.
func (m *SessionFeedbackMutation) AddTaskID(i int) {
	if m.addtask_id != nil {
		*m.addtask_id += i
	} else {
		m.addtask_id = &i
	}
}

// AddedTaskID returns the value that was added to the "task_id" field in this mutation.
func (m *SessionFeedbackMutation) AddedTaskID() (r int, exists bool) {
	v := m.addtask_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SessionFeedbackMutation) ResetTaskID() {
	m.task_id = nil
	m.addtask_id = nil
}

// SetComboKey sets the "combo_key" field.
func (m *SessionFeedbackMutation) SetComboKey(s string) {
	m.combo_key = &s
}

// ComboKey returns the value of the "combo_key" field in the mutation.
func (m *SessionFeedbackMutation) ComboKey() (r string, exists bool) {
	v := m.combo_key
	if v == nil {
		return
	}
	return *v, true
}

// OldComboKey returns the old "combo_key" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldComboKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComboKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComboKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComboKey: %w", err)
	}
	return oldValue.ComboKey, nil
}

// ResetComboKey resets all changes to the "combo_key" field.
func (m *SessionFeedbackMutation) ResetComboKey() {
	m.combo_key = nil
}

// SetCombo sets the "combo" field.
func (m *SessionFeedbackMutation) SetCombo(c content.Combo) {
	m.combo = &c
}

// Combo returns the value of the "combo" field in the mutation.
func (m *SessionFeedbackMutation) Combo() (r content.Combo, exists bool) {
	v := m.combo
	if v == nil {
		return
	}
	return *v, true
}

// OldCombo returns the old "combo" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldCombo(ctx context.Context) (v content.Combo, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCombo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCombo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCombo: %w", err)
	}
	return oldValue.Combo, nil
}

// ClearCombo clears the value of the "combo" field.
func (m *SessionFeedbackMutation) ClearCombo() {
	m.combo = nil
	m.clearedFields[sessionfeedback.FieldCombo] = struct{}{}
}

// ComboCleared returns if the "combo" field was cleared in this mutation.
func (m *SessionFeedbackMutation) ComboCleared() bool {
	_, ok := m.clearedFields[sessionfeedback.FieldCombo]
	return ok
}

// ResetCombo resets all changes to the "combo" field.
func (m *SessionFeedbackMutation) ResetCombo() {
	m.combo = nil
	delete(m.clearedFields, sessionfeedback.FieldCombo)
}

// SetKind sets the "kind" field.
func (m *SessionFeedbackMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SessionFeedbackMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SessionFeedbackMutation) ResetKind() {
	m.kind = nil
}

// SetTopic sets the "topic" field.
func (m *SessionFeedbackMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *SessionFeedbackMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *SessionFeedbackMutation) ResetTopic() {
	m.topic = nil
}

// SetPurpose sets the "purpose" field.
func (m *SessionFeedbackMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *SessionFeedbackMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *SessionFeedbackMutation) ResetPurpose() {
	m.purpose = nil
}

// SetLengthBucket sets the "length_bucket" field.
func (m *SessionFeedbackMutation) SetLengthBucket(s string) {
	m.length_bucket = &s
}

// LengthBucket returns the value of the "length_bucket" field in the mutation.
func (m *SessionFeedbackMutation) LengthBucket() (r string, exists bool) {
	v := m.length_bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldLengthBucket returns the old "length_bucket" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldLengthBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLengthBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLengthBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLengthBucket: %w", err)
	}
	return oldValue.LengthBucket, nil
}

// ResetLengthBucket resets all changes to the "length_bucket" field.
func (m *SessionFeedbackMutation) ResetLengthBucket() {
	m.length_bucket = nil
}

// SetGrade sets the "grade" field.
func (m *SessionFeedbackMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *SessionFeedbackMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *SessionFeedbackMutation) ResetGrade() {
	m.grade = nil
}

// SetSubject sets the "subject" field.
func (m *SessionFeedbackMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *SessionFeedbackMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *SessionFeedbackMutation) ResetSubject() {
	m.subject = nil
}

// SetClarity sets the "clarity" field.
func (m *SessionFeedbackMutation) SetClarity(f float64) {
	m.clarity = &f
	m.addclarity = nil
}

// Clarity returns the value of the "clarity" field in the mutation.
func (m *SessionFeedbackMutation) Clarity() (r float64, exists bool) {
	v := m.clarity
	if v == nil {
		return
	}
	return *v, true
}

// OldClarity returns the old "clarity" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldClarity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClarity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClarity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClarity: %w", err)
	}
	return oldValue.Clarity, nil
}

// AddClarity adds f to the "clarity" field.
func (m *SessionFeedbackMutation) AddClarity(f float64) {
	if m.addclarity != nil {
		*m.addclarity += f
	} else {
		m.addclarity = &f
	}
}

// AddedClarity returns the value that was added to the "clarity" field in this mutation.
func (m *SessionFeedbackMutation) AddedClarity() (r float64, exists bool) {
	v := m.addclarity
	if v == nil {
		return
	}
	return *v, true
}

// ResetClarity resets all changes to the "clarity" field.
func (m *SessionFeedbackMutation) ResetClarity() {
	m.clarity = nil
	m.addclarity = nil
}

// SetEngagement sets the "engagement" field.
func (m *SessionFeedbackMutation) SetEngagement(f float64) {
	m.engagement = &f
	m.addengagement = nil
}

// Engagement returns the value of the "engagement" field in the mutation.
func (m *SessionFeedbackMutation) Engagement() (r float64, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagement returns the old "engagement" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldEngagement(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagement: %w", err)
	}
	return oldValue.Engagement, nil
}

// AddEngagement adds f to the "engagement" field.
func (m *SessionFeedbackMutation) AddEngagement(f float64) {
	if m.addengagement != nil {
		*m.addengagement += f
	} else {
		m.addengagement = &f
	}
}

// AddedEngagement returns the value that was added to the "engagement" field in this mutation.
func (m *SessionFeedbackMutation) AddedEngagement() (r float64, exists bool) {
	v := m.addengagement
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagement resets all changes to the "engagement" field.
func (m *SessionFeedbackMutation) ResetEngagement() {
	m.engagement = nil
	m.addengagement = nil
}

// SetCognitiveLoad sets the "cognitive_load" field.
func (m *SessionFeedbackMutation) SetCognitiveLoad(f float64) {
	m.cognitive_load = &f
	m.addcognitive_load = nil
}

// CognitiveLoad returns the value of the "cognitive_load" field in the mutation.
func (m *SessionFeedbackMutation) CognitiveLoad() (r float64, exists bool) {
	v := m.cognitive_load
	if v == nil {
		return
	}
	return *v, true
}

// OldCognitiveLoad returns the old "cognitive_load" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldCognitiveLoad(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCognitiveLoad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCognitiveLoad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCognitiveLoad: %w", err)
	}
	return oldValue.CognitiveLoad, nil
}

// AddCognitiveLoad adds f to the "cognitive_load" field.
func (m *SessionFeedbackMutation) AddCognitiveLoad(f float64) {
	if m.addcognitive_load != nil {
		*m.addcognitive_load += f
	} else {
		m.addcognitive_load = &f
	}
}

// AddedCognitiveLoad returns the value that was added to the "cognitive_load" field in this mutation.
func (m *SessionFeedbackMutation) AddedCognitiveLoad() (r float64, exists bool) {
	v := m.addcognitive_load
	if v == nil {
		return
	}
	return *v, true
}

// ResetCognitiveLoad resets all changes to the "cognitive_load" field.
func (m *SessionFeedbackMutation) ResetCognitiveLoad() {
	m.cognitive_load = nil
	m.addcognitive_load = nil
}

// SetAttentionSpan sets the "attention_span" field.
func (m *SessionFeedbackMutation) SetAttentionSpan(f float64) {
	m.attention_span = &f
	m.addattention_span = nil
}

// AttentionSpan returns the value of the "attention_span" field in the mutation.
func (m *SessionFeedbackMutation) AttentionSpan() (r float64, exists bool) {
	v := m.attention_span
	if v == nil {
		return
	}
	return *v, true
}

// OldAttentionSpan returns the old "attention_span" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldAttentionSpan(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttentionSpan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttentionSpan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttentionSpan: %w", err)
	}
	return oldValue.AttentionSpan, nil
}

// AddAttentionSpan adds f to the "attention_span" field.
func (m *SessionFeedbackMutation) AddAttentionSpan(f float64) {
	if m.addattention_span != nil {
		*m.addattention_span += f
	} else {
		m.addattention_span = &f
	}
}

// AddedAttentionSpan returns the value that was added to the "attention_span" field in this mutation.
func (m *SessionFeedbackMutation) AddedAttentionSpan() (r float64, exists bool) {
	v := m.addattention_span
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttentionSpan resets all changes to the "attention_span" field.
func (m *SessionFeedbackMutation) ResetAttentionSpan() {
	m.attention_span = nil
	m.addattention_span = nil
}

// SetConfidence sets the "confidence" field.
func (m *SessionFeedbackMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *SessionFeedbackMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *SessionFeedbackMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *SessionFeedbackMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *SessionFeedbackMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetFatigueTrend sets the "fatigue_trend" field.
func (m *SessionFeedbackMutation) SetFatigueTrend(s string) {
	m.fatigue_trend = &s
}

// FatigueTrend returns the value of the "fatigue_trend" field in the mutation.
func (m *SessionFeedbackMutation) FatigueTrend() (r string, exists bool) {
	v := m.fatigue_trend
	if v == nil {
		return
	}
	return *v, true
}

// OldFatigueTrend returns the old "fatigue_trend" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldFatigueTrend(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFatigueTrend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFatigueTrend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFatigueTrend: %w", err)
	}
	return oldValue.FatigueTrend, nil
}

// ResetFatigueTrend resets all changes to the "fatigue_trend" field.
func (m *SessionFeedbackMutation) ResetFatigueTrend() {
	m.fatigue_trend = nil
}

// SetFatigueSlope sets the "fatigue_slope" field.
func (m *SessionFeedbackMutation) SetFatigueSlope(f float64) {
	m.fatigue_slope = &f
	m.addfatigue_slope = nil
}

// FatigueSlope returns the value of the "fatigue_slope" field in the mutation.
func (m *SessionFeedbackMutation) FatigueSlope() (r float64, exists bool) {
	v := m.fatigue_slope
	if v == nil {
		return
	}
	return *v, true
}

// OldFatigueSlope returns the old "fatigue_slope" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldFatigueSlope(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFatigueSlope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFatigueSlope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFatigueSlope: %w", err)
	}
	return oldValue.FatigueSlope, nil
}

// AddFatigueSlope adds f to the "fatigue_slope" field.
func (m *SessionFeedbackMutation) AddFatigueSlope(f float64) {
	if m.addfatigue_slope != nil {
		*m.addfatigue_slope += f
	} else {
		m.addfatigue_slope = &f
	}
}

// AddedFatigueSlope returns the value that was added to the "fatigue_slope" field in this mutation.
func (m *SessionFeedbackMutation) AddedFatigueSlope() (r float64, exists bool) {
	v := m.addfatigue_slope
	if v == nil {
		return
	}
	return *v, true
}

// ResetFatigueSlope resets all changes to the "fatigue_slope" field.
func (m *SessionFeedbackMutation) ResetFatigueSlope() {
	m.fatigue_slope = nil
	m.addfatigue_slope = nil
}

// SetRawMetrics sets the "raw_metrics" field.
func (m *SessionFeedbackMutation) SetRawMetrics(value map[string]float64) {
	m.raw_metrics = &value
}

// RawMetrics returns the value of the "raw_metrics" field in the mutation.
func (m *SessionFeedbackMutation) RawMetrics() (r map[string]float64, exists bool) {
	v := m.raw_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldRawMetrics returns the old "raw_metrics" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldRawMetrics(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawMetrics: %w", err)
	}
	return oldValue.RawMetrics, nil
}

// ClearRawMetrics clears the value of the "raw_metrics" field.
func (m *SessionFeedbackMutation) ClearRawMetrics() {
	m.raw_metrics = nil
	m.clearedFields[sessionfeedback.FieldRawMetrics] = struct{}{}
}

// RawMetricsCleared returns if the "raw_metrics" field was cleared in this mutation.
func (m *SessionFeedbackMutation) RawMetricsCleared() bool {
	_, ok := m.clearedFields[sessionfeedback.FieldRawMetrics]
	return ok
}

// ResetRawMetrics resets all changes to the "raw_metrics" field.
func (m *SessionFeedbackMutation) ResetRawMetrics() {
	m.raw_metrics = nil
	delete(m.clearedFields, sessionfeedback.FieldRawMetrics)
}

// SetSurveySubmissionID sets the "survey_submission_id" field.
func (m *SessionFeedbackMutation) SetSurveySubmissionID(s string) {
	m.survey_submission_id = &s
}

// SurveySubmissionID returns the value of the "survey_submission_id" field in the mutation.
func (m *SessionFeedbackMutation) SurveySubmissionID() (r string, exists bool) {
	v := m.survey_submission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveySubmissionID returns the old "survey_submission_id" field's value of the SessionFeedback entity.
// If the SessionFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionFeedbackMutation) OldSurveySubmissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveySubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveySubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveySubmissionID: %w", err)
	}
	return oldValue.SurveySubmissionID, nil
}

// ResetSurveySubmissionID resets all changes to the "survey_submission_id" field.
func (m *SessionFeedbackMutation) ResetSurveySubmissionID() {
	m.survey_submission_id = nil
}

// Where appends a list predicates to the SessionFeedbackMutation builder.
func (m *SessionFeedbackMutation) Where(ps ...predicate.SessionFeedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionFeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionFeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionFeedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionFeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionFeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionFeedback).
func (m *SessionFeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionFeedbackMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.sequence != nil {
		fields = append(fields, sessionfeedback.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionfeedback.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionfeedback.FieldSessionID)
	}
	if m.learner_id != nil {
		fields = append(fields, sessionfeedback.FieldLearnerID)
	}
	if m.class_id != nil {
		fields = append(fields, sessionfeedback.FieldClassID)
	}
	if m.task_id != nil {
		fields = append(fields, sessionfeedback.FieldTaskID)
	}
	if m.combo_key != nil {
		fields = append(fields, sessionfeedback.FieldComboKey)
	}
	if m.combo != nil {
		fields = append(fields, sessionfeedback.FieldCombo)
	}
	if m.kind != nil {
		fields = append(fields, sessionfeedback.FieldKind)
	}
	if m.topic != nil {
		fields = append(fields, sessionfeedback.FieldTopic)
	}
	if m.purpose != nil {
		fields = append(fields, sessionfeedback.FieldPurpose)
	}
	if m.length_bucket != nil {
		fields = append(fields, sessionfeedback.FieldLengthBucket)
	}
	if m.grade != nil {
		fields = append(fields, sessionfeedback.FieldGrade)
	}
	if m.subject != nil {
		fields = append(fields, sessionfeedback.FieldSubject)
	}
	if m.clarity != nil {
		fields = append(fields, sessionfeedback.FieldClarity)
	}
	if m.engagement != nil {
		fields = append(fields, sessionfeedback.FieldEngagement)
	}
	if m.cognitive_load != nil {
		fields = append(fields, sessionfeedback.FieldCognitiveLoad)
	}
	if m.attention_span != nil {
		fields = append(fields, sessionfeedback.FieldAttentionSpan)
	}
	if m.confidence != nil {
		fields = append(fields, sessionfeedback.FieldConfidence)
	}
	if m.fatigue_trend != nil {
		fields = append(fields, sessionfeedback.FieldFatigueTrend)
	}
	if m.fatigue_slope != nil {
		fields = append(fields, sessionfeedback.FieldFatigueSlope)
	}
	if m.raw_metrics != nil {
		fields = append(fields, sessionfeedback.FieldRawMetrics)
	}
	if m.survey_submission_id != nil {
		fields = append(fields, sessionfeedback.FieldSurveySubmissionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionFeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionfeedback.FieldSequence:
		return m.Sequence()
	case sessionfeedback.FieldTimestamp:
		return m.Timestamp()
	case sessionfeedback.FieldSessionID:
		return m.SessionID()
	case sessionfeedback.FieldLearnerID:
		return m.LearnerID()
	case sessionfeedback.FieldClassID:
		return m.ClassID()
	case sessionfeedback.FieldTaskID:
		return m.TaskID()
	case sessionfeedback.FieldComboKey:
		return m.ComboKey()
	case sessionfeedback.FieldCombo:
		return m.Combo()
	case sessionfeedback.FieldKind:
		return m.Kind()
	case sessionfeedback.FieldTopic:
		return m.Topic()
	case sessionfeedback.FieldPurpose:
		return m.Purpose()
	case sessionfeedback.FieldLengthBucket:
		return m.LengthBucket()
	case sessionfeedback.FieldGrade:
		return m.Grade()
	case sessionfeedback.FieldSubject:
		return m.Subject()
	case sessionfeedback.FieldClarity:
		return m.Clarity()
	case sessionfeedback.FieldEngagement:
		return m.Engagement()
	case sessionfeedback.FieldCognitiveLoad:
		return m.CognitiveLoad()
	case sessionfeedback.FieldAttentionSpan:
		return m.AttentionSpan()
	case sessionfeedback.FieldConfidence:
		return m.Confidence()
	case sessionfeedback.FieldFatigueTrend:
		return m.FatigueTrend()
	case sessionfeedback.FieldFatigueSlope:
		return m.FatigueSlope()
	case sessionfeedback.FieldRawMetrics:
		return m.RawMetrics()
	case sessionfeedback.FieldSurveySubmissionID:
		return m.SurveySubmissionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionFeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionfeedback.FieldSequence:
		return m.OldSequence(ctx)
	case sessionfeedback.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionfeedback.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionfeedback.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case sessionfeedback.FieldClassID:
		return m.OldClassID(ctx)
	case sessionfeedback.FieldTaskID:
		return m.OldTaskID(ctx)
	case sessionfeedback.FieldComboKey:
		return m.OldComboKey(ctx)
	case sessionfeedback.FieldCombo:
		return m.OldCombo(ctx)
	case sessionfeedback.FieldKind:
		return m.OldKind(ctx)
	case sessionfeedback.FieldTopic:
		return m.OldTopic(ctx)
	case sessionfeedback.FieldPurpose:
		return m.OldPurpose(ctx)
	case sessionfeedback.FieldLengthBucket:
		return m.OldLengthBucket(ctx)
	case sessionfeedback.FieldGrade:
		return m.OldGrade(ctx)
	case sessionfeedback.FieldSubject:
		return m.OldSubject(ctx)
	case sessionfeedback.FieldClarity:
		return m.OldClarity(ctx)
	case sessionfeedback.FieldEngagement:
		return m.OldEngagement(ctx)
	case sessionfeedback.FieldCognitiveLoad:
		return m.OldCognitiveLoad(ctx)
	case sessionfeedback.FieldAttentionSpan:
		return m.OldAttentionSpan(ctx)
	case sessionfeedback.FieldConfidence:
		return m.OldConfidence(ctx)
	case sessionfeedback.FieldFatigueTrend:
		return m.OldFatigueTrend(ctx)
	case sessionfeedback.FieldFatigueSlope:
		return m.OldFatigueSlope(ctx)
	case sessionfeedback.FieldRawMetrics:
		return m.OldRawMetrics(ctx)
	case sessionfeedback.FieldSurveySubmissionID:
		return m.OldSurveySubmissionID(ctx)
	}
	return nil, fmt.Errorf("unknown SessionFeedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionFeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionfeedback.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionfeedback.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionfeedback.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionfeedback.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case sessionfeedback.FieldClassID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassID(v)
		return nil
	case sessionfeedback.FieldTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case sessionfeedback.FieldComboKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComboKey(v)
		return nil
	case sessionfeedback.FieldCombo:
		v, ok := value.(content.Combo)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCombo(v)
		return nil
	case sessionfeedback.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case sessionfeedback.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case sessionfeedback.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case sessionfeedback.FieldLengthBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLengthBucket(v)
		return nil
	case sessionfeedback.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case sessionfeedback.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case sessionfeedback.FieldClarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClarity(v)
		return nil
	case sessionfeedback.FieldEngagement:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagement(v)
		return nil
	case sessionfeedback.FieldCognitiveLoad:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCognitiveLoad(v)
		return nil
	case sessionfeedback.FieldAttentionSpan:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttentionSpan(v)
		return nil
	case sessionfeedback.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case sessionfeedback.FieldFatigueTrend:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFatigueTrend(v)
		return nil
	case sessionfeedback.FieldFatigueSlope:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFatigueSlope(v)
		return nil
	case sessionfeedback.FieldRawMetrics:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawMetrics(v)
		return nil
	case sessionfeedback.FieldSurveySubmissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveySubmissionID(v)
		return nil
	}
	return fmt.Errorf("unknown SessionFeedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionFeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionfeedback.FieldSequence)
	}
	if m.addclass_id != nil {
		fields = append(fields, sessionfeedback.FieldClassID)
	}
	if m.addtask_id != nil {
		fields = append(fields, sessionfeedback.FieldTaskID)
	}
	if m.addclarity != nil {
		fields = append(fields, sessionfeedback.FieldClarity)
	}
	if m.addengagement != nil {
		fields = append(fields, sessionfeedback.FieldEngagement)
	}
	if m.addcognitive_load != nil {
		fields = append(fields, sessionfeedback.FieldCognitiveLoad)
	}
	if m.addattention_span != nil {
		fields = append(fields, sessionfeedback.FieldAttentionSpan)
	}
	if m.addconfidence != nil {
		fields = append(fields, sessionfeedback.FieldConfidence)
	}
	if m.addfatigue_slope != nil {
		fields = append(fields, sessionfeedback.FieldFatigueSlope)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionFeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionfeedback.FieldSequence:
		return m.AddedSequence()
	case sessionfeedback.FieldClassID:
		return m.AddedClassID()
	case sessionfeedback.FieldTaskID:
		return m.AddedTaskID()
	case sessionfeedback.FieldClarity:
		return m.AddedClarity()
	case sessionfeedback.FieldEngagement:
		return m.AddedEngagement()
	case sessionfeedback.FieldCognitiveLoad:
		return m.AddedCognitiveLoad()
	case sessionfeedback.FieldAttentionSpan:
		return m.AddedAttentionSpan()
	case sessionfeedback.FieldConfidence:
		return m.AddedConfidence()
	case sessionfeedback.FieldFatigueSlope:
		return m.AddedFatigueSlope()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionFeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionfeedback.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionfeedback.FieldClassID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClassID(v)
		return nil
	case sessionfeedback.FieldTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskID(v)
		return nil
	case sessionfeedback.FieldClarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClarity(v)
		return nil
	case sessionfeedback.FieldEngagement:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagement(v)
		return nil
	case sessionfeedback.FieldCognitiveLoad:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCognitiveLoad(v)
		return nil
	case sessionfeedback.FieldAttentionSpan:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttentionSpan(v)
		return nil
	case sessionfeedback.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case sessionfeedback.FieldFatigueSlope:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFatigueSlope(v)
		return nil
	}
	return fmt.Errorf("unknown SessionFeedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionFeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionfeedback.FieldCombo) {
		fields = append(fields, sessionfeedback.FieldCombo)
	}
	if m.FieldCleared(sessionfeedback.FieldRawMetrics) {
		fields = append(fields, sessionfeedback.FieldRawMetrics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionFeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionFeedbackMutation) ClearField(name string) error {
	switch name {
	case sessionfeedback.FieldCombo:
		m.ClearCombo()
		return nil
	case sessionfeedback.FieldRawMetrics:
		m.ClearRawMetrics()
		return nil
	}
	return fmt.Errorf("unknown SessionFeedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionFeedbackMutation) ResetField(name string) error {
	switch name {
	case sessionfeedback.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionfeedback.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionfeedback.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionfeedback.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case sessionfeedback.FieldClassID:
		m.ResetClassID()
		return nil
	case sessionfeedback.FieldTaskID:
		m.ResetTaskID()
		return nil
	case sessionfeedback.FieldComboKey:
		m.ResetComboKey()
		return nil
	case sessionfeedback.FieldCombo:
		m.ResetCombo()
		return nil
	case sessionfeedback.FieldKind:
		m.ResetKind()
		return nil
	case sessionfeedback.FieldTopic:
		m.ResetTopic()
		return nil
	case sessionfeedback.FieldPurpose:
		m.ResetPurpose()
		return nil
	case sessionfeedback.FieldLengthBucket:
		m.ResetLengthBucket()
		return nil
	case sessionfeedback.FieldGrade:
		m.ResetGrade()
		return nil
	case sessionfeedback.FieldSubject:
		m.ResetSubject()
		return nil
	case sessionfeedback.FieldClarity:
		m.ResetClarity()
		return nil
	case sessionfeedback.FieldEngagement:
		m.ResetEngagement()
		return nil
	case sessionfeedback.FieldCognitiveLoad:
		m.ResetCognitiveLoad()
		return nil
	case sessionfeedback.FieldAttentionSpan:
		m.ResetAttentionSpan()
		return nil
	case sessionfeedback.FieldConfidence:
		m.ResetConfidence()
		return nil
	case sessionfeedback.FieldFatigueTrend:
		m.ResetFatigueTrend()
		return nil
	case sessionfeedback.FieldFatigueSlope:
		m.ResetFatigueSlope()
		return nil
	case sessionfeedback.FieldRawMetrics:
		m.ResetRawMetrics()
		return nil
	case sessionfeedback.FieldSurveySubmissionID:
		m.ResetSurveySubmissionID()
		return nil
	}
	return fmt.Errorf("unknown SessionFeedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionFeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionFeedbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionFeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionFeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionFeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionFeedbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionFeedbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionFeedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionFeedbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionFeedback edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                Op
	typ               string
	id                *int
	kind              *string
	topic             *string
	status            *string
	class_id          *int
	addclass_id       *int
	parent_id         *int
	addparent_id      *int
	group_id          *int
	addgroup_id       *int
	combo             *content.Combo
	payload           *content.Payload
	purpose           *string
	grade             *string
	subject           *string
	length_minutes    *int
	addlength_minutes *int
	question_type     *string
	num_questions     *int
	addnum_questions  *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Task, error)
	predicates        []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id int) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *TaskMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TaskMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TaskMutation) ResetKind() {
	m.kind = nil
}

// SetTopic sets the "topic" field.
func (m *TaskMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *TaskMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *TaskMutation) ResetTopic() {
	m.topic = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetClassID sets the "class_id" field.
func (m *TaskMutation) SetClassID(i int) {
	m.class_id = &i
	m.addclass_id = nil
}

// ClassID returns the value of the "class_id" field in the mutation.
func (m *TaskMutation) ClassID() (r int, exists bool) {
	v := m.class_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClassID returns the old "class_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClassID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassID: %w", err)
	}
	return oldValue.ClassID, nil
}

// AddClassID adds i to the "class_id" field.
func (m *TaskMutation) AddClassID(i int) {
	if m.addclass_id != nil {
		*m.addclass_id += i
	} else {
		m.addclass_id = &i
	}
}

// AddedClassID returns the value that was added to the "class_id" field in this mutation.
func (m *TaskMutation) AddedClassID() (r int, exists bool) {
	v := m.addclass_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetClassID resets all changes to the "class_id" field.
func (m *TaskMutation) ResetClassID() {
	m.class_id = nil
	m.addclass_id = nil
}

// SetParentID sets the "parent_id" field.
func (m *TaskMutation) SetParentID(i int) {
	m.parent_id = &i
	m.addparent_id = nil
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *TaskMutation) ParentID() (r int, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// AddParentID adds i to the "parent_id" field.
func (m *TaskMutation) AddParentID(i int) {
	if m.addparent_id != nil {
		*m.addparent_id += i
	} else {
		m.addparent_id = &i
	}
}

// AddedParentID returns the value that was added to the "parent_id" field in this mutation.
func (m *TaskMutation) AddedParentID() (r int, exists bool) {
	v := m.addparent_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentID clears the value of the "parent_id" field.
func (m *TaskMutation) ClearParentID() {
	m.parent_id = nil
	m.addparent_id = nil
	m.clearedFields[task.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *TaskMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[task.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *TaskMutation) ResetParentID() {
	m.parent_id = nil
	m.addparent_id = nil
	delete(m.clearedFields, task.FieldParentID)
}

// SetGroupID sets the "group_id" field.
func (m *TaskMutation) SetGroupID(i int) {
	m.group_id = &i
	m.addgroup_id = nil
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *TaskMutation) GroupID() (r int, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldGroupID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// AddGroupID adds i to the "group_id" field.
func (m *TaskMutation) AddGroupID(i int) {
	if m.addgroup_id != nil {
		*m.addgroup_id += i
	} else {
		m.addgroup_id = &i
	}
}

// AddedGroupID returns the value that was added to the "group_id" field in this mutation.
func (m *TaskMutation) AddedGroupID() (r int, exists bool) {
	v := m.addgroup_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearGroupID clears the value of the "group_id" field.
func (m *TaskMutation) ClearGroupID() {
	m.group_id = nil
	m.addgroup_id = nil
	m.clearedFields[task.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *TaskMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[task.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *TaskMutation) ResetGroupID() {
	m.group_id = nil
	m.addgroup_id = nil
	delete(m.clearedFields, task.FieldGroupID)
}

// SetCombo sets the "combo" field.
func (m *TaskMutation) SetCombo(c content.Combo) {
	m.combo = &c
}

// Combo returns the value of the "combo" field in the mutation.
func (m *TaskMutation) Combo() (r content.Combo, exists bool) {
	v := m.combo
	if v == nil {
		return
	}
	return *v, true
}

// OldCombo returns the old "combo" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCombo(ctx context.Context) (v content.Combo, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCombo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCombo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCombo: %w", err)
	}
	return oldValue.Combo, nil
}

// ClearCombo clears the value of the "combo" field.
func (m *TaskMutation) ClearCombo() {
	m.combo = nil
	m.clearedFields[task.FieldCombo] = struct{}{}
}

// ComboCleared returns if the "combo" field was cleared in this mutation.
func (m *TaskMutation) ComboCleared() bool {
	_, ok := m.clearedFields[task.FieldCombo]
	return ok
}

// ResetCombo resets all changes to the "combo" field.
func (m *TaskMutation) ResetCombo() {
	m.combo = nil
	delete(m.clearedFields, task.FieldCombo)
}

// SetPayload sets the "payload" field.
func (m *TaskMutation) SetPayload(c content.Payload) {
	m.payload = &c
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TaskMutation) Payload() (r content.Payload, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPayload(ctx context.Context) (v content.Payload, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *TaskMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[task.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *TaskMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[task.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *TaskMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, task.FieldPayload)
}

// SetPurpose sets the "purpose" field.
func (m *TaskMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *TaskMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *TaskMutation) ResetPurpose() {
	m.purpose = nil
}

// SetGrade sets the "grade" field.
func (m *TaskMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *TaskMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *TaskMutation) ResetGrade() {
	m.grade = nil
}

// SetSubject sets the "subject" field.
func (m *TaskMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *TaskMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *TaskMutation) ResetSubject() {
	m.subject = nil
}

// SetLengthMinutes sets the "length_minutes" field.
func (m *TaskMutation) SetLengthMinutes(i int) {
	m.length_minutes = &i
	m.addlength_minutes = nil
}

// LengthMinutes returns the value of the "length_minutes" field in the mutation.
func (m *TaskMutation) LengthMinutes() (r int, exists bool) {
	v := m.length_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldLengthMinutes returns the old "length_minutes" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLengthMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLengthMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLengthMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLengthMinutes: %w", err)
	}
	return oldValue.LengthMinutes, nil
}

// AddLengthMinutes adds i to the "length_minutes" field.
func (m *TaskMutation) AddLengthMinutes(i int) {
	if m.addlength_minutes != nil {
		*m.addlength_minutes += i
	} else {
		m.addlength_minutes = &i
	}
}

// AddedLengthMinutes returns the value that was added to the "length_minutes" field in this mutation.
func (m *TaskMutation) AddedLengthMinutes() (r int, exists bool) {
	v := m.addlength_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetLengthMinutes resets all changes to the "length_minutes" field.
func (m *TaskMutation) ResetLengthMinutes() {
	m.length_minutes = nil
	m.addlength_minutes = nil
}

// SetQuestionType sets the "question_type" field.
func (m *TaskMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *TaskMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *TaskMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetNumQuestions sets the "num_questions" field.
func (m *TaskMutation) SetNumQuestions(i int) {
	m.num_questions = &i
	m.addnum_questions = nil
}

// NumQuestions returns the value of the "num_questions" field in the mutation.
func (m *TaskMutation) NumQuestions() (r int, exists bool) {
	v := m.num_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldNumQuestions returns the old "num_questions" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldNumQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumQuestions: %w", err)
	}
	return oldValue.NumQuestions, nil
}

// AddNumQuestions adds i to the "num_questions" field.
func (m *TaskMutation) AddNumQuestions(i int) {
	if m.addnum_questions != nil {
		*m.addnum_questions += i
	} else {
		m.addnum_questions = &i
	}
}

// AddedNumQuestions returns the value that was added to the "num_questions" field in this mutation.
func (m *TaskMutation) AddedNumQuestions() (r int, exists bool) {
	v := m.addnum_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumQuestions resets all changes to the "num_questions" field.
func (m *TaskMutation) ResetNumQuestions() {
	m.num_questions = nil
	m.addnum_questions = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.kind != nil {
		fields = append(fields, task.FieldKind)
	}
	if m.topic != nil {
		fields = append(fields, task.FieldTopic)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.class_id != nil {
		fields = append(fields, task.FieldClassID)
	}
	if m.parent_id != nil {
		fields = append(fields, task.FieldParentID)
	}
	if m.group_id != nil {
		fields = append(fields, task.FieldGroupID)
	}
	if m.combo != nil {
		fields = append(fields, task.FieldCombo)
	}
	if m.payload != nil {
		fields = append(fields, task.FieldPayload)
	}
	if m.purpose != nil {
		fields = append(fields, task.FieldPurpose)
	}
	if m.grade != nil {
		fields = append(fields, task.FieldGrade)
	}
	if m.subject != nil {
		fields = append(fields, task.FieldSubject)
	}
	if m.length_minutes != nil {
		fields = append(fields, task.FieldLengthMinutes)
	}
	if m.question_type != nil {
		fields = append(fields, task.FieldQuestionType)
	}
	if m.num_questions != nil {
		fields = append(fields, task.FieldNumQuestions)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldKind:
		return m.Kind()
	case task.FieldTopic:
		return m.Topic()
	case task.FieldStatus:
		return m.Status()
	case task.FieldClassID:
		return m.ClassID()
	case task.FieldParentID:
		return m.ParentID()
	case task.FieldGroupID:
		return m.GroupID()
	case task.FieldCombo:
		return m.Combo()
	case task.FieldPayload:
		return m.Payload()
	case task.FieldPurpose:
		return m.Purpose()
	case task.FieldGrade:
		return m.Grade()
	case task.FieldSubject:
		return m.Subject()
	case task.FieldLengthMinutes:
		return m.LengthMinutes()
	case task.FieldQuestionType:
		return m.QuestionType()
	case task.FieldNumQuestions:
		return m.NumQuestions()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldKind:
		return m.OldKind(ctx)
	case task.FieldTopic:
		return m.OldTopic(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldClassID:
		return m.OldClassID(ctx)
	case task.FieldParentID:
		return m.OldParentID(ctx)
	case task.FieldGroupID:
		return m.OldGroupID(ctx)
	case task.FieldCombo:
		return m.OldCombo(ctx)
	case task.FieldPayload:
		return m.OldPayload(ctx)
	case task.FieldPurpose:
		return m.OldPurpose(ctx)
	case task.FieldGrade:
		return m.OldGrade(ctx)
	case task.FieldSubject:
		return m.OldSubject(ctx)
	case task.FieldLengthMinutes:
		return m.OldLengthMinutes(ctx)
	case task.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case task.FieldNumQuestions:
		return m.OldNumQuestions(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case task.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldClassID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassID(v)
		return nil
	case task.FieldParentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case task.FieldGroupID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case task.FieldCombo:
		v, ok := value.(content.Combo)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCombo(v)
		return nil
	case task.FieldPayload:
		v, ok := value.(content.Payload)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case task.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case task.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case task.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case task.FieldLengthMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLengthMinutes(v)
		return nil
	case task.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case task.FieldNumQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumQuestions(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addclass_id != nil {
		fields = append(fields, task.FieldClassID)
	}
	if m.addparent_id != nil {
		fields = append(fields, task.FieldParentID)
	}
	if m.addgroup_id != nil {
		fields = append(fields, task.FieldGroupID)
	}
	if m.addlength_minutes != nil {
		fields = append(fields, task.FieldLengthMinutes)
	}
	if m.addnum_questions != nil {
		fields = append(fields, task.FieldNumQuestions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldClassID:
		return m.AddedClassID()
	case task.FieldParentID:
		return m.AddedParentID()
	case task.FieldGroupID:
		return m.AddedGroupID()
	case task.FieldLengthMinutes:
		return m.AddedLengthMinutes()
	case task.FieldNumQuestions:
		return m.AddedNumQuestions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldClassID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClassID(v)
		return nil
	case task.FieldParentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentID(v)
		return nil
	case task.FieldGroupID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGroupID(v)
		return nil
	case task.FieldLengthMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLengthMinutes(v)
		return nil
	case task.FieldNumQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumQuestions(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldParentID) {
		fields = append(fields, task.FieldParentID)
	}
	if m.FieldCleared(task.FieldGroupID) {
		fields = append(fields, task.FieldGroupID)
	}
	if m.FieldCleared(task.FieldCombo) {
		fields = append(fields, task.FieldCombo)
	}
	if m.FieldCleared(task.FieldPayload) {
		fields = append(fields, task.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldParentID:
		m.ClearParentID()
		return nil
	case task.FieldGroupID:
		m.ClearGroupID()
		return nil
	case task.FieldCombo:
		m.ClearCombo()
		return nil
	case task.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldKind:
		m.ResetKind()
		return nil
	case task.FieldTopic:
		m.ResetTopic()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldClassID:
		m.ResetClassID()
		return nil
	case task.FieldParentID:
		m.ResetParentID()
		return nil
	case task.FieldGroupID:
		m.ResetGroupID()
		return nil
	case task.FieldCombo:
		m.ResetCombo()
		return nil
	case task.FieldPayload:
		m.ResetPayload()
		return nil
	case task.FieldPurpose:
		m.ResetPurpose()
		return nil
	case task.FieldGrade:
		m.ResetGrade()
		return nil
	case task.FieldSubject:
		m.ResetSubject()
		return nil
	case task.FieldLengthMinutes:
		m.ResetLengthMinutes()
		return nil
	case task.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case task.FieldNumQuestions:
		m.ResetNumQuestions()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}
