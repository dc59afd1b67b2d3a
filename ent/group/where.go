// Code generated by ent, DO NOT EDIT.

package group

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/samacademy/cohortgen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldTaskID, v))
}

// ClassID applies equality check predicate on the "class_id" field. It's identical to ClassIDEQ.
func ClassID(v int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldClassID, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldNumber, v))
}

// VariantTaskID applies equality check predicate on the "variant_task_id" field. It's identical to VariantTaskIDEQ.
func VariantTaskID(v int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldVariantTaskID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v int) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...int) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...int) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v int) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v int) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v int) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v int) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldTaskID, v))
}

// ClassIDEQ applies the EQ predicate on the "class_id" field.
func ClassIDEQ(v int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldClassID, v))
}

// ClassIDNEQ applies the NEQ predicate on the "class_id" field.
func ClassIDNEQ(v int) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldClassID, v))
}

// ClassIDIn applies the In predicate on the "class_id" field.
func ClassIDIn(vs ...int) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldClassID, vs...))
}

// ClassIDNotIn applies the NotIn predicate on the "class_id" field.
func ClassIDNotIn(vs ...int) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldClassID, vs...))
}

// ClassIDGT applies the GT predicate on the "class_id" field.
func ClassIDGT(v int) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldClassID, v))
}

// ClassIDGTE applies the GTE predicate on the "class_id" field.
func ClassIDGTE(v int) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldClassID, v))
}

// ClassIDLT applies the LT predicate on the "class_id" field.
func ClassIDLT(v int) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldClassID, v))
}

// ClassIDLTE applies the LTE predicate on the "class_id" field.
func ClassIDLTE(v int) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldClassID, v))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v int) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...int) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...int) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v int) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v int) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v int) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v int) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldNumber, v))
}

// VariantTaskIDEQ applies the EQ predicate on the "variant_task_id" field.
func VariantTaskIDEQ(v int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldVariantTaskID, v))
}

// VariantTaskIDNEQ applies the NEQ predicate on the "variant_task_id" field.
func VariantTaskIDNEQ(v int) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldVariantTaskID, v))
}

// VariantTaskIDIn applies the In predicate on the "variant_task_id" field.
func VariantTaskIDIn(vs ...int) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldVariantTaskID, vs...))
}

// VariantTaskIDNotIn applies the NotIn predicate on the "variant_task_id" field.
func VariantTaskIDNotIn(vs ...int) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldVariantTaskID, vs...))
}

// VariantTaskIDGT applies the GT predicate on the "variant_task_id" field.
func VariantTaskIDGT(v int) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldVariantTaskID, v))
}

// VariantTaskIDGTE applies the GTE predicate on the "variant_task_id" field.
func VariantTaskIDGTE(v int) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldVariantTaskID, v))
}

// VariantTaskIDLT applies the LT predicate on the "variant_task_id" field.
func VariantTaskIDLT(v int) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldVariantTaskID, v))
}

// VariantTaskIDLTE applies the LTE predicate on the "variant_task_id" field.
func VariantTaskIDLTE(v int) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldVariantTaskID, v))
}

// VariantTaskIDIsNil applies the IsNil predicate on the "variant_task_id" field.
func VariantTaskIDIsNil() predicate.Group {
	return predicate.Group(sql.FieldIsNull(FieldVariantTaskID))
}

// VariantTaskIDNotNil applies the NotNil predicate on the "variant_task_id" field.
func VariantTaskIDNotNil() predicate.Group {
	return predicate.Group(sql.FieldNotNull(FieldVariantTaskID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Group) predicate.Group {
	return predicate.Group(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Group) predicate.Group {
	return predicate.Group(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Group) predicate.Group {
	return predicate.Group(sql.NotPredicates(p))
}
