// Code generated by ent, DO NOT EDIT.

package performanceprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/samacademy/cohortgen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldID, id))
}

// ComboKey applies equality check predicate on the "combo_key" field. It's identical to ComboKeyEQ.
func ComboKey(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldComboKey, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldTopic, v))
}

// Purpose applies equality check predicate on the "purpose" field. It's identical to PurposeEQ.
func Purpose(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldPurpose, v))
}

// LengthBucket applies equality check predicate on the "length_bucket" field. It's identical to LengthBucketEQ.
func LengthBucket(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldLengthBucket, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldKind, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldGrade, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldSubject, v))
}

// ClarityAvg applies equality check predicate on the "clarity_avg" field. It's identical to ClarityAvgEQ.
func ClarityAvg(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldClarityAvg, v))
}

// EngagementAvg applies equality check predicate on the "engagement_avg" field. It's identical to EngagementAvgEQ.
func EngagementAvg(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldEngagementAvg, v))
}

// ConfidenceAvg applies equality check predicate on the "confidence_avg" field. It's identical to ConfidenceAvgEQ.
func ConfidenceAvg(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldConfidenceAvg, v))
}

// AttentionAvg applies equality check predicate on the "attention_avg" field. It's identical to AttentionAvgEQ.
func AttentionAvg(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldAttentionAvg, v))
}

// FatigueSlope applies equality check predicate on the "fatigue_slope" field. It's identical to FatigueSlopeEQ.
func FatigueSlope(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldFatigueSlope, v))
}

// SessionCount applies equality check predicate on the "session_count" field. It's identical to SessionCountEQ.
func SessionCount(v int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldSessionCount, v))
}

// PerformanceScore applies equality check predicate on the "performance_score" field. It's identical to PerformanceScoreEQ.
func PerformanceScore(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldPerformanceScore, v))
}

// ProfileStatus applies equality check predicate on the "profile_status" field. It's identical to ProfileStatusEQ.
func ProfileStatus(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldProfileStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// ComboKeyEQ applies the EQ predicate on the "combo_key" field.
func ComboKeyEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldComboKey, v))
}

// ComboKeyNEQ applies the NEQ predicate on the "combo_key" field.
func ComboKeyNEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldComboKey, v))
}

// ComboKeyIn applies the In predicate on the "combo_key" field.
func ComboKeyIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldComboKey, vs...))
}

// ComboKeyNotIn applies the NotIn predicate on the "combo_key" field.
func ComboKeyNotIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldComboKey, vs...))
}

// ComboKeyGT applies the GT predicate on the "combo_key" field.
func ComboKeyGT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldComboKey, v))
}

// ComboKeyGTE applies the GTE predicate on the "combo_key" field.
func ComboKeyGTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldComboKey, v))
}

// ComboKeyLT applies the LT predicate on the "combo_key" field.
func ComboKeyLT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldComboKey, v))
}

// ComboKeyLTE applies the LTE predicate on the "combo_key" field.
func ComboKeyLTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldComboKey, v))
}

// ComboKeyContains applies the Contains predicate on the "combo_key" field.
func ComboKeyContains(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContains(FieldComboKey, v))
}

// ComboKeyHasPrefix applies the HasPrefix predicate on the "combo_key" field.
func ComboKeyHasPrefix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasPrefix(FieldComboKey, v))
}

// ComboKeyHasSuffix applies the HasSuffix predicate on the "combo_key" field.
func ComboKeyHasSuffix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasSuffix(FieldComboKey, v))
}

// ComboKeyEqualFold applies the EqualFold predicate on the "combo_key" field.
func ComboKeyEqualFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEqualFold(FieldComboKey, v))
}

// ComboKeyContainsFold applies the ContainsFold predicate on the "combo_key" field.
func ComboKeyContainsFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContainsFold(FieldComboKey, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContainsFold(FieldTopic, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldPurpose, vs...))
}

// PurposeGT applies the GT predicate on the "purpose" field.
func PurposeGT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldPurpose, v))
}

// PurposeGTE applies the GTE predicate on the "purpose" field.
func PurposeGTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldPurpose, v))
}

// PurposeLT applies the LT predicate on the "purpose" field.
func PurposeLT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldPurpose, v))
}

// PurposeLTE applies the LTE predicate on the "purpose" field.
func PurposeLTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldPurpose, v))
}

// PurposeContains applies the Contains predicate on the "purpose" field.
func PurposeContains(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContains(FieldPurpose, v))
}

// PurposeHasPrefix applies the HasPrefix predicate on the "purpose" field.
func PurposeHasPrefix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasPrefix(FieldPurpose, v))
}

// PurposeHasSuffix applies the HasSuffix predicate on the "purpose" field.
func PurposeHasSuffix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasSuffix(FieldPurpose, v))
}

// PurposeEqualFold applies the EqualFold predicate on the "purpose" field.
func PurposeEqualFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEqualFold(FieldPurpose, v))
}

// PurposeContainsFold applies the ContainsFold predicate on the "purpose" field.
func PurposeContainsFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContainsFold(FieldPurpose, v))
}

// LengthBucketEQ applies the EQ predicate on the "length_bucket" field.
func LengthBucketEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldLengthBucket, v))
}

// LengthBucketNEQ applies the NEQ predicate on the "length_bucket" field.
func LengthBucketNEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldLengthBucket, v))
}

// LengthBucketIn applies the In predicate on the "length_bucket" field.
func LengthBucketIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldLengthBucket, vs...))
}

// LengthBucketNotIn applies the NotIn predicate on the "length_bucket" field.
func LengthBucketNotIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldLengthBucket, vs...))
}

// LengthBucketGT applies the GT predicate on the "length_bucket" field.
func LengthBucketGT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldLengthBucket, v))
}

// LengthBucketGTE applies the GTE predicate on the "length_bucket" field.
func LengthBucketGTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldLengthBucket, v))
}

// LengthBucketLT applies the LT predicate on the "length_bucket" field.
func LengthBucketLT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldLengthBucket, v))
}

// LengthBucketLTE applies the LTE predicate on the "length_bucket" field.
func LengthBucketLTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldLengthBucket, v))
}

// LengthBucketContains applies the Contains predicate on the "length_bucket" field.
func LengthBucketContains(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContains(FieldLengthBucket, v))
}

// LengthBucketHasPrefix applies the HasPrefix predicate on the "length_bucket" field.
func LengthBucketHasPrefix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasPrefix(FieldLengthBucket, v))
}

// LengthBucketHasSuffix applies the HasSuffix predicate on the "length_bucket" field.
func LengthBucketHasSuffix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasSuffix(FieldLengthBucket, v))
}

// LengthBucketEqualFold applies the EqualFold predicate on the "length_bucket" field.
func LengthBucketEqualFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEqualFold(FieldLengthBucket, v))
}

// LengthBucketContainsFold applies the ContainsFold predicate on the "length_bucket" field.
func LengthBucketContainsFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContainsFold(FieldLengthBucket, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContainsFold(FieldKind, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContainsFold(FieldGrade, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContainsFold(FieldSubject, v))
}

// ClarityAvgEQ applies the EQ predicate on the "clarity_avg" field.
func ClarityAvgEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldClarityAvg, v))
}

// ClarityAvgNEQ applies the NEQ predicate on the "clarity_avg" field.
func ClarityAvgNEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldClarityAvg, v))
}

// ClarityAvgIn applies the In predicate on the "clarity_avg" field.
func ClarityAvgIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldClarityAvg, vs...))
}

// ClarityAvgNotIn applies the NotIn predicate on the "clarity_avg" field.
func ClarityAvgNotIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldClarityAvg, vs...))
}

// ClarityAvgGT applies the GT predicate on the "clarity_avg" field.
func ClarityAvgGT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldClarityAvg, v))
}

// ClarityAvgGTE applies the GTE predicate on the "clarity_avg" field.
func ClarityAvgGTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldClarityAvg, v))
}

// ClarityAvgLT applies the LT predicate on the "clarity_avg" field.
func ClarityAvgLT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldClarityAvg, v))
}

// ClarityAvgLTE applies the LTE predicate on the "clarity_avg" field.
func ClarityAvgLTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldClarityAvg, v))
}

// EngagementAvgEQ applies the EQ predicate on the "engagement_avg" field.
func EngagementAvgEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldEngagementAvg, v))
}

// EngagementAvgNEQ applies the NEQ predicate on the "engagement_avg" field.
func EngagementAvgNEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldEngagementAvg, v))
}

// EngagementAvgIn applies the In predicate on the "engagement_avg" field.
func EngagementAvgIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldEngagementAvg, vs...))
}

// EngagementAvgNotIn applies the NotIn predicate on the "engagement_avg" field.
func EngagementAvgNotIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldEngagementAvg, vs...))
}

// EngagementAvgGT applies the GT predicate on the "engagement_avg" field.
func EngagementAvgGT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldEngagementAvg, v))
}

// EngagementAvgGTE applies the GTE predicate on the "engagement_avg" field.
func EngagementAvgGTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldEngagementAvg, v))
}

// EngagementAvgLT applies the LT predicate on the "engagement_avg" field.
func EngagementAvgLT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldEngagementAvg, v))
}

// EngagementAvgLTE applies the LTE predicate on the "engagement_avg" field.
func EngagementAvgLTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldEngagementAvg, v))
}

// ConfidenceAvgEQ applies the EQ predicate on the "confidence_avg" field.
func ConfidenceAvgEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldConfidenceAvg, v))
}

// ConfidenceAvgNEQ applies the NEQ predicate on the "confidence_avg" field.
func ConfidenceAvgNEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldConfidenceAvg, v))
}

// ConfidenceAvgIn applies the In predicate on the "confidence_avg" field.
func ConfidenceAvgIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldConfidenceAvg, vs...))
}

// ConfidenceAvgNotIn applies the NotIn predicate on the "confidence_avg" field.
func ConfidenceAvgNotIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldConfidenceAvg, vs...))
}

// ConfidenceAvgGT applies the GT predicate on the "confidence_avg" field.
func ConfidenceAvgGT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldConfidenceAvg, v))
}

// ConfidenceAvgGTE applies the GTE predicate on the "confidence_avg" field.
func ConfidenceAvgGTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldConfidenceAvg, v))
}

// ConfidenceAvgLT applies the LT predicate on the "confidence_avg" field.
func ConfidenceAvgLT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldConfidenceAvg, v))
}

// ConfidenceAvgLTE applies the LTE predicate on the "confidence_avg" field.
func ConfidenceAvgLTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldConfidenceAvg, v))
}

// AttentionAvgEQ applies the EQ predicate on the "attention_avg" field.
func AttentionAvgEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldAttentionAvg, v))
}

// AttentionAvgNEQ applies the NEQ predicate on the "attention_avg" field.
func AttentionAvgNEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldAttentionAvg, v))
}

// AttentionAvgIn applies the In predicate on the "attention_avg" field.
func AttentionAvgIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldAttentionAvg, vs...))
}

// AttentionAvgNotIn applies the NotIn predicate on the "attention_avg" field.
func AttentionAvgNotIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldAttentionAvg, vs...))
}

// AttentionAvgGT applies the GT predicate on the "attention_avg" field.
func AttentionAvgGT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldAttentionAvg, v))
}

// AttentionAvgGTE applies the GTE predicate on the "attention_avg" field.
func AttentionAvgGTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldAttentionAvg, v))
}

// AttentionAvgLT applies the LT predicate on the "attention_avg" field.
func AttentionAvgLT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldAttentionAvg, v))
}

// AttentionAvgLTE applies the LTE predicate on the "attention_avg" field.
func AttentionAvgLTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldAttentionAvg, v))
}

// FatigueSlopeEQ applies the EQ predicate on the "fatigue_slope" field.
func FatigueSlopeEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldFatigueSlope, v))
}

// FatigueSlopeNEQ applies the NEQ predicate on the "fatigue_slope" field.
func FatigueSlopeNEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldFatigueSlope, v))
}

// FatigueSlopeIn applies the In predicate on the "fatigue_slope" field.
func FatigueSlopeIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldFatigueSlope, vs...))
}

// FatigueSlopeNotIn applies the NotIn predicate on the "fatigue_slope" field.
func FatigueSlopeNotIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldFatigueSlope, vs...))
}

// FatigueSlopeGT applies the GT predicate on the "fatigue_slope" field.
func FatigueSlopeGT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldFatigueSlope, v))
}

// FatigueSlopeGTE applies the GTE predicate on the "fatigue_slope" field.
func FatigueSlopeGTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldFatigueSlope, v))
}

// FatigueSlopeLT applies the LT predicate on the "fatigue_slope" field.
func FatigueSlopeLT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldFatigueSlope, v))
}

// FatigueSlopeLTE applies the LTE predicate on the "fatigue_slope" field.
func FatigueSlopeLTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldFatigueSlope, v))
}

// SessionCountEQ applies the EQ predicate on the "session_count" field.
func SessionCountEQ(v int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldSessionCount, v))
}

// SessionCountNEQ applies the NEQ predicate on the "session_count" field.
func SessionCountNEQ(v int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldSessionCount, v))
}

// SessionCountIn applies the In predicate on the "session_count" field.
func SessionCountIn(vs ...int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldSessionCount, vs...))
}

// SessionCountNotIn applies the NotIn predicate on the "session_count" field.
func SessionCountNotIn(vs ...int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldSessionCount, vs...))
}

// SessionCountGT applies the GT predicate on the "session_count" field.
func SessionCountGT(v int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldSessionCount, v))
}

// SessionCountGTE applies the GTE predicate on the "session_count" field.
func SessionCountGTE(v int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldSessionCount, v))
}

// SessionCountLT applies the LT predicate on the "session_count" field.
func SessionCountLT(v int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldSessionCount, v))
}

// SessionCountLTE applies the LTE predicate on the "session_count" field.
func SessionCountLTE(v int) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldSessionCount, v))
}

// PerformanceScoreEQ applies the EQ predicate on the "performance_score" field.
func PerformanceScoreEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldPerformanceScore, v))
}

// PerformanceScoreNEQ applies the NEQ predicate on the "performance_score" field.
func PerformanceScoreNEQ(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldPerformanceScore, v))
}

// PerformanceScoreIn applies the In predicate on the "performance_score" field.
func PerformanceScoreIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldPerformanceScore, vs...))
}

// PerformanceScoreNotIn applies the NotIn predicate on the "performance_score" field.
func PerformanceScoreNotIn(vs ...float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldPerformanceScore, vs...))
}

// PerformanceScoreGT applies the GT predicate on the "performance_score" field.
func PerformanceScoreGT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldPerformanceScore, v))
}

// PerformanceScoreGTE applies the GTE predicate on the "performance_score" field.
func PerformanceScoreGTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldPerformanceScore, v))
}

// PerformanceScoreLT applies the LT predicate on the "performance_score" field.
func PerformanceScoreLT(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldPerformanceScore, v))
}

// PerformanceScoreLTE applies the LTE predicate on the "performance_score" field.
func PerformanceScoreLTE(v float64) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldPerformanceScore, v))
}

// ProfileStatusEQ applies the EQ predicate on the "profile_status" field.
func ProfileStatusEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldProfileStatus, v))
}

// ProfileStatusNEQ applies the NEQ predicate on the "profile_status" field.
func ProfileStatusNEQ(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldProfileStatus, v))
}

// ProfileStatusIn applies the In predicate on the "profile_status" field.
func ProfileStatusIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldProfileStatus, vs...))
}

// ProfileStatusNotIn applies the NotIn predicate on the "profile_status" field.
func ProfileStatusNotIn(vs ...string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldProfileStatus, vs...))
}

// ProfileStatusGT applies the GT predicate on the "profile_status" field.
func ProfileStatusGT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldProfileStatus, v))
}

// ProfileStatusGTE applies the GTE predicate on the "profile_status" field.
func ProfileStatusGTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldProfileStatus, v))
}

// ProfileStatusLT applies the LT predicate on the "profile_status" field.
func ProfileStatusLT(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldProfileStatus, v))
}

// ProfileStatusLTE applies the LTE predicate on the "profile_status" field.
func ProfileStatusLTE(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldProfileStatus, v))
}

// ProfileStatusContains applies the Contains predicate on the "profile_status" field.
func ProfileStatusContains(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContains(FieldProfileStatus, v))
}

// ProfileStatusHasPrefix applies the HasPrefix predicate on the "profile_status" field.
func ProfileStatusHasPrefix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasPrefix(FieldProfileStatus, v))
}

// ProfileStatusHasSuffix applies the HasSuffix predicate on the "profile_status" field.
func ProfileStatusHasSuffix(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldHasSuffix(FieldProfileStatus, v))
}

// ProfileStatusEqualFold applies the EqualFold predicate on the "profile_status" field.
func ProfileStatusEqualFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEqualFold(FieldProfileStatus, v))
}

// ProfileStatusContainsFold applies the ContainsFold predicate on the "profile_status" field.
func ProfileStatusContainsFold(v string) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldContainsFold(FieldProfileStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PerformanceProfile) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PerformanceProfile) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PerformanceProfile) predicate.PerformanceProfile {
	return predicate.PerformanceProfile(sql.NotPredicates(p))
}
