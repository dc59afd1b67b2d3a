// Code generated by ent, DO NOT EDIT.

package sessionfeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/samacademy/cohortgen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldSessionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldLearnerID, v))
}

// ClassID applies equality check predicate on the "class_id" field. It's identical to ClassIDEQ.
func ClassID(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldClassID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldTaskID, v))
}

// ComboKey applies equality check predicate on the "combo_key" field. It's identical to ComboKeyEQ.
func ComboKey(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldComboKey, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldKind, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldTopic, v))
}

// Purpose applies equality check predicate on the "purpose" field. It's identical to PurposeEQ.
func Purpose(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldPurpose, v))
}

// LengthBucket applies equality check predicate on the "length_bucket" field. It's identical to LengthBucketEQ.
func LengthBucket(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldLengthBucket, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldGrade, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldSubject, v))
}

// Clarity applies equality check predicate on the "clarity" field. It's identical to ClarityEQ.
func Clarity(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldClarity, v))
}

// Engagement applies equality check predicate on the "engagement" field. It's identical to EngagementEQ.
func Engagement(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldEngagement, v))
}

// CognitiveLoad applies equality check predicate on the "cognitive_load" field. It's identical to CognitiveLoadEQ.
func CognitiveLoad(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldCognitiveLoad, v))
}

// AttentionSpan applies equality check predicate on the "attention_span" field. It's identical to AttentionSpanEQ.
func AttentionSpan(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldAttentionSpan, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldConfidence, v))
}

// FatigueTrend applies equality check predicate on the "fatigue_trend" field. It's identical to FatigueTrendEQ.
func FatigueTrend(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldFatigueTrend, v))
}

// FatigueSlope applies equality check predicate on the "fatigue_slope" field. It's identical to FatigueSlopeEQ.
func FatigueSlope(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldFatigueSlope, v))
}

// SurveySubmissionID applies equality check predicate on the "survey_submission_id" field. It's identical to SurveySubmissionIDEQ.
func SurveySubmissionID(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldSurveySubmissionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContainsFold(FieldSessionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContainsFold(FieldLearnerID, v))
}

// ClassIDEQ applies the EQ predicate on the "class_id" field.
func ClassIDEQ(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldClassID, v))
}

// ClassIDNEQ applies the NEQ predicate on the "class_id" field.
func ClassIDNEQ(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldClassID, v))
}

// ClassIDIn applies the In predicate on the "class_id" field.
func ClassIDIn(vs ...int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldClassID, vs...))
}

// ClassIDNotIn applies the NotIn predicate on the "class_id" field.
func ClassIDNotIn(vs ...int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldClassID, vs...))
}

// ClassIDGT applies the GT predicate on the "class_id" field.
func ClassIDGT(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldClassID, v))
}

// ClassIDGTE applies the GTE predicate on the "class_id" field.
func ClassIDGTE(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldClassID, v))
}

// ClassIDLT applies the LT predicate on the "class_id" field.
func ClassIDLT(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldClassID, v))
}

// ClassIDLTE applies the LTE predicate on the "class_id" field.
func ClassIDLTE(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldClassID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v int) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldTaskID, v))
}

// ComboKeyEQ applies the EQ predicate on the "combo_key" field.
func ComboKeyEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldComboKey, v))
}

// ComboKeyNEQ applies the NEQ predicate on the "combo_key" field.
func ComboKeyNEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldComboKey, v))
}

// ComboKeyIn applies the In predicate on the "combo_key" field.
func ComboKeyIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldComboKey, vs...))
}

// ComboKeyNotIn applies the NotIn predicate on the "combo_key" field.
func ComboKeyNotIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldComboKey, vs...))
}

// ComboKeyGT applies the GT predicate on the "combo_key" field.
func ComboKeyGT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldComboKey, v))
}

// ComboKeyGTE applies the GTE predicate on the "combo_key" field.
func ComboKeyGTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldComboKey, v))
}

// ComboKeyLT applies the LT predicate on the "combo_key" field.
func ComboKeyLT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldComboKey, v))
}

// ComboKeyLTE applies the LTE predicate on the "combo_key" field.
func ComboKeyLTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldComboKey, v))
}

// ComboKeyContains applies the Contains predicate on the "combo_key" field.
func ComboKeyContains(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContains(FieldComboKey, v))
}

// ComboKeyHasPrefix applies the HasPrefix predicate on the "combo_key" field.
func ComboKeyHasPrefix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasPrefix(FieldComboKey, v))
}

// ComboKeyHasSuffix applies the HasSuffix predicate on the "combo_key" field.
func ComboKeyHasSuffix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasSuffix(FieldComboKey, v))
}

// ComboKeyEqualFold applies the EqualFold predicate on the "combo_key" field.
func ComboKeyEqualFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEqualFold(FieldComboKey, v))
}

// ComboKeyContainsFold applies the ContainsFold predicate on the "combo_key" field.
func ComboKeyContainsFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContainsFold(FieldComboKey, v))
}

// ComboIsNil applies the IsNil predicate on the "combo" field.
func ComboIsNil() predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIsNull(FieldCombo))
}

// ComboNotNil applies the NotNil predicate on the "combo" field.
func ComboNotNil() predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotNull(FieldCombo))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContainsFold(FieldKind, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContainsFold(FieldTopic, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldPurpose, vs...))
}

// PurposeGT applies the GT predicate on the "purpose" field.
func PurposeGT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldPurpose, v))
}

// PurposeGTE applies the GTE predicate on the "purpose" field.
func PurposeGTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldPurpose, v))
}

// PurposeLT applies the LT predicate on the "purpose" field.
func PurposeLT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldPurpose, v))
}

// PurposeLTE applies the LTE predicate on the "purpose" field.
func PurposeLTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldPurpose, v))
}

// PurposeContains applies the Contains predicate on the "purpose" field.
func PurposeContains(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContains(FieldPurpose, v))
}

// PurposeHasPrefix applies the HasPrefix predicate on the "purpose" field.
func PurposeHasPrefix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasPrefix(FieldPurpose, v))
}

// PurposeHasSuffix applies the HasSuffix predicate on the "purpose" field.
func PurposeHasSuffix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasSuffix(FieldPurpose, v))
}

// PurposeEqualFold applies the EqualFold predicate on the "purpose" field.
func PurposeEqualFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEqualFold(FieldPurpose, v))
}

// PurposeContainsFold applies the ContainsFold predicate on the "purpose" field.
func PurposeContainsFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContainsFold(FieldPurpose, v))
}

// LengthBucketEQ applies the EQ predicate on the "length_bucket" field.
func LengthBucketEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldLengthBucket, v))
}

// LengthBucketNEQ applies the NEQ predicate on the "length_bucket" field.
func LengthBucketNEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldLengthBucket, v))
}

// LengthBucketIn applies the In predicate on the "length_bucket" field.
func LengthBucketIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldLengthBucket, vs...))
}

// LengthBucketNotIn applies the NotIn predicate on the "length_bucket" field.
func LengthBucketNotIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldLengthBucket, vs...))
}

// LengthBucketGT applies the GT predicate on the "length_bucket" field.
func LengthBucketGT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldLengthBucket, v))
}

// LengthBucketGTE applies the GTE predicate on the "length_bucket" field.
func LengthBucketGTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldLengthBucket, v))
}

// LengthBucketLT applies the LT predicate on the "length_bucket" field.
func LengthBucketLT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldLengthBucket, v))
}

// LengthBucketLTE applies the LTE predicate on the "length_bucket" field.
func LengthBucketLTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldLengthBucket, v))
}

// LengthBucketContains applies the Contains predicate on the "length_bucket" field.
func LengthBucketContains(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContains(FieldLengthBucket, v))
}

// LengthBucketHasPrefix applies the HasPrefix predicate on the "length_bucket" field.
func LengthBucketHasPrefix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasPrefix(FieldLengthBucket, v))
}

// LengthBucketHasSuffix applies the HasSuffix predicate on the "length_bucket" field.
func LengthBucketHasSuffix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasSuffix(FieldLengthBucket, v))
}

// LengthBucketEqualFold applies the EqualFold predicate on the "length_bucket" field.
func LengthBucketEqualFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEqualFold(FieldLengthBucket, v))
}

// LengthBucketContainsFold applies the ContainsFold predicate on the "length_bucket" field.
func LengthBucketContainsFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContainsFold(FieldLengthBucket, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContainsFold(FieldGrade, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContainsFold(FieldSubject, v))
}

// ClarityEQ applies the EQ predicate on the "clarity" field.
func ClarityEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldClarity, v))
}

// ClarityNEQ applies the NEQ predicate on the "clarity" field.
func ClarityNEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldClarity, v))
}

// ClarityIn applies the In predicate on the "clarity" field.
func ClarityIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldClarity, vs...))
}

// ClarityNotIn applies the NotIn predicate on the "clarity" field.
func ClarityNotIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldClarity, vs...))
}

// ClarityGT applies the GT predicate on the "clarity" field.
func ClarityGT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldClarity, v))
}

// ClarityGTE applies the GTE predicate on the "clarity" field.
func ClarityGTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldClarity, v))
}

// ClarityLT applies the LT predicate on the "clarity" field.
func ClarityLT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldClarity, v))
}

// ClarityLTE applies the LTE predicate on the "clarity" field.
func ClarityLTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldClarity, v))
}

// EngagementEQ applies the EQ predicate on the "engagement" field.
func EngagementEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldEngagement, v))
}

// EngagementNEQ applies the NEQ predicate on the "engagement" field.
func EngagementNEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldEngagement, v))
}

// EngagementIn applies the In predicate on the "engagement" field.
func EngagementIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldEngagement, vs...))
}

// EngagementNotIn applies the NotIn predicate on the "engagement" field.
func EngagementNotIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldEngagement, vs...))
}

// EngagementGT applies the GT predicate on the "engagement" field.
func EngagementGT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldEngagement, v))
}

// EngagementGTE applies the GTE predicate on the "engagement" field.
func EngagementGTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldEngagement, v))
}

// EngagementLT applies the LT predicate on the "engagement" field.
func EngagementLT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldEngagement, v))
}

// EngagementLTE applies the LTE predicate on the "engagement" field.
func EngagementLTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldEngagement, v))
}

// CognitiveLoadEQ applies the EQ predicate on the "cognitive_load" field.
func CognitiveLoadEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldCognitiveLoad, v))
}

// CognitiveLoadNEQ applies the NEQ predicate on the "cognitive_load" field.
func CognitiveLoadNEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldCognitiveLoad, v))
}

// CognitiveLoadIn applies the In predicate on the "cognitive_load" field.
func CognitiveLoadIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldCognitiveLoad, vs...))
}

// CognitiveLoadNotIn applies the NotIn predicate on the "cognitive_load" field.
func CognitiveLoadNotIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldCognitiveLoad, vs...))
}

// CognitiveLoadGT applies the GT predicate on the "cognitive_load" field.
func CognitiveLoadGT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldCognitiveLoad, v))
}

// CognitiveLoadGTE applies the GTE predicate on the "cognitive_load" field.
func CognitiveLoadGTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldCognitiveLoad, v))
}

// CognitiveLoadLT applies the LT predicate on the "cognitive_load" field.
func CognitiveLoadLT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldCognitiveLoad, v))
}

// CognitiveLoadLTE applies the LTE predicate on the "cognitive_load" field.
func CognitiveLoadLTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldCognitiveLoad, v))
}

// AttentionSpanEQ applies the EQ predicate on the "attention_span" field.
func AttentionSpanEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldAttentionSpan, v))
}

// AttentionSpanNEQ applies the NEQ predicate on the "attention_span" field.
func AttentionSpanNEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldAttentionSpan, v))
}

// AttentionSpanIn applies the In predicate on the "attention_span" field.
func AttentionSpanIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldAttentionSpan, vs...))
}

// AttentionSpanNotIn applies the NotIn predicate on the "attention_span" field.
func AttentionSpanNotIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldAttentionSpan, vs...))
}

// AttentionSpanGT applies the GT predicate on the "attention_span" field.
func AttentionSpanGT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldAttentionSpan, v))
}

// AttentionSpanGTE applies the GTE predicate on the "attention_span" field.
func AttentionSpanGTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldAttentionSpan, v))
}

// AttentionSpanLT applies the LT predicate on the "attention_span" field.
func AttentionSpanLT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldAttentionSpan, v))
}

// AttentionSpanLTE applies the LTE predicate on the "attention_span" field.
func AttentionSpanLTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldAttentionSpan, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldConfidence, v))
}

// FatigueTrendEQ applies the EQ predicate on the "fatigue_trend" field.
func FatigueTrendEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldFatigueTrend, v))
}

// FatigueTrendNEQ applies the NEQ predicate on the "fatigue_trend" field.
func FatigueTrendNEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldFatigueTrend, v))
}

// FatigueTrendIn applies the In predicate on the "fatigue_trend" field.
func FatigueTrendIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldFatigueTrend, vs...))
}

// FatigueTrendNotIn applies the NotIn predicate on the "fatigue_trend" field.
func FatigueTrendNotIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldFatigueTrend, vs...))
}

// FatigueTrendGT applies the GT predicate on the "fatigue_trend" field.
func FatigueTrendGT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldFatigueTrend, v))
}

// FatigueTrendGTE applies the GTE predicate on the "fatigue_trend" field.
func FatigueTrendGTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldFatigueTrend, v))
}

// FatigueTrendLT applies the LT predicate on the "fatigue_trend" field.
func FatigueTrendLT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldFatigueTrend, v))
}

// FatigueTrendLTE applies the LTE predicate on the "fatigue_trend" field.
func FatigueTrendLTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldFatigueTrend, v))
}

// FatigueTrendContains applies the Contains predicate on the "fatigue_trend" field.
func FatigueTrendContains(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContains(FieldFatigueTrend, v))
}

// FatigueTrendHasPrefix applies the HasPrefix predicate on the "fatigue_trend" field.
func FatigueTrendHasPrefix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasPrefix(FieldFatigueTrend, v))
}

// FatigueTrendHasSuffix applies the HasSuffix predicate on the "fatigue_trend" field.
func FatigueTrendHasSuffix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasSuffix(FieldFatigueTrend, v))
}

// FatigueTrendEqualFold applies the EqualFold predicate on the "fatigue_trend" field.
func FatigueTrendEqualFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEqualFold(FieldFatigueTrend, v))
}

// FatigueTrendContainsFold applies the ContainsFold predicate on the "fatigue_trend" field.
func FatigueTrendContainsFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContainsFold(FieldFatigueTrend, v))
}

// FatigueSlopeEQ applies the EQ predicate on the "fatigue_slope" field.
func FatigueSlopeEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldFatigueSlope, v))
}

// FatigueSlopeNEQ applies the NEQ predicate on the "fatigue_slope" field.
func FatigueSlopeNEQ(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldFatigueSlope, v))
}

// FatigueSlopeIn applies the In predicate on the "fatigue_slope" field.
func FatigueSlopeIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldFatigueSlope, vs...))
}

// FatigueSlopeNotIn applies the NotIn predicate on the "fatigue_slope" field.
func FatigueSlopeNotIn(vs ...float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldFatigueSlope, vs...))
}

// FatigueSlopeGT applies the GT predicate on the "fatigue_slope" field.
func FatigueSlopeGT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldFatigueSlope, v))
}

// FatigueSlopeGTE applies the GTE predicate on the "fatigue_slope" field.
func FatigueSlopeGTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldFatigueSlope, v))
}

// FatigueSlopeLT applies the LT predicate on the "fatigue_slope" field.
func FatigueSlopeLT(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldFatigueSlope, v))
}

// FatigueSlopeLTE applies the LTE predicate on the "fatigue_slope" field.
func FatigueSlopeLTE(v float64) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldFatigueSlope, v))
}

// RawMetricsIsNil applies the IsNil predicate on the "raw_metrics" field.
func RawMetricsIsNil() predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIsNull(FieldRawMetrics))
}

// RawMetricsNotNil applies the NotNil predicate on the "raw_metrics" field.
func RawMetricsNotNil() predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotNull(FieldRawMetrics))
}

// SurveySubmissionIDEQ applies the EQ predicate on the "survey_submission_id" field.
func SurveySubmissionIDEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEQ(FieldSurveySubmissionID, v))
}

// SurveySubmissionIDNEQ applies the NEQ predicate on the "survey_submission_id" field.
func SurveySubmissionIDNEQ(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNEQ(FieldSurveySubmissionID, v))
}

// SurveySubmissionIDIn applies the In predicate on the "survey_submission_id" field.
func SurveySubmissionIDIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldIn(FieldSurveySubmissionID, vs...))
}

// SurveySubmissionIDNotIn applies the NotIn predicate on the "survey_submission_id" field.
func SurveySubmissionIDNotIn(vs ...string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldNotIn(FieldSurveySubmissionID, vs...))
}

// SurveySubmissionIDGT applies the GT predicate on the "survey_submission_id" field.
func SurveySubmissionIDGT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGT(FieldSurveySubmissionID, v))
}

// SurveySubmissionIDGTE applies the GTE predicate on the "survey_submission_id" field.
func SurveySubmissionIDGTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldGTE(FieldSurveySubmissionID, v))
}

// SurveySubmissionIDLT applies the LT predicate on the "survey_submission_id" field.
func SurveySubmissionIDLT(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLT(FieldSurveySubmissionID, v))
}

// SurveySubmissionIDLTE applies the LTE predicate on the "survey_submission_id" field.
func SurveySubmissionIDLTE(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldLTE(FieldSurveySubmissionID, v))
}

// SurveySubmissionIDContains applies the Contains predicate on the "survey_submission_id" field.
func SurveySubmissionIDContains(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContains(FieldSurveySubmissionID, v))
}

// SurveySubmissionIDHasPrefix applies the HasPrefix predicate on the "survey_submission_id" field.
func SurveySubmissionIDHasPrefix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasPrefix(FieldSurveySubmissionID, v))
}

// SurveySubmissionIDHasSuffix applies the HasSuffix predicate on the "survey_submission_id" field.
func SurveySubmissionIDHasSuffix(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldHasSuffix(FieldSurveySubmissionID, v))
}

// SurveySubmissionIDEqualFold applies the EqualFold predicate on the "survey_submission_id" field.
func SurveySubmissionIDEqualFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldEqualFold(FieldSurveySubmissionID, v))
}

// SurveySubmissionIDContainsFold applies the ContainsFold predicate on the "survey_submission_id" field.
func SurveySubmissionIDContainsFold(v string) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.FieldContainsFold(FieldSurveySubmissionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionFeedback) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionFeedback) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionFeedback) predicate.SessionFeedback {
	return predicate.SessionFeedback(sql.NotPredicates(p))
}
