// Code generated by ent, DO NOT EDIT.

package sessionfeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionfeedback type in the database.
	Label = "session_feedback"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldClassID holds the string denoting the class_id field in the database.
	FieldClassID = "class_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldComboKey holds the string denoting the combo_key field in the database.
	FieldComboKey = "combo_key"
	// FieldCombo holds the string denoting the combo field in the database.
	FieldCombo = "combo"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldPurpose holds the string denoting the purpose field in the database.
	FieldPurpose = "purpose"
	// FieldLengthBucket holds the string denoting the length_bucket field in the database.
	FieldLengthBucket = "length_bucket"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldClarity holds the string denoting the clarity field in the database.
	FieldClarity = "clarity"
	// FieldEngagement holds the string denoting the engagement field in the database.
	FieldEngagement = "engagement"
	// FieldCognitiveLoad holds the string denoting the cognitive_load field in the database.
	FieldCognitiveLoad = "cognitive_load"
	// FieldAttentionSpan holds the string denoting the attention_span field in the database.
	FieldAttentionSpan = "attention_span"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldFatigueTrend holds the string denoting the fatigue_trend field in the database.
	FieldFatigueTrend = "fatigue_trend"
	// FieldFatigueSlope holds the string denoting the fatigue_slope field in the database.
	FieldFatigueSlope = "fatigue_slope"
	// FieldRawMetrics holds the string denoting the raw_metrics field in the database.
	FieldRawMetrics = "raw_metrics"
	// FieldSurveySubmissionID holds the string denoting the survey_submission_id field in the database.
	FieldSurveySubmissionID = "survey_submission_id"
	// Table holds the table name of the sessionfeedback in the database.
	Table = "session_feedbacks"
)

// Columns holds all SQL columns for sessionfeedback fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLearnerID,
	FieldClassID,
	FieldTaskID,
	FieldComboKey,
	FieldCombo,
	FieldKind,
	FieldTopic,
	FieldPurpose,
	FieldLengthBucket,
	FieldGrade,
	FieldSubject,
	FieldClarity,
	FieldEngagement,
	FieldCognitiveLoad,
	FieldAttentionSpan,
	FieldConfidence,
	FieldFatigueTrend,
	FieldFatigueSlope,
	FieldRawMetrics,
	FieldSurveySubmissionID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultClassID holds the default value on creation for the "class_id" field.
	DefaultClassID int
	// DefaultTaskID holds the default value on creation for the "task_id" field.
	DefaultTaskID int
	// DefaultClarity holds the default value on creation for the "clarity" field.
	DefaultClarity float64
	// DefaultEngagement holds the default value on creation for the "engagement" field.
	DefaultEngagement float64
	// DefaultCognitiveLoad holds the default value on creation for the "cognitive_load" field.
	DefaultCognitiveLoad float64
	// DefaultAttentionSpan holds the default value on creation for the "attention_span" field.
	DefaultAttentionSpan float64
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultFatigueTrend holds the default value on creation for the "fatigue_trend" field.
	DefaultFatigueTrend string
	// DefaultFatigueSlope holds the default value on creation for the "fatigue_slope" field.
	DefaultFatigueSlope float64
	// DefaultSurveySubmissionID holds the default value on creation for the "survey_submission_id" field.
	DefaultSurveySubmissionID string
)

// OrderOption defines the ordering options for the SessionFeedback queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByClassID orders the results by the class_id field.
func ByClassID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByComboKey orders the results by the combo_key field.
func ByComboKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComboKey, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByPurpose orders the results by the purpose field.
func ByPurpose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurpose, opts...).ToFunc()
}

// ByLengthBucket orders the results by the length_bucket field.
func ByLengthBucket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLengthBucket, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByClarity orders the results by the clarity field.
func ByClarity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClarity, opts...).ToFunc()
}

// ByEngagement orders the results by the engagement field.
func ByEngagement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagement, opts...).ToFunc()
}

// ByCognitiveLoad orders the results by the cognitive_load field.
func ByCognitiveLoad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCognitiveLoad, opts...).ToFunc()
}

// ByAttentionSpan orders the results by the attention_span field.
func ByAttentionSpan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttentionSpan, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByFatigueTrend orders the results by the fatigue_trend field.
func ByFatigueTrend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFatigueTrend, opts...).ToFunc()
}

// ByFatigueSlope orders the results by the fatigue_slope field.
func ByFatigueSlope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFatigueSlope, opts...).ToFunc()
}

// BySurveySubmissionID orders the results by the survey_submission_id field.
func BySurveySubmissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurveySubmissionID, opts...).ToFunc()
}
