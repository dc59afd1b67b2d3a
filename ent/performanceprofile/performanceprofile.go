// Code generated by ent, DO NOT EDIT.

package performanceprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the performanceprofile type in the database.
	Label = "performance_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldComboKey holds the string denoting the combo_key field in the database.
	FieldComboKey = "combo_key"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldPurpose holds the string denoting the purpose field in the database.
	FieldPurpose = "purpose"
	// FieldLengthBucket holds the string denoting the length_bucket field in the database.
	FieldLengthBucket = "length_bucket"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldClarityAvg holds the string denoting the clarity_avg field in the database.
	FieldClarityAvg = "clarity_avg"
	// FieldEngagementAvg holds the string denoting the engagement_avg field in the database.
	FieldEngagementAvg = "engagement_avg"
	// FieldConfidenceAvg holds the string denoting the confidence_avg field in the database.
	FieldConfidenceAvg = "confidence_avg"
	// FieldAttentionAvg holds the string denoting the attention_avg field in the database.
	FieldAttentionAvg = "attention_avg"
	// FieldFatigueSlope holds the string denoting the fatigue_slope field in the database.
	FieldFatigueSlope = "fatigue_slope"
	// FieldSessionCount holds the string denoting the session_count field in the database.
	FieldSessionCount = "session_count"
	// FieldPerformanceScore holds the string denoting the performance_score field in the database.
	FieldPerformanceScore = "performance_score"
	// FieldProfileStatus holds the string denoting the profile_status field in the database.
	FieldProfileStatus = "profile_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the performanceprofile in the database.
	Table = "performance_profiles"
)

// Columns holds all SQL columns for performanceprofile fields.
var Columns = []string{
	FieldID,
	FieldComboKey,
	FieldTopic,
	FieldPurpose,
	FieldLengthBucket,
	FieldKind,
	FieldGrade,
	FieldSubject,
	FieldClarityAvg,
	FieldEngagementAvg,
	FieldConfidenceAvg,
	FieldAttentionAvg,
	FieldFatigueSlope,
	FieldSessionCount,
	FieldPerformanceScore,
	FieldProfileStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// ComboKeyValidator is a validator for the "combo_key" field. It is called by the builders before save.
	ComboKeyValidator func(string) error
	// DefaultClarityAvg holds the default value on creation for the "clarity_avg" field.
	DefaultClarityAvg float64
	// DefaultEngagementAvg holds the default value on creation for the "engagement_avg" field.
	DefaultEngagementAvg float64
	// DefaultConfidenceAvg holds the default value on creation for the "confidence_avg" field.
	DefaultConfidenceAvg float64
	// DefaultAttentionAvg holds the default value on creation for the "attention_avg" field.
	DefaultAttentionAvg float64
	// DefaultFatigueSlope holds the default value on creation for the "fatigue_slope" field.
	DefaultFatigueSlope float64
	// DefaultSessionCount holds the default value on creation for the "session_count" field.
	DefaultSessionCount int
	// DefaultPerformanceScore holds the default value on creation for the "performance_score" field.
	DefaultPerformanceScore float64
	// DefaultProfileStatus holds the default value on creation for the "profile_status" field.
	DefaultProfileStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PerformanceProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByComboKey orders the results by the combo_key field.
func ByComboKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComboKey, opts...).ToFunc()
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

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByClarityAvg orders the results by the clarity_avg field.
func ByClarityAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClarityAvg, opts...).ToFunc()
}

// ByEngagementAvg orders the results by the engagement_avg field.
func ByEngagementAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementAvg, opts...).ToFunc()
}

// ByConfidenceAvg orders the results by the confidence_avg field.
func ByConfidenceAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceAvg, opts...).ToFunc()
}

// ByAttentionAvg orders the results by the attention_avg field.
func ByAttentionAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttentionAvg, opts...).ToFunc()
}

// ByFatigueSlope orders the results by the fatigue_slope field.
func ByFatigueSlope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFatigueSlope, opts...).ToFunc()
}

// BySessionCount orders the results by the session_count field.
func BySessionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionCount, opts...).ToFunc()
}

// ByPerformanceScore orders the results by the performance_score field.
func ByPerformanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformanceScore, opts...).ToFunc()
}

// ByProfileStatus orders the results by the profile_status field.
func ByProfileStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
