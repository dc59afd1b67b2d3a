// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/samacademy/cohortgen/ent/class"
	"github.com/samacademy/cohortgen/ent/enrollment"
	"github.com/samacademy/cohortgen/ent/generationevent"
	"github.com/samacademy/cohortgen/ent/group"
	"github.com/samacademy/cohortgen/ent/performanceprofile"
	"github.com/samacademy/cohortgen/ent/schema"
	"github.com/samacademy/cohortgen/ent/sessionfeedback"
	"github.com/samacademy/cohortgen/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	classFields := schema.Class{}.Fields()
	_ = classFields
	// classDescName is the schema descriptor for name field.
	classDescName := classFields[0].Descriptor()
	// class.NameValidator is a validator for the "name" field. It is called by the builders before save.
	class.NameValidator = classDescName.Validators[0].(func(string) error)
	// classDescCreatedAt is the schema descriptor for created_at field.
	classDescCreatedAt := classFields[3].Descriptor()
	// class.DefaultCreatedAt holds the default value on creation for the created_at field.
	class.DefaultCreatedAt = classDescCreatedAt.Default.(func() time.Time)
	enrollmentFields := schema.Enrollment{}.Fields()
	_ = enrollmentFields
	// enrollmentDescLearnerID is the schema descriptor for learner_id field.
	enrollmentDescLearnerID := enrollmentFields[1].Descriptor()
	// enrollment.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	enrollment.LearnerIDValidator = enrollmentDescLearnerID.Validators[0].(func(string) error)
	// enrollmentDescCreatedAt is the schema descriptor for created_at field.
	enrollmentDescCreatedAt := enrollmentFields[2].Descriptor()
	// enrollment.DefaultCreatedAt holds the default value on creation for the created_at field.
	enrollment.DefaultCreatedAt = enrollmentDescCreatedAt.Default.(func() time.Time)
	generationeventMixin := schema.GenerationEvent{}.Mixin()
	generationeventMixinFields0 := generationeventMixin[0].Fields()
	_ = generationeventMixinFields0
	generationeventFields := schema.GenerationEvent{}.Fields()
	_ = generationeventFields
	// generationeventDescTimestamp is the schema descriptor for timestamp field.
	generationeventDescTimestamp := generationeventMixinFields0[1].Descriptor()
	// generationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationevent.DefaultTimestamp = generationeventDescTimestamp.Default.(func() time.Time)
	// generationeventDescInputTokens is the schema descriptor for input_tokens field.
	generationeventDescInputTokens := generationeventFields[3].Descriptor()
	// generationevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	generationevent.DefaultInputTokens = generationeventDescInputTokens.Default.(int)
	// generationeventDescOutputTokens is the schema descriptor for output_tokens field.
	generationeventDescOutputTokens := generationeventFields[4].Descriptor()
	// generationevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	generationevent.DefaultOutputTokens = generationeventDescOutputTokens.Default.(int)
	// generationeventDescLatencyMs is the schema descriptor for latency_ms field.
	generationeventDescLatencyMs := generationeventFields[5].Descriptor()
	// generationevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	generationevent.DefaultLatencyMs = generationeventDescLatencyMs.Default.(int64)
	// generationeventDescErrorMessage is the schema descriptor for error_message field.
	generationeventDescErrorMessage := generationeventFields[7].Descriptor()
	// generationevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	generationevent.DefaultErrorMessage = generationeventDescErrorMessage.Default.(string)
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescNumber is the schema descriptor for number field.
	groupDescNumber := groupFields[2].Descriptor()
	// group.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	group.NumberValidator = groupDescNumber.Validators[0].(func(int) error)
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupFields[6].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	performanceprofileFields := schema.PerformanceProfile{}.Fields()
	_ = performanceprofileFields
	// performanceprofileDescComboKey is the schema descriptor for combo_key field.
	performanceprofileDescComboKey := performanceprofileFields[0].Descriptor()
	// performanceprofile.ComboKeyValidator is a validator for the "combo_key" field. It is called by the builders before save.
	performanceprofile.ComboKeyValidator = performanceprofileDescComboKey.Validators[0].(func(string) error)
	// performanceprofileDescClarityAvg is the schema descriptor for clarity_avg field.
	performanceprofileDescClarityAvg := performanceprofileFields[7].Descriptor()
	// performanceprofile.DefaultClarityAvg holds the default value on creation for the clarity_avg field.
	performanceprofile.DefaultClarityAvg = performanceprofileDescClarityAvg.Default.(float64)
	// performanceprofileDescEngagementAvg is the schema descriptor for engagement_avg field.
	performanceprofileDescEngagementAvg := performanceprofileFields[8].Descriptor()
	// performanceprofile.DefaultEngagementAvg holds the default value on creation for the engagement_avg field.
	performanceprofile.DefaultEngagementAvg = performanceprofileDescEngagementAvg.Default.(float64)
	// performanceprofileDescConfidenceAvg is the schema descriptor for confidence_avg field.
	performanceprofileDescConfidenceAvg := performanceprofileFields[9].Descriptor()
	// performanceprofile.DefaultConfidenceAvg holds the default value on creation for the confidence_avg field.
	performanceprofile.DefaultConfidenceAvg = performanceprofileDescConfidenceAvg.Default.(float64)
	// performanceprofileDescAttentionAvg is the schema descriptor for attention_avg field.
	performanceprofileDescAttentionAvg := performanceprofileFields[10].Descriptor()
	// performanceprofile.DefaultAttentionAvg holds the default value on creation for the attention_avg field.
	performanceprofile.DefaultAttentionAvg = performanceprofileDescAttentionAvg.Default.(float64)
	// performanceprofileDescFatigueSlope is the schema descriptor for fatigue_slope field.
	performanceprofileDescFatigueSlope := performanceprofileFields[11].Descriptor()
	// performanceprofile.DefaultFatigueSlope holds the default value on creation for the fatigue_slope field.
	performanceprofile.DefaultFatigueSlope = performanceprofileDescFatigueSlope.Default.(float64)
	// performanceprofileDescSessionCount is the schema descriptor for session_count field.
	performanceprofileDescSessionCount := performanceprofileFields[12].Descriptor()
	// performanceprofile.DefaultSessionCount holds the default value on creation for the session_count field.
	performanceprofile.DefaultSessionCount = performanceprofileDescSessionCount.Default.(int)
	// performanceprofileDescPerformanceScore is the schema descriptor for performance_score field.
	performanceprofileDescPerformanceScore := performanceprofileFields[13].Descriptor()
	// performanceprofile.DefaultPerformanceScore holds the default value on creation for the performance_score field.
	performanceprofile.DefaultPerformanceScore = performanceprofileDescPerformanceScore.Default.(float64)
	// performanceprofileDescProfileStatus is the schema descriptor for profile_status field.
	performanceprofileDescProfileStatus := performanceprofileFields[14].Descriptor()
	// performanceprofile.DefaultProfileStatus holds the default value on creation for the profile_status field.
	performanceprofile.DefaultProfileStatus = performanceprofileDescProfileStatus.Default.(string)
	// performanceprofileDescCreatedAt is the schema descriptor for created_at field.
	performanceprofileDescCreatedAt := performanceprofileFields[15].Descriptor()
	// performanceprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	performanceprofile.DefaultCreatedAt = performanceprofileDescCreatedAt.Default.(func() time.Time)
	// performanceprofileDescUpdatedAt is the schema descriptor for updated_at field.
	performanceprofileDescUpdatedAt := performanceprofileFields[16].Descriptor()
	// performanceprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	performanceprofile.DefaultUpdatedAt = performanceprofileDescUpdatedAt.Default.(func() time.Time)
	// performanceprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	performanceprofile.UpdateDefaultUpdatedAt = performanceprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionfeedbackMixin := schema.SessionFeedback{}.Mixin()
	sessionfeedbackMixinFields0 := sessionfeedbackMixin[0].Fields()
	_ = sessionfeedbackMixinFields0
	sessionfeedbackFields := schema.SessionFeedback{}.Fields()
	_ = sessionfeedbackFields
	// sessionfeedbackDescTimestamp is the schema descriptor for timestamp field.
	sessionfeedbackDescTimestamp := sessionfeedbackMixinFields0[1].Descriptor()
	// sessionfeedback.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionfeedback.DefaultTimestamp = sessionfeedbackDescTimestamp.Default.(func() time.Time)
	// sessionfeedbackDescSessionID is the schema descriptor for session_id field.
	sessionfeedbackDescSessionID := sessionfeedbackFields[0].Descriptor()
	// sessionfeedback.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionfeedback.SessionIDValidator = sessionfeedbackDescSessionID.Validators[0].(func(string) error)
	// sessionfeedbackDescLearnerID is the schema descriptor for learner_id field.
	sessionfeedbackDescLearnerID := sessionfeedbackFields[1].Descriptor()
	// sessionfeedback.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionfeedback.LearnerIDValidator = sessionfeedbackDescLearnerID.Validators[0].(func(string) error)
	// sessionfeedbackDescClassID is the schema descriptor for class_id field.
	sessionfeedbackDescClassID := sessionfeedbackFields[2].Descriptor()
	// sessionfeedback.DefaultClassID holds the default value on creation for the class_id field.
	sessionfeedback.DefaultClassID = sessionfeedbackDescClassID.Default.(int)
	// sessionfeedbackDescTaskID is the schema descriptor for task_id field.
	sessionfeedbackDescTaskID := sessionfeedbackFields[3].Descriptor()
	// sessionfeedback.DefaultTaskID holds the default value on creation for the task_id field.
	sessionfeedback.DefaultTaskID = sessionfeedbackDescTaskID.Default.(int)
	// sessionfeedbackDescClarity is the schema descriptor for clarity field.
	sessionfeedbackDescClarity := sessionfeedbackFields[12].Descriptor()
	// sessionfeedback.DefaultClarity holds the default value on creation for the clarity field.
	sessionfeedback.DefaultClarity = sessionfeedbackDescClarity.Default.(float64)
	// sessionfeedbackDescEngagement is the schema descriptor for engagement field.
	sessionfeedbackDescEngagement := sessionfeedbackFields[13].Descriptor()
	// sessionfeedback.DefaultEngagement holds the default value on creation for the engagement field.
	sessionfeedback.DefaultEngagement = sessionfeedbackDescEngagement.Default.(float64)
	// sessionfeedbackDescCognitiveLoad is the schema descriptor for cognitive_load field.
	sessionfeedbackDescCognitiveLoad := sessionfeedbackFields[14].Descriptor()
	// sessionfeedback.DefaultCognitiveLoad holds the default value on creation for the cognitive_load field.
	sessionfeedback.DefaultCognitiveLoad = sessionfeedbackDescCognitiveLoad.Default.(float64)
	// sessionfeedbackDescAttentionSpan is the schema descriptor for attention_span field.
	sessionfeedbackDescAttentionSpan := sessionfeedbackFields[15].Descriptor()
	// sessionfeedback.DefaultAttentionSpan holds the default value on creation for the attention_span field.
	sessionfeedback.DefaultAttentionSpan = sessionfeedbackDescAttentionSpan.Default.(float64)
	// sessionfeedbackDescConfidence is the schema descriptor for confidence field.
	sessionfeedbackDescConfidence := sessionfeedbackFields[16].Descriptor()
	// sessionfeedback.DefaultConfidence holds the default value on creation for the confidence field.
	sessionfeedback.DefaultConfidence = sessionfeedbackDescConfidence.Default.(float64)
	// sessionfeedbackDescFatigueTrend is the schema descriptor for fatigue_trend field.
	sessionfeedbackDescFatigueTrend := sessionfeedbackFields[17].Descriptor()
	// sessionfeedback.DefaultFatigueTrend holds the default value on creation for the fatigue_trend field.
	sessionfeedback.DefaultFatigueTrend = sessionfeedbackDescFatigueTrend.Default.(string)
	// sessionfeedbackDescFatigueSlope is the schema descriptor for fatigue_slope field.
	sessionfeedbackDescFatigueSlope := sessionfeedbackFields[18].Descriptor()
	// sessionfeedback.DefaultFatigueSlope holds the default value on creation for the fatigue_slope field.
	sessionfeedback.DefaultFatigueSlope = sessionfeedbackDescFatigueSlope.Default.(float64)
	// sessionfeedbackDescSurveySubmissionID is the schema descriptor for survey_submission_id field.
	sessionfeedbackDescSurveySubmissionID := sessionfeedbackFields[20].Descriptor()
	// sessionfeedback.DefaultSurveySubmissionID holds the default value on creation for the survey_submission_id field.
	sessionfeedback.DefaultSurveySubmissionID = sessionfeedbackDescSurveySubmissionID.Default.(string)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescKind is the schema descriptor for kind field.
	taskDescKind := taskFields[0].Descriptor()
	// task.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	task.KindValidator = taskDescKind.Validators[0].(func(string) error)
	// taskDescTopic is the schema descriptor for topic field.
	taskDescTopic := taskFields[1].Descriptor()
	// task.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	task.TopicValidator = taskDescTopic.Validators[0].(func(string) error)
	// taskDescStatus is the schema descriptor for status field.
	taskDescStatus := taskFields[2].Descriptor()
	// task.DefaultStatus holds the default value on creation for the status field.
	task.DefaultStatus = taskDescStatus.Default.(string)
	// taskDescPurpose is the schema descriptor for purpose field.
	taskDescPurpose := taskFields[8].Descriptor()
	// task.DefaultPurpose holds the default value on creation for the purpose field.
	task.DefaultPurpose = taskDescPurpose.Default.(string)
	// taskDescLengthMinutes is the schema descriptor for length_minutes field.
	taskDescLengthMinutes := taskFields[11].Descriptor()
	// task.DefaultLengthMinutes holds the default value on creation for the length_minutes field.
	task.DefaultLengthMinutes = taskDescLengthMinutes.Default.(int)
	// taskDescQuestionType is the schema descriptor for question_type field.
	taskDescQuestionType := taskFields[12].Descriptor()
	// task.DefaultQuestionType holds the default value on creation for the question_type field.
	task.DefaultQuestionType = taskDescQuestionType.Default.(string)
	// taskDescNumQuestions is the schema descriptor for num_questions field.
	taskDescNumQuestions := taskFields[13].Descriptor()
	// task.DefaultNumQuestions holds the default value on creation for the num_questions field.
	task.DefaultNumQuestions = taskDescNumQuestions.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[14].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
}
