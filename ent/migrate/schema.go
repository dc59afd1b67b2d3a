// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClassesColumns holds the columns for the "classes" table.
	ClassesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ClassesTable holds the schema information for the "classes" table.
	ClassesTable = &schema.Table{
		Name:       "classes",
		Columns:    ClassesColumns,
		PrimaryKey: []*schema.Column{ClassesColumns[0]},
	}
	// EnrollmentsColumns holds the columns for the "enrollments" table.
	EnrollmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "class_id", Type: field.TypeInt},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EnrollmentsTable holds the schema information for the "enrollments" table.
	EnrollmentsTable = &schema.Table{
		Name:       "enrollments",
		Columns:    EnrollmentsColumns,
		PrimaryKey: []*schema.Column{EnrollmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "enrollment_class_id_learner_id",
				Unique:  true,
				Columns: []*schema.Column{EnrollmentsColumns[1], EnrollmentsColumns[2]},
			},
		},
	}
	// GenerationEventsColumns holds the columns for the "generation_events" table.
	GenerationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// GenerationEventsTable holds the schema information for the "generation_events" table.
	GenerationEventsTable = &schema.Table{
		Name:       "generation_events",
		Columns:    GenerationEventsColumns,
		PrimaryKey: []*schema.Column{GenerationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[1]},
			},
			{
				Name:    "generationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[2]},
			},
			{
				Name:    "generationevent_provider",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[3]},
			},
			{
				Name:    "generationevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[5]},
			},
			{
				Name:    "generationevent_success",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[9]},
			},
		},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeInt},
		{Name: "class_id", Type: field.TypeInt},
		{Name: "number", Type: field.TypeInt},
		{Name: "members", Type: field.TypeJSON},
		{Name: "combo", Type: field.TypeJSON},
		{Name: "variant_task_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "group_task_id_number",
				Unique:  true,
				Columns: []*schema.Column{GroupsColumns[1], GroupsColumns[3]},
			},
			{
				Name:    "group_class_id",
				Unique:  false,
				Columns: []*schema.Column{GroupsColumns[2]},
			},
		},
	}
	// PerformanceProfilesColumns holds the columns for the "performance_profiles" table.
	PerformanceProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "combo_key", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "length_bucket", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "clarity_avg", Type: field.TypeFloat64, Default: 0},
		{Name: "engagement_avg", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence_avg", Type: field.TypeFloat64, Default: 0},
		{Name: "attention_avg", Type: field.TypeFloat64, Default: 0},
		{Name: "fatigue_slope", Type: field.TypeFloat64, Default: 0},
		{Name: "session_count", Type: field.TypeInt, Default: 0},
		{Name: "performance_score", Type: field.TypeFloat64, Default: 0},
		{Name: "profile_status", Type: field.TypeString, Default: "experimental"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PerformanceProfilesTable holds the schema information for the "performance_profiles" table.
	PerformanceProfilesTable = &schema.Table{
		Name:       "performance_profiles",
		Columns:    PerformanceProfilesColumns,
		PrimaryKey: []*schema.Column{PerformanceProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "performanceprofile_combo_key_topic_purpose_length_bucket_kind_grade_subject",
				Unique:  true,
				Columns: []*schema.Column{PerformanceProfilesColumns[1], PerformanceProfilesColumns[2], PerformanceProfilesColumns[3], PerformanceProfilesColumns[4], PerformanceProfilesColumns[5], PerformanceProfilesColumns[6], PerformanceProfilesColumns[7]},
			},
			{
				Name:    "performanceprofile_profile_status",
				Unique:  false,
				Columns: []*schema.Column{PerformanceProfilesColumns[15]},
			},
		},
	}
	// SessionFeedbacksColumns holds the columns for the "session_feedbacks" table.
	SessionFeedbacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "class_id", Type: field.TypeInt, Default: 0},
		{Name: "task_id", Type: field.TypeInt, Default: 0},
		{Name: "combo_key", Type: field.TypeString},
		{Name: "combo", Type: field.TypeJSON, Nullable: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "length_bucket", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "clarity", Type: field.TypeFloat64, Default: 0},
		{Name: "engagement", Type: field.TypeFloat64, Default: 0},
		{Name: "cognitive_load", Type: field.TypeFloat64, Default: 0},
		{Name: "attention_span", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "fatigue_trend", Type: field.TypeString, Default: "stable"},
		{Name: "fatigue_slope", Type: field.TypeFloat64, Default: 0},
		{Name: "raw_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "survey_submission_id", Type: field.TypeString, Default: ""},
	}
	// SessionFeedbacksTable holds the schema information for the "session_feedbacks" table.
	SessionFeedbacksTable = &schema.Table{
		Name:       "session_feedbacks",
		Columns:    SessionFeedbacksColumns,
		PrimaryKey: []*schema.Column{SessionFeedbacksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionfeedback_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionFeedbacksColumns[1]},
			},
			{
				Name:    "sessionfeedback_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionFeedbacksColumns[2]},
			},
			{
				Name:    "sessionfeedback_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SessionFeedbacksColumns[4]},
			},
			{
				Name:    "sessionfeedback_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionFeedbacksColumns[3]},
			},
			{
				Name:    "sessionfeedback_kind_grade_subject",
				Unique:  false,
				Columns: []*schema.Column{SessionFeedbacksColumns[9], SessionFeedbacksColumns[13], SessionFeedbacksColumns[14]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "class_id", Type: field.TypeInt},
		{Name: "parent_id", Type: field.TypeInt, Nullable: true},
		{Name: "group_id", Type: field.TypeInt, Nullable: true},
		{Name: "combo", Type: field.TypeJSON, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "purpose", Type: field.TypeString, Default: "practice"},
		{Name: "grade", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "length_minutes", Type: field.TypeInt, Default: 0},
		{Name: "question_type", Type: field.TypeString, Default: ""},
		{Name: "num_questions", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_parent_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5]},
			},
			{
				Name:    "task_class_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[15]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClassesTable,
		EnrollmentsTable,
		GenerationEventsTable,
		GroupsTable,
		PerformanceProfilesTable,
		SessionFeedbacksTable,
		TasksTable,
	}
)

func init() {
}
