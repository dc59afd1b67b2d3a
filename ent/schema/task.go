package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/samacademy/cohortgen/internal/content"
)

// Task is one instructional unit requested for a class. A task with a null
// parent_id is the canonical record teachers and students see; tasks with a
// parent_id are per-group variants executing the parent's content with a
// specific model combo.
type Task struct {
	ent.Schema
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("lesson or quiz"),
		field.String("topic").
			NotEmpty(),
		field.String("status").
			Default("pending").
			Comment("pending, generating, completed, failed"),
		field.Int("class_id"),
		field.Int("parent_id").
			Optional().
			Nillable().
			Comment("Set on variant tasks only"),
		field.Int("group_id").
			Optional().
			Nillable().
			Comment("Cohort a variant was generated for"),
		field.JSON("combo", content.Combo{}).
			Optional().
			Comment("Resolved model combo; empty on parent tasks"),
		field.JSON("payload", content.Payload{}).
			Optional().
			Comment("Generated content, one branch per kind"),
		field.String("purpose").
			Default("practice"),
		field.String("grade"),
		field.String("subject"),
		field.Int("length_minutes").
			Default(0).
			Comment("Lesson length; zero for quizzes"),
		field.String("question_type").
			Default("").
			Comment("Quiz question type; empty for lessons"),
		field.Int("num_questions").
			Default(0).
			Comment("Requested question count; zero for lessons"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id"),
		index.Fields("class_id", "created_at"),
		index.Fields("status"),
	}
}
