package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/samacademy/cohortgen/internal/content"
)

// Group is one cohort of learners within a task, bound to one model combo.
// Groups are created together when the task is created, updated exactly once
// to record the variant task generated for them, and never deleted.
type Group struct {
	ent.Schema
}

func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.Int("task_id"),
		field.Int("class_id"),
		field.Int("number").
			Min(1).
			Comment("1-based position in segmentation order"),
		field.JSON("members", []string{}).
			Comment("Learner UUIDs; disjoint across groups of one task"),
		field.JSON("combo", content.Combo{}).
			Comment("Model combo assigned at creation"),
		field.Int("variant_task_id").
			Optional().
			Nillable().
			Comment("Variant task generated for this group"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Group) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "number").Unique(),
		index.Fields("class_id"),
	}
}
