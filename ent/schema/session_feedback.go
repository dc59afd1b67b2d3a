package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/samacademy/cohortgen/internal/content"
)

// SessionFeedback is one immutable record per completed learner session,
// carrying the normalized signals plus the raw vitals aggregates they were
// derived from. Only the survey submission id may be attached after the fact.
type SessionFeedback struct {
	ent.Schema
}

func (SessionFeedback) Mixin() []ent.Mixin {
	return []ent.Mixin{SequenceMixin{}}
}

func (SessionFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the learner session"),
		field.String("learner_id").
			NotEmpty(),
		field.Int("class_id").
			Default(0),
		field.Int("task_id").
			Default(0).
			Comment("Variant task the session ran against"),
		field.String("combo_key").
			Comment("Catalogue name of the combo that produced the content"),
		field.JSON("combo", content.Combo{}).
			Optional().
			Comment("Full combo for per-role tallies"),
		field.String("kind"),
		field.String("topic"),
		field.String("purpose"),
		field.String("length_bucket"),
		field.String("grade"),
		field.String("subject"),
		field.Float("clarity").Default(0),
		field.Float("engagement").Default(0),
		field.Float("cognitive_load").Default(0),
		field.Float("attention_span").Default(0),
		field.Float("confidence").Default(0),
		field.String("fatigue_trend").
			Default("stable").
			Comment("rising, stable, or falling"),
		field.Float("fatigue_slope").Default(0),
		field.JSON("raw_metrics", map[string]float64{}).
			Optional().
			Comment("Vitals aggregates; absent keys were not reported"),
		field.String("survey_submission_id").
			Default("").
			Comment("Attached after the outbound survey is accepted"),
	}
}

func (SessionFeedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("session_id"),
		index.Fields("kind", "grade", "subject"),
	}
}
