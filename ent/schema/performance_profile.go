package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerformanceProfile is the learned running-average record of how well one
// model combo performs for one context key. Rows are created on the first
// feedback event for a key, updated on every following event, and marked
// deprecated instead of deleted.
type PerformanceProfile struct {
	ent.Schema
}

func (PerformanceProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("combo_key").
			NotEmpty().
			Comment("Catalogue name of the combo"),
		field.String("topic"),
		field.String("purpose"),
		field.String("length_bucket").
			Comment("short, medium, or long"),
		field.String("kind").
			Comment("lesson or quiz"),
		field.String("grade"),
		field.String("subject"),
		field.Float("clarity_avg").
			Default(0).
			Comment("EMA of clarity, 0 to 1"),
		field.Float("engagement_avg").
			Default(0).
			Comment("EMA of engagement, 0 to 1"),
		field.Float("confidence_avg").
			Default(0).
			Comment("EMA of confidence, 0 to 1"),
		field.Float("attention_avg").
			Default(0).
			Comment("EMA of attention span, 0 to 1"),
		field.Float("fatigue_slope").
			Default(0).
			Comment("EMA of fatigue slope; first sample sets it directly"),
		field.Int("session_count").
			Default(0),
		field.Float("performance_score").
			Default(0).
			Comment("Derived only; recomputed on every mutation"),
		field.String("profile_status").
			Default("experimental").
			Comment("experimental, active, or deprecated"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (PerformanceProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("combo_key", "topic", "purpose", "length_bucket", "kind", "grade", "subject").
			Unique(),
		index.Fields("profile_status"),
	}
}
