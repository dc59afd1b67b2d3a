package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Enrollment links one learner to one class. A learner is identified by an
// external UUID; the roster service that assigns them is out of process.
type Enrollment struct {
	ent.Schema
}

func (Enrollment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("class_id").
			Comment("Class the learner belongs to"),
		field.String("learner_id").
			NotEmpty().
			Comment("External learner UUID"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Enrollment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("class_id", "learner_id").Unique(),
	}
}
