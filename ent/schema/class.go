package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Class is a teaching group that tasks are created for. Learners belong to
// a class through Enrollment rows.
type Class struct {
	ent.Schema
}

func (Class) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Display name, e.g. Grade 5 Science A"),
		field.String("grade").
			Comment("Grade level as shown to teachers, e.g. 5"),
		field.String("subject").
			Comment("Subject taught, e.g. science"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
