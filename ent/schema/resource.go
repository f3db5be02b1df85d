package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Resource holds the schema definition for an idle resource record:
// one row per tracked person currently on the bench.
//
// idle_duration and is_urgent are derived from idle_from on every persist
// (see internal/service idle deriver) and are never accepted from callers.
type Resource struct {
	ent.Schema
}

// Mixin of the Resource.
func (Resource) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Resource.
func (Resource) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("employee_code").
			NotEmpty().
			Immutable(), // Business identity; uniqueness enforced by index
		field.String("name").
			NotEmpty(),
		field.String("email").
			NotEmpty(),
		field.String("phone").
			Optional(),
		field.Enum("department").
			Values("IT", "QA", "BA", "HR", "Design", "DevOps"),
		field.String("job_title").
			NotEmpty(),
		field.JSON("skills", []string{}),
		field.String("experience").
			NotEmpty(),
		field.Float("rate").
			Min(0),
		field.Enum("status").
			NamedValues(
				"Available", "Available",
				"Assigned", "Assigned",
				"OnHold", "On Hold",
			).
			Default("Available"),
		field.Time("idle_from"),
		field.Int("idle_duration").
			Default(0), // Whole calendar months since idle_from, set on persist
		field.Bool("is_urgent").
			Default(false), // idle_duration >= urgency threshold, set on persist
		field.String("cv_path").
			Optional(), // Stored CV document path
		field.Text("notes").
			Optional(),
		field.String("created_by").
			Optional().
			Immutable(),
		field.String("updated_by").
			Optional(),
	}
}

// Indexes of the Resource.
func (Resource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("employee_code").Unique(),
		index.Fields("department", "status"),
		index.Fields("is_urgent"),
		index.Fields("created_at"),
	}
}
