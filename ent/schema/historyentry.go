package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryEntry holds the schema definition for the change-history log.
// Append-only: one immutable entry per mutating action. Hard-delete and
// update are NOT allowed; resource_name is snapshotted at write time so
// entries stay readable after the referenced resource is deleted.
type HistoryEntry struct {
	ent.Schema
}

// Mixin of the HistoryEntry.
func (HistoryEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the HistoryEntry.
func (HistoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("actor_id").
			NotEmpty().
			Immutable(), // User who performed the action
		field.Enum("action").
			Values("CREATE", "UPDATE", "DELETE", "CV_UPLOAD", "LOGIN", "LOGOUT", "EXPORT").
			Immutable(),
		field.String("resource_id").
			Optional().
			Immutable(), // Weak reference; dangles after resource deletion
		field.String("resource_name").
			Optional().
			Immutable(), // Snapshot taken at write time
		field.String("changes").
			Optional().
			Immutable(), // Human-readable change summary
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
	}
}

// Indexes of the HistoryEntry.
func (HistoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor_id", "created_at"),
		index.Fields("resource_id", "created_at"),
		index.Fields("action", "created_at"),
	}
}
