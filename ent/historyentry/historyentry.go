// Code generated by ent, DO NOT EDIT.

package historyentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the historyentry type in the database.
	Label = "history_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldActorID holds the string denoting the actor_id field in the database.
	FieldActorID = "actor_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldResourceID holds the string denoting the resource_id field in the database.
	FieldResourceID = "resource_id"
	// FieldResourceName holds the string denoting the resource_name field in the database.
	FieldResourceName = "resource_name"
	// FieldChanges holds the string denoting the changes field in the database.
	FieldChanges = "changes"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the historyentry in the database.
	Table = "history_entries"
)

// Columns holds all SQL columns for historyentry fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldActorID,
	FieldAction,
	FieldResourceID,
	FieldResourceName,
	FieldChanges,
	FieldMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// ActorIDValidator is a validator for the "actor_id" field. It is called by the builders before save.
	ActorIDValidator func(string) error
)

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionCREATE    Action = "CREATE"
	ActionUPDATE    Action = "UPDATE"
	ActionDELETE    Action = "DELETE"
	ActionCV_UPLOAD Action = "CV_UPLOAD"
	ActionLOGIN     Action = "LOGIN"
	ActionLOGOUT    Action = "LOGOUT"
	ActionEXPORT    Action = "EXPORT"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionCREATE, ActionUPDATE, ActionDELETE, ActionCV_UPLOAD, ActionLOGIN, ActionLOGOUT, ActionEXPORT:
		return nil
	default:
		return fmt.Errorf("historyentry: invalid enum value for action field: %q", a)
	}
}

// OrderOption defines the ordering options for the HistoryEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByActorID orders the results by the actor_id field.
func ByActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByResourceID orders the results by the resource_id field.
func ByResourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceID, opts...).ToFunc()
}

// ByResourceName orders the results by the resource_name field.
func ByResourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceName, opts...).ToFunc()
}

// ByChanges orders the results by the changes field.
func ByChanges(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChanges, opts...).ToFunc()
}
