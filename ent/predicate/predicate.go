// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// HistoryEntry is the predicate function for historyentry builders.
type HistoryEntry func(*sql.Selector)

// Resource is the predicate function for resource builders.
type Resource func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
