// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"irms.fjp.io/irms/ent/historyentry"
	"irms.fjp.io/irms/ent/predicate"
)

// HistoryEntryUpdate is the builder for updating HistoryEntry entities.
type HistoryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *HistoryEntryMutation
}

// Where appends a list predicates to the HistoryEntryUpdate builder.
func (_u *HistoryEntryUpdate) Where(ps ...predicate.HistoryEntry) *HistoryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the HistoryEntryMutation object of the builder.
func (_u *HistoryEntryUpdate) Mutation() *HistoryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HistoryEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HistoryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HistoryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(historyentry.Table, historyentry.Columns, sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(historyentry.FieldResourceID, field.TypeString)
	}
	if _u.mutation.ResourceNameCleared() {
		_spec.ClearField(historyentry.FieldResourceName, field.TypeString)
	}
	if _u.mutation.ChangesCleared() {
		_spec.ClearField(historyentry.FieldChanges, field.TypeString)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(historyentry.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historyentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HistoryEntryUpdateOne is the builder for updating a single HistoryEntry entity.
type HistoryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HistoryEntryMutation
}

// Mutation returns the HistoryEntryMutation object of the builder.
func (_u *HistoryEntryUpdateOne) Mutation() *HistoryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the HistoryEntryUpdate builder.
func (_u *HistoryEntryUpdateOne) Where(ps ...predicate.HistoryEntry) *HistoryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HistoryEntryUpdateOne) Select(field string, fields ...string) *HistoryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HistoryEntry entity.
func (_u *HistoryEntryUpdateOne) Save(ctx context.Context) (*HistoryEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryEntryUpdateOne) SaveX(ctx context.Context) *HistoryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HistoryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HistoryEntryUpdateOne) sqlSave(ctx context.Context) (_node *HistoryEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(historyentry.Table, historyentry.Columns, sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HistoryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, historyentry.FieldID)
		for _, f := range fields {
			if !historyentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != historyentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(historyentry.FieldResourceID, field.TypeString)
	}
	if _u.mutation.ResourceNameCleared() {
		_spec.ClearField(historyentry.FieldResourceName, field.TypeString)
	}
	if _u.mutation.ChangesCleared() {
		_spec.ClearField(historyentry.FieldChanges, field.TypeString)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(historyentry.FieldMetadata, field.TypeJSON)
	}
	_node = &HistoryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historyentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
