// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"irms.fjp.io/irms/ent/historyentry"
)

// HistoryEntryCreate is the builder for creating a HistoryEntry entity.
type HistoryEntryCreate struct {
	config
	mutation *HistoryEntryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *HistoryEntryCreate) SetCreatedAt(v time.Time) *HistoryEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HistoryEntryCreate) SetNillableCreatedAt(v *time.Time) *HistoryEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *HistoryEntryCreate) SetActorID(v string) *HistoryEntryCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *HistoryEntryCreate) SetAction(v historyentry.Action) *HistoryEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *HistoryEntryCreate) SetResourceID(v string) *HistoryEntryCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_c *HistoryEntryCreate) SetNillableResourceID(v *string) *HistoryEntryCreate {
	if v != nil {
		_c.SetResourceID(*v)
	}
	return _c
}

// SetResourceName sets the "resource_name" field.
func (_c *HistoryEntryCreate) SetResourceName(v string) *HistoryEntryCreate {
	_c.mutation.SetResourceName(v)
	return _c
}

// SetNillableResourceName sets the "resource_name" field if the given value is not nil.
func (_c *HistoryEntryCreate) SetNillableResourceName(v *string) *HistoryEntryCreate {
	if v != nil {
		_c.SetResourceName(*v)
	}
	return _c
}

// SetChanges sets the "changes" field.
func (_c *HistoryEntryCreate) SetChanges(v string) *HistoryEntryCreate {
	_c.mutation.SetChanges(v)
	return _c
}

// SetNillableChanges sets the "changes" field if the given value is not nil.
func (_c *HistoryEntryCreate) SetNillableChanges(v *string) *HistoryEntryCreate {
	if v != nil {
		_c.SetChanges(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *HistoryEntryCreate) SetMetadata(v map[string]interface{}) *HistoryEntryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *HistoryEntryCreate) SetID(v string) *HistoryEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HistoryEntryMutation object of the builder.
func (_c *HistoryEntryCreate) Mutation() *HistoryEntryMutation {
	return _c.mutation
}

// Save creates the HistoryEntry in the database.
func (_c *HistoryEntryCreate) Save(ctx context.Context) (*HistoryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HistoryEntryCreate) SaveX(ctx context.Context) *HistoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HistoryEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := historyentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HistoryEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HistoryEntry.created_at"`)}
	}
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "HistoryEntry.actor_id"`)}
	}
	if v, ok := _c.mutation.ActorID(); ok {
		if err := historyentry.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "HistoryEntry.actor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "HistoryEntry.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := historyentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "HistoryEntry.action": %w`, err)}
		}
	}
	return nil
}

func (_c *HistoryEntryCreate) sqlSave(ctx context.Context) (*HistoryEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected HistoryEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HistoryEntryCreate) createSpec() (*HistoryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &HistoryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(historyentry.Table, sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(historyentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(historyentry.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(historyentry.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(historyentry.FieldResourceID, field.TypeString, value)
		_node.ResourceID = value
	}
	if value, ok := _c.mutation.ResourceName(); ok {
		_spec.SetField(historyentry.FieldResourceName, field.TypeString, value)
		_node.ResourceName = value
	}
	if value, ok := _c.mutation.Changes(); ok {
		_spec.SetField(historyentry.FieldChanges, field.TypeString, value)
		_node.Changes = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(historyentry.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// HistoryEntryCreateBulk is the builder for creating many HistoryEntry entities in bulk.
type HistoryEntryCreateBulk struct {
	config
	err      error
	builders []*HistoryEntryCreate
}

// Save creates the HistoryEntry entities in the database.
func (_c *HistoryEntryCreateBulk) Save(ctx context.Context) ([]*HistoryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HistoryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HistoryEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *HistoryEntryCreateBulk) SaveX(ctx context.Context) []*HistoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
