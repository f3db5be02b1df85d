// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"irms.fjp.io/irms/ent/resource"
)

// ResourceCreate is the builder for creating a Resource entity.
type ResourceCreate struct {
	config
	mutation *ResourceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResourceCreate) SetCreatedAt(v time.Time) *ResourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableCreatedAt(v *time.Time) *ResourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResourceCreate) SetUpdatedAt(v time.Time) *ResourceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableUpdatedAt(v *time.Time) *ResourceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEmployeeCode sets the "employee_code" field.
func (_c *ResourceCreate) SetEmployeeCode(v string) *ResourceCreate {
	_c.mutation.SetEmployeeCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ResourceCreate) SetName(v string) *ResourceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ResourceCreate) SetEmail(v string) *ResourceCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ResourceCreate) SetPhone(v string) *ResourceCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ResourceCreate) SetNillablePhone(v *string) *ResourceCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *ResourceCreate) SetDepartment(v resource.Department) *ResourceCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetJobTitle sets the "job_title" field.
func (_c *ResourceCreate) SetJobTitle(v string) *ResourceCreate {
	_c.mutation.SetJobTitle(v)
	return _c
}

// SetSkills sets the "skills" field.
func (_c *ResourceCreate) SetSkills(v []string) *ResourceCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetExperience sets the "experience" field.
func (_c *ResourceCreate) SetExperience(v string) *ResourceCreate {
	_c.mutation.SetExperience(v)
	return _c
}

// SetRate sets the "rate" field.
func (_c *ResourceCreate) SetRate(v float64) *ResourceCreate {
	_c.mutation.SetRate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResourceCreate) SetStatus(v resource.Status) *ResourceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableStatus(v *resource.Status) *ResourceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIdleFrom sets the "idle_from" field.
func (_c *ResourceCreate) SetIdleFrom(v time.Time) *ResourceCreate {
	_c.mutation.SetIdleFrom(v)
	return _c
}

// SetIdleDuration sets the "idle_duration" field.
func (_c *ResourceCreate) SetIdleDuration(v int) *ResourceCreate {
	_c.mutation.SetIdleDuration(v)
	return _c
}

// SetNillableIdleDuration sets the "idle_duration" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableIdleDuration(v *int) *ResourceCreate {
	if v != nil {
		_c.SetIdleDuration(*v)
	}
	return _c
}

// SetIsUrgent sets the "is_urgent" field.
func (_c *ResourceCreate) SetIsUrgent(v bool) *ResourceCreate {
	_c.mutation.SetIsUrgent(v)
	return _c
}

// SetNillableIsUrgent sets the "is_urgent" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableIsUrgent(v *bool) *ResourceCreate {
	if v != nil {
		_c.SetIsUrgent(*v)
	}
	return _c
}

// SetCvPath sets the "cv_path" field.
func (_c *ResourceCreate) SetCvPath(v string) *ResourceCreate {
	_c.mutation.SetCvPath(v)
	return _c
}

// SetNillableCvPath sets the "cv_path" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableCvPath(v *string) *ResourceCreate {
	if v != nil {
		_c.SetCvPath(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ResourceCreate) SetNotes(v string) *ResourceCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableNotes(v *string) *ResourceCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ResourceCreate) SetCreatedBy(v string) *ResourceCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableCreatedBy(v *string) *ResourceCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *ResourceCreate) SetUpdatedBy(v string) *ResourceCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableUpdatedBy(v *string) *ResourceCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResourceCreate) SetID(v string) *ResourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ResourceMutation object of the builder.
func (_c *ResourceCreate) Mutation() *ResourceMutation {
	return _c.mutation
}

// Save creates the Resource in the database.
func (_c *ResourceCreate) Save(ctx context.Context) (*Resource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResourceCreate) SaveX(ctx context.Context) *Resource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResourceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := resource.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := resource.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IdleDuration(); !ok {
		v := resource.DefaultIdleDuration
		_c.mutation.SetIdleDuration(v)
	}
	if _, ok := _c.mutation.IsUrgent(); !ok {
		v := resource.DefaultIsUrgent
		_c.mutation.SetIsUrgent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResourceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Resource.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Resource.updated_at"`)}
	}
	if _, ok := _c.mutation.EmployeeCode(); !ok {
		return &ValidationError{Name: "employee_code", err: errors.New(`ent: missing required field "Resource.employee_code"`)}
	}
	if v, ok := _c.mutation.EmployeeCode(); ok {
		if err := resource.EmployeeCodeValidator(v); err != nil {
			return &ValidationError{Name: "employee_code", err: fmt.Errorf(`ent: validator failed for field "Resource.employee_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Resource.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := resource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Resource.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Resource.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := resource.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Resource.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Department(); !ok {
		return &ValidationError{Name: "department", err: errors.New(`ent: missing required field "Resource.department"`)}
	}
	if v, ok := _c.mutation.Department(); ok {
		if err := resource.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Resource.department": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JobTitle(); !ok {
		return &ValidationError{Name: "job_title", err: errors.New(`ent: missing required field "Resource.job_title"`)}
	}
	if v, ok := _c.mutation.JobTitle(); ok {
		if err := resource.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "Resource.job_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skills(); !ok {
		return &ValidationError{Name: "skills", err: errors.New(`ent: missing required field "Resource.skills"`)}
	}
	if _, ok := _c.mutation.Experience(); !ok {
		return &ValidationError{Name: "experience", err: errors.New(`ent: missing required field "Resource.experience"`)}
	}
	if v, ok := _c.mutation.Experience(); ok {
		if err := resource.ExperienceValidator(v); err != nil {
			return &ValidationError{Name: "experience", err: fmt.Errorf(`ent: validator failed for field "Resource.experience": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rate(); !ok {
		return &ValidationError{Name: "rate", err: errors.New(`ent: missing required field "Resource.rate"`)}
	}
	if v, ok := _c.mutation.Rate(); ok {
		if err := resource.RateValidator(v); err != nil {
			return &ValidationError{Name: "rate", err: fmt.Errorf(`ent: validator failed for field "Resource.rate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Resource.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := resource.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Resource.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IdleFrom(); !ok {
		return &ValidationError{Name: "idle_from", err: errors.New(`ent: missing required field "Resource.idle_from"`)}
	}
	if _, ok := _c.mutation.IdleDuration(); !ok {
		return &ValidationError{Name: "idle_duration", err: errors.New(`ent: missing required field "Resource.idle_duration"`)}
	}
	if _, ok := _c.mutation.IsUrgent(); !ok {
		return &ValidationError{Name: "is_urgent", err: errors.New(`ent: missing required field "Resource.is_urgent"`)}
	}
	return nil
}

func (_c *ResourceCreate) sqlSave(ctx context.Context) (*Resource, error) {
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
			return nil, fmt.Errorf("unexpected Resource.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResourceCreate) createSpec() (*Resource, *sqlgraph.CreateSpec) {
	var (
		_node = &Resource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resource.Table, sqlgraph.NewFieldSpec(resource.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(resource.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.EmployeeCode(); ok {
		_spec.SetField(resource.FieldEmployeeCode, field.TypeString, value)
		_node.EmployeeCode = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(resource.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(resource.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(resource.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(resource.FieldDepartment, field.TypeEnum, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.JobTitle(); ok {
		_spec.SetField(resource.FieldJobTitle, field.TypeString, value)
		_node.JobTitle = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(resource.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.Experience(); ok {
		_spec.SetField(resource.FieldExperience, field.TypeString, value)
		_node.Experience = value
	}
	if value, ok := _c.mutation.Rate(); ok {
		_spec.SetField(resource.FieldRate, field.TypeFloat64, value)
		_node.Rate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(resource.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IdleFrom(); ok {
		_spec.SetField(resource.FieldIdleFrom, field.TypeTime, value)
		_node.IdleFrom = value
	}
	if value, ok := _c.mutation.IdleDuration(); ok {
		_spec.SetField(resource.FieldIdleDuration, field.TypeInt, value)
		_node.IdleDuration = value
	}
	if value, ok := _c.mutation.IsUrgent(); ok {
		_spec.SetField(resource.FieldIsUrgent, field.TypeBool, value)
		_node.IsUrgent = value
	}
	if value, ok := _c.mutation.CvPath(); ok {
		_spec.SetField(resource.FieldCvPath, field.TypeString, value)
		_node.CvPath = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(resource.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(resource.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(resource.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	return _node, _spec
}

// ResourceCreateBulk is the builder for creating many Resource entities in bulk.
type ResourceCreateBulk struct {
	config
	err      error
	builders []*ResourceCreate
}

// Save creates the Resource entities in the database.
func (_c *ResourceCreateBulk) Save(ctx context.Context) ([]*Resource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Resource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResourceMutation)
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
func (_c *ResourceCreateBulk) SaveX(ctx context.Context) []*Resource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
