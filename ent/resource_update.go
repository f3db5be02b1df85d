// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"irms.fjp.io/irms/ent/predicate"
	"irms.fjp.io/irms/ent/resource"
)

// ResourceUpdate is the builder for updating Resource entities.
type ResourceUpdate struct {
	config
	hooks    []Hook
	mutation *ResourceMutation
}

// Where appends a list predicates to the ResourceUpdate builder.
func (_u *ResourceUpdate) Where(ps ...predicate.Resource) *ResourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResourceUpdate) SetUpdatedAt(v time.Time) *ResourceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ResourceUpdate) SetName(v string) *ResourceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableName(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ResourceUpdate) SetEmail(v string) *ResourceUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableEmail(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ResourceUpdate) SetPhone(v string) *ResourceUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillablePhone(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ResourceUpdate) ClearPhone() *ResourceUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *ResourceUpdate) SetDepartment(v resource.Department) *ResourceUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableDepartment(v *resource.Department) *ResourceUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *ResourceUpdate) SetJobTitle(v string) *ResourceUpdate {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableJobTitle(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ResourceUpdate) SetSkills(v []string) *ResourceUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *ResourceUpdate) AppendSkills(v []string) *ResourceUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// SetExperience sets the "experience" field.
func (_u *ResourceUpdate) SetExperience(v string) *ResourceUpdate {
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableExperience(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// SetRate sets the "rate" field.
func (_u *ResourceUpdate) SetRate(v float64) *ResourceUpdate {
	_u.mutation.ResetRate()
	_u.mutation.SetRate(v)
	return _u
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableRate(v *float64) *ResourceUpdate {
	if v != nil {
		_u.SetRate(*v)
	}
	return _u
}

// AddRate adds value to the "rate" field.
func (_u *ResourceUpdate) AddRate(v float64) *ResourceUpdate {
	_u.mutation.AddRate(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResourceUpdate) SetStatus(v resource.Status) *ResourceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableStatus(v *resource.Status) *ResourceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIdleFrom sets the "idle_from" field.
func (_u *ResourceUpdate) SetIdleFrom(v time.Time) *ResourceUpdate {
	_u.mutation.SetIdleFrom(v)
	return _u
}

// SetNillableIdleFrom sets the "idle_from" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableIdleFrom(v *time.Time) *ResourceUpdate {
	if v != nil {
		_u.SetIdleFrom(*v)
	}
	return _u
}

// SetIdleDuration sets the "idle_duration" field.
func (_u *ResourceUpdate) SetIdleDuration(v int) *ResourceUpdate {
	_u.mutation.ResetIdleDuration()
	_u.mutation.SetIdleDuration(v)
	return _u
}

// SetNillableIdleDuration sets the "idle_duration" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableIdleDuration(v *int) *ResourceUpdate {
	if v != nil {
		_u.SetIdleDuration(*v)
	}
	return _u
}

// AddIdleDuration adds value to the "idle_duration" field.
func (_u *ResourceUpdate) AddIdleDuration(v int) *ResourceUpdate {
	_u.mutation.AddIdleDuration(v)
	return _u
}

// SetIsUrgent sets the "is_urgent" field.
func (_u *ResourceUpdate) SetIsUrgent(v bool) *ResourceUpdate {
	_u.mutation.SetIsUrgent(v)
	return _u
}

// SetNillableIsUrgent sets the "is_urgent" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableIsUrgent(v *bool) *ResourceUpdate {
	if v != nil {
		_u.SetIsUrgent(*v)
	}
	return _u
}

// SetCvPath sets the "cv_path" field.
func (_u *ResourceUpdate) SetCvPath(v string) *ResourceUpdate {
	_u.mutation.SetCvPath(v)
	return _u
}

// SetNillableCvPath sets the "cv_path" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableCvPath(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetCvPath(*v)
	}
	return _u
}

// ClearCvPath clears the value of the "cv_path" field.
func (_u *ResourceUpdate) ClearCvPath() *ResourceUpdate {
	_u.mutation.ClearCvPath()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ResourceUpdate) SetNotes(v string) *ResourceUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableNotes(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ResourceUpdate) ClearNotes() *ResourceUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ResourceUpdate) SetUpdatedBy(v string) *ResourceUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableUpdatedBy(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ResourceUpdate) ClearUpdatedBy() *ResourceUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// Mutation returns the ResourceMutation object of the builder.
func (_u *ResourceUpdate) Mutation() *ResourceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResourceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResourceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := resource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := resource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Resource.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := resource.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Resource.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := resource.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Resource.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobTitle(); ok {
		if err := resource.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "Resource.job_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Experience(); ok {
		if err := resource.ExperienceValidator(v); err != nil {
			return &ValidationError{Name: "experience", err: fmt.Errorf(`ent: validator failed for field "Resource.experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rate(); ok {
		if err := resource.RateValidator(v); err != nil {
			return &ValidationError{Name: "rate", err: fmt.Errorf(`ent: validator failed for field "Resource.rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := resource.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Resource.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resource.Table, resource.Columns, sqlgraph.NewFieldSpec(resource.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(resource.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(resource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(resource.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(resource.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(resource.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(resource.FieldDepartment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(resource.FieldJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(resource.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resource.FieldSkills, value)
		})
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(resource.FieldExperience, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rate(); ok {
		_spec.SetField(resource.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRate(); ok {
		_spec.AddField(resource.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(resource.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdleFrom(); ok {
		_spec.SetField(resource.FieldIdleFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IdleDuration(); ok {
		_spec.SetField(resource.FieldIdleDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIdleDuration(); ok {
		_spec.AddField(resource.FieldIdleDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsUrgent(); ok {
		_spec.SetField(resource.FieldIsUrgent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CvPath(); ok {
		_spec.SetField(resource.FieldCvPath, field.TypeString, value)
	}
	if _u.mutation.CvPathCleared() {
		_spec.ClearField(resource.FieldCvPath, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(resource.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(resource.FieldNotes, field.TypeString)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(resource.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(resource.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(resource.FieldUpdatedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResourceUpdateOne is the builder for updating a single Resource entity.
type ResourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResourceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResourceUpdateOne) SetUpdatedAt(v time.Time) *ResourceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ResourceUpdateOne) SetName(v string) *ResourceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableName(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ResourceUpdateOne) SetEmail(v string) *ResourceUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableEmail(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ResourceUpdateOne) SetPhone(v string) *ResourceUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillablePhone(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ResourceUpdateOne) ClearPhone() *ResourceUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *ResourceUpdateOne) SetDepartment(v resource.Department) *ResourceUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableDepartment(v *resource.Department) *ResourceUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *ResourceUpdateOne) SetJobTitle(v string) *ResourceUpdateOne {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableJobTitle(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ResourceUpdateOne) SetSkills(v []string) *ResourceUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *ResourceUpdateOne) AppendSkills(v []string) *ResourceUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// SetExperience sets the "experience" field.
func (_u *ResourceUpdateOne) SetExperience(v string) *ResourceUpdateOne {
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableExperience(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// SetRate sets the "rate" field.
func (_u *ResourceUpdateOne) SetRate(v float64) *ResourceUpdateOne {
	_u.mutation.ResetRate()
	_u.mutation.SetRate(v)
	return _u
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableRate(v *float64) *ResourceUpdateOne {
	if v != nil {
		_u.SetRate(*v)
	}
	return _u
}

// AddRate adds value to the "rate" field.
func (_u *ResourceUpdateOne) AddRate(v float64) *ResourceUpdateOne {
	_u.mutation.AddRate(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResourceUpdateOne) SetStatus(v resource.Status) *ResourceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableStatus(v *resource.Status) *ResourceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIdleFrom sets the "idle_from" field.
func (_u *ResourceUpdateOne) SetIdleFrom(v time.Time) *ResourceUpdateOne {
	_u.mutation.SetIdleFrom(v)
	return _u
}

// SetNillableIdleFrom sets the "idle_from" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableIdleFrom(v *time.Time) *ResourceUpdateOne {
	if v != nil {
		_u.SetIdleFrom(*v)
	}
	return _u
}

// SetIdleDuration sets the "idle_duration" field.
func (_u *ResourceUpdateOne) SetIdleDuration(v int) *ResourceUpdateOne {
	_u.mutation.ResetIdleDuration()
	_u.mutation.SetIdleDuration(v)
	return _u
}

// SetNillableIdleDuration sets the "idle_duration" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableIdleDuration(v *int) *ResourceUpdateOne {
	if v != nil {
		_u.SetIdleDuration(*v)
	}
	return _u
}

// AddIdleDuration adds value to the "idle_duration" field.
func (_u *ResourceUpdateOne) AddIdleDuration(v int) *ResourceUpdateOne {
	_u.mutation.AddIdleDuration(v)
	return _u
}

// SetIsUrgent sets the "is_urgent" field.
func (_u *ResourceUpdateOne) SetIsUrgent(v bool) *ResourceUpdateOne {
	_u.mutation.SetIsUrgent(v)
	return _u
}

// SetNillableIsUrgent sets the "is_urgent" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableIsUrgent(v *bool) *ResourceUpdateOne {
	if v != nil {
		_u.SetIsUrgent(*v)
	}
	return _u
}

// SetCvPath sets the "cv_path" field.
func (_u *ResourceUpdateOne) SetCvPath(v string) *ResourceUpdateOne {
	_u.mutation.SetCvPath(v)
	return _u
}

// SetNillableCvPath sets the "cv_path" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableCvPath(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetCvPath(*v)
	}
	return _u
}

// ClearCvPath clears the value of the "cv_path" field.
func (_u *ResourceUpdateOne) ClearCvPath() *ResourceUpdateOne {
	_u.mutation.ClearCvPath()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ResourceUpdateOne) SetNotes(v string) *ResourceUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableNotes(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ResourceUpdateOne) ClearNotes() *ResourceUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ResourceUpdateOne) SetUpdatedBy(v string) *ResourceUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableUpdatedBy(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ResourceUpdateOne) ClearUpdatedBy() *ResourceUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// Mutation returns the ResourceMutation object of the builder.
func (_u *ResourceUpdateOne) Mutation() *ResourceMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResourceUpdate builder.
func (_u *ResourceUpdateOne) Where(ps ...predicate.Resource) *ResourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResourceUpdateOne) Select(field string, fields ...string) *ResourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Resource entity.
func (_u *ResourceUpdateOne) Save(ctx context.Context) (*Resource, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceUpdateOne) SaveX(ctx context.Context) *Resource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResourceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := resource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := resource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Resource.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := resource.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Resource.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := resource.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Resource.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobTitle(); ok {
		if err := resource.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "Resource.job_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Experience(); ok {
		if err := resource.ExperienceValidator(v); err != nil {
			return &ValidationError{Name: "experience", err: fmt.Errorf(`ent: validator failed for field "Resource.experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rate(); ok {
		if err := resource.RateValidator(v); err != nil {
			return &ValidationError{Name: "rate", err: fmt.Errorf(`ent: validator failed for field "Resource.rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := resource.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Resource.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResourceUpdateOne) sqlSave(ctx context.Context) (_node *Resource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resource.Table, resource.Columns, sqlgraph.NewFieldSpec(resource.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Resource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resource.FieldID)
		for _, f := range fields {
			if !resource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resource.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(resource.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(resource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(resource.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(resource.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(resource.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(resource.FieldDepartment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(resource.FieldJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(resource.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resource.FieldSkills, value)
		})
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(resource.FieldExperience, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rate(); ok {
		_spec.SetField(resource.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRate(); ok {
		_spec.AddField(resource.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(resource.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdleFrom(); ok {
		_spec.SetField(resource.FieldIdleFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IdleDuration(); ok {
		_spec.SetField(resource.FieldIdleDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIdleDuration(); ok {
		_spec.AddField(resource.FieldIdleDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsUrgent(); ok {
		_spec.SetField(resource.FieldIsUrgent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CvPath(); ok {
		_spec.SetField(resource.FieldCvPath, field.TypeString, value)
	}
	if _u.mutation.CvPathCleared() {
		_spec.ClearField(resource.FieldCvPath, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(resource.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(resource.FieldNotes, field.TypeString)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(resource.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(resource.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(resource.FieldUpdatedBy, field.TypeString)
	}
	_node = &Resource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
