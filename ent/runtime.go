// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"irms.fjp.io/irms/ent/historyentry"
	"irms.fjp.io/irms/ent/resource"
	"irms.fjp.io/irms/ent/schema"
	"irms.fjp.io/irms/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	historyentryMixin := schema.HistoryEntry{}.Mixin()
	historyentryMixinFields0 := historyentryMixin[0].Fields()
	_ = historyentryMixinFields0
	historyentryFields := schema.HistoryEntry{}.Fields()
	_ = historyentryFields
	// historyentryDescCreatedAt is the schema descriptor for created_at field.
	historyentryDescCreatedAt := historyentryMixinFields0[0].Descriptor()
	// historyentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	historyentry.DefaultCreatedAt = historyentryDescCreatedAt.Default.(func() time.Time)
	// historyentryDescActorID is the schema descriptor for actor_id field.
	historyentryDescActorID := historyentryFields[1].Descriptor()
	// historyentry.ActorIDValidator is a validator for the "actor_id" field. It is called by the builders before save.
	historyentry.ActorIDValidator = historyentryDescActorID.Validators[0].(func(string) error)
	resourceMixin := schema.Resource{}.Mixin()
	resourceMixinFields0 := resourceMixin[0].Fields()
	_ = resourceMixinFields0
	resourceFields := schema.Resource{}.Fields()
	_ = resourceFields
	// resourceDescCreatedAt is the schema descriptor for created_at field.
	resourceDescCreatedAt := resourceMixinFields0[0].Descriptor()
	// resource.DefaultCreatedAt holds the default value on creation for the created_at field.
	resource.DefaultCreatedAt = resourceDescCreatedAt.Default.(func() time.Time)
	// resourceDescUpdatedAt is the schema descriptor for updated_at field.
	resourceDescUpdatedAt := resourceMixinFields0[1].Descriptor()
	// resource.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	resource.DefaultUpdatedAt = resourceDescUpdatedAt.Default.(func() time.Time)
	// resource.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	resource.UpdateDefaultUpdatedAt = resourceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// resourceDescEmployeeCode is the schema descriptor for employee_code field.
	resourceDescEmployeeCode := resourceFields[1].Descriptor()
	// resource.EmployeeCodeValidator is a validator for the "employee_code" field. It is called by the builders before save.
	resource.EmployeeCodeValidator = resourceDescEmployeeCode.Validators[0].(func(string) error)
	// resourceDescName is the schema descriptor for name field.
	resourceDescName := resourceFields[2].Descriptor()
	// resource.NameValidator is a validator for the "name" field. It is called by the builders before save.
	resource.NameValidator = resourceDescName.Validators[0].(func(string) error)
	// resourceDescEmail is the schema descriptor for email field.
	resourceDescEmail := resourceFields[3].Descriptor()
	// resource.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	resource.EmailValidator = resourceDescEmail.Validators[0].(func(string) error)
	// resourceDescJobTitle is the schema descriptor for job_title field.
	resourceDescJobTitle := resourceFields[6].Descriptor()
	// resource.JobTitleValidator is a validator for the "job_title" field. It is called by the builders before save.
	resource.JobTitleValidator = resourceDescJobTitle.Validators[0].(func(string) error)
	// resourceDescExperience is the schema descriptor for experience field.
	resourceDescExperience := resourceFields[8].Descriptor()
	// resource.ExperienceValidator is a validator for the "experience" field. It is called by the builders before save.
	resource.ExperienceValidator = resourceDescExperience.Validators[0].(func(string) error)
	// resourceDescRate is the schema descriptor for rate field.
	resourceDescRate := resourceFields[9].Descriptor()
	// resource.RateValidator is a validator for the "rate" field. It is called by the builders before save.
	resource.RateValidator = resourceDescRate.Validators[0].(func(float64) error)
	// resourceDescIdleDuration is the schema descriptor for idle_duration field.
	resourceDescIdleDuration := resourceFields[12].Descriptor()
	// resource.DefaultIdleDuration holds the default value on creation for the idle_duration field.
	resource.DefaultIdleDuration = resourceDescIdleDuration.Default.(int)
	// resourceDescIsUrgent is the schema descriptor for is_urgent field.
	resourceDescIsUrgent := resourceFields[13].Descriptor()
	// resource.DefaultIsUrgent holds the default value on creation for the is_urgent field.
	resource.DefaultIsUrgent = resourceDescIsUrgent.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
}
