// Code generated by ent, DO NOT EDIT.

package resource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"irms.fjp.io/irms/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmployeeCode applies equality check predicate on the "employee_code" field. It's identical to EmployeeCodeEQ.
func EmployeeCode(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldEmployeeCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldPhone, v))
}

// JobTitle applies equality check predicate on the "job_title" field. It's identical to JobTitleEQ.
func JobTitle(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldJobTitle, v))
}

// Experience applies equality check predicate on the "experience" field. It's identical to ExperienceEQ.
func Experience(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldExperience, v))
}

// Rate applies equality check predicate on the "rate" field. It's identical to RateEQ.
func Rate(v float64) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldRate, v))
}

// IdleFrom applies equality check predicate on the "idle_from" field. It's identical to IdleFromEQ.
func IdleFrom(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldIdleFrom, v))
}

// IdleDuration applies equality check predicate on the "idle_duration" field. It's identical to IdleDurationEQ.
func IdleDuration(v int) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldIdleDuration, v))
}

// IsUrgent applies equality check predicate on the "is_urgent" field. It's identical to IsUrgentEQ.
func IsUrgent(v bool) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldIsUrgent, v))
}

// CvPath applies equality check predicate on the "cv_path" field. It's identical to CvPathEQ.
func CvPath(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldCvPath, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldNotes, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldUpdatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldUpdatedAt, v))
}

// EmployeeCodeEQ applies the EQ predicate on the "employee_code" field.
func EmployeeCodeEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldEmployeeCode, v))
}

// EmployeeCodeNEQ applies the NEQ predicate on the "employee_code" field.
func EmployeeCodeNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldEmployeeCode, v))
}

// EmployeeCodeIn applies the In predicate on the "employee_code" field.
func EmployeeCodeIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldEmployeeCode, vs...))
}

// EmployeeCodeNotIn applies the NotIn predicate on the "employee_code" field.
func EmployeeCodeNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldEmployeeCode, vs...))
}

// EmployeeCodeGT applies the GT predicate on the "employee_code" field.
func EmployeeCodeGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldEmployeeCode, v))
}

// EmployeeCodeGTE applies the GTE predicate on the "employee_code" field.
func EmployeeCodeGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldEmployeeCode, v))
}

// EmployeeCodeLT applies the LT predicate on the "employee_code" field.
func EmployeeCodeLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldEmployeeCode, v))
}

// EmployeeCodeLTE applies the LTE predicate on the "employee_code" field.
func EmployeeCodeLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldEmployeeCode, v))
}

// EmployeeCodeContains applies the Contains predicate on the "employee_code" field.
func EmployeeCodeContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldEmployeeCode, v))
}

// EmployeeCodeHasPrefix applies the HasPrefix predicate on the "employee_code" field.
func EmployeeCodeHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldEmployeeCode, v))
}

// EmployeeCodeHasSuffix applies the HasSuffix predicate on the "employee_code" field.
func EmployeeCodeHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldEmployeeCode, v))
}

// EmployeeCodeEqualFold applies the EqualFold predicate on the "employee_code" field.
func EmployeeCodeEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldEmployeeCode, v))
}

// EmployeeCodeContainsFold applies the ContainsFold predicate on the "employee_code" field.
func EmployeeCodeContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldEmployeeCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Resource {
	return predicate.Resource(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Resource {
	return predicate.Resource(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldPhone, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v Department) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v Department) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...Department) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...Department) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldDepartment, vs...))
}

// JobTitleEQ applies the EQ predicate on the "job_title" field.
func JobTitleEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldJobTitle, v))
}

// JobTitleNEQ applies the NEQ predicate on the "job_title" field.
func JobTitleNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldJobTitle, v))
}

// JobTitleIn applies the In predicate on the "job_title" field.
func JobTitleIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldJobTitle, vs...))
}

// JobTitleNotIn applies the NotIn predicate on the "job_title" field.
func JobTitleNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldJobTitle, vs...))
}

// JobTitleGT applies the GT predicate on the "job_title" field.
func JobTitleGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldJobTitle, v))
}

// JobTitleGTE applies the GTE predicate on the "job_title" field.
func JobTitleGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldJobTitle, v))
}

// JobTitleLT applies the LT predicate on the "job_title" field.
func JobTitleLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldJobTitle, v))
}

// JobTitleLTE applies the LTE predicate on the "job_title" field.
func JobTitleLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldJobTitle, v))
}

// JobTitleContains applies the Contains predicate on the "job_title" field.
func JobTitleContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldJobTitle, v))
}

// JobTitleHasPrefix applies the HasPrefix predicate on the "job_title" field.
func JobTitleHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldJobTitle, v))
}

// JobTitleHasSuffix applies the HasSuffix predicate on the "job_title" field.
func JobTitleHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldJobTitle, v))
}

// JobTitleEqualFold applies the EqualFold predicate on the "job_title" field.
func JobTitleEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldJobTitle, v))
}

// JobTitleContainsFold applies the ContainsFold predicate on the "job_title" field.
func JobTitleContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldJobTitle, v))
}

// ExperienceEQ applies the EQ predicate on the "experience" field.
func ExperienceEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldExperience, v))
}

// ExperienceNEQ applies the NEQ predicate on the "experience" field.
func ExperienceNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldExperience, v))
}

// ExperienceIn applies the In predicate on the "experience" field.
func ExperienceIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldExperience, vs...))
}

// ExperienceNotIn applies the NotIn predicate on the "experience" field.
func ExperienceNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldExperience, vs...))
}

// ExperienceGT applies the GT predicate on the "experience" field.
func ExperienceGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldExperience, v))
}

// ExperienceGTE applies the GTE predicate on the "experience" field.
func ExperienceGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldExperience, v))
}

// ExperienceLT applies the LT predicate on the "experience" field.
func ExperienceLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldExperience, v))
}

// ExperienceLTE applies the LTE predicate on the "experience" field.
func ExperienceLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldExperience, v))
}

// ExperienceContains applies the Contains predicate on the "experience" field.
func ExperienceContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldExperience, v))
}

// ExperienceHasPrefix applies the HasPrefix predicate on the "experience" field.
func ExperienceHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldExperience, v))
}

// ExperienceHasSuffix applies the HasSuffix predicate on the "experience" field.
func ExperienceHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldExperience, v))
}

// ExperienceEqualFold applies the EqualFold predicate on the "experience" field.
func ExperienceEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldExperience, v))
}

// ExperienceContainsFold applies the ContainsFold predicate on the "experience" field.
func ExperienceContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldExperience, v))
}

// RateEQ applies the EQ predicate on the "rate" field.
func RateEQ(v float64) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldRate, v))
}

// RateNEQ applies the NEQ predicate on the "rate" field.
func RateNEQ(v float64) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldRate, v))
}

// RateIn applies the In predicate on the "rate" field.
func RateIn(vs ...float64) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldRate, vs...))
}

// RateNotIn applies the NotIn predicate on the "rate" field.
func RateNotIn(vs ...float64) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldRate, vs...))
}

// RateGT applies the GT predicate on the "rate" field.
func RateGT(v float64) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldRate, v))
}

// RateGTE applies the GTE predicate on the "rate" field.
func RateGTE(v float64) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldRate, v))
}

// RateLT applies the LT predicate on the "rate" field.
func RateLT(v float64) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldRate, v))
}

// RateLTE applies the LTE predicate on the "rate" field.
func RateLTE(v float64) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldRate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldStatus, vs...))
}

// IdleFromEQ applies the EQ predicate on the "idle_from" field.
func IdleFromEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldIdleFrom, v))
}

// IdleFromNEQ applies the NEQ predicate on the "idle_from" field.
func IdleFromNEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldIdleFrom, v))
}

// IdleFromIn applies the In predicate on the "idle_from" field.
func IdleFromIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldIdleFrom, vs...))
}

// IdleFromNotIn applies the NotIn predicate on the "idle_from" field.
func IdleFromNotIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldIdleFrom, vs...))
}

// IdleFromGT applies the GT predicate on the "idle_from" field.
func IdleFromGT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldIdleFrom, v))
}

// IdleFromGTE applies the GTE predicate on the "idle_from" field.
func IdleFromGTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldIdleFrom, v))
}

// IdleFromLT applies the LT predicate on the "idle_from" field.
func IdleFromLT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldIdleFrom, v))
}

// IdleFromLTE applies the LTE predicate on the "idle_from" field.
func IdleFromLTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldIdleFrom, v))
}

// IdleDurationEQ applies the EQ predicate on the "idle_duration" field.
func IdleDurationEQ(v int) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldIdleDuration, v))
}

// IdleDurationNEQ applies the NEQ predicate on the "idle_duration" field.
func IdleDurationNEQ(v int) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldIdleDuration, v))
}

// IdleDurationIn applies the In predicate on the "idle_duration" field.
func IdleDurationIn(vs ...int) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldIdleDuration, vs...))
}

// IdleDurationNotIn applies the NotIn predicate on the "idle_duration" field.
func IdleDurationNotIn(vs ...int) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldIdleDuration, vs...))
}

// IdleDurationGT applies the GT predicate on the "idle_duration" field.
func IdleDurationGT(v int) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldIdleDuration, v))
}

// IdleDurationGTE applies the GTE predicate on the "idle_duration" field.
func IdleDurationGTE(v int) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldIdleDuration, v))
}

// IdleDurationLT applies the LT predicate on the "idle_duration" field.
func IdleDurationLT(v int) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldIdleDuration, v))
}

// IdleDurationLTE applies the LTE predicate on the "idle_duration" field.
func IdleDurationLTE(v int) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldIdleDuration, v))
}

// IsUrgentEQ applies the EQ predicate on the "is_urgent" field.
func IsUrgentEQ(v bool) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldIsUrgent, v))
}

// IsUrgentNEQ applies the NEQ predicate on the "is_urgent" field.
func IsUrgentNEQ(v bool) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldIsUrgent, v))
}

// CvPathEQ applies the EQ predicate on the "cv_path" field.
func CvPathEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldCvPath, v))
}

// CvPathNEQ applies the NEQ predicate on the "cv_path" field.
func CvPathNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldCvPath, v))
}

// CvPathIn applies the In predicate on the "cv_path" field.
func CvPathIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldCvPath, vs...))
}

// CvPathNotIn applies the NotIn predicate on the "cv_path" field.
func CvPathNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldCvPath, vs...))
}

// CvPathGT applies the GT predicate on the "cv_path" field.
func CvPathGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldCvPath, v))
}

// CvPathGTE applies the GTE predicate on the "cv_path" field.
func CvPathGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldCvPath, v))
}

// CvPathLT applies the LT predicate on the "cv_path" field.
func CvPathLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldCvPath, v))
}

// CvPathLTE applies the LTE predicate on the "cv_path" field.
func CvPathLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldCvPath, v))
}

// CvPathContains applies the Contains predicate on the "cv_path" field.
func CvPathContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldCvPath, v))
}

// CvPathHasPrefix applies the HasPrefix predicate on the "cv_path" field.
func CvPathHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldCvPath, v))
}

// CvPathHasSuffix applies the HasSuffix predicate on the "cv_path" field.
func CvPathHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldCvPath, v))
}

// CvPathIsNil applies the IsNil predicate on the "cv_path" field.
func CvPathIsNil() predicate.Resource {
	return predicate.Resource(sql.FieldIsNull(FieldCvPath))
}

// CvPathNotNil applies the NotNil predicate on the "cv_path" field.
func CvPathNotNil() predicate.Resource {
	return predicate.Resource(sql.FieldNotNull(FieldCvPath))
}

// CvPathEqualFold applies the EqualFold predicate on the "cv_path" field.
func CvPathEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldCvPath, v))
}

// CvPathContainsFold applies the ContainsFold predicate on the "cv_path" field.
func CvPathContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldCvPath, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Resource {
	return predicate.Resource(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Resource {
	return predicate.Resource(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Resource {
	return predicate.Resource(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Resource {
	return predicate.Resource(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.Resource {
	return predicate.Resource(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.Resource {
	return predicate.Resource(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Resource) predicate.Resource {
	return predicate.Resource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Resource) predicate.Resource {
	return predicate.Resource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Resource) predicate.Resource {
	return predicate.Resource(sql.NotPredicates(p))
}
