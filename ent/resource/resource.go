// Code generated by ent, DO NOT EDIT.

package resource

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the resource type in the database.
	Label = "resource"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldEmployeeCode holds the string denoting the employee_code field in the database.
	FieldEmployeeCode = "employee_code"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldJobTitle holds the string denoting the job_title field in the database.
	FieldJobTitle = "job_title"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldExperience holds the string denoting the experience field in the database.
	FieldExperience = "experience"
	// FieldRate holds the string denoting the rate field in the database.
	FieldRate = "rate"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIdleFrom holds the string denoting the idle_from field in the database.
	FieldIdleFrom = "idle_from"
	// FieldIdleDuration holds the string denoting the idle_duration field in the database.
	FieldIdleDuration = "idle_duration"
	// FieldIsUrgent holds the string denoting the is_urgent field in the database.
	FieldIsUrgent = "is_urgent"
	// FieldCvPath holds the string denoting the cv_path field in the database.
	FieldCvPath = "cv_path"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// Table holds the table name of the resource in the database.
	Table = "resources"
)

// Columns holds all SQL columns for resource fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldEmployeeCode,
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldDepartment,
	FieldJobTitle,
	FieldSkills,
	FieldExperience,
	FieldRate,
	FieldStatus,
	FieldIdleFrom,
	FieldIdleDuration,
	FieldIsUrgent,
	FieldCvPath,
	FieldNotes,
	FieldCreatedBy,
	FieldUpdatedBy,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// EmployeeCodeValidator is a validator for the "employee_code" field. It is called by the builders before save.
	EmployeeCodeValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// JobTitleValidator is a validator for the "job_title" field. It is called by the builders before save.
	JobTitleValidator func(string) error
	// ExperienceValidator is a validator for the "experience" field. It is called by the builders before save.
	ExperienceValidator func(string) error
	// RateValidator is a validator for the "rate" field. It is called by the builders before save.
	RateValidator func(float64) error
	// DefaultIdleDuration holds the default value on creation for the "idle_duration" field.
	DefaultIdleDuration int
	// DefaultIsUrgent holds the default value on creation for the "is_urgent" field.
	DefaultIsUrgent bool
)

// Department defines the type for the "department" enum field.
type Department string

// Department values.
const (
	DepartmentIT     Department = "IT"
	DepartmentQA     Department = "QA"
	DepartmentBA     Department = "BA"
	DepartmentHR     Department = "HR"
	DepartmentDesign Department = "Design"
	DepartmentDevOps Department = "DevOps"
)

func (d Department) String() string {
	return string(d)
}

// DepartmentValidator is a validator for the "department" field enum values. It is called by the builders before save.
func DepartmentValidator(d Department) error {
	switch d {
	case DepartmentIT, DepartmentQA, DepartmentBA, DepartmentHR, DepartmentDesign, DepartmentDevOps:
		return nil
	default:
		return fmt.Errorf("resource: invalid enum value for department field: %q", d)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusAvailable is the default value of the Status enum.
const DefaultStatus = StatusAvailable

// Status values.
const (
	StatusAvailable Status = "Available"
	StatusAssigned  Status = "Assigned"
	StatusOnHold    Status = "On Hold"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusAvailable, StatusAssigned, StatusOnHold:
		return nil
	default:
		return fmt.Errorf("resource: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Resource queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEmployeeCode orders the results by the employee_code field.
func ByEmployeeCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployeeCode, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByJobTitle orders the results by the job_title field.
func ByJobTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobTitle, opts...).ToFunc()
}

// ByExperience orders the results by the experience field.
func ByExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperience, opts...).ToFunc()
}

// ByRate orders the results by the rate field.
func ByRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIdleFrom orders the results by the idle_from field.
func ByIdleFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdleFrom, opts...).ToFunc()
}

// ByIdleDuration orders the results by the idle_duration field.
func ByIdleDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdleDuration, opts...).ToFunc()
}

// ByIsUrgent orders the results by the is_urgent field.
func ByIsUrgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsUrgent, opts...).ToFunc()
}

// ByCvPath orders the results by the cv_path field.
func ByCvPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCvPath, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}
