package service

import (
	"net/mail"
	"strings"
	"time"

	"irms.fjp.io/irms/ent/resource"
	apperrors "irms.fjp.io/irms/internal/pkg/errors"
)

// ResourceInput carries the caller-settable fields for creating a resource.
// Derived fields (idle duration, urgency) are never part of the input.
type ResourceInput struct {
	EmployeeCode string
	Name         string
	Email        string
	Phone        string
	Department   string
	JobTitle     string
	Skills       []string
	Experience   string
	Rate         float64
	Status       string
	IdleFrom     time.Time
	Notes        string
}

// ResourcePatch carries a partial update. Nil fields are left untouched.
type ResourcePatch struct {
	Name       *string
	Email      *string
	Phone      *string
	Department *string
	JobTitle   *string
	Skills     *[]string
	Experience *string
	Rate       *float64
	Status     *string
	IdleFrom   *time.Time
	Notes      *string
}

// Validate checks a create input and returns field-level errors.
func (in ResourceInput) Validate() []apperrors.FieldError {
	var errs []apperrors.FieldError

	if strings.TrimSpace(in.EmployeeCode) == "" {
		errs = append(errs, fieldRequired("employeeCode"))
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, fieldRequired("name"))
	}
	errs = appendEmailError(errs, in.Email, true)
	if err := resource.DepartmentValidator(resource.Department(in.Department)); err != nil {
		errs = append(errs, invalidEnum("department"))
	}
	if strings.TrimSpace(in.JobTitle) == "" {
		errs = append(errs, fieldRequired("jobTitle"))
	}
	if len(in.Skills) == 0 {
		errs = append(errs, skillsRequired())
	}
	if strings.TrimSpace(in.Experience) == "" {
		errs = append(errs, fieldRequired("experience"))
	}
	if in.Rate < 0 {
		errs = append(errs, apperrors.FieldError{
			Field:   "rate",
			Code:    "OUT_OF_RANGE",
			Message: "Rate must not be negative",
		})
	}
	if in.Status != "" {
		if err := resource.StatusValidator(resource.Status(in.Status)); err != nil {
			errs = append(errs, invalidEnum("status"))
		}
	}
	if in.IdleFrom.IsZero() {
		errs = append(errs, fieldRequired("idleFrom"))
	}

	return errs
}

// Validate checks a patch and returns field-level errors for the fields
// it actually sets.
func (p ResourcePatch) Validate() []apperrors.FieldError {
	var errs []apperrors.FieldError

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, fieldRequired("name"))
	}
	if p.Email != nil {
		errs = appendEmailError(errs, *p.Email, true)
	}
	if p.Department != nil {
		if err := resource.DepartmentValidator(resource.Department(*p.Department)); err != nil {
			errs = append(errs, invalidEnum("department"))
		}
	}
	if p.JobTitle != nil && strings.TrimSpace(*p.JobTitle) == "" {
		errs = append(errs, fieldRequired("jobTitle"))
	}
	if p.Skills != nil && len(*p.Skills) == 0 {
		errs = append(errs, skillsRequired())
	}
	if p.Experience != nil && strings.TrimSpace(*p.Experience) == "" {
		errs = append(errs, fieldRequired("experience"))
	}
	if p.Rate != nil && *p.Rate < 0 {
		errs = append(errs, apperrors.FieldError{
			Field:   "rate",
			Code:    "OUT_OF_RANGE",
			Message: "Rate must not be negative",
		})
	}
	if p.Status != nil {
		if err := resource.StatusValidator(resource.Status(*p.Status)); err != nil {
			errs = append(errs, invalidEnum("status"))
		}
	}
	if p.IdleFrom != nil && p.IdleFrom.IsZero() {
		errs = append(errs, fieldRequired("idleFrom"))
	}

	return errs
}

func fieldRequired(field string) apperrors.FieldError {
	return apperrors.FieldError{
		Field:   field,
		Code:    "REQUIRED",
		Message: "This field is required",
	}
}

func skillsRequired() apperrors.FieldError {
	return apperrors.FieldError{
		Field:   "skills",
		Code:    "REQUIRED",
		Message: "At least one skill is required",
	}
}

func invalidEnum(field string) apperrors.FieldError {
	return apperrors.FieldError{
		Field:   field,
		Code:    "INVALID_VALUE",
		Message: "Value is not one of the allowed options",
	}
}

func appendEmailError(errs []apperrors.FieldError, email string, required bool) []apperrors.FieldError {
	email = strings.TrimSpace(email)
	if email == "" {
		if required {
			return append(errs, fieldRequired("email"))
		}
		return errs
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return append(errs, apperrors.FieldError{
			Field:   "email",
			Code:    "INVALID_VALUE",
			Message: "Email address is invalid",
		})
	}
	return errs
}
