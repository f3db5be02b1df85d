package errors

import "net/http"

// Error code constants. Errors carry code + message; handlers translate them
// into the uniform {success:false, message} response envelope.

// Resource error codes.
const (
	CodeResourceNotFound   = "RESOURCE_NOT_FOUND"
	CodeEmployeeCodeExists = "EMPLOYEE_CODE_EXISTS"
)

// User error codes.
const (
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeUsernameEmailExists = "USERNAME_OR_EMAIL_EXISTS"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
)

// Validation error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInvalidRequest   = "INVALID_REQUEST"
)

// Generic error codes.
const (
	CodeInternal = "INTERNAL_ERROR"
)

// Convenience constructors using predefined codes.

// ErrResourceNotFound creates a resource not found error.
func ErrResourceNotFound() *AppError {
	return &AppError{
		Code:       CodeResourceNotFound,
		Message:    "Resource not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// ErrEmployeeCodeExists creates a duplicate employee code conflict error.
func ErrEmployeeCodeExists(code string) *AppError {
	return (&AppError{
		Code:       CodeEmployeeCodeExists,
		Message:    "Resource with this employee code already exists",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"employee_code": code})
}

// ErrValidationFailed creates a validation error carrying field-level detail.
func ErrValidationFailed(fieldErrors []FieldError) *AppError {
	return (&AppError{
		Code:       CodeValidationFailed,
		Message:    "Validation failed",
		HTTPStatus: http.StatusBadRequest,
	}).WithFieldErrors(fieldErrors)
}
