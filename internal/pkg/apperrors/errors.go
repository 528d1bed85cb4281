package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Upstream (DB service) errors
var (
	ErrUpstreamFailed      = errors.New("db service request failed")
	ErrUpstreamUnavailable = errors.New("db service unavailable")
	ErrUpstreamTimeout     = errors.New("db service request timed out")
	ErrMalformedResponse   = errors.New("db service returned a malformed response")
)

// Registration workflow errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrTeacherNotFound   = errors.New("teacher not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrSchoolNotFound    = errors.New("school not found")
	ErrGradeNotFound     = errors.New("grade not found")
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrExamNotFound      = errors.New("exam record not found")
	ErrGroupNotFound     = errors.New("group not found")
	ErrBatchNotFound     = errors.New("batch not found")
	ErrAuthGroupNotFound = errors.New("auth group not found")

	// ErrIDExhausted is returned when the identifier retry budget runs out
	// before an unused identifier is found.
	ErrIDExhausted = errors.New("identifier retry budget exhausted")
)

// NewNotFoundError creates a new custom error for a missing resource with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewUpstreamError creates a new custom error for a failed DB service call with a message
func NewUpstreamError(message string) error {
	return &CustomError{
		Err:     ErrUpstreamFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
