package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Downstream errors
	ErrUnavailable = errors.New("dependency unavailable")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
)

// Course errors
var (
	ErrCourseNotFound      = NewResourceNotFoundError("course not found")
	ErrCourseCodeExists    = NewConflictError("course code already exists")
	ErrCourseCodeImmutable = NewValidationError("course code cannot be modified")
	ErrCourseHasEnrollment = NewConflictError("course has enrollments and cannot be deleted")
)

// Student errors
var (
	ErrStudentNotFound        = NewResourceNotFoundError("student not found")
	ErrStudentNumberExists    = NewConflictError("student number already exists")
	ErrStudentEmailExists     = NewConflictError("student email already exists")
	ErrStudentNumberImmutable = NewValidationError("student number cannot be modified")
	ErrStudentHasEnrollments  = NewConflictError("student has existing enrollments and cannot be deleted")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound  = NewResourceNotFoundError("enrollment not found")
	ErrDuplicateEnrollment = NewConflictError("duplicate enrollment")
	ErrCapacityExceeded    = NewConflictError("capacity exceeded")
	ErrEnrollmentDropped   = NewConflictError("enrollment already dropped")
	ErrInvalidEnrollStatus = NewValidationError("invalid enrollment status")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a new custom error for rejected input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewUnavailableError wraps a failed call to a required dependency.
func NewUnavailableError(message string, cause error) error {
	return &CustomError{
		Err:     ErrUnavailable,
		Message: message,
		Cause:   cause,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
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

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
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

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *CustomError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// Kind returns the sentinel category of err, or nil for unclassified errors.
func Kind(err error) error {
	switch {
	case errors.Is(err, ErrValidationFailed):
		return ErrValidationFailed
	case errors.Is(err, ErrBadRequest):
		return ErrBadRequest
	case errors.Is(err, ErrConflict):
		return ErrConflict
	case errors.Is(err, ErrResourceNotFound):
		return ErrResourceNotFound
	case errors.Is(err, ErrUnavailable):
		return ErrUnavailable
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenExpired):
		return ErrPermissionDenied
	default:
		return nil
	}
}
