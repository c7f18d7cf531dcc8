package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Infrastructure errors
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Course offering errors
var (
	ErrOfferingNotFound       = errors.New("course offering not found")
	ErrOfferingAlreadyExists  = errors.New("course offering with this term, subject and section already exists")
	ErrOfferingHasEnrollments = errors.New("course offering has active enrollments and cannot be deleted")
	ErrInvalidTimeSlot        = errors.New("invalid time slot")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentAlreadyExists = errors.New("student with this number already exists")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrAlreadyEnrolled     = errors.New("student is already enrolled in this offering")
	ErrScheduleConflict    = errors.New("schedule conflict with an existing enrollment")
	ErrInvalidStatusChange = errors.New("invalid enrollment status change")
)

// Registration window errors
var (
	ErrWindowNotFound = errors.New("registration window not found")
)

// Required course errors
var (
	ErrRequirementNotFound      = errors.New("required course entry not found")
	ErrRequirementAlreadyExists = errors.New("required course entry already exists for this student and subject")
)

// Admission errors
var (
	ErrLockTimeout = errors.New("timed out waiting for the student's enrollment lock")
)
