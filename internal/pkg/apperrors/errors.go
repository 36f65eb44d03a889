package apperrors

import "errors"

// Validation and request errors
var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Authentication / authorization errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotCourseTeacher   = errors.New("teacher is not assigned to this course")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Teacher errors
var (
	ErrTeacherNotFound = errors.New("teacher not found")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course ID already exists")
)

// Credit errors
var (
	ErrCreditNotFound      = errors.New("credit record not found")
	ErrCreditAlreadyExists = errors.New("credit record already exists")
	ErrInvalidCreditRef    = errors.New("invalid student_id or course_id")
	ErrNoCreditsForStudent = errors.New("no credits found for this student")
)

// Grade errors
var (
	ErrGradeNotFound      = errors.New("grade record not found")
	ErrGradeAlreadyExists = errors.New("grade already exists for this student and course")
)

// Certificate errors
var (
	ErrCertificateNotFound     = errors.New("certificate not found")
	ErrCertificateTypeNotFound = errors.New("certificate type not found")
)

// Schedule errors
var (
	ErrScheduleNotFound = errors.New("schedule not found")
)

// Update request errors
var (
	ErrUpdateRequestNotFound = errors.New("update request not found")
)

// Calendar errors
var (
	ErrCalendarEventNotFound = errors.New("calendar event not found")
)

// CustomError wraps a sentinel error with operation context
type CustomError struct {
	Err     error
	Message string
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
