package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user record is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrStudentNotFound is returned when the target student does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrFacultyNotFound is returned when the acting faculty record is missing.
	ErrFacultyNotFound = errors.New("faculty not found")
	// ErrMarkNotFound is returned when no marks exist for a course.
	ErrMarkNotFound = errors.New("marks not found for this course")
	// ErrCommentNotFound is returned when a comment is missing or not owned.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrUserExists is returned when an email is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrDuplicateMark is returned when the marks unique index is violated
	// despite the upsert guard.
	ErrDuplicateMark = errors.New("marks already exist for this student and course")
	// ErrDuplicateComment is returned when the comments unique index is
	// violated despite the upsert guard.
	ErrDuplicateComment = errors.New("comment already exists for this student and course")
	// ErrNoAssignedCourse is returned when a faculty account has no course.
	ErrNoAssignedCourse = errors.New("no course assigned to faculty")
	// ErrWrongCourse is returned when a faculty member targets a course other
	// than their assigned one.
	ErrWrongCourse = errors.New("access denied: you can only manage marks for your assigned course")
	// ErrInvalidRole is returned when a role value is outside the allowed set.
	ErrInvalidRole = errors.New("invalid role")
	// ErrCourseRequired is returned when a faculty account is created without
	// an assigned course.
	ErrCourseRequired = errors.New("faculty must have an assigned course")
	// ErrInvalidCourse is returned when a course code is outside the catalog.
	ErrInvalidCourse = errors.New("invalid course code")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors with stable codes.
// Unclassified errors collapse to a generic 500 so store internals never
// leak to clients.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrStudentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "STUDENT_NOT_FOUND")
	case errors.Is(err, ErrFacultyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "FACULTY_NOT_FOUND")
	case errors.Is(err, ErrMarkNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MARKS_NOT_FOUND")
	case errors.Is(err, ErrCommentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrDuplicateMark):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_MARKS")
	case errors.Is(err, ErrDuplicateComment):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_COMMENT")
	case errors.Is(err, ErrNoAssignedCourse):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_ASSIGNED_COURSE")
	case errors.Is(err, ErrWrongCourse):
		return NewHTTPError(http.StatusForbidden, err.Error(), "WRONG_COURSE")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrCourseRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "COURSE_REQUIRED")
	case errors.Is(err, ErrInvalidCourse):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_COURSE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
