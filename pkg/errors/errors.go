package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Enumeration errors
	ErrInvalidRoot    ErrorCode = "INVALID_ROOT"
	ErrOptionConflict ErrorCode = "OPTION_CONFLICT"
	ErrDirUnreadable  ErrorCode = "DIR_UNREADABLE"
	ErrMarkerRead     ErrorCode = "MARKER_UNREADABLE"
	ErrBadPattern     ErrorCode = "BAD_PATTERN"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Lint errors
	ErrCheckFailed ErrorCode = "CHECK_FAILED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// TreesiftError represents a structured error with code and details
type TreesiftError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TreesiftError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TreesiftError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TreesiftError) Is(target error) bool {
	var targetErr *TreesiftError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TreesiftError with the given code and message
func New(code ErrorCode, message string) *TreesiftError {
	return &TreesiftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TreesiftError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TreesiftError {
	return &TreesiftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TreesiftError
func Wrap(err error, code ErrorCode, message string) *TreesiftError {
	if err == nil {
		return nil
	}
	return &TreesiftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TreesiftError {
	if err == nil {
		return nil
	}
	return &TreesiftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TreesiftError) WithDetail(key string, value interface{}) *TreesiftError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TreesiftError) WithDetails(details map[string]interface{}) *TreesiftError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tsErr *TreesiftError
	if errors.As(err, &tsErr) {
		return tsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TreesiftError
func GetErrorCode(err error) ErrorCode {
	var tsErr *TreesiftError
	if errors.As(err, &tsErr) {
		return tsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TreesiftError
func GetErrorDetails(err error) map[string]interface{} {
	var tsErr *TreesiftError
	if errors.As(err, &tsErr) {
		return tsErr.Details
	}
	return nil
}
