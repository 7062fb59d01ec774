package errors

import (
	"errors"
	"fmt"
	"strings"
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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Conflict errors
	ErrMergeConflict  ErrorCode = "MERGE_CONFLICT"
	ErrTargetConflict ErrorCode = "TARGET_CONFLICT"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileRemove    ErrorCode = "FILE_REMOVE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// Detail keys shared by conflict errors
const (
	DetailTarget = "target"
	DetailPaths  = "paths"
)

// ClinkError represents a structured error with code and details
type ClinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ClinkError) Error() string {
	msg := e.Message
	if paths, ok := e.Details[DetailPaths].([]string); ok && len(paths) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(paths, ", "))
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, msg, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap implements the errors.Unwrap interface
func (e *ClinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ClinkError) Is(target error) bool {
	var targetErr *ClinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ClinkError with the given code and message
func New(code ErrorCode, message string) *ClinkError {
	return &ClinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ClinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ClinkError {
	return &ClinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ClinkError
func Wrap(err error, code ErrorCode, message string) *ClinkError {
	if err == nil {
		return nil
	}
	return &ClinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ClinkError {
	if err == nil {
		return nil
	}
	return &ClinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Conflict creates a conflict error for a target listing the offending
// relative paths.
func Conflict(code ErrorCode, target string, paths []string) *ClinkError {
	var msg string
	switch code {
	case ErrMergeConflict:
		msg = fmt.Sprintf("conflicting sources in target %s", target)
	default:
		msg = fmt.Sprintf("conflicts in target %s", target)
	}
	return New(code, msg).
		WithDetail(DetailTarget, target).
		WithDetail(DetailPaths, paths)
}

// WithDetail adds a detail to the error
func (e *ClinkError) WithDetail(key string, value interface{}) *ClinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ClinkError) WithDetails(details map[string]interface{}) *ClinkError {
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
	var clinkErr *ClinkError
	if errors.As(err, &clinkErr) {
		return clinkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ClinkError
func GetErrorCode(err error) ErrorCode {
	var clinkErr *ClinkError
	if errors.As(err, &clinkErr) {
		return clinkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ClinkError
func GetErrorDetails(err error) map[string]interface{} {
	var clinkErr *ClinkError
	if errors.As(err, &clinkErr) {
		return clinkErr.Details
	}
	return nil
}

// ConflictPaths returns the conflicting relative paths carried by a conflict
// error, or nil.
func ConflictPaths(err error) []string {
	paths, _ := GetErrorDetails(err)[DetailPaths].([]string)
	return paths
}
