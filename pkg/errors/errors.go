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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Source/target tree errors
	ErrSourceInvalid ErrorCode = "SOURCE_INVALID"
	ErrTargetInvalid ErrorCode = "TARGET_INVALID"

	// Filename parsing errors
	ErrInsufficientFields ErrorCode = "INSUFFICIENT_FIELDS"
	ErrInvalidFieldValue  ErrorCode = "INVALID_FIELD_VALUE"

	// Destination resolution errors
	ErrNoParentMatch        ErrorCode = "NO_PARENT_MATCH"
	ErrAmbiguousParentMatch ErrorCode = "AMBIGUOUS_PARENT_MATCH"
	ErrNoSubMatch           ErrorCode = "NO_SUB_MATCH"
	ErrAmbiguousSubMatch    ErrorCode = "AMBIGUOUS_SUB_MATCH"
	ErrDestCollision        ErrorCode = "DEST_COLLISION"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileMove   ErrorCode = "FILE_MOVE"
)

// FilerError represents a structured error with code and details
type FilerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FilerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FilerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FilerError) Is(target error) bool {
	var targetErr *FilerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FilerError with the given code and message
func New(code ErrorCode, message string) *FilerError {
	return &FilerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FilerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FilerError {
	return &FilerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FilerError
func Wrap(err error, code ErrorCode, message string) *FilerError {
	if err == nil {
		return nil
	}
	return &FilerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FilerError {
	if err == nil {
		return nil
	}
	return &FilerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FilerError) WithDetail(key string, value interface{}) *FilerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var filerErr *FilerError
	if errors.As(err, &filerErr) {
		return filerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FilerError
func GetErrorCode(err error) ErrorCode {
	var filerErr *FilerError
	if errors.As(err, &filerErr) {
		return filerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FilerError
func GetErrorDetails(err error) map[string]interface{} {
	var filerErr *FilerError
	if errors.As(err, &filerErr) {
		return filerErr.Details
	}
	return nil
}
