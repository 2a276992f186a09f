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

	// Detection errors
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrUnrecognizedToken  ErrorCode = "UNRECOGNIZED_TOKEN"
	ErrInconsistentFormat ErrorCode = "INCONSISTENT_FORMAT"
	ErrAmbiguousFormat    ErrorCode = "AMBIGUOUS_FORMAT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// DetectError represents a structured error with code and details
type DetectError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DetectError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DetectError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DetectError) Is(target error) bool {
	var targetErr *DetectError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DetectError with the given code and message
func New(code ErrorCode, message string) *DetectError {
	return &DetectError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DetectError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DetectError {
	return &DetectError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DetectError
func Wrap(err error, code ErrorCode, message string) *DetectError {
	if err == nil {
		return nil
	}
	return &DetectError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DetectError {
	if err == nil {
		return nil
	}
	return &DetectError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DetectError) WithDetail(key string, value interface{}) *DetectError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DetectError) WithDetails(details map[string]interface{}) *DetectError {
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
	var detectErr *DetectError
	if errors.As(err, &detectErr) {
		return detectErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DetectError
func GetErrorCode(err error) ErrorCode {
	var detectErr *DetectError
	if errors.As(err, &detectErr) {
		return detectErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DetectError
func GetErrorDetails(err error) map[string]interface{} {
	var detectErr *DetectError
	if errors.As(err, &detectErr) {
		return detectErr.Details
	}
	return nil
}
