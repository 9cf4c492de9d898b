package errors

import (
	"errors"
	"fmt"
)

// Sentinels usable with errors.Is; matching compares type and code only.
var (
	ErrCorruptLog     = &AppError{Type: ErrorTypeCorruptLog, Code: "CORRUPT_LOG"}
	ErrMalformedEntry = &AppError{Type: ErrorTypeCorruptLog, Code: "MALFORMED_ENTRY"}
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewStorageError creates a new storage error for a failed log store operation
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Code:    "TIMEOUT",
		Context: map[string]interface{}{
			"operation": operation,
			"timeout":   timeout,
		},
	}
}

// NewPermissionError creates a new permission error
func NewPermissionError(operation string, resource string) *AppError {
	return &AppError{
		Type:    ErrorTypePermission,
		Message: fmt.Sprintf("permission denied for %s on %s", operation, resource),
		Code:    "PERMISSION_DENIED",
		Context: map[string]interface{}{
			"operation": operation,
			"resource":  resource,
		},
	}
}

// NewCorruptLogError reports a log whose line sequence breaks the
// start-before-stop structure.
func NewCorruptLogError(reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeCorruptLog,
		Message: reason,
		Code:    "CORRUPT_LOG",
		Context: map[string]interface{}{
			"reason": reason,
		},
	}
}

// NewMalformedEntryError reports a log line that is not a valid entry.
// lineNumber is 1-based.
func NewMalformedEntryError(lineNumber int, content string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeCorruptLog,
		Message: fmt.Sprintf("malformed entry on line %d: %q", lineNumber, content),
		Code:    "MALFORMED_ENTRY",
		Cause:   cause,
		Context: map[string]interface{}{
			"line":    lineNumber,
			"content": content,
		},
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeInvalidInput, ErrorTypePermission:
			return appErr.Message
		case ErrorTypeCorruptLog:
			return "time log is corrupt: " + appErr.Message
		case ErrorTypeStorage:
			return "A storage error occurred while accessing the time log."
		case ErrorTypeTimeout:
			return "The operation timed out. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeInvalidInput:
			return false
		default:
			return true
		}
	}
	return true
}
