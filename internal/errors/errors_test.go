package errors

import (
	"errors"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewStorageError("append line", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: append line" {
		t.Errorf("NewStorageError message = %v", err.Message)
	}
	if err.Code != "STORAGE_ERROR" {
		t.Errorf("NewStorageError code = %v, want %v", err.Code, "STORAGE_ERROR")
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "append line" {
		t.Errorf("NewStorageError should set operation context")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("date", "2016-12-31", "expected today, yesterday, 1-7 or YYYYMMDD")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for date: expected today, yesterday, 1-7 or YYYYMMDD" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}

	value, ok := err.GetContext("value")
	if !ok || value != "2016-12-31" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestNewCorruptLogError(t *testing.T) {
	err := NewCorruptLogError("log starts with a stop entry")

	if err.Type != ErrorTypeCorruptLog {
		t.Errorf("NewCorruptLogError type = %v, want %v", err.Type, ErrorTypeCorruptLog)
	}
	if err.Code != "CORRUPT_LOG" {
		t.Errorf("NewCorruptLogError code = %v, want CORRUPT_LOG", err.Code)
	}
	if !errors.Is(err, ErrCorruptLog) {
		t.Errorf("NewCorruptLogError should match ErrCorruptLog")
	}
}

func TestNewMalformedEntryError(t *testing.T) {
	cause := errors.New(`parsing time "31.12.2016"`)
	err := NewMalformedEntryError(3, "from:31.12.2016", cause)

	if err.Type != ErrorTypeCorruptLog {
		t.Errorf("NewMalformedEntryError type = %v, want %v", err.Type, ErrorTypeCorruptLog)
	}
	if err.Message != `malformed entry on line 3: "from:31.12.2016"` {
		t.Errorf("NewMalformedEntryError message = %v", err.Message)
	}
	if !errors.Is(err, ErrMalformedEntry) {
		t.Errorf("NewMalformedEntryError should match ErrMalformedEntry")
	}
	if errors.Is(err, ErrCorruptLog) {
		t.Errorf("NewMalformedEntryError should not match ErrCorruptLog")
	}

	line, ok := err.GetContext("line")
	if !ok || line != 3 {
		t.Errorf("NewMalformedEntryError should set line context")
	}
}

func TestNewTimeoutAndPermissionErrors(t *testing.T) {
	timeout := NewTimeoutError("read log", "60s")
	if timeout.Code != "TIMEOUT" || timeout.Message != "operation timed out: read log" {
		t.Errorf("NewTimeoutError = %+v", timeout)
	}

	perm := NewPermissionError("append", "/root/timetracker.txt")
	if perm.Code != "PERMISSION_DENIED" || perm.Message != "permission denied for append on /root/timetracker.txt" {
		t.Errorf("NewPermissionError = %+v", perm)
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}

	result, ok := AsAppError(appError)
	if !ok || result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	result, ok = AsAppError(errors.New("regular error"))
	if ok || result != nil {
		t.Errorf("AsAppError should return nil, false for regular error")
	}
}

func TestIsErrorType(t *testing.T) {
	appError := &AppError{Type: ErrorTypeCorruptLog}

	if !IsErrorType(appError, ErrorTypeCorruptLog) {
		t.Errorf("IsErrorType should return true for matching type")
	}
	if IsErrorType(appError, ErrorTypeStorage) {
		t.Errorf("IsErrorType should return false for different type")
	}
	if IsErrorType(errors.New("regular error"), ErrorTypeCorruptLog) {
		t.Errorf("IsErrorType should return false for regular error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Invalid input error",
			err:      NewInvalidInputError("date", "tomorrow", "unsupported date expression"),
			expected: "invalid input for date: unsupported date expression",
		},
		{
			name:     "Corrupt log error",
			err:      NewCorruptLogError("log starts with a stop entry"),
			expected: "time log is corrupt: log starts with a stop entry",
		},
		{
			name:     "Storage error",
			err:      NewStorageError("read lines", errors.New("EIO")),
			expected: "A storage error occurred while accessing the time log.",
		},
		{
			name:     "Timeout error",
			err:      NewTimeoutError("read lines", "5s"),
			expected: "The operation timed out. Please try again.",
		},
		{
			name:     "Permission error",
			err:      NewPermissionError("append", "log"),
			expected: "permission denied for append on log",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(NewCorruptLogError("x")) != "CORRUPT_LOG" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Invalid input error", NewInvalidInputError("date", "x", "format"), false},
		{"Storage error", NewStorageError("read", errors.New("EIO")), true},
		{"Corrupt log error", NewCorruptLogError("log starts with a stop entry"), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
