package cli

import (
	"fmt"

	"timetracker/internal/errors"
	"timetracker/internal/logging"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for application errors.
// Rejected input is followed by the accepted date forms.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	eh.log(operation, err)

	if _, ok := errors.AsAppError(err); !ok {
		// Fallback for unknown errors
		return fmt.Errorf("failed to %s: %w", operation, err)
	}

	if eh.IsInvalidInputError(err) {
		return fmt.Errorf("failed to %s: %s\n%s", operation, errors.GetUserMessage(err), dateUsage)
	}
	return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
}

// IsCorruptLogError checks if an error reports an unreadable time log
func (eh *ErrorHandler) IsCorruptLogError(err error) bool {
	appErr, ok := errors.AsAppError(err)
	return ok && (appErr.Is(errors.ErrCorruptLog) || appErr.Is(errors.ErrMalformedEntry))
}

// IsInvalidInputError checks if an error was caused by bad user input
func (eh *ErrorHandler) IsInvalidInputError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeInvalidInput)
}

func (eh *ErrorHandler) log(operation string, err error) {
	if !errors.ShouldLogError(err) {
		return
	}

	fields := []logging.Field{
		logging.F("operation", operation),
		logging.F("code", errors.GetErrorCode(err)),
		logging.F("error", err.Error()),
	}
	if appErr, ok := errors.AsAppError(err); ok && eh.IsCorruptLogError(appErr) {
		for _, key := range []string{"line", "content"} {
			if value, found := appErr.GetContext(key); found {
				fields = append(fields, logging.F(key, value))
			}
		}
	}
	logging.Debugln("command failed", fields...)
}
