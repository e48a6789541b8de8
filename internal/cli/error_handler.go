package cli

import (
	"fmt"

	"task-manager/internal/errors"
)

// ErrorHandler turns startup and configuration failures into user-facing errors
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for application errors.
// Anything else, including configuration errors, stays wrapped.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := errors.AsAppError(err); ok {
		if dsn, found := appErr.GetContext("dsn"); found {
			return fmt.Errorf("failed to %s: %s (dsn: %v)", operation, errors.GetUserMessage(err), dsn)
		}
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}
