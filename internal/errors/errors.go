package errors

import (
	"errors"
	"fmt"
)

// userMessager is implemented by causes that carry their own user-facing text,
// such as validation.ValidationError.
type userMessager interface {
	GetUserFriendlyMessage() string
}

// Error codes reported by GetErrorCode
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeNotFound         = "NOT_FOUND"
	CodeStorage          = "STORAGE_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeTimeout          = "TIMEOUT"
	CodeUnknown          = "UNKNOWN_ERROR"
)

func newAppError(errorType ErrorType, code, message string, cause error, context map[string]interface{}) *AppError {
	if context == nil {
		context = make(map[string]interface{})
	}
	return &AppError{Type: errorType, Message: message, Code: code, Cause: cause, Context: context}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return newAppError(ErrorTypeValidation, CodeValidationFailed, message, cause, nil)
}

// NewInvalidArgumentError creates an error for a missing or unusable argument,
// such as a nil collaborator passed to a constructor.
func NewInvalidArgumentError(argument string, reason string) *AppError {
	return newAppError(ErrorTypeInvalidArgument, CodeInvalidArgument, argument+" "+reason, nil,
		map[string]interface{}{"argument": argument, "reason": reason})
}

// NewNotFoundError creates a new not found error. The message reads
// "<resource> not found at <location>".
func NewNotFoundError(resource string, location string) *AppError {
	return newAppError(ErrorTypeNotFound, CodeNotFound, fmt.Sprintf("%s not found at %s", resource, location), nil,
		map[string]interface{}{"resource": resource, "location": location})
}

// NewStorageError creates a new storage backend error
func NewStorageError(operation string, cause error) *AppError {
	return newAppError(ErrorTypeStorage, CodeStorage, "storage operation failed: "+operation, cause,
		map[string]interface{}{"operation": operation})
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newAppError(ErrorTypeInvalidInput, CodeInvalidInput, fmt.Sprintf("invalid input for %s: %s", field, reason), nil,
		map[string]interface{}{"field": field, "value": value, "reason": reason})
}

// NewTimeoutError reports an operation cut short by its context
func NewTimeoutError(operation string, cause error) *AppError {
	return newAppError(ErrorTypeTimeout, CodeTimeout, "operation timed out: "+operation, cause,
		map[string]interface{}{"operation": operation})
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
		case ErrorTypeValidation:
			var um userMessager
			if errors.As(appErr.Cause, &um) {
				return um.GetUserFriendlyMessage()
			}
			return appErr.Message
		case ErrorTypeInvalidArgument, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeStorage:
			return "A storage error occurred. Please try again."
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
	return CodeUnknown
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return true
	}
	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
		return false // user errors
	default:
		return true
	}
}
