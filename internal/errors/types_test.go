package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"InvalidArgument", ErrorTypeInvalidArgument, "invalid_argument"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"Storage", ErrorTypeStorage, "storage"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Timeout", ErrorTypeTimeout, "timeout"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeValidation,
				Message: "invalid task name",
			},
			expected: "validation: invalid task name",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeStorage,
				Message: "save failed",
				Cause:   errors.New("disk I/O error"),
			},
			expected: "storage: save failed (caused by: disk I/O error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appError := &AppError{
		Type:    ErrorTypeStorage,
		Message: "wrapped error",
		Cause:   cause,
	}

	if appError.Unwrap() != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", appError.Unwrap(), cause)
	}
	if !errors.Is(appError, cause) {
		t.Errorf("errors.Is should find the cause through Unwrap")
	}
}

func TestAppError_Is(t *testing.T) {
	appError1 := &AppError{Type: ErrorTypeValidation, Code: "VALIDATION_FAILED"}
	appError2 := &AppError{Type: ErrorTypeValidation, Code: "VALIDATION_FAILED"}
	appError3 := &AppError{Type: ErrorTypeStorage, Code: "STORAGE_ERROR"}
	regularError := errors.New("regular error")

	tests := []struct {
		name     string
		err      *AppError
		target   error
		expected bool
	}{
		{"Same type and code", appError1, appError2, true},
		{"Different type", appError1, appError3, false},
		{"Regular error", appError1, regularError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Is(tt.target)
			if result != tt.expected {
				t.Errorf("AppError.Is() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_IsType(t *testing.T) {
	appError := &AppError{Type: ErrorTypeInvalidArgument, Message: "repository cannot be nil"}

	if !appError.IsType(ErrorTypeInvalidArgument) {
		t.Errorf("AppError.IsType() = false, want true for matching type")
	}
	if appError.IsType(ErrorTypeValidation) {
		t.Errorf("AppError.IsType() = true, want false for different type")
	}
}

func TestAppError_Context(t *testing.T) {
	appError := &AppError{Type: ErrorTypeNotFound, Message: "task not found"}

	result := appError.WithContext("index", 3)
	if result != appError {
		t.Errorf("WithContext should return the same instance")
	}

	value, exists := appError.GetContext("index")
	if !exists || value != 3 {
		t.Errorf("GetContext(index) = %v, %v; want 3, true", value, exists)
	}

	if _, exists := appError.GetContext("missing"); exists {
		t.Errorf("GetContext should return false for non-existing key")
	}

	appError.Context = nil
	if _, exists := appError.GetContext("index"); exists {
		t.Errorf("GetContext should return false when context is nil")
	}
}
