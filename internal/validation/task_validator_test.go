package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ValidateTaskName(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid name", "Buy milk", false, ""},
		{"Single character", "T", false, ""},
		{"Empty name", "", true, ErrorTypeRequired},
		{"Whitespace only", "   ", true, ErrorTypeRequired},
		{"Tabs and newlines", "\t\n", true, ErrorTypeRequired},
		{"Very long name is accepted without limits", strings.Repeat("a", 1000), false, ""},
		{"Symbols and emoji", "Ship v2.0 🚀 @team #release", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTaskName(tt.input)

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.errorType, validationErr.Errors[0].Type)
			assert.Equal(t, TaskNameField, validationErr.Errors[0].Field)
		})
	}
}

func TestTaskValidator_ValidateTaskName_WithLimits(t *testing.T) {
	validator := NewTaskValidatorWithLimits(10)

	assert.NoError(t, validator.ValidateTaskName("0123456789"))

	err := validator.ValidateTaskName("0123456789X")
	require.Error(t, err)
	validationErr := err.(*ValidationError)
	assert.Equal(t, ErrorTypeInvalidLength, validationErr.Errors[0].Type)
	assert.Equal(t, "Task name must be at most 10 characters long", validationErr.GetUserFriendlyMessage())

	err = validator.ValidateTaskName("  ")
	require.Error(t, err)
	assert.Equal(t, "Task name cannot be empty", err.(*ValidationError).GetUserFriendlyMessage())
}

func TestTaskValidator_ValidateTaskNameLength(t *testing.T) {
	tests := []struct {
		name      string
		validator *TaskValidator
		input     string
		wantErr   bool
	}{
		{"unlimited accepts long names", NewTaskValidator(), strings.Repeat("a", 500), false},
		{"blank names are not its concern", NewTaskValidatorWithLimits(3), "   ", false},
		{"at the cap", NewTaskValidatorWithLimits(3), "abc", false},
		{"surrounding spaces are ignored", NewTaskValidatorWithLimits(3), "  abc  ", false},
		{"over the cap", NewTaskValidatorWithLimits(3), "abcd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator.ValidateTaskNameLength(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, ErrorTypeInvalidLength, err.(*ValidationError).Errors[0].Type)
		})
	}
}

func TestTaskValidator_ValidatePosition(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidatePosition(1))
	assert.Error(t, validator.ValidatePosition(0))
	assert.Error(t, validator.ValidatePosition(-1))
}

func TestTaskValidator_GetValidTaskName(t *testing.T) {
	validator := NewTaskValidator()

	name, err := validator.GetValidTaskName("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", name)

	name, err = validator.GetValidTaskName("   ")
	assert.Error(t, err)
	assert.Empty(t, name)
}
