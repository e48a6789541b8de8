package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "task-manager/internal/errors"
)

func TestHandleStorageError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedType apperrors.ErrorType
	}{
		{"driver failure", errors.New("database is locked"), apperrors.ErrorTypeStorage},
		{"deadline exceeded", context.DeadlineExceeded, apperrors.ErrorTypeTimeout},
		{"cancelled", context.Canceled, apperrors.ErrorTypeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HandleStorageError("save task", tt.err)
			assert.True(t, apperrors.IsErrorType(result, tt.expectedType))
			assert.Contains(t, result.Error(), "save task")
			assert.ErrorIs(t, result, tt.err)
		})
	}
}
