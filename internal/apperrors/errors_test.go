package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapKeepsSentinel(t *testing.T) {
	err := NewAppError(503, "failed to list transactions", ErrStoreUnavailable)
	wrapped := fmt.Errorf("dashboard: %w", err)

	assert.True(t, errors.Is(wrapped, ErrStoreUnavailable))
	assert.Equal(t, "failed to list transactions: store unavailable", err.Error())

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 503, appErr.Code)
}

func TestAppError_NilCause(t *testing.T) {
	err := NewAppError(500, "internal error", nil)
	assert.Equal(t, "internal error", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
