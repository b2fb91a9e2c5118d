package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without internal error",
			err:      NewNotFoundError("Activity not found"),
			expected: "not_found: Activity not found",
		},
		{
			name:     "with internal error",
			err:      NewExternalError("Failed to fetch providers", fmt.Errorf("status 500")),
			expected: "external: Failed to fetch providers (status 500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAs_WrappedError(t *testing.T) {
	appErr := NewExternalError("Failed to create provider", nil)
	wrapped := fmt.Errorf("create: %w", appErr)

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Same(t, appErr, got)
	assert.Equal(t, http.StatusBadGateway, StatusCode(wrapped))
	assert.Equal(t, "Failed to create provider", Message(wrapped))
}

func TestMessage_PlainError(t *testing.T) {
	assert.Equal(t, "An error occurred", Message(fmt.Errorf("dial tcp: refused")))
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(fmt.Errorf("boom")))
}
