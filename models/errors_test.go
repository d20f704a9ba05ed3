package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("name", "must not be blank")
	require.EqualError(t, err, "name: must not be blank")

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, "name", vErr.Field)
}

func TestGenerationErrorMessage(t *testing.T) {
	err := &GenerationError{Endpoint: "ai-generateClip", Message: "quota exceeded"}
	require.EqualError(t, err, "ai-generateClip: quota exceeded")

	bare := &GenerationError{Message: "request failed"}
	require.EqualError(t, bare, "request failed")
}

func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", ErrProjectNotFound)
	require.ErrorIs(t, wrapped, ErrProjectNotFound)
}
