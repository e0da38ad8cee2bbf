package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_IsInvalidInput(t *testing.T) {
	v := NewValidationError()
	v.Add("age", "must be at least 18")
	v.Add("age", "ignored second message")
	v.Add("email", "required")

	err := v.OrNil()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "must be at least 18", v.Fields["age"])
	assert.Equal(t, "validation failed: age: must be at least 18; email: required", err.Error())

	var ve *ValidationError
	wrapped := fmt.Errorf("submit: %w", err)
	require.True(t, errors.As(wrapped, &ve))
	assert.Len(t, ve.Fields, 2)
}

func TestValidationError_OrNil_Empty(t *testing.T) {
	assert.NoError(t, NewValidationError().OrNil())

	var nilErr *ValidationError
	assert.False(t, nilErr.HasErrors())
}
