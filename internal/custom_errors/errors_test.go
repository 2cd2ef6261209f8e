package custom_errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("%s must be max %d characters", "Title", 200)

	assert.Equal(t, "Title must be max 200 characters", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))

	wrapped := fmt.Errorf("create post: %w", err)
	assert.True(t, errors.Is(wrapped, ErrValidation))

	var target *ValidationError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "Title must be max 200 characters", target.Message)
	assert.False(t, errors.Is(err, ErrPostNotFound))
}
