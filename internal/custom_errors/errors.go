package custom_errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidBody     = errors.New("request body is required")
	ErrInvalidJSON     = errors.New("invalid JSON body")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrDatabaseQuery   = errors.New("database query error")
	ErrCacheMiss       = errors.New("cache miss")
)

// ValidationError carries a client-facing message and matches ErrValidation.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
