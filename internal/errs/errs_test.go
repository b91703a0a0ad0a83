package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorCode(t *testing.T) {
	err := NewNotFoundError("Adviser", 42)

	assert.Equal(t, "ADVISER_NOT_FOUND", err.Code)
	assert.Equal(t, "Adviser with id 42 not found", err.Error())
}

func TestErrorsIsMatchesByType(t *testing.T) {
	wrapped := fmt.Errorf("saving: %w", NewNotFoundError("Bank", 1))

	assert.True(t, errors.Is(wrapped, &NotFoundError{}))
	assert.False(t, errors.Is(wrapped, &PersistenceError{}))
	assert.False(t, errors.Is(wrapped, &MalformedQueryError{}))
	assert.True(t, errors.Is(Malformed("bad"), &MalformedQueryError{}))
}

func TestPersistenceErrorUnwrap(t *testing.T) {
	cause := errors.New("duplicate key")
	err := &PersistenceError{Code: "ADVISER_ALREADY_EXISTS", Message: "exists", Entity: "adviser", Op: "insert", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "insert adviser: exists: duplicate key", err.Error())
}

func TestColumnTypeErrorMessage(t *testing.T) {
	err := &ColumnTypeError{Column: "e_id", Target: "int64", Value: "abc"}

	assert.Equal(t, `column "e_id": cannot convert string to int64`, err.Error())
	assert.True(t, errors.Is(err, &ColumnTypeError{}))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Message: "Validation failed", Errors: []FieldError{{Field: "size", Error: "must be at least 1"}}}

	assert.Equal(t, "Validation failed: size must be at least 1", err.Error())
}
