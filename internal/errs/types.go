package errs

import (
	"fmt"
	"strings"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "size", "error": "must be at least 1" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ColumnTypeError is returned by the column codec when a raw column value
// cannot be converted to the requested Go type without loss.
type ColumnTypeError struct {
	Column string `json:"column"`
	Target string `json:"target"`
	Value  any    `json:"value"`
	Err    error  `json:"-"`
}

func (e *ColumnTypeError) Error() string {
	msg := fmt.Sprintf("column %q: cannot convert %T to %s", e.Column, e.Value, e.Target)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ColumnTypeError) Unwrap() error { return e.Err }

// Is matches any *ColumnTypeError regardless of its fields.
func (e *ColumnTypeError) Is(target error) bool {
	_, ok := target.(*ColumnTypeError)
	return ok
}

// NotFoundError reports that no row exists for the given entity id.
//
// Code is machine-readable, e.g. "ADVISER_NOT_FOUND".
type NotFoundError struct {
	Code   string `json:"code"`
	Entity string `json:"entity"`
	ID     int64  `json:"id"`
}

// NewNotFoundError builds a NotFoundError with a code derived from the entity name.
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{
		Code:   MakeUpperCaseWithUnderscores(entity + " not found"),
		Entity: entity,
		ID:     id,
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// Is matches any *NotFoundError. Field values are not compared.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// PersistenceError wraps a database failure that happened while writing.
//
// Fields:
//   - Code: machine-friendly code, e.g. "ADVISER_ALREADY_EXISTS".
//   - Message: human-friendly message that is safe to surface to a client.
//   - Entity / Op: what was being written and how (insert, update, delete).
//   - Errors: field-level details, set for not-null violations.
//   - Err: the underlying driver error.
type PersistenceError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Entity  string       `json:"entity"`
	Op      string       `json:"op"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Entity, e.Message)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Entity, e.Message, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is matches any *PersistenceError.
func (e *PersistenceError) Is(target error) bool {
	_, ok := target.(*PersistenceError)
	return ok
}

// MalformedQueryError is raised when a query cannot be assembled:
// duplicate aliases, unknown columns, invalid identifiers, empty
// predicate lists, or an invalid page.
type MalformedQueryError struct {
	Reason string `json:"reason"`
}

// Malformed is a shorthand for &MalformedQueryError{Reason: fmt.Sprintf(...)}.
func Malformed(format string, args ...any) *MalformedQueryError {
	return &MalformedQueryError{Reason: fmt.Sprintf(format, args...)}
}

func (e *MalformedQueryError) Error() string {
	return "malformed query: " + e.Reason
}

// Is matches any *MalformedQueryError.
func (e *MalformedQueryError) Is(target error) bool {
	_, ok := target.(*MalformedQueryError)
	return ok
}

// ValidationError carries field-level failures for caller-supplied input.
type ValidationError struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+" "+fe.Error)
	}
	return e.Message + ": " + strings.Join(parts, ", ")
}

// Is matches any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Adviser not found" -> "ADVISER_NOT_FOUND"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
