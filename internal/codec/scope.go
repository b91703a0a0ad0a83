package codec

import (
	"time"

	"github.com/dame620/firstbackjhipstergradle/internal/errs"
)

// Scope is a view of a Row restricted to one role of a joined query.
//
// The column-to-alias table comes from the query plan, so row mappers
// address columns by their source name ("id", "name") and never need to
// know which prefix the projection used.
type Scope struct {
	row     Row
	role    string
	aliases map[string]string
}

// NewScope binds row to role using aliases (source column -> projected alias).
func NewScope(row Row, role string, aliases map[string]string) Scope {
	return Scope{row: row, role: role, aliases: aliases}
}

// Role returns the role the scope was bound to.
func (s Scope) Role() string { return s.role }

// Raw returns the undecoded value of column.
func (s Scope) Raw(column string) (any, error) {
	alias, ok := s.aliases[column]
	if !ok {
		return nil, errs.Malformed("column %q is not projected for role %q", column, s.role)
	}
	v, ok := s.row[alias]
	if !ok {
		return nil, errs.Malformed("alias %q missing from result row", alias)
	}
	return v, nil
}

// IsNull reports whether column is NULL in this row. Unknown columns are treated as NULL.
func (s Scope) IsNull(column string) bool {
	v, err := s.Raw(column)
	return err != nil || v == nil
}

func scoped[T Value](s Scope, column string) (*T, error) {
	raw, err := s.Raw(column)
	if err != nil {
		return nil, err
	}
	return Decode[T](s.aliases[column], raw)
}

// Reader decodes columns from a Scope and remembers the first error, so
// a row mapper can read every field and check Err once at the end.
type Reader struct {
	scope Scope
	err   error
}

// NewReader returns a Reader over scope.
func NewReader(scope Scope) *Reader {
	return &Reader{scope: scope}
}

// Err returns the first decoding error encountered.
func (r *Reader) Err() error { return r.err }

func read[T Value](r *Reader, column string) *T {
	if r.err != nil {
		return nil
	}
	v, err := scoped[T](r.scope, column)
	if err != nil {
		r.err = err
		return nil
	}
	return v
}

func (r *Reader) Int64(column string) *int64    { return read[int64](r, column) }
func (r *Reader) String(column string) *string  { return read[string](r, column) }
func (r *Reader) Bool(column string) *bool      { return read[bool](r, column) }
func (r *Reader) Time(column string) *time.Time { return read[time.Time](r, column) }
