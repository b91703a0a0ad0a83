package repository

import (
	"github.com/dame620/firstbackjhipstergradle/internal/codec"
	"github.com/dame620/firstbackjhipstergradle/internal/errs"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
)

// RootAlias is the table alias and column prefix of the entity being loaded.
const RootAlias = "e"

// Schema declares how entity type T is stored.
//
// Columns are in declaration order and the first one is the primary key.
// Map is the row mapper: it reads a single row through a Reader scoped to
// one role. Values returns the values of Columns[1:], in order, for writes.
type Schema[T any] struct {
	Entity  string
	Table   string
	Columns []string
	Map     func(r *codec.Reader) *T
	Values  func(e *T) []any
	ID      func(e *T) *int64
	SetID   func(e *T, id int64)
}

// Key returns the primary key column.
func (s *Schema[T]) Key() string { return s.Columns[0] }

// HasColumn reports whether column belongs to the table.
func (s *Schema[T]) HasColumn(column string) bool {
	for _, c := range s.Columns {
		if c == column {
			return true
		}
	}
	return false
}

func (s *Schema[T]) assignments(e *T) ([]query.Assignment, error) {
	values := s.Values(e)
	if len(values) != len(s.Columns)-1 {
		return nil, errs.Malformed("%s schema yields %d values for %d columns", s.Entity, len(values), len(s.Columns)-1)
	}
	out := make([]query.Assignment, len(values))
	for i, v := range values {
		out[i] = query.Assignment{Column: s.Columns[i+1], Value: v}
	}
	return out, nil
}

// Association is a to-one relation of T loaded with a LEFT OUTER JOIN.
type Association[T any] struct {
	// Role is the column prefix of the joined table's projection.
	Role string
	// Alias is the joined table's alias.
	Alias   string
	Table   string
	Columns []string
	// FK is the root column holding the associated id; PK is the joined key column.
	FK     string
	PK     string
	attach func(root *T, s codec.Scope) error
}

// Join declares that T references target through its fk column. set is
// called with the mapped target for every row whose join key is not NULL;
// rows with a NULL join key leave the association unset.
func Join[T, A any](role, alias, fk string, target *Schema[A], set func(root *T, assoc *A)) Association[T] {
	return Association[T]{
		Role:    role,
		Alias:   alias,
		Table:   target.Table,
		Columns: target.Columns,
		FK:      fk,
		PK:      target.Key(),
		attach: func(root *T, s codec.Scope) error {
			if s.IsNull(target.Key()) {
				return nil
			}
			r := codec.NewReader(s)
			assoc := target.Map(r)
			if err := r.Err(); err != nil {
				return err
			}
			set(root, assoc)
			return nil
		},
	}
}

// value unwraps an optional field into a driver argument.
func value[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
