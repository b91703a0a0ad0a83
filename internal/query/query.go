// Package query builds SQL statements from a small structural AST.
//
// Statements are values (Select, Count, Insert, Update, Delete) rendered
// for a Dialect into SQL text plus bound arguments. Filters are composed
// from Predicate values, never by concatenating SQL fragments, and every
// value travels as a placeholder argument.
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dame620/firstbackjhipstergradle/internal/errs"
)

// Dialect controls the placeholder syntax of a target database.
type Dialect interface {
	Name() string
	// Placeholder returns the marker for the n-th (1-based) argument.
	Placeholder(n int) string
}

type postgresDialect struct{}

func (postgresDialect) Name() string             { return "postgres" }
func (postgresDialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

type sqliteDialect struct{}

func (sqliteDialect) Name() string           { return "sqlite" }
func (sqliteDialect) Placeholder(int) string { return "?" }

var (
	// Postgres numbers its placeholders: $1, $2, ...
	Postgres Dialect = postgresDialect{}
	// SQLite uses positional ? placeholders.
	SQLite Dialect = sqliteDialect{}
)

// DialectFor returns the dialect registered under name.
func DialectFor(name string) (Dialect, error) {
	switch name {
	case "postgres", "pgx":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", name)
	}
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidIdentifier reports whether name can be rendered unquoted.
func ValidIdentifier(name string) bool {
	return identifier.MatchString(name)
}

func checkIdentifier(kind, name string) error {
	if !ValidIdentifier(name) {
		return errs.Malformed("invalid %s identifier %q", kind, name)
	}
	return nil
}

// builder accumulates SQL text and its arguments.
type builder struct {
	sb      strings.Builder
	args    []any
	dialect Dialect
}

func newBuilder(d Dialect) *builder {
	if d == nil {
		d = Postgres
	}
	return &builder{dialect: d}
}

func (b *builder) write(parts ...string) {
	for _, p := range parts {
		b.sb.WriteString(p)
	}
}

// arg binds v and returns its placeholder.
func (b *builder) arg(v any) string {
	b.args = append(b.args, v)
	return b.dialect.Placeholder(len(b.args))
}

func (b *builder) result() (string, []any) {
	return b.sb.String(), b.args
}

// qualify renders column, prefixed with qualifier when one is set.
func qualify(qualifier, column string) string {
	if qualifier == "" {
		return column
	}
	return qualifier + "." + column
}
