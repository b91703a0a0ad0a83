// Package executor is the execution client every loader goes through.
//
// An Executor runs a rendered statement and either streams result rows
// (Query) or reports the affected row count (Exec). Implementations wrap
// a pgx pool or transaction (Pgx) or any database/sql handle (SQL), and
// must be safe for concurrent use. Cancelling ctx aborts the statement
// in the driver.
package executor

import (
	"context"

	"github.com/dame620/firstbackjhipstergradle/internal/codec"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
)

// Executor runs SQL against a database.
type Executor interface {
	// Dialect is the placeholder dialect statements must be rendered in.
	Dialect() query.Dialect
	// Query runs sql and calls fn for every row in result order.
	// Iteration stops at the first error returned by fn.
	Query(ctx context.Context, sql string, args []any, fn func(codec.Row) error) error
	// Exec runs a statement that returns no rows and reports the affected row count.
	Exec(ctx context.Context, sql string, args []any) (int64, error)
}
