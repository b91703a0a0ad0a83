package executor

import (
	"context"
	"database/sql"

	"github.com/dame620/firstbackjhipstergradle/internal/codec"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
)

// SQLConn is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type SQLConn interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SQL executes statements through database/sql.
type SQL struct {
	conn    SQLConn
	dialect query.Dialect
}

func NewSQL(conn SQLConn, dialect query.Dialect) *SQL {
	return &SQL{conn: conn, dialect: dialect}
}

func (s *SQL) Dialect() query.Dialect { return s.dialect }

func (s *SQL) Query(ctx context.Context, sql string, args []any, fn func(codec.Row) error) error {
	rows, err := s.conn.QueryContext(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return err
	}
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return err
		}
		row := make(codec.Row, len(columns))
		for i, c := range columns {
			row[c] = values[i]
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *SQL) Exec(ctx context.Context, sql string, args []any) (int64, error) {
	res, err := s.conn.ExecContext(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
