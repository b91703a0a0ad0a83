package executor

import (
	"context"

	"github.com/dame620/firstbackjhipstergradle/internal/codec"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxConn is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type PgxConn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Pgx executes statements through pgx. It always renders the Postgres dialect.
type Pgx struct {
	conn PgxConn
}

func NewPgx(conn PgxConn) *Pgx {
	return &Pgx{conn: conn}
}

func (p *Pgx) Dialect() query.Dialect { return query.Postgres }

func (p *Pgx) Query(ctx context.Context, sql string, args []any, fn func(codec.Row) error) error {
	rows, err := p.conn.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return err
		}
		row := make(codec.Row, len(fields))
		for i, f := range fields {
			row[f.Name] = values[i]
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (p *Pgx) Exec(ctx context.Context, sql string, args []any) (int64, error) {
	tag, err := p.conn.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
