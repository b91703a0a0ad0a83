package executor

import (
	"context"
	"testing"

	"github.com/dame620/firstbackjhipstergradle/internal/codec"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	fields []pgconn.FieldDescription
	data   [][]any
	pos    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return r.fields }
func (r *fakeRows) Scan(...any) error                            { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

type fakeConn struct {
	rows    *fakeRows
	sql     string
	args    []any
	tagText string
}

func (c *fakeConn) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.sql, c.args = sql, args
	return c.rows, nil
}

func (c *fakeConn) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sql, c.args = sql, args
	return pgconn.NewCommandTag(c.tagText), nil
}

func TestPgxQueryMapsFieldNames(t *testing.T) {
	rows := &fakeRows{
		fields: []pgconn.FieldDescription{{Name: "e_id"}, {Name: "bank_id"}},
		data:   [][]any{{int64(1), nil}, {int64(2), int64(9)}},
	}
	conn := &fakeConn{rows: rows}

	var got []codec.Row
	err := NewPgx(conn).Query(context.Background(), "SELECT ...", []any{int64(1)}, func(r codec.Row) error {
		got = append(got, r)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, rows.closed)
	assert.Equal(t, []any{int64(1)}, conn.args)
	assert.Equal(t, []codec.Row{
		{"e_id": int64(1), "bank_id": nil},
		{"e_id": int64(2), "bank_id": int64(9)},
	}, got)
}

func TestPgxExecReadsCommandTag(t *testing.T) {
	conn := &fakeConn{tagText: "UPDATE 3"}

	n, err := NewPgx(conn).Exec(context.Background(), "UPDATE adviser SET department = $1", []any{"x"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, query.Postgres, NewPgx(conn).Dialect())
}
