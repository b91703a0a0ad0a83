package query

import (
	"math"
	"strconv"

	"github.com/dame620/firstbackjhipstergradle/internal/errs"
)

// Join is a LEFT OUTER JOIN of Table on <root>.<FK> = <Table.Alias>.<PK>.
type Join struct {
	Table Table
	FK    string
	PK    string
}

// Order is one ORDER BY key on a root column.
type Order struct {
	Column string `json:"column" validate:"required"`
	Desc   bool   `json:"desc"`
}

// Page selects a zero-based page of Size rows. Sort keys apply to root columns.
type Page struct {
	Index int     `json:"page" validate:"min=0"`
	Size  int     `json:"size" validate:"min=1,max=2000"`
	Sort  []Order `json:"sort" validate:"dive"`
}

// Offset returns the number of rows skipped before this page.
func (p Page) Offset() int64 {
	return int64(p.Index) * int64(p.Size)
}

// Select is a SELECT over a root table with optional joins, filter and page.
type Select struct {
	From    Table
	Columns []Projection
	Joins   []Join
	Where   Predicate
	Page    *Page
}

// Build renders the statement for d.
func (s Select) Build(d Dialect) (string, []any, error) {
	if err := checkTable(s.From); err != nil {
		return "", nil, err
	}
	if len(s.Columns) == 0 {
		return "", nil, errs.Malformed("select from %q has no columns", s.From.Name)
	}

	b := newBuilder(d)
	seen := make(map[string]struct{}, len(s.Columns))
	b.write("SELECT ")
	for n, p := range s.Columns {
		if err := checkProjection(p); err != nil {
			return "", nil, err
		}
		if _, dup := seen[p.Alias]; dup {
			return "", nil, errs.Malformed("duplicate column alias %q", p.Alias)
		}
		seen[p.Alias] = struct{}{}
		if n > 0 {
			b.write(", ")
		}
		b.write(p.render())
	}

	b.write(" FROM ", s.From.Name, " ", s.From.Alias)

	tables := map[string]struct{}{s.From.Alias: {}}
	for _, j := range s.Joins {
		if err := checkTable(j.Table); err != nil {
			return "", nil, err
		}
		if err := checkIdentifier("column", j.FK); err != nil {
			return "", nil, err
		}
		if err := checkIdentifier("column", j.PK); err != nil {
			return "", nil, err
		}
		if _, dup := tables[j.Table.Alias]; dup {
			return "", nil, errs.Malformed("duplicate table alias %q", j.Table.Alias)
		}
		tables[j.Table.Alias] = struct{}{}
		b.write(" LEFT OUTER JOIN ", j.Table.Name, " ", j.Table.Alias,
			" ON ", qualify(s.From.Alias, j.FK), " = ", qualify(j.Table.Alias, j.PK))
	}

	if err := writeWhere(b, s.Where, s.From.Alias); err != nil {
		return "", nil, err
	}

	if s.Page != nil {
		if err := writePage(b, *s.Page, s.From.Alias); err != nil {
			return "", nil, err
		}
	}

	sql, args := b.result()
	return sql, args, nil
}

// Count is SELECT COUNT(*) over a root table with an optional filter.
type Count struct {
	From  Table
	Where Predicate
}

// CountAlias is the column alias of the count result.
const CountAlias = "total"

// Build renders the statement for d.
func (c Count) Build(d Dialect) (string, []any, error) {
	if err := checkTable(c.From); err != nil {
		return "", nil, err
	}
	b := newBuilder(d)
	b.write("SELECT COUNT(*) AS ", CountAlias, " FROM ", c.From.Name, " ", c.From.Alias)
	if err := writeWhere(b, c.Where, c.From.Alias); err != nil {
		return "", nil, err
	}
	sql, args := b.result()
	return sql, args, nil
}

// Assignment is one column = value pair of an INSERT or UPDATE.
type Assignment struct {
	Column string
	Value  any
}

// Insert is INSERT INTO Table (...) VALUES (...) [RETURNING Returning].
type Insert struct {
	Table     string
	Values    []Assignment
	Returning string
}

// Build renders the statement for d.
func (i Insert) Build(d Dialect) (string, []any, error) {
	if err := checkIdentifier("table", i.Table); err != nil {
		return "", nil, err
	}
	if len(i.Values) == 0 {
		return "", nil, errs.Malformed("insert into %q has no values", i.Table)
	}

	b := newBuilder(d)
	b.write("INSERT INTO ", i.Table, " (")
	for n, a := range i.Values {
		if err := checkIdentifier("column", a.Column); err != nil {
			return "", nil, err
		}
		if n > 0 {
			b.write(", ")
		}
		b.write(a.Column)
	}
	b.write(") VALUES (")
	for n, a := range i.Values {
		if n > 0 {
			b.write(", ")
		}
		b.write(b.arg(a.Value))
	}
	b.write(")")

	if i.Returning != "" {
		if err := checkIdentifier("column", i.Returning); err != nil {
			return "", nil, err
		}
		b.write(" RETURNING ", i.Returning)
	}
	sql, args := b.result()
	return sql, args, nil
}

// Update is UPDATE Table SET ... WHERE Where. A nil Where is rejected.
type Update struct {
	Table string
	Set   []Assignment
	Where Predicate
}

// Build renders the statement for d.
func (u Update) Build(d Dialect) (string, []any, error) {
	if err := checkIdentifier("table", u.Table); err != nil {
		return "", nil, err
	}
	if len(u.Set) == 0 {
		return "", nil, errs.Malformed("update of %q sets no columns", u.Table)
	}
	if u.Where == nil {
		return "", nil, errs.Malformed("update of %q without a filter", u.Table)
	}

	b := newBuilder(d)
	b.write("UPDATE ", u.Table, " SET ")
	for n, a := range u.Set {
		if err := checkIdentifier("column", a.Column); err != nil {
			return "", nil, err
		}
		if n > 0 {
			b.write(", ")
		}
		b.write(a.Column, " = ", b.arg(a.Value))
	}
	if err := writeWhere(b, u.Where, ""); err != nil {
		return "", nil, err
	}
	sql, args := b.result()
	return sql, args, nil
}

// Delete is DELETE FROM Table WHERE Where. A nil Where is rejected.
type Delete struct {
	Table string
	Where Predicate
}

// Build renders the statement for d.
func (del Delete) Build(d Dialect) (string, []any, error) {
	if err := checkIdentifier("table", del.Table); err != nil {
		return "", nil, err
	}
	if del.Where == nil {
		return "", nil, errs.Malformed("delete from %q without a filter", del.Table)
	}
	b := newBuilder(d)
	b.write("DELETE FROM ", del.Table)
	if err := writeWhere(b, del.Where, ""); err != nil {
		return "", nil, err
	}
	sql, args := b.result()
	return sql, args, nil
}

func writeWhere(b *builder, p Predicate, qualifier string) error {
	if p == nil {
		return nil
	}
	b.write(" WHERE ")
	return p.render(b, qualifier)
}

func writePage(b *builder, p Page, qualifier string) error {
	if p.Index < 0 {
		return errs.Malformed("page index %d is negative", p.Index)
	}
	if p.Size < 1 {
		return errs.Malformed("page size %d must be positive", p.Size)
	}
	if int64(p.Index) > math.MaxInt64/int64(p.Size) {
		return errs.Malformed("page %d of size %d overflows the row offset", p.Index, p.Size)
	}
	for n, o := range p.Sort {
		if err := checkIdentifier("sort column", o.Column); err != nil {
			return err
		}
		if n == 0 {
			b.write(" ORDER BY ")
		} else {
			b.write(", ")
		}
		dir := " ASC"
		if o.Desc {
			dir = " DESC"
		}
		b.write(qualify(qualifier, o.Column), dir)
	}
	b.write(" LIMIT ", strconv.Itoa(p.Size), " OFFSET ", strconv.FormatInt(p.Offset(), 10))
	return nil
}

func checkTable(t Table) error {
	if err := checkIdentifier("table", t.Name); err != nil {
		return err
	}
	return checkIdentifier("table alias", t.Alias)
}

func checkProjection(p Projection) error {
	if err := checkIdentifier("table alias", p.Table); err != nil {
		return err
	}
	if err := checkIdentifier("column", p.Column); err != nil {
		return err
	}
	return checkIdentifier("column alias", p.Alias)
}
