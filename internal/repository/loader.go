package repository

import (
	"context"
	"fmt"

	"github.com/dame620/firstbackjhipstergradle/internal/codec"
	"github.com/dame620/firstbackjhipstergradle/internal/errs"
	"github.com/dame620/firstbackjhipstergradle/internal/executor"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/rs/zerolog"
)

// Loader reads entities of type T together with their to-one associations.
//
// The SELECT is planned once at construction: the root table aliased "e",
// every column projected as <role>_<column>, and one LEFT OUTER JOIN per
// association. The alias of every projected column is kept per role, so
// the demultiplexer never has to infer roles from alias strings.
//
// A Loader holds no mutable state and is safe for concurrent use.
type Loader[T any] struct {
	exec   executor.Executor
	schema *Schema[T]
	assocs []Association[T]
	plan   plan
	logger zerolog.Logger
}

type plan struct {
	sel   query.Select
	root  map[string]string
	joins []map[string]string
}

// NewLoader plans the joined SELECT for schema and assocs. It fails with a
// *errs.MalformedQueryError when two projected columns share an alias.
func NewLoader[T any](exec executor.Executor, schema *Schema[T], logger zerolog.Logger, assocs ...Association[T]) (*Loader[T], error) {
	p, err := newPlan(schema, assocs)
	if err != nil {
		return nil, fmt.Errorf("planning %s loader: %w", schema.Entity, err)
	}
	return &Loader[T]{
		exec:   exec,
		schema: schema,
		assocs: assocs,
		plan:   p,
		logger: logger.With().Str("entity", schema.Entity).Logger(),
	}, nil
}

func newPlan[T any](schema *Schema[T], assocs []Association[T]) (plan, error) {
	root := query.Table{Name: schema.Table, Alias: RootAlias}
	p := plan{
		sel:  query.Select{From: root},
		root: make(map[string]string, len(schema.Columns)),
	}
	seen := make(map[string]string)

	add := func(table query.Table, role string, columns []string) (map[string]string, error) {
		aliases := make(map[string]string, len(columns))
		for _, proj := range query.Project(table, role, columns...) {
			if owner, dup := seen[proj.Alias]; dup {
				return nil, errs.Malformed("alias %q of role %q collides with role %q", proj.Alias, role, owner)
			}
			seen[proj.Alias] = role
			aliases[proj.Column] = proj.Alias
			p.sel.Columns = append(p.sel.Columns, proj)
		}
		return aliases, nil
	}

	var err error
	if p.root, err = add(root, RootAlias, schema.Columns); err != nil {
		return plan{}, err
	}
	for _, a := range assocs {
		if !schema.HasColumn(a.FK) {
			return plan{}, errs.Malformed("%s has no column %q to join %s on", schema.Entity, a.FK, a.Role)
		}
		table := query.Table{Name: a.Table, Alias: a.Alias}
		aliases, err := add(table, a.Role, a.Columns)
		if err != nil {
			return plan{}, err
		}
		p.joins = append(p.joins, aliases)
		p.sel.Joins = append(p.sel.Joins, query.Join{Table: table, FK: a.FK, PK: a.PK})
	}
	return p, nil
}

// FindAll returns every entity on page. A nil page returns all rows.
func (l *Loader[T]) FindAll(ctx context.Context, page *query.Page) ([]*T, error) {
	return l.FindAllBy(ctx, page, nil)
}

// FindByID returns the entity with the given id, or nil when no row matches.
func (l *Loader[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var found *T
	err := l.Each(ctx, nil, query.Eq(l.schema.Key(), id), func(e *T) error {
		found = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// FindAllBy returns the entities matching where on page. Both are optional.
func (l *Loader[T]) FindAllBy(ctx context.Context, page *query.Page, where query.Predicate) ([]*T, error) {
	var out []*T
	err := l.Each(ctx, page, where, func(e *T) error {
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.logger.Debug().Int("count", len(out)).Msg("loaded entities")
	return out, nil
}

// Each streams the entities matching where on page to fn, in result order.
//
// Predicate and sort columns must belong to the root table. A page without
// sort keys is ordered by primary key so page boundaries are stable.
func (l *Loader[T]) Each(ctx context.Context, page *query.Page, where query.Predicate, fn func(*T) error) error {
	sel := l.plan.sel
	sel.Where = where
	if page != nil {
		p := *page
		if len(p.Sort) == 0 {
			p.Sort = []query.Order{{Column: l.schema.Key()}}
		}
		sel.Page = &p
	}
	if err := l.checkColumns(sel); err != nil {
		return err
	}

	sql, args, err := sel.Build(l.exec.Dialect())
	if err != nil {
		return err
	}

	return l.exec.Query(ctx, sql, args, func(row codec.Row) error {
		e, err := l.demux(row)
		if err != nil {
			return err
		}
		return fn(e)
	})
}

// Count returns the number of rows matching where.
func (l *Loader[T]) Count(ctx context.Context, where query.Predicate) (int64, error) {
	stmt := query.Count{From: l.plan.sel.From, Where: where}
	if err := l.checkColumns(query.Select{Where: where}); err != nil {
		return 0, err
	}
	sql, args, err := stmt.Build(l.exec.Dialect())
	if err != nil {
		return 0, err
	}

	var total int64
	err = l.exec.Query(ctx, sql, args, func(row codec.Row) error {
		n, err := codec.Get[int64](row, query.CountAlias)
		if err != nil {
			return err
		}
		if n != nil {
			total = *n
		}
		return nil
	})
	return total, err
}

func (l *Loader[T]) checkColumns(sel query.Select) error {
	if sel.Where != nil {
		for _, c := range sel.Where.Columns() {
			if !l.schema.HasColumn(c) {
				return errs.Malformed("%s has no column %q", l.schema.Entity, c)
			}
		}
	}
	if sel.Page != nil {
		for _, o := range sel.Page.Sort {
			if !l.schema.HasColumn(o.Column) {
				return errs.Malformed("cannot sort %s by unknown column %q", l.schema.Entity, o.Column)
			}
		}
	}
	return nil
}

// demux splits one joined row into the root entity and its associations.
func (l *Loader[T]) demux(row codec.Row) (*T, error) {
	r := codec.NewReader(codec.NewScope(row, RootAlias, l.plan.root))
	e := l.schema.Map(r)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("mapping %s: %w", l.schema.Entity, err)
	}
	for i, a := range l.assocs {
		if err := a.attach(e, codec.NewScope(row, a.Role, l.plan.joins[i])); err != nil {
			return nil, fmt.Errorf("mapping %s of %s: %w", a.Role, l.schema.Entity, err)
		}
	}
	return e, nil
}
