package query

import (
	"github.com/dame620/firstbackjhipstergradle/internal/errs"
)

// Predicate is a boolean filter over the root table's columns.
//
// The set of predicates is closed: values are built with Eq, Neq, Lt, Lte,
// Gt, Gte, In, IsNull, NotNull, And and Or. A nil Predicate means "no filter".
type Predicate interface {
	// Columns lists every column the predicate references.
	Columns() []string
	render(b *builder, qualifier string) error
}

// Op is a binary comparison operator.
type Op string

const (
	OpEq  Op = "="
	OpNeq Op = "<>"
	OpLt  Op = "<"
	OpLte Op = "<="
	OpGt  Op = ">"
	OpGte Op = ">="
)

type comparison struct {
	column string
	op     Op
	value  any
}

func Eq(column string, value any) Predicate  { return comparison{column, OpEq, value} }
func Neq(column string, value any) Predicate { return comparison{column, OpNeq, value} }
func Lt(column string, value any) Predicate  { return comparison{column, OpLt, value} }
func Lte(column string, value any) Predicate { return comparison{column, OpLte, value} }
func Gt(column string, value any) Predicate  { return comparison{column, OpGt, value} }
func Gte(column string, value any) Predicate { return comparison{column, OpGte, value} }

func (c comparison) Columns() []string { return []string{c.column} }

func (c comparison) render(b *builder, qualifier string) error {
	if err := checkIdentifier("column", c.column); err != nil {
		return err
	}
	if c.value == nil {
		return errs.Malformed("comparison on %q with nil value, use IsNull", c.column)
	}
	b.write(qualify(qualifier, c.column), " ", string(c.op), " ", b.arg(c.value))
	return nil
}

type nullCheck struct {
	column string
	not    bool
}

// IsNull matches rows where column is NULL.
func IsNull(column string) Predicate { return nullCheck{column: column} }

// NotNull matches rows where column is not NULL.
func NotNull(column string) Predicate { return nullCheck{column: column, not: true} }

func (n nullCheck) Columns() []string { return []string{n.column} }

func (n nullCheck) render(b *builder, qualifier string) error {
	if err := checkIdentifier("column", n.column); err != nil {
		return err
	}
	if n.not {
		b.write(qualify(qualifier, n.column), " IS NOT NULL")
	} else {
		b.write(qualify(qualifier, n.column), " IS NULL")
	}
	return nil
}

type inList struct {
	column string
	values []any
}

// In matches rows where column equals one of values.
func In(column string, values ...any) Predicate { return inList{column, values} }

func (i inList) Columns() []string { return []string{i.column} }

func (i inList) render(b *builder, qualifier string) error {
	if err := checkIdentifier("column", i.column); err != nil {
		return err
	}
	if len(i.values) == 0 {
		return errs.Malformed("IN on %q with an empty value list", i.column)
	}
	b.write(qualify(qualifier, i.column), " IN (")
	for n, v := range i.values {
		if v == nil {
			return errs.Malformed("IN on %q contains a nil value", i.column)
		}
		if n > 0 {
			b.write(", ")
		}
		b.write(b.arg(v))
	}
	b.write(")")
	return nil
}

type junction struct {
	op    string
	preds []Predicate
}

// And matches rows satisfying every predicate.
func And(preds ...Predicate) Predicate { return junction{"AND", preds} }

// Or matches rows satisfying at least one predicate.
func Or(preds ...Predicate) Predicate { return junction{"OR", preds} }

func (j junction) Columns() []string {
	var out []string
	for _, p := range j.preds {
		if p != nil {
			out = append(out, p.Columns()...)
		}
	}
	return out
}

func (j junction) render(b *builder, qualifier string) error {
	if len(j.preds) == 0 {
		return errs.Malformed("%s with no operands", j.op)
	}
	if len(j.preds) == 1 {
		return renderPredicate(b, j.preds[0], qualifier)
	}
	b.write("(")
	for n, p := range j.preds {
		if n > 0 {
			b.write(" ", j.op, " ")
		}
		if err := renderPredicate(b, p, qualifier); err != nil {
			return err
		}
	}
	b.write(")")
	return nil
}

func renderPredicate(b *builder, p Predicate, qualifier string) error {
	if p == nil {
		return errs.Malformed("nil predicate operand")
	}
	return p.render(b, qualifier)
}
