package repository

import (
	"context"

	"github.com/dame620/firstbackjhipstergradle/internal/codec"
	"github.com/dame620/firstbackjhipstergradle/internal/errs"
	"github.com/dame620/firstbackjhipstergradle/internal/executor"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/dame620/firstbackjhipstergradle/internal/sqlerr"
	"github.com/rs/zerolog"
)

// Upserter writes entities of type T. Only the root row is written;
// associations are persisted through their own foreign key ids.
//
// A write whose context is cancelled after the driver committed is still
// persisted; callers retrying such a write may observe it twice.
type Upserter[T any] struct {
	exec   executor.Executor
	schema *Schema[T]
	logger zerolog.Logger
}

func NewUpserter[T any](exec executor.Executor, schema *Schema[T], logger zerolog.Logger) *Upserter[T] {
	return &Upserter[T]{
		exec:   exec,
		schema: schema,
		logger: logger.With().Str("entity", schema.Entity).Logger(),
	}
}

// Save inserts e when it has no id and updates it otherwise.
func (u *Upserter[T]) Save(ctx context.Context, e *T) (*T, error) {
	if u.schema.ID(e) == nil {
		return u.Insert(ctx, e)
	}
	return u.Update(ctx, e)
}

// Insert writes e and returns a copy carrying the generated id. e itself is
// not modified. A caller-supplied id is written as is; a duplicate fails
// with *errs.PersistenceError.
func (u *Upserter[T]) Insert(ctx context.Context, e *T) (*T, error) {
	values, err := u.schema.assignments(e)
	if err != nil {
		return nil, err
	}
	if id := u.schema.ID(e); id != nil {
		values = append([]query.Assignment{{Column: u.schema.Key(), Value: *id}}, values...)
	}

	sql, args, err := query.Insert{
		Table:     u.schema.Table,
		Values:    values,
		Returning: u.schema.Key(),
	}.Build(u.exec.Dialect())
	if err != nil {
		return nil, err
	}

	var generated *int64
	err = u.exec.Query(ctx, sql, args, func(row codec.Row) error {
		generated, err = codec.Get[int64](row, u.schema.Key())
		return err
	})
	if err != nil {
		return nil, sqlerr.HandleError(u.schema.Entity, "insert", err)
	}
	if generated == nil {
		return nil, &errs.PersistenceError{
			Code:    errs.MakeUpperCaseWithUnderscores(u.schema.Entity + " error"),
			Message: "insert did not return a generated id",
			Entity:  u.schema.Entity,
			Op:      "insert",
		}
	}

	out := *e
	u.schema.SetID(&out, *generated)
	u.logger.Debug().Int64("id", *generated).Msg("inserted entity")
	return &out, nil
}

// Update overwrites every column of the row identified by e's id and
// returns e. It fails with *errs.NotFoundError when no row was affected.
func (u *Upserter[T]) Update(ctx context.Context, e *T) (*T, error) {
	id := u.schema.ID(e)
	if id == nil {
		return nil, errs.Malformed("update of %s without an id", u.schema.Entity)
	}
	set, err := u.schema.assignments(e)
	if err != nil {
		return nil, err
	}

	sql, args, err := query.Update{
		Table: u.schema.Table,
		Set:   set,
		Where: query.Eq(u.schema.Key(), *id),
	}.Build(u.exec.Dialect())
	if err != nil {
		return nil, err
	}

	affected, err := u.exec.Exec(ctx, sql, args)
	if err != nil {
		return nil, sqlerr.HandleError(u.schema.Entity, "update", err)
	}
	if affected <= 0 {
		return nil, errs.NewNotFoundError(u.schema.Entity, *id)
	}

	u.logger.Debug().Int64("id", *id).Msg("updated entity")
	return e, nil
}

// Delete removes the row with the given id. Deleting a missing row is not an error.
func (u *Upserter[T]) Delete(ctx context.Context, id int64) error {
	sql, args, err := query.Delete{
		Table: u.schema.Table,
		Where: query.Eq(u.schema.Key(), id),
	}.Build(u.exec.Dialect())
	if err != nil {
		return err
	}

	affected, err := u.exec.Exec(ctx, sql, args)
	if err != nil {
		return sqlerr.HandleError(u.schema.Entity, "delete", err)
	}
	u.logger.Debug().Int64("id", id).Int64("affected", affected).Msg("deleted entity")
	return nil
}
