package repository

import (
	"github.com/dame620/firstbackjhipstergradle/internal/executor"
	"github.com/rs/zerolog"
)

// Store combines reads and writes for one entity type.
type Store[T any] struct {
	*Loader[T]
	*Upserter[T]
}

// NewStore builds the loader and upserter for schema.
func NewStore[T any](exec executor.Executor, schema *Schema[T], logger zerolog.Logger, assocs ...Association[T]) (*Store[T], error) {
	loader, err := NewLoader(exec, schema, logger, assocs...)
	if err != nil {
		return nil, err
	}
	return &Store[T]{
		Loader:   loader,
		Upserter: NewUpserter(exec, schema, logger),
	}, nil
}
