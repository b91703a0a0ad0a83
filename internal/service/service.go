// Package service contains the business logic.
//
// It sits between callers (the CLI) and the repository layer.
// It validates caller input, enforces the create/update id rules,
// performs partial updates, and calls repository methods to
// interact with the data
package service

import (
	"context"

	"github.com/dame620/firstbackjhipstergradle/internal/errs"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/dame620/firstbackjhipstergradle/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Store is the repository surface a CRUDService needs.
type Store[T any] interface {
	FindAll(ctx context.Context, page *query.Page) ([]*T, error)
	FindAllBy(ctx context.Context, page *query.Page, where query.Predicate) ([]*T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Count(ctx context.Context, where query.Predicate) (int64, error)
	Insert(ctx context.Context, e *T) (*T, error)
	Update(ctx context.Context, e *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Entity is implemented by the model pointer types.
type Entity[T any] interface {
	*T
	GetID() *int64
	Merge(patch *T)
}

// Paged is one page of entities plus the total number of rows.
type Paged[T any] struct {
	Items []*T  `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// CRUDService implements the operations shared by every entity.
type CRUDService[T any, PT Entity[T]] struct {
	entity string
	store  Store[T]
	logger zerolog.Logger
}

func NewCRUDService[T any, PT Entity[T]](entity string, store Store[T], logger zerolog.Logger) *CRUDService[T, PT] {
	return &CRUDService[T, PT]{
		entity: entity,
		store:  store,
		logger: logger.With().Str("entity", entity).Logger(),
	}
}

// Save creates e. A new entity cannot already have an id.
func (s *CRUDService[T, PT]) Save(ctx context.Context, e *T) (*T, error) {
	s.logger.Debug().Msg("request to save")
	if PT(e).GetID() != nil {
		return nil, &errs.ValidationError{
			Message: "A new " + s.entity + " cannot already have an ID",
			Errors:  []errs.FieldError{{Field: "id", Error: "must not be set"}},
		}
	}
	return s.store.Insert(ctx, e)
}

// Update overwrites the entity stored under id with e.
func (s *CRUDService[T, PT]) Update(ctx context.Context, id int64, e *T) (*T, error) {
	s.logger.Debug().Int64("id", id).Msg("request to update")
	if err := s.checkID(id, PT(e).GetID()); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, e)
}

// PartialUpdate copies the non-nil fields of patch onto the stored entity
// and saves it. A missing row fails with *errs.NotFoundError.
func (s *CRUDService[T, PT]) PartialUpdate(ctx context.Context, id int64, patch *T) (*T, error) {
	s.logger.Debug().Int64("id", id).Msg("request to partially update")
	if err := s.checkID(id, PT(patch).GetID()); err != nil {
		return nil, err
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errs.NewNotFoundError(s.entity, id)
	}

	PT(existing).Merge(patch)
	return s.store.Update(ctx, existing)
}

func (s *CRUDService[T, PT]) checkID(path int64, body *int64) error {
	if body == nil {
		return &errs.ValidationError{
			Message: "Invalid id",
			Errors:  []errs.FieldError{{Field: "id", Error: "is required"}},
		}
	}
	if *body != path {
		return &errs.ValidationError{
			Message: "Invalid ID",
			Errors:  []errs.FieldError{{Field: "id", Error: "does not match the requested id"}},
		}
	}
	return nil
}

// FindOne returns the entity with the given id.
func (s *CRUDService[T, PT]) FindOne(ctx context.Context, id int64) (*T, error) {
	s.logger.Debug().Int64("id", id).Msg("request to get")
	e, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errs.NewNotFoundError(s.entity, id)
	}
	return e, nil
}

// FindAll returns the entities on page, or every entity when page is nil.
func (s *CRUDService[T, PT]) FindAll(ctx context.Context, page *query.Page) ([]*T, error) {
	s.logger.Debug().Msg("request to get all")
	if page != nil {
		if err := validation.Struct(page); err != nil {
			return nil, err
		}
	}
	return s.store.FindAll(ctx, page)
}

// FindAllBy returns the entities matching where on page.
func (s *CRUDService[T, PT]) FindAllBy(ctx context.Context, page *query.Page, where query.Predicate) ([]*T, error) {
	if page != nil {
		if err := validation.Struct(page); err != nil {
			return nil, err
		}
	}
	return s.store.FindAllBy(ctx, page, where)
}

// Page loads one page and the total row count concurrently.
func (s *CRUDService[T, PT]) Page(ctx context.Context, page query.Page) (*Paged[T], error) {
	if err := validation.Struct(page); err != nil {
		return nil, err
	}

	out := &Paged[T]{Page: page.Index, Size: page.Size}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.store.FindAll(gctx, &page)
		out.Items = items
		return err
	})
	g.Go(func() error {
		total, err := s.store.Count(gctx, nil)
		out.Total = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of stored entities.
func (s *CRUDService[T, PT]) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx, nil)
}

// Delete removes the entity with the given id. Deleting a missing entity is not an error.
func (s *CRUDService[T, PT]) Delete(ctx context.Context, id int64) error {
	s.logger.Debug().Int64("id", id).Msg("request to delete")
	return s.store.Delete(ctx, id)
}
