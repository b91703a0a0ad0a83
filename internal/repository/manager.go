package repository

import (
	"context"

	"github.com/dame620/firstbackjhipstergradle/internal/executor"
	"github.com/dame620/firstbackjhipstergradle/internal/model"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/rs/zerolog"
)

// ManagerRepository loads managers with their user and company.
type ManagerRepository struct {
	*Store[model.Manager]
}

func NewManagerRepository(exec executor.Executor, logger zerolog.Logger) (*ManagerRepository, error) {
	s, err := NewStore(exec, ManagerSchema, logger,
		Join("user", "e_user", "user_id", UserSchema, (*model.Manager).SetUser),
		Join("company", "company", "company_id", CompanySchema, (*model.Manager).SetCompany),
	)
	if err != nil {
		return nil, err
	}
	return &ManagerRepository{Store: s}, nil
}

func (r *ManagerRepository) FindByUser(ctx context.Context, userID int64, page *query.Page) ([]*model.Manager, error) {
	return r.FindAllBy(ctx, page, query.Eq("user_id", userID))
}

func (r *ManagerRepository) FindAllWhereUserIsNull(ctx context.Context) ([]*model.Manager, error) {
	return r.FindAllBy(ctx, nil, query.IsNull("user_id"))
}

func (r *ManagerRepository) FindByCompany(ctx context.Context, companyID int64, page *query.Page) ([]*model.Manager, error) {
	return r.FindAllBy(ctx, page, query.Eq("company_id", companyID))
}

func (r *ManagerRepository) FindAllWhereCompanyIsNull(ctx context.Context) ([]*model.Manager, error) {
	return r.FindAllBy(ctx, nil, query.IsNull("company_id"))
}
