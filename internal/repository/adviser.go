package repository

import (
	"context"

	"github.com/dame620/firstbackjhipstergradle/internal/executor"
	"github.com/dame620/firstbackjhipstergradle/internal/model"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/rs/zerolog"
)

// AdviserRepository loads advisers with their user and bank.
type AdviserRepository struct {
	*Store[model.Adviser]
}

func NewAdviserRepository(exec executor.Executor, logger zerolog.Logger) (*AdviserRepository, error) {
	s, err := NewStore(exec, AdviserSchema, logger,
		Join("user", "e_user", "user_id", UserSchema, (*model.Adviser).SetUser),
		Join("bank", "bank", "bank_id", BankSchema, (*model.Adviser).SetBank),
	)
	if err != nil {
		return nil, err
	}
	return &AdviserRepository{Store: s}, nil
}

func (r *AdviserRepository) FindByUser(ctx context.Context, userID int64, page *query.Page) ([]*model.Adviser, error) {
	return r.FindAllBy(ctx, page, query.Eq("user_id", userID))
}

func (r *AdviserRepository) FindAllWhereUserIsNull(ctx context.Context) ([]*model.Adviser, error) {
	return r.FindAllBy(ctx, nil, query.IsNull("user_id"))
}

func (r *AdviserRepository) FindByBank(ctx context.Context, bankID int64, page *query.Page) ([]*model.Adviser, error) {
	return r.FindAllBy(ctx, page, query.Eq("bank_id", bankID))
}

func (r *AdviserRepository) FindAllWhereBankIsNull(ctx context.Context) ([]*model.Adviser, error) {
	return r.FindAllBy(ctx, nil, query.IsNull("bank_id"))
}
