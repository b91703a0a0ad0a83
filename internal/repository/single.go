package repository

import (
	"github.com/dame620/firstbackjhipstergradle/internal/executor"
	"github.com/dame620/firstbackjhipstergradle/internal/model"
	"github.com/rs/zerolog"
)

// UserRepository reads and writes jhi_user rows.
type UserRepository struct {
	*Store[model.User]
}

func NewUserRepository(exec executor.Executor, logger zerolog.Logger) (*UserRepository, error) {
	s, err := NewStore(exec, UserSchema, logger)
	if err != nil {
		return nil, err
	}
	return &UserRepository{Store: s}, nil
}

type BankRepository struct {
	*Store[model.Bank]
}

func NewBankRepository(exec executor.Executor, logger zerolog.Logger) (*BankRepository, error) {
	s, err := NewStore(exec, BankSchema, logger)
	if err != nil {
		return nil, err
	}
	return &BankRepository{Store: s}, nil
}

type CompanyRepository struct {
	*Store[model.Company]
}

func NewCompanyRepository(exec executor.Executor, logger zerolog.Logger) (*CompanyRepository, error) {
	s, err := NewStore(exec, CompanySchema, logger)
	if err != nil {
		return nil, err
	}
	return &CompanyRepository{Store: s}, nil
}
