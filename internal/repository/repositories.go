// Package repository handles all interactions with the database.
//
// Every entity is described once by a declarative Schema; a single generic
// Loader turns it into a joined SELECT and demultiplexes the rows, and a
// single generic Upserter decides between INSERT and UPDATE on save.
package repository

import (
	"github.com/dame620/firstbackjhipstergradle/internal/executor"
	"github.com/dame620/firstbackjhipstergradle/internal/server"
	"github.com/rs/zerolog"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	User        *UserRepository
	Bank        *BankRepository
	Company     *CompanyRepository
	Adviser     *AdviserRepository
	Manager     *ManagerRepository
	Appointment *AppointmentRepository
}

// NewRepositories builds every repository on the server's executor.
func NewRepositories(s *server.Server) (*Repositories, error) {
	return New(s.Executor, *s.Logger)
}

// New builds every repository on exec.
func New(exec executor.Executor, logger zerolog.Logger) (*Repositories, error) {
	logger = logger.With().Str("layer", "repository").Logger()

	repos := &Repositories{}
	var err error
	if repos.User, err = NewUserRepository(exec, logger); err != nil {
		return nil, err
	}
	if repos.Bank, err = NewBankRepository(exec, logger); err != nil {
		return nil, err
	}
	if repos.Company, err = NewCompanyRepository(exec, logger); err != nil {
		return nil, err
	}
	if repos.Adviser, err = NewAdviserRepository(exec, logger); err != nil {
		return nil, err
	}
	if repos.Manager, err = NewManagerRepository(exec, logger); err != nil {
		return nil, err
	}
	if repos.Appointment, err = NewAppointmentRepository(exec, logger); err != nil {
		return nil, err
	}
	return repos, nil
}
