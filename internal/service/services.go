package service

import (
	"context"

	"github.com/dame620/firstbackjhipstergradle/internal/model"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/dame620/firstbackjhipstergradle/internal/repository"
	"github.com/dame620/firstbackjhipstergradle/internal/server"
	"github.com/rs/zerolog"
)

type (
	UserService    = CRUDService[model.User, *model.User]
	BankService    = CRUDService[model.Bank, *model.Bank]
	CompanyService = CRUDService[model.Company, *model.Company]
)

type AdviserService struct {
	*CRUDService[model.Adviser, *model.Adviser]
	repo *repository.AdviserRepository
}

func (s *AdviserService) FindByUser(ctx context.Context, userID int64, page *query.Page) ([]*model.Adviser, error) {
	return s.FindAllBy(ctx, page, query.Eq("user_id", userID))
}

// FindAllWhereUserIsNull returns the advisers not linked to a user account.
func (s *AdviserService) FindAllWhereUserIsNull(ctx context.Context) ([]*model.Adviser, error) {
	return s.repo.FindAllWhereUserIsNull(ctx)
}

func (s *AdviserService) FindByBank(ctx context.Context, bankID int64, page *query.Page) ([]*model.Adviser, error) {
	return s.FindAllBy(ctx, page, query.Eq("bank_id", bankID))
}

func (s *AdviserService) FindAllWhereBankIsNull(ctx context.Context) ([]*model.Adviser, error) {
	return s.repo.FindAllWhereBankIsNull(ctx)
}

type ManagerService struct {
	*CRUDService[model.Manager, *model.Manager]
	repo *repository.ManagerRepository
}

func (s *ManagerService) FindByUser(ctx context.Context, userID int64, page *query.Page) ([]*model.Manager, error) {
	return s.FindAllBy(ctx, page, query.Eq("user_id", userID))
}

// FindAllWhereUserIsNull returns the managers not linked to a user account.
func (s *ManagerService) FindAllWhereUserIsNull(ctx context.Context) ([]*model.Manager, error) {
	return s.repo.FindAllWhereUserIsNull(ctx)
}

func (s *ManagerService) FindByCompany(ctx context.Context, companyID int64, page *query.Page) ([]*model.Manager, error) {
	return s.FindAllBy(ctx, page, query.Eq("company_id", companyID))
}

func (s *ManagerService) FindAllWhereCompanyIsNull(ctx context.Context) ([]*model.Manager, error) {
	return s.repo.FindAllWhereCompanyIsNull(ctx)
}

type AppointmentService struct {
	*CRUDService[model.Appointment, *model.Appointment]
	repo *repository.AppointmentRepository
}

func (s *AppointmentService) FindByAdviser(ctx context.Context, adviserID int64, page *query.Page) ([]*model.Appointment, error) {
	return s.FindAllBy(ctx, page, query.Eq("adviser_id", adviserID))
}

func (s *AppointmentService) FindAllWhereAdviserIsNull(ctx context.Context) ([]*model.Appointment, error) {
	return s.repo.FindAllWhereAdviserIsNull(ctx)
}

func (s *AppointmentService) FindByManager(ctx context.Context, managerID int64, page *query.Page) ([]*model.Appointment, error) {
	return s.FindAllBy(ctx, page, query.Eq("manager_id", managerID))
}

// FindAllWhereManagerIsNull returns the appointments no manager was assigned to.
func (s *AppointmentService) FindAllWhereManagerIsNull(ctx context.Context) ([]*model.Appointment, error) {
	return s.repo.FindAllWhereManagerIsNull(ctx)
}

type Services struct {
	User        *UserService
	Bank        *BankService
	Company     *CompanyService
	Adviser     *AdviserService
	Manager     *ManagerService
	Appointment *AppointmentService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return New(repos, *s.Logger), nil
}

// New builds every service on repos.
func New(repos *repository.Repositories, logger zerolog.Logger) *Services {
	logger = logger.With().Str("layer", "service").Logger()

	return &Services{
		User:    NewCRUDService[model.User, *model.User]("User", repos.User, logger),
		Bank:    NewCRUDService[model.Bank, *model.Bank]("Bank", repos.Bank, logger),
		Company: NewCRUDService[model.Company, *model.Company]("Company", repos.Company, logger),
		Adviser: &AdviserService{
			CRUDService: NewCRUDService[model.Adviser, *model.Adviser]("Adviser", repos.Adviser, logger),
			repo:        repos.Adviser,
		},
		Manager: &ManagerService{
			CRUDService: NewCRUDService[model.Manager, *model.Manager]("Manager", repos.Manager, logger),
			repo:        repos.Manager,
		},
		Appointment: &AppointmentService{
			CRUDService: NewCRUDService[model.Appointment, *model.Appointment]("Appointment", repos.Appointment, logger),
			repo:        repos.Appointment,
		},
	}
}
