package repository

import (
	"context"

	"github.com/dame620/firstbackjhipstergradle/internal/executor"
	"github.com/dame620/firstbackjhipstergradle/internal/model"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/rs/zerolog"
)

// AppointmentRepository loads appointments with their adviser and manager.
// The joined adviser and manager carry their own foreign key ids but not
// their own associations.
type AppointmentRepository struct {
	*Store[model.Appointment]
}

func NewAppointmentRepository(exec executor.Executor, logger zerolog.Logger) (*AppointmentRepository, error) {
	s, err := NewStore(exec, AppointmentSchema, logger,
		Join("adviser", "adviser", "adviser_id", AdviserSchema, (*model.Appointment).SetAdviser),
		Join("manager", "manager", "manager_id", ManagerSchema, (*model.Appointment).SetManager),
	)
	if err != nil {
		return nil, err
	}
	return &AppointmentRepository{Store: s}, nil
}

func (r *AppointmentRepository) FindByAdviser(ctx context.Context, adviserID int64, page *query.Page) ([]*model.Appointment, error) {
	return r.FindAllBy(ctx, page, query.Eq("adviser_id", adviserID))
}

func (r *AppointmentRepository) FindAllWhereAdviserIsNull(ctx context.Context) ([]*model.Appointment, error) {
	return r.FindAllBy(ctx, nil, query.IsNull("adviser_id"))
}

func (r *AppointmentRepository) FindByManager(ctx context.Context, managerID int64, page *query.Page) ([]*model.Appointment, error) {
	return r.FindAllBy(ctx, page, query.Eq("manager_id", managerID))
}

func (r *AppointmentRepository) FindAllWhereManagerIsNull(ctx context.Context) ([]*model.Appointment, error) {
	return r.FindAllBy(ctx, nil, query.IsNull("manager_id"))
}
