package repository

import (
	"github.com/dame620/firstbackjhipstergradle/internal/codec"
	"github.com/dame620/firstbackjhipstergradle/internal/model"
)

// UserSchema maps the externally owned jhi_user table.
var UserSchema = &Schema[model.User]{
	Entity:  "User",
	Table:   "jhi_user",
	Columns: []string{"id", "login", "first_name", "last_name", "email", "activated"},
	Map: func(r *codec.Reader) *model.User {
		return &model.User{
			ID:        r.Int64("id"),
			Login:     r.String("login"),
			FirstName: r.String("first_name"),
			LastName:  r.String("last_name"),
			Email:     r.String("email"),
			Activated: r.Bool("activated"),
		}
	},
	Values: func(u *model.User) []any {
		return []any{value(u.Login), value(u.FirstName), value(u.LastName), value(u.Email), value(u.Activated)}
	},
	ID:    func(u *model.User) *int64 { return u.ID },
	SetID: func(u *model.User, id int64) { u.ID = &id },
}

var BankSchema = &Schema[model.Bank]{
	Entity:  "Bank",
	Table:   "bank",
	Columns: []string{"id", "name", "address"},
	Map: func(r *codec.Reader) *model.Bank {
		return &model.Bank{
			ID:      r.Int64("id"),
			Name:    r.String("name"),
			Address: r.String("address"),
		}
	},
	Values: func(b *model.Bank) []any {
		return []any{value(b.Name), value(b.Address)}
	},
	ID:    func(b *model.Bank) *int64 { return b.ID },
	SetID: func(b *model.Bank, id int64) { b.ID = &id },
}

var CompanySchema = &Schema[model.Company]{
	Entity:  "Company",
	Table:   "company",
	Columns: []string{"id", "name", "ninea", "rc", "address"},
	Map: func(r *codec.Reader) *model.Company {
		return &model.Company{
			ID:      r.Int64("id"),
			Name:    r.String("name"),
			Ninea:   r.String("ninea"),
			Rc:      r.String("rc"),
			Address: r.String("address"),
		}
	},
	Values: func(c *model.Company) []any {
		return []any{value(c.Name), value(c.Ninea), value(c.Rc), value(c.Address)}
	},
	ID:    func(c *model.Company) *int64 { return c.ID },
	SetID: func(c *model.Company, id int64) { c.ID = &id },
}

var AdviserSchema = &Schema[model.Adviser]{
	Entity:  "Adviser",
	Table:   "adviser",
	Columns: []string{"id", "registration_number", "company", "department", "user_id", "bank_id"},
	Map: func(r *codec.Reader) *model.Adviser {
		return &model.Adviser{
			ID:                 r.Int64("id"),
			RegistrationNumber: r.String("registration_number"),
			Company:            r.String("company"),
			Department:         r.String("department"),
			UserID:             r.Int64("user_id"),
			BankID:             r.Int64("bank_id"),
		}
	},
	Values: func(a *model.Adviser) []any {
		return []any{value(a.RegistrationNumber), value(a.Company), value(a.Department), value(a.UserID), value(a.BankID)}
	},
	ID:    func(a *model.Adviser) *int64 { return a.ID },
	SetID: func(a *model.Adviser, id int64) { a.ID = &id },
}

var ManagerSchema = &Schema[model.Manager]{
	Entity:  "Manager",
	Table:   "manager",
	Columns: []string{"id", "registration_number", "department", "user_id", "company_id"},
	Map: func(r *codec.Reader) *model.Manager {
		return &model.Manager{
			ID:                 r.Int64("id"),
			RegistrationNumber: r.String("registration_number"),
			Department:         r.String("department"),
			UserID:             r.Int64("user_id"),
			CompanyID:          r.Int64("company_id"),
		}
	},
	Values: func(m *model.Manager) []any {
		return []any{value(m.RegistrationNumber), value(m.Department), value(m.UserID), value(m.CompanyID)}
	},
	ID:    func(m *model.Manager) *int64 { return m.ID },
	SetID: func(m *model.Manager, id int64) { m.ID = &id },
}

var AppointmentSchema = &Schema[model.Appointment]{
	Entity:  "Appointment",
	Table:   "appointment",
	Columns: []string{"id", "reason", "date", "state", "reportreason", "adviser_id", "manager_id"},
	Map: func(r *codec.Reader) *model.Appointment {
		return &model.Appointment{
			ID:           r.Int64("id"),
			Reason:       r.String("reason"),
			Date:         r.Time("date"),
			State:        r.Bool("state"),
			ReportReason: r.String("reportreason"),
			AdviserID:    r.Int64("adviser_id"),
			ManagerID:    r.Int64("manager_id"),
		}
	},
	Values: func(a *model.Appointment) []any {
		return []any{value(a.Reason), value(a.Date), value(a.State), value(a.ReportReason), value(a.AdviserID), value(a.ManagerID)}
	},
	ID:    func(a *model.Appointment) *int64 { return a.ID },
	SetID: func(a *model.Appointment, id int64) { a.ID = &id },
}
