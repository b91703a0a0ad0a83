package model

import "encoding/json"

// Manager belongs to a company and is linked to a user account.
type Manager struct {
	ID                 *int64  `json:"id"`
	RegistrationNumber *string `json:"registrationNumber"`
	Department         *string `json:"department"`
	UserID             *int64  `json:"userId"`
	CompanyID          *int64  `json:"companyId"`

	user    *User
	company *Company
}

// GetID returns the id, or nil for a nil receiver.
func (m *Manager) GetID() *int64 {
	if m == nil {
		return nil
	}
	return m.ID
}

func (m *Manager) User() *User       { return m.user }
func (m *Manager) Company() *Company { return m.company }

func (m *Manager) SetUser(u *User) {
	m.user = u
	m.UserID = idOf(u)
}

func (m *Manager) SetUserID(id *int64) {
	m.UserID = id
	if !keepIfSame(m.user, id) {
		m.user = nil
	}
}

func (m *Manager) SetCompany(c *Company) {
	m.company = c
	m.CompanyID = idOf(c)
}

func (m *Manager) SetCompanyID(id *int64) {
	m.CompanyID = id
	if !keepIfSame(m.company, id) {
		m.company = nil
	}
}

// Equal compares managers by id.
func (m *Manager) Equal(o *Manager) bool {
	return m != nil && o != nil && SameIdentity(m.ID, o.ID)
}

// Merge copies every non-nil field of patch onto m.
func (m *Manager) Merge(patch *Manager) {
	mergeField(&m.RegistrationNumber, patch.RegistrationNumber)
	mergeField(&m.Department, patch.Department)
	if patch.UserID != nil {
		m.SetUserID(Ptr(*patch.UserID))
	}
	if patch.CompanyID != nil {
		m.SetCompanyID(Ptr(*patch.CompanyID))
	}
}

func (m *Manager) MarshalJSON() ([]byte, error) {
	type plain Manager
	return json.Marshal(struct {
		*plain
		User *User `json:"user,omitempty"`
		Company *Company `json:"company,omitempty"`
	}{(*plain)(m), m.user, m.company})
}
