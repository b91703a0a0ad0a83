package model

import (
	"encoding/json"
	"time"
)

// Appointment is a meeting between an adviser and a manager.
// State reports whether the appointment took place; ReportReason
// explains a postponement.
type Appointment struct {
	ID           *int64     `json:"id"`
	Reason       *string    `json:"reason"`
	Date         *time.Time `json:"date"`
	State        *bool      `json:"state"`
	ReportReason *string    `json:"reportreason"`
	AdviserID    *int64     `json:"adviserId"`
	ManagerID    *int64     `json:"managerId"`

	adviser *Adviser
	manager *Manager
}

// GetID returns the id, or nil for a nil receiver.
func (a *Appointment) GetID() *int64 {
	if a == nil {
		return nil
	}
	return a.ID
}

func (a *Appointment) Adviser() *Adviser { return a.adviser }
func (a *Appointment) Manager() *Manager { return a.manager }

func (a *Appointment) SetAdviser(v *Adviser) {
	a.adviser = v
	a.AdviserID = idOf(v)
}

func (a *Appointment) SetAdviserID(id *int64) {
	a.AdviserID = id
	if !keepIfSame(a.adviser, id) {
		a.adviser = nil
	}
}

func (a *Appointment) SetManager(v *Manager) {
	a.manager = v
	a.ManagerID = idOf(v)
}

func (a *Appointment) SetManagerID(id *int64) {
	a.ManagerID = id
	if !keepIfSame(a.manager, id) {
		a.manager = nil
	}
}

// Equal compares appointments by id.
func (a *Appointment) Equal(o *Appointment) bool {
	return a != nil && o != nil && SameIdentity(a.ID, o.ID)
}

// Merge copies every non-nil field of patch onto a.
func (a *Appointment) Merge(patch *Appointment) {
	mergeField(&a.Reason, patch.Reason)
	mergeField(&a.Date, patch.Date)
	mergeField(&a.State, patch.State)
	mergeField(&a.ReportReason, patch.ReportReason)
	if patch.AdviserID != nil {
		a.SetAdviserID(Ptr(*patch.AdviserID))
	}
	if patch.ManagerID != nil {
		a.SetManagerID(Ptr(*patch.ManagerID))
	}
}

func (a *Appointment) MarshalJSON() ([]byte, error) {
	type plain Appointment
	return json.Marshal(struct {
		*plain
		Adviser *Adviser `json:"adviser,omitempty"`
		Manager *Manager `json:"manager,omitempty"`
	}{(*plain)(a), a.adviser, a.manager})
}
