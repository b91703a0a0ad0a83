package model

import "encoding/json"

// Adviser is a bank adviser linked to a user account and, optionally, a bank.
type Adviser struct {
	ID                 *int64  `json:"id"`
	RegistrationNumber *string `json:"registrationNumber"`
	Company            *string `json:"company"`
	Department         *string `json:"department"`
	UserID             *int64  `json:"userId"`
	BankID             *int64  `json:"bankId"`

	user *User
	bank *Bank
}

// GetID returns the id, or nil for a nil receiver.
func (a *Adviser) GetID() *int64 {
	if a == nil {
		return nil
	}
	return a.ID
}

// User returns the user loaded with this adviser, or nil.
func (a *Adviser) User() *User { return a.user }

// Bank returns the bank loaded with this adviser, or nil.
func (a *Adviser) Bank() *Bank { return a.bank }

// SetUser attaches u and sets UserID to u's id (nil when u is nil).
func (a *Adviser) SetUser(u *User) {
	a.user = u
	a.UserID = idOf(u)
}

// SetUserID sets the foreign key, dropping a loaded user with a different id.
func (a *Adviser) SetUserID(id *int64) {
	a.UserID = id
	if !keepIfSame(a.user, id) {
		a.user = nil
	}
}

// SetBank attaches b and sets BankID to b's id (nil when b is nil).
func (a *Adviser) SetBank(b *Bank) {
	a.bank = b
	a.BankID = idOf(b)
}

// SetBankID sets the foreign key, dropping a loaded bank with a different id.
func (a *Adviser) SetBankID(id *int64) {
	a.BankID = id
	if !keepIfSame(a.bank, id) {
		a.bank = nil
	}
}

// Equal compares advisers by id.
func (a *Adviser) Equal(o *Adviser) bool {
	return a != nil && o != nil && SameIdentity(a.ID, o.ID)
}

// Merge copies every non-nil field of patch onto a. Foreign keys go
// through their setters so loaded associations stay consistent.
func (a *Adviser) Merge(patch *Adviser) {
	mergeField(&a.RegistrationNumber, patch.RegistrationNumber)
	mergeField(&a.Company, patch.Company)
	mergeField(&a.Department, patch.Department)
	if patch.UserID != nil {
		a.SetUserID(Ptr(*patch.UserID))
	}
	if patch.BankID != nil {
		a.SetBankID(Ptr(*patch.BankID))
	}
}

// MarshalJSON includes the loaded associations next to their foreign key ids.
func (a *Adviser) MarshalJSON() ([]byte, error) {
	type plain Adviser
	return json.Marshal(struct {
		*plain
		User *User `json:"user,omitempty"`
		Bank *Bank `json:"bank,omitempty"`
	}{(*plain)(a), a.user, a.bank})
}
