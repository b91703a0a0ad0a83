package model

// User is an account owned by the authentication subsystem. The scheduling
// entities only reference it.
type User struct {
	ID        *int64  `json:"id"`
	Login     *string `json:"login"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Activated *bool   `json:"activated"`
}

// GetID returns the id, or nil for a nil receiver.
func (u *User) GetID() *int64 {
	if u == nil {
		return nil
	}
	return u.ID
}

// Equal compares users by id.
func (u *User) Equal(o *User) bool {
	return u != nil && o != nil && SameIdentity(u.ID, o.ID)
}

// Merge copies every non-nil scalar of patch onto u.
func (u *User) Merge(patch *User) {
	mergeField(&u.Login, patch.Login)
	mergeField(&u.FirstName, patch.FirstName)
	mergeField(&u.LastName, patch.LastName)
	mergeField(&u.Email, patch.Email)
	mergeField(&u.Activated, patch.Activated)
}
