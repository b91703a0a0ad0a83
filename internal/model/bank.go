package model

type Bank struct {
	ID      *int64  `json:"id"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// GetID returns the id, or nil for a nil receiver.
func (b *Bank) GetID() *int64 {
	if b == nil {
		return nil
	}
	return b.ID
}

// Equal compares banks by id.
func (b *Bank) Equal(o *Bank) bool {
	return b != nil && o != nil && SameIdentity(b.ID, o.ID)
}

// Merge copies every non-nil scalar of patch onto b.
func (b *Bank) Merge(patch *Bank) {
	mergeField(&b.Name, patch.Name)
	mergeField(&b.Address, patch.Address)
}
