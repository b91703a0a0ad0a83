package model

type Company struct {
	ID      *int64  `json:"id"`
	Name    *string `json:"name"`
	Ninea   *string `json:"ninea"`
	Rc      *string `json:"rc"`
	Address *string `json:"address"`
}

// GetID returns the id, or nil for a nil receiver.
func (c *Company) GetID() *int64 {
	if c == nil {
		return nil
	}
	return c.ID
}

// Equal compares companies by id.
func (c *Company) Equal(o *Company) bool {
	return c != nil && o != nil && SameIdentity(c.ID, o.ID)
}

// Merge copies every non-nil scalar of patch onto c.
func (c *Company) Merge(patch *Company) {
	mergeField(&c.Name, patch.Name)
	mergeField(&c.Ninea, patch.Ninea)
	mergeField(&c.Rc, patch.Rc)
	mergeField(&c.Address, patch.Address)
}

func mergeField[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
