// Package model holds the entities of the scheduling domain.
//
// Scalar fields are pointers: nil is NULL in storage and "leave unchanged"
// in a partial update. A foreign key is stored only as its id field; the
// associated entity is a read-time lookup attached by the loader and can
// only be changed through a setter that keeps the id in sync.
package model

// SameIdentity reports whether two ids identify the same row.
// Entities without an id are never equal, not even to themselves.
func SameIdentity(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

type identified interface {
	GetID() *int64
}

// idOf returns a copy of v's id.
func idOf(v identified) *int64 {
	if id := v.GetID(); id != nil {
		return Ptr(*id)
	}
	return nil
}

// keepIfSame reports whether a loaded association still matches id.
func keepIfSame(assoc identified, id *int64) bool {
	return SameIdentity(assoc.GetID(), id)
}
