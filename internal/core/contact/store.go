package contact

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no stored contact matches a lookup.
var ErrNotFound = errors.New("contact not found")

// Store defines persistence operations for the contact book.
type Store interface {
	// Lookup returns the stored number for name. Exact-case matches win;
	// otherwise the first case-insensitive match in file order is returned.
	// Returns ErrNotFound if no entry matches. A missing backing file is
	// treated as an empty store, not an error.
	Lookup(ctx context.Context, name string) (string, error)
	// AddOrReplace stores a contact, replacing any existing entry with the
	// same exact-case name.
	AddOrReplace(ctx context.Context, name, number string) error
	// List returns all contacts in file order.
	List(ctx context.Context) ([]Contact, error)
}
