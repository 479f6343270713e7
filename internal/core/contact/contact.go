// Package contact defines contact book domain types and interfaces.
package contact

import (
	"fmt"
	"strings"
)

// Contact maps a name to a phone number. The name is the unique key: storage
// is exact-case, lookup falls back to case-insensitive matching.
type Contact struct {
	Name   string
	Number string
}

// ValidateName checks that a name is usable as a contact key. Names are
// stored in a colon-delimited flat file, so colons and newlines are rejected.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("contact name is required")
	}
	if strings.ContainsAny(name, ":\n") {
		return fmt.Errorf("contact name cannot contain ':' or newlines")
	}
	return nil
}
