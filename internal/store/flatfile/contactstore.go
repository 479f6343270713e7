// Package flatfile provides colon-delimited flat file stores for contacts
// and call history. The on-disk layout is one record per line, kept
// compatible with the shell-script era files: `name:number` for contacts and
// `timestamp:number` for history.
package flatfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/guyguy2/dial/internal/core/contact"
)

// ContactStore implements contact.Store using a flat text file.
type ContactStore struct {
	path   string
	dryRun bool
	mu     sync.RWMutex
}

// NewContactStore creates a contact store at the given path. In dry-run mode
// mutating operations report success without touching the file.
func NewContactStore(path string, dryRun bool) *ContactStore {
	return &ContactStore{path: path, dryRun: dryRun}
}

// Lookup returns the stored number for name. Exact-case matches win;
// otherwise the first case-insensitive match in file order is returned.
func (s *ContactStore) Lookup(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.load()
	if err != nil {
		return "", err
	}

	for _, c := range entries {
		if c.Name == name {
			return c.Number, nil
		}
	}

	for _, c := range entries {
		if strings.EqualFold(c.Name, name) {
			return c.Number, nil
		}
	}

	return "", contact.ErrNotFound
}

// AddOrReplace stores a contact, removing any existing entry with the same
// exact-case name first so the file never accumulates duplicate keys.
// The new entry is appended at the end of the file.
func (s *ContactStore) AddOrReplace(ctx context.Context, name, number string) error {
	if err := contact.ValidateName(name); err != nil {
		return err
	}

	if s.dryRun {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, c := range entries {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	kept = append(kept, contact.Contact{Name: name, Number: number})

	return s.save(kept)
}

// List returns all contacts in file order, re-read from disk on every call.
func (s *ContactStore) List(ctx context.Context) ([]contact.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.load()
}

// load reads the contacts file. A missing file is an empty store.
func (s *ContactStore) load() ([]contact.Contact, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read contacts file: %w", err)
	}

	var entries []contact.Contact
	for _, line := range strings.Split(string(data), "\n") {
		name, number, ok := splitRecord(line)
		if !ok {
			continue
		}
		entries = append(entries, contact.Contact{Name: name, Number: number})
	}

	return entries, nil
}

// save writes the contacts file atomically via temp-then-rename so a
// concurrent reader never observes a partial write.
func (s *ContactStore) save(entries []contact.Contact) error {
	var b strings.Builder
	for _, c := range entries {
		b.WriteString(c.Name)
		b.WriteString(":")
		b.WriteString(c.Number)
		b.WriteString("\n")
	}

	return writeAtomic(s.path, []byte(b.String()), "contacts")
}

// splitRecord splits a record line at its last colon. Numbers never contain
// colons, so the last colon always separates key from number even when the
// key itself (a history timestamp) contains colons. Blank and malformed
// lines are skipped.
func splitRecord(line string) (key, number string, ok bool) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return "", "", false
	}

	idx := strings.LastIndex(line, ":")
	if idx <= 0 || idx == len(line)-1 {
		return "", "", false
	}

	return line[:idx], line[idx+1:], true
}

// writeAtomic writes data to path through a temp file rename.
func writeAtomic(path string, data []byte, what string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s directory: %w", what, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s temp file: %w", what, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s file: %w", what, err)
	}

	return nil
}
