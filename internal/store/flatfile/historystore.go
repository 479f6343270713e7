package flatfile

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/guyguy2/dial/internal/core/history"
)

// HistoryStore implements history.Store using a flat text file with newest
// entries appended at the end.
type HistoryStore struct {
	path   string
	limit  int
	dryRun bool
	mu     sync.RWMutex

	// now is swappable for tests.
	now func() time.Time
}

// NewHistoryStore creates a history store at the given path. limit is the
// retention cap enforced on every append (<= 0 falls back to the default).
func NewHistoryStore(path string, limit int, dryRun bool) *HistoryStore {
	if limit <= 0 {
		limit = history.DefaultLimit
	}
	return &HistoryStore{path: path, limit: limit, dryRun: dryRun, now: time.Now}
}

// Record appends an entry for number with the current timestamp, then trims
// the log to the retention cap. No-op in dry-run mode.
func (s *HistoryStore) Record(ctx context.Context, number string) error {
	if s.dryRun {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	entries = append(entries, history.Entry{Timestamp: s.now(), Number: number})
	if len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}

	return s.save(entries)
}

// Recent returns up to limit of the most recent entries in chronological
// order. limit <= 0 returns all retained entries.
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	return entries, nil
}

// load reads the history file. A missing file is an empty log. Lines that
// fail to parse are skipped rather than failing the whole read.
func (s *HistoryStore) load() ([]history.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var entries []history.Entry
	for _, line := range strings.Split(string(data), "\n") {
		stamp, number, ok := splitRecord(line)
		if !ok {
			continue
		}

		ts, err := time.ParseInLocation(history.TimeFormat, stamp, time.Local)
		if err != nil {
			continue
		}

		entries = append(entries, history.Entry{Timestamp: ts, Number: number})
	}

	return entries, nil
}

// save writes the history file atomically, oldest entry first.
func (s *HistoryStore) save(entries []history.Entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.FormatTimestamp())
		b.WriteString(":")
		b.WriteString(e.Number)
		b.WriteString("\n")
	}

	return writeAtomic(s.path, []byte(b.String()), "history")
}
