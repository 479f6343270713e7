package flatfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestHistoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("record and recent", func(t *testing.T) {
		store := NewHistoryStore(filepath.Join(t.TempDir(), "history"), 50, false)

		if err := store.Record(ctx, "+18558701311"); err != nil {
			t.Fatalf("Record: %v", err)
		}

		entries, err := store.Recent(ctx, 10)
		if err != nil {
			t.Fatalf("Recent: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("got %d entries, want 1", len(entries))
		}
		if entries[0].Number != "+18558701311" {
			t.Errorf("got %q, want %q", entries[0].Number, "+18558701311")
		}
	})

	t.Run("recent on missing file", func(t *testing.T) {
		store := NewHistoryStore(filepath.Join(t.TempDir(), "history"), 50, false)

		entries, err := store.Recent(ctx, 10)
		if err != nil {
			t.Fatalf("Recent: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("got %d entries, want 0", len(entries))
		}
	})

	t.Run("retention cap trims oldest first", func(t *testing.T) {
		store := NewHistoryStore(filepath.Join(t.TempDir(), "history"), 50, false)

		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.Local)
		i := 0
		store.now = func() time.Time {
			i++
			return base.Add(time.Duration(i) * time.Second)
		}

		for n := 0; n < 60; n++ {
			if err := store.Record(ctx, fmt.Sprintf("+1202555%04d", n)); err != nil {
				t.Fatalf("Record %d: %v", n, err)
			}
		}

		entries, err := store.Recent(ctx, 0)
		if err != nil {
			t.Fatalf("Recent: %v", err)
		}
		if len(entries) != 50 {
			t.Fatalf("got %d entries, want 50", len(entries))
		}

		// The 50 most recent survive, in chronological order.
		for n, e := range entries {
			want := fmt.Sprintf("+1202555%04d", n+10)
			if e.Number != want {
				t.Fatalf("entry %d: got %q, want %q", n, e.Number, want)
			}
		}
	})

	t.Run("recent applies display limit", func(t *testing.T) {
		store := NewHistoryStore(filepath.Join(t.TempDir(), "history"), 50, false)

		for n := 0; n < 5; n++ {
			if err := store.Record(ctx, fmt.Sprintf("+1202555%04d", n)); err != nil {
				t.Fatalf("Record: %v", err)
			}
		}

		entries, err := store.Recent(ctx, 2)
		if err != nil {
			t.Fatalf("Recent: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("got %d entries, want 2", len(entries))
		}
		if entries[1].Number != "+12025550004" {
			t.Errorf("got %q, want the newest entry last", entries[1].Number)
		}
	})

	t.Run("dry run skips write", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history")
		store := NewHistoryStore(path, 50, true)

		if err := store.Record(ctx, "+18558701311"); err != nil {
			t.Fatalf("Record: %v", err)
		}

		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("history file was written in dry-run mode")
		}
	})

	t.Run("file format splits at last colon", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history")
		store := NewHistoryStore(path, 50, false)

		store.now = func() time.Time {
			return time.Date(2026, 8, 31, 13, 45, 9, 0, time.Local)
		}

		if err := store.Record(ctx, "+18558701311"); err != nil {
			t.Fatalf("Record: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if string(data) != "2026-08-31 13:45:09:+18558701311\n" {
			t.Errorf("got %q", string(data))
		}

		// Round trip: the timestamp's own colons must not break parsing.
		entries, err := store.Recent(ctx, 0)
		if err != nil {
			t.Fatalf("Recent: %v", err)
		}
		if len(entries) != 1 || entries[0].Number != "+18558701311" {
			t.Fatalf("round trip failed: %+v", entries)
		}
		if !strings.HasPrefix(entries[0].FormatTimestamp(), "2026-08-31") {
			t.Errorf("got timestamp %q", entries[0].FormatTimestamp())
		}
	})
}
