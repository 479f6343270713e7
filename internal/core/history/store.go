package history

import "context"

// Store defines persistence operations for the call history log.
type Store interface {
	// Record appends an entry for number with the current timestamp, then
	// trims the log to the retention cap, discarding the oldest entries.
	Record(ctx context.Context, number string) error
	// Recent returns up to limit of the most recent entries in chronological
	// order (oldest first). limit <= 0 returns all retained entries.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}
