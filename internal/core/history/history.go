// Package history defines call history domain types and interfaces.
package history

import "time"

// TimeFormat is the layout used for persisted entry timestamps.
const TimeFormat = "2006-01-02 15:04:05"

// DefaultLimit is the retention cap applied to the persisted log.
const DefaultLimit = 50

// Entry represents one placed call. Entries are immutable once written.
type Entry struct {
	Timestamp time.Time
	Number    string
}

// FormatTimestamp renders the entry timestamp in the persisted layout.
func (e Entry) FormatTimestamp() string {
	return e.Timestamp.Format(TimeFormat)
}
