package stockroom

import (
	"fmt"
	"slices"
	"time"
)

// Journal collects the human-readable trace of ledger mutations, one
// timestamped line per operation, oldest first. It is the caller-owned
// counterpart of the ledger's diagnostic stream: mutating operations
// accept an optional *Journal and append to it on success.
type Journal struct {
	entries []string
	now     func() time.Time
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{now: time.Now}
}

// Record appends a timestamped entry. Recording on a nil journal is a
// no-op, so callers can pass their journal through unconditionally.
func (j *Journal) Record(msg string) {
	if j == nil {
		return
	}
	if j.now == nil {
		j.now = time.Now
	}
	j.entries = append(j.entries, fmt.Sprintf("%s: %s", j.now().Format(time.DateTime), msg))
}

// Entries returns a copy of the recorded lines, oldest first.
func (j *Journal) Entries() []string {
	if j == nil {
		return nil
	}
	return slices.Clone(j.entries)
}

// Len returns the number of recorded lines.
func (j *Journal) Len() int {
	if j == nil {
		return 0
	}
	return len(j.entries)
}
