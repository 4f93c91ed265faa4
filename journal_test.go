package stockroom

import (
	"reflect"
	"testing"
	"time"
)

func TestJournal_RecordsAdds(t *testing.T) {
	journal := NewJournal()
	journal.now = func() time.Time {
		return time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC)
	}

	ledger := NewLedger(nil)
	ledger.Add("apple", 10, journal)
	ledger.Add("banana", 5, journal)
	// Refused mutations are not journaled.
	ledger.Add("", 1, journal)
	ledger.Add("grape", -2, journal)

	want := []string{
		"2025-08-01 10:30:00: Added 10 of apple",
		"2025-08-01 10:30:00: Added 5 of banana",
	}
	if got := journal.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("journal entries = %v, want %v", got, want)
	}
}

func TestJournal_NilIsSafe(t *testing.T) {
	var journal *Journal
	journal.Record("dropped")
	if journal.Len() != 0 || journal.Entries() != nil {
		t.Error("recording on a nil journal should be a no-op")
	}

	// A ledger accepts a nil journal on every mutation.
	ledger := NewLedger(nil)
	ledger.Add("apple", 10, nil)
	if got := ledger.Quantity("apple"); got != 10 {
		t.Errorf("Quantity(apple) = %d, want 10", got)
	}
}
