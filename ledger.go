package stockroom

import (
	"fmt"
	"iter"
	"slices"

	"go.uber.org/zap"
)

// Ledger holds the current stock level of every item, indexed by its
// case-sensitive name. Items iterate in the order they first entered the
// ledger.
//
// A Ledger assumes a single caller: it is not safe for concurrent use
// and must be guarded by an external lock in a concurrent setting.
type Ledger struct {
	quantities map[string]int
	names      []string // insertion order
	log        *zap.Logger
}

// NewLedger creates an empty ledger emitting its diagnostics on log.
// A nil log silences diagnostics.
func NewLedger(log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{
		quantities: make(map[string]int),
		log:        log,
	}
}

// Add increases the stock of item by qty, creating the item if needed.
// An empty item name or a negative qty is refused with a warning and the
// ledger is left untouched. On success the mutation is recorded in the
// optional journal (nil is accepted) and logged at info level.
func (l *Ledger) Add(item string, qty int, journal *Journal) {
	if item == "" {
		l.log.Warn("invalid item name provided")
		return
	}
	if qty < 0 {
		l.log.Warn("invalid quantity, must be non-negative",
			zap.String("item", item), zap.Int("qty", qty))
		return
	}

	if _, ok := l.quantities[item]; !ok {
		l.names = append(l.names, item)
	}
	l.quantities[item] += qty

	journal.Record(fmt.Sprintf("Added %d of %s", qty, item))
	l.log.Info("added stock", zap.String("item", item), zap.Int("qty", qty),
		zap.Int("total", l.quantities[item]))
}

// Remove decreases the stock of item by qty and reports whether the
// removal took place. An absent item or a negative qty is refused with a
// warning. Removing more than the current stock is not an error: the
// item is simply depleted and deleted from the ledger, exactly like a
// removal that lands on zero.
func (l *Ledger) Remove(item string, qty int) bool {
	current, ok := l.quantities[item]
	if !ok {
		l.log.Warn("item not found in inventory", zap.String("item", item))
		return false
	}
	if qty < 0 {
		l.log.Warn("invalid quantity, must be non-negative",
			zap.String("item", item), zap.Int("qty", qty))
		return false
	}

	current -= qty
	if current <= 0 {
		l.delete(item)
		l.log.Info("item removed, quantity depleted", zap.String("item", item))
	} else {
		l.quantities[item] = current
		l.log.Info("removed stock", zap.String("item", item), zap.Int("qty", qty),
			zap.Int("remaining", current))
	}
	return true
}

// Quantity returns the stock of item, or 0 with a warning when the item
// is not in the ledger.
func (l *Ledger) Quantity(item string) int {
	qty, ok := l.quantities[item]
	if !ok {
		l.log.Warn("item not found in inventory", zap.String("item", item))
		return 0
	}
	return qty
}

// Has reports whether item is currently stocked.
func (l *Ledger) Has(item string) bool {
	_, ok := l.quantities[item]
	return ok
}

// Len returns the number of distinct items in the ledger.
func (l *Ledger) Len() int { return len(l.names) }

// Items iterates over (name, quantity) pairs in ledger order.
func (l *Ledger) Items() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, name := range l.names {
			if !yield(name, l.quantities[name]) {
				return
			}
		}
	}
}

// LowItems returns the names of the items whose quantity is strictly
// below threshold, in ledger order. The result is a fresh snapshot,
// recomputed on every call.
func (l *Ledger) LowItems(threshold int) []string {
	low := []string{}
	for name, qty := range l.Items() {
		if qty < threshold {
			low = append(low, name)
		}
	}
	return low
}

// delete removes item from both the index and the iteration order.
func (l *Ledger) delete(item string) {
	delete(l.quantities, item)
	if i := slices.Index(l.names, item); i >= 0 {
		l.names = slices.Delete(l.names, i, i+1)
	}
}

// replace swaps the ledger contents for the given mapping, keeping the
// logger. Used by Load to adopt a decoded ledger wholesale.
func (l *Ledger) replace(quantities map[string]int, names []string) {
	if quantities == nil {
		quantities = make(map[string]int)
	}
	l.quantities = quantities
	l.names = names
}
