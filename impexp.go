package stockroom

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"

	"github.com/PaesslerAG/jsonpath"

	"go.uber.org/zap"
)

// This file contains the supplier feed import. Suppliers ship their
// stock listings in whatever JSON shape they picked; a jsonpath
// expression tells the importer where the name to quantity object lives
// inside the document.

// ImportFeed reads a JSON feed document from r, selects an object of
// item quantities with the jsonpath expression path (for example
// "$.stock"), and merges it into the ledger with Add semantics, items
// in name order. Entries with an empty name, a non-integer quantity, or
// a negative quantity are skipped with a warning. It returns the number
// of items imported.
func (l *Ledger) ImportFeed(r io.Reader, path string, journal *Journal) (int, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("cannot parse feed document: %w", err)
	}

	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, fmt.Errorf("cannot evaluate %q on feed: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	stock, ok := jval.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("%q does not select an object of item quantities", path)
	}

	count := 0
	for _, name := range slices.Sorted(maps.Keys(stock)) {
		if name == "" {
			l.log.Warn("skipping feed entry with an empty item name")
			continue
		}
		// Beyond 2^53 a float64 no longer represents integers exactly,
		// so larger magnitudes are junk; the bounds also keep the
		// conversion to int from overflowing.
		qty, ok := stock[name].(float64)
		if !ok || qty != math.Trunc(qty) || qty > 1<<53 || qty < -(1<<53) {
			l.log.Warn("skipping feed entry, quantity is not an integer",
				zap.String("item", name), zap.Any("qty", stock[name]))
			continue
		}
		if qty < 0 {
			l.log.Warn("skipping feed entry with a negative quantity",
				zap.String("item", name), zap.Int("qty", int(qty)))
			continue
		}
		l.Add(name, int(qty), journal)
		count++
	}
	return count, nil
}
