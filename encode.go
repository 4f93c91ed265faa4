package stockroom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// This file contains the stream codecs for the inventory file format: a
// single JSON object mapping item names to integer quantities. The codec
// preserves item order both ways, so a save/load round trip keeps the
// ledger iteration order stable.

// DecodeInventory reads a single JSON object of item quantities from r
// and returns a ledger holding exactly that mapping, items in file
// order. A duplicate key keeps its first position and its last value.
func DecodeInventory(r io.Reader) (*Ledger, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("cannot parse inventory: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("cannot parse inventory: expected a JSON object, got %v", tok)
	}

	ledger := NewLedger(nil)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("cannot parse inventory: %w", err)
		}
		// Inside an object, the decoder guarantees the key token is a string.
		name := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("cannot parse inventory: %w", err)
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("quantity for %q is not a number: %v", name, valTok)
		}
		qty, err := num.Int64()
		if err != nil {
			return nil, fmt.Errorf("quantity for %q is not an integer: %w", name, err)
		}

		if _, exists := ledger.quantities[name]; !exists {
			ledger.names = append(ledger.names, name)
		}
		ledger.quantities[name] = int(qty)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("cannot parse inventory: %w", err)
	}
	// The file holds a single object and nothing else.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after inventory object")
	}

	return ledger, nil
}

// EncodeInventory writes the ledger to w as a two-space-indented JSON
// object, keys in ledger order.
func EncodeInventory(w io.Writer, ledger *Ledger) error {
	var obj jsonObjectWriter
	for name, qty := range ledger.Items() {
		obj.Append(name, qty)
	}
	compact, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, compact, "", "  "); err != nil {
		return fmt.Errorf("failed to indent inventory: %w", err)
	}
	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}
