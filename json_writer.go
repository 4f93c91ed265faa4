package stockroom

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field
// order, which encoding/json maps cannot guarantee. Its zero value is
// ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a key-value pair to the JSON object. Both the key and
// the value go through json.Marshal: Go's %q quoting escapes control
// characters as \x01, which is not valid JSON.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}

	keyBytes, err := json.Marshal(key)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal key %q: %w", key, err)
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}

	w.Write(keyBytes)
	w.WriteString(":")
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// MarshalJSON finalizes the object, wraps the accumulated fields in
// braces, and returns the complete JSON byte slice. It satisfies the
// json.Marshaler interface.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')

	return final, nil
}
