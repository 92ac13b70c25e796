package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Hierarchy is a nested key-value mapping that preserves first-insertion key
// order when marshaled. Values are scalars (string, int64, float64) or nested
// *Hierarchy levels. Downstream consumers of the JSON document rely on the
// key order matching the row/column order of the source sheet, so a plain Go
// map is not usable here.
type Hierarchy struct {
	keys   []string
	values map[string]interface{}
}

// NewHierarchy returns an empty mapping.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{values: make(map[string]interface{})}
}

// Set stores value under key. A key keeps its original position when set
// again.
func (h *Hierarchy) Set(key string, value interface{}) {
	if _, exists := h.values[key]; !exists {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value stored under key.
func (h *Hierarchy) Get(key string) (interface{}, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Child returns the nested level under key, creating it if absent. It panics
// if the key already holds a scalar; levels and leaves never share a key in
// the extraction output.
func (h *Hierarchy) Child(key string) *Hierarchy {
	if v, ok := h.values[key]; ok {
		child, isMap := v.(*Hierarchy)
		if !isMap {
			panic(fmt.Sprintf("hierarchy key %q holds a scalar, not a nested level", key))
		}
		return child
	}
	child := NewHierarchy()
	h.Set(key, child)
	return child
}

// Keys returns the keys in insertion order.
func (h *Hierarchy) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Len returns the number of keys.
func (h *Hierarchy) Len() int {
	return len(h.keys)
}

// MarshalJSON emits the mapping as a JSON object with keys in insertion
// order. Non-ASCII characters are written literally and HTML characters are
// not escaped, matching the serialization contract of the JSON consumers.
func (h *Hierarchy) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range h.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeValue(&buf, h.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeValue marshals v without HTML escaping.
func encodeValue(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode appends a newline; strip it so the object stays compact.
	b := buf.Bytes()
	if len(b) > 0 && b[len(b)-1] == '\n' {
		buf.Truncate(len(b) - 1)
	}
	return nil
}
