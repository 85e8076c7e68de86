package domain

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// OrderedMap is a string-keyed map that remembers insertion order.
// It marshals to a JSON object whose keys appear in insertion order.
// The zero value is an empty map ready to use.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// Set inserts or replaces the value for key.
// Replacing keeps the key's original position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m OrderedMap[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (m *OrderedMap[V]) Delete(key string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	return true
}

// Len returns the number of entries.
func (m OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m OrderedMap[V]) Keys() []string {
	return slices.Clone(m.keys)
}

// All iterates over the entries in insertion order.
func (m OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the map.
func (m OrderedMap[V]) Clone() OrderedMap[V] {
	var out OrderedMap[V]
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, zerr.With(err, "key", k)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the document's key order.
// A JSON null decodes to an empty map. Duplicate keys keep the first
// position and the last value.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	*m = OrderedMap[V]{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return zerr.New("expected JSON object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return zerr.New("expected object key")
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return zerr.With(err, "key", key)
		}
		m.Set(key, v)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
