package themevars

import (
	"bytes"
	"encoding/json"
	"iter"
)

// VariableMap is a flat, ordered mapping from custom-property names
// ("--brand-light") to literal values. Names keep the order of their first
// insertion; overwriting a name keeps its position. A nil *VariableMap is
// a valid, empty map.
type VariableMap struct {
	names  []string
	values map[string]string
}

// NewVariableMap creates an empty VariableMap.
func NewVariableMap() *VariableMap {
	return &VariableMap{values: make(map[string]string)}
}

// Set assigns value to name.
func (m *VariableMap) Set(name, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// Get returns the value bound to name.
func (m *VariableMap) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[name]
	return v, ok
}

// Len returns the number of variables.
func (m *VariableMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns a copy of the variable names in order.
func (m *VariableMap) Names() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// All iterates over name/value pairs in order.
func (m *VariableMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, name := range m.names {
			if !yield(name, m.values[name]) {
				return
			}
		}
	}
}

// Map returns the variables as a plain Go map.
func (m *VariableMap) Map() map[string]string {
	out := make(map[string]string, m.Len())
	for name, value := range m.All() {
		out[name] = value
	}
	return out
}

// MarshalJSON encodes the variables as a JSON object, keeping order.
func (m *VariableMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, value := range m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
