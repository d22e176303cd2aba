package themevars

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is a node in a ColorTree: either a Leaf or a nested *ColorTree.
type Value interface {
	isValue()
}

// Leaf is a literal color value such as "#1e1e2e" or "rgb(0 0 0)".
// The value is never parsed.
type Leaf string

func (Leaf) isValue() {}

// Entry is a single key/value pair of a ColorTree.
type Entry struct {
	Key   string
	Value Value
}

// ColorTree is an ordered mapping from keys to leaves or nested trees.
// Keys keep the order in which they were first set. A nil *ColorTree is a
// valid, empty tree.
type ColorTree struct {
	entries []Entry
	index   map[string]int
}

func (*ColorTree) isValue() {}

// NewColorTree creates an empty ColorTree.
func NewColorTree() *ColorTree {
	return &ColorTree{index: make(map[string]int)}
}

// Set assigns v under key. Setting an existing key replaces its value
// without moving it. Set returns the tree to allow chaining.
func (t *ColorTree) Set(key string, v Value) *ColorTree {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[key]; ok {
		t.entries[i].Value = v
		return t
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Value: v})
	return t
}

// Get returns the value stored under key.
func (t *ColorTree) Get(key string) (Value, bool) {
	if t == nil {
		return nil, false
	}
	i, ok := t.index[key]
	if !ok {
		return nil, false
	}
	return t.entries[i].Value, true
}

// Len returns the number of direct entries.
func (t *ColorTree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of the direct entries in order.
func (t *ColorTree) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Walk calls fn for every leaf, depth-first in key order, with the full
// key path from the root. The path slice must not be retained.
func (t *ColorTree) Walk(fn func(path []string, leaf Leaf)) {
	t.walk(nil, fn)
}

func (t *ColorTree) walk(path []string, fn func([]string, Leaf)) {
	if t == nil {
		return
	}
	for _, e := range t.entries {
		p := append(path, e.Key)
		switch v := e.Value.(type) {
		case Leaf:
			fn(p, v)
		case *ColorTree:
			v.walk(p, fn)
		}
	}
}

// MarshalJSON encodes the tree as a JSON object, keeping key order.
func (t *ColorTree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if t != nil {
		for i, e := range t.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			var val []byte
			switch v := e.Value.(type) {
			case Leaf:
				val, err = json.Marshal(string(v))
			case *ColorTree:
				val, err = v.MarshalJSON()
			default:
				err = fmt.Errorf("key %q: unexpected value %T", e.Key, e.Value)
			}
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the tree, keeping key order.
// Only strings and objects are accepted as values.
func (t *ColorTree) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &ValueError{Kind: jsonKind(tok)}
	}
	tree, err := decodeJSONTree(dec, nil)
	if err != nil {
		return err
	}
	*t = *tree
	return nil
}

func decodeJSONTree(dec *json.Decoder, path []string) (*ColorTree, error) {
	tree := NewColorTree()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		p := append(path[:len(path):len(path)], key)

		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		switch v := tok.(type) {
		case string:
			tree.Set(key, Leaf(v))
		case json.Delim:
			if v != '{' {
				return nil, &ValueError{Path: p, Kind: "array"}
			}
			sub, err := decodeJSONTree(dec, p)
			if err != nil {
				return nil, err
			}
			tree.Set(key, sub)
		default:
			return nil, &ValueError{Path: p, Kind: jsonKind(tok)}
		}
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return tree, nil
}

func jsonKind(tok json.Token) string {
	switch v := tok.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case string:
		return "string"
	case json.Delim:
		if v == '[' {
			return "array"
		}
	}
	return fmt.Sprintf("%T", tok)
}
