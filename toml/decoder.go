// Package toml decodes theme definitions from TOML documents.
package toml

import (
	"fmt"
	"sort"
	"strings"

	tomllib "github.com/BurntSushi/toml"
	"github.com/fwojciec/themevars"
)

// Compile-time interface verification.
var _ themevars.Decoder = (*Decoder)(nil)

// Decoder decodes TOML theme definitions:
//
//	name = "dark"
//
//	[colors]
//	bg = "#1e1e2e"
//	brand = { light = "#cdd6f4", dark = "#11111b" }
//
// Key order follows the document. Keys the parser does not report in
// order, if any, are appended sorted.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses data as TOML theme definitions.
func (d *Decoder) Decode(data []byte) (*themevars.Definitions, error) {
	var raw map[string]any
	md, err := tomllib.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	defs := &themevars.Definitions{}
	if v, ok := raw["name"]; ok {
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("name: want string, got %s", kind(md, "name"))
		}
		defs.Name = name
	}

	v, ok := raw["colors"]
	if !ok {
		return defs, nil
	}
	colors, ok := v.(map[string]any)
	if !ok {
		return nil, &themevars.ValueError{Kind: kind(md, "colors")}
	}

	tree := themevars.NewColorTree()
	// Keys come back in document order, e.g. [colors brand light].
	for _, key := range md.Keys() {
		if len(key) < 2 || key[0] != "colors" {
			continue
		}
		path := []string(key[1:])
		val, ok := lookup(colors, path)
		if !ok {
			continue
		}
		if err := place(ensure(tree, path[:len(path)-1]), md, path, val); err != nil {
			return nil, err
		}
	}
	if err := fill(tree, md, colors, nil); err != nil {
		return nil, err
	}

	defs.Colors = tree
	return defs, nil
}

// place records val under the last key of path in parent. path is the
// full key path below "colors".
func place(parent *themevars.ColorTree, md tomllib.MetaData, path []string, val any) error {
	key := path[len(path)-1]
	switch v := val.(type) {
	case string:
		parent.Set(key, themevars.Leaf(v))
	case map[string]any:
		ensure(parent, []string{key})
	default:
		return &themevars.ValueError{Path: path, Kind: kind(md, append([]string{"colors"}, path...)...)}
	}
	return nil
}

// fill adds entries of m missing from tree in sorted key order.
func fill(tree *themevars.ColorTree, md tomllib.MetaData, m map[string]any, path []string) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		p := append(path[:len(path):len(path)], k)
		if _, ok := tree.Get(k); !ok {
			if err := place(tree, md, p, m[k]); err != nil {
				return err
			}
		}
		if sub, ok := m[k].(map[string]any); ok {
			if err := fill(ensure(tree, []string{k}), md, sub, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func ensure(tree *themevars.ColorTree, path []string) *themevars.ColorTree {
	for _, k := range path {
		v, _ := tree.Get(k)
		sub, ok := v.(*themevars.ColorTree)
		if !ok {
			sub = themevars.NewColorTree()
			tree.Set(k, sub)
		}
		tree = sub
	}
	return tree
}

func lookup(m map[string]any, path []string) (any, bool) {
	var cur any = m
	for _, k := range path {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = mm[k]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func kind(md tomllib.MetaData, key ...string) string {
	switch t := md.Type(key...); t {
	case "Integer", "Float":
		return "number"
	case "Array", "ArrayHash":
		return "array"
	case "":
		return "unknown"
	default:
		return strings.ToLower(t)
	}
}
