// Package yaml decodes theme definitions from YAML documents.
package yaml

import (
	"fmt"

	"github.com/fwojciec/themevars"
	yamllib "github.com/goccy/go-yaml"
)

// Compile-time interface verification.
var _ themevars.Decoder = (*Decoder)(nil)

// Decoder decodes YAML theme definitions, keeping mapping order:
//
//	name: dark
//	colors:
//	  bg: "#1e1e2e"
//	  brand:
//	    light: "#cdd6f4"
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses data as YAML theme definitions.
func (d *Decoder) Decode(data []byte) (*themevars.Definitions, error) {
	var doc yamllib.MapSlice
	if err := yamllib.UnmarshalWithOptions(data, &doc, yamllib.UseOrderedMap()); err != nil {
		return nil, err
	}

	defs := &themevars.Definitions{}
	for _, item := range doc {
		switch fmt.Sprint(item.Key) {
		case "name":
			if item.Value == nil {
				continue
			}
			name, ok := item.Value.(string)
			if !ok {
				return nil, fmt.Errorf("name: want string, got %s", kind(item.Value))
			}
			defs.Name = name
		case "colors":
			switch v := item.Value.(type) {
			case nil:
			case yamllib.MapSlice:
				tree, err := buildTree(v, nil)
				if err != nil {
					return nil, err
				}
				defs.Colors = tree
			default:
				return nil, &themevars.ValueError{Kind: kind(v)}
			}
		}
	}
	return defs, nil
}

func buildTree(items yamllib.MapSlice, path []string) (*themevars.ColorTree, error) {
	tree := themevars.NewColorTree()
	for _, item := range items {
		key := fmt.Sprint(item.Key)
		p := append(path[:len(path):len(path)], key)
		switch v := item.Value.(type) {
		case string:
			tree.Set(key, themevars.Leaf(v))
		case yamllib.MapSlice:
			sub, err := buildTree(v, p)
			if err != nil {
				return nil, err
			}
			tree.Set(key, sub)
		default:
			return nil, &themevars.ValueError{Path: p, Kind: kind(v)}
		}
	}
	return tree, nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
