package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/themevars"
)

// Compile-time interface verification.
var (
	_ themevars.Loader  = (*Loader)(nil)
	_ themevars.Decoder = (*JSONDecoder)(nil)
)

// Loader reads theme definition files, choosing a decoder by extension.
type Loader struct {
	decoders map[string]themevars.Decoder
	dir      string
}

// NewLoader creates a Loader that understands .json files and resolves
// relative paths that do not exist against dir. An empty dir disables
// the fallback.
func NewLoader(dir string) *Loader {
	return &Loader{
		decoders: map[string]themevars.Decoder{".json": NewJSONDecoder()},
		dir:      dir,
	}
}

// Register associates a decoder with one or more file extensions,
// e.g. ".yaml". Extensions are matched case-insensitively.
func (l *Loader) Register(d themevars.Decoder, exts ...string) {
	for _, ext := range exts {
		l.decoders[strings.ToLower(ext)] = d
	}
}

// Load reads path and decodes it with the decoder registered for its
// extension.
func (l *Loader) Load(path string) (*themevars.Definitions, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := l.decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", path, themevars.ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(l.resolve(path))
	if err != nil {
		return nil, err
	}

	defs, err := dec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

func (l *Loader) resolve(path string) string {
	if l.dir == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(l.dir, path)
}

// JSONDecoder decodes {"name": ..., "colors": {...}} documents.
type JSONDecoder struct{}

// NewJSONDecoder creates a new JSONDecoder.
func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

// Decode parses data as JSON theme definitions.
func (d *JSONDecoder) Decode(data []byte) (*themevars.Definitions, error) {
	var defs themevars.Definitions
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, err
	}
	return &defs, nil
}
