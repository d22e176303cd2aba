// Package themevars converts nested color definitions into CSS custom
// properties: a config tree of var() references, a flat variable map, and
// a plugin that registers the variables under a ".theme-<name>" class.
package themevars

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Errors returned by loaders and sources.
var (
	ErrUnsupportedFormat = errors.New("unsupported theme file format")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrUnknownStyle      = errors.New("unknown chroma style")
)

// ValueError reports a color value that is neither a string nor a table.
type ValueError struct {
	Path []string // Key path below "colors"
	Kind string   // Kind of the rejected value, e.g. "number" or "array"
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	path := "colors"
	if len(e.Path) > 0 {
		path += "." + strings.Join(e.Path, ".")
	}
	return fmt.Sprintf("%s: unsupported %s value (want string or table)", path, e.Kind)
}

// Decoder decodes theme definitions from raw file contents.
type Decoder interface {
	Decode(data []byte) (*Definitions, error)
}

// Loader loads theme definitions from a file.
type Loader interface {
	Load(path string) (*Definitions, error)
}

// Writer writes generated artifacts to disk.
type Writer interface {
	WriteFile(path string, data []byte) error
}

// Previewer displays themes and blocks until the user exits.
type Previewer interface {
	Preview(ctx context.Context, themes []*Theme) error
}

// Clipboard copies generated output to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
