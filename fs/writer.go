package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/themevars"
)

// Compile-time interface verification.
var _ themevars.Writer = (*Writer)(nil)

// Writer writes generated artifacts to disk.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile writes data to path, creating parent directories if needed.
func (w *Writer) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
