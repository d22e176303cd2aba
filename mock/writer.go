package mock

import "github.com/fwojciec/themevars"

// Compile-time interface verification.
var _ themevars.Writer = (*Writer)(nil)

// Writer is a mock implementation of themevars.Writer.
type Writer struct {
	WriteFileFn func(path string, data []byte) error
}

func (w *Writer) WriteFile(path string, data []byte) error {
	return w.WriteFileFn(path, data)
}
