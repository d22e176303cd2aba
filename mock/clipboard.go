package mock

import "github.com/fwojciec/themevars"

// Compile-time interface verification.
var _ themevars.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of themevars.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
