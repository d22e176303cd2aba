// Package mock provides test doubles for themevars interfaces.
package mock

import "github.com/fwojciec/themevars"

// Compile-time interface verification.
var (
	_ themevars.Loader  = (*Loader)(nil)
	_ themevars.Decoder = (*Decoder)(nil)
)

// Loader is a mock implementation of themevars.Loader.
type Loader struct {
	LoadFn func(path string) (*themevars.Definitions, error)
}

func (l *Loader) Load(path string) (*themevars.Definitions, error) {
	return l.LoadFn(path)
}

// Decoder is a mock implementation of themevars.Decoder.
type Decoder struct {
	DecodeFn func(data []byte) (*themevars.Definitions, error)
}

func (d *Decoder) Decode(data []byte) (*themevars.Definitions, error) {
	return d.DecodeFn(data)
}
