package mock

import (
	"context"

	"github.com/fwojciec/themevars"
)

// Compile-time interface verification.
var _ themevars.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of themevars.Previewer.
type Previewer struct {
	PreviewFn func(ctx context.Context, themes []*themevars.Theme) error
}

func (p *Previewer) Preview(ctx context.Context, themes []*themevars.Theme) error {
	return p.PreviewFn(ctx, themes)
}
