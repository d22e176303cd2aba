package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/themevars"
	"github.com/fwojciec/themevars/chroma"
	"github.com/fwojciec/themevars/css"
	"github.com/fwojciec/themevars/lipgloss"
	"golang.org/x/sync/errgroup"
)

// Source prefixes for built-in definitions.
const (
	presetPrefix = "preset:"
	chromaPrefix = "chroma:"
)

// maxConcurrentLoads bounds how many theme files are read at once.
const maxConcurrentLoads = 8

// App encapsulates the application logic for testing.
type App struct {
	Loader    themevars.Loader
	Writer    themevars.Writer
	Previewer themevars.Previewer
	Clipboard themevars.Clipboard
	Stdout    io.Writer
}

// Themes resolves every source and builds its theme. Sources are theme
// file paths, "preset:<name>" or "chroma:<style>". Files are loaded
// concurrently; the result keeps the order of sources.
func (a *App) Themes(ctx context.Context, sources []string) ([]*themevars.Theme, error) {
	if len(sources) == 0 {
		return nil, ErrNoThemes
	}

	themes := make([]*themevars.Theme, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			defs, err := a.resolve(src)
			if err != nil {
				return err
			}
			themes[i] = themevars.CreateTheme(*defs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return themes, nil
}

func (a *App) resolve(src string) (*themevars.Definitions, error) {
	switch {
	case strings.HasPrefix(src, presetPrefix):
		defs, err := lipgloss.Preset(strings.TrimPrefix(src, presetPrefix))
		return &defs, err
	case strings.HasPrefix(src, chromaPrefix):
		defs, err := chroma.Definitions(strings.TrimPrefix(src, chromaPrefix))
		return &defs, err
	default:
		return a.Loader.Load(src)
	}
}

// CSS writes a stylesheet with one utility class per source. With toClipboard
// set the stylesheet goes to the clipboard instead of Stdout; an output
// file is still written.
func (a *App) CSS(ctx context.Context, sources []string, output string, toClipboard bool) error {
	themes, err := a.Themes(ctx, sources)
	if err != nil {
		return err
	}

	c := css.NewCollector()
	for _, t := range themes {
		t.Plugin(c.Register)
	}
	sheet := c.String()

	if !toClipboard {
		return a.emit(output, []byte(sheet))
	}
	if a.Clipboard == nil {
		return ErrNoClipboard
	}
	if err := a.Clipboard.Copy(sheet); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	if output != "" {
		return a.Writer.WriteFile(output, []byte(sheet))
	}
	return nil
}

// Config writes the design-token configuration of source as JSON.
func (a *App) Config(ctx context.Context, source, output string) error {
	return a.emitJSON(ctx, source, output, func(t *themevars.Theme) any { return t.Config })
}

// Vars writes the custom-property map of source as JSON.
func (a *App) Vars(ctx context.Context, source, output string) error {
	return a.emitJSON(ctx, source, output, func(t *themevars.Theme) any { return t.Vars })
}

// Preview opens the interactive previewer. With no sources it shows the
// built-in presets.
func (a *App) Preview(ctx context.Context, sources []string) error {
	if len(sources) == 0 {
		for _, name := range lipgloss.PresetNames() {
			sources = append(sources, presetPrefix+name)
		}
	}
	themes, err := a.Themes(ctx, sources)
	if err != nil {
		return err
	}
	return a.Previewer.Preview(ctx, themes)
}

// Styles lists the chroma style names usable as chroma:<style>.
func (a *App) Styles() error {
	var buf bytes.Buffer
	for _, name := range chroma.StyleNames() {
		buf.WriteString(name)
		buf.WriteByte('\n')
	}
	_, err := buf.WriteTo(stdoutOr(a.Stdout))
	return err
}

func (a *App) emitJSON(ctx context.Context, source, output string, pick func(*themevars.Theme) any) error {
	themes, err := a.Themes(ctx, []string{source})
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(pick(themes[0]), "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", source, err)
	}
	return a.emit(output, append(data, '\n'))
}

// emit writes data to output, or to Stdout when output is empty.
func (a *App) emit(output string, data []byte) error {
	if output != "" {
		return a.Writer.WriteFile(output, data)
	}
	_, err := stdoutOr(a.Stdout).Write(data)
	return err
}
