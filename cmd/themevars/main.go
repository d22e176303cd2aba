package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/themevars/bubbletea"
	"github.com/fwojciec/themevars/clipboard"
	"github.com/fwojciec/themevars/fs"
	"github.com/fwojciec/themevars/lipgloss"
	"github.com/fwojciec/themevars/toml"
	"github.com/fwojciec/themevars/yaml"
)

// Errors returned by App.
var (
	ErrNoThemes    = errors.New("no themes: pass a theme file, preset:<name> or chroma:<style>")
	ErrNoClipboard = errors.New("no clipboard available")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loader := fs.NewLoader(fs.DefaultThemeDir())
	loader.Register(yaml.NewDecoder(), ".yaml", ".yml")
	loader.Register(toml.NewDecoder(), ".toml")

	app := &App{
		Loader:    loader,
		Writer:    fs.NewWriter(),
		Previewer: bubbletea.NewPreviewer(lipgloss.NewSwatches(nil)),
		Stdout:    os.Stdout,
	}
	if cb, err := clipboard.New(); err == nil {
		app.Clipboard = cb
	}

	return app.Command().ExecuteContext(ctx)
}

// stdoutOr returns w unless it is nil.
func stdoutOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
