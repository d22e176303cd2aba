// Package clipboard copies text to the system clipboard through
// platform-specific commands.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/fwojciec/themevars"
)

// ErrUnavailable is returned when no clipboard command is installed.
var ErrUnavailable = errors.New("no clipboard command found (tried pbcopy, wl-copy, xclip, clip.exe)")

// Ensure Command implements the Clipboard interface.
var _ themevars.Clipboard = (*Command)(nil)

// candidates lists clipboard commands in lookup order.
var candidates = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"clip.exe"},
}

// Command implements Clipboard by piping content to an external command.
type Command struct {
	name string
	args []string
}

// New returns a Command using the first clipboard program found on PATH.
func New() (*Command, error) {
	for _, c := range candidates {
		if path, err := exec.LookPath(c[0]); err == nil {
			return &Command{name: path, args: c[1:]}, nil
		}
	}
	return nil, ErrUnavailable
}

// Copy writes content to the clipboard command's stdin.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}
