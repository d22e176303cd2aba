package lipgloss

import (
	"strings"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/themevars"
	"github.com/lucasb-eyer/go-colorful"
)

// Swatches renders a theme's variables as colored terminal swatches.
type Swatches struct {
	renderer *lipglosslib.Renderer
}

// NewSwatches creates Swatches that render with r. A nil renderer uses the
// Lipgloss default renderer.
func NewSwatches(r *lipglosslib.Renderer) *Swatches {
	if r == nil {
		r = lipglosslib.DefaultRenderer()
	}
	return &Swatches{renderer: r}
}

// Render returns the theme selector followed by one line per variable:
// the variable name and a chip showing its value on its own color.
func (s *Swatches) Render(t *themevars.Theme) string {
	title := s.renderer.NewStyle().Bold(true).Render(t.Selector())
	lines := []string{title}

	if t.Vars.Len() == 0 {
		lines = append(lines, s.renderer.NewStyle().Faint(true).Render("  (no variables)"))
		return strings.Join(lines, "\n")
	}

	width := 0
	for _, name := range t.Vars.Names() {
		width = max(width, len(name))
	}
	label := s.renderer.NewStyle().Width(width + 4).PaddingLeft(2)
	for name, value := range t.Vars.All() {
		lines = append(lines, label.Render(name)+s.chip(value))
	}
	return strings.Join(lines, "\n")
}

func (s *Swatches) chip(value string) string {
	style := s.renderer.NewStyle().Padding(0, 1)
	if fg, ok := LabelColor(value); ok {
		style = style.
			Background(lipglosslib.Color(value)).
			Foreground(lipglosslib.Color(fg))
	}
	return style.Render(value)
}

// LabelColor returns black or white, whichever reads better on the hex
// color value. It reports false for values that are not hex colors.
func LabelColor(value string) (string, bool) {
	c, err := colorful.Hex(value)
	if err != nil {
		return "", false
	}
	if l, _, _ := c.Lab(); l > 0.6 {
		return "#000000", true
	}
	return "#ffffff", true
}
