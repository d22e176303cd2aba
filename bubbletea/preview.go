// Package bubbletea provides a terminal previewer for themes using the
// Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/themevars"
	"github.com/fwojciec/themevars/lipgloss"
)

// Model is the Bubble Tea model for previewing themes.
type Model struct {
	themes   []*themevars.Theme
	swatches *lipgloss.Swatches
	keymap   KeyMap
	current  int
	viewport viewport.Model
	ready    bool
}

// NewModel creates a Model showing themes rendered with swatches.
func NewModel(themes []*themevars.Theme, swatches *lipgloss.Swatches) Model {
	return Model{
		themes:   themes,
		swatches: swatches,
		keymap:   DefaultKeyMap(),
	}
}

// Current returns the index of the displayed theme.
func (m Model) Current() int {
	return m.current
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextTheme):
			m.show((m.current + 1) % max(len(m.themes), 1))
			return m, nil
		case key.Matches(msg, m.keymap.PrevTheme):
			m.show((m.current - 1 + len(m.themes)) % max(len(m.themes), 1))
			return m, nil
		case key.Matches(msg, m.keymap.GotoTop):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-1, 1) // status line
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
			m.show(m.current)
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// show switches to theme i and resets the scroll position.
func (m *Model) show(i int) {
	m.current = i
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

func (m Model) content() string {
	if len(m.themes) == 0 {
		return "No themes."
	}
	return m.swatches.Render(m.themes[m.current])
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.status()
}

func (m Model) status() string {
	if len(m.themes) == 0 {
		return "q quit"
	}
	return fmt.Sprintf("%s (%d/%d)  tab next  q quit", m.themes[m.current].Name, m.current+1, len(m.themes))
}

// Compile-time interface verification.
var _ themevars.Previewer = (*Previewer)(nil)

// Previewer implements themevars.Previewer using a Bubble Tea TUI.
type Previewer struct {
	swatches *lipgloss.Swatches
}

// NewPreviewer creates a new Previewer.
func NewPreviewer(swatches *lipgloss.Swatches) *Previewer {
	return &Previewer{swatches: swatches}
}

// Preview displays the themes and blocks until the user exits.
func (p *Previewer) Preview(ctx context.Context, themes []*themevars.Theme) error {
	m := NewModel(themes, p.swatches)
	prog := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := prog.Run()
	return err
}
