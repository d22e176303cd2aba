package bubbletea_test

import (
	"bytes"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/themevars"
	"github.com/fwojciec/themevars/bubbletea"
	"github.com/fwojciec/themevars/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asciiSwatches renders without escape sequences so output can be matched.
func asciiSwatches() *lipgloss.Swatches {
	return lipgloss.NewSwatches(lipglosslib.NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii)))
}

func testThemes() []*themevars.Theme {
	return []*themevars.Theme{
		themevars.CreateTheme(themevars.Definitions{
			Name:   "dark",
			Colors: themevars.NewColorTree().Set("darkMarker", themevars.Leaf("#000000")),
		}),
		themevars.CreateTheme(themevars.Definitions{
			Name:   "light",
			Colors: themevars.NewColorTree().Set("lightMarker", themevars.Leaf("#ffffff")),
		}),
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_Init(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testThemes(), asciiSwatches())

	assert.Nil(t, m.Init(), "Init should return nil command")
}

func TestModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testThemes(), asciiSwatches())

	assert.Contains(t, m.View(), "Loading")
}

func TestModel_ViewAfterReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testThemes(), asciiSwatches())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := updated.View()

	assert.Contains(t, view, ".theme-dark")
	assert.Contains(t, view, "--dark-marker")
	assert.Contains(t, view, "dark (1/2)")
	assert.NotContains(t, view, "--light-marker")
}

func TestModel_NextTheme(t *testing.T) {
	t.Parallel()

	t.Run("tab shows next theme", func(t *testing.T) {
		t.Parallel()

		var m tea.Model = bubbletea.NewModel(testThemes(), asciiSwatches())
		m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

		view := m.View()
		assert.Contains(t, view, "--light-marker")
		assert.Contains(t, view, "light (2/2)")
	})

	t.Run("wraps around", func(t *testing.T) {
		t.Parallel()

		var m tea.Model = bubbletea.NewModel(testThemes(), asciiSwatches())
		m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		m, _ = m.Update(keyRune('l'))
		m, _ = m.Update(keyRune('l'))

		require.IsType(t, bubbletea.Model{}, m)
		assert.Equal(t, 0, m.(bubbletea.Model).Current())
	})

	t.Run("previous wraps to last", func(t *testing.T) {
		t.Parallel()

		var m tea.Model = bubbletea.NewModel(testThemes(), asciiSwatches())
		m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		m, _ = m.Update(keyRune('h'))

		assert.Equal(t, 1, m.(bubbletea.Model).Current())
	})
}

func TestModel_NoThemes(t *testing.T) {
	t.Parallel()

	var m tea.Model = bubbletea.NewModel(nil, asciiSwatches())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Contains(t, m.View(), "No themes.")
}

func TestModel_QuitOnQ(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testThemes(), asciiSwatches())
	_, cmd := m.Update(keyRune('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_Program(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testThemes(), asciiSwatches())
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("--dark-marker"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("--light-marker"))
	})

	tm.Send(keyRune('q'))
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}
