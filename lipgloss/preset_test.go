package lipgloss_test

import (
	"testing"

	"github.com/fwojciec/themevars"
	"github.com/fwojciec/themevars/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDefinitions(t *testing.T) {
	t.Parallel()

	t.Run("returns same definitions as DarkDefinitions", func(t *testing.T) {
		t.Parallel()

		def := themevars.CreateTheme(lipgloss.DefaultDefinitions())
		dark := themevars.CreateTheme(lipgloss.DarkDefinitions())

		assert.Equal(t, dark.Vars.Map(), def.Vars.Map())
		assert.Equal(t, "dark", def.Name)
	})
}

func TestDarkDefinitions(t *testing.T) {
	t.Parallel()

	theme := themevars.CreateTheme(lipgloss.DarkDefinitions())

	t.Run("hyphen-cases nested names", func(t *testing.T) {
		t.Parallel()

		value, ok := theme.Vars.Get("--diff-added-highlight")
		require.True(t, ok)
		assert.NotEmpty(t, value)

		value, ok = theme.Vars.Get("--base-background-alt")
		require.True(t, ok)
		assert.Equal(t, "#313244", value)
	})

	t.Run("has every group", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"--base-background", "--diff-added", "--syntax-keyword", "--ui-accent"} {
			_, ok := theme.Vars.Get(name)
			assert.True(t, ok, "missing %s", name)
		}
	})
}

func TestLightDefinitions(t *testing.T) {
	t.Parallel()

	dark := themevars.CreateTheme(lipgloss.DarkDefinitions())
	light := themevars.CreateTheme(lipgloss.LightDefinitions())

	assert.Equal(t, "light", light.Name)
	assert.Equal(t, dark.Vars.Names(), light.Vars.Names(), "presets should define the same variables")
	assert.NotEqual(t, dark.Vars.Map(), light.Vars.Map())
}

func TestPreset(t *testing.T) {
	t.Parallel()

	t.Run("resolves known presets", func(t *testing.T) {
		t.Parallel()

		for _, name := range lipgloss.PresetNames() {
			defs, err := lipgloss.Preset(name)
			require.NoError(t, err)
			assert.Equal(t, name, defs.Name)
		}
	})

	t.Run("lists presets sorted", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"dark", "light"}, lipgloss.PresetNames())
	})

	t.Run("returns error for unknown preset", func(t *testing.T) {
		t.Parallel()

		_, err := lipgloss.Preset("solarized")

		assert.ErrorIs(t, err, themevars.ErrUnknownPreset)
	})
}
