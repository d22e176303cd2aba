package chroma_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/themevars"
	"github.com/fwojciec/themevars/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions(t *testing.T) {
	t.Parallel()

	t.Run("builds variables from a registered style", func(t *testing.T) {
		t.Parallel()

		defs, err := chroma.Definitions("monokai")

		require.NoError(t, err)
		assert.Equal(t, "monokai", defs.Name)

		theme := themevars.CreateTheme(defs)
		bg, ok := theme.Vars.Get("--base-background")
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(bg, "#"), "background %q", bg)

		_, ok = theme.Vars.Get("--syntax-keyword")
		assert.True(t, ok)
	})

	t.Run("hyphen-cases token keys", func(t *testing.T) {
		t.Parallel()

		defs, err := chroma.Definitions("monokai")
		require.NoError(t, err)

		theme := themevars.CreateTheme(defs)
		for _, name := range theme.Vars.Names() {
			assert.Equal(t, strings.ToLower(name), name)
		}
	})

	t.Run("returns error for unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := chroma.Definitions("does-not-exist")

		assert.ErrorIs(t, err, themevars.ErrUnknownStyle)
	})
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := chroma.StyleNames()

	assert.Contains(t, names, "monokai")
	assert.IsNonDecreasing(t, names)
}
