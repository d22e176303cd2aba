package css_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/themevars"
	"github.com/fwojciec/themevars/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Register(t *testing.T) {
	t.Parallel()

	t.Run("collects theme plugins in order", func(t *testing.T) {
		t.Parallel()

		dark := themevars.CreateTheme(themevars.Definitions{
			Name: "dark",
			Colors: themevars.NewColorTree().
				Set("bg", themevars.Leaf("#000")).
				Set("brand", themevars.NewColorTree().Set("light", themevars.Leaf("#eee"))),
		})
		light := themevars.CreateTheme(themevars.Definitions{
			Name:   "light",
			Colors: themevars.NewColorTree().Set("bg", themevars.Leaf("#fff")),
		})

		c := css.NewCollector()
		dark.Plugin(c.Register)
		light.Plugin(c.Register)

		expected := `.theme-dark {
  --bg: #000;
  --brand-light: #eee;
}

.theme-light {
  --bg: #fff;
}
`
		assert.Equal(t, expected, c.String())
	})

	t.Run("sorts selectors within one call", func(t *testing.T) {
		t.Parallel()

		c := css.NewCollector()
		c.Register(themevars.Utilities{
			".theme-b": themevars.NewVariableMap(),
			".theme-a": themevars.NewVariableMap(),
		})

		rules := c.Rules()
		require.Len(t, rules, 2)
		assert.Equal(t, ".theme-a", rules[0].Selector)
		assert.Equal(t, ".theme-b", rules[1].Selector)
	})

	t.Run("writes empty rule for empty theme", func(t *testing.T) {
		t.Parallel()

		c := css.NewCollector()
		themevars.CreateTheme(themevars.Definitions{}).Plugin(c.Register)

		assert.Equal(t, ".theme-default {\n}\n", c.String())
	})
}

func TestCollector_WriteTo(t *testing.T) {
	t.Parallel()

	c := css.NewCollector()
	themevars.CreateTheme(themevars.Definitions{
		Name:   "x",
		Colors: themevars.NewColorTree().Set("fg", themevars.Leaf("#fff")),
	}).Plugin(c.Register)

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, ".theme-x {\n  --fg: #fff;\n}\n", buf.String())
}

func TestCollector_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, css.NewCollector().String())
}
