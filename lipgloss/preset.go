// Package lipgloss provides built-in theme definitions and renders themes
// as terminal color swatches using the Lipgloss styling library.
package lipgloss

import (
	"fmt"
	"sort"

	"github.com/fwojciec/themevars"
)

// palette holds the Catppuccin colors a preset is built from.
type palette struct {
	background       string
	backgroundAlt    string
	foreground       string
	added            string
	deleted          string
	modified         string
	context          string
	addedHighlight   string
	deletedHighlight string
	keyword          string
	str              string
	number           string
	comment          string
	operator         string
	function         string
	typ              string
	con              string
	punctuation      string
	uiBackground     string
	uiForeground     string
	uiAccent         string
}

// presets maps preset names to their definitions builders.
var presets = map[string]func() themevars.Definitions{
	"dark":  DarkDefinitions,
	"light": LightDefinitions,
}

// Preset returns the built-in definitions registered under name.
func Preset(name string) (themevars.Definitions, error) {
	fn, ok := presets[name]
	if !ok {
		return themevars.Definitions{}, fmt.Errorf("%w %q", themevars.ErrUnknownPreset, name)
	}
	return fn(), nil
}

// PresetNames returns the built-in preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultDefinitions returns the default preset (dark).
func DefaultDefinitions() themevars.Definitions {
	return DarkDefinitions()
}

// DarkDefinitions returns a theme for dark backgrounds (Catppuccin Mocha).
func DarkDefinitions() themevars.Definitions {
	return definitions("dark", palette{
		background:       "#1e1e2e",
		backgroundAlt:    "#313244",
		foreground:       "#cdd6f4",
		added:            "#a6e3a1",
		deleted:          "#f38ba8",
		modified:         "#f9e2af",
		context:          "#6c7086",
		addedHighlight:   "#004000", // Very dark green - text colors stay readable
		deletedHighlight: "#3f0001", // Very dark red
		keyword:          "#cba6f7",
		str:              "#a6e3a1",
		number:           "#fab387",
		comment:          "#6c7086",
		operator:         "#89dceb",
		function:         "#89b4fa",
		typ:              "#f9e2af",
		con:              "#fab387",
		punctuation:      "#9399b2",
		uiBackground:     "#313244",
		uiForeground:     "#a6adc8",
		uiAccent:         "#89b4fa",
	})
}

// LightDefinitions returns a theme for light backgrounds (Catppuccin Latte).
func LightDefinitions() themevars.Definitions {
	return definitions("light", palette{
		background:       "#eff1f5",
		backgroundAlt:    "#e6e9ef",
		foreground:       "#4c4f69",
		added:            "#40a02b",
		deleted:          "#d20f39",
		modified:         "#df8e1d",
		context:          "#9ca0b0",
		addedHighlight:   "#d4f4d4",
		deletedHighlight: "#f4d4d4",
		keyword:          "#8839ef",
		str:              "#40a02b",
		number:           "#fe640b",
		comment:          "#9ca0b0",
		operator:         "#04a5e5",
		function:         "#1e66f5",
		typ:              "#df8e1d",
		con:              "#fe640b",
		punctuation:      "#6c6f85",
		uiBackground:     "#e6e9ef",
		uiForeground:     "#6c6f85",
		uiAccent:         "#1e66f5",
	})
}

func definitions(name string, p palette) themevars.Definitions {
	leaf := func(s string) themevars.Value { return themevars.Leaf(s) }
	return themevars.Definitions{
		Name: name,
		Colors: themevars.NewColorTree().
			Set("base", themevars.NewColorTree().
				Set("background", leaf(p.background)).
				Set("backgroundAlt", leaf(p.backgroundAlt)).
				Set("foreground", leaf(p.foreground))).
			Set("diff", themevars.NewColorTree().
				Set("added", leaf(p.added)).
				Set("deleted", leaf(p.deleted)).
				Set("modified", leaf(p.modified)).
				Set("context", leaf(p.context)).
				Set("addedHighlight", leaf(p.addedHighlight)).
				Set("deletedHighlight", leaf(p.deletedHighlight))).
			Set("syntax", themevars.NewColorTree().
				Set("keyword", leaf(p.keyword)).
				Set("string", leaf(p.str)).
				Set("number", leaf(p.number)).
				Set("comment", leaf(p.comment)).
				Set("operator", leaf(p.operator)).
				Set("function", leaf(p.function)).
				Set("type", leaf(p.typ)).
				Set("constant", leaf(p.con)).
				Set("punctuation", leaf(p.punctuation))).
			Set("ui", themevars.NewColorTree().
				Set("background", leaf(p.uiBackground)).
				Set("foreground", leaf(p.uiForeground)).
				Set("accent", leaf(p.uiAccent))),
	}
}
