package themevars

import "encoding/json"

// DefaultName is the theme name used when Definitions.Name is empty.
const DefaultName = "default"

// SelectorPrefix prefixes the theme name in the generated utility class.
const SelectorPrefix = ".theme-"

// Definitions describes a theme before conversion.
type Definitions struct {
	Name   string     `json:"name,omitempty"`
	Colors *ColorTree `json:"colors,omitempty"`
}

// Config is the design-token configuration fragment of a theme.
type Config struct {
	Colors *ColorTree
}

// MarshalJSON encodes the config as {"colors": {...}}.
func (c Config) MarshalJSON() ([]byte, error) {
	colors, err := c.Colors.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Colors json.RawMessage `json:"colors"`
	}{colors})
}

// Utilities maps a CSS selector to its custom-property declarations.
type Utilities map[string]*VariableMap

// Registrar receives utility classes from a Plugin.
type Registrar func(Utilities)

// Plugin registers a theme's utility class with a Registrar.
type Plugin func(Registrar)

// Theme is the result of CreateTheme.
//
// Vars is shared with Plugin: changes made to Vars before the plugin runs
// are visible to the registrar.
type Theme struct {
	Name   string
	Config Config
	Vars   *VariableMap
	Plugin Plugin
}

// Selector returns the utility class selector, e.g. ".theme-dark".
func (t *Theme) Selector() string {
	return SelectorPrefix + t.Name
}

// CreateTheme converts defs into a config tree, a variable map and a
// plugin that registers the variables under the theme's selector.
func CreateTheme(defs Definitions) *Theme {
	name := defs.Name
	if name == "" {
		name = DefaultName
	}
	colors := defs.Colors
	if colors == nil {
		colors = NewColorTree()
	}

	t := &Theme{
		Name:   name,
		Config: Config{Colors: ToConfig(colors, "")},
		Vars:   ToVars(colors, ""),
	}
	selector, vars := t.Selector(), t.Vars
	t.Plugin = func(register Registrar) {
		register(Utilities{selector: vars})
	}
	return t
}
