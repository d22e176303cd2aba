// Package css collects registered utility classes and writes them as a
// stylesheet of custom-property declarations.
package css

import (
	"bytes"
	"io"
	"sort"

	"github.com/fwojciec/themevars"
)

// Rule is a single selector with its custom-property declarations.
type Rule struct {
	Selector     string
	Declarations *themevars.VariableMap
}

// Collector records utilities registered by theme plugins. Pass its
// Register method to a Plugin:
//
//	c := css.NewCollector()
//	theme.Plugin(c.Register)
//	c.WriteTo(os.Stdout)
type Collector struct {
	rules []Rule
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Register implements themevars.Registrar. Rules keep registration order;
// selectors registered in the same call are sorted.
func (c *Collector) Register(u themevars.Utilities) {
	selectors := make([]string, 0, len(u))
	for s := range u {
		selectors = append(selectors, s)
	}
	sort.Strings(selectors)
	for _, s := range selectors {
		c.rules = append(c.rules, Rule{Selector: s, Declarations: u[s]})
	}
}

// Rules returns the collected rules in order.
func (c *Collector) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// WriteTo writes the stylesheet to w.
func (c *Collector) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for i, r := range c.rules {
		if i > 0 {
			buf.WriteByte('\n')
		}
		writeRule(&buf, r)
	}
	return buf.WriteTo(w)
}

// String returns the stylesheet.
func (c *Collector) String() string {
	var buf bytes.Buffer
	_, _ = c.WriteTo(&buf)
	return buf.String()
}

func writeRule(buf *bytes.Buffer, r Rule) {
	buf.WriteString(r.Selector)
	buf.WriteString(" {\n")
	for name, value := range r.Declarations.All() {
		buf.WriteString("  ")
		buf.WriteString(name)
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.WriteString(";\n")
	}
	buf.WriteString("}\n")
}
