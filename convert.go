package themevars

// ToConfig returns a tree with the same key structure as colors in which
// every leaf is replaced by a var() reference to its custom property.
// Nested keys are joined to the prefix with "-".
func ToConfig(colors *ColorTree, prefix string) *ColorTree {
	result := NewColorTree()
	for _, e := range colors.Entries() {
		switch v := e.Value.(type) {
		case *ColorTree:
			result.Set(e.Key, ToConfig(v, prefix+e.Key+"-"))
		case Leaf:
			result.Set(e.Key, Leaf(Reference(varName(prefix, e.Key))))
		}
	}
	return result
}

// ToVars flattens colors into a single-level map from custom-property name
// to literal value. When two paths produce the same name the one visited
// last wins.
func ToVars(colors *ColorTree, prefix string) *VariableMap {
	result := NewVariableMap()
	collectVars(result, colors, prefix)
	return result
}

func collectVars(dst *VariableMap, colors *ColorTree, prefix string) {
	for _, e := range colors.Entries() {
		switch v := e.Value.(type) {
		case *ColorTree:
			collectVars(dst, v, prefix+e.Key+"-")
		case Leaf:
			dst.Set(varName(prefix, e.Key), string(v))
		}
	}
}

// Reference wraps a custom-property name in a var() expression.
func Reference(name string) string {
	return "var(" + name + ")"
}

func varName(prefix, key string) string {
	return "--" + HyphenCase(prefix+key)
}
