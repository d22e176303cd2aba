// Package chroma builds theme definitions from Chroma syntax-highlighting
// styles.
package chroma

import (
	"fmt"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/themevars"
)

// syntaxTokens maps syntax keys to the chroma token type they are read from.
var syntaxTokens = []struct {
	key   string
	token chromalib.TokenType
}{
	{"keyword", chromalib.Keyword},
	{"keywordType", chromalib.KeywordType},
	{"string", chromalib.String},
	{"number", chromalib.Number},
	{"comment", chromalib.Comment},
	{"operator", chromalib.Operator},
	{"function", chromalib.NameFunction},
	{"constant", chromalib.NameConstant},
	{"punctuation", chromalib.Punctuation},
}

// Definitions returns theme definitions derived from the named chroma
// style:
//
//	base:   background, foreground
//	syntax: keyword, keywordType, string, number, comment, operator,
//	        function, constant, punctuation
//
// Token types the style leaves unset are omitted.
func Definitions(styleName string) (themevars.Definitions, error) {
	style, ok := styles.Registry[styleName]
	if !ok {
		return themevars.Definitions{}, fmt.Errorf("%w %q", themevars.ErrUnknownStyle, styleName)
	}

	base := themevars.NewColorTree()
	bg := style.Get(chromalib.Background)
	if bg.Background.IsSet() {
		base.Set("background", themevars.Leaf(bg.Background.String()))
	}
	if bg.Colour.IsSet() {
		base.Set("foreground", themevars.Leaf(bg.Colour.String()))
	}

	syntax := themevars.NewColorTree()
	for _, st := range syntaxTokens {
		if entry := style.Get(st.token); entry.Colour.IsSet() {
			syntax.Set(st.key, themevars.Leaf(entry.Colour.String()))
		}
	}

	colors := themevars.NewColorTree()
	if base.Len() > 0 {
		colors.Set("base", base)
	}
	if syntax.Len() > 0 {
		colors.Set("syntax", syntax)
	}
	return themevars.Definitions{Name: styleName, Colors: colors}, nil
}

// StyleNames returns the names of all registered chroma styles, sorted.
func StyleNames() []string {
	return styles.Names()
}
