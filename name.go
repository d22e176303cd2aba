package themevars

import "strings"

// HyphenCase replaces every ASCII upper-case letter with a hyphen followed
// by its lower-case form: "primaryLight" becomes "primary-light". All other
// characters pass through, so a leading capital yields a leading hyphen.
func HyphenCase(s string) string {
	if strings.IndexFunc(s, isUpper) < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUpper(rune(c)) {
			sb.WriteByte('-')
			sb.WriteByte(c + ('a' - 'A'))
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
