package pattern

import "strings"

// metaChars are the characters with a meaning of their own outside a
// backslash escape.
const metaChars = `\[]{}+*?`

// QuoteMeta returns s with every metacharacter backslash-escaped, so that
// the result parses to literal atoms spelling exactly s.
func QuoteMeta(s string) string {
	if !strings.ContainsAny(s, metaChars) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if strings.ContainsRune(metaChars, r) {
			b.WriteByte(escapeChar)
		}
		b.WriteRune(r)
	}
	return b.String()
}
