package css

import "strings"

// selectorSpecials are the characters a utility token may contain that are
// meaningful inside a CSS selector.
const selectorSpecials = `:/.[]()%#,!&>+~*'"@=?$^|{};<`

// Escape turns a raw class token into a selector-safe class name.
//
//	hover:bg-blue-500/50 -> hover\:bg-blue-500\/50
//	2xl:p-4              -> \32 xl\:p-4
func Escape(token string) string {
	var b strings.Builder
	b.Grow(len(token) + 8)

	for i, r := range token {
		switch {
		case i == 0 && r >= '0' && r <= '9':
			// Identifiers cannot start with a digit; use the hex code point form.
			b.WriteString(`\3`)
			b.WriteRune(r)
			b.WriteByte(' ')
		case r == ' ':
			b.WriteString(`\ `)
		case strings.ContainsRune(selectorSpecials, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ClassSelector returns "." + Escape(token).
func ClassSelector(token string) string {
	return "." + Escape(token)
}
