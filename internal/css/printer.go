package css

import "strings"

// Print renders rules in the given order. Each rule carrying a media query is
// wrapped in its own @media block. Pretty output separates blocks with a
// blank line; minified output has no optional whitespace and drops the last
// semicolon of each block.
func Print(rules []Rule, minified bool) string {
	var b strings.Builder
	for i, r := range rules {
		if minified {
			writeMinified(&b, r)
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		writePretty(&b, r)
	}
	return b.String()
}

func writePretty(b *strings.Builder, r Rule) {
	indent := ""
	if r.MediaQuery != "" {
		b.WriteString("@media ")
		b.WriteString(r.MediaQuery)
		b.WriteString(" {\n")
		indent = "  "
	}

	b.WriteString(indent)
	b.WriteString(r.Selector)
	b.WriteString(" {\n")
	for _, p := range r.Properties {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		if p.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n")

	if r.MediaQuery != "" {
		b.WriteString("}\n")
	}
}

func writeMinified(b *strings.Builder, r Rule) {
	if r.MediaQuery != "" {
		b.WriteString("@media ")
		b.WriteString(r.MediaQuery)
		b.WriteString("{")
	}

	b.WriteString(r.Selector)
	b.WriteString("{")
	for i, p := range r.Properties {
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(p.Name)
		b.WriteString(":")
		b.WriteString(p.Value)
		if p.Important {
			b.WriteString("!important")
		}
	}
	b.WriteString("}")

	if r.MediaQuery != "" {
		b.WriteString("}")
	}
}

// Declarations renders a property list as "a: b; c: d".
func Declarations(props []Property) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		s := p.Name + ": " + p.Value
		if p.Important {
			s += " !important"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}

// ParseDeclarations leniently splits "a: b; c: d" into properties.
// Fragments without a colon or with an empty name are skipped.
// Semicolons inside parentheses or quotes do not split.
func ParseDeclarations(raw string) []Property {
	var props []Property
	for _, decl := range splitTopLevel(raw, ';') {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" {
			continue
		}
		important := false
		if v, found := strings.CutSuffix(value, "!important"); found {
			value = strings.TrimSpace(v)
			important = true
		}
		props = append(props, Property{Name: name, Value: value, Important: important})
	}
	return props
}

// splitTopLevel splits s on sep outside of parentheses and quotes.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	var current strings.Builder
	depth := 0
	var quote rune

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == sep && depth == 0:
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
