package variant

import (
	"fmt"
	"strings"
)

// SelectorParts derives the selector prefix (ancestor combinators) and suffix
// (pseudo-classes, arbitrary fragments, pseudo-elements) for variants.
// Pseudo-elements are always emitted last since CSS requires it.
func SelectorParts(variants []Variant) (prefix, suffix string) {
	var pre, post, elements strings.Builder

	for _, v := range variants {
		switch v.Kind {
		case PseudoClass:
			post.WriteString(pseudoClasses[v.Name])
		case PseudoElement:
			elements.WriteString(pseudoElements[v.Name])
		case Group:
			state := strings.TrimPrefix(v.Name, "group-")
			pre.WriteString(".group")
			pre.WriteString(pseudoClasses[state])
			pre.WriteString(" ")
		case Peer:
			state := strings.TrimPrefix(v.Name, "peer-")
			pre.WriteString(".peer")
			pre.WriteString(pseudoClasses[state])
			pre.WriteString(" ~ ")
		case Arbitrary:
			before, after := arbitraryParts(v.Name)
			pre.WriteString(before)
			post.WriteString(after)
		case Custom:
			pre.WriteString(customPrefixes[v.Name])
		}
	}

	return pre.String(), post.String() + elements.String()
}

// arbitraryParts splits "[.dark_&:hover]" around "&" into ".dark " and ":hover".
func arbitraryParts(name string) (before, after string) {
	fragment := strings.TrimSuffix(strings.TrimPrefix(name, "["), "]")
	fragment = strings.ReplaceAll(fragment, "_", " ")
	before, after, _ = strings.Cut(fragment, "&")
	return before, after
}

// MediaQuery combines the media conditions implied by variants with " and ".
// Media types such as print lead, followed by feature conditions in textual
// order. It returns "" when no variant carries a media condition.
func MediaQuery(variants []Variant) string {
	var types, features []string
	for _, v := range variants {
		switch v.Kind {
		case Responsive:
			features = append(features, BreakpointQuery(v.Name))
		case Dark:
			features = append(features, darkMedia)
		case Custom:
			q, ok := customMedia[v.Name]
			if !ok {
				continue
			}
			if strings.HasPrefix(q, "(") {
				features = append(features, q)
			} else {
				types = append(types, q)
			}
		}
	}
	return strings.Join(append(types, features...), " and ")
}

// BreakpointQuery returns the min-width condition for a breakpoint name, or
// "" when the name is unknown.
func BreakpointQuery(name string) string {
	px, ok := Breakpoints[name]
	if !ok {
		return ""
	}
	return fmt.Sprintf("(min-width: %dpx)", px)
}
