// Package variant splits a utility token into its ":"-separated modifiers and
// the base token, and derives the selector pieces and media query those
// modifiers imply.
package variant

import (
	"strings"
)

// Kind classifies a variant prefix
type Kind int

// Variant kinds
const (
	Responsive Kind = iota
	PseudoClass
	PseudoElement
	Dark
	Group
	Peer
	Arbitrary
	Custom
)

func (k Kind) String() string {
	switch k {
	case Responsive:
		return "responsive"
	case PseudoClass:
		return "pseudo-class"
	case PseudoElement:
		return "pseudo-element"
	case Dark:
		return "dark"
	case Group:
		return "group"
	case Peer:
		return "peer"
	case Arbitrary:
		return "arbitrary"
	case Custom:
		return "custom"
	}
	return "unknown"
}

// Variant is one resolved modifier
type Variant struct {
	Kind Kind
	Name string // "md", "hover", "[&>*]", "group-hover"
}

// Resolution is the outcome of resolving a raw token
type Resolution struct {
	Token     string    // Original input
	Variants  []Variant // Left-to-right textual order
	Base      string    // Token with variants and leading markers stripped
	Important bool      // "!" marker on the base token
	Negative  bool      // "-" marker on the base token
}

// HasVariants reports whether at least one variant was recognized.
func (r Resolution) HasVariants() bool {
	return len(r.Variants) > 0
}

// Breakpoints maps responsive prefixes to their min-width in pixels
var Breakpoints = map[string]int{
	"sm":  640,
	"md":  768,
	"lg":  1024,
	"xl":  1280,
	"2xl": 1536,
}

// pseudoClasses maps state prefixes to the selector fragment they append
var pseudoClasses = map[string]string{
	"hover":             ":hover",
	"focus":             ":focus",
	"active":            ":active",
	"visited":           ":visited",
	"target":            ":target",
	"disabled":          ":disabled",
	"enabled":           ":enabled",
	"checked":           ":checked",
	"indeterminate":     ":indeterminate",
	"default":           ":default",
	"required":          ":required",
	"optional":          ":optional",
	"valid":             ":valid",
	"invalid":           ":invalid",
	"in-range":          ":in-range",
	"out-of-range":      ":out-of-range",
	"read-only":         ":read-only",
	"placeholder-shown": ":placeholder-shown",
	"autofill":          ":autofill",
	"empty":             ":empty",
	"focus-within":      ":focus-within",
	"focus-visible":     ":focus-visible",
	"first":             ":first-child",
	"last":              ":last-child",
	"only":              ":only-child",
	"odd":               ":nth-child(odd)",
	"even":              ":nth-child(even)",
	"first-of-type":     ":first-of-type",
	"last-of-type":      ":last-of-type",
	"only-of-type":      ":only-of-type",
	"open":              "[open]",
}

// pseudoElements maps element prefixes to their "::" selector
var pseudoElements = map[string]string{
	"before":       "::before",
	"after":        "::after",
	"placeholder":  "::placeholder",
	"selection":    "::selection",
	"marker":       "::marker",
	"file":         "::file-selector-button",
	"first-line":   "::first-line",
	"first-letter": "::first-letter",
	"backdrop":     "::backdrop",
}

// customMedia maps custom markers to the media condition they imply
var customMedia = map[string]string{
	"motion-safe":   "(prefers-reduced-motion: no-preference)",
	"motion-reduce": "(prefers-reduced-motion: reduce)",
	"print":         "print",
	"portrait":      "(orientation: portrait)",
	"landscape":     "(orientation: landscape)",
	"contrast-more": "(prefers-contrast: more)",
	"contrast-less": "(prefers-contrast: less)",
}

// customPrefixes maps custom markers to an ancestor selector prefix
var customPrefixes = map[string]string{
	"rtl": `[dir="rtl"] `,
	"ltr": `[dir="ltr"] `,
}

const darkMedia = "(prefers-color-scheme: dark)"

// Resolve splits token into variants and a base token. It never fails: the
// first segment that is not a known variant, and everything after it, is
// rolled back into the base token.
func Resolve(token string) Resolution {
	res := Resolution{Token: token}

	segments := splitSegments(token)
	base := segments[len(segments)-1]
	prefixes := segments[:len(segments)-1]

	for i, seg := range prefixes {
		v, ok := classify(seg)
		if !ok {
			base = strings.Join(segments[i:], ":")
			break
		}
		res.Variants = append(res.Variants, v)
	}

	if strings.HasPrefix(base, "!") {
		res.Important = true
		base = base[1:]
	} else if strings.HasSuffix(base, "!") && len(base) > 1 {
		res.Important = true
		base = base[:len(base)-1]
	}

	if strings.HasPrefix(base, "-") && len(base) > 1 {
		res.Negative = true
		base = base[1:]
	}

	res.Base = base
	return res
}

// splitSegments splits on ":" at bracket depth zero. Unbalanced brackets
// disable splitting entirely so the token is treated as one base segment.
func splitSegments(token string) []string {
	var segments []string
	depth := 0
	start := 0

	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
			if depth < 0 {
				return []string{token}
			}
		case ':':
			if depth == 0 {
				segments = append(segments, token[start:i])
				start = i + 1
			}
		}
	}

	if depth != 0 {
		return []string{token}
	}

	return append(segments, token[start:])
}

// classify matches one prefix segment against the closed vocabularies.
func classify(seg string) (Variant, bool) {
	if seg == "" {
		return Variant{}, false
	}
	if _, ok := Breakpoints[seg]; ok {
		return Variant{Kind: Responsive, Name: seg}, true
	}
	if seg == "dark" {
		return Variant{Kind: Dark, Name: seg}, true
	}
	if _, ok := pseudoClasses[seg]; ok {
		return Variant{Kind: PseudoClass, Name: seg}, true
	}
	if _, ok := pseudoElements[seg]; ok {
		return Variant{Kind: PseudoElement, Name: seg}, true
	}
	if state, ok := strings.CutPrefix(seg, "group-"); ok {
		if _, known := pseudoClasses[state]; known {
			return Variant{Kind: Group, Name: seg}, true
		}
	}
	if state, ok := strings.CutPrefix(seg, "peer-"); ok {
		if _, known := pseudoClasses[state]; known {
			return Variant{Kind: Peer, Name: seg}, true
		}
	}
	if strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]") && strings.Contains(seg, "&") {
		return Variant{Kind: Arbitrary, Name: seg}, true
	}
	if _, ok := customMedia[seg]; ok {
		return Variant{Kind: Custom, Name: seg}, true
	}
	if _, ok := customPrefixes[seg]; ok {
		return Variant{Kind: Custom, Name: seg}, true
	}
	return Variant{}, false
}

// IsBreakpoint reports whether name is a known responsive prefix.
func IsBreakpoint(name string) bool {
	_, ok := Breakpoints[name]
	return ok
}
