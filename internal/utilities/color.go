package utilities

import (
	"strings"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/gradient"
	"github.com/yacobolo/tailgen/internal/theme"
)

// colorTargets lists color prefixes and the properties they set.
// Longer prefixes precede shorter ones that share a start.
var colorTargets = []struct {
	prefix string
	props  []string
}{
	{"bg", []string{"background-color"}},
	{"text", []string{"color"}},
	{"border-x", []string{"border-left-color", "border-right-color"}},
	{"border-y", []string{"border-top-color", "border-bottom-color"}},
	{"border-t", []string{"border-top-color"}},
	{"border-r", []string{"border-right-color"}},
	{"border-b", []string{"border-bottom-color"}},
	{"border-l", []string{"border-left-color"}},
	{"border-s", []string{"border-inline-start-color"}},
	{"border-e", []string{"border-inline-end-color"}},
	{"border", []string{"border-color"}},
	{"ring-offset", []string{"--tw-ring-offset-color"}},
	{"ring", []string{"--tw-ring-color"}},
	{"outline", []string{"outline-color"}},
	{"decoration", []string{"text-decoration-color"}},
	{"accent", []string{"accent-color"}},
	{"caret", []string{"caret-color"}},
	{"fill", []string{"fill"}},
	{"stroke", []string{"stroke"}},
	{"placeholder", []string{"color"}},
	{"shadow", []string{"--tw-shadow-color"}},
}

// colorFunctions are the arbitrary-value forms accepted as colors
var colorFunctions = []string{"rgb(", "rgba(", "hsl(", "hsla(", "hwb(", "lab(", "lch(", "oklab(", "oklch(", "color(", "color-mix("}

// ResolveColor resolves a color suffix against th: "blue-500",
// "blue-500/50", "white", "[#123456]" or "[#123]/25".
func ResolveColor(th *theme.Theme, suffix string) (string, bool) {
	name, opacity, hasOpacity := cutOpacity(suffix)

	var color string
	if raw, ok := arbitrary(name); ok {
		if !isColorLiteral(raw) {
			return "", false
		}
		color = raw
	} else {
		c, ok := th.Color(name)
		if !ok {
			return "", false
		}
		color = c
	}

	if !hasOpacity {
		return color, true
	}
	return theme.WithOpacity(color, opacity)
}

// cutOpacity splits "blue-500/50" at the last slash outside brackets.
func cutOpacity(s string) (name, opacity string, ok bool) {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ']', ')':
			depth++
		case '[', '(':
			depth--
		case '/':
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

func isColorLiteral(v string) bool {
	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return false
		}
		for _, r := range hex {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return false
			}
		}
		return true
	}
	for _, fn := range colorFunctions {
		if strings.HasPrefix(v, fn) && strings.HasSuffix(v, ")") {
			return true
		}
	}
	return strings.HasPrefix(v, "var(--") && strings.HasSuffix(v, ")")
}

func newColorParser(th *theme.Theme) Parser {
	prefixes := make([]string, 0, len(colorTargets))
	for _, t := range colorTargets {
		prefixes = append(prefixes, t.prefix+"-")
	}

	return &funcParser{
		name:     "color",
		prefixes: prefixes,
		examples: []string{
			"bg-blue-500", "bg-blue-500/50", "text-white", "text-[#333]",
			"border-red-500", "border-t-slate-200", "ring-indigo-500",
			"ring-offset-white", "outline-black", "decoration-pink-500",
			"accent-emerald-600", "caret-gray-900", "fill-current",
			"stroke-sky-400", "placeholder-gray-400", "shadow-blue-500/50",
		},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			if negative {
				return nil, false
			}
			for _, t := range colorTargets {
				suffix, ok := strings.CutPrefix(base, t.prefix+"-")
				if !ok {
					continue
				}
				color, ok := ResolveColor(th, suffix)
				if !ok {
					continue
				}
				props := make([]css.Property, 0, len(t.props))
				for _, name := range t.props {
					props = append(props, css.Prop(name, color))
				}
				return props, true
			}
			return nil, false
		},
		scope: func(base string) string {
			if strings.HasPrefix(base, "placeholder-") {
				return "::placeholder"
			}
			return ""
		},
	}
}

// newGradientDirectionParser must run before every bg-* parser.
func newGradientDirectionParser() Parser {
	return &funcParser{
		name:     "gradient-direction",
		prefixes: []string{"bg-gradient-to-"},
		examples: []string{"bg-gradient-to-r", "bg-gradient-to-br", "bg-gradient-to-t"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			dir, ok := gradient.ParseDirection(base)
			if !ok || negative {
				return nil, false
			}
			return gradient.DirectionProperties(dir), true
		},
	}
}

func newGradientStopParser(th *theme.Theme) Parser {
	return &funcParser{
		name:     "gradient-stops",
		prefixes: []string{"from-", "via-", "to-"},
		examples: []string{"from-blue-500", "via-white", "to-red-500/50", "from-[#ff0000]"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			if negative {
				return nil, false
			}
			stop, color, ok := gradient.ParseStop(base, func(name string) (string, bool) {
				return ResolveColor(th, name)
			})
			if !ok {
				return nil, false
			}
			return gradient.StopProperties(stop, color), true
		},
	}
}
