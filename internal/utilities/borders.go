package utilities

import (
	"strings"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
)

var borderWidthScale = withEntries(unitScale("px", "0", "2", "4", "8"), map[string]string{"": "1px"})

var borderSides = []axisTarget{
	{"border-x", []string{"border-left-width", "border-right-width"}},
	{"border-y", []string{"border-top-width", "border-bottom-width"}},
	{"border-t", []string{"border-top-width"}},
	{"border-r", []string{"border-right-width"}},
	{"border-b", []string{"border-bottom-width"}},
	{"border-l", []string{"border-left-width"}},
	{"border-s", []string{"border-inline-start-width"}},
	{"border-e", []string{"border-inline-end-width"}},
	{"border", []string{"border-width"}},
}

var radiusCorners = []axisTarget{
	{"rounded-tl", []string{"border-top-left-radius"}},
	{"rounded-tr", []string{"border-top-right-radius"}},
	{"rounded-br", []string{"border-bottom-right-radius"}},
	{"rounded-bl", []string{"border-bottom-left-radius"}},
	{"rounded-ss", []string{"border-start-start-radius"}},
	{"rounded-se", []string{"border-start-end-radius"}},
	{"rounded-es", []string{"border-end-start-radius"}},
	{"rounded-ee", []string{"border-end-end-radius"}},
	{"rounded-t", []string{"border-top-left-radius", "border-top-right-radius"}},
	{"rounded-r", []string{"border-top-right-radius", "border-bottom-right-radius"}},
	{"rounded-b", []string{"border-bottom-right-radius", "border-bottom-left-radius"}},
	{"rounded-l", []string{"border-top-left-radius", "border-bottom-left-radius"}},
	{"rounded-s", []string{"border-start-start-radius", "border-end-start-radius"}},
	{"rounded-e", []string{"border-start-end-radius", "border-end-end-radius"}},
	{"rounded", []string{"border-radius"}},
}

// sideParser is an axisParser variant where the bare head ("border",
// "rounded-t") is itself a valid token resolved through the "" key.
type sideParser struct {
	name     string
	targets  []axisTarget
	values   func(suffix string) (string, bool)
	examples []string
}

func (p *sideParser) Name() string { return p.name }

func (p *sideParser) Prefixes() []string {
	out := make([]string, 0, len(p.targets))
	for _, t := range p.targets {
		out = append(out, t.head+"-")
	}
	return out
}

func (p *sideParser) Examples() []string { return p.examples }

func (p *sideParser) Parse(base string, negative bool) ([]css.Property, bool) {
	if negative {
		return nil, false
	}
	for _, t := range p.targets {
		suffix, ok := cutUtility(base, t.head)
		if !ok {
			continue
		}
		value, ok := p.values(suffix)
		if !ok {
			continue
		}
		props := make([]css.Property, 0, len(t.props))
		for _, name := range t.props {
			props = append(props, css.Prop(name, value))
		}
		return props, true
	}
	return nil, false
}

func scaleOrLength(scale map[string]string) func(string) (string, bool) {
	return func(suffix string) (string, bool) {
		if v, ok := scale[suffix]; ok {
			return v, true
		}
		if raw, ok := arbitrary(suffix); ok && isLength(raw) {
			return raw, true
		}
		return "", false
	}
}

var borderStyles = map[string]string{
	"solid":  "solid",
	"dashed": "dashed",
	"dotted": "dotted",
	"double": "double",
	"hidden": "hidden",
	"none":   "none",
}

func prefixedStyles(prefix, property string) map[string][]css.Property {
	table := make(map[string][]css.Property, len(borderStyles))
	for k, v := range borderStyles {
		table[prefix+"-"+k] = []css.Property{css.Prop(property, v)}
	}
	return table
}

func bordersParsers(th *theme.Theme) []Parser {
	return []Parser{
		&sideParser{
			name:     "border-width",
			targets:  borderSides,
			values:   scaleOrLength(borderWidthScale),
			examples: []string{"border", "border-2", "border-x-4", "border-t", "border-s-0", "border-[3px]"},
		},
		keywords("border-style", prefixedStyles("border", "border-style")),
		&sideParser{
			name:     "border-radius",
			targets:  radiusCorners,
			values:   scaleOrLength(th.Radius),
			examples: []string{"rounded", "rounded-lg", "rounded-full", "rounded-t-md", "rounded-tl-none", "rounded-[12px]"},
		},
		newOutlineParser(),
		newRingParser(),
		newDivideParser(),
		newDivideColorParser(th),
	}
}

func newOutlineParser() Parser {
	styles := map[string]string{"dashed": "dashed", "dotted": "dotted", "double": "double"}
	widths := unitScale("px", "0", "1", "2", "4", "8")

	return &funcParser{
		name:     "outline",
		prefixes: []string{"outline-", "outline-offset-"},
		examples: []string{"outline", "outline-none", "outline-dashed", "outline-2", "outline-offset-4"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			switch base {
			case "outline":
				return []css.Property{css.Prop("outline-style", "solid")}, !negative
			case "outline-none":
				return []css.Property{
					css.Prop("outline", "2px solid transparent"),
					css.Prop("outline-offset", "2px"),
				}, !negative
			}
			if suffix, ok := strings.CutPrefix(base, "outline-offset-"); ok {
				v, ok := scaleOrLength(widths)(suffix)
				if !ok {
					return nil, false
				}
				if negative {
					v = negate(v)
				}
				return []css.Property{css.Prop("outline-offset", v)}, true
			}
			suffix, ok := strings.CutPrefix(base, "outline-")
			if !ok || negative {
				return nil, false
			}
			if s, ok := styles[suffix]; ok {
				return []css.Property{css.Prop("outline-style", s)}, true
			}
			if v, ok := scaleOrLength(widths)(suffix); ok {
				return []css.Property{css.Prop("outline-width", v)}, true
			}
			return nil, false
		},
	}
}

const defaultRingColor = "rgb(59 130 246 / 0.5)"

func ringShadow(width string) string {
	return "var(--tw-ring-inset,) 0 0 0 calc(" + width + " + var(--tw-ring-offset-width, 0px)) var(--tw-ring-color, " + defaultRingColor + ")"
}

func newRingParser() Parser {
	widths := withEntries(unitScale("px", "0", "1", "2", "4", "8"), map[string]string{"": "3px"})
	offsets := unitScale("px", "0", "1", "2", "4", "8")

	return &funcParser{
		name:     "ring",
		prefixes: []string{"ring-", "ring-offset-"},
		examples: []string{"ring", "ring-2", "ring-inset", "ring-offset-2", "ring-[5px]"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			if negative {
				return nil, false
			}
			if base == "ring-inset" {
				return []css.Property{css.Prop("--tw-ring-inset", "inset")}, true
			}
			if suffix, ok := strings.CutPrefix(base, "ring-offset-"); ok {
				v, ok := scaleOrLength(offsets)(suffix)
				if !ok {
					return nil, false
				}
				return []css.Property{css.Prop("--tw-ring-offset-width", v)}, true
			}
			suffix, ok := cutUtility(base, "ring")
			if !ok {
				return nil, false
			}
			v, ok := scaleOrLength(widths)(suffix)
			if !ok {
				return nil, false
			}
			return []css.Property{css.Prop("box-shadow", ringShadow(v))}, true
		},
	}
}

// newDivideParser styles the borders between children, so every rule it
// produces is scoped to the same sibling selector as space-x/space-y.
func newDivideParser() Parser {
	widths := withEntries(unitScale("px", "0", "2", "4", "8"), map[string]string{"": "1px"})

	return &funcParser{
		name:     "divide",
		prefixes: []string{"divide-x-", "divide-y-", "divide-"},
		examples: []string{"divide-x", "divide-y-2", "divide-dashed", "divide-x-reverse"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			if negative {
				return nil, false
			}
			switch base {
			case "divide-x-reverse":
				return []css.Property{css.Prop("--tw-divide-x-reverse", "1")}, true
			case "divide-y-reverse":
				return []css.Property{css.Prop("--tw-divide-y-reverse", "1")}, true
			}
			if suffix, ok := cutUtility(base, "divide-x"); ok {
				v, ok := scaleOrLength(widths)(suffix)
				if !ok {
					return nil, false
				}
				return []css.Property{css.Prop("border-left-width", v), css.Prop("border-right-width", "0px")}, true
			}
			if suffix, ok := cutUtility(base, "divide-y"); ok {
				v, ok := scaleOrLength(widths)(suffix)
				if !ok {
					return nil, false
				}
				return []css.Property{css.Prop("border-top-width", v), css.Prop("border-bottom-width", "0px")}, true
			}
			if suffix, ok := strings.CutPrefix(base, "divide-"); ok {
				if s, ok := borderStyles[suffix]; ok {
					return []css.Property{css.Prop("border-style", s)}, true
				}
			}
			return nil, false
		},
		scope: func(string) string { return spaceBetweenSelector },
	}
}

// newDivideColorParser shares the divide scope but resolves palette colors.
func newDivideColorParser(th *theme.Theme) Parser {
	return &funcParser{
		name:     "divide-color",
		prefixes: []string{"divide-"},
		examples: []string{"divide-gray-200", "divide-red-500/25"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			suffix, ok := strings.CutPrefix(base, "divide-")
			if !ok || negative {
				return nil, false
			}
			color, ok := ResolveColor(th, suffix)
			if !ok {
				return nil, false
			}
			return []css.Property{css.Prop("border-color", color)}, true
		},
		scope: func(string) string { return spaceBetweenSelector },
	}
}
