package utilities

import (
	"strings"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
)

// axisTarget maps a utility head ("px") to the properties it expands to.
// Axis heads always expand to exactly two properties in a fixed order;
// logical heads (ps, pe, ms, me) map to a single inline-start/end property.
type axisTarget struct {
	head  string
	props []string
}

var paddingTargets = []axisTarget{
	{"p", []string{"padding"}},
	{"px", []string{"padding-left", "padding-right"}},
	{"py", []string{"padding-top", "padding-bottom"}},
	{"pt", []string{"padding-top"}},
	{"pr", []string{"padding-right"}},
	{"pb", []string{"padding-bottom"}},
	{"pl", []string{"padding-left"}},
	{"ps", []string{"padding-inline-start"}},
	{"pe", []string{"padding-inline-end"}},
}

var marginTargets = []axisTarget{
	{"m", []string{"margin"}},
	{"mx", []string{"margin-left", "margin-right"}},
	{"my", []string{"margin-top", "margin-bottom"}},
	{"mt", []string{"margin-top"}},
	{"mr", []string{"margin-right"}},
	{"mb", []string{"margin-bottom"}},
	{"ml", []string{"margin-left"}},
	{"ms", []string{"margin-inline-start"}},
	{"me", []string{"margin-inline-end"}},
}

var gapTargets = []axisTarget{
	{"gap-x", []string{"column-gap"}},
	{"gap-y", []string{"row-gap"}},
	{"gap", []string{"gap"}},
}

// spaceBetweenSelector targets every visible child except the first.
const spaceBetweenSelector = " > :not([hidden]) ~ :not([hidden])"

type axisParser struct {
	name     string
	targets  []axisTarget
	values   func(suffix string) (string, bool)
	negative bool
	examples []string
	scope    string
}

func (p *axisParser) Name() string { return p.name }

func (p *axisParser) Prefixes() []string {
	out := make([]string, 0, len(p.targets))
	for _, t := range p.targets {
		out = append(out, t.head+"-")
	}
	return out
}

func (p *axisParser) Examples() []string { return p.examples }

func (p *axisParser) SelectorSuffix(string) string { return p.scope }

func (p *axisParser) Parse(base string, negative bool) ([]css.Property, bool) {
	if negative && !p.negative {
		return nil, false
	}
	for _, t := range p.targets {
		suffix, ok := strings.CutPrefix(base, t.head+"-")
		if !ok {
			continue
		}
		value, ok := p.values(suffix)
		if !ok {
			return nil, false
		}
		if negative {
			value = negate(value)
		}
		props := make([]css.Property, 0, len(t.props))
		for _, name := range t.props {
			props = append(props, css.Prop(name, value))
		}
		return props, true
	}
	return nil, false
}

// spacingValue resolves a spacing-scale key, an extra keyword, or a
// bracketed length.
func spacingValue(th *theme.Theme, extra map[string]string) func(string) (string, bool) {
	return func(suffix string) (string, bool) {
		if v, ok := extra[suffix]; ok {
			return v, true
		}
		if v, ok := th.Spacing[suffix]; ok {
			return v, true
		}
		if raw, ok := arbitrary(suffix); ok && isLength(raw) {
			return raw, true
		}
		return "", false
	}
}

func spacingParsers(th *theme.Theme) []Parser {
	return []Parser{
		&axisParser{
			name:     "padding",
			targets:  paddingTargets,
			values:   spacingValue(th, nil),
			examples: []string{"p-4", "px-4", "py-2", "pt-0", "ps-3", "pe-[10px]", "p-px"},
		},
		&axisParser{
			name:     "margin",
			targets:  marginTargets,
			values:   spacingValue(th, map[string]string{"auto": "auto"}),
			negative: true,
			examples: []string{"m-4", "mx-auto", "my-8", "mt-[calc(100%-2rem)]", "ms-2", "me-1.5"},
		},
		&axisParser{
			name:     "gap",
			targets:  gapTargets,
			values:   spacingValue(th, nil),
			examples: []string{"gap-4", "gap-x-2", "gap-y-[3px]"},
		},
		newSpaceBetweenParser(th),
	}
}

func newSpaceBetweenParser(th *theme.Theme) Parser {
	values := spacingValue(th, nil)
	return &funcParser{
		name:     "space-between",
		prefixes: []string{"space-x-", "space-y-"},
		examples: []string{"space-x-4", "space-y-2", "space-x-reverse"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			switch base {
			case "space-x-reverse":
				return []css.Property{css.Prop("--tw-space-x-reverse", "1")}, !negative
			case "space-y-reverse":
				return []css.Property{css.Prop("--tw-space-y-reverse", "1")}, !negative
			}

			property := "margin-left"
			suffix, ok := strings.CutPrefix(base, "space-x-")
			if !ok {
				property = "margin-top"
				if suffix, ok = strings.CutPrefix(base, "space-y-"); !ok {
					return nil, false
				}
			}
			value, ok := values(suffix)
			if !ok {
				return nil, false
			}
			if negative {
				value = negate(value)
			}
			return []css.Property{css.Prop(property, value)}, true
		},
		scope: func(string) string { return spaceBetweenSelector },
	}
}
