package utilities

import (
	"github.com/yacobolo/tailgen/internal/css"
)

// filterFunc is one CSS filter function with its enumerated scale.
// Each becomes its own parser for filter and for backdrop-filter.
type filterFunc struct {
	name     string
	fn       string
	scale    map[string]string
	negative bool
	examples []string
}

var filterFuncs = []filterFunc{
	{
		name: "blur",
		fn:   "blur",
		scale: map[string]string{
			"none": "0",
			"sm":   "4px",
			"":     "8px",
			"md":   "12px",
			"lg":   "16px",
			"xl":   "24px",
			"2xl":  "40px",
			"3xl":  "64px",
		},
		examples: []string{"blur", "blur-sm", "blur-3xl"},
	},
	{
		name:     "brightness",
		fn:       "brightness",
		scale:    percentScale(0, 50, 75, 90, 95, 100, 105, 110, 125, 150, 200),
		examples: []string{"brightness-50", "brightness-125"},
	},
	{
		name:     "contrast",
		fn:       "contrast",
		scale:    percentScale(0, 50, 75, 100, 125, 150, 200),
		examples: []string{"contrast-75", "contrast-200"},
	},
	{
		name:     "grayscale",
		fn:       "grayscale",
		scale:    map[string]string{"": "100%", "0": "0"},
		examples: []string{"grayscale", "grayscale-0"},
	},
	{
		name:     "hue-rotate",
		fn:       "hue-rotate",
		scale:    unitScale("deg", "0", "15", "30", "60", "90", "180"),
		negative: true,
		examples: []string{"hue-rotate-90", "hue-rotate-180"},
	},
	{
		name:     "invert",
		fn:       "invert",
		scale:    map[string]string{"": "100%", "0": "0"},
		examples: []string{"invert", "invert-0"},
	},
	{
		name:     "saturate",
		fn:       "saturate",
		scale:    percentScale(0, 50, 100, 150, 200),
		examples: []string{"saturate-50", "saturate-200"},
	},
	{
		name:     "sepia",
		fn:       "sepia",
		scale:    map[string]string{"": "100%", "0": "0"},
		examples: []string{"sepia", "sepia-0"},
	},
}

var dropShadows = map[string]string{
	"sm":   "drop-shadow(0 1px 1px rgb(0 0 0 / 0.05))",
	"":     "drop-shadow(0 1px 2px rgb(0 0 0 / 0.1)) drop-shadow(0 1px 1px rgb(0 0 0 / 0.06))",
	"md":   "drop-shadow(0 4px 3px rgb(0 0 0 / 0.07)) drop-shadow(0 2px 2px rgb(0 0 0 / 0.06))",
	"lg":   "drop-shadow(0 10px 8px rgb(0 0 0 / 0.04)) drop-shadow(0 4px 3px rgb(0 0 0 / 0.1))",
	"xl":   "drop-shadow(0 20px 13px rgb(0 0 0 / 0.03)) drop-shadow(0 8px 5px rgb(0 0 0 / 0.08))",
	"2xl":  "drop-shadow(0 25px 25px rgb(0 0 0 / 0.15))",
	"none": "drop-shadow(0 0 #0000)",
}

func newFilterFuncParser(f filterFunc, prefix, property string) Parser {
	examples := make([]string, 0, len(f.examples))
	for _, e := range f.examples {
		examples = append(examples, prefixed(prefix, e))
	}

	return &scaleParser{
		name: prefixed(prefix, f.name),
		rules: []scaleRule{
			{
				prefix:    prefixed(prefix, f.name),
				props:     []string{property},
				scale:     f.scale,
				arbitrary: anyValue,
				negative:  f.negative,
				format:    wrap(f.fn),
			},
		},
		examples: examples,
	}
}

func prefixed(prefix, s string) string {
	if prefix == "" {
		return s
	}
	return prefix + "-" + s
}

func filterParsers() []Parser {
	parsers := make([]Parser, 0, len(filterFuncs)+2)
	for _, f := range filterFuncs {
		parsers = append(parsers, newFilterFuncParser(f, "", "filter"))
	}
	parsers = append(parsers,
		&scaleParser{
			name: "drop-shadow",
			rules: []scaleRule{
				{prefix: "drop-shadow", props: []string{"filter"}, scale: dropShadows},
			},
			examples: []string{"drop-shadow", "drop-shadow-lg", "drop-shadow-none"},
		},
		keywords("filter", map[string][]css.Property{
			"filter-none": {css.Prop("filter", "none")},
		}),
	)
	return parsers
}

func backdropParsers() []Parser {
	parsers := make([]Parser, 0, len(filterFuncs)+2)
	for _, f := range filterFuncs {
		parsers = append(parsers, newFilterFuncParser(f, "backdrop", "backdrop-filter"))
	}
	parsers = append(parsers,
		&scaleParser{
			name: "backdrop-opacity",
			rules: []scaleRule{
				{prefix: "backdrop-opacity", props: []string{"backdrop-filter"}, scale: opacityScale, arbitrary: isNumber, format: wrap("opacity")},
			},
			examples: []string{"backdrop-opacity-50"},
		},
		keywords("backdrop-filter", map[string][]css.Property{
			"backdrop-filter-none": {css.Prop("backdrop-filter", "none")},
		}),
	)
	return parsers
}
