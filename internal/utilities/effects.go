package utilities

import (
	"strings"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
)

var textShadows = map[string]string{
	"2xs":  "0px 1px 0px rgb(0 0 0 / 0.15)",
	"xs":   "0px 1px 1px rgb(0 0 0 / 0.2)",
	"sm":   "0px 1px 0px rgb(0 0 0 / 0.075), 0px 1px 1px rgb(0 0 0 / 0.075), 0px 2px 2px rgb(0 0 0 / 0.075)",
	"md":   "0px 1px 1px rgb(0 0 0 / 0.1), 0px 1px 2px rgb(0 0 0 / 0.1), 0px 2px 4px rgb(0 0 0 / 0.1)",
	"lg":   "0px 1px 2px rgb(0 0 0 / 0.1), 0px 3px 2px rgb(0 0 0 / 0.1), 0px 4px 8px rgb(0 0 0 / 0.1)",
	"none": "none",
}

var blendModes = []string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge",
	"color-burn", "hard-light", "soft-light", "difference", "exclusion", "hue",
	"saturation", "color", "luminosity", "plus-darker", "plus-lighter",
}

var opacityScale = percentScale(0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 100)

func blendTable(prefix, property string) map[string][]css.Property {
	table := make(map[string][]css.Property, len(blendModes))
	for _, m := range blendModes {
		table[prefix+"-"+m] = []css.Property{css.Prop(property, m)}
	}
	return table
}

func newBoxShadowParser(th *theme.Theme) Parser {
	return &funcParser{
		name:     "box-shadow",
		prefixes: []string{"shadow-"},
		examples: []string{"shadow", "shadow-md", "shadow-inner", "shadow-none", "shadow-[0_35px_60px_-15px_rgba(0,0,0,0.3)]"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			suffix, ok := cutUtility(base, "shadow")
			if !ok || negative {
				return nil, false
			}
			if v, ok := th.Shadow[suffix]; ok {
				return []css.Property{css.Prop("box-shadow", v)}, true
			}
			if raw, ok := arbitrary(suffix); ok && !isColorLiteral(raw) {
				return []css.Property{css.Prop("box-shadow", raw)}, true
			}
			return nil, false
		},
	}
}

func newMaskParser() Parser {
	table := map[string][]css.Property{
		"mask-none":      {css.Prop("mask-image", "none")},
		"mask-repeat":    {css.Prop("mask-repeat", "repeat")},
		"mask-no-repeat": {css.Prop("mask-repeat", "no-repeat")},
		"mask-auto":      {css.Prop("mask-size", "auto")},
		"mask-cover":     {css.Prop("mask-size", "cover")},
		"mask-contain":   {css.Prop("mask-size", "contain")},
		"mask-center":    {css.Prop("mask-position", "center")},
		"mask-alpha":     {css.Prop("mask-mode", "alpha")},
		"mask-luminance": {css.Prop("mask-mode", "luminance")},
	}

	return &funcParser{
		name:     "mask",
		prefixes: []string{"mask-"},
		examples: []string{"mask-none", "mask-no-repeat", "mask-cover", "mask-[url(/mask.svg)]"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			if negative {
				return nil, false
			}
			if props, ok := table[base]; ok {
				return append([]css.Property(nil), props...), true
			}
			suffix, ok := strings.CutPrefix(base, "mask-")
			if !ok {
				return nil, false
			}
			raw, ok := arbitrary(suffix)
			if !ok {
				return nil, false
			}
			return []css.Property{css.Prop("mask-image", raw)}, true
		},
	}
}

func effectsParsers(th *theme.Theme) []Parser {
	return []Parser{
		newBoxShadowParser(th),
		&scaleParser{
			name: "text-shadow",
			rules: []scaleRule{
				{prefix: "text-shadow", props: []string{"text-shadow"}, scale: textShadows, arbitrary: anyValue},
			},
			examples: []string{"text-shadow-sm", "text-shadow-lg", "text-shadow-none"},
		},
		&scaleParser{
			name: "opacity",
			rules: []scaleRule{
				{prefix: "opacity", props: []string{"opacity"}, scale: opacityScale, arbitrary: isNumber},
			},
			examples: []string{"opacity-0", "opacity-50", "opacity-100", "opacity-[.67]"},
		},
		keywords("mix-blend-mode", blendTable("mix-blend", "mix-blend-mode")),
		keywords("background-blend-mode", blendTable("bg-blend", "background-blend-mode")),
		newMaskParser(),
	}
}
