package utilities

import (
	"github.com/yacobolo/tailgen/internal/css"
)

// svgParsers covers the non-color SVG utilities. fill-* and stroke-* colors
// are owned by the color parser, which runs earlier.
func svgParsers() []Parser {
	return []Parser{
		keywords("svg-paint", map[string][]css.Property{
			"fill-none":   {css.Prop("fill", "none")},
			"stroke-none": {css.Prop("stroke", "none")},
		}),
		&scaleParser{
			name: "stroke-width",
			rules: []scaleRule{
				{prefix: "stroke", props: []string{"stroke-width"}, scale: intScale(0, 2), arbitrary: func(v string) bool { return isLength(v) || isNumber(v) }},
			},
			examples: []string{"stroke-0", "stroke-1", "stroke-2", "stroke-[1.5]"},
		},
	}
}
