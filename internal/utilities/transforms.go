package utilities

import (
	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
)

var (
	scaleValues  = percentScale(0, 50, 75, 90, 95, 100, 105, 110, 125, 150)
	rotateValues = unitScale("deg", "0", "1", "2", "3", "6", "12", "45", "90", "180")
	skewValues   = unitScale("deg", "0", "1", "2", "3", "6", "12")
)

func transformParsers(th *theme.Theme) []Parser {
	translate := withEntries(th.Spacing, fractionScale())

	return []Parser{
		&scaleParser{
			name: "scale",
			rules: []scaleRule{
				{prefix: "scale-x", props: []string{"transform"}, scale: scaleValues, arbitrary: isNumber, negative: true, format: wrap("scaleX")},
				{prefix: "scale-y", props: []string{"transform"}, scale: scaleValues, arbitrary: isNumber, negative: true, format: wrap("scaleY")},
				{prefix: "scale", props: []string{"transform"}, scale: scaleValues, arbitrary: isNumber, negative: true, format: wrap("scale")},
			},
			examples: []string{"scale-105", "scale-x-50", "scale-y-[1.7]"},
		},
		&scaleParser{
			name: "rotate",
			rules: []scaleRule{
				{prefix: "rotate", props: []string{"transform"}, scale: rotateValues, arbitrary: anyValue, negative: true, format: wrap("rotate")},
			},
			examples: []string{"rotate-45", "rotate-180", "rotate-[17deg]"},
		},
		&scaleParser{
			name: "translate",
			rules: []scaleRule{
				{prefix: "translate-x", props: []string{"transform"}, scale: translate, arbitrary: isLength, negative: true, format: wrap("translateX")},
				{prefix: "translate-y", props: []string{"transform"}, scale: translate, arbitrary: isLength, negative: true, format: wrap("translateY")},
			},
			examples: []string{"translate-x-4", "translate-y-1/2", "translate-x-full", "translate-y-[3px]"},
		},
		&scaleParser{
			name: "skew",
			rules: []scaleRule{
				{prefix: "skew-x", props: []string{"transform"}, scale: skewValues, arbitrary: anyValue, negative: true, format: wrap("skewX")},
				{prefix: "skew-y", props: []string{"transform"}, scale: skewValues, arbitrary: anyValue, negative: true, format: wrap("skewY")},
			},
			examples: []string{"skew-x-3", "skew-y-12"},
		},
		&scaleParser{
			name: "transform-origin",
			rules: []scaleRule{
				{
					prefix: "origin",
					props:  []string{"transform-origin"},
					scale: map[string]string{
						"center":       "center",
						"top":          "top",
						"top-right":    "top right",
						"right":        "right",
						"bottom-right": "bottom right",
						"bottom":       "bottom",
						"bottom-left":  "bottom left",
						"left":         "left",
						"top-left":     "top left",
					},
					arbitrary: anyValue,
				},
			},
			examples: []string{"origin-center", "origin-top-left", "origin-[33%_75%]"},
		},
		keywords("transform", map[string][]css.Property{
			"transform-none": {css.Prop("transform", "none")},
			"transform-gpu":  {css.Prop("transform", "translate3d(0, 0, 0)")},
			"transform-cpu":  {css.Prop("transform", "translate(0, 0)")},
		}),
	}
}
