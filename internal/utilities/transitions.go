package utilities

import (
	"github.com/yacobolo/tailgen/internal/css"
)

const (
	defaultEasing   = "cubic-bezier(0.4, 0, 0.2, 1)"
	defaultDuration = "150ms"
)

var transitionProperties = map[string]string{
	"":          "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter, backdrop-filter",
	"all":       "all",
	"colors":    "color, background-color, border-color, text-decoration-color, fill, stroke",
	"opacity":   "opacity",
	"shadow":    "box-shadow",
	"transform": "transform",
}

var animations = map[string]string{
	"none":   "none",
	"spin":   "spin 1s linear infinite",
	"ping":   "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
	"pulse":  "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite",
	"bounce": "bounce 1s infinite",
}

var timingScale = unitScale("ms", "0", "75", "100", "150", "200", "300", "500", "700", "1000")

func newTransitionParser() Parser {
	return &funcParser{
		name:     "transition",
		prefixes: []string{"transition-"},
		examples: []string{"transition", "transition-colors", "transition-all", "transition-none", "transition-[height]"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			suffix, ok := cutUtility(base, "transition")
			if !ok || negative {
				return nil, false
			}
			if suffix == "none" {
				return []css.Property{css.Prop("transition-property", "none")}, true
			}
			value, ok := transitionProperties[suffix]
			if !ok {
				raw, isArb := arbitrary(suffix)
				if !isArb {
					return nil, false
				}
				value = raw
			}
			return []css.Property{
				css.Prop("transition-property", value),
				css.Prop("transition-timing-function", defaultEasing),
				css.Prop("transition-duration", defaultDuration),
			}, true
		},
	}
}

func transitionParsers() []Parser {
	return []Parser{
		newTransitionParser(),
		&scaleParser{
			name: "duration",
			rules: []scaleRule{
				{prefix: "duration", props: []string{"transition-duration"}, scale: timingScale, arbitrary: anyValue},
			},
			examples: []string{"duration-150", "duration-1000", "duration-[2s]"},
		},
		&scaleParser{
			name: "ease",
			rules: []scaleRule{
				{
					prefix: "ease",
					props:  []string{"transition-timing-function"},
					scale: map[string]string{
						"linear": "linear",
						"in":     "cubic-bezier(0.4, 0, 1, 1)",
						"out":    "cubic-bezier(0, 0, 0.2, 1)",
						"in-out": defaultEasing,
					},
					arbitrary: anyValue,
				},
			},
			examples: []string{"ease-linear", "ease-in-out", "ease-[cubic-bezier(0.95,0.05,0.795,0.035)]"},
		},
		&scaleParser{
			name: "delay",
			rules: []scaleRule{
				{prefix: "delay", props: []string{"transition-delay"}, scale: timingScale, arbitrary: anyValue},
			},
			examples: []string{"delay-75", "delay-300"},
		},
		&scaleParser{
			name: "animation",
			rules: []scaleRule{
				{prefix: "animate", props: []string{"animation"}, scale: animations, arbitrary: anyValue},
			},
			examples: []string{"animate-spin", "animate-pulse", "animate-none"},
		},
	}
}
