package utilities

import (
	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
)

var cursors = []string{
	"auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed",
	"none", "context-menu", "progress", "cell", "crosshair", "vertical-text",
	"alias", "copy", "no-drop", "grab", "grabbing", "all-scroll", "col-resize",
	"row-resize", "n-resize", "e-resize", "s-resize", "w-resize", "ne-resize",
	"nw-resize", "se-resize", "sw-resize", "ew-resize", "ns-resize",
	"nesw-resize", "nwse-resize", "zoom-in", "zoom-out",
}

var scrollMarginTargets = []axisTarget{
	{"scroll-mx", []string{"scroll-margin-left", "scroll-margin-right"}},
	{"scroll-my", []string{"scroll-margin-top", "scroll-margin-bottom"}},
	{"scroll-mt", []string{"scroll-margin-top"}},
	{"scroll-mr", []string{"scroll-margin-right"}},
	{"scroll-mb", []string{"scroll-margin-bottom"}},
	{"scroll-ml", []string{"scroll-margin-left"}},
	{"scroll-ms", []string{"scroll-margin-inline-start"}},
	{"scroll-me", []string{"scroll-margin-inline-end"}},
	{"scroll-m", []string{"scroll-margin"}},
}

var scrollPaddingTargets = []axisTarget{
	{"scroll-px", []string{"scroll-padding-left", "scroll-padding-right"}},
	{"scroll-py", []string{"scroll-padding-top", "scroll-padding-bottom"}},
	{"scroll-pt", []string{"scroll-padding-top"}},
	{"scroll-pr", []string{"scroll-padding-right"}},
	{"scroll-pb", []string{"scroll-padding-bottom"}},
	{"scroll-pl", []string{"scroll-padding-left"}},
	{"scroll-ps", []string{"scroll-padding-inline-start"}},
	{"scroll-pe", []string{"scroll-padding-inline-end"}},
	{"scroll-p", []string{"scroll-padding"}},
}

func cursorParser() Parser {
	table := make(map[string][]css.Property, len(cursors))
	for _, c := range cursors {
		table["cursor-"+c] = []css.Property{css.Prop("cursor", c)}
	}
	return keywords("cursor", table)
}

func interactivityParsers(th *theme.Theme) []Parser {
	return []Parser{
		cursorParser(),
		keywords("pointer-events", keywordProp("pointer-events", map[string]string{
			"pointer-events-none": "none",
			"pointer-events-auto": "auto",
		})),
		keywords("resize", keywordProp("resize", map[string]string{
			"resize-none": "none",
			"resize-y":    "vertical",
			"resize-x":    "horizontal",
			"resize":      "both",
		})),
		keywords("user-select", keywordProp("user-select", map[string]string{
			"select-none": "none",
			"select-text": "text",
			"select-all":  "all",
			"select-auto": "auto",
		})),
		keywords("scroll-behavior", keywordProp("scroll-behavior", map[string]string{
			"scroll-auto":   "auto",
			"scroll-smooth": "smooth",
		})),
		&axisParser{
			name:     "scroll-margin",
			targets:  scrollMarginTargets,
			values:   spacingValue(th, nil),
			negative: true,
			examples: []string{"scroll-m-4", "scroll-mt-8", "-scroll-mx-2"},
		},
		&axisParser{
			name:     "scroll-padding",
			targets:  scrollPaddingTargets,
			values:   spacingValue(th, nil),
			examples: []string{"scroll-p-4", "scroll-pt-16", "scroll-px-[10px]"},
		},
		keywords("scroll-snap", map[string][]css.Property{
			"snap-start":      {css.Prop("scroll-snap-align", "start")},
			"snap-end":        {css.Prop("scroll-snap-align", "end")},
			"snap-center":     {css.Prop("scroll-snap-align", "center")},
			"snap-align-none": {css.Prop("scroll-snap-align", "none")},
			"snap-normal":     {css.Prop("scroll-snap-stop", "normal")},
			"snap-always":     {css.Prop("scroll-snap-stop", "always")},
			"snap-none":       {css.Prop("scroll-snap-type", "none")},
			"snap-x":          {css.Prop("scroll-snap-type", "x var(--tw-scroll-snap-strictness)")},
			"snap-y":          {css.Prop("scroll-snap-type", "y var(--tw-scroll-snap-strictness)")},
			"snap-both":       {css.Prop("scroll-snap-type", "both var(--tw-scroll-snap-strictness)")},
			"snap-mandatory":  {css.Prop("--tw-scroll-snap-strictness", "mandatory")},
			"snap-proximity":  {css.Prop("--tw-scroll-snap-strictness", "proximity")},
		}),
		keywords("touch-action", keywordProp("touch-action", map[string]string{
			"touch-auto":         "auto",
			"touch-none":         "none",
			"touch-pan-x":        "pan-x",
			"touch-pan-left":     "pan-left",
			"touch-pan-right":    "pan-right",
			"touch-pan-y":        "pan-y",
			"touch-pan-up":       "pan-up",
			"touch-pan-down":     "pan-down",
			"touch-pinch-zoom":   "pinch-zoom",
			"touch-manipulation": "manipulation",
		})),
		keywords("appearance", keywordProp("appearance", map[string]string{
			"appearance-none": "none",
			"appearance-auto": "auto",
		})),
		&scaleParser{
			name: "will-change",
			rules: []scaleRule{
				{
					prefix: "will-change",
					props:  []string{"will-change"},
					scale: map[string]string{
						"auto":      "auto",
						"scroll":    "scroll-position",
						"contents":  "contents",
						"transform": "transform",
					},
					arbitrary: anyValue,
				},
			},
			examples: []string{"will-change-auto", "will-change-transform", "will-change-[top,left]"},
		},
	}
}
