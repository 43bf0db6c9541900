package utilities

import (
	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
)

var insetTargets = []axisTarget{
	{"inset-x", []string{"left", "right"}},
	{"inset-y", []string{"top", "bottom"}},
	{"inset", []string{"inset"}},
	{"top", []string{"top"}},
	{"right", []string{"right"}},
	{"bottom", []string{"bottom"}},
	{"left", []string{"left"}},
	{"start", []string{"inset-inline-start"}},
	{"end", []string{"inset-inline-end"}},
}

var srOnly = []css.Property{
	css.Prop("position", "absolute"),
	css.Prop("width", "1px"),
	css.Prop("height", "1px"),
	css.Prop("padding", "0"),
	css.Prop("margin", "-1px"),
	css.Prop("overflow", "hidden"),
	css.Prop("clip", "rect(0, 0, 0, 0)"),
	css.Prop("white-space", "nowrap"),
	css.Prop("border-width", "0"),
}

var notSrOnly = []css.Property{
	css.Prop("position", "static"),
	css.Prop("width", "auto"),
	css.Prop("height", "auto"),
	css.Prop("padding", "0"),
	css.Prop("margin", "0"),
	css.Prop("overflow", "visible"),
	css.Prop("clip", "auto"),
	css.Prop("white-space", "normal"),
}

func overflowTable() map[string][]css.Property {
	table := make(map[string][]css.Property)
	for _, v := range []string{"auto", "hidden", "clip", "visible", "scroll"} {
		table["overflow-"+v] = []css.Property{css.Prop("overflow", v)}
		table["overflow-x-"+v] = []css.Property{css.Prop("overflow-x", v)}
		table["overflow-y-"+v] = []css.Property{css.Prop("overflow-y", v)}
	}
	return table
}

func overscrollTable() map[string][]css.Property {
	table := make(map[string][]css.Property)
	for _, v := range []string{"auto", "contain", "none"} {
		table["overscroll-"+v] = []css.Property{css.Prop("overscroll-behavior", v)}
		table["overscroll-x-"+v] = []css.Property{css.Prop("overscroll-behavior-x", v)}
		table["overscroll-y-"+v] = []css.Property{css.Prop("overscroll-behavior-y", v)}
	}
	return table
}

func breakTable() map[string][]css.Property {
	table := make(map[string][]css.Property)
	for _, v := range []string{"auto", "avoid", "all", "avoid-page", "page", "left", "right", "column"} {
		table["break-after-"+v] = []css.Property{css.Prop("break-after", v)}
		table["break-before-"+v] = []css.Property{css.Prop("break-before", v)}
	}
	for _, v := range []string{"auto", "avoid", "avoid-page", "avoid-column"} {
		table["break-inside-"+v] = []css.Property{css.Prop("break-inside", v)}
	}
	return table
}

func layoutParsers(th *theme.Theme) []Parser {
	insetScale := withEntries(th.Spacing, withEntries(fractionScale(), map[string]string{"auto": "auto"}))

	return []Parser{
		keywords("position", keywordProp("position", map[string]string{
			"static":   "static",
			"fixed":    "fixed",
			"absolute": "absolute",
			"relative": "relative",
			"sticky":   "sticky",
		})),
		&axisParser{
			name:     "inset",
			targets:  insetTargets,
			values:   scaleOrLength(insetScale),
			negative: true,
			examples: []string{"inset-0", "inset-x-4", "top-0", "-top-2", "left-1/2", "right-auto", "bottom-full", "start-4", "top-[3px]"},
		},
		&scaleParser{
			name: "z-index",
			rules: []scaleRule{
				{
					prefix:    "z",
					props:     []string{"z-index"},
					scale:     withEntries(unitScale("", "0", "10", "20", "30", "40", "50"), map[string]string{"auto": "auto"}),
					arbitrary: isNumber,
					negative:  true,
				},
			},
			examples: []string{"z-10", "z-50", "z-auto", "-z-10", "z-[100]"},
		},
		keywords("float", map[string][]css.Property{
			"float-left":  {css.Prop("float", "left")},
			"float-right": {css.Prop("float", "right")},
			"float-start": {css.Prop("float", "inline-start")},
			"float-end":   {css.Prop("float", "inline-end")},
			"float-none":  {css.Prop("float", "none")},
		}),
		keywords("clear", map[string][]css.Property{
			"clear-left":  {css.Prop("clear", "left")},
			"clear-right": {css.Prop("clear", "right")},
			"clear-both":  {css.Prop("clear", "both")},
			"clear-start": {css.Prop("clear", "inline-start")},
			"clear-end":   {css.Prop("clear", "inline-end")},
			"clear-none":  {css.Prop("clear", "none")},
		}),
		keywords("overflow", overflowTable()),
		keywords("overscroll", overscrollTable()),
		keywords("object-fit", keywordProp("object-fit", map[string]string{
			"object-contain":    "contain",
			"object-cover":      "cover",
			"object-fill":       "fill",
			"object-none":       "none",
			"object-scale-down": "scale-down",
		})),
		keywords("object-position", keywordProp("object-position", map[string]string{
			"object-bottom":       "bottom",
			"object-center":       "center",
			"object-left":         "left",
			"object-left-bottom":  "left bottom",
			"object-left-top":     "left top",
			"object-right":        "right",
			"object-right-bottom": "right bottom",
			"object-right-top":    "right top",
			"object-top":          "top",
		})),
		keywords("visibility", keywordProp("visibility", map[string]string{
			"visible":   "visible",
			"invisible": "hidden",
			"collapse":  "collapse",
		})),
		keywords("isolation", keywordProp("isolation", map[string]string{
			"isolate":        "isolate",
			"isolation-auto": "auto",
		})),
		keywords("box-sizing", keywordProp("box-sizing", map[string]string{
			"box-border":  "border-box",
			"box-content": "content-box",
		})),
		keywords("box-decoration", keywordProp("box-decoration-break", map[string]string{
			"box-decoration-clone": "clone",
			"box-decoration-slice": "slice",
		})),
		&scaleParser{
			name: "aspect-ratio",
			rules: []scaleRule{
				{
					prefix:    "aspect",
					props:     []string{"aspect-ratio"},
					scale:     map[string]string{"auto": "auto", "square": "1 / 1", "video": "16 / 9"},
					arbitrary: anyValue,
				},
			},
			examples: []string{"aspect-square", "aspect-video", "aspect-[4/3]"},
		},
		&scaleParser{
			name: "columns",
			rules: []scaleRule{
				{
					prefix: "columns",
					props:  []string{"columns"},
					scale: withEntries(intScale(1, 12), map[string]string{
						"auto": "auto",
						"3xs":  "16rem",
						"2xs":  "18rem",
						"xs":   "20rem",
						"sm":   "24rem",
						"md":   "28rem",
						"lg":   "32rem",
						"xl":   "36rem",
						"2xl":  "42rem",
						"3xl":  "48rem",
					}),
					arbitrary: anyValue,
				},
			},
			examples: []string{"columns-2", "columns-sm", "columns-[10rem]"},
		},
		keywords("break", breakTable()),
		keywords("container", map[string][]css.Property{
			"container": {css.Prop("width", "100%")},
		}),
		keywords("screen-reader", map[string][]css.Property{
			"sr-only":     srOnly,
			"not-sr-only": notSrOnly,
		}),
	}
}
