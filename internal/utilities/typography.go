package utilities

import (
	"strings"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
)

var fontWeights = map[string]string{
	"thin":       "100",
	"extralight": "200",
	"light":      "300",
	"normal":     "400",
	"medium":     "500",
	"semibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"black":      "900",
}

var lineHeights = map[string]string{
	"none":    "1",
	"tight":   "1.25",
	"snug":    "1.375",
	"normal":  "1.5",
	"relaxed": "1.625",
	"loose":   "2",
	"3":       ".75rem",
	"4":       "1rem",
	"5":       "1.25rem",
	"6":       "1.5rem",
	"7":       "1.75rem",
	"8":       "2rem",
	"9":       "2.25rem",
	"10":      "2.5rem",
}

var letterSpacing = map[string]string{
	"tighter": "-0.05em",
	"tight":   "-0.025em",
	"normal":  "0em",
	"wide":    "0.025em",
	"wider":   "0.05em",
	"widest":  "0.1em",
}

// newFontSizeParser handles text-{size}, text-{size}/{leading} and
// text-[length]. Arbitrary values that are not lengths are left to the
// color parser, which runs earlier.
func newFontSizeParser(th *theme.Theme) Parser {
	return &funcParser{
		name:     "font-size",
		prefixes: []string{"text-"},
		examples: []string{"text-sm", "text-2xl", "text-base/7", "text-lg/[22px]", "text-[14px]", "text-[clamp(1rem,2vw,2rem)]"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			suffix, ok := strings.CutPrefix(base, "text-")
			if !ok || negative {
				return nil, false
			}

			size, leading, hasLeading := cutOpacity(suffix)

			var props []css.Property
			if fs, ok := th.FontSize[size]; ok {
				props = append(props, css.Prop("font-size", fs.Size))
				if !hasLeading && fs.LineHeight != "" {
					props = append(props, css.Prop("line-height", fs.LineHeight))
				}
			} else if raw, ok := arbitrary(size); ok && isLength(raw) {
				props = append(props, css.Prop("font-size", raw))
			} else {
				return nil, false
			}

			if hasLeading {
				lh, ok := leadingValue(th, leading)
				if !ok {
					return nil, false
				}
				props = append(props, css.Prop("line-height", lh))
			}
			return props, true
		},
	}
}

func leadingValue(th *theme.Theme, s string) (string, bool) {
	if v, ok := lineHeights[s]; ok {
		return v, true
	}
	if v, ok := th.Spacing[s]; ok {
		return v, true
	}
	if raw, ok := arbitrary(s); ok && (isLength(raw) || isNumber(raw)) {
		return raw, true
	}
	return "", false
}

func newFontWeightParser() Parser {
	return &funcParser{
		name:     "font-weight",
		prefixes: []string{"font-"},
		examples: []string{"font-bold", "font-thin", "font-[550]"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			suffix, ok := strings.CutPrefix(base, "font-")
			if !ok || negative {
				return nil, false
			}
			if v, ok := fontWeights[suffix]; ok {
				return []css.Property{css.Prop("font-weight", v)}, true
			}
			if raw, ok := arbitrary(suffix); ok && isNumber(raw) {
				return []css.Property{css.Prop("font-weight", raw)}, true
			}
			return nil, false
		},
	}
}

func newFontFamilyParser(th *theme.Theme) Parser {
	return &funcParser{
		name:     "font-family",
		prefixes: []string{"font-"},
		examples: []string{"font-sans", "font-mono", "font-['Inter',sans-serif]"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			suffix, ok := strings.CutPrefix(base, "font-")
			if !ok || negative {
				return nil, false
			}
			if v, ok := th.FontFamily[suffix]; ok {
				return []css.Property{css.Prop("font-family", v)}, true
			}
			if raw, ok := arbitrary(suffix); ok && !isNumber(raw) {
				return []css.Property{css.Prop("font-family", raw)}, true
			}
			return nil, false
		},
	}
}

func newLineClampParser() Parser {
	return &funcParser{
		name:     "line-clamp",
		prefixes: []string{"line-clamp-"},
		examples: []string{"line-clamp-3", "line-clamp-none", "line-clamp-[8]"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			suffix, ok := strings.CutPrefix(base, "line-clamp-")
			if !ok || negative {
				return nil, false
			}
			if suffix == "none" {
				return []css.Property{
					css.Prop("overflow", "visible"),
					css.Prop("display", "block"),
					css.Prop("-webkit-box-orient", "horizontal"),
					css.Prop("-webkit-line-clamp", "none"),
				}, true
			}
			n := suffix
			if raw, ok := arbitrary(suffix); ok {
				n = raw
			}
			if !isNumber(n) {
				return nil, false
			}
			return []css.Property{
				css.Prop("overflow", "hidden"),
				css.Prop("display", "-webkit-box"),
				css.Prop("-webkit-box-orient", "vertical"),
				css.Prop("-webkit-line-clamp", n),
			}, true
		},
	}
}

func typographyParsers(th *theme.Theme) []Parser {
	return []Parser{
		newFontSizeParser(th),
		keywords("text-align", keywordProp("text-align", map[string]string{
			"text-left":    "left",
			"text-center":  "center",
			"text-right":   "right",
			"text-justify": "justify",
			"text-start":   "start",
			"text-end":     "end",
		})),
		keywords("text-overflow", map[string][]css.Property{
			"truncate": {
				css.Prop("overflow", "hidden"),
				css.Prop("text-overflow", "ellipsis"),
				css.Prop("white-space", "nowrap"),
			},
			"text-ellipsis": {css.Prop("text-overflow", "ellipsis")},
			"text-clip":     {css.Prop("text-overflow", "clip")},
		}),
		keywords("text-wrap", keywordProp("text-wrap", map[string]string{
			"text-wrap":    "wrap",
			"text-nowrap":  "nowrap",
			"text-balance": "balance",
			"text-pretty":  "pretty",
		})),
		newFontWeightParser(),
		newFontFamilyParser(th),
		keywords("font-style", keywordProp("font-style", map[string]string{
			"italic":     "italic",
			"not-italic": "normal",
		})),
		keywords("font-smoothing", map[string][]css.Property{
			"antialiased": {
				css.Prop("-webkit-font-smoothing", "antialiased"),
				css.Prop("-moz-osx-font-smoothing", "grayscale"),
			},
			"subpixel-antialiased": {
				css.Prop("-webkit-font-smoothing", "auto"),
				css.Prop("-moz-osx-font-smoothing", "auto"),
			},
		}),
		keywords("font-variant-numeric", keywordProp("font-variant-numeric", map[string]string{
			"normal-nums":        "normal",
			"ordinal":            "ordinal",
			"slashed-zero":       "slashed-zero",
			"lining-nums":        "lining-nums",
			"oldstyle-nums":      "oldstyle-nums",
			"proportional-nums":  "proportional-nums",
			"tabular-nums":       "tabular-nums",
			"diagonal-fractions": "diagonal-fractions",
			"stacked-fractions":  "stacked-fractions",
		})),
		&scaleParser{
			name: "line-height",
			rules: []scaleRule{
				{prefix: "leading", props: []string{"line-height"}, scale: lineHeights, arbitrary: func(v string) bool { return isLength(v) || isNumber(v) }},
			},
			examples: []string{"leading-tight", "leading-6", "leading-[1.1]"},
		},
		&scaleParser{
			name: "letter-spacing",
			rules: []scaleRule{
				{prefix: "tracking", props: []string{"letter-spacing"}, scale: letterSpacing, arbitrary: isLength, negative: true},
			},
			examples: []string{"tracking-wide", "tracking-tighter", "tracking-[0.2em]"},
		},
		keywords("text-transform", keywordProp("text-transform", map[string]string{
			"uppercase":   "uppercase",
			"lowercase":   "lowercase",
			"capitalize":  "capitalize",
			"normal-case": "none",
		})),
		keywords("text-decoration-line", keywordProp("text-decoration-line", map[string]string{
			"underline":    "underline",
			"overline":     "overline",
			"line-through": "line-through",
			"no-underline": "none",
		})),
		keywords("text-decoration-style", keywordProp("text-decoration-style", map[string]string{
			"decoration-solid":  "solid",
			"decoration-double": "double",
			"decoration-dotted": "dotted",
			"decoration-dashed": "dashed",
			"decoration-wavy":   "wavy",
		})),
		&scaleParser{
			name: "text-decoration-thickness",
			rules: []scaleRule{
				{
					prefix:    "decoration",
					props:     []string{"text-decoration-thickness"},
					scale:     withEntries(unitScale("px", "0", "1", "2", "4", "8"), map[string]string{"auto": "auto", "from-font": "from-font"}),
					arbitrary: isLength,
				},
			},
			examples: []string{"decoration-2", "decoration-from-font"},
		},
		&scaleParser{
			name: "underline-offset",
			rules: []scaleRule{
				{
					prefix:    "underline-offset",
					props:     []string{"text-underline-offset"},
					scale:     withEntries(unitScale("px", "0", "1", "2", "4", "8"), map[string]string{"auto": "auto"}),
					arbitrary: isLength,
				},
			},
			examples: []string{"underline-offset-4", "underline-offset-auto"},
		},
		keywords("whitespace", keywordProp("white-space", map[string]string{
			"whitespace-normal":       "normal",
			"whitespace-nowrap":       "nowrap",
			"whitespace-pre":          "pre",
			"whitespace-pre-line":     "pre-line",
			"whitespace-pre-wrap":     "pre-wrap",
			"whitespace-break-spaces": "break-spaces",
		})),
		keywords("word-break", map[string][]css.Property{
			"break-normal": {css.Prop("overflow-wrap", "normal"), css.Prop("word-break", "normal")},
			"break-words":  {css.Prop("overflow-wrap", "break-word")},
			"break-all":    {css.Prop("word-break", "break-all")},
			"break-keep":   {css.Prop("word-break", "keep-all")},
		}),
		keywords("hyphens", keywordProp("hyphens", map[string]string{
			"hyphens-none":   "none",
			"hyphens-manual": "manual",
			"hyphens-auto":   "auto",
		})),
		newLineClampParser(),
		keywords("list-style", map[string][]css.Property{
			"list-none":       {css.Prop("list-style-type", "none")},
			"list-disc":       {css.Prop("list-style-type", "disc")},
			"list-decimal":    {css.Prop("list-style-type", "decimal")},
			"list-inside":     {css.Prop("list-style-position", "inside")},
			"list-outside":    {css.Prop("list-style-position", "outside")},
			"list-image-none": {css.Prop("list-style-image", "none")},
		}),
		&scaleParser{
			name: "text-indent",
			rules: []scaleRule{
				{prefix: "indent", props: []string{"text-indent"}, scale: th.Spacing, arbitrary: isLength, negative: true},
			},
			examples: []string{"indent-4", "indent-px", "indent-[3em]"},
		},
		keywords("vertical-align", keywordProp("vertical-align", map[string]string{
			"align-baseline":    "baseline",
			"align-top":         "top",
			"align-middle":      "middle",
			"align-bottom":      "bottom",
			"align-text-top":    "text-top",
			"align-text-bottom": "text-bottom",
			"align-sub":         "sub",
			"align-super":       "super",
		})),
		&scaleParser{
			name: "content",
			rules: []scaleRule{
				{prefix: "content", props: []string{"content"}, scale: map[string]string{"none": "none"}, arbitrary: anyValue},
			},
			examples: []string{"content-none", "content-['→']"},
		},
	}
}
