package utilities

import (
	"strings"

	"github.com/yacobolo/tailgen/internal/css"
)

// Background parsers run before the color parser so keyword suffixes such as
// bg-center never reach the palette lookup.

var imageFunctions = []string{"url(", "linear-gradient(", "radial-gradient(", "conic-gradient(", "repeating-linear-gradient(", "image-set("}

func newBackgroundImageParser() Parser {
	return &funcParser{
		name:     "background-image",
		prefixes: []string{"bg-none", "bg-["},
		examples: []string{"bg-none", "bg-[url(/img/hero.png)]", "bg-[linear-gradient(45deg,red,blue)]"},
		parse: func(base string, negative bool) ([]css.Property, bool) {
			if negative {
				return nil, false
			}
			if base == "bg-none" {
				return []css.Property{css.Prop("background-image", "none")}, true
			}
			suffix, ok := strings.CutPrefix(base, "bg-")
			if !ok {
				return nil, false
			}
			raw, ok := arbitrary(suffix)
			if !ok {
				return nil, false
			}
			for _, fn := range imageFunctions {
				if strings.HasPrefix(raw, fn) {
					return []css.Property{css.Prop("background-image", raw)}, true
				}
			}
			return nil, false
		},
	}
}

func backgroundParsers() []Parser {
	return []Parser{
		newBackgroundImageParser(),
		keywords("background-size", keywordProp("background-size", map[string]string{
			"bg-auto":    "auto",
			"bg-cover":   "cover",
			"bg-contain": "contain",
		})),
		keywords("background-position", keywordProp("background-position", map[string]string{
			"bg-bottom":       "bottom",
			"bg-center":       "center",
			"bg-left":         "left",
			"bg-left-bottom":  "left bottom",
			"bg-left-top":     "left top",
			"bg-right":        "right",
			"bg-right-bottom": "right bottom",
			"bg-right-top":    "right top",
			"bg-top":          "top",
		})),
		keywords("background-repeat", keywordProp("background-repeat", map[string]string{
			"bg-repeat":       "repeat",
			"bg-no-repeat":    "no-repeat",
			"bg-repeat-x":     "repeat-x",
			"bg-repeat-y":     "repeat-y",
			"bg-repeat-round": "round",
			"bg-repeat-space": "space",
		})),
		keywords("background-attachment", keywordProp("background-attachment", map[string]string{
			"bg-fixed":  "fixed",
			"bg-local":  "local",
			"bg-scroll": "scroll",
		})),
		keywords("background-clip", map[string][]css.Property{
			"bg-clip-border":  {css.Prop("background-clip", "border-box")},
			"bg-clip-padding": {css.Prop("background-clip", "padding-box")},
			"bg-clip-content": {css.Prop("background-clip", "content-box")},
			"bg-clip-text":    {css.Prop("-webkit-background-clip", "text"), css.Prop("background-clip", "text")},
		}),
		keywords("background-origin", keywordProp("background-origin", map[string]string{
			"bg-origin-border":  "border-box",
			"bg-origin-padding": "padding-box",
			"bg-origin-content": "content-box",
		})),
	}
}
