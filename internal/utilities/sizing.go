package utilities

import (
	"strings"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
)

var widthKeywords = map[string]string{
	"auto":   "auto",
	"full":   "100%",
	"screen": "100vw",
	"svw":    "100svw",
	"lvw":    "100lvw",
	"dvw":    "100dvw",
	"min":    "min-content",
	"max":    "max-content",
	"fit":    "fit-content",
}

var heightKeywords = map[string]string{
	"auto":   "auto",
	"full":   "100%",
	"screen": "100vh",
	"svh":    "100svh",
	"lvh":    "100lvh",
	"dvh":    "100dvh",
	"min":    "min-content",
	"max":    "max-content",
	"fit":    "fit-content",
}

var maxWidthKeywords = map[string]string{
	"none":       "none",
	"xs":         "20rem",
	"sm":         "24rem",
	"md":         "28rem",
	"lg":         "32rem",
	"xl":         "36rem",
	"2xl":        "42rem",
	"3xl":        "48rem",
	"4xl":        "56rem",
	"5xl":        "64rem",
	"6xl":        "72rem",
	"7xl":        "80rem",
	"full":       "100%",
	"min":        "min-content",
	"max":        "max-content",
	"fit":        "fit-content",
	"prose":      "65ch",
	"screen-sm":  "640px",
	"screen-md":  "768px",
	"screen-lg":  "1024px",
	"screen-xl":  "1280px",
	"screen-2xl": "1536px",
}

// sizeValue resolves keywords, spacing keys, fractions and bracketed lengths.
func sizeValue(th *theme.Theme, keywords map[string]string, spacing bool) func(string) (string, bool) {
	return func(suffix string) (string, bool) {
		if v, ok := keywords[suffix]; ok {
			return v, true
		}
		if spacing {
			if v, ok := th.Spacing[suffix]; ok {
				return v, true
			}
			if v, ok := fraction(suffix); ok {
				return v, true
			}
		}
		if raw, ok := arbitrary(suffix); ok && isLength(raw) {
			return raw, true
		}
		return "", false
	}
}

type sizeParser struct {
	name     string
	prefix   string
	props    []string
	values   func(string) (string, bool)
	examples []string
}

func (p *sizeParser) Name() string       { return p.name }
func (p *sizeParser) Prefixes() []string { return []string{p.prefix + "-"} }
func (p *sizeParser) Examples() []string { return p.examples }

func (p *sizeParser) Parse(base string, negative bool) ([]css.Property, bool) {
	if negative {
		return nil, false
	}
	suffix, ok := strings.CutPrefix(base, p.prefix+"-")
	if !ok {
		return nil, false
	}
	value, ok := p.values(suffix)
	if !ok {
		return nil, false
	}
	props := make([]css.Property, 0, len(p.props))
	for _, name := range p.props {
		props = append(props, css.Prop(name, value))
	}
	return props, true
}

func sizingParsers(th *theme.Theme) []Parser {
	minKeywords := map[string]string{"0": "0px", "full": "100%", "min": "min-content", "max": "max-content", "fit": "fit-content"}

	return []Parser{
		&sizeParser{
			name:     "width",
			prefix:   "w",
			props:    []string{"width"},
			values:   sizeValue(th, widthKeywords, true),
			examples: []string{"w-4", "w-1/2", "w-full", "w-screen", "w-[320px]", "w-fit"},
		},
		&sizeParser{
			name:     "min-width",
			prefix:   "min-w",
			props:    []string{"min-width"},
			values:   sizeValue(th, minKeywords, true),
			examples: []string{"min-w-0", "min-w-full", "min-w-[200px]"},
		},
		&sizeParser{
			name:     "max-width",
			prefix:   "max-w",
			props:    []string{"max-width"},
			values:   sizeValue(th, maxWidthKeywords, false),
			examples: []string{"max-w-md", "max-w-prose", "max-w-screen-lg", "max-w-[70ch]"},
		},
		&sizeParser{
			name:     "height",
			prefix:   "h",
			props:    []string{"height"},
			values:   sizeValue(th, heightKeywords, true),
			examples: []string{"h-4", "h-screen", "h-1/3", "h-dvh", "h-[50vh]"},
		},
		&sizeParser{
			name:     "min-height",
			prefix:   "min-h",
			props:    []string{"min-height"},
			values:   sizeValue(th, withEntries(minKeywords, map[string]string{"screen": "100vh", "svh": "100svh", "dvh": "100dvh"}), true),
			examples: []string{"min-h-screen", "min-h-0", "min-h-[10rem]"},
		},
		&sizeParser{
			name:     "max-height",
			prefix:   "max-h",
			props:    []string{"max-height"},
			values:   sizeValue(th, withEntries(heightKeywords, map[string]string{"none": "none"}), true),
			examples: []string{"max-h-96", "max-h-screen", "max-h-none"},
		},
		&sizeParser{
			name:     "size",
			prefix:   "size",
			props:    []string{"width", "height"},
			values:   sizeValue(th, map[string]string{"auto": "auto", "full": "100%", "min": "min-content", "max": "max-content", "fit": "fit-content"}, true),
			examples: []string{"size-4", "size-full", "size-[18px]"},
		},
	}
}
