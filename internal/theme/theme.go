// Package theme holds the design tokens the utility parsers resolve against:
// the color palette, spacing scale, type scale, radii and shadows. A theme
// can be extended from a TOML or JSON file.
package theme

import (
	"strings"
)

// FontSize pairs a font size with its default line height
type FontSize struct {
	Size       string `toml:"size" json:"size"`
	LineHeight string `toml:"line-height" json:"line-height"`
}

// Theme is the full token set. Maps are keyed by the class suffix.
type Theme struct {
	Colors     map[string]map[string]string `toml:"colors" json:"colors"`           // family -> shade -> color
	Spacing    map[string]string            `toml:"spacing" json:"spacing"`         // "4" -> "1rem"
	FontSize   map[string]FontSize          `toml:"font-size" json:"font-size"`     // "lg" -> 1.125rem/1.75rem
	FontFamily map[string]string            `toml:"font-family" json:"font-family"` // "mono" -> stack
	Radius     map[string]string            `toml:"radius" json:"radius"`           // "" is the bare class
	Shadow     map[string]string            `toml:"shadow" json:"shadow"`           // "" is the bare class
}

// Default returns a fresh copy of the built-in theme.
func Default() *Theme {
	t := &Theme{
		Colors:     make(map[string]map[string]string, len(palette)),
		Spacing:    copyMap(defaultSpacing),
		FontSize:   make(map[string]FontSize, len(defaultFontSize)),
		FontFamily: copyMap(defaultFontFamily),
		Radius:     copyMap(defaultRadius),
		Shadow:     copyMap(defaultShadow),
	}

	for family, values := range palette {
		shades := make(map[string]string, len(Shades))
		for i, shade := range Shades {
			shades[shade] = values[i]
		}
		t.Colors[family] = shades
	}
	for k, v := range defaultFontSize {
		t.FontSize[k] = v
	}

	return t
}

// Merge overlays every non-empty entry of o onto t. Color families merge
// shade by shade so a file can add a single shade to an existing family.
func (t *Theme) Merge(o *Theme) {
	if o == nil {
		return
	}
	for family, shades := range o.Colors {
		if t.Colors[family] == nil {
			t.Colors[family] = make(map[string]string, len(shades))
		}
		for shade, value := range shades {
			t.Colors[family][shade] = value
		}
	}
	mergeMap(t.Spacing, o.Spacing)
	mergeMap(t.FontFamily, o.FontFamily)
	mergeMap(t.Radius, o.Radius)
	mergeMap(t.Shadow, o.Shadow)
	for k, v := range o.FontSize {
		t.FontSize[k] = v
	}
}

// Color resolves "blue-500", "black" or a single-value family such as
// "brand" (looked up as its DEFAULT shade).
func (t *Theme) Color(name string) (string, bool) {
	if v, ok := keywordColors[name]; ok {
		return v, true
	}

	if i := strings.LastIndexByte(name, '-'); i > 0 {
		if shades, ok := t.Colors[name[:i]]; ok {
			if v, ok := shades[name[i+1:]]; ok {
				return v, true
			}
		}
	}

	if shades, ok := t.Colors[name]; ok {
		if v, ok := shades["DEFAULT"]; ok {
			return v, true
		}
	}

	return "", false
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func mergeMap(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
