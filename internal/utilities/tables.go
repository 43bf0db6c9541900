package utilities

import (
	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
)

func tableParsers(th *theme.Theme) []Parser {
	return []Parser{
		keywords("table-layout", map[string][]css.Property{
			"border-collapse": {css.Prop("border-collapse", "collapse")},
			"border-separate": {css.Prop("border-collapse", "separate")},
			"table-auto":      {css.Prop("table-layout", "auto")},
			"table-fixed":     {css.Prop("table-layout", "fixed")},
			"caption-top":     {css.Prop("caption-side", "top")},
			"caption-bottom":  {css.Prop("caption-side", "bottom")},
		}),
		&axisParser{
			name: "border-spacing",
			targets: []axisTarget{
				{"border-spacing-x", []string{"--tw-border-spacing-x"}},
				{"border-spacing-y", []string{"--tw-border-spacing-y"}},
				{"border-spacing", []string{"border-spacing"}},
			},
			values:   spacingValue(th, nil),
			examples: []string{"border-spacing-2", "border-spacing-x-4", "border-spacing-[7px]"},
		},
	}
}
