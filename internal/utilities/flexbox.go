package utilities

import (
	"strconv"

	"github.com/yacobolo/tailgen/internal/theme"
)

// flexParsers lists the specific flex sub-parsers first and the generic
// flex-<value> shorthand last, so flex-row never reaches the shorthand.
func flexParsers(th *theme.Theme) []Parser {
	return []Parser{
		keywords("flex-direction", keywordProp("flex-direction", map[string]string{
			"flex-row":         "row",
			"flex-row-reverse": "row-reverse",
			"flex-col":         "column",
			"flex-col-reverse": "column-reverse",
		})),
		keywords("flex-wrap", keywordProp("flex-wrap", map[string]string{
			"flex-wrap":         "wrap",
			"flex-wrap-reverse": "wrap-reverse",
			"flex-nowrap":       "nowrap",
		})),
		&scaleParser{
			name: "flex-grow",
			rules: []scaleRule{
				{prefix: "grow", props: []string{"flex-grow"}, scale: map[string]string{"": "1", "0": "0"}, arbitrary: isNumber},
			},
			examples: []string{"grow", "grow-0", "grow-[2]"},
		},
		&scaleParser{
			name: "flex-shrink",
			rules: []scaleRule{
				{prefix: "shrink", props: []string{"flex-shrink"}, scale: map[string]string{"": "1", "0": "0"}, arbitrary: isNumber},
			},
			examples: []string{"shrink", "shrink-0"},
		},
		&scaleParser{
			name: "flex-basis",
			rules: []scaleRule{
				{
					prefix:    "basis",
					props:     []string{"flex-basis"},
					scale:     withEntries(th.Spacing, withEntries(fractionScale(), map[string]string{"auto": "auto", "full": "100%"})),
					arbitrary: isLength,
				},
			},
			examples: []string{"basis-1/2", "basis-4", "basis-full", "basis-[30%]"},
		},
		&scaleParser{
			name: "order",
			rules: []scaleRule{
				{
					prefix:    "order",
					props:     []string{"order"},
					scale:     withEntries(intScale(1, 12), map[string]string{"first": "-9999", "last": "9999", "none": "0"}),
					arbitrary: isNumber,
					negative:  true,
				},
			},
			examples: []string{"order-1", "order-last", "order-[13]"},
		},
		&scaleParser{
			name: "flex",
			rules: []scaleRule{
				{
					prefix: "flex",
					props:  []string{"flex"},
					scale: map[string]string{
						"1":       "1 1 0%",
						"auto":    "1 1 auto",
						"initial": "0 1 auto",
						"none":    "none",
					},
					arbitrary: anyValue,
				},
			},
			examples: []string{"flex-1", "flex-auto", "flex-none", "flex-[2_2_0%]"},
		},
		keywords("justify-content", keywordProp("justify-content", map[string]string{
			"justify-normal":  "normal",
			"justify-start":   "flex-start",
			"justify-end":     "flex-end",
			"justify-center":  "center",
			"justify-between": "space-between",
			"justify-around":  "space-around",
			"justify-evenly":  "space-evenly",
			"justify-stretch": "stretch",
		})),
		keywords("justify-items", keywordProp("justify-items", map[string]string{
			"justify-items-start":   "start",
			"justify-items-end":     "end",
			"justify-items-center":  "center",
			"justify-items-stretch": "stretch",
		})),
		keywords("justify-self", keywordProp("justify-self", map[string]string{
			"justify-self-auto":    "auto",
			"justify-self-start":   "start",
			"justify-self-end":     "end",
			"justify-self-center":  "center",
			"justify-self-stretch": "stretch",
		})),
		keywords("align-content", keywordProp("align-content", map[string]string{
			"content-normal":   "normal",
			"content-center":   "center",
			"content-start":    "flex-start",
			"content-end":      "flex-end",
			"content-between":  "space-between",
			"content-around":   "space-around",
			"content-evenly":   "space-evenly",
			"content-baseline": "baseline",
			"content-stretch":  "stretch",
		})),
		keywords("align-items", keywordProp("align-items", map[string]string{
			"items-start":    "flex-start",
			"items-end":      "flex-end",
			"items-center":   "center",
			"items-baseline": "baseline",
			"items-stretch":  "stretch",
		})),
		keywords("align-self", keywordProp("align-self", map[string]string{
			"self-auto":     "auto",
			"self-start":    "flex-start",
			"self-end":      "flex-end",
			"self-center":   "center",
			"self-stretch":  "stretch",
			"self-baseline": "baseline",
		})),
		keywords("place-content", keywordProp("place-content", map[string]string{
			"place-content-center":   "center",
			"place-content-start":    "start",
			"place-content-end":      "end",
			"place-content-between":  "space-between",
			"place-content-around":   "space-around",
			"place-content-evenly":   "space-evenly",
			"place-content-baseline": "baseline",
			"place-content-stretch":  "stretch",
		})),
		keywords("place-items", keywordProp("place-items", map[string]string{
			"place-items-start":    "start",
			"place-items-end":      "end",
			"place-items-center":   "center",
			"place-items-baseline": "baseline",
			"place-items-stretch":  "stretch",
		})),
		keywords("place-self", keywordProp("place-self", map[string]string{
			"place-self-auto":    "auto",
			"place-self-start":   "start",
			"place-self-end":     "end",
			"place-self-center":  "center",
			"place-self-stretch": "stretch",
		})),
	}
}

// fractionScale holds the n/d keys shared by basis, inset and translate.
func fractionScale() map[string]string {
	m := make(map[string]string)
	for _, d := range []int{2, 3, 4, 5, 6, 12} {
		for n := 1; n < d; n++ {
			key := strconv.Itoa(n) + "/" + strconv.Itoa(d)
			v, _ := fraction(key)
			m[key] = v
		}
	}
	m["full"] = "100%"
	return m
}
