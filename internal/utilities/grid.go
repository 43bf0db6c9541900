package utilities

import "strconv"

func gridParsers() []Parser {
	lineScale := withEntries(intScale(1, 13), map[string]string{"auto": "auto"})

	return []Parser{
		&scaleParser{
			name: "grid-template-columns",
			rules: []scaleRule{
				{prefix: "grid-cols", props: []string{"grid-template-columns"}, scale: repeatScale(12), arbitrary: anyValue},
			},
			examples: []string{"grid-cols-3", "grid-cols-none", "grid-cols-subgrid", "grid-cols-[200px_1fr]"},
		},
		&scaleParser{
			name: "grid-template-rows",
			rules: []scaleRule{
				{prefix: "grid-rows", props: []string{"grid-template-rows"}, scale: repeatScale(12), arbitrary: anyValue},
			},
			examples: []string{"grid-rows-2", "grid-rows-[auto_1fr]"},
		},
		&scaleParser{
			name: "grid-column",
			rules: []scaleRule{
				{prefix: "col-span", props: []string{"grid-column"}, scale: spanScale(12), arbitrary: anyValue},
				{prefix: "col-start", props: []string{"grid-column-start"}, scale: lineScale, arbitrary: anyValue},
				{prefix: "col-end", props: []string{"grid-column-end"}, scale: lineScale, arbitrary: anyValue},
				{prefix: "col", props: []string{"grid-column"}, scale: map[string]string{"auto": "auto"}, arbitrary: anyValue},
			},
			examples: []string{"col-span-2", "col-span-full", "col-start-1", "col-end-3", "col-auto"},
		},
		&scaleParser{
			name: "grid-row",
			rules: []scaleRule{
				{prefix: "row-span", props: []string{"grid-row"}, scale: spanScale(12), arbitrary: anyValue},
				{prefix: "row-start", props: []string{"grid-row-start"}, scale: lineScale, arbitrary: anyValue},
				{prefix: "row-end", props: []string{"grid-row-end"}, scale: lineScale, arbitrary: anyValue},
				{prefix: "row", props: []string{"grid-row"}, scale: map[string]string{"auto": "auto"}, arbitrary: anyValue},
			},
			examples: []string{"row-span-3", "row-start-2", "row-auto"},
		},
		keywords("grid-auto-flow", keywordProp("grid-auto-flow", map[string]string{
			"grid-flow-row":       "row",
			"grid-flow-col":       "column",
			"grid-flow-dense":     "dense",
			"grid-flow-row-dense": "row dense",
			"grid-flow-col-dense": "column dense",
		})),
		&scaleParser{
			name: "grid-auto-columns",
			rules: []scaleRule{
				{prefix: "auto-cols", props: []string{"grid-auto-columns"}, scale: autoTrackScale, arbitrary: anyValue},
			},
			examples: []string{"auto-cols-fr", "auto-cols-min"},
		},
		&scaleParser{
			name: "grid-auto-rows",
			rules: []scaleRule{
				{prefix: "auto-rows", props: []string{"grid-auto-rows"}, scale: autoTrackScale, arbitrary: anyValue},
			},
			examples: []string{"auto-rows-max", "auto-rows-[minmax(0,2fr)]"},
		},
	}
}

var autoTrackScale = map[string]string{
	"auto": "auto",
	"min":  "min-content",
	"max":  "max-content",
	"fr":   "minmax(0, 1fr)",
}

// repeatScale builds grid-cols-N -> repeat(N, minmax(0, 1fr)).
func repeatScale(n int) map[string]string {
	m := map[string]string{"none": "none", "subgrid": "subgrid"}
	for i := 1; i <= n; i++ {
		m[strconv.Itoa(i)] = "repeat(" + strconv.Itoa(i) + ", minmax(0, 1fr))"
	}
	return m
}

// spanScale builds col-span-N -> span N / span N.
func spanScale(n int) map[string]string {
	m := map[string]string{"full": "1 / -1"}
	for i := 1; i <= n; i++ {
		m[strconv.Itoa(i)] = "span " + strconv.Itoa(i) + " / span " + strconv.Itoa(i)
	}
	return m
}
