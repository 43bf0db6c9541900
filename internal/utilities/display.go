package utilities

// displayParser is the registry's last resort. It owns bare display
// keywords, several of which ("flex", "grid", "table") are also prefixes of
// other categories, so it has to run after them.
func displayParser() Parser {
	return keywords("display", keywordProp("display", map[string]string{
		"block":              "block",
		"inline-block":       "inline-block",
		"inline":             "inline",
		"flex":               "flex",
		"inline-flex":        "inline-flex",
		"grid":               "grid",
		"inline-grid":        "inline-grid",
		"table":              "table",
		"inline-table":       "inline-table",
		"table-caption":      "table-caption",
		"table-cell":         "table-cell",
		"table-column":       "table-column",
		"table-column-group": "table-column-group",
		"table-footer-group": "table-footer-group",
		"table-header-group": "table-header-group",
		"table-row-group":    "table-row-group",
		"table-row":          "table-row",
		"flow-root":          "flow-root",
		"contents":           "contents",
		"list-item":          "list-item",
		"hidden":             "none",
	}))
}
