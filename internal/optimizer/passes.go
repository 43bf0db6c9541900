package optimizer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yacobolo/tailgen/internal/css"
)

// Each pass takes the table entries and returns the rewritten entries plus
// the number of things it changed. Passes never modify their input slice.

func removeEmptyRules(entries []css.Entry) ([]css.Entry, int) {
	out := make([]css.Entry, 0, len(entries))
	for _, e := range entries {
		if len(e.Rule.Properties) == 0 {
			continue
		}
		out = append(out, e)
	}
	return out, len(entries) - len(out)
}

func removeDuplicateProperties(entries []css.Entry) ([]css.Entry, int) {
	removed := 0
	out := make([]css.Entry, len(entries))
	for i, e := range entries {
		seen := make(map[string]bool, len(e.Rule.Properties))
		props := make([]css.Property, 0, len(e.Rule.Properties))
		for _, p := range e.Rule.Properties {
			if seen[p.Name] {
				removed++
				continue
			}
			seen[p.Name] = true
			props = append(props, p)
		}
		rule := e.Rule
		rule.Properties = props
		out[i] = css.Entry{Key: e.Key, Rule: rule}
	}
	return out, removed
}

// lengthUnits are the units whose zero value may drop its unit.
const lengthUnits = `px|em|rem|ex|ch|vw|vh|vmin|vmax|cm|mm|in|pt|pc`

var (
	zeroLength    = regexp.MustCompile(`^[+-]?0+(\.0+)?(` + lengthUnits + `)$`)
	trailingZero  = regexp.MustCompile(`^([+-]?\d+)\.0+([a-z%]*)$`)
	valueFragment = regexp.MustCompile(`[^\s,()/]+`)
)

// mathFunctions need units on zero operands, so values using them are left alone.
var mathFunctions = []string{"calc(", "clamp(", "min(", "max("}

// normalizeValue rewrites zero lengths to 0 and X.0 to X, fragment by
// fragment, leaving separators untouched.
func normalizeValue(v string) string {
	for _, fn := range mathFunctions {
		if strings.Contains(v, fn) {
			return v
		}
	}
	return valueFragment.ReplaceAllStringFunc(v, func(frag string) string {
		if zeroLength.MatchString(frag) {
			return "0"
		}
		if m := trailingZero.FindStringSubmatch(frag); m != nil {
			return m[1] + m[2]
		}
		return frag
	})
}

func optimizeProperties(entries []css.Entry) ([]css.Entry, int) {
	changed := 0
	out := make([]css.Entry, len(entries))
	for i, e := range entries {
		rule := e.Rule.Clone()
		for j, p := range rule.Properties {
			if strings.HasPrefix(p.Name, "--") {
				continue
			}
			if v := normalizeValue(p.Value); v != p.Value {
				rule.Properties[j].Value = v
				changed++
			}
		}
		out[i] = css.Entry{Key: e.Key, Rule: rule}
	}
	return out, changed
}

// mergeRules folds rules sharing a selector and media query into the first
// one. Earlier declarations win on a name conflict.
func mergeRules(entries []css.Entry) ([]css.Entry, int) {
	type group struct {
		selector string
		media    string
	}

	index := make(map[group]int, len(entries))
	out := make([]css.Entry, 0, len(entries))
	merged := 0

	for _, e := range entries {
		key := group{selector: e.Rule.Selector, media: e.Rule.MediaQuery}
		at, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, css.Entry{Key: e.Key, Rule: e.Rule.Clone()})
			continue
		}

		target := &out[at].Rule
		for _, p := range e.Rule.Properties {
			if !hasProperty(target.Properties, p.Name) {
				target.Properties = append(target.Properties, p)
			}
		}
		if e.Rule.Specificity > target.Specificity {
			target.Specificity = e.Rule.Specificity
		}
		merged++
	}

	return out, merged
}

func hasProperty(props []css.Property, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}

// sortProperties orders declarations by name for better compression.
// The count is the number of rules whose order changed.
func sortProperties(entries []css.Entry) ([]css.Entry, int) {
	changed := 0
	out := make([]css.Entry, len(entries))
	for i, e := range entries {
		rule := e.Rule.Clone()
		if !sort.SliceIsSorted(rule.Properties, func(a, b int) bool {
			return rule.Properties[a].Name < rule.Properties[b].Name
		}) {
			sort.SliceStable(rule.Properties, func(a, b int) bool {
				return rule.Properties[a].Name < rule.Properties[b].Name
			})
			changed++
		}
		out[i] = css.Entry{Key: e.Key, Rule: rule}
	}
	return out, changed
}
