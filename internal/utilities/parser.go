// Package utilities turns a base utility token (variants already stripped)
// into CSS declarations through an ordered chain of category parsers.
package utilities

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/yacobolo/tailgen/internal/css"
)

// Parser is one category unit in the registry
type Parser interface {
	// Name identifies the parser in diagnostics and tests.
	Name() string
	// Prefixes lists the literal token prefixes this parser dispatches on.
	Prefixes() []string
	// Examples are tokens this parser must own when run through the registry.
	Examples() []string
	// Parse returns the declarations for base, or false when it does not apply.
	// negative is set when the token carried a leading "-".
	Parse(base string, negative bool) ([]css.Property, bool)
}

// SelectorScoper is implemented by parsers whose declarations target
// descendants or pseudo-elements rather than the element itself
// (space-x, divide-y, placeholder colors).
type SelectorScoper interface {
	SelectorSuffix(base string) string
}

// UnknownClassError is returned when no parser accepts a base token
type UnknownClassError struct {
	Base string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("no utility parser matches %q", e.Base)
}

// funcParser adapts a closure to Parser
type funcParser struct {
	name     string
	prefixes []string
	examples []string
	parse    func(base string, negative bool) ([]css.Property, bool)
	scope    func(base string) string
}

func (p *funcParser) Name() string       { return p.name }
func (p *funcParser) Prefixes() []string { return p.prefixes }
func (p *funcParser) Examples() []string { return p.examples }

func (p *funcParser) Parse(base string, negative bool) ([]css.Property, bool) {
	return p.parse(base, negative)
}

func (p *funcParser) SelectorSuffix(base string) string {
	if p.scope == nil {
		return ""
	}
	return p.scope(base)
}

// keywordParser resolves exact literal tokens from a fixed table
type keywordParser struct {
	name  string
	table map[string][]css.Property
	keys  []string
}

func keywords(name string, table map[string][]css.Property) *keywordParser {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &keywordParser{name: name, table: table, keys: keys}
}

// keywordProp builds a table where every key sets the same property.
func keywordProp(property string, values map[string]string) map[string][]css.Property {
	table := make(map[string][]css.Property, len(values))
	for token, value := range values {
		table[token] = []css.Property{css.Prop(property, value)}
	}
	return table
}

func (p *keywordParser) Name() string       { return p.name }
func (p *keywordParser) Prefixes() []string { return p.keys }
func (p *keywordParser) Examples() []string { return p.keys }

func (p *keywordParser) Parse(base string, negative bool) ([]css.Property, bool) {
	if negative {
		return nil, false
	}
	props, ok := p.table[base]
	if !ok {
		return nil, false
	}
	out := make([]css.Property, len(props))
	copy(out, props)
	return out, true
}

// scaleRule maps "prefix-key" to properties through a total scale.
// The bare prefix resolves through the "" key when present.
type scaleRule struct {
	prefix    string
	props     []string
	scale     map[string]string
	arbitrary func(string) bool   // nil disables [raw] values
	negative  bool                // accepts a leading "-"
	format    func(string) string // optional value wrapper, e.g. blur(%s)
}

// scaleParser tries its rules in order; rules with longer prefixes must be
// listed before shorter ones sharing the same start.
type scaleParser struct {
	name     string
	rules    []scaleRule
	examples []string
}

func (p *scaleParser) Name() string { return p.name }

func (p *scaleParser) Prefixes() []string {
	out := make([]string, 0, len(p.rules))
	for _, r := range p.rules {
		out = append(out, r.prefix+"-")
	}
	return out
}

func (p *scaleParser) Examples() []string { return p.examples }

func (p *scaleParser) Parse(base string, negative bool) ([]css.Property, bool) {
	for _, r := range p.rules {
		suffix, ok := cutUtility(base, r.prefix)
		if !ok {
			continue
		}
		if negative && !r.negative {
			return nil, false
		}

		value, ok := r.scale[suffix]
		if !ok {
			raw, isArb := arbitrary(suffix)
			if !isArb || r.arbitrary == nil || !r.arbitrary(raw) {
				continue
			}
			value = raw
		}

		if negative {
			value = negate(value)
		}
		if r.format != nil {
			value = r.format(value)
		}

		props := make([]css.Property, 0, len(r.props))
		for _, name := range r.props {
			props = append(props, css.Prop(name, value))
		}
		return props, true
	}
	return nil, false
}

// cutUtility returns the suffix after "prefix-", or "" when base equals prefix.
func cutUtility(base, prefix string) (string, bool) {
	if base == prefix {
		return "", true
	}
	return strings.CutPrefix(base, prefix+"-")
}

// arbitrary unwraps "[raw]". Underscores become spaces unless escaped.
func arbitrary(s string) (string, bool) {
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", false
	}
	inner := s[1 : len(s)-1]

	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		switch {
		case inner[i] == '\\' && i+1 < len(inner) && inner[i+1] == '_':
			b.WriteByte('_')
			i++
		case inner[i] == '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(inner[i])
		}
	}

	out := strings.TrimSpace(b.String())
	return out, out != ""
}

// anyValue accepts every non-empty arbitrary value.
func anyValue(string) bool { return true }

var (
	lengthPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)(px|rem|em|%|vh|vw|vmin|vmax|svh|lvh|dvh|svw|lvw|dvw|ch|ex|lh|cm|mm|in|pt|pc|fr)?$`)
	numberPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)
	mathFunctions = []string{"calc(", "var(", "min(", "max(", "clamp(", "env("}
)

// isLength is the conservative CSS length check used for spacing and sizing.
func isLength(v string) bool {
	if lengthPattern.MatchString(v) {
		return true
	}
	switch v {
	case "auto", "inherit", "initial", "unset", "min-content", "max-content", "fit-content":
		return true
	}
	for _, fn := range mathFunctions {
		if strings.HasPrefix(v, fn) && strings.HasSuffix(v, ")") && balanced(v) {
			return true
		}
	}
	return false
}

func isNumber(v string) bool {
	return numberPattern.MatchString(v) || (strings.HasPrefix(v, "var(") && strings.HasSuffix(v, ")"))
}

func balanced(v string) bool {
	depth := 0
	for _, r := range v {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// negate flips the sign of a CSS value.
func negate(v string) string {
	switch {
	case v == "0" || v == "0px" || v == "auto":
		return v
	case strings.HasPrefix(v, "-"):
		return v[1:]
	case strings.HasPrefix(v, "calc(") || strings.HasPrefix(v, "var("):
		return "calc(" + v + " * -1)"
	}
	return "-" + v
}

// fraction converts "1/3" into "33.333333%".
func fraction(s string) (string, bool) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return "", false
	}
	n, err1 := strconv.Atoi(num)
	d, err2 := strconv.Atoi(den)
	if err1 != nil || err2 != nil || d == 0 || n < 0 || n > d {
		return "", false
	}
	return trimFloat(float64(n)/float64(d)*100, 6) + "%", true
}

// trimFloat formats f with at most prec decimals and no trailing zeros.
func trimFloat(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// intScale builds {"1": "1", ..., "n": "n"}.
func intScale(from, to int) map[string]string {
	m := make(map[string]string, to-from+1)
	for i := from; i <= to; i++ {
		s := strconv.Itoa(i)
		m[s] = s
	}
	return m
}

// unitScale builds {"k": "k<unit>"} for each key.
func unitScale(unit string, keys ...string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[k] = k + unit
	}
	return m
}

// percentScale builds {"50": "0.5"} style ratio scales.
func percentScale(keys ...int) map[string]string {
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[strconv.Itoa(k)] = trimFloat(float64(k)/100, 2)
	}
	return m
}

// withEntries returns a copy of base extended with extra.
func withEntries(base map[string]string, extra map[string]string) map[string]string {
	m := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		m[k] = v
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

func wrap(fn string) func(string) string {
	return func(v string) string { return fn + "(" + v + ")" }
}
