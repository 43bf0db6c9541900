// Package generator turns utility class tokens into a rule table and
// renders it as CSS.
package generator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/gradient"
	"github.com/yacobolo/tailgen/internal/theme"
	"github.com/yacobolo/tailgen/internal/utilities"
	"github.com/yacobolo/tailgen/internal/variant"
)

const rootSelector = ":root"

// Generator owns one rule table. It is not safe for concurrent use.
type Generator struct {
	theme    *theme.Theme
	registry *utilities.Registry
	rules    *css.Table
	log      *zap.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithTheme sets the palette and scales. The default registry is rebuilt
// for th unless WithRegistry is also given.
func WithTheme(th *theme.Theme) Option {
	return func(g *Generator) {
		g.theme = th
	}
}

// WithRegistry replaces the parser chain.
func WithRegistry(r *utilities.Registry) Option {
	return func(g *Generator) {
		g.registry = r
	}
}

// WithLogger sets the logger. Debug output is emitted per rule.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// New returns an empty Generator.
func New(opts ...Option) *Generator {
	g := &Generator{rules: css.NewTable()}
	for _, opt := range opts {
		opt(g)
	}

	if g.theme == nil {
		g.theme = theme.Default()
	}
	if g.registry == nil {
		g.registry = utilities.Default(g.theme)
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	g.log = g.log.Named("generator")

	return g
}

// AddClass resolves token and upserts its rule. Re-adding a token replaces
// the previous rule in place.
func (g *Generator) AddClass(token string) error {
	return g.addResolved(token, variant.Resolve(token), 0)
}

// AddResponsiveClass adds token under an explicit breakpoint. The rule is
// keyed and selected as "breakpoint:token".
func (g *Generator) AddResponsiveClass(breakpoint, token string) error {
	if !variant.IsBreakpoint(breakpoint) {
		return fmt.Errorf("%w: %q", ErrUnknownBreakpoint, breakpoint)
	}
	key := breakpoint + ":" + token
	return g.addResolved(key, variant.Resolve(key), SpecificityResponsive)
}

func (g *Generator) addResolved(token string, res variant.Resolution, weight uint32) error {
	p, props, ok := g.registry.Match(res.Base, res.Negative)
	if !ok {
		g.log.Debug("unresolved token", zap.String("token", token), zap.String("base", res.Base))
		return &ClassGenerationError{Token: token, Base: res.Base}
	}

	rule := assemble(token, res, props, utilities.Scope(p, res.Base))
	if weight != 0 {
		rule.Specificity = weight
	}

	g.rules.Upsert(token, rule)
	g.log.Debug("rule added",
		zap.String("token", token),
		zap.String("parser", p.Name()),
		zap.Int("properties", len(rule.Properties)))
	return nil
}

// AddClassesForElement adds every class of one element. Gradient stops are
// folded into the element's direction classes; when the batch has no
// direction the stops are emitted on their own. The call stops at the first
// unresolved token and keeps the rules added before it.
func (g *Generator) AddClassesForElement(tokens []string) error {
	stops := gradient.NewContext()
	resolved := make([]variant.Resolution, len(tokens))
	isStop := make([]bool, len(tokens))
	hasDirection := false

	for i, token := range tokens {
		res := variant.Resolve(token)
		resolved[i] = res

		if gradient.IsDirection(res.Base) {
			hasDirection = true
			continue
		}
		if res.HasVariants() || res.Negative {
			continue
		}
		stop, color, ok := gradient.ParseStop(res.Base, g.resolveColor)
		if ok {
			stops.Set(stop, color)
			isStop[i] = true
		}
	}

	for i, token := range tokens {
		res := resolved[i]
		if isStop[i] && hasDirection {
			continue
		}

		dir, ok := gradient.ParseDirection(res.Base)
		if !ok || !hasDirection {
			if err := g.addResolved(token, res, 0); err != nil {
				return err
			}
			continue
		}

		rule := assemble(token, res, stops.Gradient(dir).Properties(), "")
		g.rules.Upsert(token, rule)
		g.log.Debug("gradient inlined",
			zap.String("token", token),
			zap.Int("stops", stops.Len()))
	}

	return nil
}

func (g *Generator) resolveColor(name string) (string, bool) {
	return utilities.ResolveColor(g.theme, name)
}

// AddCSSSelector adds a raw rule keyed by selector. rawContent is a
// declaration list such as "color: red; margin: 0".
func (g *Generator) AddCSSSelector(selector, rawContent string) {
	g.rules.Upsert(selector, css.Rule{
		Selector:    selector,
		Properties:  css.ParseDeclarations(rawContent),
		Specificity: SpecificityRaw,
	})
}

// AddCustomProperty sets a custom property on the shared :root rule.
func (g *Generator) AddCustomProperty(name, value string) {
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}

	root, ok := g.rules.Get(rootSelector)
	if !ok {
		root = css.Rule{Selector: rootSelector, Specificity: SpecificityRaw}
	}

	replaced := false
	for i := range root.Properties {
		if root.Properties[i].Name == name {
			root.Properties[i].Value = value
			replaced = true
		}
	}
	if !replaced {
		root.Properties = append(root.Properties, css.Prop(name, value))
	}

	g.rules.Upsert(rootSelector, root)
}

// RemoveRule deletes the rule for token and reports whether it existed.
func (g *Generator) RemoveRule(token string) bool {
	return g.rules.Remove(token)
}

// UpdateRule swaps the declarations of an existing rule. Selector, media
// query, specificity and output position are kept.
func (g *Generator) UpdateRule(token string, props []css.Property) bool {
	rule, ok := g.rules.Get(token)
	if !ok {
		return false
	}
	rule.Properties = append([]css.Property(nil), props...)
	g.rules.Upsert(token, rule)
	return true
}

// GenerateCSS renders the table as indented CSS.
func (g *Generator) GenerateCSS() string {
	return css.Print(g.ordered(), false)
}

// GenerateMinifiedCSS renders the table without optional whitespace.
func (g *Generator) GenerateMinifiedCSS() string {
	return css.Print(g.ordered(), true)
}

// ordered sorts by specificity, keeping insertion order among equals.
func (g *Generator) ordered() []css.Rule {
	rules := g.rules.Rules()
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Specificity < rules[j].Specificity
	})
	return rules
}

// RuleCount returns the number of rules in the table.
func (g *Generator) RuleCount() int {
	return g.rules.Len()
}

// Rules returns copies of the rules in insertion order.
func (g *Generator) Rules() []css.Rule {
	return g.rules.Rules()
}

// Rule returns the rule stored under token.
func (g *Generator) Rule(token string) (css.Rule, bool) {
	return g.rules.Get(token)
}

// Table exposes the underlying table to the optimizer. Callers must not use
// the Generator while a pass is running.
func (g *Generator) Table() *css.Table {
	return g.rules
}

// Theme returns the theme the generator resolves colors against.
func (g *Generator) Theme() *theme.Theme {
	return g.theme
}

// Merge copies every rule of other into g, overwriting rules with the same
// key. Keys keep their first position in g.
func (g *Generator) Merge(other *Generator) {
	for _, e := range other.rules.Entries() {
		g.rules.Upsert(e.Key, e.Rule)
	}
}

// IsUnknownClass reports whether err came from an unresolved token.
func IsUnknownClass(err error) bool {
	return errors.Is(err, ErrUnknownClass)
}
