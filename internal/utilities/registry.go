package utilities

import (
	"strings"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
)

// Registry is an ordered parser chain. The first parser that both claims a
// token's prefix and accepts it wins.
type Registry struct {
	parsers []Parser
}

// New builds a registry that consults parsers in the given order
func New(parsers ...Parser) *Registry {
	return &Registry{parsers: parsers}
}

// Default returns the built-in registry for th.
//
// Order is load-bearing wherever two categories share a prefix:
//   - gradient directions precede every other bg-* parser
//   - background keywords (bg-center, bg-cover) precede bg colors
//   - colors precede text sizes, border widths, ring widths and shadows
//   - divide widths precede divide colors
//   - display keywords run last because flex, grid and table are also
//     prefixes of other categories
func Default(th *theme.Theme) *Registry {
	if th == nil {
		th = theme.Default()
	}

	var parsers []Parser
	parsers = append(parsers, newGradientDirectionParser(), newGradientStopParser(th))
	parsers = append(parsers, backgroundParsers()...)
	parsers = append(parsers, newColorParser(th))
	parsers = append(parsers, spacingParsers(th)...)
	parsers = append(parsers, typographyParsers(th)...)
	parsers = append(parsers, flexParsers(th)...)
	parsers = append(parsers, gridParsers()...)
	parsers = append(parsers, bordersParsers(th)...)
	parsers = append(parsers, effectsParsers(th)...)
	parsers = append(parsers, filterParsers()...)
	parsers = append(parsers, backdropParsers()...)
	parsers = append(parsers, transformParsers(th)...)
	parsers = append(parsers, transitionParsers()...)
	parsers = append(parsers, sizingParsers(th)...)
	parsers = append(parsers, layoutParsers(th)...)
	parsers = append(parsers, interactivityParsers(th)...)
	parsers = append(parsers, svgParsers()...)
	parsers = append(parsers, tableParsers(th)...)
	parsers = append(parsers, displayParser())

	return New(parsers...)
}

// Parsers returns the chain in consultation order.
func (r *Registry) Parsers() []Parser {
	out := make([]Parser, len(r.parsers))
	copy(out, r.parsers)
	return out
}

// Match returns the parser that owns base together with its declarations.
func (r *Registry) Match(base string, negative bool) (Parser, []css.Property, bool) {
	for _, p := range r.parsers {
		if !claims(p, base) {
			continue
		}
		if props, ok := p.Parse(base, negative); ok {
			return p, props, true
		}
	}
	return nil, nil, false
}

// Parse resolves base or returns an *UnknownClassError.
func (r *Registry) Parse(base string, negative bool) ([]css.Property, error) {
	_, props, ok := r.Match(base, negative)
	if !ok {
		return nil, &UnknownClassError{Base: base}
	}
	return props, nil
}

// Scope reports the selector suffix p adds for base, if any.
func Scope(p Parser, base string) string {
	if s, ok := p.(SelectorScoper); ok {
		return s.SelectorSuffix(base)
	}
	return ""
}

// claims is the cheap prefix check done before a parser's Parse.
// A prefix "x-" also claims the bare head "x".
func claims(p Parser, base string) bool {
	for _, prefix := range p.Prefixes() {
		if strings.HasPrefix(base, prefix) || base == strings.TrimSuffix(prefix, "-") {
			return true
		}
	}
	return false
}
