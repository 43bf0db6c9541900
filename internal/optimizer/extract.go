package optimizer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"github.com/yacobolo/tailgen/internal/css"
)

// Extract reads foreign CSS and returns its style rules as table entries
// keyed by position. It is a best-effort scanner: @media blocks are kept,
// other at-rules and malformed blocks are skipped and logged at debug
// level. Only reader failures are returned as errors.
func Extract(r io.Reader, log *zap.Logger) ([]css.Entry, error) {
	if log == nil {
		log = zap.NewNop()
	}

	p := tdcss.NewParser(parse.NewInput(r), false)

	var (
		entries  []css.Entry
		selector []string
		props    []css.Property
		media    string
		inRule   bool
		skipped  int
	)

	for {
		gt, tt, data := p.Next()

		switch gt {
		case tdcss.ErrorGrammar:
			err := p.Err()
			if err == nil || errors.Is(err, io.EOF) {
				if inRule {
					skipped++
				}
				log.Debug("extracted rules", zap.Int("rules", len(entries)), zap.Int("skipped", skipped))
				return entries, nil
			}
			var perr *parse.Error
			if errors.As(err, &perr) {
				log.Debug("skipping malformed css", zap.Error(err))
				skipped++
				continue
			}
			return nil, fmt.Errorf("read css: %w", err)

		case tdcss.BeginAtRuleGrammar:
			if string(data) != "@media" || media != "" {
				log.Debug("skipping at-rule block", zap.String("rule", string(data)))
				skipBlock(p)
				skipped++
				continue
			}
			media = joinTokens(p.Values())

		case tdcss.EndAtRuleGrammar:
			media = ""

		case tdcss.AtRuleGrammar:
			log.Debug("skipping at-rule", zap.String("rule", string(data)))

		case tdcss.QualifiedRuleGrammar:
			selector = append(selector, joinTokens(p.Values()))

		case tdcss.BeginRulesetGrammar:
			selector = append(selector, joinTokens(p.Values()))
			props = nil
			inRule = true

		case tdcss.DeclarationGrammar, tdcss.CustomPropertyGrammar:
			if !inRule {
				continue
			}
			value, important := declarationValue(p.Values())
			if value == "" {
				continue
			}
			props = append(props, css.Property{Name: string(data), Value: value, Important: important})

		case tdcss.EndRulesetGrammar:
			// The parser also ends an open ruleset at EOF, reporting the
			// error token instead of a closing brace.
			if inRule && tt != tdcss.RightBraceToken {
				log.Debug("skipping unterminated rule", zap.String("selector", strings.Join(selector, ",")))
				skipped++
			} else if inRule {
				entries = append(entries, css.Entry{
					Key: "rule-" + strconv.Itoa(len(entries)),
					Rule: css.Rule{
						Selector:    strings.Join(selector, ","),
						Properties:  props,
						MediaQuery:  media,
						Specificity: 0,
					},
				})
			}
			selector, props, inRule = nil, nil, false
		}
	}
}

// skipBlock consumes tokens up to the end of the current at-rule block.
func skipBlock(p *tdcss.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := p.Next()
		switch gt {
		case tdcss.ErrorGrammar:
			return
		case tdcss.BeginAtRuleGrammar, tdcss.BeginRulesetGrammar:
			depth++
		case tdcss.EndAtRuleGrammar, tdcss.EndRulesetGrammar:
			depth--
		}
	}
}

// joinTokens rebuilds source text from tokens, collapsing whitespace.
func joinTokens(tokens []tdcss.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.TokenType == tdcss.WhitespaceToken {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			continue
		}
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

func declarationValue(tokens []tdcss.Token) (string, bool) {
	value := joinTokens(tokens)
	if rest, ok := strings.CutSuffix(value, "important"); ok {
		rest = strings.TrimSpace(rest)
		if v, ok := strings.CutSuffix(rest, "!"); ok {
			return strings.TrimSpace(v), true
		}
	}
	return value, false
}
