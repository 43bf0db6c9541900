package accel

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/generator"
	"github.com/yacobolo/tailgen/internal/theme"
)

// Compiler compiles one element's class list at a time through a fresh
// Generator and memoizes the resulting rule entries in a Cache. It is safe
// for concurrent use as long as the Cache is.
type Compiler struct {
	cache Cache
	ttl   time.Duration
	theme *theme.Theme
	scope string // Theme fingerprint folded into every key
	log   *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithTTL sets the expiry of stored entries.
func WithTTL(ttl time.Duration) CompilerOption {
	return func(c *Compiler) {
		c.ttl = ttl
	}
}

// WithCompilerTheme compiles against th instead of the default theme.
func WithCompilerTheme(th *theme.Theme) CompilerOption {
	return func(c *Compiler) {
		c.theme = th
	}
}

// WithCompilerLogger sets the logger.
func WithCompilerLogger(log *zap.Logger) CompilerOption {
	return func(c *Compiler) {
		c.log = log
	}
}

// NewCompiler returns a Compiler backed by cache. A nil cache never hits.
func NewCompiler(cache Cache, opts ...CompilerOption) *Compiler {
	c := &Compiler{cache: cache}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = NewNullCache()
	}
	if c.theme == nil {
		c.theme = theme.Default()
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.log = c.log.Named("accel")
	c.scope = themeFingerprint(c.theme)
	return c
}

// Compile returns the rule entries for one element's classes in table
// order. Cache failures are logged and otherwise ignored; only class errors
// are returned.
func (c *Compiler) Compile(ctx context.Context, classes []string) ([]css.Entry, error) {
	key := ClassListKey(c.scope, classes)

	if raw, ok, err := c.cache.Get(ctx, key); err != nil {
		c.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var entries []css.Entry
		if err := json.Unmarshal(raw, &entries); err == nil {
			c.hits.Add(1)
			return entries, nil
		}
		c.log.Debug("discarding corrupt cache entry", zap.String("key", key))
	}
	c.misses.Add(1)

	g := generator.New(generator.WithTheme(c.theme), generator.WithLogger(c.log))
	if err := g.AddClassesForElement(classes); err != nil {
		return nil, err
	}
	entries := g.Table().Entries()

	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode entries: %w", err)
	}
	if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
		c.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return entries, nil
}

// CompileCSS compiles classes and renders them as minified CSS.
func (c *Compiler) CompileCSS(ctx context.Context, classes []string) (string, error) {
	entries, err := c.Compile(ctx, classes)
	if err != nil {
		return "", err
	}
	g := generator.New(generator.WithTheme(c.theme))
	g.Table().Reset(entries)
	return g.GenerateMinifiedCSS(), nil
}

// Stats returns the hit and miss counters.
func (c *Compiler) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// themeFingerprint hashes the theme's JSON form. encoding/json sorts map
// keys, so equal themes always hash the same.
func themeFingerprint(th *theme.Theme) string {
	raw, err := json.Marshal(th)
	if err != nil {
		return ""
	}
	return Hash(raw)
}
