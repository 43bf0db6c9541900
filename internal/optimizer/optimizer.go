// Package optimizer shrinks generated stylesheets. Rule-table passes run on
// a Generator in place; CompressCSS and OptimizeCSS work on CSS text.
package optimizer

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/tailgen/internal/generator"
)

// Config toggles the individual passes
type Config struct {
	RemoveEmptyRules          bool `koanf:"remove-empty-rules" json:"remove_empty_rules"`
	RemoveDuplicateProperties bool `koanf:"remove-duplicate-properties" json:"remove_duplicate_properties"`
	OptimizeProperties        bool `koanf:"optimize-properties" json:"optimize_properties"`
	MergeRules                bool `koanf:"merge-rules" json:"merge_rules"`
	SortProperties            bool `koanf:"sort-properties" json:"sort_properties"`
	CompressionLevel          int  `koanf:"compression-level" json:"compression_level"` // 0 none, 1 whitespace, 2 full
}

// DefaultConfig enables every pass with full text compression.
func DefaultConfig() Config {
	return Config{
		RemoveEmptyRules:          true,
		RemoveDuplicateProperties: true,
		OptimizeProperties:        true,
		MergeRules:                true,
		SortProperties:            true,
		CompressionLevel:          2,
	}
}

// Results reports what a run changed. Sizes are bytes of the minified
// rendering.
type Results struct {
	OriginalSize               int `json:"original_size"`
	OptimizedSize              int `json:"optimized_size"`
	RulesBefore                int `json:"rules_before"`
	RulesAfter                 int `json:"rules_after"`
	PropertiesBefore           int `json:"properties_before"`
	PropertiesAfter            int `json:"properties_after"`
	EmptyRulesRemoved          int `json:"empty_rules_removed"`
	DuplicatePropertiesRemoved int `json:"duplicate_properties_removed"`
	PropertiesOptimized        int `json:"properties_optimized"`
	RulesMerged                int `json:"rules_merged"`
	RulesSorted                int `json:"rules_sorted"`
}

// ReductionPercent is the size saving in percent, 0 for an empty input.
func (r Results) ReductionPercent() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.OriginalSize-r.OptimizedSize) / float64(r.OriginalSize) * 100
}

// Optimizer runs the configured passes
type Optimizer struct {
	cfg Config
	log *zap.Logger
}

// New returns an Optimizer. A nil logger disables logging.
func New(cfg Config, log *zap.Logger) *Optimizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Optimizer{cfg: cfg, log: log.Named("optimizer")}
}

// Optimize runs Optimizer.Optimize with DefaultConfig and no logging.
func Optimize(g *generator.Generator) Results {
	return New(DefaultConfig(), nil).Optimize(g)
}

// Optimize runs the enabled passes over g's rule table in the order empty,
// duplicates, properties, merge, sort. The table is consistent between
// passes but the caller must not use g concurrently.
func (o *Optimizer) Optimize(g *generator.Generator) Results {
	table := g.Table()

	res := Results{
		OriginalSize:     len(g.GenerateMinifiedCSS()),
		RulesBefore:      table.Len(),
		PropertiesBefore: table.PropertyCount(),
	}

	entries := table.Entries()
	if o.cfg.RemoveEmptyRules {
		entries, res.EmptyRulesRemoved = removeEmptyRules(entries)
		table.Reset(entries)
	}
	if o.cfg.RemoveDuplicateProperties {
		entries, res.DuplicatePropertiesRemoved = removeDuplicateProperties(entries)
		table.Reset(entries)
	}
	if o.cfg.OptimizeProperties {
		entries, res.PropertiesOptimized = optimizeProperties(entries)
		table.Reset(entries)
	}
	if o.cfg.MergeRules {
		entries, res.RulesMerged = mergeRules(entries)
		table.Reset(entries)
	}
	if o.cfg.SortProperties {
		entries, res.RulesSorted = sortProperties(entries)
		table.Reset(entries)
	}

	res.RulesAfter = table.Len()
	res.PropertiesAfter = table.PropertyCount()
	res.OptimizedSize = len(g.GenerateMinifiedCSS())

	o.log.Debug("optimized rule table",
		zap.Int("rules_before", res.RulesBefore),
		zap.Int("rules_after", res.RulesAfter),
		zap.Int("empty_removed", res.EmptyRulesRemoved),
		zap.Int("duplicates_removed", res.DuplicatePropertiesRemoved),
		zap.Int("values_optimized", res.PropertiesOptimized),
		zap.Int("rules_merged", res.RulesMerged))

	return res
}

// OptimizeCSS parses foreign CSS leniently, runs the table passes over it
// and returns the minified, compressed text.
func (o *Optimizer) OptimizeCSS(raw string) (string, error) {
	entries, err := Extract(strings.NewReader(raw), o.log)
	if err != nil {
		return "", fmt.Errorf("extract rules: %w", err)
	}

	g := generator.New(generator.WithLogger(o.log))
	g.Table().Reset(entries)
	o.Optimize(g)

	return Compress(g.GenerateMinifiedCSS(), o.cfg.CompressionLevel), nil
}

// OptimizeCSS runs Optimizer.OptimizeCSS with DefaultConfig.
func OptimizeCSS(raw string) (string, error) {
	return New(DefaultConfig(), nil).OptimizeCSS(raw)
}
