package tailgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/tailgen/internal/accel"
	"github.com/yacobolo/tailgen/internal/generator"
	"github.com/yacobolo/tailgen/internal/optimizer"
	"github.com/yacobolo/tailgen/internal/report"
	"github.com/yacobolo/tailgen/internal/theme"
)

// ErrStrict is returned by Build in strict mode when any token is unknown.
var ErrStrict = errors.New("unknown utility classes in strict mode")

// Config holds build configuration
type Config struct {
	ScanPaths  []string // Doublestar patterns: "web/**/*.templ"
	OutputFile string   // Where to write the stylesheet, empty to skip writing
	ThemeFile  string   // Optional .toml or .json theme overrides

	Minify    bool
	Optimize  bool
	Optimizer optimizer.Config

	Workers  int           // Compile workers, 0 = NumCPU
	Cache    accel.Cache   // Compiled element cache, nil = in-memory LRU
	CacheTTL time.Duration // 0 = no expiry

	Strict        bool // Unknown tokens fail the build
	MaxIssues     int  // 0 = unlimited
	MaxSameIssues int  // 0 = unlimited

	Logger *zap.Logger
}

// DefaultConfig returns the configuration used by `tailgen build`
// without a config file.
func DefaultConfig() Config {
	return Config{
		ScanPaths:  []string{"**/*.templ", "**/*.html"},
		OutputFile: "static/tailgen.css",
		Minify:     true,
		Optimize:   true,
		Optimizer:  optimizer.DefaultConfig(),
	}
}

// Result is the outcome of one build
type Result struct {
	BuildID   string
	CSS       string
	Issues    []Issue
	Truncated int // Issues dropped by MaxIssues/MaxSameIssues
	Stats     report.Stats
	Warnings  []string
	Duration  time.Duration
}

// ErrorCount returns the number of error-severity issues.
func (r *Result) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == report.SeverityError {
			n++
		}
	}
	return n
}

// Build scans source files, compiles every element's classes through the
// worker pool, merges the element rule sets in scan order, optimizes the
// result and writes the stylesheet.
//
// Unknown tokens are reported as issues and dropped from their element.
// In strict mode they also make Build return ErrStrict, and nothing is
// written. The returned Result is non-nil whenever scanning succeeded.
func Build(ctx context.Context, cfg Config) (*Result, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("build")

	start := time.Now()
	res := &Result{BuildID: uuid.NewString()}

	th := theme.Default()
	if cfg.ThemeFile != "" {
		loaded, err := theme.LoadFile(cfg.ThemeFile)
		if err != nil {
			return nil, fmt.Errorf("load theme: %w", err)
		}
		th = loaded
	}

	// 1. Scan
	usages, scanStats, err := ScanFiles(cfg.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	res.Warnings = append(res.Warnings, scanStats.Warnings...)
	res.Stats.FilesScanned = scanStats.FilesScanned
	log.Debug("scanned sources",
		zap.Int("files", scanStats.FilesScanned),
		zap.Int("skipped", scanStats.FilesSkipped),
		zap.Int("elements", len(usages)))

	// 2. Group per element, dropping unknown tokens
	elements, issues, tokens, unknown := resolveUsages(usages, th, cfg.Strict)
	res.Stats.Elements = len(elements)
	res.Stats.Tokens = tokens
	res.Stats.Unknown = unknown

	// 3. Compile
	cache := cfg.Cache
	if cache == nil {
		cache = accel.NewMemoryCache(4096)
	}
	compiler := accel.NewCompiler(cache,
		accel.WithTTL(cfg.CacheTTL),
		accel.WithCompilerTheme(th),
		accel.WithCompilerLogger(log))

	results, err := accel.NewPool(compiler, cfg.Workers).CompileElements(ctx, elements)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	for _, e := range multierr.Errors(err) {
		res.Warnings = append(res.Warnings, e.Error())
	}
	res.Stats.CacheHits, res.Stats.CacheMisses = compiler.Stats()

	// 4. Merge in scan order
	g := generator.New(generator.WithTheme(th), generator.WithLogger(log))
	if n := accel.MergeResults(g, results, log); n > 0 {
		log.Debug("merged elements disagree on shared tokens", zap.Int("tokens", n))
	}

	// 5. Optimize
	if cfg.Optimize {
		res.Stats.Optimizer = optimizer.New(cfg.Optimizer, log).Optimize(g)
	}
	res.Stats.Rules = g.RuleCount()

	if cfg.Minify {
		level := 1
		if cfg.Optimize {
			level = cfg.Optimizer.CompressionLevel
		}
		res.CSS = optimizer.Compress(g.GenerateMinifiedCSS(), level)
	} else {
		res.CSS = g.GenerateCSS()
	}

	report.SortIssues(issues)
	res.Issues, res.Truncated = report.LimitIssues(issues, cfg.MaxIssues, cfg.MaxSameIssues)
	res.Duration = time.Since(start)

	if cfg.Strict && unknown > 0 {
		return res, fmt.Errorf("%w: %d unknown", ErrStrict, unknown)
	}

	// 6. Write
	if cfg.OutputFile != "" {
		if err := writeFile(cfg.OutputFile, res.CSS); err != nil {
			return res, err
		}
		res.Stats.Output = cfg.OutputFile
		log.Debug("stylesheet written",
			zap.String("path", cfg.OutputFile),
			zap.Int("bytes", len(res.CSS)),
			zap.Int("rules", res.Stats.Rules))
	}

	return res, nil
}

// resolveUsages splits every usage into tokens and drops the ones no parser
// claims. Each distinct token is checked once against a scratch Generator.
func resolveUsages(usages []ClassUsage, th *theme.Theme, strict bool) (elements [][]string, issues []Issue, tokens, unknown int) {
	scratch := generator.New(generator.WithTheme(th))
	known := make(map[string]bool)

	for _, u := range usages {
		classes := u.Classes()
		cols := u.TokenColumns()

		element := make([]string, 0, len(classes))
		for i, token := range classes {
			ok, seen := known[token]
			if !seen {
				ok = scratch.AddClass(token) == nil
				known[token] = ok
				tokens++
				if !ok {
					unknown++
				}
			}
			if !ok {
				issues = append(issues, newUnknownClassIssue(u, token, cols[i], strict))
				continue
			}
			element = append(element, token)
		}

		if len(element) > 0 {
			elements = append(elements, element)
		}
	}

	return elements, issues, tokens, unknown
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
