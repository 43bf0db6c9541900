package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tailgen"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"gen"},
	Short:   "Compile utility classes found in source files into CSS",
	Long: `Scan source files for class lists, compile every token into a CSS rule,
optimize the stylesheet and write it. Unknown tokens are reported as issues.`,
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("paths", nil, "File patterns to scan for class lists")
	f.StringP("output", "o", "", "Output CSS file")
	f.Bool("minify", true, "Write minified CSS")
	f.Bool("optimize", true, "Run the optimizer passes")
	f.Int("level", 2, "Text compression level: 0 none, 1 whitespace, 2 full")
	f.Int("workers", 0, "Compile workers (0 = number of CPUs)")
	f.String("cache-backend", "memory", "Compile cache: memory|file|redis|none")
	f.String("cache-dir", ".tailgen-cache", "Directory for the file cache")
	f.String("redis-addr", "", "Redis address for the redis cache")
	f.Bool("strict", false, "Exit 1 on any unknown class (CI mode)")
	f.String("output-format", "", "Report format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (tailgen) suffix on issues")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := buildBuildConfig()
	if err != nil {
		return err
	}
	verbose := getBoolWithFallback("verbose", "verbose", false)
	cfg.Logger = newZapLogger(verbose)
	defer func() { _ = cfg.Logger.Sync() }()

	cacheSettings, err := buildCacheSettings()
	if err != nil {
		return err
	}
	cache, err := openCache(ctx, cacheSettings)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer cache.Close()
	cfg.Cache = cache

	prog := newProgress(logger)
	result, buildErr := tailgen.Build(ctx, cfg)
	if result == nil {
		return fmt.Errorf("build failed: %w", buildErr)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := tailgen.DetermineOutputFormat(getStringWithFallback("output-format", "build.output-format", ""), quiet)
	if !quiet {
		opts := tailgen.OutputOptions{
			UseColors:       getBoolWithFallback("color", "color", false),
			PrintLines:      getBoolWithFallback("print-lines", "build.print-lines", true),
			PrintLinterName: getBoolWithFallback("print-linter-name", "build.print-linter-name", true),
		}
		if err := tailgen.WriteOutput(os.Stdout, result, format, opts); err != nil {
			return err
		}
	}

	switch {
	case errors.Is(buildErr, tailgen.ErrStrict):
		logger.Error("strict mode: unknown classes found", "unknown", result.Stats.Unknown)
		return errIssuesFound
	case buildErr != nil:
		return fmt.Errorf("build failed: %w", buildErr)
	}

	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	prog.done("Build complete",
		"rules", result.Stats.Rules,
		"bytes", len(result.CSS),
		"output", result.Stats.Output)
	return nil
}
