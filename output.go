package tailgen

import (
	"fmt"
	"io"

	"github.com/yacobolo/tailgen/internal/report"
)

// OutputFormat selects how a build result is reported
type OutputFormat string

const (
	// OutputIssues shows only issues in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows build and optimizer statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues and statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data for tooling
	OutputJSON OutputFormat = "json"
)

// OutputOptions controls the text reporters
type OutputOptions struct {
	UseColors       bool
	PrintLines      bool
	PrintLinterName bool
}

// DetermineOutputFormat maps a flag value to a format. Quiet and unknown
// values fall back to OutputIssues.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the build result in the given format.
func WriteOutput(w io.Writer, result *Result, format OutputFormat, opts OutputOptions) error {
	reporterOpts := report.Options{
		UseColors:       opts.UseColors,
		PrintLines:      opts.PrintLines,
		PrintLinterName: opts.PrintLinterName,
	}

	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputSummary:
		stats := report.NewStatsReporter(w, report.ShouldUseColors(opts.UseColors))
		stats.PrintStatistics(result.Stats)
		stats.PrintOptimizer(result.Stats.Optimizer)
		stats.PrintWarnings(result.Warnings)

	case OutputFull:
		reporter := report.NewReporter(w, reporterOpts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.Truncated)

		stats := report.NewStatsReporter(w, reporter.UseColors())
		stats.PrintStatistics(result.Stats)
		stats.PrintOptimizer(result.Stats.Optimizer)
		stats.PrintWarnings(result.Warnings)

	default:
		reporter := report.NewReporter(w, reporterOpts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.Truncated)
	}

	return nil
}
