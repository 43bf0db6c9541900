package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/tailgen/internal/optimizer"
)

// Stats summarizes one build for the statistics view
type Stats struct {
	FilesScanned int
	Elements     int
	Tokens       int // Distinct tokens seen
	Unknown      int // Distinct tokens no parser claimed
	Rules        int
	CacheHits    int64
	CacheMisses  int64
	Output       string // Path written, empty for stdout
	Optimizer    optimizer.Results
}

// Coverage is the share of distinct tokens that resolved, in percent.
func (s Stats) Coverage() float64 {
	if s.Tokens == 0 {
		return 100
	}
	return float64(s.Tokens-s.Unknown) / float64(s.Tokens) * 100
}

// StatsReporter prints build statistics
type StatsReporter struct {
	w         io.Writer
	useColors bool
}

// NewStatsReporter creates a statistics reporter
func NewStatsReporter(w io.Writer, useColors bool) *StatsReporter {
	return &StatsReporter{w: w, useColors: useColors}
}

// PrintStatistics writes the scan, compile and optimize counters.
func (r *StatsReporter) PrintStatistics(s Stats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Build Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------")

	fmt.Fprintf(r.w, "Files Scanned:     %d\n", s.FilesScanned)
	fmt.Fprintf(r.w, "Elements:          %d\n", s.Elements)
	fmt.Fprintf(r.w, "Distinct Tokens:   %d\n", s.Tokens)
	fmt.Fprintf(r.w, "Unknown Tokens:    %d\n", s.Unknown)
	fmt.Fprintf(r.w, "Rules Emitted:     %d\n", s.Rules)
	if s.CacheHits+s.CacheMisses > 0 {
		fmt.Fprintf(r.w, "Cache Hits:        %d/%d\n", s.CacheHits, s.CacheHits+s.CacheMisses)
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Token Coverage", r.useColors))
	fmt.Fprintln(r.w, "--------------")
	printProgressBar(r.w, s.Coverage())
}

// PrintOptimizer writes what the optimizer passes changed.
func (r *StatsReporter) PrintOptimizer(res optimizer.Results) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Optimizer", r.useColors))
	fmt.Fprintln(r.w, "---------")

	fmt.Fprintf(r.w, "Rules:               %d -> %d\n", res.RulesBefore, res.RulesAfter)
	fmt.Fprintf(r.w, "Properties:          %d -> %d\n", res.PropertiesBefore, res.PropertiesAfter)
	fmt.Fprintf(r.w, "Empty Rules Removed: %d\n", res.EmptyRulesRemoved)
	fmt.Fprintf(r.w, "Duplicates Removed:  %d\n", res.DuplicatePropertiesRemoved)
	fmt.Fprintf(r.w, "Values Optimized:    %d\n", res.PropertiesOptimized)
	fmt.Fprintf(r.w, "Rules Merged:        %d\n", res.RulesMerged)

	saving := fmt.Sprintf("Size:                %d -> %d bytes (%.1f%% smaller)",
		res.OriginalSize, res.OptimizedSize, res.ReductionPercent())
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, saving, r.useColors))
}

// PrintWarnings writes free-form warnings, if any.
func (r *StatsReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")
	for _, w := range warnings {
		fmt.Fprintf(r.w, "• %s\n", w)
	}
}

func printProgressBar(w io.Writer, percentage float64) {
	const barWidth = 20
	filled := min(max(int(percentage/100*barWidth), 0), barWidth)

	fmt.Fprintf(w, "[%s%s] %.1f%%\n",
		strings.Repeat("█", filled),
		strings.Repeat("░", barWidth-filled),
		percentage)
}
