package tailgen

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/tailgen/internal/report"
)

// JSONOutput is the structured JSON export schema
type JSONOutput struct {
	Version   string        `json:"version"`
	BuildID   string        `json:"build_id"`
	Timestamp string        `json:"timestamp"`
	Summary   JSONSummary   `json:"summary"`
	Stats     JSONStats     `json:"stats"`
	Optimizer JSONOptimizer `json:"optimizer"`
	Issues    []JSONIssue   `json:"issues"`
	Warnings  []string      `json:"warnings"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int   `json:"total_issues"`
	Errors       int   `json:"errors"`
	Warnings     int   `json:"warnings"`
	Truncated    int   `json:"truncated"`
	FilesScanned int   `json:"files_scanned"`
	DurationMS   int64 `json:"duration_ms"`
}

// JSONStats contains compile statistics
type JSONStats struct {
	Elements    int     `json:"elements"`
	Tokens      int     `json:"tokens"`
	Unknown     int     `json:"unknown"`
	Coverage    float64 `json:"coverage"`
	Rules       int     `json:"rules"`
	CacheHits   int64   `json:"cache_hits"`
	CacheMisses int64   `json:"cache_misses"`
	Output      string  `json:"output,omitempty"`
	Bytes       int     `json:"bytes"`
}

// JSONOptimizer mirrors the optimizer results
type JSONOptimizer struct {
	OriginalSize     int     `json:"original_size"`
	OptimizedSize    int     `json:"optimized_size"`
	ReductionPercent float64 `json:"reduction_percent"`
	RulesMerged      int     `json:"rules_merged"`
	EmptyRemoved     int     `json:"empty_rules_removed"`
	DuplicateRemoved int     `json:"duplicate_properties_removed"`
	ValuesOptimized  int     `json:"properties_optimized"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the build result as indented JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case report.SeverityError:
			errors++
		case report.SeverityWarning:
			warnings++
		}
	}

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	warningList := result.Warnings
	if warningList == nil {
		warningList = []string{}
	}

	s := result.Stats
	o := s.Optimizer
	return JSONOutput{
		Version:   "1.0",
		BuildID:   result.BuildID,
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.Truncated,
			FilesScanned: s.FilesScanned,
			DurationMS:   result.Duration.Milliseconds(),
		},
		Stats: JSONStats{
			Elements:    s.Elements,
			Tokens:      s.Tokens,
			Unknown:     s.Unknown,
			Coverage:    s.Coverage(),
			Rules:       s.Rules,
			CacheHits:   s.CacheHits,
			CacheMisses: s.CacheMisses,
			Output:      s.Output,
			Bytes:       len(result.CSS),
		},
		Optimizer: JSONOptimizer{
			OriginalSize:     o.OriginalSize,
			OptimizedSize:    o.OptimizedSize,
			ReductionPercent: o.ReductionPercent(),
			RulesMerged:      o.RulesMerged,
			EmptyRemoved:     o.EmptyRulesRemoved,
			DuplicateRemoved: o.DuplicatePropertiesRemoved,
			ValuesOptimized:  o.PropertiesOptimized,
		},
		Issues:   jsonIssues,
		Warnings: warningList,
	}
}
