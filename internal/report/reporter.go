package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Options controls issue rendering
type Options struct {
	UseColors       bool // Force colors on; otherwise auto-detected
	PrintLines      bool // Show source lines with a caret
	PrintLinterName bool // Show the (tailgen) suffix
}

// Reporter prints issues in golangci-lint format
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(opts.UseColors),
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors reports whether colored output is wanted. force wins,
// then FORCE_COLOR and GitHub Actions, then a TTY check on stdout.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// SortIssues orders issues by file, line and column in place.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// PrintIssues writes every issue, sorted by position.
func (r *Reporter) PrintIssues(issues []Issue) {
	SortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue writes "file:line:col: message (linter)" and the source line
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator pads up to column, copying tabs so the caret lines up
// with the source line however the terminal expands them.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := min(column-1, len(sourceLine))

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary writes the issue count, split by severity when both kinds
// are present, and a per-linter breakdown.
func (r *Reporter) PrintSummary(issues []Issue, truncated int) {
	var errors, warnings int
	linterCounts := make(map[string]int)
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
		linterCounts[issue.FromLinter]++
	}

	total := pluralizeCount(len(issues), "issue", "issues")
	var detail []string
	if errors > 0 && warnings > 0 {
		detail = append(detail,
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	}

	fmt.Fprintln(r.w, "")
	switch {
	case len(detail) > 0 && truncated > 0:
		fmt.Fprintf(r.w, "%s (%s; %s truncated):\n", total, strings.Join(detail, ", "), pluralizeCount(truncated, "issue", "issues"))
	case len(detail) > 0:
		fmt.Fprintf(r.w, "%s (%s):\n", total, strings.Join(detail, ", "))
	case truncated > 0:
		fmt.Fprintf(r.w, "%s (%s truncated):\n", total, pluralizeCount(truncated, "issue", "issues"))
	default:
		fmt.Fprintf(r.w, "%s:\n", total)
	}

	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}

	if len(issues) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format json to get machine-readable issues", r.useColors))
	}
}

// LimitIssues keeps at most maxSame issues with the same text and at most
// maxTotal issues overall. Zero means unlimited. The second result is the
// number of issues dropped.
func LimitIssues(issues []Issue, maxTotal, maxSame int) ([]Issue, int) {
	out := issues
	if maxSame > 0 {
		seen := make(map[string]int)
		out = make([]Issue, 0, len(issues))
		for _, issue := range issues {
			seen[issue.Text]++
			if seen[issue.Text] <= maxSame {
				out = append(out, issue)
			}
		}
	}
	if maxTotal > 0 && len(out) > maxTotal {
		out = out[:maxTotal]
	}
	return out, len(issues) - len(out)
}

// pluralizeCount returns "1 issue" or "3 issues"
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
