package tailgen

import (
	"fmt"

	"github.com/yacobolo/tailgen/internal/report"
)

// Issue is a single build problem in golangci-lint format.
type Issue = report.Issue

// IssuePos is the exact location of an issue.
type IssuePos = report.IssuePos

// LinterName tags every issue tailgen reports.
const LinterName = "tailgen"

// IssueUnknownClass is the text of an unresolved token issue.
const IssueUnknownClass = "unknown utility class %q"

// newUnknownClassIssue reports a token no parser claimed. Strict builds
// report it as an error, others as a warning.
func newUnknownClassIssue(u ClassUsage, token string, column int, strict bool) Issue {
	severity := report.SeverityWarning
	if strict {
		severity = report.SeverityError
	}
	return Issue{
		FromLinter:  LinterName,
		Text:        fmt.Sprintf(IssueUnknownClass, token),
		Severity:    severity,
		SourceLines: []string{u.Location.Text},
		Pos: IssuePos{
			Filename: u.Location.File,
			Line:     u.Location.Line,
			Column:   column,
		},
	}
}
