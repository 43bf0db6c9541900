package report

// Issue is a single problem found while building, in golangci-lint shape
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "tailgen"
	Text        string   `json:"Text"`        // "unknown utility class \"bg-blu-500\""
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with the issue
	Pos         IssuePos `json:"Pos"`
}

// IssuePos is the location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, start of the offending token
}

// Severity levels
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)
