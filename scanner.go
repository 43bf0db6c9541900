package tailgen

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassUsage is one element's class list found in source code
type ClassUsage struct {
	Value    string       // Full attribute value: "p-4 hover:bg-blue-500"
	Location FileLocation // Position of the first byte of Value
}

// FileLocation tracks where a class list was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the start of the value
	Text   string // Full untrimmed line, so columns line up
}

// Classes splits the usage into tokens.
func (u ClassUsage) Classes() []string {
	return strings.Fields(u.Value)
}

// TokenColumns returns the 1-based column of every token in Classes order.
func (u ClassUsage) TokenColumns() []int {
	var cols []int
	start := -1
	for i, r := range u.Value + " " {
		space := r == ' ' || r == '\t' || r == '\n' || r == '\r'
		switch {
		case !space && start < 0:
			start = i
		case space && start >= 0:
			cols = append(cols, u.Location.Column+start)
			start = -1
		}
	}
	return cols
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int      // Total files found by glob patterns
	FilesScanned    int      // Files actually scanned (after filtering)
	FilesSkipped    int      // Files skipped as generated or gitignored
	Warnings        []string // Files that matched but could not be read
}

// scanPattern is a regex whose first group captures a class list
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Ordered from most specific to least specific
	patterns = []scanPattern{
		{
			name:  "class attribute with double quotes",
			regex: regexp.MustCompile(`\bclass(?:Name)?="([^"]+)"`),
		},
		{
			name:  "class attribute with single quotes",
			regex: regexp.MustCompile(`\bclass(?:Name)?='([^']+)'`),
		},
		{
			name:  "class with string literal in braces",
			regex: regexp.MustCompile(`\bclass(?:Name)?=\{\s*"([^"]+)"`),
		},
		{
			name:  "tw helper call",
			regex: regexp.MustCompile(`\btw\(\s*"([^"]+)"`),
		},
	}

	// templ.Classes and templ.KV take several comma separated arguments
	templClassesMulti = regexp.MustCompile(`templ\.Classes\(([^)]+)\)`)
	templKVMulti      = regexp.MustCompile(`templ\.KV\(([^)]+)\)`)

	commentPattern = regexp.MustCompile(`^\s*//`)

	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated checks if a file is a templ-generated Go file
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads .gitignore from the working directory once.
// A missing file disables the check.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether path is generated or gitignored.
// Gitignore rules only apply to relative paths inside the project.
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}

	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given doublestar patterns for class
// lists. Unreadable files are recorded in ScanStats.Warnings and skipped.
func ScanFiles(scanPatterns []string) ([]ClassUsage, ScanStats, error) {
	files, stats, err := expandGlobPatternsWithStats(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	var usages []ClassUsage
	for _, file := range files {
		found, err := scanFile(file)
		if err != nil {
			stats.Warnings = append(stats.Warnings, fmt.Sprintf("scan %s: %v", file, err))
			continue
		}
		usages = append(usages, found...)
	}

	return usages, stats, nil
}

// expandGlobPatternsWithStats expands globs into a deduplicated file list
func expandGlobPatternsWithStats(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file line by line
func scanFile(filePath string) ([]ClassUsage, error) {
	// #nosec G304 - paths come from the user's own glob patterns
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var usages []ClassUsage
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		usages = append(usages, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return usages, nil
}

// extractClassesFromLine extracts every class list from a line
func extractClassesFromLine(line string, lineNum int, file string) []ClassUsage {
	if commentPattern.MatchString(line) {
		return nil
	}

	newUsage := func(value string, start int) ClassUsage {
		return ClassUsage{
			Value: value,
			Location: FileLocation{
				File:   file,
				Line:   lineNum,
				Column: start + 1,
				Text:   line,
			},
		}
	}

	var usages []ClassUsage

	// templ helpers get their own handling so their string arguments are
	// not matched twice
	hasTemplClasses := strings.Contains(line, "templ.Classes(")
	hasTemplKV := strings.Contains(line, "templ.KV(")
	if hasTemplClasses || hasTemplKV {
		for _, m := range templClassesMulti.FindAllStringSubmatchIndex(line, -1) {
			usages = append(usages, templArguments(line, m[2], m[3], false, newUsage)...)
		}
		if !hasTemplClasses {
			for _, m := range templKVMulti.FindAllStringSubmatchIndex(line, -1) {
				usages = append(usages, templArguments(line, m[2], m[3], true, newUsage)...)
			}
		}
		return usages
	}

	for _, pattern := range patterns {
		for _, m := range pattern.regex.FindAllStringSubmatchIndex(line, -1) {
			if len(m) < 4 {
				continue
			}
			usages = append(usages, newUsage(line[m[2]:m[3]], m[2]))
		}
	}

	return usages
}

// templArguments collects the string literal arguments of a templ helper
// whose argument list spans line[start:end]. With firstOnly, only the first
// argument is considered, as templ.KV's second argument is its condition.
func templArguments(line string, start, end int, firstOnly bool, newUsage func(string, int) ClassUsage) []ClassUsage {
	var usages []ClassUsage

	offset := start
	for i, part := range splitTemplArgs(line[start:end]) {
		if firstOnly && i > 0 {
			break
		}
		partStart := offset
		offset += len(part) + 1 // the comma

		// templ.KV nested inside templ.Classes
		if inner, ok := strings.CutPrefix(strings.TrimSpace(part), "templ.KV("); ok {
			part = inner
			partStart = strings.Index(line[partStart:], "templ.KV(") + partStart + len("templ.KV(")
			if args := splitTemplArgs(strings.TrimSuffix(part, ")")); len(args) > 0 {
				part = args[0]
			}
		}

		trimmed := strings.TrimSpace(part)
		if len(trimmed) < 2 || !strings.HasPrefix(trimmed, `"`) || !strings.HasSuffix(trimmed, `"`) {
			continue
		}
		value := trimmed[1 : len(trimmed)-1]
		if strings.TrimSpace(value) == "" {
			continue
		}
		valueStart := partStart + strings.Index(part, `"`) + 1
		usages = append(usages, newUsage(value, valueStart))
	}

	return usages
}

// splitTemplArgs splits comma-separated arguments at paren depth zero
func splitTemplArgs(s string) []string {
	var parts []string
	var current strings.Builder
	parenDepth := 0
	inString := false

	for _, r := range s {
		switch {
		case r == '"':
			inString = !inString
			current.WriteRune(r)
		case inString:
			current.WriteRune(r)
		case r == '(':
			parenDepth++
			current.WriteRune(r)
		case r == ')':
			parenDepth--
			current.WriteRune(r)
		case r == ',' && parenDepth == 0:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// GetRelativePath returns absPath relative to the working directory when
// possible.
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
