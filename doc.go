// Package tailgen compiles utility class tokens found in Go, templ and HTML
// sources into a single optimized stylesheet.
//
// A token is a small DSL embedded in markup: variants separated by colons,
// an optional important or negative marker, and a base utility.
//
//	hover:md:bg-blue-500/50
//	!-mt-4
//	group-hover:[&>*]:text-[#333]
//
// # Building
//
// Build scans source files, compiles each element's class list, merges the
// results in scan order and optimizes the stylesheet:
//
//	cfg := tailgen.DefaultConfig()
//	cfg.ScanPaths = []string{"internal/web/**/*.templ"}
//	cfg.OutputFile = "static/app.css"
//	result, err := tailgen.Build(ctx, cfg)
//
// Unknown tokens are reported as issues with exact file positions. They
// only fail the build in strict mode.
//
// # Reporting
//
//	tailgen.WriteOutput(os.Stdout, result, tailgen.OutputIssues, tailgen.OutputOptions{PrintLines: true})
//
// # CLI Tool
//
//	go install github.com/yacobolo/tailgen/cmd/tailgen@latest
package tailgen
