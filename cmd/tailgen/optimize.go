package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tailgen/internal/optimizer"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <file.css>",
	Short: "Optimize an existing stylesheet",
	Long: `Parse a stylesheet leniently, drop empty rules and duplicate declarations,
normalize values, merge rules with identical selectors and compress the
result. Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runOptimize,
}

func init() {
	f := optimizeCmd.Flags()
	f.StringP("output", "o", "", "Write to file instead of stdout")
	f.Int("level", 2, "Text compression level: 0 none, 1 whitespace, 2 full")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	raw, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	cfg, err := buildOptimizerConfig()
	if err != nil {
		return err
	}
	zl := newZapLogger(getBoolWithFallback("verbose", "verbose", false))
	defer func() { _ = zl.Sync() }()

	out, err := optimizer.New(cfg, zl).OptimizeCSS(raw)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	if err := writeOutput(cmd, out); err != nil {
		return err
	}
	logger.Info("Optimized", "before", len(raw), "after", len(out))
	return nil
}

// readInput reads path, or stdin for "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	// #nosec G304 - path is given by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes s to the --output file or to the command's stdout.
func writeOutput(cmd *cobra.Command, s string) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), s+"\n")
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
