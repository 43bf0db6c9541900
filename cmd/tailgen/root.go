package main

import (
	"errors"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// errIssuesFound fails the process without printing anything further; the
// issues were already reported.
var errIssuesFound = errors.New("issues found")

var rootCmd = &cobra.Command{
	Use:   "tailgen",
	Short: "Utility-class CSS compiler for Go/templ projects",
	Long: `Compile utility class tokens such as hover:md:bg-blue-500/50 into CSS.
tailgen scans your templates, generates one rule per token and optimizes
the resulting stylesheet.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}

		level := charmlog.InfoLevel
		switch {
		case getBoolWithFallback("verbose", "verbose", false):
			level = charmlog.DebugLevel
		case getBoolWithFallback("quiet", "quiet", false):
			level = charmlog.ErrorLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		return nil
	},
	// Default behavior: run build when no subcommand is given
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runBuild(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".tailgen.yaml", "Config file path")
	rootCmd.PersistentFlags().String("theme", "", "Theme overrides file (.toml or .json)")

	// These must work even when the config file is broken
	for _, cmd := range []*cobra.Command{initCmd, versionCmd, completionCmd} {
		cmd.Annotations = map[string]string{skipConfigAnnotation: ""}
	}

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
