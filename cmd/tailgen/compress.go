package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/tailgen/internal/optimizer"
)

var compressCmd = &cobra.Command{
	Use:   "compress <file.css>",
	Short: "Minify CSS text without restructuring rules",
	Long: `Strip comments and whitespace, shorten colors and drop zero units.
Unlike optimize, rules are never parsed, merged or reordered. Use "-" to
read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		level := getIntWithFallback("level", "optimizer.compression-level", 2)
		out := optimizer.Compress(raw, level)

		if err := writeOutput(cmd, out); err != nil {
			return err
		}
		loggerFromContext(cmd.Context()).Info("Compressed", "before", len(raw), "after", len(out))
		return nil
	},
}

func init() {
	f := compressCmd.Flags()
	f.StringP("output", "o", "", "Write to file instead of stdout")
	f.Int("level", 2, "Compression level: 0 none, 1 whitespace, 2 full")
}
