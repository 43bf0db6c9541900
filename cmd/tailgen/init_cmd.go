package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tailgen.yaml config file",
	Long:  `Create a .tailgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".tailgen.yaml"); err == nil && !force {
			return fmt.Errorf(".tailgen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".tailgen.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .tailgen.yaml")
		return nil
	},
}

const defaultConfig = `# tailgen configuration
# Precedence: flags > TAILGEN_* env > this file > defaults

verbose: false
theme: ""                  # optional .toml or .json theme overrides

build:
  paths:
    - "**/*.templ"
    - "**/*.html"
  output: static/tailgen.css
  minify: true
  optimize: true
  workers: 0               # 0 = number of CPUs
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

optimizer:
  remove-empty-rules: true
  remove-duplicate-properties: true
  optimize-properties: true
  merge-rules: true
  sort-properties: true
  compression-level: 2     # 0 none | 1 whitespace | 2 full

cache:
  backend: memory          # memory | file | redis | none
  dir: .tailgen-cache
  size: 4096
  ttl: 0s
  redis:
    addr: localhost:6379
    password: ""
    db: 0
    prefix: "tailgen:"

serve:
  addr: ":8080"
  workers: 0
  max-body: 1048576
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
