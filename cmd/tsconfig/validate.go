package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/tsconfig-engine/internal/cli"
)

var (
	// Validate command flags
	validateDir string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate the tsconfig files of a workspace",
	Long: `Validate every tsconfig.json, tsconfig.*.json and jsconfig.json below a
directory.

This command checks for:
- Files that fail to parse
- extends targets that cannot be found or loaded
- Project references that point at no configuration
- Cycles between project references
- Deprecated fields (reported as warnings)

Examples:
  tsconfig validate                          # Validate the current directory
  tsconfig validate packages/app/tsconfig.json   # Validate one file (includes workspace checks)
  tsconfig validate --dir ./monorepo`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ValidateOptions{
			Dir:     validateDir,
			Verbose: verbose,
		}

		if len(args) == 0 {
			cli.ValidateRunAll(cliConfig, opts)
		} else {
			cli.ValidateRunSingle(cliConfig, args[0], opts)
		}
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateDir, "dir", ".", "Workspace directory to scan")
}
