package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/tsconfig-engine/internal/cli"
)

var (
	// Check command flags
	checkResolveExtends bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse several configuration files concurrently",
	Long: `Parse each given file and report whether it is a valid tsconfig.

Examples:
  tsconfig check tsconfig.json tsconfig.build.json
  tsconfig check packages/*/tsconfig.json --resolve-extends`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli.CheckRun(cliConfig, args, cli.CheckOptions{
			ResolveExtends: checkResolveExtends,
			Verbose:        verbose,
		})
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkResolveExtends, "resolve-extends", false, "Also load every extended configuration")
}
