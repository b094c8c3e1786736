package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/tsconfig-engine/internal/cli"
)

var (
	// Show command flags
	showOutput         string
	showResolveExtends bool
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a parsed configuration",
	Long: `Print the typed model of a tsconfig file.

Deprecated fields are reported as warnings on stderr.

Examples:
  tsconfig show tsconfig.json
  tsconfig show tsconfig.json --output yaml
  tsconfig show packages/app/tsconfig.json --resolve-extends --output summary`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output := cliConfig.Output
		if cmd.Flags().Changed("output") {
			output = showOutput
		}

		cli.ShowRun(cliConfig, args[0], cli.ShowOptions{
			Output:         output,
			ResolveExtends: showResolveExtends,
			Verbose:        verbose,
		})
	},
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "json", "Output format: json, yaml or summary")
	showCmd.Flags().BoolVar(&showResolveExtends, "resolve-extends", false, "Merge the configuration onto the files it extends")
}
