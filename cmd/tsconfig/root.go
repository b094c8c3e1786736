package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/tsconfig-engine/internal/cli"
)

var (
	// Global flags (available to all commands)
	verbose        bool
	trailingCommas string

	// cliConfig is loaded before any subcommand runs
	cliConfig *cli.CLIConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tsconfig",
	Short: "Parse, inspect and validate TypeScript project configurations",
	Long: `tsconfig parses tsconfig.json files, including comments and trailing commas,
into a typed model.

It shows parsed and extends-merged configurations, lists the input files a
configuration selects, validates whole workspaces of project references, and
serves the parser over HTTP.

Defaults are read from ~/.tsconfig-engine/config.yaml and TSCONFIG_* environment
variables (a .env file in the working directory is loaded too).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadCLIConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("trailing-commas") {
			cfg.TrailingCommas = trailingCommas
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		cliConfig = cfg
		return nil
	},
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&trailingCommas, "trailing-commas", "objects", "Trailing comma policy: objects (before '}' only) or all")

	// Add subcommands to root
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(enumsCmd)
	rootCmd.AddCommand(versionCmd)
}
