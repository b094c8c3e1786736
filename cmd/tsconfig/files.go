package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/tsconfig-engine/internal/cli"
)

var (
	// Files command flags
	filesRespectGitignore bool
	filesResolveExtends   bool
)

// filesCmd represents the files command
var filesCmd = &cobra.Command{
	Use:   "files <file>",
	Short: "List the input files a configuration selects",
	Long: `List the input files selected by the files, include and exclude fields of a
tsconfig file, relative to the file's directory.

Examples:
  tsconfig files tsconfig.json
  tsconfig files tsconfig.json --respect-gitignore --resolve-extends`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli.FilesRun(cliConfig, args[0], cli.FilesOptions{
			RespectGitignore: filesRespectGitignore,
			ResolveExtends:   filesResolveExtends,
			Verbose:          verbose,
		})
	},
}

func init() {
	filesCmd.Flags().BoolVar(&filesRespectGitignore, "respect-gitignore", false, "Skip files ignored by .gitignore")
	filesCmd.Flags().BoolVar(&filesResolveExtends, "resolve-extends", false, "Use the extends-merged configuration")
}
