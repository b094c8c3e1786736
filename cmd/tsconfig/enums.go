package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/tsconfig-engine/internal/cli"
)

var enumsCmd = &cobra.Command{
	Use:   "enums",
	Short: "List the known tokens of each compilerOptions enum",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cli.EnumsRun()
	},
}
