package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "globookctl",
	Short:         "Operator tooling for the globook backend",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.AddCommand(newMigrateCmd(), newReportCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
