package main

import (
	"os"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"hookcfg",
		"Inspect, validate, and manage pre-commit hook configurations",
	)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewFmtCmd())
	rootCmd.AddCommand(cmd.NewListCmd())
	rootCmd.AddCommand(cmd.NewBrowseCmd())
	rootCmd.AddCommand(cmd.NewExportCmd())
	rootCmd.AddCommand(cmd.NewInstallHooksCmd())
	rootCmd.AddCommand(cmd.NewUninstallHooksCmd())
	rootCmd.AddCommand(cmd.NewWatchCmd())
	rootCmd.AddCommand(cmd.NewLogsCmd())
	rootCmd.AddCommand(cmd.NewSchemaCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
