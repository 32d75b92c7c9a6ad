// Package cmd implements the hookcfg subcommands.
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/tui/theme"
)

// NewValidateCmd creates the `validate` command.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a hook configuration file",
		Long: `Checks the configuration against the schema and the semantic rules:
unique hook ids per repo block, pinned revisions for remote repos, known
languages and stages, and compilable file patterns.

Examples:
  # Validate the config found from the current directory
  hookcfg validate

  # Validate a specific file
  hookcfg validate path/to/.pre-commit-config.yaml
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			path := opts.ConfigFile
			if len(args) > 0 {
				path = args[0]
			}
			path, err := cli.ResolveConfigFile(path)
			if err != nil {
				return handler.Handle(err)
			}

			cfg, err := config.Load(path)
			if err != nil {
				if opts.JSONOutput {
					printValidationJSON(path, err)
					return err
				}
				return handler.Handle(err)
			}

			if opts.JSONOutput {
				printValidationJSON(path, nil)
				return nil
			}

			regs := cfg.Registrations()
			fmt.Println(theme.RenderStatus("success",
				fmt.Sprintf("%s is valid (%d repos, %d hooks)", path, len(cfg.Repos), len(regs))))
			return nil
		},
	}
}

// printValidationJSON emits a machine-readable validation result.
func printValidationJSON(path string, err error) {
	result := map[string]interface{}{
		"file":  path,
		"valid": err == nil,
	}
	if err != nil {
		result["error"] = err.Error()
		result["code"] = string(errors.GetCode(err))
	}
	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
}
