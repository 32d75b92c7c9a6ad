package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/config"
)

// NewExportCmd creates the `export` command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the configuration in another format",
		Long: `Re-serializes the configuration as YAML, JSON, or TOML. Only YAML output
preserves unknown top-level blocks; JSON and TOML carry the typed fields.

Examples:
  # Print as JSON
  hookcfg export --format json

  # Write TOML to a file
  hookcfg export --format toml -o hooks.toml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			path, err := cli.ResolveConfigFile(opts.ConfigFile)
			if err != nil {
				return handler.Handle(err)
			}

			cfg, err := config.Load(path)
			if err != nil {
				return handler.Handle(err)
			}

			format, _ := cmd.Flags().GetString("format")
			out, err := cfg.Export(config.ExportFormat(format))
			if err != nil {
				return handler.Handle(err)
			}

			output, _ := cmd.Flags().GetString("output")
			if output != "" {
				return os.WriteFile(output, out, 0644)
			}

			fmt.Print(string(out))
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "yaml", "Output format: yaml, json, or toml")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	return cmd
}
