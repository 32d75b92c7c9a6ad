package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/tui/theme"
)

// NewFmtCmd creates the `fmt` command.
func NewFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Canonicalize a hook configuration file",
		Long: `Parses the configuration and re-emits it in canonical form: two-space
indentation, fields in struct order, zero-valued fields dropped. Repo blocks
and hook entries keep their declared order.

By default the canonical form is printed to stdout.

Examples:
  # Print the canonical form
  hookcfg fmt

  # Rewrite the file in place
  hookcfg fmt --write

  # Exit non-zero when the file is not canonical (for CI)
  hookcfg fmt --check
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

			original, err := os.ReadFile(path)
			if err != nil {
				return handler.Handle(err)
			}

			cfg, err := config.Load(path)
			if err != nil {
				return handler.Handle(err)
			}

			canonical, err := cfg.Marshal()
			if err != nil {
				return handler.Handle(err)
			}

			write, _ := cmd.Flags().GetBool("write")
			check, _ := cmd.Flags().GetBool("check")

			switch {
			case check:
				if bytes.Equal(original, canonical) {
					fmt.Println(theme.RenderStatus("success", path+" is canonical"))
					return nil
				}
				return fmt.Errorf("%s is not in canonical form", path)

			case write:
				if bytes.Equal(original, canonical) {
					return nil
				}
				info, err := os.Stat(path)
				if err != nil {
					return handler.Handle(err)
				}
				if err := os.WriteFile(path, canonical, info.Mode().Perm()); err != nil {
					return handler.Handle(err)
				}
				fmt.Println(theme.RenderStatus("success", "rewrote "+path))
				return nil

			default:
				fmt.Print(string(canonical))
				return nil
			}
		},
	}

	cmd.Flags().BoolP("write", "w", false, "Rewrite the file in place")
	cmd.Flags().Bool("check", false, "Exit non-zero if the file is not canonical")

	return cmd
}
