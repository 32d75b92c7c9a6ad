package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/tui/theme"
	"github.com/grovetools/hookcfg/util/siunit"
)

// NewListCmd creates the `list` command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the hook registrations in the configuration",
		Long: `Prints every (repo, rev, hook id) registration in declaration order.

Examples:
  # Table output
  hookcfg list

  # Machine-readable output
  hookcfg list --json

  # Only hooks from one repo
  hookcfg list --repo pre-commit-hooks
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

			repoFilter, _ := cmd.Flags().GetString("repo")

			regs := cfg.Registrations()
			if repoFilter != "" {
				var kept []config.Registration
				for _, r := range regs {
					if strings.Contains(r.Repo, repoFilter) {
						kept = append(kept, r)
					}
				}
				regs = kept
			}

			if opts.JSONOutput {
				out, err := json.MarshalIndent(regs, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			printRegistrationTable(regs)

			if info, err := os.Stat(path); err == nil {
				size := siunit.Formatter{Precision: 1, Unit: "B"}.Format(float64(info.Size()))
				fmt.Println(theme.DefaultTheme.Muted.Render(
					fmt.Sprintf("%d registrations in %s (%s)", len(regs), path, size)))
			}
			return nil
		},
	}

	cmd.Flags().String("repo", "", "Only show hooks whose repo URL contains this string")

	return cmd
}

// printRegistrationTable renders registrations as an aligned table.
func printRegistrationTable(regs []config.Registration) {
	t := theme.DefaultTheme

	hookWidth := len("HOOK")
	revWidth := len("REV")
	for _, r := range regs {
		if len(r.HookID) > hookWidth {
			hookWidth = len(r.HookID)
		}
		if len(r.Rev) > revWidth {
			revWidth = len(r.Rev)
		}
	}

	header := fmt.Sprintf("%-*s  %-*s  %s", hookWidth, "HOOK", revWidth, "REV", "REPO")
	fmt.Println(t.TableHeader.Render(header))

	for _, r := range regs {
		row := fmt.Sprintf("%-*s  %-*s  %s", hookWidth, r.HookID, revWidth, r.Rev, r.Repo)
		fmt.Println(t.TableRow.Render(row))
	}
}
