package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/pkg/watcher"
	"github.com/grovetools/hookcfg/tui/theme"
)

// NewWatchCmd creates the `watch` command.
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Revalidate the configuration whenever it changes",
		Long: `Watches the configuration file and reruns validation on every write.
Useful alongside an editor while working on hook registrations.

Examples:
  # Watch the config found from the current directory
  hookcfg watch

  # Watch a specific file
  hookcfg watch -c path/to/.pre-commit-config.yaml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			path, err := cli.ResolveConfigFile(opts.ConfigFile)
			if err != nil {
				return handler.Handle(err)
			}

			debounce, _ := cmd.Flags().GetInt("debounce")

			w, err := watcher.New(path, debounce, func(r watcher.Result) {
				if r.Err != nil {
					fmt.Println(theme.RenderStatus("error", r.Err.Error()))
					return
				}
				fmt.Println(theme.RenderStatus("success",
					fmt.Sprintf("%s is valid (%d hooks)", path, len(r.Config.Registrations()))))
			})
			if err != nil {
				return handler.Handle(err)
			}

			fmt.Println(theme.DefaultTheme.Muted.Render("Watching " + path + " (ctrl+c to stop)"))
			w.Start(cmd.Context())
			return nil
		},
	}

	cmd.Flags().Int("debounce", 100, "Milliseconds to coalesce rapid writes")

	return cmd
}
