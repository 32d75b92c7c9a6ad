package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/tui/browser"
)

// NewBrowseCmd creates the `browse` command.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse hook registrations interactively",
		Long: `Opens a terminal browser over the hook registrations. Use / to filter,
enter to inspect a hook, and q to quit.`,
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

			p := tea.NewProgram(browser.New(cfg), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
