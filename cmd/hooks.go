package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/git"
	"github.com/grovetools/hookcfg/tui/theme"
)

// NewInstallHooksCmd creates the `install-hooks` command.
func NewInstallHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install-hooks",
		Short: "Install managed shim scripts into .git/hooks",
		Long: `Writes a shim script for each configured hook type into the repository's
.git/hooks directory. The shims delegate to the hook runner; existing
unmanaged hooks are backed up with a ` + "`.pre-hookcfg`" + ` suffix.

Hook types come from default_install_hook_types in the configuration, the
--hook-type flag, or fall back to pre-commit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			configPath, repoRoot, hookTypes, err := resolveHookContext(cmd, opts)
			if err != nil {
				return handler.Handle(err)
			}

			runner, _ := cmd.Flags().GetString("runner")
			manager := git.NewHookManager(runner, configPath)
			if err := manager.InstallHooks(cmd.Context(), repoRoot, hookTypes); err != nil {
				return handler.Handle(err)
			}

			for _, hookType := range hookTypes {
				fmt.Println(theme.RenderStatus("success",
					fmt.Sprintf("installed %s shim in %s", hookType, filepath.Join(repoRoot, ".git", "hooks"))))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceP("hook-type", "t", nil, "Hook types to install (overrides the configuration)")
	cmd.Flags().String("runner", "", "Hook runner binary the shims delegate to")

	return cmd
}

// NewUninstallHooksCmd creates the `uninstall-hooks` command.
func NewUninstallHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall-hooks",
		Short: "Remove managed shim scripts from .git/hooks",
		Long: `Removes the shim scripts previously written by install-hooks and restores
any hooks that were backed up. Hooks not written by hookcfg are left alone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			configPath, repoRoot, hookTypes, err := resolveHookContext(cmd, opts)
			if err != nil {
				return handler.Handle(err)
			}

			manager := git.NewHookManager("", configPath)
			if err := manager.UninstallHooks(cmd.Context(), repoRoot, hookTypes); err != nil {
				return handler.Handle(err)
			}

			fmt.Println(theme.RenderStatus("success",
				fmt.Sprintf("removed managed hooks from %s", filepath.Join(repoRoot, ".git", "hooks"))))
			return nil
		},
	}

	cmd.Flags().StringSliceP("hook-type", "t", nil, "Hook types to uninstall (overrides the configuration)")

	return cmd
}

// resolveHookContext loads the configuration and determines the repository
// root and the hook types to operate on.
func resolveHookContext(cmd *cobra.Command, opts cli.CommandOptions) (configPath, repoRoot string, hookTypes []string, err error) {
	configPath, err = cli.ResolveConfigFile(opts.ConfigFile)
	if err != nil {
		return "", "", nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return "", "", nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", "", nil, err
	}
	if !git.IsGitRepo(cwd) {
		return "", "", nil, errors.GitNotRepo(cwd)
	}
	repoRoot, err = git.GetGitRoot(cwd)
	if err != nil {
		return "", "", nil, err
	}

	hookTypes, _ = cmd.Flags().GetStringSlice("hook-type")
	if len(hookTypes) == 0 {
		hookTypes = cfg.DefaultInstallHookTypes
	}
	if len(hookTypes) == 0 {
		hookTypes = git.DefaultHookTypes
	}

	return configPath, repoRoot, hookTypes, nil
}
