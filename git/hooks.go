package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/grovetools/hookcfg/command"
)

// hookShimTemplate is the script written into .git/hooks for each managed
// hook type. It hands off to the hook runner and degrades to a no-op when
// the runner is not on PATH, so clones without the tooling keep working.
const hookShimTemplate = `#!/bin/sh
# hookcfg managed hook - {{.HookType}}
# Auto-generated, do not edit directly

RUNNER_BIN="{{.RunnerBinary}}"

if ! command -v "$RUNNER_BIN" >/dev/null 2>&1; then
    echo "hookcfg: '$RUNNER_BIN' not found, skipping {{.HookType}} hook" >&2
    exit 0
fi

exec "$RUNNER_BIN" run --config "{{.ConfigFile}}" --hook-stage {{.HookType}} "$@"
`

// hookMarker identifies shim scripts we own. Foreign hooks never contain it,
// so install can back them up and uninstall knows what is safe to remove.
const hookMarker = "hookcfg managed hook"

// backupSuffix is appended to a pre-existing foreign hook before the shim
// takes its place.
const backupSuffix = ".pre-hookcfg"

// DefaultHookTypes is used when the configuration does not name any install
// hook types.
var DefaultHookTypes = []string{"pre-commit"}

// HookManager installs and removes managed shim scripts
type HookManager struct {
	runnerBinary string
	configFile   string
}

// Ensure it implements the interface
var _ HookProvider = (*HookManager)(nil)

// NewHookManager creates a hook manager that generates shims delegating to
// runnerBinary with configFile. Empty arguments fall back to "pre-commit"
// and ".pre-commit-config.yaml".
func NewHookManager(runnerBinary, configFile string) *HookManager {
	if runnerBinary == "" {
		runnerBinary = "pre-commit"
	}
	if configFile == "" {
		configFile = ".pre-commit-config.yaml"
	}
	return &HookManager{
		runnerBinary: runnerBinary,
		configFile:   configFile,
	}
}

// InstallHooks writes shim scripts for the given hook types into
// .git/hooks. Existing foreign hooks are backed up first; existing shims are
// overwritten in place.
func (m *HookManager) InstallHooks(ctx context.Context, repoPath string, hookTypes []string) error {
	hooksDir := filepath.Join(repoPath, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}

	if len(hookTypes) == 0 {
		hookTypes = DefaultHookTypes
	}

	for _, hookType := range hookTypes {
		if err := m.installHook(hooksDir, hookType); err != nil {
			return fmt.Errorf("install %s hook: %w", hookType, err)
		}
	}

	return nil
}

// UninstallHooks removes managed shims for the given hook types and restores
// any backed-up foreign hooks. Unmanaged hooks are left alone.
func (m *HookManager) UninstallHooks(ctx context.Context, repoPath string, hookTypes []string) error {
	hooksDir := filepath.Join(repoPath, ".git", "hooks")

	if len(hookTypes) == 0 {
		hookTypes = DefaultHookTypes
	}

	for _, hookType := range hookTypes {
		if err := command.ValidateHookType(hookType); err != nil {
			return fmt.Errorf("uninstall hook: %w", err)
		}
		hookPath := filepath.Join(hooksDir, hookType)

		if !m.isManagedHook(hookPath) {
			continue
		}
		if err := os.Remove(hookPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s hook: %w", hookType, err)
		}

		// Put a displaced foreign hook back
		backupPath := hookPath + backupSuffix
		if _, err := os.Stat(backupPath); err == nil {
			if err := os.Rename(backupPath, hookPath); err != nil {
				return fmt.Errorf("restore %s hook backup: %w", hookType, err)
			}
		}
	}

	return nil
}

// installHook writes a single shim script. The hook type is validated first:
// it names a file under .git/hooks and is interpolated into the shim.
func (m *HookManager) installHook(hooksDir, hookType string) error {
	if err := command.ValidateHookType(hookType); err != nil {
		return err
	}
	hookPath := filepath.Join(hooksDir, hookType)

	if _, err := os.Stat(hookPath); err == nil {
		if !m.isManagedHook(hookPath) {
			backupPath := hookPath + backupSuffix
			if err := os.Rename(hookPath, backupPath); err != nil {
				return fmt.Errorf("backup existing hook: %w", err)
			}
		}
	}

	tmpl, err := template.New(hookType).Parse(hookShimTemplate)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		HookType     string
		RunnerBinary string
		ConfigFile   string
	}{
		HookType:     hookType,
		RunnerBinary: m.runnerBinary,
		ConfigFile:   m.configFile,
	}

	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	// #nosec G306 - Git hooks need to be executable
	if err := os.WriteFile(hookPath, buf.Bytes(), 0755); err != nil {
		return fmt.Errorf("write hook file: %w", err)
	}

	return nil
}

// isManagedHook checks whether the file at hookPath is one of our shims
func (m *HookManager) isManagedHook(hookPath string) bool {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return bytes.Contains(content, []byte(hookMarker))
}
