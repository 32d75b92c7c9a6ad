package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRepo(t *testing.T) string {
	t.Helper()
	repo := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git", "hooks"), 0755))
	return repo
}

func TestInstallHooks(t *testing.T) {
	repo := fakeRepo(t)
	m := NewHookManager("", "")

	err := m.InstallHooks(context.Background(), repo, []string{"pre-commit", "commit-msg"})
	require.NoError(t, err)

	for _, hookType := range []string{"pre-commit", "commit-msg"} {
		path := filepath.Join(repo, ".git", "hooks", hookType)
		content, err := os.ReadFile(path)
		require.NoError(t, err)

		text := string(content)
		assert.True(t, strings.HasPrefix(text, "#!/bin/sh"))
		assert.Contains(t, text, hookMarker)
		assert.Contains(t, text, "--hook-stage "+hookType)
		assert.Contains(t, text, ".pre-commit-config.yaml")

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0111, "hook must be executable")
	}
}

func TestInstallHooksRejectsUnsafeHookType(t *testing.T) {
	repo := fakeRepo(t)
	m := NewHookManager("", "")

	for _, hookType := range []string{"../../escape", "pre commit", "Pre_Commit"} {
		err := m.InstallHooks(context.Background(), repo, []string{hookType})
		assert.Error(t, err, "hook type %q must be rejected", hookType)
	}

	// Nothing may be written outside .git/hooks.
	_, err := os.Stat(filepath.Join(repo, "escape"))
	assert.True(t, os.IsNotExist(err))

	err = m.UninstallHooks(context.Background(), repo, []string{"../../escape"})
	assert.Error(t, err)
}

func TestInstallHooksDefaultsToPreCommit(t *testing.T) {
	repo := fakeRepo(t)
	m := NewHookManager("pre-commit", ".pre-commit-config.yaml")

	require.NoError(t, m.InstallHooks(context.Background(), repo, nil))

	_, err := os.Stat(filepath.Join(repo, ".git", "hooks", "pre-commit"))
	assert.NoError(t, err)
}

func TestInstallHooksBacksUpForeignHook(t *testing.T) {
	repo := fakeRepo(t)
	foreign := "#!/bin/sh\necho custom hook\n"
	hookPath := filepath.Join(repo, ".git", "hooks", "pre-commit")
	require.NoError(t, os.WriteFile(hookPath, []byte(foreign), 0755))

	m := NewHookManager("", "")
	require.NoError(t, m.InstallHooks(context.Background(), repo, []string{"pre-commit"}))

	backup, err := os.ReadFile(hookPath + backupSuffix)
	require.NoError(t, err)
	assert.Equal(t, foreign, string(backup))

	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), hookMarker)
}

func TestInstallHooksOverwritesOwnShim(t *testing.T) {
	repo := fakeRepo(t)
	m := NewHookManager("", "")

	require.NoError(t, m.InstallHooks(context.Background(), repo, []string{"pre-commit"}))
	require.NoError(t, m.InstallHooks(context.Background(), repo, []string{"pre-commit"}))

	// Reinstalling a shim must not back it up over a real foreign hook
	_, err := os.Stat(filepath.Join(repo, ".git", "hooks", "pre-commit"+backupSuffix))
	assert.True(t, os.IsNotExist(err))
}

func TestUninstallHooksRestoresBackup(t *testing.T) {
	repo := fakeRepo(t)
	foreign := "#!/bin/sh\necho custom hook\n"
	hookPath := filepath.Join(repo, ".git", "hooks", "pre-commit")
	require.NoError(t, os.WriteFile(hookPath, []byte(foreign), 0755))

	m := NewHookManager("", "")
	require.NoError(t, m.InstallHooks(context.Background(), repo, []string{"pre-commit"}))
	require.NoError(t, m.UninstallHooks(context.Background(), repo, []string{"pre-commit"}))

	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Equal(t, foreign, string(content))

	_, err = os.Stat(hookPath + backupSuffix)
	assert.True(t, os.IsNotExist(err))
}

func TestUninstallHooksLeavesForeignHook(t *testing.T) {
	repo := fakeRepo(t)
	foreign := "#!/bin/sh\necho custom hook\n"
	hookPath := filepath.Join(repo, ".git", "hooks", "pre-commit")
	require.NoError(t, os.WriteFile(hookPath, []byte(foreign), 0755))

	m := NewHookManager("", "")
	require.NoError(t, m.UninstallHooks(context.Background(), repo, []string{"pre-commit"}))

	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Equal(t, foreign, string(content))
}

func TestUninstallHooksMissingHook(t *testing.T) {
	repo := fakeRepo(t)
	m := NewHookManager("", "")

	assert.NoError(t, m.UninstallHooks(context.Background(), repo, []string{"pre-commit"}))
}
