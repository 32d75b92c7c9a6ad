// Package git provides the glue between hook configuration documents and the
// repository they live in: locating the repository root and installing the
// shim scripts under .git/hooks that hand control to the hook runner.
package git

import "context"

// RepositoryProvider answers questions about the surrounding git repository.
type RepositoryProvider interface {
	// IsGitRepo reports whether dir is inside a git repository.
	IsGitRepo(ctx context.Context, dir string) bool

	// GetGitRoot returns the working-tree root of the repository containing dir.
	GetGitRoot(ctx context.Context, dir string) (string, error)

	// GetRepoInfo returns the repository name and current branch.
	GetRepoInfo(ctx context.Context, dir string) (repo string, branch string, err error)
}

// HookProvider installs and removes managed shim scripts under .git/hooks.
type HookProvider interface {
	InstallHooks(ctx context.Context, repoPath string, hookTypes []string) error
	UninstallHooks(ctx context.Context, repoPath string, hookTypes []string) error
}
