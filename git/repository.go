package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/grovetools/hookcfg/command"
)

// CLIRepository implements RepositoryProvider using the git CLI
type CLIRepository struct {
	cmdBuilder *command.SafeBuilder
}

// Ensure it implements the interface
var _ RepositoryProvider = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLI repository provider
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{
		cmdBuilder: command.NewSafeBuilder(),
	}
}

// IsGitRepo checks if a directory is inside a git repository
func (r *CLIRepository) IsGitRepo(ctx context.Context, dir string) bool {
	return IsGitRepo(dir)
}

// GetGitRoot returns the root directory of the git repository
func (r *CLIRepository) GetGitRoot(ctx context.Context, dir string) (string, error) {
	return GetGitRoot(dir)
}

// GetRepoInfo returns repository and branch information
func (r *CLIRepository) GetRepoInfo(ctx context.Context, dir string) (repo string, branch string, err error) {
	return GetRepoInfo(dir)
}

// IsGitRepo checks if the given directory is inside a git repository
func IsGitRepo(dir string) bool {
	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(context.Background(), "git", "rev-parse", "--git-dir")
	if err != nil {
		return false
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	return execCmd.Run() == nil
}

// GetGitRoot returns the root directory of the git repository
func GetGitRoot(dir string) (string, error) {
	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(context.Background(), "git", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	output, err := execCmd.Output()
	if err != nil {
		return "", fmt.Errorf("get git root: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

// GetRepoInfo returns the repository name and current branch
func GetRepoInfo(dir string) (repo string, branch string, err error) {
	cmdBuilder := command.NewSafeBuilder()

	gitRoot, err := GetGitRoot(dir)
	if err != nil {
		return "", "", fmt.Errorf("could not find git root: %w", err)
	}

	cmd, err := cmdBuilder.Build(context.Background(), "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", "", fmt.Errorf("failed to build command: %w", err)
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	output, err := execCmd.Output()
	if err != nil {
		return "", "", fmt.Errorf("get current branch: %w", err)
	}
	branch = strings.TrimSpace(string(output))

	cmd, err = cmdBuilder.Build(context.Background(), "git", "config", "--get", "remote.origin.url")
	if err != nil {
		return "", "", fmt.Errorf("failed to build command: %w", err)
	}
	execCmd = cmd.Exec()
	execCmd.Dir = gitRoot
	output, err = execCmd.Output()
	if err != nil {
		// No remote configured; fall back to the directory name
		return filepath.Base(gitRoot), branch, nil
	}

	return extractRepoName(strings.TrimSpace(string(output))), branch, nil
}

// extractRepoName extracts the repository name from a git remote URL
func extractRepoName(url string) string {
	url = strings.TrimSuffix(url, ".git")

	// SSH URLs (git@github.com:user/repo)
	if strings.HasPrefix(url, "git@") {
		parts := strings.Split(url, ":")
		if len(parts) >= 2 {
			url = parts[1]
		}
	}

	parts := strings.Split(url, "/")
	if len(parts) > 0 && parts[len(parts)-1] != "" {
		return parts[len(parts)-1]
	}

	return "unknown"
}
