// Package pathutil expands user-supplied paths from configuration values.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/hookcfg/git"
)

// Expand expands the home directory (~), environment variables, and git
// placeholders (${REPO}/{{REPO}}, ${BRANCH}/{{BRANCH}}) in a path, then
// returns it absolute.
func Expand(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	// Git placeholders go first: os.ExpandEnv would otherwise consume
	// ${REPO}/${BRANCH} as (unset) environment variables. Both the ${...}
	// and {{...}} spellings are accepted.
	if strings.Contains(path, "${REPO}") || strings.Contains(path, "${BRANCH}") ||
		strings.Contains(path, "{{REPO}}") || strings.Contains(path, "{{BRANCH}}") {
		repo, branch, err := git.GetRepoInfo(".")
		// Outside a git repo the placeholders are left as-is.
		if err == nil {
			path = strings.ReplaceAll(path, "${REPO}", repo)
			path = strings.ReplaceAll(path, "${BRANCH}", branch)
			path = strings.ReplaceAll(path, "{{REPO}}", repo)
			path = strings.ReplaceAll(path, "{{BRANCH}}", branch)
		}
	}

	path = os.ExpandEnv(path)

	return filepath.Abs(path)
}
