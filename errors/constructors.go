package errors

import "fmt"

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *HookError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *HookError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// DuplicateHook creates a duplicate hook id error for a repo block
func DuplicateHook(repo, hookID string) *HookError {
	return New(ErrCodeDuplicateHook,
		fmt.Sprintf("hook id '%s' appears more than once in repo '%s'", hookID, repo)).
		WithDetail("repo", repo).
		WithDetail("hook", hookID)
}

// RevisionMissing creates an error for a remote repo without a pinned revision
func RevisionMissing(repo string) *HookError {
	return New(ErrCodeRevisionMissing,
		fmt.Sprintf("repo '%s' has no pinned revision", repo)).
		WithDetail("repo", repo)
}

// HookNotFound creates a hook not found error
func HookNotFound(hookID string) *HookError {
	return New(ErrCodeHookNotFound, fmt.Sprintf("hook '%s' not found", hookID)).
		WithDetail("hook", hookID)
}

// GitNotRepo creates an error for directories outside a git repository
func GitNotRepo(dir string) *HookError {
	return New(ErrCodeGitNotRepo, fmt.Sprintf("not inside a git repository: %s", dir)).
		WithDetail("dir", dir)
}
