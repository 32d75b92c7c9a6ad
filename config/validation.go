package config

import (
	"fmt"
	"regexp"

	"github.com/grovetools/hookcfg/errors"
)

// knownStages lists the hook stages understood by the consuming runner,
// including the legacy aliases it still accepts.
var knownStages = map[string]bool{
	"commit-msg":         true,
	"post-checkout":      true,
	"post-commit":        true,
	"post-merge":         true,
	"post-rewrite":       true,
	"pre-commit":         true,
	"pre-merge-commit":   true,
	"pre-push":           true,
	"pre-rebase":         true,
	"prepare-commit-msg": true,
	"manual":             true,
	// Legacy aliases
	"commit":       true,
	"merge-commit": true,
	"push":         true,
}

// metaHookIDs lists the hook ids the runner defines for 'meta' repos.
var metaHookIDs = map[string]bool{
	"check-hooks-apply":      true,
	"check-useless-excludes": true,
	"identity":               true,
}

// knownLanguages lists the hook languages the runner can install.
var knownLanguages = map[string]bool{
	"conda": true, "coursier": true, "dart": true, "docker": true,
	"docker_image": true, "dotnet": true, "fail": true, "golang": true,
	"haskell": true, "lua": true, "node": true, "perl": true,
	"pygrep": true, "python": true, "r": true, "ruby": true,
	"rust": true, "script": true, "swift": true, "system": true,
}

// Validate checks the semantic invariants of the configuration: revision
// rules per repo kind, hook id uniqueness within each repo block, and
// well-formedness of patterns and stages.
func (c *Config) Validate() error {
	if err := validatePattern("exclude", c.Exclude); err != nil {
		return err
	}

	for _, stage := range c.DefaultStages {
		if !knownStages[stage] {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("unknown stage '%s' in default_stages", stage)).
				WithDetail("stage", stage)
		}
	}

	for i := range c.Repos {
		repo := &c.Repos[i]
		if err := validateRepo(repo); err != nil {
			// Keep the specific code (DUPLICATE_HOOK, REVISION_MISSING, ...)
			// so callers can match on it.
			if hookErr, ok := err.(*errors.HookError); ok {
				return hookErr.WithDetail("repo", repo.Repo)
			}
			return err
		}
	}

	return nil
}

func validateRepo(repo *Repo) error {
	if repo.Repo == "" {
		return errors.New(errors.ErrCodeConfigValidation, "repo cannot be empty")
	}

	if len(repo.Hooks) == 0 {
		return errors.New(errors.ErrCodeConfigValidation, "repo block must enable at least one hook")
	}

	// Revisions are opaque and compared only for equality, but their
	// presence depends on the repo kind: remote repos need a pin,
	// local/meta blocks must not carry one.
	if repo.IsRemote() && repo.Rev == "" {
		return errors.RevisionMissing(repo.Repo)
	}
	if !repo.IsRemote() && repo.Rev != "" {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("'%s' repos cannot have a rev", repo.Repo)).
			WithDetail("rev", repo.Rev)
	}

	seen := make(map[string]bool)
	for i := range repo.Hooks {
		hook := &repo.Hooks[i]
		if err := validateHook(repo, hook); err != nil {
			return err
		}
		if seen[hook.ID] {
			return errors.DuplicateHook(repo.Repo, hook.ID)
		}
		seen[hook.ID] = true
	}

	return nil
}

func validateHook(repo *Repo, hook *Hook) error {
	if hook.ID == "" {
		return errors.New(errors.ErrCodeConfigValidation, "hook id cannot be empty")
	}

	if repo.IsLocal() {
		// Local hooks have no upstream manifest to inherit from.
		if hook.Name == "" || hook.Entry == "" || hook.Language == "" {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("local hook '%s' must define name, entry, and language", hook.ID)).
				WithDetail("hook", hook.ID)
		}
	}

	if repo.IsMeta() && !metaHookIDs[hook.ID] {
		return errors.HookNotFound(hook.ID).
			WithDetail("repo", MetaRepo)
	}

	if hook.Language != "" && !knownLanguages[hook.Language] {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("unknown language '%s' for hook '%s'", hook.Language, hook.ID)).
			WithDetail("hook", hook.ID).
			WithDetail("language", hook.Language)
	}

	if err := validatePattern(fmt.Sprintf("hook '%s' files", hook.ID), hook.Files); err != nil {
		return err
	}
	if err := validatePattern(fmt.Sprintf("hook '%s' exclude", hook.ID), hook.Exclude); err != nil {
		return err
	}

	for _, stage := range hook.Stages {
		if !knownStages[stage] {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("unknown stage '%s' for hook '%s'", stage, hook.ID)).
				WithDetail("hook", hook.ID).
				WithDetail("stage", stage)
		}
	}

	return nil
}

// validatePattern checks that a file-matching pattern compiles as a regular
// expression.
func validatePattern(fieldName, pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation,
			fmt.Sprintf("%s is not a valid regular expression", fieldName)).
			WithDetail("pattern", pattern)
	}
	return nil
}
