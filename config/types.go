// Package config loads, validates, and serializes pre-commit hook
// configuration files (.pre-commit-config.yaml).
package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

//go:generate go run ../tools/schema-generator/

// Sentinel repo identifiers understood by the consuming runner instead of a
// clonable URL.
const (
	LocalRepo = "local"
	MetaRepo  = "meta"
)

// ConfigFileName is the canonical configuration file name.
const ConfigFileName = ".pre-commit-config.yaml"

// Config is the top-level hook configuration document. The order of Repos is
// significant: the consuming runner executes hooks in declaration order.
type Config struct {
	Repos []Repo `yaml:"repos" json:"repos" toml:"repos"`

	DefaultInstallHookTypes []string          `yaml:"default_install_hook_types,omitempty" json:"default_install_hook_types,omitempty" toml:"default_install_hook_types,omitempty" jsonschema:"description=Hook types installed by default into the git hooks directory"`
	DefaultLanguageVersion  map[string]string `yaml:"default_language_version,omitempty" json:"default_language_version,omitempty" toml:"default_language_version,omitempty" jsonschema:"description=Default language versions keyed by language name"`
	DefaultStages           []string          `yaml:"default_stages,omitempty" json:"default_stages,omitempty" toml:"default_stages,omitempty" jsonschema:"description=Default stages applied to hooks that declare none"`
	Exclude                 string            `yaml:"exclude,omitempty" json:"exclude,omitempty" toml:"exclude,omitempty" jsonschema:"description=Global file exclusion pattern (regular expression)"`
	FailFast                bool              `yaml:"fail_fast,omitempty" json:"fail_fast,omitempty" toml:"fail_fast,omitempty" jsonschema:"description=Stop running hooks after the first failure"`
	MinimumPreCommitVersion string            `yaml:"minimum_pre_commit_version,omitempty" json:"minimum_pre_commit_version,omitempty" toml:"minimum_pre_commit_version,omitempty" jsonschema:"description=Minimum runner version required by this configuration"`

	// Extensions collects unknown top-level blocks (for example the hosted
	// runner's 'ci' block) so they survive a round-trip untouched.
	Extensions map[string]interface{} `yaml:",inline" json:"-" toml:"-" jsonschema:"-"`
}

// Repo is a single hook source block: where hooks come from, which revision
// is pinned, and which hooks are enabled from that source.
type Repo struct {
	Repo  string `yaml:"repo" json:"repo" toml:"repo" jsonschema:"required,description=Source repository URL or the sentinel 'local' or 'meta'"`
	Rev   string `yaml:"rev,omitempty" json:"rev,omitempty" toml:"rev,omitempty" jsonschema:"description=Pinned revision; an opaque string compared only for equality"`
	Hooks []Hook `yaml:"hooks" json:"hooks" toml:"hooks" jsonschema:"required,description=Hooks enabled from this source"`
}

// IsLocal reports whether the repo block declares locally defined hooks.
func (r *Repo) IsLocal() bool { return r.Repo == LocalRepo }

// IsMeta reports whether the repo block enables the runner's meta hooks.
func (r *Repo) IsMeta() bool { return r.Repo == MetaRepo }

// IsRemote reports whether the repo block references an external repository
// that needs a pinned revision.
func (r *Repo) IsRemote() bool { return !r.IsLocal() && !r.IsMeta() }

// HookIDs returns the hook identifiers enabled from this repo, in order.
func (r *Repo) HookIDs() []string {
	ids := make([]string, len(r.Hooks))
	for i, h := range r.Hooks {
		ids[i] = h.ID
	}
	return ids
}

// Hook is a single hook enabled from a source repository. Only ID is
// mandatory for remote repos; local hooks must define their own name, entry,
// and language since there is no upstream manifest to inherit from.
type Hook struct {
	ID                     string   `yaml:"id" json:"id" toml:"id" jsonschema:"required,description=Hook identifier; unique within its repo block"`
	Name                   string   `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Alias                  string   `yaml:"alias,omitempty" json:"alias,omitempty" toml:"alias,omitempty"`
	Entry                  string   `yaml:"entry,omitempty" json:"entry,omitempty" toml:"entry,omitempty"`
	Language               string   `yaml:"language,omitempty" json:"language,omitempty" toml:"language,omitempty"`
	LanguageVersion        string   `yaml:"language_version,omitempty" json:"language_version,omitempty" toml:"language_version,omitempty"`
	Files                  string   `yaml:"files,omitempty" json:"files,omitempty" toml:"files,omitempty" jsonschema:"description=File inclusion pattern (regular expression)"`
	Exclude                string   `yaml:"exclude,omitempty" json:"exclude,omitempty" toml:"exclude,omitempty" jsonschema:"description=File exclusion pattern (regular expression)"`
	Types                  []string `yaml:"types,omitempty" json:"types,omitempty" toml:"types,omitempty"`
	ExcludeTypes           []string `yaml:"exclude_types,omitempty" json:"exclude_types,omitempty" toml:"exclude_types,omitempty"`
	Args                   []string `yaml:"args,omitempty" json:"args,omitempty" toml:"args,omitempty"`
	Stages                 []string `yaml:"stages,omitempty" json:"stages,omitempty" toml:"stages,omitempty"`
	AdditionalDependencies []string `yaml:"additional_dependencies,omitempty" json:"additional_dependencies,omitempty" toml:"additional_dependencies,omitempty"`
	AlwaysRun              bool     `yaml:"always_run,omitempty" json:"always_run,omitempty" toml:"always_run,omitempty"`
	PassFilenames          *bool    `yaml:"pass_filenames,omitempty" json:"pass_filenames,omitempty" toml:"pass_filenames,omitempty"`
	Verbose                bool     `yaml:"verbose,omitempty" json:"verbose,omitempty" toml:"verbose,omitempty"`
	LogFile                string   `yaml:"log_file,omitempty" json:"log_file,omitempty" toml:"log_file,omitempty"`
}

// Registration is the (repository, revision, hook id) triple a repo block
// expands into. It is the unit the round-trip guarantee is stated over.
type Registration struct {
	Repo   string `json:"repo"`
	Rev    string `json:"rev"`
	HookID string `json:"hook_id"`
}

// Registrations expands the document into its flat list of registrations,
// preserving declaration order.
func (c *Config) Registrations() []Registration {
	var regs []Registration
	for _, repo := range c.Repos {
		for _, hook := range repo.Hooks {
			regs = append(regs, Registration{
				Repo:   repo.Repo,
				Rev:    repo.Rev,
				HookID: hook.ID,
			})
		}
	}
	return regs
}

// FindHook returns the repo block and hook for a hook id or alias. When the
// same id is enabled from several repos, the first match in declaration
// order wins.
func (c *Config) FindHook(id string) (*Repo, *Hook) {
	for i := range c.Repos {
		for j := range c.Repos[i].Hooks {
			h := &c.Repos[i].Hooks[j]
			if h.ID == id || (h.Alias != "" && h.Alias == id) {
				return &c.Repos[i], h
			}
		}
	}
	return nil, nil
}

// UnmarshalExtension decodes an unknown top-level block (e.g. "ci") from the
// loaded document into the provided target struct. The target must be a
// pointer. Missing keys are not an error; the target simply stays
// zero-valued.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
