package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/hookcfg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `repos:
  - repo: https://github.com/adrienverge/yamllint
    rev: v1.35.1
    hooks:
      - id: yamllint
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v5.0.0
    hooks:
      - id: trailing-whitespace
      - id: end-of-file-fixer
  - repo: https://github.com/asottile/pyupgrade
    rev: v3.19.0
    hooks:
      - id: pyupgrade
  - repo: https://github.com/astral-sh/ruff-pre-commit
    rev: v0.8.1
    hooks:
      - id: ruff
        args: [--fix]
      - id: ruff-format
`

func TestLoadFromBytes(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	require.Len(t, cfg.Repos, 4)
	assert.Equal(t, "https://github.com/adrienverge/yamllint", cfg.Repos[0].Repo)
	assert.Equal(t, "v1.35.1", cfg.Repos[0].Rev)
	assert.Equal(t, []string{"trailing-whitespace", "end-of-file-fixer"}, cfg.Repos[1].HookIDs())
	assert.Equal(t, []string{"--fix"}, cfg.Repos[3].Hooks[0].Args)
}

func TestLoadFromBytesRejectsMalformedYAML(t *testing.T) {
	_, err := LoadFromBytes([]byte("repos: [\n"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestLoadFromBytesRejectsUnknownHookField(t *testing.T) {
	doc := `repos:
  - repo: https://github.com/psf/black
    rev: 24.3.0
    hooks:
      - id: black
        entrypoint: black
`
	_, err := LoadFromBytes([]byte(doc))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigValidation, errors.GetCode(err))
}

func TestLoadFromBytesRejectsMissingRepos(t *testing.T) {
	_, err := LoadFromBytes([]byte("exclude: '^vendor/'\n"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigValidation, errors.GetCode(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigNotFound, errors.GetCode(err))
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("HOOKCFG_TEST_REV", "v2.0.0")
	doc := `repos:
  - repo: https://github.com/adrienverge/yamllint
    rev: ${HOOKCFG_TEST_REV:-v1.0.0}
    hooks:
      - id: yamllint
`
	cfg, err := LoadFromBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", cfg.Repos[0].Rev)
}

func TestLoadExpandsEnvVarDefault(t *testing.T) {
	doc := `repos:
  - repo: https://github.com/adrienverge/yamllint
    rev: ${HOOKCFG_UNSET_TEST_VAR:-v1.0.0}
    hooks:
      - id: yamllint
`
	cfg, err := LoadFromBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", cfg.Repos[0].Rev)
}

func TestFindConfigFileSearchesUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "pkg", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))

	configPath := filepath.Join(root, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(sampleConfig), 0644))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestFindConfigFileNotFound(t *testing.T) {
	_, err := FindConfigFile(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigNotFound, errors.GetCode(err))
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(sampleConfig), 0644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Len(t, cfg.Repos, 4)
}
