package browser

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/hookcfg/config"
)

func browserConfig() *config.Config {
	return &config.Config{
		Repos: []config.Repo{
			{
				Repo: "https://github.com/pre-commit/pre-commit-hooks",
				Rev:  "v5.0.0",
				Hooks: []config.Hook{
					{ID: "trailing-whitespace"},
					{ID: "end-of-file-fixer"},
				},
			},
			{
				Repo:  "https://github.com/astral-sh/ruff-pre-commit",
				Rev:   "v0.8.1",
				Hooks: []config.Hook{{ID: "ruff", Alias: "lint"}},
			},
		},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewFlattensRegistrations(t *testing.T) {
	m := New(browserConfig())
	assert.Len(t, m.rows, 3)
	assert.Len(t, m.filtered, 3)

	repo, hook := m.Selected()
	require.NotNil(t, hook)
	assert.Equal(t, "trailing-whitespace", hook.ID)
	assert.Equal(t, "https://github.com/pre-commit/pre-commit-hooks", repo.Repo)
}

func TestCursorNavigation(t *testing.T) {
	m := New(browserConfig())

	next, _ := m.Update(keyMsg("j"))
	m = next.(Model)
	_, hook := m.Selected()
	assert.Equal(t, "end-of-file-fixer", hook.ID)

	next, _ = m.Update(keyMsg("G"))
	m = next.(Model)
	_, hook = m.Selected()
	assert.Equal(t, "ruff", hook.ID)

	// Cursor must not move past the end
	next, _ = m.Update(keyMsg("j"))
	m = next.(Model)
	_, hook = m.Selected()
	assert.Equal(t, "ruff", hook.ID)

	next, _ = m.Update(keyMsg("g"))
	m = next.(Model)
	_, hook = m.Selected()
	assert.Equal(t, "trailing-whitespace", hook.ID)
}

func TestFilterMatchesIDAliasAndRepo(t *testing.T) {
	m := New(browserConfig())

	m.filterInput.SetValue("lint")
	m.updateFiltered()
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "ruff", m.filtered[0].hook.ID)

	m.filterInput.SetValue("pre-commit-hooks")
	m.updateFiltered()
	assert.Len(t, m.filtered, 2)

	m.filterInput.SetValue("nothing-matches")
	m.updateFiltered()
	assert.Empty(t, m.filtered)
}

func TestQuitKey(t *testing.T) {
	m := New(browserConfig())

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDetailToggle(t *testing.T) {
	m := New(browserConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.True(t, m.showDetail)

	// Any key returns to the list
	next, _ = m.Update(keyMsg("x"))
	m = next.(Model)
	assert.False(t, m.showDetail)
}
