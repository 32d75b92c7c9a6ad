// Package browser provides an interactive terminal browser over the hook
// registrations of a configuration document.
package browser

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/hookcfg/config"
)

// row is one selectable line in the browser: a hook registration along with
// the repo block it came from.
type row struct {
	repo *config.Repo
	hook *config.Hook
}

// Model is the hook browser component model
type Model struct {
	rows     []row
	filtered []row
	cursor   int

	filterInput textinput.Model
	help        help.Model
	showDetail  bool

	width  int
	height int
}

// New creates a browser over the given configuration.
func New(cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Press / to filter..."
	ti.CharLimit = 256
	ti.Width = 50

	var rows []row
	for i := range cfg.Repos {
		repo := &cfg.Repos[i]
		for j := range repo.Hooks {
			rows = append(rows, row{repo: repo, hook: &repo.Hooks[j]})
		}
	}

	m := Model{
		rows:        rows,
		filtered:    rows,
		filterInput: ti,
		help:        help.New(),
	}
	return m
}

// Init initializes the browser.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Detail view consumes the next key press
		if m.showDetail {
			m.showDetail = false
			return m, nil
		}

		if m.filterInput.Focused() {
			switch msg.Type {
			case tea.KeyEsc:
				m.filterInput.Blur()
				return m, nil
			case tea.KeyEnter:
				m.filterInput.Blur()
				if m.cursor < len(m.filtered) {
					m.showDetail = true
				}
				return m, nil
			case tea.KeyUp:
				m.moveCursor(-1)
				return m, nil
			case tea.KeyDown:
				m.moveCursor(1)
				return m, nil
			default:
				prev := m.filterInput.Value()
				m.filterInput, cmd = m.filterInput.Update(msg)
				if m.filterInput.Value() != prev {
					m.updateFiltered()
					m.cursor = 0
				}
				return m, cmd
			}
		}

		switch {
		case key.Matches(msg, defaultKeyMap.Up):
			m.moveCursor(-1)
		case key.Matches(msg, defaultKeyMap.Down):
			m.moveCursor(1)
		case key.Matches(msg, defaultKeyMap.PageUp):
			m.moveCursor(-10)
		case key.Matches(msg, defaultKeyMap.PageDown):
			m.moveCursor(10)
		case key.Matches(msg, defaultKeyMap.GotoTop):
			m.cursor = 0
		case key.Matches(msg, defaultKeyMap.GotoEnd):
			m.cursor = len(m.filtered) - 1
			if m.cursor < 0 {
				m.cursor = 0
			}
		case key.Matches(msg, defaultKeyMap.Select):
			if m.cursor < len(m.filtered) {
				m.showDetail = true
			}
		case key.Matches(msg, defaultKeyMap.Search):
			m.filterInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, defaultKeyMap.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, defaultKeyMap.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

// Selected returns the registration under the cursor, or zero values when
// the list is empty.
func (m Model) Selected() (*config.Repo, *config.Hook) {
	if m.cursor >= len(m.filtered) {
		return nil, nil
	}
	r := m.filtered[m.cursor]
	return r.repo, r.hook
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// updateFiltered applies the current filter to the row list. A row matches
// when the filter appears in the hook id, alias, or repo URL.
func (m *Model) updateFiltered() {
	filter := strings.ToLower(m.filterInput.Value())
	if filter == "" {
		m.filtered = m.rows
		return
	}

	m.filtered = nil
	for _, r := range m.rows {
		if strings.Contains(strings.ToLower(r.hook.ID), filter) ||
			strings.Contains(strings.ToLower(r.hook.Alias), filter) ||
			strings.Contains(strings.ToLower(r.repo.Repo), filter) {
			m.filtered = append(m.filtered, r)
		}
	}
}
