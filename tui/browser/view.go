package browser

import (
	"fmt"
	"strings"

	"github.com/grovetools/hookcfg/tui/theme"
)

// View renders the browser.
func (m Model) View() string {
	t := theme.DefaultTheme

	if m.showDetail {
		return m.detailView()
	}

	var b strings.Builder

	b.WriteString(t.Header.Render("Registered hooks"))
	b.WriteString("  ")
	b.WriteString(m.filterInput.View())
	b.WriteString("\n\n")

	visibleHeight := m.height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	start := 0
	end := len(m.filtered)
	if end > visibleHeight {
		switch {
		case m.cursor < visibleHeight/2:
			start = 0
		case m.cursor >= len(m.filtered)-visibleHeight/2:
			start = len(m.filtered) - visibleHeight
		default:
			start = m.cursor - visibleHeight/2
		}
		end = start + visibleHeight
		if end > len(m.filtered) {
			end = len(m.filtered)
		}
		if start < 0 {
			start = 0
		}
	}

	for i := start; i < end; i++ {
		r := m.filtered[i]
		isSelected := i == m.cursor

		var line strings.Builder
		if isSelected {
			line.WriteString(t.Accent.Render("▶ "))
		} else {
			line.WriteString("  ")
		}

		label := r.hook.ID
		if r.hook.Alias != "" {
			label += " (" + r.hook.Alias + ")"
		}

		source := r.repo.Repo
		if r.repo.Rev != "" {
			source += " @ " + r.repo.Rev
		}

		if isSelected {
			line.WriteString(t.Selected.Render(label))
		} else {
			line.WriteString(t.Bold.Render(label))
		}
		line.WriteString("  ")
		line.WriteString(t.Muted.Render(source))

		b.WriteString(line.String())
		b.WriteString("\n")
	}

	if len(m.filtered) == 0 {
		if len(m.rows) == 0 {
			b.WriteString(t.Muted.Render("No hooks registered"))
		} else {
			b.WriteString(t.Muted.Render("No matching hooks"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(defaultKeyMap))

	return b.String()
}

// detailView renders the full registration under the cursor.
func (m Model) detailView() string {
	t := theme.DefaultTheme

	repo, hook := m.Selected()
	if hook == nil {
		return t.Muted.Render("Nothing selected")
	}

	var b strings.Builder
	b.WriteString(t.Header.Render(hook.ID))
	b.WriteString("\n\n")

	field := func(name, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n", t.Accent.Render(name+":"), value))
	}

	field("repo", repo.Repo)
	field("rev", repo.Rev)
	field("alias", hook.Alias)
	field("name", hook.Name)
	field("entry", hook.Entry)
	field("language", hook.Language)
	field("files", hook.Files)
	field("exclude", hook.Exclude)
	if len(hook.Args) > 0 {
		field("args", strings.Join(hook.Args, " "))
	}
	if len(hook.Stages) > 0 {
		field("stages", strings.Join(hook.Stages, ", "))
	}
	if len(hook.Types) > 0 {
		field("types", strings.Join(hook.Types, ", "))
	}
	if len(hook.AdditionalDependencies) > 0 {
		field("additional_dependencies", strings.Join(hook.AdditionalDependencies, ", "))
	}

	b.WriteString("\n")
	b.WriteString(t.Muted.Render("Press any key to go back"))

	return b.String()
}
