package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/todo/internal/model"
	"github.com/dori/todo/internal/ui/theme"
)

// View renders the model
func (m RootModel) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n")
	b.WriteString(m.entry.view(m.styles))
	b.WriteString("\n")
	b.WriteString(m.renderList())

	if m.store.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
		b.WriteString("\n")
		b.WriteString(m.renderFilterBar())
	}

	if m.activityVisible {
		b.WriteString("\n")
		b.WriteString(m.renderActivity())
	}

	if line := m.renderStatusLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return m.styles.App.Width(width).Render(b.String())
}

// renderHeader renders the title and the theme toggle icon
func (m RootModel) renderHeader(width int) string {
	title := m.styles.Header.Render("TODO")
	icon := m.styles.Icon.Render(theme.For(m.store.Theme()).Icon)
	gap := width - lipgloss.Width(title) - lipgloss.Width(icon)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + icon
}

// renderList renders the visible tasks
func (m RootModel) renderList() string {
	visible := m.store.VisibleTasks()
	if len(visible) == 0 {
		return m.styles.Label.Render("  Nothing here")
	}

	rows := make([]string, len(visible))
	for i, t := range visible {
		rows[i] = m.renderTask(t, m.mode == modeList && i == m.cursor)
	}
	return strings.Join(rows, "\n")
}

func (m RootModel) renderTask(t model.Task, selected bool) string {
	s := m.styles

	marker := " "
	if selected {
		marker = s.TaskSelected.Render("›")
	}

	title := s.TaskNormal.Render(t.Title)
	if t.Completed {
		title = s.TaskDone.Render(t.Title)
	}

	row := fmt.Sprintf("%s %s %s", marker, circle(s, t.Completed), title)
	if selected {
		row += " " + s.Cross.Render("✕")
	}
	return row
}

// renderFooter renders the remaining count and the clear action
func (m RootModel) renderFooter() string {
	left := m.styles.Footer.Render(fmt.Sprintf("%d items left", m.store.RemainingCount()))
	right := m.styles.FooterAction.Render("Clear Completed")
	return left + "  " + right
}

// renderFilterBar renders the three filters with the active one marked
func (m RootModel) renderFilterBar() string {
	current := m.store.Filter()
	items := make([]string, 0, len(model.Filters()))
	for _, f := range model.Filters() {
		style := m.styles.FilterItem
		if f == current {
			style = m.styles.FilterActive
		}
		items = append(items, style.Render(f.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m RootModel) renderStatusLine() string {
	if m.errorMsg != "" {
		return m.styles.Error.Render("Error: " + m.errorMsg)
	}
	if m.statusMsg != "" {
		return m.styles.Status.Render(m.statusMsg)
	}
	return ""
}

func (m RootModel) renderHelp() string {
	if m.mode == modeEntry {
		return m.help.View(EntryHelp{Keys: m.keys})
	}
	return m.help.View(m.keys)
}
