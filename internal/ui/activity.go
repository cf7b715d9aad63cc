package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/todo/internal/journal"
)

// journalTimeout bounds every journal call made from a command
const journalTimeout = 2 * time.Second

// record writes an event to the session journal off the event loop
func (m RootModel) record(e journal.Event) tea.Cmd {
	j := m.app.Journal
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
		defer cancel()
		recorded, err := j.Record(ctx, e)
		return EventRecordedMsg{Event: recorded, Err: err}
	}
}

// loadActivity fetches the activity panel contents
func (m RootModel) loadActivity() tea.Cmd {
	j := m.app.Journal
	limit := m.app.Settings.ActivityLimit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
		defer cancel()
		events, err := j.Recent(ctx, limit)
		if err != nil {
			return ActivityLoadedMsg{Err: err}
		}
		counts, err := j.Counts(ctx)
		return ActivityLoadedMsg{Events: events, Counts: counts, Err: err}
	}
}

var kindOrder = []journal.Kind{
	journal.KindAdded,
	journal.KindToggled,
	journal.KindDeleted,
	journal.KindCleared,
	journal.KindFilter,
	journal.KindTheme,
}

// renderActivity renders the activity panel
func (m RootModel) renderActivity() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.PanelTitle.Render("Activity"))
	b.WriteString("\n")

	var totals []string
	for _, k := range kindOrder {
		if n := m.counts[k]; n > 0 {
			totals = append(totals, fmt.Sprintf("%s %d", k, n))
		}
	}
	if len(totals) == 0 {
		b.WriteString(s.Label.Render("No activity yet"))
		return s.Panel.Render(b.String())
	}
	b.WriteString(s.Label.Render(strings.Join(totals, " · ")))

	for _, e := range m.activity {
		b.WriteString("\n")
		line := fmt.Sprintf("%s  %-7s", e.CreatedAt.Format("15:04:05"), e.Kind)
		if e.TaskID != 0 {
			line += fmt.Sprintf(" #%d", e.TaskID)
		}
		if e.Detail != "" {
			line += " " + e.Detail
		}
		b.WriteString(s.HelpDesc.Render(line))
	}
	return s.Panel.Render(b.String())
}
