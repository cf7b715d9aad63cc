package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/todo/internal/app"
	"github.com/dori/todo/internal/journal"
	"github.com/dori/todo/internal/model"
	"github.com/dori/todo/internal/store"
	"github.com/dori/todo/internal/ui/theme"
)

const defaultWidth = 60

// RootModel is the main application model. It reads everything it shows
// from the store and sends every change back through it.
type RootModel struct {
	app    *app.App
	store  *store.Store
	keys   KeyMap
	help   help.Model
	styles theme.Styles
	width  int
	height int

	mode   mode
	entry  entry
	cursor int // index into the visible tasks

	helpVisible     bool
	activityVisible bool
	activity        []journal.Event
	counts          map[journal.Kind]int

	// Status message
	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App) RootModel {
	h := help.New()
	h.ShowAll = false

	m := RootModel{
		app:   application,
		store: application.Store,
		keys:  NewKeyMap(application.Settings.Keys),
		help:  h,
		entry: newEntry(),
		width: defaultWidth,
	}
	m.applyTheme()
	return m
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.entry = m.entry.setWidth(msg.Width - 10)
		return m, nil

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		// ctrl+c always quits; other quit keys are text while typing
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeEntry {
			return m.handleEntryMode(msg)
		}
		return m.handleListMode(msg)

	case EventRecordedMsg:
		if msg.Err != nil {
			m.app.Log.Error("journal write failed", "kind", msg.Event.Kind, "err", msg.Err)
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.app.Log.Debug("event recorded", "kind", msg.Event.Kind, "task", msg.Event.TaskID)
		if m.activityVisible {
			return m, m.loadActivity()
		}
		return m, nil

	case ActivityLoadedMsg:
		if msg.Err != nil {
			m.errorMsg = fmt.Sprintf("Error loading activity: %v", msg.Err)
			return m, nil
		}
		m.activity = msg.Events
		m.counts = msg.Counts
		return m, nil

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil
	}

	return m, nil
}

// handleEntryMode routes keys while the entry control has focus
func (m RootModel) handleEntryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.entry = m.entry.blur()
		m.mode = modeList
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		title, done := m.entry.draft()
		t := m.store.AddTask(title, done)
		m.entry = m.entry.reset()
		m.statusMsg = fmt.Sprintf("Added #%d", t.ID)
		m.clampCursor()
		return m, m.record(journal.Event{Kind: journal.KindAdded, TaskID: t.ID, Detail: t.Title})

	case key.Matches(msg, m.keys.DraftDone):
		m.entry.draftDone = !m.entry.draftDone
		return m, nil

	// Character keys are text here; only chords like ctrl+t switch theme
	case msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace && key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.update(msg)
	return m, cmd
}

// handleListMode routes keys while the list has focus
func (m RootModel) handleListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		var cmd tea.Cmd
		m.entry, cmd = m.entry.focus()
		m.mode = modeEntry
		return m, cmd

	case key.Matches(msg, m.keys.Toggle):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := m.store.ToggleTask(t.ID); err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		m.clampCursor()
		detail := "active"
		if !t.Completed {
			detail = "completed"
		}
		return m, m.record(journal.Event{Kind: journal.KindToggled, TaskID: t.ID, Detail: detail})

	case key.Matches(msg, m.keys.Delete):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := m.store.DeleteTask(t.ID); err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		m.clampCursor()
		m.statusMsg = fmt.Sprintf("Deleted #%d", t.ID)
		return m, m.record(journal.Event{Kind: journal.KindDeleted, TaskID: t.ID, Detail: t.Title})

	case key.Matches(msg, m.keys.ClearCompleted):
		n := m.store.ClearCompletedTasks()
		m.clampCursor()
		m.statusMsg = fmt.Sprintf("Cleared %d completed", n)
		return m, m.record(journal.Event{Kind: journal.KindCleared, Detail: fmt.Sprintf("%d removed", n)})

	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.FilterAll):
		return m.setFilter(model.FilterAll)
	case key.Matches(msg, m.keys.FilterActive):
		return m.setFilter(model.FilterActive)
	case key.Matches(msg, m.keys.FilterDone):
		return m.setFilter(model.FilterCompleted)
	case key.Matches(msg, m.keys.FilterPrev):
		return m.setFilter(stepFilter(m.store.Filter(), -1))
	case key.Matches(msg, m.keys.FilterNext):
		return m.setFilter(stepFilter(m.store.Filter(), 1))

	case key.Matches(msg, m.keys.Activity):
		m.activityVisible = !m.activityVisible
		if m.activityVisible {
			return m, m.loadActivity()
		}
		return m, nil
	}

	return m, nil
}

// setFilter applies a filter selection. The filter bar only exists while
// there are tasks, so selections on an empty list are ignored.
func (m RootModel) setFilter(f model.Filter) (tea.Model, tea.Cmd) {
	if m.store.Len() == 0 || f == m.store.Filter() {
		return m, nil
	}
	m.store.SetFilter(f)
	m.cursor = 0
	return m, m.record(journal.Event{Kind: journal.KindFilter, Detail: f.String()})
}

func (m RootModel) toggleTheme() (tea.Model, tea.Cmd) {
	next := m.store.ToggleTheme()
	m.applyTheme()
	return m, m.record(journal.Event{Kind: journal.KindTheme, Detail: next.String()})
}

// stepFilter moves along the filter bar without wrapping
func stepFilter(f model.Filter, delta int) model.Filter {
	filters := model.Filters()
	i := int(f) + delta
	if i < 0 {
		i = 0
	}
	if i >= len(filters) {
		i = len(filters) - 1
	}
	return filters[i]
}

// current returns the task under the cursor
func (m RootModel) current() (model.Task, bool) {
	visible := m.store.VisibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *RootModel) clampCursor() {
	n := len(m.store.VisibleTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// applyTheme swaps the palette to match the store's theme. Rendering is
// the only thing a theme change touches.
func (m *RootModel) applyTheme() {
	m.styles = theme.StylesFor(m.store.Theme())
	m.entry = m.entry.applyStyles(m.styles)

	m.help.Styles.ShortKey = m.styles.HelpKey
	m.help.Styles.ShortDesc = m.styles.HelpDesc
	m.help.Styles.ShortSeparator = m.styles.HelpSeparator
	m.help.Styles.FullKey = m.styles.HelpKey
	m.help.Styles.FullDesc = m.styles.HelpDesc
	m.help.Styles.FullSeparator = m.styles.HelpSeparator
}
