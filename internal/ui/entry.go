package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/todo/internal/ui/theme"
)

// entry is the new-task control: a draft title and a draft completion
// flag, both local until committed.
type entry struct {
	input     textinput.Model
	draftDone bool
}

func newEntry() entry {
	ti := textinput.New()
	ti.Placeholder = "Create a new todo..."
	ti.Prompt = ""
	ti.CharLimit = 0 // titles are free text
	ti.Width = 40
	return entry{input: ti}
}

// draft returns the values a commit would submit
func (e entry) draft() (string, bool) {
	return e.input.Value(), e.draftDone
}

// reset clears the draft after a commit
func (e entry) reset() entry {
	e.input.SetValue("")
	e.draftDone = false
	return e
}

func (e entry) focus() (entry, tea.Cmd) {
	cmd := e.input.Focus()
	return e, cmd
}

func (e entry) blur() entry {
	e.input.Blur()
	return e
}

func (e entry) focused() bool {
	return e.input.Focused()
}

func (e entry) update(msg tea.Msg) (entry, tea.Cmd) {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

func (e entry) setWidth(w int) entry {
	if w < 10 {
		w = 10
	}
	e.input.Width = w
	return e
}

func (e entry) applyStyles(s theme.Styles) entry {
	e.input.PlaceholderStyle = s.Placeholder
	e.input.TextStyle = s.TaskNormal
	return e
}

func (e entry) view(s theme.Styles) string {
	box := s.Input
	if e.focused() {
		box = s.InputFocused
	}
	return box.Render(circle(s, e.draftDone) + " " + e.input.View())
}

// circle is the completion marker shared by the entry and list rows
func circle(s theme.Styles, done bool) string {
	if done {
		return s.CircleDone.Render("✓")
	}
	return s.Circle.Render("○")
}
