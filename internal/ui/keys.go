package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/dori/todo/internal/config"
)

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task Actions
	Add            key.Binding
	Toggle         key.Binding
	Delete         key.Binding
	ClearCompleted key.Binding

	// Filter bar
	FilterAll    key.Binding
	FilterActive key.Binding
	FilterDone   key.Binding
	FilterPrev   key.Binding
	FilterNext   key.Binding

	// Entry control
	Confirm   key.Binding
	Cancel    key.Binding
	DraftDone key.Binding

	// General
	Theme    key.Binding
	Activity key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

// NewKeyMap builds bindings from the configured key names
func NewKeyMap(k config.Keymap) KeyMap {
	return KeyMap{
		Up:   binding(k.Up, "up"),
		Down: binding(k.Down, "down"),

		Add:            binding(k.Add, "add"),
		Toggle:         binding(k.Toggle, "toggle done"),
		Delete:         binding(k.Delete, "delete"),
		ClearCompleted: binding(k.ClearCompleted, "clear completed"),

		FilterAll:    binding(k.FilterAll, "all"),
		FilterActive: binding(k.FilterActive, "active"),
		FilterDone:   binding(k.FilterDone, "completed"),
		FilterPrev:   binding(k.FilterPrev, "prev filter"),
		FilterNext:   binding(k.FilterNext, "next filter"),

		Confirm:   binding(k.Confirm, "add task"),
		Cancel:    binding(k.Cancel, "back"),
		DraftDone: binding(k.DraftDone, "mark draft done"),

		Theme:    binding(k.Theme, "theme"),
		Activity: binding(k.Activity, "activity"),
		Help:     binding(k.Help, "help"),
		Quit:     binding(k.Quit, "quit"),
	}
}

// binding maps config key names onto bubbletea ones. "space" is the only
// name that differs.
func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == "space" {
			k = " "
		}
		names[i] = k
	}
	helpKey := ""
	if len(keys) > 0 {
		helpKey = keys[0]
	}
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(helpKey, desc),
	)
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Theme, k.Help, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Toggle, k.Delete, k.ClearCompleted},
		{k.FilterAll, k.FilterActive, k.FilterDone, k.FilterPrev, k.FilterNext},
		{k.Theme, k.Activity, k.Help, k.Quit},
	}
}

// EntryHelp is shown while the entry control has focus
type EntryHelp struct {
	Keys KeyMap
}

func (h EntryHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Keys.Confirm, h.Keys.DraftDone, h.Keys.Cancel}
}

func (h EntryHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
