package ui

import (
	"github.com/dori/todo/internal/journal"
)

// mode is which control has keyboard focus
type mode int

const (
	modeList mode = iota
	modeEntry
)

// String returns the display name for a mode
func (m mode) String() string {
	switch m {
	case modeList:
		return "List"
	case modeEntry:
		return "Entry"
	default:
		return "Unknown"
	}
}

// Messages for inter-component communication

// EventRecordedMsg reports the outcome of a journal write
type EventRecordedMsg struct {
	Event journal.Event
	Err   error
}

// ActivityLoadedMsg carries the activity panel contents
type ActivityLoadedMsg struct {
	Events []journal.Event
	Counts map[journal.Kind]int
	Err    error
}

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}
