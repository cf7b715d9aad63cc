package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/todo/internal/model"
)

// Theme defines the color scheme and styles for the UI
type Theme struct {
	Name string
	Icon string // shown in the header; the icon of the theme a toggle switches to

	// Base colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	// Completed tasks
	Done lipgloss.Color
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	// Base styles
	App    lipgloss.Style
	Header lipgloss.Style
	Icon   lipgloss.Style

	// Task styles
	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style
	TaskDone     lipgloss.Style
	Circle       lipgloss.Style
	CircleDone   lipgloss.Style
	Cross        lipgloss.Style

	// Input styles
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Placeholder  lipgloss.Style

	// Footer and filter bar
	Footer       lipgloss.Style
	FooterAction lipgloss.Style
	FilterItem   lipgloss.Style
	FilterActive lipgloss.Style

	// Panel styles
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	// Help styles
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Status line
	Status lipgloss.Style
	Error  lipgloss.Style
	Label  lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.Foreground),

		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		Icon: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Padding(0, 1),

		TaskNormal: lipgloss.NewStyle().
			Foreground(t.Foreground),

		TaskSelected: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Highlight),

		TaskDone: lipgloss.NewStyle().
			Foreground(t.Done).
			Strikethrough(true),

		Circle: lipgloss.NewStyle().
			Foreground(t.Border),

		CircleDone: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),

		Cross: lipgloss.NewStyle().
			Foreground(t.Subtle),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(t.Subtle),

		Footer: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		FooterAction: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Underline(true),

		FilterItem: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		FilterActive: lipgloss.NewStyle().
			Foreground(t.Info).
			Bold(true).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Subtle),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(t.Border),

		Status: lipgloss.NewStyle().
			Foreground(t.Info),

		Error: lipgloss.NewStyle().
			Foreground(t.Error),

		Label: lipgloss.NewStyle().
			Foreground(t.Subtle),
	}
}

// For returns the palette for a display mode
func For(mode model.Theme) Theme {
	if mode == model.ThemeDark {
		return Dark
	}
	return Light
}

// StylesFor returns the styles for a display mode
func StylesFor(mode model.Theme) Styles {
	return NewStyles(For(mode))
}
