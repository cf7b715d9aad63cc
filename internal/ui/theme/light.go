package theme

import "github.com/charmbracelet/lipgloss"

// Light theme - pale grey surface, dark grayish-blue text
var Light = Theme{
	Name: "light",
	Icon: "☾",

	Background: lipgloss.Color("#FAFAFA"),
	Surface:    lipgloss.Color("#FFFFFF"),
	Foreground: lipgloss.Color("#494C6B"),
	Subtle:     lipgloss.Color("#9394A5"),
	Highlight:  lipgloss.Color("#E4E5F1"),
	Border:     lipgloss.Color("#D2D3DB"),

	Primary:   lipgloss.Color("#3A7BFD"), // bright blue
	Secondary: lipgloss.Color("#C058F3"), // gradient end
	Success:   lipgloss.Color("#57DDFF"), // gradient start
	Error:     lipgloss.Color("#D14343"),
	Info:      lipgloss.Color("#3A7BFD"),

	Done: lipgloss.Color("#D2D3DB"),
}
