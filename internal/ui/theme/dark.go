package theme

import "github.com/charmbracelet/lipgloss"

// Dark theme - very dark blue background, desaturated lavender text
var Dark = Theme{
	Name: "dark",
	Icon: "☀",

	Background: lipgloss.Color("#161722"),
	Surface:    lipgloss.Color("#25273C"),
	Foreground: lipgloss.Color("#CACDE8"),
	Subtle:     lipgloss.Color("#777A92"),
	Highlight:  lipgloss.Color("#393A4C"),
	Border:     lipgloss.Color("#4D5066"),

	Primary:   lipgloss.Color("#3A7BFD"),
	Secondary: lipgloss.Color("#C058F3"),
	Success:   lipgloss.Color("#57DDFF"),
	Error:     lipgloss.Color("#F06C6C"),
	Info:      lipgloss.Color("#3A7BFD"),

	Done: lipgloss.Color("#4D5066"),
}
