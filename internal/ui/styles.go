package ui

import "github.com/charmbracelet/lipgloss"

// The LCD face mimics the usual 16x2 module: dark bezel, backlit green
// character cells.

// BezelStyle returns the style for the LCD surround.
func BezelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2)
}

// CellStyle returns the style for the character rows.
func CellStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9EFF5E")).
		Background(lipgloss.Color("#1A3300")).
		Bold(true)
}

// HeaderStyle returns the style for the title line.
func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("252"))
}

// ModeStyle returns the style for the mode/device annotation.
func ModeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))
}

// FooterStyle returns the style for the key hints.
func FooterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
}

// LogStyle returns the style for the link log pane.
func LogStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("246"))
}
