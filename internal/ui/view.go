package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout constants for the fixed header/LCD/footer with scrollable log.
const (
	headerHeight = 2 // title + blank line
	lcdHeight    = 4 // top border + 2 rows + bottom border
	footerHeight = 1
)

// View renders the simulator frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderLCD(),
		LogStyle().Render(m.viewport.View()),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	mode := "active"
	if m.passive {
		mode = "passive"
	}
	title := HeaderStyle().Render(" IP DISPLAY ")
	annotation := ModeStyle().Render(m.device + " · " + mode)
	return title + " " + annotation + "\n"
}

func (m Model) renderLCD() string {
	rows := m.panel.Rows()
	cells := make([]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, CellStyle().Render(row))
	}
	return BezelStyle().Render(strings.Join(cells, "\n"))
}

func (m Model) renderFooter() string {
	return FooterStyle().Render(" q quit · ↑/↓ scroll log")
}
