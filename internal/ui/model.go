// Package ui renders the simulated front panel: a 16x2 LCD face with the
// live countdown, plus a scrolling log of link activity underneath.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// uiTick is the frame interval. The LCD itself only changes on the
// receiver's render tick; this just keeps the log pane fresh.
const uiTick = 200 * time.Millisecond

// Model is the Bubble Tea model for the display simulator.
type Model struct {
	panel *Panel
	logs  *LogBuffer

	// Mode banner
	passive bool
	device  string

	// UI state
	quitting bool

	// Dimensions
	width  int
	height int

	// Viewport for the link log
	viewport viewport.Model
	ready    bool // true after viewport initialized on first WindowSizeMsg
}

// NewModel creates a simulator model reading from the given panel and
// log buffer.
func NewModel(panel *Panel, logs *LogBuffer, device string, passive bool) Model {
	return Model{
		panel:   panel,
		logs:    logs,
		device:  device,
		passive: passive,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(uiTick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
