package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kostyay/ipdisplay/internal/model"
)

// Panel is a thread-safe in-memory 16x2 character display. The receiver
// loop writes into it from its own goroutine; the TUI reads it on every
// frame. It stands in for the I2C LCD when running without hardware.
type Panel struct {
	mu   sync.Mutex
	rows [model.DisplayRows][]rune
}

// NewPanel returns a blank panel.
func NewPanel() *Panel {
	p := &Panel{}
	p.reset()
	return p
}

func (p *Panel) reset() {
	for i := range p.rows {
		p.rows[i] = []rune(strings.Repeat(" ", model.DisplayCols))
	}
}

// Clear blanks the panel.
func (p *Panel) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

// WriteAt places text at the given cell. Text running past the last
// column is dropped, exactly like a hardware character LCD.
func (p *Panel) WriteAt(row, col int, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if row < 0 || row >= model.DisplayRows {
		return fmt.Errorf("row %d out of range", row)
	}
	if col < 0 || col >= model.DisplayCols {
		return fmt.Errorf("col %d out of range", col)
	}

	for i, r := range []rune(text) {
		if col+i >= model.DisplayCols {
			break
		}
		p.rows[row][col+i] = r
	}
	return nil
}

// Rows returns the current contents, each padded to the display width.
func (p *Panel) Rows() [model.DisplayRows]string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out [model.DisplayRows]string
	for i := range p.rows {
		out[i] = string(p.rows[i])
	}
	return out
}
