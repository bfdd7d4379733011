package ui

import (
	"strings"
	"sync"
)

// maxLogLines bounds the link log kept for the viewport.
const maxLogLines = 200

// LogBuffer is an io.Writer that retains the most recent log lines. The
// display command points zerolog at it so link activity shows up in the
// TUI instead of corrupting the alternate screen.
type LogBuffer struct {
	mu      sync.Mutex
	lines   []string
	partial string
}

// Write appends p, splitting it into lines on newlines.
func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.partial += string(p)
	for {
		idx := strings.IndexByte(b.partial, '\n')
		if idx < 0 {
			break
		}
		b.lines = append(b.lines, b.partial[:idx])
		b.partial = b.partial[idx+1:]
	}
	if overflow := len(b.lines) - maxLogLines; overflow > 0 {
		b.lines = b.lines[overflow:]
	}
	return len(p), nil
}

// Lines returns a copy of the retained lines, oldest first.
func (b *LogBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}
