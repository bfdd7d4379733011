package model

import "time"

// Display geometry for the target hardware: a 16x2 character LCD.
const (
	DisplayCols = 16
	DisplayRows = 2
)

// Sentinel values shown before any data has arrived.
const (
	NoIPText      = "No IP yet"
	UnknownSSH    = "SSH: ???"
	WaitingLine1  = "Waiting for host"
	ShutdownLine1 = "Shutting down"
)

// DisplayState holds the last known display fields on the device side.
// It is owned exclusively by the receiver loop; nothing else mutates it.
type DisplayState struct {
	Line1 string // last known primary field (IP or error text)
	Line2 string // last known secondary field (SSH status)

	// HasData flips to true on the first successful field parse and never
	// reverts. Stale data is always preferred over no data.
	HasData bool

	// LastReceive is set on every successful data parse. Zero until then.
	LastReceive time.Time

	// LastRequest anchors the countdown: the last time a refresh request
	// went out, or the last time data arrived, whichever is more recent.
	LastRequest time.Time
}

// SetFields stores a received field pair, truncated to the display width,
// and marks the state as having data. now resets both timestamps so the
// countdown restarts from the moment fresh data landed.
func (s *DisplayState) SetFields(line1, line2 string, now time.Time) {
	s.Line1 = Truncate(line1, DisplayCols)
	s.Line2 = Truncate(line2, DisplayCols)
	s.HasData = true
	s.LastReceive = now
	s.LastRequest = now
}

// Countdown returns the whole seconds remaining until the next expected
// refresh, floored at zero.
func (s *DisplayState) Countdown(now time.Time, interval time.Duration) int {
	remaining := interval - now.Sub(s.LastRequest)
	if remaining < 0 {
		remaining = 0
	}
	return int(remaining.Seconds())
}

// Truncate cuts a string to at most max runes. No ellipsis: every column
// on a 16-character row is data.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
