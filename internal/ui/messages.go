package ui

import "time"

// TickMsg is sent on each UI refresh interval.
type TickMsg time.Time
