package model

import "time"

// Snapshot represents the host's network identity at a point in time.
// It is recomputed fresh for every send and never cached, so the display
// always reflects current host state rather than boot-time state.
type Snapshot struct {
	IP        string    // primary IPv4 address, or an error sentinel
	SSHStatus string    // "SSH: ON", "SSH: OFF" or "SSH: ???"
	Hostname  string    // host name, best effort (not sent on the wire)
	Timestamp time.Time // when the snapshot was gathered
}

// Fields returns the two wire fields, truncated to the display width.
func (s *Snapshot) Fields() (string, string) {
	return Truncate(s.IP, DisplayCols), Truncate(s.SSHStatus, DisplayCols)
}
