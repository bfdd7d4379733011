// Package output renders host snapshots for scripting consumers.
package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/kostyay/ipdisplay/internal/model"
)

// JSONSnapshot is the root JSON output structure.
type JSONSnapshot struct {
	Timestamp time.Time `json:"timestamp"`
	IP        string    `json:"ip"`
	SSHStatus string    `json:"ssh_status"`
	Hostname  string    `json:"hostname,omitempty"`
	Resolved  string    `json:"resolved,omitempty"` // reverse-DNS name of IP, when known
	WireLine  string    `json:"wire_line"`          // exactly what a send would transmit
}

// RenderJSON writes the host snapshot as JSON to the writer. resolved may
// be empty when reverse DNS found nothing.
func RenderJSON(w io.Writer, snap *model.Snapshot, resolved string) error {
	field1, field2 := snap.Fields()
	out := JSONSnapshot{
		Timestamp: snap.Timestamp,
		IP:        snap.IP,
		SSHStatus: snap.SSHStatus,
		Hostname:  snap.Hostname,
		Resolved:  resolved,
		WireLine:  field1 + "|" + field2,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
