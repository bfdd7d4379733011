package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kostyay/ipdisplay/internal/model"
)

func TestRenderJSON(t *testing.T) {
	snap := &model.Snapshot{
		IP:        "10.0.0.5",
		SSHStatus: "SSH: ON",
		Hostname:  "bench-pi",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := RenderJSON(&buf, snap, "bench-pi.lan"); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	var decoded JSONSnapshot
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.IP != "10.0.0.5" {
		t.Errorf("IP = %q", decoded.IP)
	}
	if decoded.SSHStatus != "SSH: ON" {
		t.Errorf("SSHStatus = %q", decoded.SSHStatus)
	}
	if decoded.Resolved != "bench-pi.lan" {
		t.Errorf("Resolved = %q", decoded.Resolved)
	}
	if decoded.WireLine != "10.0.0.5|SSH: ON" {
		t.Errorf("WireLine = %q, want the exact encoded payload", decoded.WireLine)
	}
}

func TestRenderJSON_WireLineTruncated(t *testing.T) {
	snap := &model.Snapshot{
		IP:        strings.Repeat("1", 40),
		SSHStatus: "SSH: ON",
		Timestamp: time.Now(),
	}

	var buf bytes.Buffer
	if err := RenderJSON(&buf, snap, ""); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	var decoded JSONSnapshot
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	field1 := strings.SplitN(decoded.WireLine, "|", 2)[0]
	if len(field1) != model.DisplayCols {
		t.Errorf("wire field1 has %d chars, want %d", len(field1), model.DisplayCols)
	}
	// The raw IP field keeps its full value for scripting consumers.
	if len(decoded.IP) != 40 {
		t.Errorf("raw IP should not be truncated, got %d chars", len(decoded.IP))
	}
}

func TestRenderJSON_OmitsEmptyOptionalFields(t *testing.T) {
	snap := &model.Snapshot{IP: "10.0.0.5", SSHStatus: "SSH: OFF", Timestamp: time.Now()}

	var buf bytes.Buffer
	if err := RenderJSON(&buf, snap, ""); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	if strings.Contains(buf.String(), "resolved") {
		t.Error("empty resolved field should be omitted")
	}
	if strings.Contains(buf.String(), "hostname") {
		t.Error("empty hostname field should be omitted")
	}
}
