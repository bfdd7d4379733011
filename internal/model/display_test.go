package model

import (
	"strings"
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"shorter than max", "10.0.0.5", 16, "10.0.0.5"},
		{"exactly max", "255.255.255.2551", 16, "255.255.255.2551"},
		{"longer than max", "this is far too long for one row", 16, "this is far too "},
		{"empty", "", 16, ""},
		{"multibyte runes", strings.Repeat("ä", 20), 16, strings.Repeat("ä", 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncate_NeverExceedsWidth(t *testing.T) {
	inputs := []string{
		"",
		"short",
		strings.Repeat("x", 15),
		strings.Repeat("x", 16),
		strings.Repeat("x", 17),
		strings.Repeat("x", 1000),
	}
	for _, in := range inputs {
		got := Truncate(in, DisplayCols)
		if n := len([]rune(got)); n > DisplayCols {
			t.Errorf("Truncate(%d chars) produced %d runes, max is %d", len(in), n, DisplayCols)
		}
	}
}

func TestDisplayState_SetFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var s DisplayState
	s.SetFields("10.0.0.5", "SSH: ON", now)

	if s.Line1 != "10.0.0.5" {
		t.Errorf("Line1 = %q, want %q", s.Line1, "10.0.0.5")
	}
	if s.Line2 != "SSH: ON" {
		t.Errorf("Line2 = %q, want %q", s.Line2, "SSH: ON")
	}
	if !s.HasData {
		t.Error("HasData should be true after SetFields")
	}
	if !s.LastReceive.Equal(now) {
		t.Errorf("LastReceive = %v, want %v", s.LastReceive, now)
	}
	if !s.LastRequest.Equal(now) {
		t.Errorf("LastRequest = %v, want %v", s.LastRequest, now)
	}
}

func TestDisplayState_SetFieldsTruncates(t *testing.T) {
	var s DisplayState
	s.SetFields(strings.Repeat("1", 40), strings.Repeat("2", 40), time.Now())

	if len(s.Line1) != DisplayCols {
		t.Errorf("Line1 stored with %d chars, want %d", len(s.Line1), DisplayCols)
	}
	if len(s.Line2) != DisplayCols {
		t.Errorf("Line2 stored with %d chars, want %d", len(s.Line2), DisplayCols)
	}
}

func TestDisplayState_Countdown(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	interval := 15 * time.Second

	var s DisplayState
	s.SetFields("10.0.0.5", "SSH: ON", start)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"immediately after data", 0, 15},
		{"five seconds in", 5 * time.Second, 10},
		{"one second left", 14 * time.Second, 1},
		{"exactly expired", 15 * time.Second, 0},
		{"long past expiry", 90 * time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Countdown(start.Add(tt.elapsed), interval)
			if got != tt.want {
				t.Errorf("Countdown(+%v) = %d, want %d", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestDisplayState_CountdownMonotonic(t *testing.T) {
	start := time.Now()
	interval := 15 * time.Second

	var s DisplayState
	s.SetFields("10.0.0.5", "SSH: ON", start)

	prev := s.Countdown(start, interval)
	for elapsed := 250 * time.Millisecond; elapsed < 20*time.Second; elapsed += 250 * time.Millisecond {
		cur := s.Countdown(start.Add(elapsed), interval)
		if cur > prev {
			t.Fatalf("countdown increased from %d to %d at +%v with no new data", prev, cur, elapsed)
		}
		if cur < 0 {
			t.Fatalf("countdown went negative: %d at +%v", cur, elapsed)
		}
		prev = cur
	}
}

func TestSnapshot_Fields(t *testing.T) {
	snap := Snapshot{
		IP:        "192.168.100.200",
		SSHStatus: "SSH: ON plus extra junk",
	}
	f1, f2 := snap.Fields()
	if f1 != "192.168.100.200" {
		t.Errorf("field1 = %q", f1)
	}
	if f2 != "SSH: ON plus ext" {
		t.Errorf("field2 = %q, want 16-char truncation", f2)
	}
}
