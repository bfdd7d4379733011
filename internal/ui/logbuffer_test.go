package ui

import (
	"fmt"
	"testing"
)

func TestLogBuffer_SplitsLines(t *testing.T) {
	var b LogBuffer
	if _, err := b.Write([]byte("first\nsecond\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	lines := b.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "first" || lines[1] != "second" {
		t.Errorf("lines = %v", lines)
	}
}

func TestLogBuffer_PartialWrites(t *testing.T) {
	var b LogBuffer
	_, _ = b.Write([]byte("hel"))
	_, _ = b.Write([]byte("lo\nwor"))

	lines := b.Lines()
	if len(lines) != 1 || lines[0] != "hello" {
		t.Errorf("lines = %v, want [hello]; partial line must stay buffered", lines)
	}

	_, _ = b.Write([]byte("ld\n"))
	lines = b.Lines()
	if len(lines) != 2 || lines[1] != "world" {
		t.Errorf("lines = %v, want [hello world]", lines)
	}
}

func TestLogBuffer_BoundedRetention(t *testing.T) {
	var b LogBuffer
	for i := 0; i < maxLogLines+50; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}

	lines := b.Lines()
	if len(lines) != maxLogLines {
		t.Fatalf("retained %d lines, want %d", len(lines), maxLogLines)
	}
	if lines[0] != "line 50" {
		t.Errorf("oldest retained = %q, want line 50", lines[0])
	}
}
