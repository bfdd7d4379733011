package ui

import (
	"strings"
	"testing"

	"github.com/kostyay/ipdisplay/internal/model"
)

func TestNewPanel_Blank(t *testing.T) {
	p := NewPanel()
	for i, row := range p.Rows() {
		if row != strings.Repeat(" ", model.DisplayCols) {
			t.Errorf("row %d not blank: %q", i, row)
		}
		if len([]rune(row)) != model.DisplayCols {
			t.Errorf("row %d has %d cells, want %d", i, len([]rune(row)), model.DisplayCols)
		}
	}
}

func TestPanel_WriteAt(t *testing.T) {
	p := NewPanel()
	if err := p.WriteAt(0, 0, "10.0.0.5"); err != nil {
		t.Fatalf("WriteAt failed: %v", err)
	}
	if err := p.WriteAt(1, 0, "SSH: ON R:15s"); err != nil {
		t.Fatalf("WriteAt failed: %v", err)
	}

	rows := p.Rows()
	if rows[0] != "10.0.0.5        " {
		t.Errorf("row 0 = %q", rows[0])
	}
	if rows[1] != "SSH: ON R:15s   " {
		t.Errorf("row 1 = %q", rows[1])
	}
}

func TestPanel_WriteAtOffset(t *testing.T) {
	p := NewPanel()
	if err := p.WriteAt(0, 4, "abc"); err != nil {
		t.Fatalf("WriteAt failed: %v", err)
	}
	if got := p.Rows()[0]; got != "    abc         " {
		t.Errorf("row 0 = %q", got)
	}
}

func TestPanel_OverflowDropped(t *testing.T) {
	p := NewPanel()
	if err := p.WriteAt(0, 0, strings.Repeat("x", 40)); err != nil {
		t.Fatalf("WriteAt failed: %v", err)
	}

	row := p.Rows()[0]
	if len([]rune(row)) != model.DisplayCols {
		t.Errorf("row grew past the display width: %d cells", len([]rune(row)))
	}
	if row != strings.Repeat("x", model.DisplayCols) {
		t.Errorf("row 0 = %q", row)
	}
}

func TestPanel_OutOfRange(t *testing.T) {
	p := NewPanel()
	tests := []struct {
		name string
		row  int
		col  int
	}{
		{"negative row", -1, 0},
		{"row too large", model.DisplayRows, 0},
		{"negative col", 0, -1},
		{"col too large", 0, model.DisplayCols},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.WriteAt(tt.row, tt.col, "x"); err == nil {
				t.Errorf("WriteAt(%d, %d) should fail", tt.row, tt.col)
			}
		})
	}
}

func TestPanel_Clear(t *testing.T) {
	p := NewPanel()
	if err := p.WriteAt(0, 0, "something"); err != nil {
		t.Fatalf("WriteAt failed: %v", err)
	}
	if err := p.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if got := p.Rows()[0]; got != strings.Repeat(" ", model.DisplayCols) {
		t.Errorf("row 0 after Clear = %q", got)
	}
}
