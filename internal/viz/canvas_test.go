package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(3, 2)
	if c.Grid[0][1] == 0x2800 {
		t.Error("Set(3,2) should light a dot in cell (0,1)")
	}

	c.Unset(3, 2)
	if c.Grid[0][1] != 0x2800 {
		t.Errorf("Unset(3,2) should restore the empty cell, got %U", c.Grid[0][1])
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(4, 4)

	// Out-of-range coordinates must be ignored, not panic.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
	c.Unset(-5, -5)

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("out-of-range Set leaked into the grid: %U", r)
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(6, 3)
	c.DrawLine(0, 0, 11, 11)

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("Clear left dots behind")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 0)

	for x := 0; x < 20; x++ {
		col := x / 2
		if c.Grid[0][col] == 0x2800 {
			t.Errorf("horizontal line missing dot at x=%d", x)
		}
	}
}

func TestCanvasDrawCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 10)

	// Rim passes through the four axis-aligned extremes.
	for _, pt := range [][2]int{{30, 20}, {10, 20}, {20, 30}, {20, 10}} {
		col, row := pt[0]/2, pt[1]/4
		if c.Grid[row][col] == 0x2800 {
			t.Errorf("circle rim missing near (%d,%d)", pt[0], pt[1])
		}
	}

	// Center stays empty.
	if c.Grid[5][10] != 0x2800 {
		t.Error("DrawCircle filled the center")
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.FillCircle(10, 10, 3)

	if c.Grid[2][5] == 0x2800 {
		t.Error("FillCircle left the center empty")
	}

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit < 3 {
		t.Errorf("FillCircle lit %d cells, want a disc", lit)
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("line %q has %d runes, want 3", line, len([]rune(line)))
		}
	}
}
