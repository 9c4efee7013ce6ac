package game

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
		{None, None},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite(): expected %v, got %v", tt.d, tt.want, got)
		}
	}
	if None.IsOpposite(None) {
		t.Error("Expected none to have no opposite")
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		d      Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
		{None, 0, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.d.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta(): expected (%d,%d), got (%d,%d)", tt.d, tt.dx, tt.dy, dx, dy)
		}
		// Opposite headings cancel out
		ox, oy := tt.d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v: expected opposite delta to cancel", tt.d)
		}
	}
}

func TestCellIn(t *testing.T) {
	if !(Cell{X: 0, Y: 0}).In(1) {
		t.Error("Expected (0,0) inside 1x1")
	}
	for _, c := range []Cell{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 5, Y: 0}, {X: 0, Y: 5}} {
		if c.In(5) {
			t.Errorf("Expected %v outside 5x5", c)
		}
	}
}
