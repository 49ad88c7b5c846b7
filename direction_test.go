package felt

import "testing"

func TestDirectionCorner(t *testing.T) {
	const x, y, w, h = 100.0, 200.0, 40.0, 60.0

	tests := []struct {
		name   string
		dir    Direction
		cx, cy float64
	}{
		{"up", DirUp, x + w, y + h},
		{"right", DirRight, x - h, y + w},
		{"down", DirDown, x - w, y - h},
		{"left", DirLeft, x + h, y - w},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := tt.dir.Corner(x, y, w, h)
			if cx != tt.cx || cy != tt.cy {
				t.Errorf("Corner() = (%v, %v), want (%v, %v)", cx, cy, tt.cx, tt.cy)
			}
		})
	}
}

// TestDirectionContains_AgreesWithCornerRanges sweeps a grid of points for
// every rotation and checks Contains against the explicit anchor-to-corner
// range formulas.
func TestDirectionContains_AgreesWithCornerRanges(t *testing.T) {
	const x, y, w, h = 100.0, 200.0, 40.0, 60.0

	inRange := func(v, a, b float64) bool {
		if a <= b {
			return v >= a && v <= b
		}
		return v >= b && v <= a
	}

	for d := DirUp; d <= DirLeft; d++ {
		cx, cy := d.Corner(x, y, w, h)
		for px := x - 80.0; px <= x+80; px += 4 {
			for py := y - 80.0; py <= y+80; py += 4 {
				want := inRange(px, x, cx) && inRange(py, y, cy)
				if got := d.Contains(x, y, w, h, px, py); got != want {
					t.Fatalf("dir %v: Contains(%v, %v) = %v, want %v", d, px, py, got, want)
				}
			}
		}
	}
}

func TestDirectionRotate(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		dx, dy float64
		wx, wy float64
	}{
		{"up identity", DirUp, 3, 5, 3, 5},
		{"right quarter", DirRight, 3, 5, -5, 3},
		{"down half", DirDown, 3, 5, -3, -5},
		{"left three-quarter", DirLeft, 3, 5, 5, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wx, wy := tt.dir.Rotate(tt.dx, tt.dy)
			if wx != tt.wx || wy != tt.wy {
				t.Errorf("Rotate(%v, %v) = (%v, %v), want (%v, %v)",
					tt.dx, tt.dy, wx, wy, tt.wx, tt.wy)
			}
		})
	}
}

func TestDirectionAxisRoundTrip(t *testing.T) {
	// AxisDistance must invert AxisOffset for every rotation.
	for d := DirUp; d <= DirLeft; d++ {
		for _, dist := range []float64{-30, 0, 12.5, 90} {
			ox, oy := d.AxisOffset(dist)
			got := d.AxisDistance(10, 20, 10+ox, 20+oy)
			if got != dist {
				t.Errorf("dir %v: AxisDistance of AxisOffset(%v) = %v", d, dist, got)
			}
		}
	}
}

func TestDirectionHorizontal(t *testing.T) {
	if !DirUp.Horizontal() || !DirDown.Horizontal() {
		t.Error("0 and 180 degree fans should be horizontal")
	}
	if DirRight.Horizontal() || DirLeft.Horizontal() {
		t.Error("90 and 270 degree fans should be vertical")
	}
}

func TestInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid direction")
		}
	}()
	Direction(7).Corner(0, 0, 1, 1)
}

func TestCardSetDirectionRejectsInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic setting invalid direction")
		}
	}()
	NewCard(Ace, Spades).SetDirection(Direction(4))
}
