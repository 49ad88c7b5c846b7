package felt

// Direction is one of the four permitted quarter-turn orientations for an
// entity on the table. Rotation is discrete — there is no free-angle spin —
// so all geometry below is exact lookup math with no trigonometry and no
// floating-point angle comparison.
type Direction uint8

const (
	DirUp    Direction = iota // 0°, fan extends toward +X
	DirRight                  // 90° clockwise, fan extends toward +Y
	DirDown                   // 180°, fan extends toward -X
	DirLeft                   // 270° clockwise, fan extends toward -Y
)

// checkDirection panics when d is not one of the four quarter-turns.
// Invalid rotations are rejected where they are set, never tolerated in
// downstream geometry.
func checkDirection(d Direction) {
	if d > DirLeft {
		panic("felt: invalid direction")
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "invalid"
}

// Radians returns the rotation angle for rendering.
func (d Direction) Radians() float64 {
	checkDirection(d)
	return [4]float64{0, 1.5707963267948966, 3.141592653589793, 4.71238898038469}[d]
}

// Rotate maps an offset in an entity's local space (X toward the fan, Y
// toward the card's long edge) into world space.
func (d Direction) Rotate(dx, dy float64) (float64, float64) {
	switch d {
	case DirUp:
		return dx, dy
	case DirRight:
		return -dy, dx
	case DirDown:
		return -dx, -dy
	case DirLeft:
		return dy, -dx
	}
	panic("felt: invalid direction")
}

// Corner returns the corner diagonally opposite the anchor (x, y) for a
// rectangle of local size w×h facing d.
func (d Direction) Corner(x, y, w, h float64) (float64, float64) {
	rx, ry := d.Rotate(w, h)
	return x + rx, y + ry
}

// Contains reports whether the point (px, py) lies inside the rectangle
// anchored at (x, y) with local size w×h facing d. The anchor-to-corner
// ranges flip direction with rotation; between handles either ordering.
func (d Direction) Contains(x, y, w, h, px, py float64) bool {
	cx, cy := d.Corner(x, y, w, h)
	return between(px, x, cx) && between(py, y, cy)
}

// Horizontal reports whether the fan axis runs along world X.
func (d Direction) Horizontal() bool {
	checkDirection(d)
	return d == DirUp || d == DirDown
}

// AxisOffset returns the world-space offset of a point dist units along the
// fan axis from the anchor.
func (d Direction) AxisOffset(dist float64) (float64, float64) {
	return d.Rotate(dist, 0)
}

// AxisDistance projects the world-space offset from an anchor at (x, y) to
// (px, py) onto the fan axis, in local units (positive toward the fan).
func (d Direction) AxisDistance(x, y, px, py float64) float64 {
	switch d {
	case DirUp:
		return px - x
	case DirRight:
		return py - y
	case DirDown:
		return x - px
	case DirLeft:
		return y - py
	}
	panic("felt: invalid direction")
}

// between reports whether v lies in the closed range spanned by a and b,
// in either order.
func between(v, a, b float64) bool {
	if a <= b {
		return v >= a && v <= b
	}
	return v >= b && v <= a
}
