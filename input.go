package felt

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSource reads the mouse each update and forwards transitions to a
// table as core pointer events. It keeps just enough state to synthesize
// movement deltas and to hold the press-time button for the whole
// interaction, the way real capture behaves.
type PointerSource struct {
	lastX, lastY float64
	down         bool
	button       Button
	primed       bool
}

// Update samples the cursor and buttons and feeds the table.
func (p *PointerSource) Update(t *Table) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	pressed := left || right

	if !p.primed {
		p.lastX, p.lastY = x, y
		p.primed = true
	}

	switch {
	case pressed && !p.down:
		p.down = true
		if left {
			p.button = ButtonPrimary
		} else {
			p.button = ButtonSecondary
		}
		t.PointerDown(x, y, p.button, t.Now())
	case !pressed && p.down:
		p.down = false
		t.PointerUp()
	default:
		if x != p.lastX || y != p.lastY {
			t.PointerMove(x, y, x-p.lastX, y-p.lastY)
		}
	}

	p.lastX, p.lastY = x, y
}

// Cancel abandons any in-flight press, for embedders that detect focus or
// capture loss. The table treats it as an implicit release with no drop
// target.
func (p *PointerSource) Cancel(t *Table) {
	if p.down {
		p.down = false
		t.CancelDrag()
	}
}
