package felt

import "time"

// Button identifies a pointer button.
type Button uint8

const (
	ButtonPrimary   Button = iota // left
	ButtonSecondary               // right
)

// Preview classifies what dropping the dragged card onto a hovered card
// would produce.
type Preview uint8

const (
	PreviewNone  Preview = iota
	PreviewStack         // drop would fan the two cards into a stack
	PreviewPile          // drop would square them up into a pile
)

// dragSession is the transient state of one press-to-release interaction.
type dragSession struct {
	active     bool
	target     Entity
	x, y       float64
	pressed    time.Time
	double     bool
	draggedYet bool

	// specIndex is the stack member identified at press time.
	// Only meaningful when the press target was a *Stack.
	specIndex int

	hover hoverRecord
}

// hoverRecord is the topmost other entity currently under the pointer,
// recomputed on every move while a lone card is dragged.
type hoverRecord struct {
	entity       Entity
	outlineIndex int     // stack slot an insertion preview should mark
	trailing     bool    // slot one past the stack's last card
	band         Preview // card-over-card drop classification
}

// lastDragRecord retains the most recently closed session, solely so the
// next press can be classified as a double click.
type lastDragRecord struct {
	valid   bool
	target  Entity
	pressed time.Time
}

// PointerDown opens a drag session on the topmost entity under (x, y).
// A second press while a session is active is ignored; real pointer
// hardware emits those.
func (t *Table) PointerDown(x, y float64, button Button, now time.Time) {
	if t.drag.active {
		t.debugf("pointer down ignored: session active")
		return
	}
	hit := t.TopmostAt(x, y)
	if hit == nil {
		return
	}

	if button == ButtonPrimary && hit.IsFaceDown() {
		hit.SetFaceDown(false)
		t.startFlip(hit)
	} else if button == ButtonSecondary && !hit.IsFaceDown() {
		hit.SetFaceDown(true)
		t.startFlip(hit)
	}

	double := t.isDoubleClick(hit, now)

	t.drag = dragSession{
		active:  true,
		target:  hit,
		x:       x,
		y:       y,
		pressed: now,
		double:  double,
	}
	if st, ok := hit.(*Stack); ok {
		// The press point is inside the stack, so the clamped form is safe.
		t.drag.specIndex = st.SpecCardAt(x, y, true)
	}
	t.RaiseToTop(hit)
	t.debugf("pointer down: target=%T double=%v", hit, double)
}

// isDoubleClick reports whether a press on hit at now closes the
// double-click window opened by the previous session. The window is a
// strict bound: a press exactly at the threshold is a single click.
func (t *Table) isDoubleClick(hit Entity, now time.Time) bool {
	return t.lastDrag.valid &&
		hit == t.lastDrag.target &&
		now.Sub(t.lastDrag.pressed) < t.cfg.DoubleClickWindow()
}

// PointerMove advances an active drag session. The first move of a
// single-click session on a group extracts one card and retargets the
// session to it; a double-click session drags the whole group.
func (t *Table) PointerMove(x, y, dx, dy float64) {
	if !t.drag.active {
		return
	}
	t.drag.x = x
	t.drag.y = y

	if !t.drag.draggedYet {
		if !t.drag.double {
			switch g := t.drag.target.(type) {
			case *Stack:
				t.extractFromStack(g)
			case *Pile:
				t.extractFromPile(g)
			}
		}
		t.drag.draggedYet = true
	}

	// A lone card always follows the pointer. A group follows only on a
	// double click; a single-click partial drag moved the freshly
	// extracted card instead, via retargeting above.
	if _, isCard := t.drag.target.(*Card); isCard || t.drag.double {
		t.drag.target.MoveBy(dx, dy)
	}

	if c, ok := t.drag.target.(*Card); ok {
		t.drag.hover = t.computeHover(c)
	} else {
		t.drag.hover = hoverRecord{}
	}
}

// extractFromStack pulls the press-time spec-card out of the stack, places
// it on top of the table at its fanned position so it does not visibly
// jump, and retargets the session to it.
func (t *Table) extractFromStack(st *Stack) {
	idx := t.drag.specIndex
	c := st.RemoveAt(idx)
	c.FaceDown = st.FaceDown
	c.SetDirection(st.Dir)
	ox, oy := st.Dir.AxisOffset(float64(idx) * st.Spacing * st.Scale())
	c.SetPos(st.X+ox, st.Y+oy)
	t.insertTop(c)
	if st.Len() == 1 {
		t.degenerate(st)
	}
	t.drag.target = c
	t.debugf("extracted %v from stack at index %d", c, idx)
}

// extractFromPile pulls the visible top card off the pile. The top card
// renders at the anchor, so placing the extracted card there means it does
// not visibly jump; the pile itself stays put.
func (t *Table) extractFromPile(p *Pile) {
	c := p.PopTop()
	c.FaceDown = p.FaceDown
	c.SetDirection(p.Dir)
	c.SetPos(p.X, p.Y)
	t.insertTop(c)
	if p.Len() == 1 {
		t.degenerate(p)
	}
	t.drag.target = c
	t.debugf("extracted %v from pile", c)
}

// degenerate collapses a group reduced to a single member into that lone
// card, keeping the group's z-order slot, position, orientation, and face.
func (t *Table) degenerate(g Entity) {
	var last *Card
	switch g := g.(type) {
	case *Stack:
		if g.Len() == 0 {
			panic("felt: degenerate of empty stack")
		}
		last = g.CardAt(0)
	case *Pile:
		if g.Len() == 0 {
			panic("felt: degenerate of empty pile")
		}
		last = g.CardAt(0)
	default:
		panic("felt: degenerate of non-group entity")
	}
	x, y := g.Pos()
	last.SetPos(x, y)
	last.FaceDown = g.IsFaceDown()
	last.SetDirection(g.Direction())
	t.Replace(g, last)
	t.debugf("group degenerated to %v", last)
}

// computeHover finds the topmost other entity under the pointer and
// classifies what releasing there would do. Hover state is recomputed in
// full on every move; nothing here persists across frames.
func (t *Table) computeHover(dragged *Card) hoverRecord {
	h := t.TopmostOtherAt(t.drag.x, t.drag.y, dragged)
	switch o := h.(type) {
	case *Pile:
		return hoverRecord{entity: o}
	case *Stack:
		// Unclamped on purpose: an index past the last card marks the
		// trailing drop-after-last slot.
		idx := o.SpecCardAt(t.drag.x, t.drag.y, false)
		if idx >= o.Len() {
			return hoverRecord{entity: o, outlineIndex: o.Len(), trailing: true}
		}
		return hoverRecord{entity: o, outlineIndex: idx}
	case *Card:
		return hoverRecord{entity: o, band: t.mergeBand(dragged, o)}
	}
	return hoverRecord{}
}

// mergeBand classifies the offset between a dragged card and a hovered card.
// The dragged card must sit in the hovered card's upper half; then a fan
// offset in [StackBandMin, StackBandMax) scaled units makes a stack and an
// offset in [-StackBandMin, StackBandMin) makes a pile.
func (t *Table) mergeBand(dragged, hover *Card) Preview {
	dx := dragged.X - hover.X
	dy := dragged.Y - hover.Y
	if dy < 0 || dy >= hover.Height()/2 {
		return PreviewNone
	}
	s := dragged.Scale
	switch {
	case dx >= t.cfg.StackBandMin*s && dx < t.cfg.StackBandMax*s:
		return PreviewStack
	case dx >= -t.cfg.StackBandMin*s && dx < t.cfg.StackBandMin*s:
		return PreviewPile
	}
	return PreviewNone
}

// PointerUp closes the active session, applying any merge or insertion the
// current hover target calls for. A release while idle is a no-op.
func (t *Table) PointerUp() {
	if !t.drag.active {
		return
	}
	t.lastDrag = lastDragRecord{
		valid:   true,
		target:  t.drag.target,
		pressed: t.drag.pressed,
	}

	if c, ok := t.drag.target.(*Card); ok && t.drag.hover.entity != nil {
		t.dropCard(c)
	}

	t.drag = dragSession{}
	t.debugf("pointer up: idle")
}

// dropCard applies the release-time mutation for a dragged lone card over
// the recorded hover target.
func (t *Table) dropCard(c *Card) {
	switch o := t.drag.hover.entity.(type) {
	case *Pile:
		t.Remove(c)
		o.Push(c)
		t.debugf("dropped %v onto pile", c)
	case *Stack:
		idx := t.drag.hover.outlineIndex
		if t.drag.hover.trailing || idx > o.Len() {
			idx = o.Len()
		}
		t.Remove(c)
		o.InsertAt(idx, c)
		t.debugf("dropped %v into stack at index %d", c, idx)
	case *Card:
		// Re-test at release position; the card may have moved since the
		// hover record was taken.
		switch t.mergeBand(c, o) {
		case PreviewStack:
			ns := NewStack(o.X, o.Y, o, c)
			ns.Dir = o.Dir
			ns.FaceDown = o.FaceDown
			t.Merge(o, c, ns)
			t.debugf("merged %v onto %v as stack", c, o)
		case PreviewPile:
			np := NewPile(o.X, o.Y, o, c)
			np.Dir = o.Dir
			np.FaceDown = o.FaceDown
			t.Merge(o, c, np)
			t.debugf("merged %v onto %v as pile", c, o)
		}
	}
}

// CancelDrag abandons the active session as an implicit pointer-up with no
// hover target: no structural change, straight back to idle. Input sources
// call this when pointer capture is lost mid-drag.
func (t *Table) CancelDrag() {
	if !t.drag.active {
		return
	}
	t.lastDrag = lastDragRecord{
		valid:   true,
		target:  t.drag.target,
		pressed: t.drag.pressed,
	}
	t.drag = dragSession{}
	t.debugf("drag cancelled: idle")
}

// Dragging returns the entity being dragged, or nil while idle.
func (t *Table) Dragging() Entity {
	if !t.drag.active {
		return nil
	}
	return t.drag.target
}
