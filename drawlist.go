package felt

// Marker is a one-shot visual hint attached to a draw op for the current
// frame only. Markers are a pure function of the live hover state and are
// recomputed on every BuildDrawList call; nothing consumes or resets them.
type Marker uint8

const (
	MarkerNone         Marker = iota
	MarkerStackPreview        // dropping here would fan into a stack
	MarkerPilePreview         // dropping here would square into a pile
	MarkerTopPreview          // dropping here lands on top of this pile
)

// DrawOp is one renderable card with its resolved transform and face.
type DrawOp struct {
	Card     *Card
	X, Y     float64
	Dir      Direction
	Scale    float64
	SquashX  float64 // flip animation factor, 1 when idle
	FaceDown bool
	Marker   Marker
}

// OutlineOp marks a stack insertion slot with an empty card outline.
type OutlineOp struct {
	X, Y float64
	Dir  Direction
	W, H float64
}

// DrawList is the per-frame renderer handoff. Ops are in paint order:
// bottom of the table first, topmost entity last, so a renderer draws the
// slice front to back exactly once.
type DrawList struct {
	Ops      []DrawOp
	Outlines []OutlineOp
}

// BuildDrawList resolves the current table state into draw directives,
// reusing dst's backing storage.
func (t *Table) BuildDrawList(dst DrawList) DrawList {
	dst.Ops = dst.Ops[:0]
	dst.Outlines = dst.Outlines[:0]

	for i := len(t.entities) - 1; i >= 0; i-- {
		switch e := t.entities[i].(type) {
		case *Card:
			dst.Ops = append(dst.Ops, DrawOp{
				Card:     e,
				X:        e.X,
				Y:        e.Y,
				Dir:      e.Dir,
				Scale:    e.Scale,
				SquashX:  t.squashFor(e),
				FaceDown: e.FaceDown,
				Marker:   t.cardMarker(e),
			})
		case *Stack:
			dst = t.appendStack(dst, e)
		case *Pile:
			dst = t.appendPile(dst, e)
		}
	}
	return dst
}

// appendStack fans the stack's cards along its axis, card 0 at the anchor,
// later cards drawn on top. A hovered stack also gets an insertion outline
// at the pending slot.
func (t *Table) appendStack(dst DrawList, s *Stack) DrawList {
	squash := t.squashFor(s)
	step := s.Spacing * s.Scale()
	for i, c := range s.Cards() {
		ox, oy := s.Dir.AxisOffset(float64(i) * step)
		dst.Ops = append(dst.Ops, DrawOp{
			Card:     c,
			X:        s.X + ox,
			Y:        s.Y + oy,
			Dir:      s.Dir,
			Scale:    c.Scale,
			SquashX:  squash,
			FaceDown: s.FaceDown,
		})
	}
	if t.drag.active && t.drag.hover.entity == s {
		ox, oy := s.Dir.AxisOffset(float64(t.drag.hover.outlineIndex) * step)
		dst.Outlines = append(dst.Outlines, OutlineOp{
			X:   s.X + ox,
			Y:   s.Y + oy,
			Dir: s.Dir,
			W:   s.CardAt(0).Width(),
			H:   s.CardAt(0).Height(),
		})
	}
	return dst
}

// appendPile draws the card beneath the top at the stagger offset so the
// pile reads as more than one card, then the top card at the anchor.
func (t *Table) appendPile(dst DrawList, p *Pile) DrawList {
	squash := t.squashFor(p)
	if p.Len() > 1 {
		off := p.Stagger * p.Scale()
		ox, oy := p.Dir.Rotate(off, off)
		under := p.CardAt(1)
		dst.Ops = append(dst.Ops, DrawOp{
			Card:     under,
			X:        p.X + ox,
			Y:        p.Y + oy,
			Dir:      p.Dir,
			Scale:    under.Scale,
			SquashX:  squash,
			FaceDown: p.FaceDown,
		})
	}
	top := p.CardAt(0)
	marker := MarkerNone
	if t.drag.active && t.drag.hover.entity == p {
		marker = MarkerTopPreview
	}
	dst.Ops = append(dst.Ops, DrawOp{
		Card:     top,
		X:        p.X,
		Y:        p.Y,
		Dir:      p.Dir,
		Scale:    top.Scale,
		SquashX:  squash,
		FaceDown: p.FaceDown,
		Marker:   marker,
	})
	return dst
}

// cardMarker maps the live hover band onto a lone card's marker.
func (t *Table) cardMarker(c *Card) Marker {
	if !t.drag.active || t.drag.hover.entity != c {
		return MarkerNone
	}
	switch t.drag.hover.band {
	case PreviewStack:
		return MarkerStackPreview
	case PreviewPile:
		return MarkerPilePreview
	}
	return MarkerNone
}
