package felt

import (
	"testing"
)

func TestBuildDrawList_PaintOrder(t *testing.T) {
	tb := NewTable()
	bottom := cardAt(0, 0)
	top := cardAt(10, 10)
	tb.Add(bottom)
	tb.Add(top)

	list := tb.BuildDrawList(DrawList{})
	if len(list.Ops) != 2 {
		t.Fatalf("ops = %d, want 2", len(list.Ops))
	}
	if list.Ops[0].Card != bottom || list.Ops[1].Card != top {
		t.Error("ops should run bottom of the table first, topmost last")
	}
}

func TestBuildDrawList_StackFan(t *testing.T) {
	tb := NewTable()
	a := NewCard(Ace, Spades)
	b := NewCard(Two, Spades)
	c := NewCard(Three, Spades)
	s := NewStack(100, 100, a, b, c)
	s.SetDirection(DirRight)
	s.FaceDown = true
	tb.Add(s)

	list := tb.BuildDrawList(DrawList{})
	if len(list.Ops) != 3 {
		t.Fatalf("ops = %d, want 3", len(list.Ops))
	}
	for i, op := range list.Ops {
		// Vertical fan: each card one spacing step down from the anchor.
		wantY := 100 + float64(i)*22.5
		if op.X != 100 || op.Y != wantY {
			t.Errorf("op %d at (%v, %v), want (100, %v)", i, op.X, op.Y, wantY)
		}
		if !op.FaceDown || op.Dir != DirRight {
			t.Errorf("op %d should carry the stack's face and rotation", i)
		}
	}
}

func TestBuildDrawList_PileShowsTopAndStagger(t *testing.T) {
	tb := NewTable()
	top := NewCard(Ace, Hearts)
	under := NewCard(Two, Hearts)
	third := NewCard(Three, Hearts)
	p := NewPile(300, 100, top, under, third)
	tb.Add(p)

	list := tb.BuildDrawList(DrawList{})
	// Only the card beneath the top and the top itself are drawn.
	if len(list.Ops) != 2 {
		t.Fatalf("ops = %d, want 2", len(list.Ops))
	}
	if list.Ops[0].Card != under || list.Ops[0].X != 302 || list.Ops[0].Y != 102 {
		t.Errorf("under-card op = %+v, want staggered by 2", list.Ops[0])
	}
	if list.Ops[1].Card != top || list.Ops[1].X != 300 || list.Ops[1].Y != 100 {
		t.Error("top card should draw last, at the anchor")
	}
}

func TestBuildDrawList_CardBandMarkers(t *testing.T) {
	tests := []struct {
		name      string
		draggedX  float64
		want      Marker
	}{
		{"stack band", 225, MarkerStackPreview},
		{"pile band", 195, MarkerPilePreview},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := NewTable()
			hover := cardAt(200, 200)
			dragged := cardAt(tt.draggedX, 205)
			tb.Add(hover)
			tb.Add(dragged)

			tb.PointerDown(tt.draggedX+5, 210, ButtonPrimary, at(0))
			tb.PointerMove(tt.draggedX+10, 215, 5, 5)

			list := tb.BuildDrawList(DrawList{})
			var got Marker
			for _, op := range list.Ops {
				if op.Card == hover {
					got = op.Marker
				}
			}
			if got != tt.want {
				t.Errorf("hovered card marker = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildDrawList_PileTopMarker(t *testing.T) {
	tb := NewTable()
	p := NewPile(300, 100, NewCard(Ace, Hearts), NewCard(Two, Hearts))
	dragged := cardAt(100, 100)
	tb.Add(p)
	tb.Add(dragged)

	tb.PointerDown(110, 110, ButtonPrimary, at(0))
	tb.PointerMove(310, 120, 200, 10)

	list := tb.BuildDrawList(DrawList{})
	found := false
	for _, op := range list.Ops {
		if op.Marker == MarkerTopPreview {
			found = true
		}
	}
	if !found {
		t.Error("hovering a pile should mark its top card")
	}
}

func TestBuildDrawList_StackOutline(t *testing.T) {
	tb := NewTable()
	s := NewStack(100, 100, NewCard(Ace, Spades), NewCard(Two, Spades), NewCard(Three, Spades))
	dragged := cardAt(400, 300)
	tb.Add(s)
	tb.Add(dragged)

	tb.PointerDown(410, 310, ButtonPrimary, at(0))
	tb.PointerMove(150, 120, -260, -190)

	list := tb.BuildDrawList(DrawList{})
	if len(list.Outlines) != 1 {
		t.Fatalf("outlines = %d, want 1", len(list.Outlines))
	}
	o := list.Outlines[0]
	if o.X != 145 || o.Y != 100 {
		t.Errorf("outline at (%v, %v), want fan slot 2 at (145, 100)", o.X, o.Y)
	}
	if o.W != 45 || o.H != 63 {
		t.Errorf("outline size = %vx%v, want the card footprint", o.W, o.H)
	}
}

// Markers are recomputed from live state on every build: after the session
// closes, a fresh build carries none.
func TestBuildDrawList_MarkersDoNotPersist(t *testing.T) {
	tb := NewTable()
	hover := cardAt(200, 200)
	dragged := cardAt(195, 205)
	tb.Add(hover)
	tb.Add(dragged)

	tb.PointerDown(200, 210, ButtonPrimary, at(0))
	tb.PointerMove(205, 215, 5, 5)
	list := tb.BuildDrawList(DrawList{})
	if list.Ops[0].Marker == MarkerNone {
		t.Fatal("expected a marker while hovering")
	}
	tb.CancelDrag()
	list = tb.BuildDrawList(list)
	for _, op := range list.Ops {
		if op.Marker != MarkerNone {
			t.Error("markers must vanish once the session closes")
		}
	}
	if len(list.Outlines) != 0 {
		t.Error("outlines must vanish once the session closes")
	}
}
