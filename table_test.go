package felt

import "testing"

func cardAt(x, y float64) *Card {
	c := NewCard(Ace, Spades)
	c.X, c.Y = x, y
	return c
}

func TestTableAddPlacesOnTop(t *testing.T) {
	tb := NewTable()
	a := cardAt(0, 0)
	b := cardAt(0, 0)
	tb.Add(a)
	tb.Add(b)
	if tb.Entities()[0] != b {
		t.Error("most recently added entity should be on top")
	}
}

func TestTableAddDuplicatePanics(t *testing.T) {
	tb := NewTable()
	a := cardAt(0, 0)
	tb.Add(a)
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding an entity twice")
		}
	}()
	tb.Add(a)
}

func TestTableTopmostAt(t *testing.T) {
	tb := NewTable()
	bottom := cardAt(100, 100)
	top := cardAt(120, 110) // overlaps bottom
	tb.Add(bottom)
	tb.Add(top)

	if got := tb.TopmostAt(125, 115); got != top {
		t.Errorf("TopmostAt in overlap = %v, want top card", got)
	}
	if got := tb.TopmostAt(101, 101); got != bottom {
		t.Errorf("TopmostAt on exposed region = %v, want bottom card", got)
	}
	if got := tb.TopmostAt(500, 500); got != nil {
		t.Errorf("TopmostAt on empty felt = %v, want nil", got)
	}
}

func TestTableTopmostOtherAt(t *testing.T) {
	tb := NewTable()
	under := cardAt(100, 100)
	over := cardAt(100, 100)
	tb.Add(under)
	tb.Add(over)
	if got := tb.TopmostOtherAt(110, 110, over); got != under {
		t.Errorf("TopmostOtherAt = %v, want the underlying card", got)
	}
}

func TestTableRaiseToTop(t *testing.T) {
	tb := NewTable()
	a := cardAt(0, 0)
	b := cardAt(0, 0)
	c := cardAt(0, 0)
	tb.Add(a)
	tb.Add(b)
	tb.Add(c) // order: c, b, a

	tb.RaiseToTop(a)
	es := tb.Entities()
	if es[0] != a || es[1] != c || es[2] != b {
		t.Errorf("RaiseToTop should move a to the front preserving the rest")
	}
}

func TestTableReplaceKeepsSlot(t *testing.T) {
	tb := NewTable()
	a := cardAt(0, 0)
	b := cardAt(0, 0)
	c := cardAt(0, 0)
	tb.Add(a)
	tb.Add(b)
	tb.Add(c)

	repl := cardAt(5, 5)
	tb.Replace(b, repl)
	if tb.Entities()[1] != repl {
		t.Error("replacement should occupy the old entity's z-order slot")
	}
}

func TestTableReplaceMissingPanics(t *testing.T) {
	tb := NewTable()
	defer func() {
		if recover() == nil {
			t.Error("expected panic replacing an absent entity")
		}
	}()
	tb.Replace(cardAt(0, 0), cardAt(0, 0))
}

func TestTableMerge(t *testing.T) {
	tb := NewTable()
	other := cardAt(300, 300)
	a := cardAt(100, 100)
	b := cardAt(120, 105)
	tb.Add(other)
	tb.Add(a)
	tb.Add(b)

	merged := NewStack(100, 100, a, b)
	tb.Merge(a, b, merged)

	if tb.Len() != 2 {
		t.Fatalf("Len() after merge = %d, want 2", tb.Len())
	}
	if tb.Entities()[0] != merged {
		t.Error("merged entity should be inserted at the top")
	}
	if tb.Entities()[1] != other {
		t.Error("unrelated entities should keep their order")
	}
	if merged.Spacing != tb.Config().FanSpacing {
		t.Error("merge should stamp the table's fan spacing onto the stack")
	}
}

func TestTableRemoveAbsentIsNoOp(t *testing.T) {
	tb := NewTable()
	tb.Add(cardAt(0, 0))
	tb.Remove(cardAt(1, 1))
	if tb.Len() != 1 {
		t.Error("removing an absent entity should change nothing")
	}
}
