package felt

import (
	"fmt"
	"os"
	"time"
)

// Entity is anything that participates in the table's z-order: a *Card,
// *Stack, or *Pile. Every live entity appears exactly once in the table's
// front-to-back list; the list is the sole ownership authority.
type Entity interface {
	Contains(x, y float64) bool
	Pos() (float64, float64)
	SetPos(x, y float64)
	MoveBy(dx, dy float64)
	Direction() Direction
	IsFaceDown() bool
	SetFaceDown(down bool)
}

// Table owns the z-ordered entity list, the drag session, and the design
// configuration. All methods run on the caller's goroutine; the table is
// driven entirely by pointer-event callbacks and Tick, with no background
// work. Every mutation completes before the call returns, so a renderer
// never observes the list mid-mutation.
type Table struct {
	cfg      Config
	entities []Entity // index 0 renders on top and is hit-tested first

	drag     dragSession
	lastDrag lastDragRecord

	flips       []*flipAnimation
	injectQueue []syntheticPointerEvent
	injectDown  bool
	injectX     float64
	injectY     float64

	clock time.Duration
	debug bool
}

// NewTable creates an empty table with the default configuration.
func NewTable() *Table {
	return NewTableWith(DefaultConfig())
}

// NewTableWith creates an empty table with the given configuration.
func NewTableWith(cfg Config) *Table {
	if err := cfg.validate(); err != nil {
		panic("felt: " + err.Error())
	}
	return &Table{cfg: cfg}
}

// Config returns the table's configuration.
func (t *Table) Config() Config {
	return t.cfg
}

// SetDebugMode enables per-event transition logging to stderr.
func (t *Table) SetDebugMode(enabled bool) {
	t.debug = enabled
}

func (t *Table) debugf(format string, args ...any) {
	if !t.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[felt] "+format+"\n", args...)
}

// Now returns the table's internal clock, advanced by Tick. Injected
// pointer events are stamped with this clock; real input sources should use
// it too so double-click timing stays on one timeline.
func (t *Table) Now() time.Time {
	return time.Unix(0, 0).Add(t.clock)
}

// Tick advances the table by dt seconds: the internal clock, at most one
// injected pointer event, and any running flip animations.
func (t *Table) Tick(dt float64) {
	t.clock += time.Duration(dt * float64(time.Second))
	t.processInjectedInput()
	t.updateFlips(float32(dt))
}

// --- Registry operations ---

// Add places e on top of the table (index 0). Panics if e is already on the
// table; an entity appears exactly once.
func (t *Table) Add(e Entity) {
	if t.indexOf(e) >= 0 {
		panic("felt: entity already on table")
	}
	t.applyConfig(e)
	t.insertTop(e)
}

// applyConfig stamps table-level layout constants onto a new entity.
func (t *Table) applyConfig(e Entity) {
	switch g := e.(type) {
	case *Stack:
		g.Spacing = t.cfg.FanSpacing
	case *Pile:
		g.Stagger = t.cfg.PileStagger
	}
}

// Remove detaches e from the table. No-op if e is not present.
func (t *Table) Remove(e Entity) {
	i := t.indexOf(e)
	if i < 0 {
		return
	}
	copy(t.entities[i:], t.entities[i+1:])
	t.entities[len(t.entities)-1] = nil
	t.entities = t.entities[:len(t.entities)-1]
}

// Entities returns the front-to-back entity list. The returned slice MUST
// NOT be mutated by the caller.
func (t *Table) Entities() []Entity {
	return t.entities
}

// Len returns the number of live entities.
func (t *Table) Len() int {
	return len(t.entities)
}

// TopmostAt scans front-to-back and returns the first entity containing
// (x, y), or nil.
func (t *Table) TopmostAt(x, y float64) Entity {
	for _, e := range t.entities {
		if e.Contains(x, y) {
			return e
		}
	}
	return nil
}

// TopmostOtherAt is TopmostAt skipping one entity, used while that entity is
// being dragged over the others.
func (t *Table) TopmostOtherAt(x, y float64, skip Entity) Entity {
	for _, e := range t.entities {
		if e == skip {
			continue
		}
		if e.Contains(x, y) {
			return e
		}
	}
	return nil
}

// RaiseToTop moves an existing entity to index 0 without otherwise
// reordering. No-op if e is absent or already on top.
func (t *Table) RaiseToTop(e Entity) {
	i := t.indexOf(e)
	if i <= 0 {
		return
	}
	copy(t.entities[1:i+1], t.entities[:i])
	t.entities[0] = e
}

// Replace swaps old for with at old's z-order slot. Used by degeneration so
// the lone card keeps the group's depth. Panics if old is not present.
func (t *Table) Replace(old, with Entity) {
	i := t.indexOf(old)
	if i < 0 {
		panic("felt: replace of entity not on table")
	}
	t.entities[i] = with
}

// Merge atomically removes a and b and inserts merged at the top. The
// registry is never observable with a, b, and merged simultaneously live.
func (t *Table) Merge(a, b, merged Entity) {
	t.Remove(a)
	t.Remove(b)
	t.applyConfig(merged)
	t.insertTop(merged)
}

func (t *Table) insertTop(e Entity) {
	t.entities = append(t.entities, nil)
	copy(t.entities[1:], t.entities)
	t.entities[0] = e
}

func (t *Table) indexOf(e Entity) int {
	for i, x := range t.entities {
		if x == e {
			return i
		}
	}
	return -1
}
