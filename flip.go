package felt

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flipAnimation squashes an entity's rendered width to zero and back while
// its face turns over. The logical face flips immediately on pointer-down;
// this is presentation only, applied by the draw list as a horizontal
// squash factor.
type flipAnimation struct {
	entity Entity
	seq    *gween.Sequence
	squash float64
	done   bool
}

func newFlipAnimation(e Entity, duration float32) *flipAnimation {
	half := duration / 2
	return &flipAnimation{
		entity: e,
		seq: gween.NewSequence(
			gween.New(1, 0, half, ease.InQuad),
			gween.New(0, 1, half, ease.OutQuad),
		),
		squash: 1,
	}
}

func (a *flipAnimation) update(dt float32) {
	if a.done {
		return
	}
	v, _, finished := a.seq.Update(dt)
	a.squash = float64(v)
	if finished {
		a.squash = 1
		a.done = true
	}
}

// startFlip begins (or restarts) the flip animation for e.
func (t *Table) startFlip(e Entity) {
	if t.cfg.FlipDuration <= 0 {
		return
	}
	for _, a := range t.flips {
		if a.entity == e {
			*a = *newFlipAnimation(e, float32(t.cfg.FlipDuration))
			return
		}
	}
	t.flips = append(t.flips, newFlipAnimation(e, float32(t.cfg.FlipDuration)))
}

// updateFlips advances all running flip animations and drops finished ones.
func (t *Table) updateFlips(dt float32) {
	kept := t.flips[:0]
	for _, a := range t.flips {
		a.update(dt)
		if !a.done {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(t.flips); i++ {
		t.flips[i] = nil
	}
	t.flips = kept
}

// squashFor returns the current flip squash factor for e, or 1 when no
// animation is running.
func (t *Table) squashFor(e Entity) float64 {
	for _, a := range t.flips {
		if a.entity == e {
			return a.squash
		}
	}
	return 1
}
