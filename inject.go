package felt

// syntheticPointerEvent is a single injected pointer event, consumed one per
// Tick so multi-step gestures land on distinct timestamps.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  Button
}

// InjectPress queues a primary-button press at (x, y). The event is
// consumed on the next Tick.
func (t *Table) InjectPress(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: ButtonPrimary,
	})
}

// InjectPressButton queues a press with an explicit button.
func (t *Table) InjectPressButton(x, y float64, button Button) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: button,
	})
}

// InjectMove queues a pointer move to (x, y) with the button held. Use
// between InjectPress and InjectRelease to simulate a drag.
func (t *Table) InjectMove(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: ButtonPrimary,
	})
}

// InjectRelease queues a pointer release at (x, y).
func (t *Table) InjectRelease(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: false, button: ButtonPrimary,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (t *Table) InjectClick(x, y float64) {
	t.InjectPress(x, y)
	t.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), interpolated
// moves ending exactly at (toX, toY), then a release. The release itself
// carries no position, so the last move is the drop point. The sequence
// consumes `frames` ticks; minimum is 2 (press + release).
func (t *Table) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	t.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		t.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
	t.InjectRelease(toX, toY)
}

// processInjectedInput pops one queued event and feeds it through the same
// entry points real input uses, stamped with the table clock.
func (t *Table) processInjectedInput() {
	if len(t.injectQueue) == 0 {
		return
	}
	evt := t.injectQueue[0]
	copy(t.injectQueue, t.injectQueue[1:])
	t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]

	switch {
	case evt.pressed && !t.injectDown:
		t.PointerDown(evt.x, evt.y, evt.button, t.Now())
	case evt.pressed && t.injectDown:
		t.PointerMove(evt.x, evt.y, evt.x-t.injectX, evt.y-t.injectY)
	case !evt.pressed && t.injectDown:
		t.PointerUp()
	}
	t.injectDown = evt.pressed
	t.injectX = evt.x
	t.injectY = evt.y
}

// InjectPending reports whether queued synthetic events remain.
func (t *Table) InjectPending() bool {
	return len(t.injectQueue) > 0
}
