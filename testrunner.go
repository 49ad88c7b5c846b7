package felt

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one scripted pointer action. Coordinates are world-space
// pixels; which fields matter depends on the action.
type scriptStep struct {
	// Action is one of "press", "move", "release", "click", "drag",
	// "wait", or "screenshot".
	Action string `json:"action"`

	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	// Drag endpoints and duration.
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`

	// Label names a screenshot file.
	Label string `json:"label,omitempty"`
}

// TestRunner replays a JSON gesture script against a table, one action at a
// time, letting each gesture's injected events drain before the next fires.
// Call Step once per Tick.
type TestRunner struct {
	// Screenshots, when set, receives the "screenshot" actions.
	Screenshots *Renderer

	steps []scriptStep
	next  int
	wait  int
	done  bool
}

// LoadTestScript parses a JSON gesture script, {"steps": [...]}.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("load test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("load test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether the whole script has been replayed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one tick. It is a no-op while earlier
// injected events are still queued or a "wait" is counting down; otherwise
// it fires the next action.
func (r *TestRunner) Step(t *Table) {
	if r.done || t.InjectPending() {
		return
	}
	if r.wait > 0 {
		r.wait--
		return
	}
	if r.next == len(r.steps) {
		r.done = true
		return
	}

	r.fire(t, r.steps[r.next])
	r.next++

	if r.next == len(r.steps) && r.wait == 0 && !t.InjectPending() {
		r.done = true
	}
}

func (r *TestRunner) fire(t *Table, st scriptStep) {
	switch st.Action {
	case "press":
		t.InjectPress(st.X, st.Y)
	case "move":
		t.InjectMove(st.X, st.Y)
	case "release":
		t.InjectRelease(st.X, st.Y)
	case "click":
		t.InjectClick(st.X, st.Y)
	case "drag":
		t.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		// The tick that fired this step already counts toward the wait.
		if st.Frames > 1 {
			r.wait = st.Frames - 1
		}
	case "screenshot":
		if r.Screenshots != nil {
			r.Screenshots.Screenshot(st.Label)
		}
	default:
		t.debugf("test runner: unknown action %q", st.Action)
	}
}
