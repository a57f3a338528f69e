package panzoom

import (
	"encoding/json"
	"fmt"
	"os"
)

// testStep is a single action in a test script.
type testStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	DX       float64 `json:"dx,omitempty"`
	DY       float64 `json:"dy,omitempty"`
	Ctrl     bool    `json:"ctrl,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	Animated bool    `json:"animated,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"click": true, "drag": true, "wheel": true, "pinch": true, "tap": true,
	"reset": true, "recenter": true, "wait": true, "screenshot": true,
}

// TestRunner drives a Game with scripted synthetic input and screenshots,
// one step per tick. Pass it as RunConfig.Script.
//
// A script is JSON of the form
//
//	{"steps": [
//	  {"action": "drag", "fromX": 100, "fromY": 100, "toX": 300, "toY": 150, "frames": 10},
//	  {"action": "wheel", "x": 400, "y": 300, "dy": -120},
//	  {"action": "pinch", "x": 400, "y": 300, "fromDist": 100, "toDist": 300, "frames": 8},
//	  {"action": "reset", "animated": true},
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "after-reset"}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// LoadTestScriptFile reads and parses a JSON test script from path.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load test script: %w", err)
	}
	return LoadTestScript(data)
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from Game.Update before input
// is processed.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Let queued injections drain first.
	if g.input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	in := g.input
	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "click":
		in.InjectClick(st.X, st.Y)
	case "tap":
		in.InjectTap(st.X, st.Y)
	case "drag":
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		in.InjectWheel(st.X, st.Y, st.DX, st.DY, st.Ctrl)
	case "pinch":
		in.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, st.Frames)
	case "reset":
		if st.Animated {
			g.ctrl.ResetAnimated(nil)
		} else {
			g.ctrl.Reset()
		}
	case "recenter":
		if st.Animated {
			w, _ := g.canvas.Size()
			g.ctrl.RecenterAnimated(float64(g.width), w, nil)
		} else {
			g.Recenter()
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}
