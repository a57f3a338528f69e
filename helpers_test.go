package panzoom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// manualClock is a FrameClock whose frames fire only on flush.
type manualClock struct {
	fns []func()
}

func (c *manualClock) RequestFrame(fn func()) {
	c.fns = append(c.fns, fn)
}

func (c *manualClock) flush() int {
	fns := c.fns
	c.fns = nil
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// newTestController returns a controller on a manual clock with the initial
// frame already flushed. renders collects every state passed to the sink.
func newTestController(t *testing.T) (*Controller, *manualClock, *[]State) {
	t.Helper()
	return newTestControllerConfig(t, DefaultConfig())
}

func newTestControllerConfig(t *testing.T, cfg Config) (*Controller, *manualClock, *[]State) {
	t.Helper()
	clock := &manualClock{}
	renders := &[]State{}
	c, err := NewController(cfg, clock, func(s State) { *renders = append(*renders, s) })
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	clock.flush()
	*renders = (*renders)[:0]
	return c, clock, renders
}

// recordEvents collects every event emitted by c.
func recordEvents(c *Controller) *[]ViewportEvent {
	got := &[]ViewportEvent{}
	c.OnChange(func(ev ViewportEvent) { *got = append(*got, ev) })
	return got
}

func eventTypes(evs []ViewportEvent) []EventType {
	out := make([]EventType, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}
