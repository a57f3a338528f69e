package panzoom

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestNewControllerErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinScale = 0
	if _, err := NewController(cfg, &manualClock{}, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid config: err = %v, want ErrInvalidConfig", err)
	}
	if _, err := NewController(DefaultConfig(), nil, nil); err == nil {
		t.Error("nil clock accepted")
	}
}

func TestNewControllerInitialRender(t *testing.T) {
	clock := &manualClock{}
	var renders []State
	c, err := NewController(DefaultConfig(), clock, func(s State) { renders = append(renders, s) })
	if err != nil {
		t.Fatal(err)
	}
	if c.State() != (State{Scale: 1}) {
		t.Errorf("initial state = %+v", c.State())
	}
	clock.flush()
	if len(renders) != 1 || renders[0] != (State{Scale: 1}) {
		t.Errorf("initial renders = %v, want one at the origin", renders)
	}
}

func TestNewControllerClampsInitialScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinScale, cfg.MaxScale = 1.5, 3
	c, _, _ := newTestControllerConfig(t, cfg)
	if c.State().Scale != 1.5 {
		t.Errorf("Scale = %v, want 1.5", c.State().Scale)
	}
}

func TestWheelZoomAboutCursor(t *testing.T) {
	c, clock, renders := newTestController(t)
	events := recordEvents(c)

	g := c.Wheel(WheelEvent{DeltaY: 100, Position: Vec2{400, 300}})
	if g.Kind != GestureZoom {
		t.Fatalf("Kind = %v, want zoom", g.Kind)
	}
	s := c.State()
	if !approxEqual(s.Scale, 0.9, epsilon) || !approxEqual(s.X, 40, epsilon) || !approxEqual(s.Y, 30, epsilon) {
		t.Errorf("state = %+v, want {40 30 0.9}", s)
	}
	if len(*events) != 1 || (*events)[0].Type != EventZoom || (*events)[0].Source != SourceWheel {
		t.Errorf("events = %+v", *events)
	}
	clock.flush()
	if len(*renders) != 1 || (*renders)[0] != s {
		t.Errorf("renders = %v, want [%v]", *renders, s)
	}
}

func TestWheelBurstRendersOnce(t *testing.T) {
	c, clock, renders := newTestController(t)
	for i := 0; i < 20; i++ {
		c.Wheel(WheelEvent{DeltaX: 1, DeltaY: 3})
	}
	if n := clock.flush(); n != 1 {
		t.Errorf("frames = %d, want 1", n)
	}
	if len(*renders) != 1 {
		t.Fatalf("renders = %d, want 1", len(*renders))
	}
	if got := (*renders)[0]; got.X != -20 || got.Y != -60 {
		t.Errorf("rendered %+v, want X=-20 Y=-60", got)
	}
}

func TestZoomPinnedAtBoundIsSilent(t *testing.T) {
	c, clock, renders := newTestController(t)
	for i := 0; i < 100; i++ {
		c.Wheel(WheelEvent{DeltaY: 5, Ctrl: true, Position: Vec2{100, 100}})
	}
	if c.State().Scale != 0.5 {
		t.Fatalf("Scale = %v, want 0.5", c.State().Scale)
	}
	clock.flush()
	*renders = (*renders)[:0]

	pinned := c.State()
	events := recordEvents(c)
	c.Wheel(WheelEvent{DeltaY: 50, Ctrl: true, Position: Vec2{700, 20}})
	if c.State() != pinned {
		t.Errorf("view drifted at the bound: %+v -> %+v", pinned, c.State())
	}
	if len(*events) != 0 || clock.flush() != 0 {
		t.Error("zoom past the bound emitted or rendered")
	}
}

func TestMouseDragPansAndSuppressesClick(t *testing.T) {
	c, clock, _ := newTestController(t)
	events := recordEvents(c)

	if !c.MouseDown(Vec2{100, 100}, MouseButtonLeft, TargetLink) {
		t.Fatal("MouseDown did not start a drag")
	}
	if c.Cursor() != CursorGrabbing {
		t.Error("cursor not grabbing during drag")
	}
	if !c.MouseMove(Vec2{150, 130}) {
		t.Error("move during drag must prevent the native default")
	}
	c.MouseUp()
	if c.Cursor() != CursorGrab {
		t.Error("cursor not restored after release")
	}

	if s := c.State(); s.X != 50 || s.Y != 30 {
		t.Errorf("state = %+v, want X=50 Y=30", s)
	}
	if !c.Click() {
		t.Error("click after drag not suppressed")
	}
	if c.Click() {
		t.Error("click suppressed twice")
	}

	want := []EventType{EventDragStart, EventPan, EventDragEnd, EventClickSuppressed}
	if got := eventTypes(*events); !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if clock.flush() != 1 {
		t.Error("drag did not render once")
	}
}

func TestMouseIgnoredInputs(t *testing.T) {
	c, _, _ := newTestController(t)
	if c.MouseDown(Vec2{0, 0}, MouseButtonRight, TargetCanvas) {
		t.Error("right button started a drag")
	}
	if c.MouseMove(Vec2{50, 50}) {
		t.Error("move without a drag prevented the native default")
	}
	if c.MouseDown(Vec2{0, 0}, MouseButtonLeft, TargetControl) {
		t.Error("press on a control started a drag")
	}
	if c.State() != (State{Scale: 1}) {
		t.Errorf("state changed: %+v", c.State())
	}
}

func TestClickAllowed(t *testing.T) {
	tests := []struct {
		name   string
		target PressTarget
		moveTo float64
		want   bool
	}{
		{"link click", TargetLink, 102, true},
		{"link after drag", TargetLink, 140, false},
		{"canvas click", TargetCanvas, 100, false},
		{"control", TargetControl, 140, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestController(t)
			c.MouseDown(Vec2{100, 100}, MouseButtonLeft, tt.target)
			c.MouseMove(Vec2{tt.moveTo, 100})
			c.MouseUp()
			if got := c.ClickAllowed(tt.target); got != tt.want {
				t.Errorf("ClickAllowed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResetAlwaysRenders(t *testing.T) {
	c, clock, renders := newTestController(t)
	events := recordEvents(c)
	c.Reset()
	if clock.flush() != 1 || len(*renders) != 1 {
		t.Errorf("Reset at the origin did not render")
	}
	if len(*events) != 1 || (*events)[0].Type != EventReset {
		t.Errorf("events = %+v", *events)
	}

	c.PanBy(30, 40)
	c.ZoomAt(Vec2{0, 0}, 1)
	c.Reset()
	if c.State() != (State{Scale: 1}) {
		t.Errorf("state after Reset = %+v", c.State())
	}
}

func TestRecenter(t *testing.T) {
	c, clock, renders := newTestController(t)
	c.ZoomAt(Vec2{10, 10}, 0.7)
	c.Recenter(1200, 800)
	if s := c.State(); s != (State{X: 200, Y: 50, Scale: 1}) {
		t.Errorf("Recenter = %+v, want {200 50 1}", s)
	}
	clock.flush()
	if len(*renders) != 1 {
		t.Errorf("renders = %d, want 1", len(*renders))
	}

	c.Recenter(800, 1200)
	if c.State().X != -200 {
		t.Errorf("wide canvas X = %v, want -200", c.State().X)
	}
	before := c.State()
	c.Recenter(math.NaN(), 100)
	if c.State() != before {
		t.Error("non-finite width changed the view")
	}
}

func TestProgrammaticRejectsNonFinite(t *testing.T) {
	c, clock, _ := newTestController(t)
	if c.ZoomAt(Vec2{math.NaN(), 0}, 0.5) {
		t.Error("ZoomAt accepted NaN")
	}
	if c.ZoomAt(Vec2{0, 0}, math.Inf(1)) {
		t.Error("ZoomAt accepted Inf")
	}
	if c.PanBy(math.Inf(1), 0) {
		t.Error("PanBy accepted Inf")
	}
	if c.State() != (State{Scale: 1}) || clock.flush() != 0 {
		t.Error("non-finite input changed or rendered the view")
	}
}

func TestTouchEventsThroughController(t *testing.T) {
	c, _, _ := newTestController(t)
	events := recordEvents(c)

	c.TouchStart([]TouchPoint{tp(1, 0, 100)}, TargetCanvas)
	if !c.TouchMove([]TouchPoint{tp(1, 20, 100)}) {
		t.Error("single-touch pan must prevent the native default")
	}
	c.TouchStart([]TouchPoint{tp(1, 20, 100), tp(2, 120, 100)}, TargetCanvas)
	if !c.Pinching() {
		t.Fatal("second touch did not start a pinch")
	}
	c.TouchMove([]TouchPoint{tp(1, 20, 100), tp(2, 220, 100)})
	c.TouchEnd([]TouchPoint{tp(1, 20, 100)})
	c.TouchEnd(nil)

	want := []EventType{
		EventDragStart, EventPan,
		EventDragEnd, EventPinchStart,
		EventZoom,
		EventPinchEnd,
	}
	if got := eventTypes(*events); !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if s := c.State(); !approxEqual(s.Scale, 1.25, epsilon) {
		t.Errorf("Scale = %v, want 1.25", s.Scale)
	}
}

func TestTouchDragSuppressesClick(t *testing.T) {
	c, _, _ := newTestController(t)
	c.TouchStart([]TouchPoint{tp(1, 0, 0)}, TargetLink)
	c.TouchMove([]TouchPoint{tp(1, 0, 40)})
	c.TouchEnd(nil)
	if c.ClickAllowed(TargetLink) {
		t.Error("tap after a touch drag was delivered")
	}
}

func TestTouchCancelEndsSessions(t *testing.T) {
	c, _, _ := newTestController(t)
	events := recordEvents(c)
	c.TouchStart([]TouchPoint{tp(1, 0, 0), tp(2, 50, 0)}, TargetCanvas)
	c.TouchCancel()
	if c.Pinching() {
		t.Error("pinch survived TouchCancel")
	}
	if got := eventTypes(*events); !slices.Equal(got, []EventType{EventPinchStart, EventPinchEnd}) {
		t.Errorf("events = %v", got)
	}
}

func TestResetIdempotent(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Wheel(WheelEvent{DeltaY: -300, Position: Vec2{50, 80}})
	c.PanBy(-40, 12)
	c.Reset()
	first := c.State()
	c.Reset()
	if first != (State{Scale: 1}) || c.State() != first {
		t.Errorf("Reset twice = %+v then %+v", first, c.State())
	}
}
