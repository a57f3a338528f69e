package gioinput

import (
	"math"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/phanxgames/panzoom"
)

type manualClock struct{ fns []func() }

func (c *manualClock) RequestFrame(fn func()) { c.fns = append(c.fns, fn) }

func newAdapter(t *testing.T) (*Adapter, *panzoom.Controller) {
	t.Helper()
	ctrl, err := panzoom.NewController(panzoom.DefaultConfig(), &manualClock{}, func(panzoom.State) {})
	if err != nil {
		t.Fatal(err)
	}
	return New(ctrl), ctrl
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func mouse(kind pointer.Kind, x, y float32, buttons pointer.Buttons) pointer.Event {
	return pointer.Event{Kind: kind, Source: pointer.Mouse, Position: f32.Pt(x, y), Buttons: buttons}
}

func touch(kind pointer.Kind, id pointer.ID, x, y float32) pointer.Event {
	return pointer.Event{Kind: kind, Source: pointer.Touch, PointerID: id, Position: f32.Pt(x, y)}
}

func TestMouseDragPans(t *testing.T) {
	a, ctrl := newAdapter(t)
	a.Handle(mouse(pointer.Press, 100, 100, pointer.ButtonPrimary))
	if !a.Handle(mouse(pointer.Drag, 150, 120, pointer.ButtonPrimary)) {
		t.Error("drag move should be consumed")
	}
	a.Handle(mouse(pointer.Release, 150, 120, 0))

	s := ctrl.State()
	if s.X != 50 || s.Y != 20 {
		t.Errorf("state = (%v, %v), want (50, 20)", s.X, s.Y)
	}
	if ctrl.Dragging() {
		t.Error("drag should end on release")
	}
}

func TestSecondaryButtonIgnored(t *testing.T) {
	a, ctrl := newAdapter(t)
	a.Handle(mouse(pointer.Press, 100, 100, pointer.ButtonSecondary))
	a.Handle(mouse(pointer.Drag, 200, 200, pointer.ButtonSecondary))
	if s := ctrl.State(); s.X != 0 || s.Y != 0 {
		t.Errorf("secondary drag moved view to (%v, %v)", s.X, s.Y)
	}
}

func TestLinkClickDelivery(t *testing.T) {
	tests := []struct {
		name  string
		dragX float32
		want  int
	}{
		{"plain click", 100, 1},
		{"within threshold", 104, 1},
		{"after drag", 160, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newAdapter(t)
			a.Target = func(panzoom.Vec2) panzoom.PressTarget { return panzoom.TargetLink }
			clicks := 0
			a.OnClick = func(panzoom.Vec2, panzoom.PressTarget) { clicks++ }

			a.Handle(mouse(pointer.Press, 100, 100, pointer.ButtonPrimary))
			a.Handle(mouse(pointer.Drag, tt.dragX, 100, pointer.ButtonPrimary))
			a.Handle(mouse(pointer.Release, tt.dragX, 100, 0))
			if clicks != tt.want {
				t.Errorf("clicks = %d, want %d", clicks, tt.want)
			}
		})
	}
}

func TestControlPressDoesNotDrag(t *testing.T) {
	a, ctrl := newAdapter(t)
	a.Target = func(panzoom.Vec2) panzoom.PressTarget { return panzoom.TargetControl }
	clicks := 0
	a.OnClick = func(panzoom.Vec2, panzoom.PressTarget) { clicks++ }

	a.Handle(mouse(pointer.Press, 10, 10, pointer.ButtonPrimary))
	a.Handle(mouse(pointer.Drag, 80, 80, pointer.ButtonPrimary))
	a.Handle(mouse(pointer.Release, 80, 80, 0))

	if s := ctrl.State(); s.X != 0 || s.Y != 0 {
		t.Errorf("control press panned to (%v, %v)", s.X, s.Y)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestScrollClassification(t *testing.T) {
	t.Run("small delta pans", func(t *testing.T) {
		a, ctrl := newAdapter(t)
		a.Handle(pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, 10), Position: f32.Pt(50, 50)})
		if s := ctrl.State(); s.Y != -10 || s.Scale != 1 {
			t.Errorf("state = %+v, want Y=-10 scale=1", s)
		}
	})
	t.Run("large delta zooms about cursor", func(t *testing.T) {
		a, ctrl := newAdapter(t)
		a.Handle(pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, 100), Position: f32.Pt(200, 100)})
		s := ctrl.State()
		if !approxEqual(s.Scale, 0.9, 1e-9) {
			t.Errorf("scale = %v, want 0.9", s.Scale)
		}
		if !approxEqual(s.X, 20, 1e-9) || !approxEqual(s.Y, 10, 1e-9) {
			t.Errorf("translation = (%v, %v), want (20, 10)", s.X, s.Y)
		}
	})
	t.Run("ctrl pinch zooms", func(t *testing.T) {
		a, ctrl := newAdapter(t)
		a.Handle(pointer.Event{
			Kind: pointer.Scroll, Scroll: f32.Pt(0, -20), Position: f32.Pt(0, 0),
			Modifiers: key.ModCtrl, Time: time.Second,
		})
		if s := ctrl.State(); !approxEqual(s.Scale, 1.1, 1e-9) {
			t.Errorf("scale = %v, want 1.1", s.Scale)
		}
	})
}

func TestTouchPanAndPinch(t *testing.T) {
	a, ctrl := newAdapter(t)

	a.Handle(touch(pointer.Press, 1, 10, 10))
	if !a.Handle(touch(pointer.Drag, 1, 40, 10)) {
		t.Error("single-finger pan should be consumed")
	}
	if s := ctrl.State(); s.X != 30 {
		t.Fatalf("X = %v, want 30", s.X)
	}

	a.Handle(touch(pointer.Release, 1, 40, 10))
	if a.Touches() != 0 {
		t.Fatalf("touches = %d, want 0", a.Touches())
	}
	ctrl.Reset()

	a.Handle(touch(pointer.Press, 1, 0, 100))
	a.Handle(touch(pointer.Press, 2, 100, 100))
	if !ctrl.Pinching() {
		t.Fatal("second finger should start a pinch")
	}
	a.Handle(touch(pointer.Drag, 2, 200, 100))

	s := ctrl.State()
	if !approxEqual(s.Scale, 1.25, 1e-9) {
		t.Errorf("scale = %v, want 1.25", s.Scale)
	}
	if !approxEqual(s.X, -25, 1e-9) || !approxEqual(s.Y, -25, 1e-9) {
		t.Errorf("translation = (%v, %v), want (-25, -25)", s.X, s.Y)
	}

	a.Handle(touch(pointer.Release, 2, 200, 100))
	if ctrl.Pinching() {
		t.Error("pinch should end when a finger lifts")
	}
}

func TestTouchCancel(t *testing.T) {
	a, ctrl := newAdapter(t)
	a.Handle(touch(pointer.Press, 1, 0, 0))
	a.Handle(touch(pointer.Press, 2, 50, 0))
	a.Handle(pointer.Event{Kind: pointer.Cancel, Source: pointer.Touch})
	if a.Touches() != 0 || ctrl.Pinching() {
		t.Errorf("cancel left touches=%d pinching=%v", a.Touches(), ctrl.Pinching())
	}
}

func TestTapOnLinkDeliversClick(t *testing.T) {
	a, _ := newAdapter(t)
	a.Target = func(panzoom.Vec2) panzoom.PressTarget { return panzoom.TargetLink }
	clicks := 0
	a.OnClick = func(panzoom.Vec2, panzoom.PressTarget) { clicks++ }

	a.Handle(touch(pointer.Press, 1, 10, 10))
	a.Handle(touch(pointer.Release, 1, 10, 10))
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestFilterKinds(t *testing.T) {
	f := Filter(t)
	for _, k := range []pointer.Kind{pointer.Press, pointer.Drag, pointer.Release, pointer.Scroll, pointer.Cancel} {
		if f.Kinds&k == 0 {
			t.Errorf("filter missing kind %v", k)
		}
	}
	if f.ScrollY.Min >= 0 || f.ScrollY.Max <= 0 {
		t.Errorf("scroll range %+v excludes both directions", f.ScrollY)
	}
}
