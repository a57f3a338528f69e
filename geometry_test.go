package panzoom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Vec2
		want float64
	}{
		{Vec2{0, 0}, Vec2{3, 4}, 5},
		{Vec2{1, 1}, Vec2{1, 1}, 0},
		{Vec2{-2, 0}, Vec2{2, 0}, 4},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); !approxEqual(got, tt.want, epsilon) {
			t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(Vec2{0, 100}, Vec2{200, 50})
	if got != (Vec2{100, 75}) {
		t.Errorf("Midpoint = %v, want {100 75}", got)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	views := []State{
		{X: 0, Y: 0, Scale: 1},
		{X: 120, Y: -40, Scale: 2.5},
		{X: -300, Y: 75, Scale: 0.5},
	}
	points := []Vec2{{0, 0}, {400, 300}, {-17.5, 903}}
	for _, s := range views {
		for _, p := range points {
			w := ScreenToWorld(p, s)
			back := WorldToScreen(w, s)
			if !approxEqual(back.X, p.X, epsilon) || !approxEqual(back.Y, p.Y, epsilon) {
				t.Errorf("view %+v: %v -> %v -> %v", s, p, w, back)
			}
		}
	}
}

func TestScreenToWorld(t *testing.T) {
	w := ScreenToWorld(Vec2{300, 200}, State{X: 100, Y: 50, Scale: 2})
	if w != (Vec2{100, 75}) {
		t.Errorf("ScreenToWorld = %v, want {100 75}", w)
	}
}

func TestFinite(t *testing.T) {
	if !finite(0, -1, 1e300) {
		t.Error("finite values reported non-finite")
	}
	if finite(1, math.NaN()) {
		t.Error("NaN reported finite")
	}
	if finite(math.Inf(-1)) {
		t.Error("-Inf reported finite")
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a, b := Vec2{3, 4}, Vec2{1, -2}
	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %v", got)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventDragStart.String() != "drag-start" {
		t.Errorf("EventDragStart.String() = %q", EventDragStart.String())
	}
	if EventType(200).String() != "unknown" {
		t.Errorf("out of range String() = %q", EventType(200).String())
	}
}
