package panzoom

import "math"

// Limits bounds the zoom factor of a viewport.
type Limits struct {
	Min, Max float64
}

// ClampScale restricts v to [Min, Max]. A NaN candidate clamps to Min so the
// bound holds unconditionally.
func (l Limits) ClampScale(v float64) float64 {
	if math.IsNaN(v) {
		return l.Min
	}
	return math.Min(math.Max(v, l.Min), l.Max)
}

// State is the pan/zoom record of a viewport. X and Y are the canvas
// translation in screen pixels; Scale is the uniform zoom factor.
//
// The canvas is drawn with translate(X, Y) scale(Scale), so a world point p
// appears on screen at p*Scale + (X, Y).
type State struct {
	X, Y  float64
	Scale float64
}

// Reset returns the view to the origin at scale 1.
func (s *State) Reset() {
	*s = State{Scale: 1}
}

// CenterOn frames a canvas of width canvasW horizontally centered in a
// viewport of width viewportW, offsetY pixels from the top, at scale 1.
// Works for canvases both narrower and wider than the viewport.
func (s *State) CenterOn(viewportW, canvasW, offsetY float64) {
	s.X = (viewportW - canvasW) / 2
	s.Y = offsetY
	s.Scale = 1
}

// ZoomAt changes the scale by amount while keeping the world point under the
// screen position about visually fixed. The new scale is clamped to l. When
// clamping leaves the scale unchanged the translation is not recomputed, so
// repeated over-zoom attempts cannot drift the view. Reports whether the
// state changed.
func (s *State) ZoomAt(about Vec2, amount float64, l Limits) bool {
	old := s.Scale
	next := l.ClampScale(old + amount)
	if next == old {
		return false
	}
	world := ScreenToWorld(about, *s)
	s.X = about.X - world.X*next
	s.Y = about.Y - world.Y*next
	s.Scale = next
	return true
}

// PanBy moves the view by (dx, dy) screen pixels.
func (s *State) PanBy(dx, dy float64) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	s.X += dx
	s.Y += dy
	return true
}

// PanTo places the canvas translation at (x, y).
func (s *State) PanTo(x, y float64) bool {
	if s.X == x && s.Y == y {
		return false
	}
	s.X = x
	s.Y = y
	return true
}
