package panzoom

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// ScreenToWorld converts a screen position to canvas (world) coordinates
// under the given view: world = (screen - translation) / scale.
func ScreenToWorld(p Vec2, s State) Vec2 {
	return Vec2{(p.X - s.X) / s.Scale, (p.Y - s.Y) / s.Scale}
}

// WorldToScreen converts canvas (world) coordinates to a screen position
// under the given view. It is the inverse of ScreenToWorld.
func WorldToScreen(p Vec2, s State) Vec2 {
	return Vec2{p.X*s.Scale + s.X, p.Y*s.Scale + s.Y}
}

// finite reports whether every value is neither NaN nor infinite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
