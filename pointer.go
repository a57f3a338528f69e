package panzoom

// DragSession is the transient state of one press/move/release cycle.
type DragSession struct {
	// Active is true between press and release.
	Active bool
	// Anchor is the pointer position at press, in screen coordinates.
	Anchor Vec2
	// Origin is the view translation at press.
	Origin Vec2
	// FarEnough becomes true once the pointer travels more than the drag
	// threshold from Anchor and stays true until the next press. It is read
	// after release to cancel the click that trails a drag.
	FarEnough bool
}

// PointerHandler turns press, move and release into pan positions.
// States: idle -> dragging -> idle.
type PointerHandler struct {
	threshold float64
	session   DragSession
	consumed  bool
}

// NewPointerHandler creates a handler that marks a drag once movement
// exceeds threshold pixels.
func NewPointerHandler(threshold float64) *PointerHandler {
	return &PointerHandler{threshold: threshold}
}

// Press starts a drag session at pos for a view currently translated to
// origin. Presses on controls are ignored so they keep their own behavior.
// Reports whether a session started.
func (h *PointerHandler) Press(pos, origin Vec2, target PressTarget) bool {
	if target == TargetControl || !finite(pos.X, pos.Y) {
		return false
	}
	h.session = DragSession{Active: true, Anchor: pos, Origin: origin}
	h.consumed = false
	return true
}

// Move returns the view translation that keeps the canvas under the pointer
// at pos. ok is false when no session is active.
func (h *PointerHandler) Move(pos Vec2) (next Vec2, ok bool) {
	if !h.session.Active || !finite(pos.X, pos.Y) {
		return Vec2{}, false
	}
	if !h.session.FarEnough && Distance(pos, h.session.Anchor) > h.threshold {
		h.session.FarEnough = true
	}
	offset := h.session.Anchor.Sub(h.session.Origin)
	return pos.Sub(offset), true
}

// Release ends the active session. FarEnough is kept for ConsumeClick.
// Reports whether a session was active.
func (h *PointerHandler) Release() bool {
	if !h.session.Active {
		return false
	}
	h.session.Active = false
	return true
}

// ConsumeClick reports whether the click following the last release must be
// cancelled because the pointer was dragged. It returns true at most once per
// press/release cycle.
func (h *PointerHandler) ConsumeClick() bool {
	if h.session.Active || h.consumed || !h.session.FarEnough {
		return false
	}
	h.consumed = true
	return true
}

// Dragging reports whether a session is active.
func (h *PointerHandler) Dragging() bool {
	return h.session.Active
}

// Session returns a copy of the current or last session.
func (h *PointerHandler) Session() DragSession {
	return h.session
}
