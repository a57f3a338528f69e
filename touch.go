package panzoom

// TouchPoint is one active touch in screen coordinates.
type TouchPoint struct {
	ID       int
	Position Vec2
}

// PinchSession is the transient state of a two-finger pinch.
type PinchSession struct {
	Active bool
	// LastDistance is the finger distance at the previous move. Valid only
	// when HasDistance is set.
	LastDistance float64
	HasDistance  bool
	// Center is the midpoint of the two touches at the last move.
	Center Vec2
}

// TouchUpdate is what a touch move asks of the viewport.
type TouchUpdate struct {
	Kind GestureKind
	// Position is the new view translation for GesturePan.
	Position Vec2
	// Amount is the scale change for GestureZoom, applied about About.
	Amount float64
	About  Vec2
	// PreventDefault is set when the host must suppress native scrolling
	// and zooming for this event.
	PreventDefault bool
}

// TouchHandler implements single-finger pan and two-finger pinch-to-zoom.
// Pan and pinch are mutually exclusive.
type TouchHandler struct {
	pan         PointerHandler
	pinch       PinchSession
	sensitivity float64
}

// NewTouchHandler creates a handler using threshold for drag detection and
// sensitivity to convert finger distance changes into scale changes.
func NewTouchHandler(threshold, sensitivity float64) *TouchHandler {
	return &TouchHandler{
		pan:         PointerHandler{threshold: threshold},
		sensitivity: sensitivity,
	}
}

// Start handles touches appearing. touches holds every active touch. One
// touch starts a pan; a second touch ends any pan and starts a pinch. Touches
// on controls are ignored.
func (h *TouchHandler) Start(touches []TouchPoint, origin Vec2, target PressTarget) {
	if target == TargetControl {
		return
	}
	switch len(touches) {
	case 1:
		h.endPinch()
		h.pan.Press(touches[0].Position, origin, target)
	case 2:
		h.pan.Release()
		d := Distance(touches[0].Position, touches[1].Position)
		if !finite(d) {
			h.endPinch()
			return
		}
		h.pinch = PinchSession{
			Active:       true,
			LastDistance: d,
			HasDistance:  true,
			Center:       Midpoint(touches[0].Position, touches[1].Position),
		}
	default:
		h.pan.Release()
		h.endPinch()
	}
}

// Move handles touches moving and returns the requested view change.
func (h *TouchHandler) Move(touches []TouchPoint) TouchUpdate {
	u := TouchUpdate{PreventDefault: h.pan.Dragging() || len(touches) == 2}

	if len(touches) == 1 && h.pan.Dragging() {
		if next, ok := h.pan.Move(touches[0].Position); ok {
			u.Kind = GesturePan
			u.Position = next
		}
		return u
	}

	if len(touches) == 2 && h.pinch.Active && h.pinch.HasDistance {
		a, b := touches[0].Position, touches[1].Position
		d := Distance(a, b)
		if !finite(d) {
			return u
		}
		center := Midpoint(a, b)
		u.Kind = GestureZoom
		u.Amount = (d - h.pinch.LastDistance) * h.sensitivity
		u.About = center
		h.pinch.LastDistance = d
		h.pinch.Center = center
	}
	return u
}

// End handles touches lifting. remaining holds the touches still down. A
// pan ends when no touch remains; a pinch ends when fewer than two remain.
func (h *TouchHandler) End(remaining []TouchPoint) {
	if len(remaining) < 1 {
		h.pan.Release()
	}
	if len(remaining) < 2 {
		h.endPinch()
	}
}

// Cancel ends every session, as when the host aborts the touch sequence.
func (h *TouchHandler) Cancel() {
	h.pan.Release()
	h.endPinch()
}

func (h *TouchHandler) endPinch() {
	h.pinch = PinchSession{}
}

// Panning reports whether a single-finger pan is active.
func (h *TouchHandler) Panning() bool {
	return h.pan.Dragging()
}

// Pinching reports whether a pinch is active.
func (h *TouchHandler) Pinching() bool {
	return h.pinch.Active
}

// Pinch returns a copy of the current pinch session.
func (h *TouchHandler) Pinch() PinchSession {
	return h.pinch
}

// ConsumeClick reports whether the tap that follows the last touch pan must
// be cancelled. See PointerHandler.ConsumeClick.
func (h *TouchHandler) ConsumeClick() bool {
	return h.pan.ConsumeClick()
}
