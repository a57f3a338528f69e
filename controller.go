package panzoom

import "fmt"

// Controller owns the viewport State and routes every input event through
// the classifier and gesture handlers. It is the only writer of the state:
// each mutation is clamped to the scale limits and then turned into one
// coalesced render request.
//
// Controller is not safe for concurrent use; call it from the goroutine that
// runs the host's event loop.
type Controller struct {
	cfg    Config
	limits Limits
	state  State

	scheduler  *RenderScheduler
	classifier *Classifier
	mouse      *PointerHandler
	touch      *TouchHandler

	// lastPress is the source of the most recent press, consulted by Click.
	lastPress InputSource

	handlers handlerRegistry
	sink     EventSink
	anim     *viewAnim
	debug    bool
}

// NewController creates a controller with the view at the origin, scale 1,
// rendering into sink on frames from clock. The first frame is requested
// immediately so the host draws the initial view.
func NewController(cfg Config, clock FrameClock, sink RenderSink) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	if clock == nil {
		return nil, fmt.Errorf("new controller: nil frame clock")
	}
	c := &Controller{
		cfg:        cfg,
		limits:     cfg.Limits(),
		classifier: NewClassifier(cfg),
		mouse:      NewPointerHandler(cfg.DragThreshold),
		touch:      NewTouchHandler(cfg.DragThreshold, cfg.TouchPinchSensitivity),
	}
	c.state.Reset()
	c.state.Scale = c.limits.ClampScale(c.state.Scale)
	c.scheduler = NewRenderScheduler(clock, &c.state, sink)
	c.scheduler.RequestRender()
	return c, nil
}

// State returns a copy of the current view.
func (c *Controller) State() State {
	return c.state
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Limits returns the scale bounds.
func (c *Controller) Limits() Limits {
	return c.limits
}

// Scheduler returns the render scheduler.
func (c *Controller) Scheduler() *RenderScheduler {
	return c.scheduler
}

// SetDebugMode enables or disables debug logging of gestures and events
// through the package logger.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// commit clamps next, stores it if it differs from the current view, emits
// ev and requests a render. Input from a device interrupts any animation.
func (c *Controller) commit(next State, ev ViewportEvent) bool {
	next.Scale = c.limits.ClampScale(next.Scale)
	if !finite(next.X, next.Y) || next == c.state {
		return false
	}
	if ev.Source != SourceProgram {
		c.anim = nil
	}
	c.state = next
	c.emit(ev)
	c.scheduler.RequestRender()
	return true
}

// --- Wheel / trackpad ---

// Wheel classifies a wheel event and applies it. It returns the
// classification; GestureNone means the event was ignored.
func (c *Controller) Wheel(ev WheelEvent) Gesture {
	g := c.classifier.Classify(ev)
	if c.debug {
		Logger().Debug("wheel",
			"dx", ev.DeltaX, "dy", ev.DeltaY, "ctrl", ev.Ctrl,
			"gesture", g.Kind.String(), "locked", c.classifier.Locked(ev.Time))
	}
	next := c.state
	switch g.Kind {
	case GesturePan:
		if next.PanBy(g.DX, g.DY) {
			c.commit(next, ViewportEvent{Type: EventPan, DeltaX: g.DX, DeltaY: g.DY, Source: SourceWheel})
		}
	case GestureZoom:
		if next.ZoomAt(g.About, g.Amount, c.limits) {
			c.commit(next, ViewportEvent{Type: EventZoom, Amount: g.Amount, About: g.About, Source: SourceWheel})
		}
	}
	return g
}

// --- Mouse ---

// MouseDown handles a button press at pos. Only the primary button pans.
// target is the host's classification of what lies under pos. Reports
// whether a drag session started.
func (c *Controller) MouseDown(pos Vec2, button MouseButton, target PressTarget) bool {
	if button != MouseButtonLeft {
		return false
	}
	if !c.mouse.Press(pos, Vec2{c.state.X, c.state.Y}, target) {
		return false
	}
	c.lastPress = SourceMouse
	c.anim = nil
	c.emit(ViewportEvent{Type: EventDragStart, Source: SourceMouse})
	return true
}

// MouseMove handles pointer movement anywhere in the window. It reports
// whether the host must suppress the native default (text selection), which
// is the case for every move of an active drag.
func (c *Controller) MouseMove(pos Vec2) bool {
	next, ok := c.mouse.Move(pos)
	if !ok {
		return false
	}
	dx, dy := next.X-c.state.X, next.Y-c.state.Y
	c.commit(State{X: next.X, Y: next.Y, Scale: c.state.Scale},
		ViewportEvent{Type: EventPan, DeltaX: dx, DeltaY: dy, Source: SourceMouse})
	return true
}

// MouseUp handles a button release. Hosts must deliver releases observed
// anywhere, not only over the viewport.
func (c *Controller) MouseUp() {
	if c.mouse.Release() {
		c.emit(ViewportEvent{Type: EventDragEnd, Source: SourceMouse})
	}
}

// Click is called by the click handler of an interactive child after the
// release. It reports whether the click must be cancelled (default prevented
// and propagation stopped) because the press turned into a drag. It returns
// true at most once per press/release cycle.
func (c *Controller) Click() bool {
	var suppress bool
	switch c.lastPress {
	case SourceMouse:
		suppress = c.mouse.ConsumeClick()
	case SourceTouch:
		suppress = c.touch.ConsumeClick()
	}
	if suppress {
		c.emit(ViewportEvent{Type: EventClickSuppressed, Source: c.lastPress})
	}
	return suppress
}

// ClickAllowed settles the click that follows a release on target and
// reports whether the host should deliver it. Controls always keep their
// click; a link loses it when the press became a drag; canvas clicks are
// never delivered but still consume the pending suppression.
func (c *Controller) ClickAllowed(target PressTarget) bool {
	switch target {
	case TargetControl:
		return true
	case TargetLink:
		return !c.Click()
	}
	c.Click()
	return false
}

// Dragging reports whether a mouse drag is in progress.
func (c *Controller) Dragging() bool {
	return c.mouse.Dragging()
}

// Cursor returns the cursor the host should display over the viewport.
func (c *Controller) Cursor() CursorShape {
	if c.mouse.Dragging() {
		return CursorGrabbing
	}
	return CursorGrab
}

// --- Touch ---

// TouchStart handles new touches. touches holds every active touch; target
// classifies what lies under the new touch.
func (c *Controller) TouchStart(touches []TouchPoint, target PressTarget) {
	wasPanning, wasPinching := c.touch.Panning(), c.touch.Pinching()
	c.touch.Start(touches, Vec2{c.state.X, c.state.Y}, target)
	if c.touch.Panning() {
		c.lastPress = SourceTouch
		c.anim = nil
	}
	c.emitTouchTransitions(wasPanning, wasPinching)
}

// TouchMove handles touch movement and reports whether the host must
// suppress native scrolling and zooming.
func (c *Controller) TouchMove(touches []TouchPoint) bool {
	u := c.touch.Move(touches)
	switch u.Kind {
	case GesturePan:
		dx, dy := u.Position.X-c.state.X, u.Position.Y-c.state.Y
		c.commit(State{X: u.Position.X, Y: u.Position.Y, Scale: c.state.Scale},
			ViewportEvent{Type: EventPan, DeltaX: dx, DeltaY: dy, Source: SourceTouch})
	case GestureZoom:
		next := c.state
		if next.ZoomAt(u.About, u.Amount, c.limits) {
			c.commit(next, ViewportEvent{Type: EventZoom, Amount: u.Amount, About: u.About, Source: SourceTouch})
		}
	}
	return u.PreventDefault
}

// TouchEnd handles lifted touches. remaining holds the touches still down.
func (c *Controller) TouchEnd(remaining []TouchPoint) {
	wasPanning, wasPinching := c.touch.Panning(), c.touch.Pinching()
	c.touch.End(remaining)
	c.emitTouchTransitions(wasPanning, wasPinching)
}

// TouchCancel ends every touch session.
func (c *Controller) TouchCancel() {
	wasPanning, wasPinching := c.touch.Panning(), c.touch.Pinching()
	c.touch.Cancel()
	c.emitTouchTransitions(wasPanning, wasPinching)
}

// Pinching reports whether a two-finger pinch is in progress.
func (c *Controller) Pinching() bool {
	return c.touch.Pinching()
}

func (c *Controller) emitTouchTransitions(wasPanning, wasPinching bool) {
	panning, pinching := c.touch.Panning(), c.touch.Pinching()
	if wasPanning && !panning {
		c.emit(ViewportEvent{Type: EventDragEnd, Source: SourceTouch})
	}
	if wasPinching && !pinching {
		c.emit(ViewportEvent{Type: EventPinchEnd, Source: SourceTouch})
	}
	if panning && !wasPanning {
		c.emit(ViewportEvent{Type: EventDragStart, Source: SourceTouch})
	}
	if pinching && !wasPinching {
		c.emit(ViewportEvent{Type: EventPinchStart, Source: SourceTouch})
	}
}

// --- Programmatic operations ---

// Reset returns the view to the origin at scale 1 and requests a render,
// even when the view is already there.
func (c *Controller) Reset() {
	c.anim = nil
	c.state.Reset()
	c.state.Scale = c.limits.ClampScale(c.state.Scale)
	c.emit(ViewportEvent{Type: EventReset, Source: SourceProgram})
	c.scheduler.RequestRender()
}

// Recenter frames the canvas horizontally centered in a container of width
// viewportW, at the configured vertical offset and scale 1.
func (c *Controller) Recenter(viewportW, canvasW float64) {
	if !finite(viewportW, canvasW) {
		return
	}
	c.anim = nil
	c.state.CenterOn(viewportW, canvasW, c.cfg.RecenterOffsetY)
	c.state.Scale = c.limits.ClampScale(c.state.Scale)
	c.emit(ViewportEvent{Type: EventRecenter, Source: SourceProgram})
	c.scheduler.RequestRender()
}

// ZoomAt changes the scale by amount about a screen point.
func (c *Controller) ZoomAt(about Vec2, amount float64) bool {
	if !finite(about.X, about.Y, amount) {
		return false
	}
	next := c.state
	if !next.ZoomAt(about, amount, c.limits) {
		return false
	}
	return c.commit(next, ViewportEvent{Type: EventZoom, Amount: amount, About: about, Source: SourceProgram})
}

// PanBy moves the view by (dx, dy) screen pixels.
func (c *Controller) PanBy(dx, dy float64) bool {
	next := c.state
	if !next.PanBy(dx, dy) {
		return false
	}
	return c.commit(next, ViewportEvent{Type: EventPan, DeltaX: dx, DeltaY: dy, Source: SourceProgram})
}
