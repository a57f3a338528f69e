package panzoom

// EventSink is the interface for optional ECS integration.
// When set on a Controller, viewport events are forwarded to it.
type EventSink interface {
	EmitEvent(event ViewportEvent)
}

// ViewportEvent describes one change of the viewport or one gesture
// boundary.
type ViewportEvent struct {
	Type EventType
	// State is the view after the change.
	State State
	// Pan fields (valid for EventPan)
	DeltaX float64
	DeltaY float64
	// Zoom fields (valid for EventZoom)
	Amount float64
	About  Vec2
	// Source is the input the change came from.
	Source InputSource
}

// InputSource identifies which device produced an event.
type InputSource uint8

const (
	SourceProgram InputSource = iota // API call (reset, recenter, animation)
	SourceMouse                      // mouse drag
	SourceWheel                      // mouse wheel or trackpad
	SourceTouch                      // touch pan or pinch
)

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(ViewportEvent)
}

type handlerRegistry struct {
	byType [eventTypeCount][]eventHandler
	any    []eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
	any   bool
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if h.any {
		h.reg.any = removeEventHandler(h.reg.any, h.id)
		return
	}
	if h.event < eventTypeCount {
		h.reg.byType[h.event] = removeEventHandler(h.reg.byType[h.event], h.id)
	}
}

func removeEventHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// On registers a callback for one event type.
func (c *Controller) On(event EventType, fn func(ViewportEvent)) CallbackHandle {
	if event >= eventTypeCount {
		return CallbackHandle{}
	}
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.byType[event] = append(c.handlers.byType[event], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: event}
}

// OnChange registers a callback for every event.
func (c *Controller) OnChange(fn func(ViewportEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.any = append(c.handlers.any, eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, any: true}
}

// SetEventSink sets the optional ECS bridge.
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

func (c *Controller) emit(ev ViewportEvent) {
	ev.State = c.state
	if c.debug {
		Logger().Debug("viewport event",
			"type", ev.Type.String(),
			"x", ev.State.X, "y", ev.State.Y, "scale", ev.State.Scale)
	}
	for _, h := range c.handlers.byType[ev.Type] {
		h.fn(ev)
	}
	for _, h := range c.handlers.any {
		h.fn(ev)
	}
	if c.sink != nil {
		c.sink.EmitEvent(ev)
	}
}
