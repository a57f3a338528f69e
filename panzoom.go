package panzoom

// Vec2 is a 2D vector used for screen positions, world positions and deltas.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// PressTarget classifies what lies under a press. The host UI decides;
// the viewport only reacts to the answer.
type PressTarget uint8

const (
	TargetCanvas  PressTarget = iota // empty canvas: press starts a pan
	TargetLink                       // interactive child: press starts a pan, click may be suppressed
	TargetControl                    // native control (button): press keeps its default behavior
)

// CursorShape is the pointer cursor the viewport asks the host to show.
type CursorShape uint8

const (
	CursorGrab     CursorShape = iota // idle, canvas can be grabbed
	CursorGrabbing                    // a mouse pan is in progress
)

// EventType identifies a kind of viewport event.
type EventType uint8

const (
	EventPan             EventType = iota // translation changed by a drag or trackpad pan
	EventZoom                             // scale changed by wheel, trackpad pinch or touch pinch
	EventReset                            // view reset to the origin at scale 1
	EventRecenter                         // view recentered for the current container width
	EventAnimate                          // an animated transition moved the view
	EventDragStart                        // a mouse or single-touch pan session began
	EventDragEnd                          // a pan session ended
	EventPinchStart                       // a two-finger pinch session began
	EventPinchEnd                         // a pinch session ended
	EventClickSuppressed                  // a click on an interactive child was cancelled after a drag

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"pan", "zoom", "reset", "recenter", "animate",
	"drag-start", "drag-end", "pinch-start", "pinch-end", "click-suppressed",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}
