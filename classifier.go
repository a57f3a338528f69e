package panzoom

import (
	"math"
	"time"
)

// WheelEvent is a wheel or trackpad scroll event in DOM conventions:
// positive DeltaY scrolls the content up (the finger or wheel moves down).
type WheelEvent struct {
	DeltaX, DeltaY float64
	// Ctrl is set for ctrl+wheel, which is also how hosts report a trackpad
	// pinch.
	Ctrl bool
	// Position is the cursor position in screen coordinates.
	Position Vec2
	// Time is the event timestamp on any monotonic clock. Only differences
	// between timestamps matter.
	Time time.Duration
}

// GestureKind is the intent a wheel event was classified as.
type GestureKind uint8

const (
	GestureNone GestureKind = iota // unclassifiable input, ignored
	GesturePan                     // translate the view
	GestureZoom                    // change the scale about a point
)

func (k GestureKind) String() string {
	switch k {
	case GesturePan:
		return "pan"
	case GestureZoom:
		return "zoom"
	default:
		return "none"
	}
}

// Gesture is the result of classifying a wheel event.
type Gesture struct {
	Kind GestureKind
	// DX, DY are the screen-space translation for GesturePan.
	DX, DY float64
	// Amount is the signed scale change for GestureZoom, applied about About.
	Amount float64
	About  Vec2
	// Trackpad reports whether the event itself looked like trackpad input
	// (as opposed to a pan forced by the trackpad lock).
	Trackpad bool
}

// Classifier decides whether wheel events pan or zoom. It keeps a short-lived
// trackpad lock so one mouse-wheel-like delta in the middle of a trackpad pan
// does not flash a zoom.
type Classifier struct {
	pinchSensitivity float64
	wheelSensitivity float64
	threshold        float64
	lockDuration     time.Duration

	lockArmed bool
	lockUntil time.Duration
}

// NewClassifier creates a classifier from the sensitivities and thresholds
// in cfg.
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{
		pinchSensitivity: cfg.PinchSensitivity,
		wheelSensitivity: cfg.WheelSensitivity,
		threshold:        cfg.TrackpadDeltaThreshold,
		lockDuration:     cfg.LockDuration(),
	}
}

// Classify returns the intent of ev. Rules, in order:
//
//  1. ctrl held: zoom by -DeltaY * pinch sensitivity.
//  2. any horizontal delta, or a vertical delta under the threshold, is a
//     trackpad: (re)arm the lock and pan 1:1.
//  3. while the lock is armed, pan anyway.
//  4. otherwise it is a mouse wheel: zoom by -DeltaY * wheel sensitivity.
//
// Zooms are about the cursor position. Non-finite input yields GestureNone.
func (c *Classifier) Classify(ev WheelEvent) Gesture {
	if !finite(ev.DeltaX, ev.DeltaY, ev.Position.X, ev.Position.Y) {
		return Gesture{}
	}

	if ev.Ctrl {
		return Gesture{
			Kind:   GestureZoom,
			Amount: -ev.DeltaY * c.pinchSensitivity,
			About:  ev.Position,
		}
	}

	if math.Abs(ev.DeltaX) > 0 || math.Abs(ev.DeltaY) < c.threshold {
		c.lockArmed = true
		c.lockUntil = ev.Time + c.lockDuration
		return Gesture{Kind: GesturePan, DX: -ev.DeltaX, DY: -ev.DeltaY, Trackpad: true}
	}

	if c.Locked(ev.Time) {
		return Gesture{Kind: GesturePan, DX: -ev.DeltaX, DY: -ev.DeltaY}
	}

	return Gesture{
		Kind:   GestureZoom,
		Amount: -ev.DeltaY * c.wheelSensitivity,
		About:  ev.Position,
	}
}

// Locked reports whether the trackpad lock is still active at now.
func (c *Classifier) Locked(now time.Duration) bool {
	return c.lockArmed && now < c.lockUntil
}

// ReleaseLock drops the trackpad lock immediately.
func (c *Classifier) ReleaseLock() {
	c.lockArmed = false
	c.lockUntil = 0
}
