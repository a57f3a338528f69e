package panzoom

import "slices"

type injectKind uint8

const (
	injectPress injectKind = iota
	injectMove
	injectRelease
	injectWheel
	injectTouches
)

// syntheticEvent represents a single injected input event. Screen
// coordinates are used, identical to real input.
type syntheticEvent struct {
	kind    injectKind
	pos     Vec2
	wheel   WheelEvent
	touches []TouchPoint
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next Update.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: injectPress, pos: Vec2{x, y}})
}

// InjectMove queues a pointer move with the button held. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: injectMove, pos: Vec2{x, y}})
}

// InjectRelease queues a button release at the given screen coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: injectRelease, pos: Vec2{x, y}})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel event with DOM-signed pixel deltas at the
// given cursor position. The timestamp is taken when the event is consumed.
func (in *Input) InjectWheel(x, y, dx, dy float64, ctrl bool) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{
		kind:  injectWheel,
		wheel: WheelEvent{DeltaX: dx, DeltaY: dy, Ctrl: ctrl, Position: Vec2{x, y}},
	})
}

// InjectTouches queues one frame in which exactly touches are down. An empty
// slice lifts every finger.
func (in *Input) InjectTouches(touches ...TouchPoint) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{
		kind:    injectTouches,
		touches: slices.Clone(touches),
	})
}

// InjectTap queues a single-finger tap: touch down then up. Consumes two
// frames.
func (in *Input) InjectTap(x, y float64) {
	in.InjectTouches(TouchPoint{ID: 1, Position: Vec2{x, y}})
	in.InjectTouches()
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy)
// whose finger distance goes from fromDist to toDist over frames frames,
// followed by a frame lifting both fingers. Minimum frames is 2.
func (in *Input) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		d := fromDist + (toDist-fromDist)*float64(i)/float64(frames-1)
		in.InjectTouches(
			TouchPoint{ID: 1, Position: Vec2{cx - d/2, cy}},
			TouchPoint{ID: 2, Position: Vec2{cx + d/2, cy}},
		)
	}
	in.InjectTouches()
}

// Pending returns the number of queued synthetic events.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same paths as real input. Returns true if an event was
// consumed (real input is skipped for the tick).
func (in *Input) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue[len(in.injectQueue)-1] = syntheticEvent{}
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	switch evt.kind {
	case injectPress:
		in.press(evt.pos)
	case injectMove:
		in.move(evt.pos)
	case injectRelease:
		in.release(evt.pos)
	case injectWheel:
		ev := evt.wheel
		ev.Time = in.now()
		in.ctrl.Wheel(ev)
	case injectTouches:
		in.applyTouches(evt.touches)
	}
	return true
}
