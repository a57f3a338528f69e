// Package gioinput feeds Gio pointer events to a panzoom Controller.
//
// Register a filter for the viewport area and hand every event to the
// adapter:
//
//	event.Op(gtx.Ops, tag)
//	for {
//		ev, ok := gtx.Event(gioinput.Filter(tag))
//		if !ok {
//			break
//		}
//		if pe, ok := ev.(pointer.Event); ok {
//			adapter.Handle(pe)
//		}
//	}
//
// Gio reports scroll amounts in pixels with positive Y meaning "scroll
// down", the same convention the wheel classifier expects, so deltas are
// forwarded unchanged.
package gioinput

import (
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/phanxgames/panzoom"
)

// scrollBound is the largest scroll amount a filter accepts per event.
const scrollBound = 1 << 20

// Filter returns the pointer filter the adapter needs for tag.
func Filter(tag event.Tag) pointer.Filter {
	return pointer.Filter{
		Target:  tag,
		Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll | pointer.Cancel,
		ScrollX: pointer.ScrollRange{Min: -scrollBound, Max: scrollBound},
		ScrollY: pointer.ScrollRange{Min: -scrollBound, Max: scrollBound},
	}
}

// Adapter translates Gio pointer events into Controller calls. Mouse events
// drive the drag handler, touch events the touch handler, scroll events the
// wheel classifier.
type Adapter struct {
	ctrl *panzoom.Controller

	// Target classifies press positions. Nil treats everything as canvas.
	Target panzoom.TargetFunc
	// OnClick receives clicks on links and controls that survived the drag
	// check.
	OnClick panzoom.ClickFunc

	mouseDown   bool
	pressTarget panzoom.PressTarget

	touches     []panzoom.TouchPoint
	touchTarget panzoom.PressTarget
	touchMulti  bool
}

// New creates an adapter for ctrl.
func New(ctrl *panzoom.Controller) *Adapter {
	return &Adapter{ctrl: ctrl}
}

// Handle processes one pointer event. It reports whether the event was
// consumed by the viewport, i.e. whether other widgets must not act on it.
func (a *Adapter) Handle(ev pointer.Event) bool {
	if ev.Kind == pointer.Scroll {
		g := a.ctrl.Wheel(panzoom.WheelEvent{
			DeltaX:   float64(ev.Scroll.X),
			DeltaY:   float64(ev.Scroll.Y),
			Ctrl:     ev.Modifiers.Contain(key.ModCtrl),
			Position: vec(ev.Position),
			Time:     ev.Time,
		})
		return g.Kind != panzoom.GestureNone
	}
	if ev.Source == pointer.Touch {
		return a.handleTouch(ev)
	}
	return a.handleMouse(ev)
}

func (a *Adapter) handleMouse(ev pointer.Event) bool {
	pos := vec(ev.Position)
	switch ev.Kind {
	case pointer.Press:
		if !ev.Buttons.Contain(pointer.ButtonPrimary) || a.mouseDown {
			return false
		}
		a.mouseDown = true
		a.pressTarget = a.target(pos)
		return a.ctrl.MouseDown(pos, panzoom.MouseButtonLeft, a.pressTarget)
	case pointer.Drag:
		if !a.mouseDown {
			return false
		}
		return a.ctrl.MouseMove(pos)
	case pointer.Release:
		if !a.mouseDown || ev.Buttons.Contain(pointer.ButtonPrimary) {
			return false
		}
		a.mouseDown = false
		a.ctrl.MouseMove(pos)
		a.ctrl.MouseUp()
		a.click(pos, a.pressTarget)
		return true
	case pointer.Cancel:
		if a.mouseDown {
			a.mouseDown = false
			a.ctrl.MouseUp()
		}
	}
	return false
}

func (a *Adapter) handleTouch(ev pointer.Event) bool {
	id := int(ev.PointerID)
	pos := vec(ev.Position)
	switch ev.Kind {
	case pointer.Press:
		target := a.target(pos)
		if len(a.touches) == 0 {
			a.touchTarget = target
			a.touchMulti = false
		} else {
			a.touchMulti = true
		}
		a.touches = append(a.touches, panzoom.TouchPoint{ID: id, Position: pos})
		a.ctrl.TouchStart(a.touches, target)
		return false
	case pointer.Drag:
		i := a.index(id)
		if i < 0 {
			return false
		}
		a.touches[i].Position = pos
		return a.ctrl.TouchMove(a.touches)
	case pointer.Release:
		i := a.index(id)
		if i < 0 {
			return false
		}
		a.touches = append(a.touches[:i], a.touches[i+1:]...)
		a.ctrl.TouchEnd(a.touches)
		if len(a.touches) == 0 && !a.touchMulti {
			a.click(pos, a.touchTarget)
		}
		return false
	case pointer.Cancel:
		a.touches = a.touches[:0]
		a.ctrl.TouchCancel()
	}
	return false
}

// Touches returns the number of fingers currently down.
func (a *Adapter) Touches() int {
	return len(a.touches)
}

func (a *Adapter) index(id int) int {
	for i := range a.touches {
		if a.touches[i].ID == id {
			return i
		}
	}
	return -1
}

func (a *Adapter) target(pos panzoom.Vec2) panzoom.PressTarget {
	if a.Target == nil {
		return panzoom.TargetCanvas
	}
	return a.Target(pos)
}

func (a *Adapter) click(pos panzoom.Vec2, target panzoom.PressTarget) {
	if a.ctrl.ClickAllowed(target) && a.OnClick != nil {
		a.OnClick(pos, target)
	}
}

func vec(p f32.Point) panzoom.Vec2 {
	return panzoom.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
