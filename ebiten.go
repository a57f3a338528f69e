package panzoom

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TargetFunc classifies what lies under a screen position.
type TargetFunc func(pos Vec2) PressTarget

// ClickFunc receives clicks on links and controls that were not cancelled by
// a drag.
type ClickFunc func(pos Vec2, target PressTarget)

// Input polls Ebitengine mouse, wheel and touch state once per tick and feeds
// it to a Controller. Call Update from the game's Update.
type Input struct {
	ctrl *Controller

	// Target classifies press positions. Nil treats everything as canvas.
	Target TargetFunc
	// OnClick is called after a release on a link or control unless the
	// press turned into a drag.
	OnClick ClickFunc

	start time.Time
	now   func() time.Duration

	mouseDown   bool
	pressTarget PressTarget
	lastCursor  Vec2

	touchIDs    []ebiten.TouchID
	touches     []TouchPoint
	touchBuf    []TouchPoint
	touchTarget PressTarget
	touchMulti  bool
	lastTouch   Vec2

	cursor    CursorShape
	cursorSet bool

	injectQueue []syntheticEvent
}

// NewInput creates an input adapter for ctrl.
func NewInput(ctrl *Controller) *Input {
	in := &Input{ctrl: ctrl, start: time.Now()}
	in.now = func() time.Duration { return time.Since(in.start) }
	return in
}

// Controller returns the controller fed by this adapter.
func (in *Input) Controller() *Controller {
	return in.ctrl
}

// Update processes one tick of input. A queued synthetic event, when
// present, replaces real input for the tick.
func (in *Input) Update() {
	if in.processInjectedInput() {
		return
	}
	mods := readModifiers()
	in.processWheel(mods)
	in.processMouse()
	in.processTouches()
	in.syncCursor()
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

func cursorPosition() Vec2 {
	mx, my := ebiten.CursorPosition()
	return Vec2{float64(mx), float64(my)}
}

// processWheel converts Ebitengine wheel offsets (positive = away from the
// user) into pixel deltas with DOM signs.
func (in *Input) processWheel(mods KeyModifiers) {
	wx, wy := ebiten.Wheel()
	if wx == 0 && wy == 0 {
		return
	}
	scale := in.ctrl.cfg.WheelPixelScale
	in.ctrl.Wheel(WheelEvent{
		DeltaX:   -wx * scale,
		DeltaY:   -wy * scale,
		Ctrl:     mods&ModCtrl != 0,
		Position: cursorPosition(),
		Time:     in.now(),
	})
}

func (in *Input) processMouse() {
	pos := cursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.press(pos)
	} else {
		in.move(pos)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.release(pos)
	}
}

func (in *Input) processTouches() {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	slices.Sort(in.touchIDs)
	cur := in.touchBuf[:0]
	for _, id := range in.touchIDs {
		x, y := ebiten.TouchPosition(id)
		cur = append(cur, TouchPoint{ID: int(id), Position: Vec2{float64(x), float64(y)}})
	}
	in.touchBuf = cur
	in.applyTouches(cur)
}

func (in *Input) target(pos Vec2) PressTarget {
	if in.Target == nil {
		return TargetCanvas
	}
	return in.Target(pos)
}

func (in *Input) press(pos Vec2) {
	in.mouseDown = true
	in.pressTarget = in.target(pos)
	in.lastCursor = pos
	in.ctrl.MouseDown(pos, MouseButtonLeft, in.pressTarget)
}

func (in *Input) move(pos Vec2) {
	if in.mouseDown && pos != in.lastCursor {
		in.ctrl.MouseMove(pos)
	}
	in.lastCursor = pos
}

func (in *Input) release(pos Vec2) {
	if !in.mouseDown {
		return
	}
	in.move(pos)
	in.mouseDown = false
	in.ctrl.MouseUp()
	in.dispatchClick(pos, in.pressTarget)
}

func (in *Input) dispatchClick(pos Vec2, target PressTarget) {
	if in.ctrl.ClickAllowed(target) && in.OnClick != nil {
		in.OnClick(pos, target)
	}
}

// applyTouches diffs cur, the touches down this tick, against the previous
// tick: lifted touches end first, then new touches start one by one, and
// only a tick with neither reports movement.
func (in *Input) applyTouches(cur []TouchPoint) {
	prev := in.touches

	var remaining []TouchPoint
	ended := false
	for _, p := range prev {
		if i := indexTouch(cur, p.ID); i >= 0 {
			remaining = append(remaining, cur[i])
		} else {
			ended = true
			in.lastTouch = p.Position
		}
	}
	if ended {
		in.ctrl.TouchEnd(remaining)
		if len(remaining) == 0 && !in.touchMulti {
			in.dispatchClick(in.lastTouch, in.touchTarget)
		}
	}

	started := false
	active := remaining
	for _, t := range cur {
		if indexTouch(prev, t.ID) >= 0 {
			continue
		}
		started = true
		active = append(active, t)
		target := in.target(t.Position)
		if len(active) == 1 {
			in.touchTarget = target
			in.touchMulti = false
		} else {
			in.touchMulti = true
		}
		in.ctrl.TouchStart(active, target)
	}

	if !ended && !started && touchesMoved(prev, cur) {
		in.ctrl.TouchMove(cur)
	}

	in.touches = append(in.touches[:0], cur...)
}

func indexTouch(ts []TouchPoint, id int) int {
	for i := range ts {
		if ts[i].ID == id {
			return i
		}
	}
	return -1
}

func touchesMoved(prev, cur []TouchPoint) bool {
	if len(prev) != len(cur) {
		return false
	}
	for i := range cur {
		if cur[i] != prev[i] {
			return true
		}
	}
	return false
}

// syncCursor mirrors the controller's cursor onto the window.
func (in *Input) syncCursor() {
	shape := in.ctrl.Cursor()
	if in.cursorSet && shape == in.cursor {
		return
	}
	in.cursor = shape
	in.cursorSet = true
	ebiten.SetCursorShape(ebitenCursor(shape))
}

func ebitenCursor(shape CursorShape) ebiten.CursorShapeType {
	if shape == CursorGrabbing {
		return ebiten.CursorShapeMove
	}
	return ebiten.CursorShapeDefault
}

// GeoM returns the affine transform translate(X, Y) scale(Scale) for s,
// ready to draw world-space content onto the screen.
func GeoM(s State) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(s.Scale, s.Scale)
	g.Translate(s.X, s.Y)
	return g
}
