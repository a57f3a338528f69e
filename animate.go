package panzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// viewAnim holds active tweens for the view translation and scale.
type viewAnim struct {
	target State
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenS *gween.Tween
	doneX  bool
	doneY  bool
	doneS  bool
}

// AnimateTo moves the view to target over duration seconds. Any device input
// cancels the animation. A non-positive duration jumps immediately.
func (c *Controller) AnimateTo(target State, duration float32, easeFn ease.TweenFunc) {
	target.Scale = c.limits.ClampScale(target.Scale)
	if !finite(target.X, target.Y) {
		return
	}
	if duration <= 0 {
		c.anim = nil
		c.commit(target, ViewportEvent{Type: EventAnimate, Source: SourceProgram})
		return
	}
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	c.anim = &viewAnim{
		target: target,
		tweenX: gween.New(float32(c.state.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(c.state.Y), float32(target.Y), duration, easeFn),
		tweenS: gween.New(float32(c.state.Scale), float32(target.Scale), duration, easeFn),
	}
}

// ResetAnimated eases the view back to the origin at scale 1 over the
// configured duration.
func (c *Controller) ResetAnimated(easeFn ease.TweenFunc) {
	var target State
	target.Reset()
	c.AnimateTo(target, float32(c.cfg.AnimateSeconds), easeFn)
}

// RecenterAnimated eases the view to the framing Recenter would produce.
func (c *Controller) RecenterAnimated(viewportW, canvasW float64, easeFn ease.TweenFunc) {
	var target State
	target.CenterOn(viewportW, canvasW, c.cfg.RecenterOffsetY)
	c.AnimateTo(target, float32(c.cfg.AnimateSeconds), easeFn)
}

// Animating reports whether an animation is in progress.
func (c *Controller) Animating() bool {
	return c.anim != nil
}

// Update advances the active animation by dt seconds. Call it once per tick.
func (c *Controller) Update(dt float32) {
	a := c.anim
	if a == nil {
		return
	}
	next := c.state
	if !a.doneX {
		val, done := a.tweenX.Update(dt)
		next.X = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(dt)
		next.Y = float64(val)
		a.doneY = done
	}
	if !a.doneS {
		val, done := a.tweenS.Update(dt)
		next.Scale = float64(val)
		a.doneS = done
	}
	finished := a.doneX && a.doneY && a.doneS
	if finished {
		// Land exactly on the target rather than its float32 rounding.
		next = a.target
		c.anim = nil
	}
	c.commit(next, ViewportEvent{Type: EventAnimate, Source: SourceProgram})
}
