package panzoom

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is world-space content drawn under the viewport transform.
type Canvas interface {
	// Size returns the canvas extent in world units.
	Size() (w, h float64)
	// Draw renders the canvas onto dst; view maps world to screen.
	Draw(dst *ebiten.Image, view ebiten.GeoM)
}

// Targeter is implemented by canvases with interactive children or on-screen
// controls. TargetAt classifies a screen position under the given view.
type Targeter interface {
	TargetAt(pos Vec2, view State) PressTarget
}

// Clicker is implemented by canvases that react to clicks on their links and
// controls. Clicks cancelled by a drag are never delivered.
type Clicker interface {
	Click(pos Vec2, view State, target PressTarget)
}

// RunConfig configures Run and NewGame.
type RunConfig struct {
	Title         string
	Width, Height int
	// Config is the viewport configuration. The zero value selects
	// DefaultConfig.
	Config Config
	// Background fills the screen before the canvas is drawn. Nil leaves
	// the screen as Ebitengine clears it.
	Background color.Color
	// ShowOverlay draws FPS and the current view in the top-left corner.
	ShowOverlay bool
	// Debug logs gestures, events and per-frame coalescing stats through
	// the package logger at debug level.
	Debug bool
	// ScreenshotDir receives PNGs queued by Screenshot. Defaults to
	// "screenshots".
	ScreenshotDir string
	// Script, when set, drives the game with synthetic input.
	Script *TestRunner
	// PostDraw is called after the canvas and overlay are drawn.
	PostDraw func(screen *ebiten.Image)
}

// Game is an ebiten.Game that shows a Canvas through a pan/zoom viewport.
// The render sink caches the view transform; the frame queue is flushed at
// the start of every Draw, so any number of view changes during a tick cost
// one sink call.
type Game struct {
	ctrl   *Controller
	input  *Input
	frames FrameQueue
	canvas Canvas
	view   ebiten.GeoM

	rc     RunConfig
	runner *TestRunner

	width, height int
	framed        bool

	screenshotQueue []string
	stats           frameStats
}

// NewGame creates a game showing canvas. Call Run, or pass the game to
// ebiten.RunGame yourself.
func NewGame(canvas Canvas, rc RunConfig) (*Game, error) {
	if canvas == nil {
		return nil, fmt.Errorf("new game: nil canvas")
	}
	cfg := rc.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	if rc.ScreenshotDir == "" {
		rc.ScreenshotDir = "screenshots"
	}
	g := &Game{canvas: canvas, rc: rc, runner: rc.Script, width: rc.Width, height: rc.Height}
	ctrl, err := NewController(cfg, &g.frames, g.render)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	ctrl.SetDebugMode(rc.Debug)
	g.ctrl = ctrl
	g.input = NewInput(ctrl)
	g.input.Target = g.targetAt
	g.input.OnClick = g.click
	return g, nil
}

// Run opens a window and runs a Game until it is closed.
func Run(canvas Canvas, rc RunConfig) error {
	g, err := NewGame(canvas, rc)
	if err != nil {
		return err
	}
	if rc.Title != "" {
		ebiten.SetWindowTitle(rc.Title)
	}
	if rc.Width > 0 && rc.Height > 0 {
		ebiten.SetWindowSize(rc.Width, rc.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// Controller returns the viewport controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Input returns the input adapter, for injecting synthetic events.
func (g *Game) Input() *Input {
	return g.input
}

// View returns the transform applied by the last rendered frame.
func (g *Game) View() ebiten.GeoM {
	return g.view
}

// Recenter frames the canvas for the current window width.
func (g *Game) Recenter() {
	w, _ := g.canvas.Size()
	g.ctrl.Recenter(float64(g.width), w)
}

// render is the controller's render sink.
func (g *Game) render(s State) {
	g.view = GeoM(s)
}

func (g *Game) targetAt(pos Vec2) PressTarget {
	if t, ok := g.canvas.(Targeter); ok {
		return t.TargetAt(pos, g.ctrl.State())
	}
	return TargetCanvas
}

func (g *Game) click(pos Vec2, target PressTarget) {
	if c, ok := g.canvas.(Clicker); ok {
		c.Click(pos, g.ctrl.State(), target)
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.runner != nil {
		g.runner.step(g)
	}
	g.input.Update()
	g.ctrl.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	rendered := g.frames.Flush()
	if g.rc.Debug {
		g.logFrame(rendered)
	}
	if g.rc.Background != nil {
		screen.Fill(g.rc.Background)
	}
	g.canvas.Draw(screen, g.view)
	if g.rc.ShowOverlay {
		drawOverlay(screen, g.ctrl.State())
	}
	if g.rc.PostDraw != nil {
		g.rc.PostDraw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The canvas is framed for the window width
// the first time the size is known.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	if !g.framed {
		g.framed = true
		g.Recenter()
	}
	return outsideWidth, outsideHeight
}
