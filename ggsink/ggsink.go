// Package ggsink renders a panzoom viewport headlessly with the gg software
// rasterizer. A Sink holds a list of world-space shapes and repaints them
// under the current view every time its Render method runs, which makes it
// a drop-in RenderSink for snapshots, golden-image tests and servers that
// have no window.
package ggsink

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/phanxgames/panzoom"
)

// Shape is world-space content drawn by a Sink. The context already carries
// the view transform when Draw is called.
type Shape interface {
	Draw(dc *gg.Context) error
}

// Rect is a filled axis-aligned rectangle with optional rounded corners.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
	Fill       gg.RGBA
}

// Draw implements Shape.
func (r Rect) Draw(dc *gg.Context) error {
	if r.Radius > 0 {
		dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, r.Radius)
	} else {
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	}
	dc.SetRGBA(r.Fill.R, r.Fill.G, r.Fill.B, r.Fill.A)
	return dc.Fill()
}

// Circle is a filled circle.
type Circle struct {
	X, Y, R float64
	Fill    gg.RGBA
}

// Draw implements Shape.
func (c Circle) Draw(dc *gg.Context) error {
	dc.DrawCircle(c.X, c.Y, c.R)
	dc.SetRGBA(c.Fill.R, c.Fill.G, c.Fill.B, c.Fill.A)
	return dc.Fill()
}

// Line is a stroked segment. Width is in world units and scales with zoom.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Stroke         gg.RGBA
}

// Draw implements Shape.
func (l Line) Draw(dc *gg.Context) error {
	dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
	dc.SetLineWidth(l.Width)
	dc.SetRGBA(l.Stroke.R, l.Stroke.G, l.Stroke.B, l.Stroke.A)
	return dc.Stroke()
}

// Sink rasterizes shapes into an offscreen gg context.
type Sink struct {
	dc         *gg.Context
	background gg.RGBA
	shapes     []Shape

	view    panzoom.State
	renders int
	err     error
}

// New creates a width x height sink cleared to background.
func New(width, height int, background gg.RGBA) *Sink {
	s := &Sink{dc: gg.NewContext(width, height), background: background}
	s.view.Reset()
	s.dc.ClearWithColor(background)
	return s
}

// Add appends shapes in paint order.
func (s *Sink) Add(shapes ...Shape) {
	s.shapes = append(s.shapes, shapes...)
}

// Render repaints every shape under view. Its signature matches
// panzoom.RenderSink, so pass the method value to NewController. A failed
// shape is logged and recorded for Err; the remaining shapes still draw.
func (s *Sink) Render(view panzoom.State) {
	s.view = view
	s.renders++
	s.err = nil

	s.dc.ClearWithColor(s.background)
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.Translate(view.X, view.Y)
	s.dc.Scale(view.Scale, view.Scale)
	for i, sh := range s.shapes {
		if err := sh.Draw(s.dc); err != nil {
			err = fmt.Errorf("render shape %d: %w", i, err)
			panzoom.Logger().Warn("ggsink: draw failed", "err", err)
			if s.err == nil {
				s.err = err
			}
		}
	}
}

// Err returns the first error of the last Render.
func (s *Sink) Err() error {
	return s.err
}

// Renders returns how many times Render ran.
func (s *Sink) Renders() int {
	return s.renders
}

// View returns the state of the last Render.
func (s *Sink) View() panzoom.State {
	return s.view
}

// Image returns the rendered frame.
func (s *Sink) Image() image.Image {
	return s.dc.Image()
}

// WritePNG encodes the rendered frame as PNG.
func (s *Sink) WritePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("ggsink: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the rendered frame to path.
func (s *Sink) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("ggsink: save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context.
func (s *Sink) Close() error {
	return s.dc.Close()
}
