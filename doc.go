// Package panzoom is a pan/zoom viewport engine for large 2D canvases such
// as career maps, diagrams and node graphs, with an [Ebitengine] front end.
//
// A [Controller] owns the view [State] (translation X, Y and uniform Scale)
// and turns raw device input into view changes:
//
//   - mouse drag pans the canvas, with a 5px threshold that decides whether
//     the release still counts as a click on a link under the pointer
//   - wheel and trackpad events are classified into pan or zoom; a
//     ctrl-modified wheel (a trackpad pinch) always zooms, small deltas pan
//     and lock the gesture as a trackpad pan for 200ms
//   - one finger pans, two fingers pinch-zoom about their midpoint
//
// Every change is clamped to the scale limits and coalesced into at most
// one render per frame through a [FrameClock].
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and shows
// a [Canvas] through the viewport:
//
//	panzoom.Run(myCanvas, panzoom.RunConfig{
//		Title: "Career map", Width: 1280, Height: 800,
//		ShowOverlay: true,
//	})
//
// For full control, create a Controller yourself with any [FrameClock] and
// [RenderSink], and feed it input from your own event loop:
//
//	var frames panzoom.FrameQueue
//	ctrl, err := panzoom.NewController(panzoom.DefaultConfig(), &frames,
//		func(s panzoom.State) { view = panzoom.GeoM(s) })
//	// ... ctrl.MouseDown / ctrl.Wheel / ctrl.TouchMove ...
//	frames.Flush() // once per frame, before drawing
//
// Subpackages adapt other front ends: gioinput feeds Gio pointer events,
// ggsink renders headlessly with the gg rasterizer and ecs forwards
// viewport events into a Donburi world.
//
// # Events
//
// Register callbacks with [Controller.On] or [Controller.OnChange]:
//
//	ctrl.On(panzoom.EventZoom, func(ev panzoom.ViewportEvent) {
//		fmt.Println("scale", ev.State.Scale)
//	})
//
// # Configuration
//
// [DefaultConfig] matches the stock tuning. [LoadConfig] reads overrides
// from JSON; unspecified fields keep their defaults.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] with any [log/slog]
// logger and enable debug mode to trace gestures and render coalescing.
//
// # Automated testing
//
// [Input] accepts synthetic events (InjectDrag, InjectWheel, InjectPinch
// and friends) and [TestRunner] plays JSON scripts of them, taking
// screenshots along the way.
//
// [Ebitengine]: https://ebitengine.org
package panzoom
