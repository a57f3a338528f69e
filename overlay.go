package panzoom

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayText formats the debug overlay for a view.
func overlayText(s State) string {
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nx: %.1f  y: %.1f  scale: %.2f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), s.X, s.Y, s.Scale)
}

// drawOverlay prints frame rates and the current view in the top-left
// corner using ebitenutil.DebugPrintAt.
func drawOverlay(screen *ebiten.Image, s State) {
	ebitenutil.DebugPrintAt(screen, overlayText(s), 4, 4)
}
