//go:build ebiten

package render

import (
	"langton/internal/ant"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a Canvas into a one-pixel-per-cell image and draws it
// scaled by the engine geometry.
type GridPainter struct {
	canvas *Canvas
	img    *ebiten.Image
	theme  Theme
}

// NewGridPainter creates a painter and subscribes its canvas to the engine.
func NewGridPainter(e *ant.Engine, theme Theme) *GridPainter {
	gp := &GridPainter{canvas: NewCanvas(e, theme), theme: theme}
	e.Subscribe(gp.canvas)
	return gp
}

// Blit refreshes the backing image if needed and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, geom ant.Geometry) {
	changed := gp.canvas.Sync()
	size := gp.canvas.Size()
	if gp.img == nil || gp.img.Bounds().Dx() != size.W || gp.img.Bounds().Dy() != size.H {
		gp.img = ebiten.NewImage(size.W, size.H)
		changed = true
	}
	if changed {
		gp.img.WritePixels(gp.canvas.Pixels())
	}

	dst.Fill(gp.theme.Margin)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(geom.CellSize), float64(geom.CellSize))
	op.GeoM.Translate(float64(geom.OffsetX), float64(geom.OffsetY))
	dst.DrawImage(gp.img, op)
}

// Canvas exposes the painter's cell buffer.
func (gp *GridPainter) Canvas() *Canvas { return gp.canvas }
