//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"langton/internal/ant"
	"langton/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional information on top of the grid.
type Overlay struct {
	engine *ant.Engine
	theme  render.Theme

	showInfo  bool
	showLines bool
}

// NewOverlay constructs an overlay for the engine.
func NewOverlay(e *ant.Engine, theme render.Theme) *Overlay {
	return &Overlay{engine: e, theme: theme, showInfo: true}
}

// Update handles the overlay toggles: I for the info box, G for grid lines.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showInfo = !o.showInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showLines = !o.showLines
	}
}

// Draw renders the overlay onto the grid area of screen.
func (o *Overlay) Draw(screen *ebiten.Image, geom ant.Geometry) {
	if o.showLines && geom.CellSize >= 4 {
		o.drawLines(screen, geom)
	}
	a := o.engine.Ant()
	if !o.engine.IsVisible(a.Pos) {
		o.drawPointer(screen, geom, a.Pos.X, a.Pos.Y)
	}
	if o.showInfo {
		o.drawInfo(screen, a)
	}
}

func (o *Overlay) drawLines(screen *ebiten.Image, geom ant.Geometry) {
	line := color.RGBA{R: 200, G: 200, B: 200, A: 90}
	left, top := float32(geom.OffsetX), float32(geom.OffsetY)
	right, bottom := left+float32(geom.GridWidth()), top+float32(geom.GridHeight())
	for col := 0; col <= geom.Cols; col++ {
		x := left + float32(col*geom.CellSize)
		vector.StrokeLine(screen, x, top, x, bottom, 1, line, false)
	}
	for row := 0; row <= geom.Rows; row++ {
		y := top + float32(row*geom.CellSize)
		vector.StrokeLine(screen, left, y, right, y, 1, line, false)
	}
}

// drawPointer puts an arrow on the grid edge pointing at an off-screen ant.
func (o *Overlay) drawPointer(screen *ebiten.Image, geom ant.Geometry, x, y int) {
	view := o.engine.Viewport()
	lo, hi := view.Min(), view.Max()
	cx := float64(lo.X+hi.X) / 2
	cy := float64(lo.Y+hi.Y) / 2
	dx, dy := float64(x)-cx, float64(y)-cy
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	nx, ny := dx/dist, -dy/dist

	halfW := float64(geom.GridWidth()) / 2
	halfH := float64(geom.GridHeight()) / 2
	centerX := float64(geom.OffsetX) + halfW
	centerY := float64(geom.OffsetY) + halfH
	reach := math.Min(halfW/math.Max(math.Abs(nx), 1e-9), halfH/math.Max(math.Abs(ny), 1e-9)) - 8
	if reach < 8 {
		return
	}
	tipX, tipY := centerX+nx*reach, centerY+ny*reach
	tailX, tailY := tipX-nx*18, tipY-ny*18

	col := o.theme.Ant
	vector.StrokeLine(screen, float32(tailX), float32(tailY), float32(tipX), float32(tipY), 3, col, true)
	angle := math.Atan2(ny, nx)
	for _, side := range []float64{math.Pi / 6, -math.Pi / 6} {
		hx := tipX - math.Cos(angle+side)*8
		hy := tipY - math.Sin(angle+side)*8
		vector.StrokeLine(screen, float32(tipX), float32(tipY), float32(hx), float32(hy), 3, col, true)
	}
}

func (o *Overlay) drawInfo(screen *ebiten.Image, a ant.Ant) {
	lines := []string{
		fmt.Sprintf("step %d", o.engine.Steps()),
		fmt.Sprintf("ant (%d,%d) %s", a.Pos.X, a.Pos.Y, a.Heading),
		fmt.Sprintf("black %d", o.engine.BlackCount()),
	}
	width := 0
	for _, l := range lines {
		if n := len(l) * glyphWidth; n > width {
			width = n
		}
	}
	bg := color.RGBA{R: 0, G: 0, B: 0, A: 160}
	vector.DrawFilledRect(screen, 4, 4, float32(width+12), float32(len(lines)*textLine+8), bg, false)
	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, 10, 4+(i+1)*textLine, o.theme.PanelText)
	}
}
