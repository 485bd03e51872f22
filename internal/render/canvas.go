package render

import (
	"image/color"

	"langton/internal/ant"
	"langton/internal/core"
)

// Source is the read side of the engine a Canvas repaints from.
type Source interface {
	IsBlack(c core.Coord) bool
	Ant() ant.Ant
	Viewport() ant.Viewport
}

// Canvas keeps one palette index and one RGBA pixel per visible cell. Step
// events touch at most two cells; reset and viewport events mark the whole
// buffer stale and it is rebuilt on the next Sync.
type Canvas struct {
	src     Source
	palette []color.RGBA

	view  ant.Viewport
	cells []uint8
	pix   []byte

	stale bool
	dirty bool
}

// NewCanvas builds a canvas for src and paints it fully.
func NewCanvas(src Source, theme Theme) *Canvas {
	c := &Canvas{src: src, palette: theme.Palette(), stale: true}
	c.Sync()
	return c
}

// OnStep repaints the cell the ant left and marks the cell it entered.
func (c *Canvas) OnStep(ev ant.StepEvent) {
	if c.stale {
		return
	}
	if ev.PrevVisible {
		v := CellWhite
		if ev.PrevBlack {
			v = CellBlack
		}
		c.paint(ev.Prev, v)
	}
	if ev.NextVisible {
		c.paint(ev.Next, CellAnt)
	}
}

// OnReset schedules a full repaint.
func (c *Canvas) OnReset(ant.ResetEvent) { c.stale = true }

// OnViewport schedules a full repaint under the new viewport.
func (c *Canvas) OnViewport(ant.ViewportEvent) { c.stale = true }

func (c *Canvas) paint(at core.Coord, v uint8) {
	idx, ok := c.view.Index(at)
	if !ok {
		return
	}
	c.cells[idx] = v
	setPixel(c.pix, idx, paletteColor(c.palette, v))
	c.dirty = true
}

// Sync rebuilds the buffers if a full repaint is pending. It reports whether
// the pixels changed since the previous Sync.
func (c *Canvas) Sync() bool {
	if !c.stale {
		changed := c.dirty
		c.dirty = false
		return changed
	}
	c.view = c.src.Viewport()
	size := c.view.Size()
	total := size.W * size.H
	if cap(c.cells) >= total {
		c.cells = c.cells[:total]
		c.pix = c.pix[:4*total]
	} else {
		c.cells = make([]uint8, total)
		c.pix = make([]byte, 4*total)
	}
	for i := range c.cells {
		if c.src.IsBlack(c.view.CoordAt(i)) {
			c.cells[i] = CellBlack
		} else {
			c.cells[i] = CellWhite
		}
	}
	if idx, ok := c.view.Index(c.src.Ant().Pos); ok {
		c.cells[idx] = CellAnt
	}
	fillPaletteRGBA(c.pix, c.cells, c.palette)
	c.stale = false
	c.dirty = false
	return true
}

// Size returns the buffer dimensions in cells.
func (c *Canvas) Size() core.Size { return c.view.Size() }

// Cells exposes the palette indices in row-major order, north row first.
func (c *Canvas) Cells() []uint8 { return c.cells }

// Pixels exposes the RGBA buffer matching Cells.
func (c *Canvas) Pixels() []byte { return c.pix }

// ASCII renders the canvas as text: '#' black, '.' white, '@' ant.
func (c *Canvas) ASCII() string {
	size := c.view.Size()
	out := make([]byte, 0, (size.W+1)*size.H)
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			switch c.cells[row*size.W+col] {
			case CellBlack:
				out = append(out, '#')
			case CellAnt:
				out = append(out, '@')
			default:
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
