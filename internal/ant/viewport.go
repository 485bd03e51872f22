package ant

import (
	"fmt"

	"langton/internal/core"
)

// Shape selects how the viewport is anchored on the lattice.
type Shape uint8

const (
	// ShapeRect is the origin-anchored rectangle [0,W)×[0,H).
	ShapeRect Shape = iota
	// ShapeCentered is the square of half-extent HalfX, HalfY around (0,0).
	ShapeCentered
)

func (s Shape) String() string {
	if s == ShapeCentered {
		return "centered"
	}
	return "rect"
}

// ParseShape maps a config string onto a Shape.
func ParseShape(v string) (Shape, error) {
	switch v {
	case "rect", "":
		return ShapeRect, nil
	case "centered":
		return ShapeCentered, nil
	default:
		return ShapeRect, fmt.Errorf("unknown viewport shape %q", v)
	}
}

const (
	// MaxExtent bounds rectangle dimensions.
	MaxExtent = 2048
	// MinZoom and MaxZoom bound the half-extent of the centered viewport.
	MinZoom = 1
	MaxZoom = 500
	// DefaultCellSize is the pixel size of a cell when no display area is known.
	DefaultCellSize = 10
)

// Viewport is the finite window of the lattice that is reported visible.
type Viewport struct {
	Shape Shape

	Width  int
	Height int

	HalfX int
	HalfY int
}

// RectViewport returns an origin-anchored viewport.
func RectViewport(w, h int) Viewport {
	return Viewport{Shape: ShapeRect, Width: w, Height: h}.Clamp()
}

// CenteredViewport returns a viewport centered on the origin.
func CenteredViewport(halfX, halfY int) Viewport {
	return Viewport{Shape: ShapeCentered, HalfX: halfX, HalfY: halfY}.Clamp()
}

// Clamp restricts the dimensions to their valid ranges.
func (v Viewport) Clamp() Viewport {
	switch v.Shape {
	case ShapeCentered:
		v.HalfX = core.ClampInt(v.HalfX, MinZoom, MaxZoom)
		v.HalfY = core.ClampInt(v.HalfY, MinZoom, MaxZoom)
		v.Width, v.Height = 0, 0
	default:
		v.Shape = ShapeRect
		v.Width = core.ClampInt(v.Width, 1, MaxExtent)
		v.Height = core.ClampInt(v.Height, 1, MaxExtent)
		v.HalfX, v.HalfY = 0, 0
	}
	return v
}

// Min returns the south-west visible coordinate.
func (v Viewport) Min() core.Coord {
	if v.Shape == ShapeCentered {
		return core.Coord{X: -v.HalfX, Y: -v.HalfY}
	}
	return core.Coord{}
}

// Max returns the north-east visible coordinate.
func (v Viewport) Max() core.Coord {
	if v.Shape == ShapeCentered {
		return core.Coord{X: v.HalfX, Y: v.HalfY}
	}
	return core.Coord{X: v.Width - 1, Y: v.Height - 1}
}

// Size returns the viewport size in cells.
func (v Viewport) Size() core.Size {
	if v.Shape == ShapeCentered {
		return core.Size{W: 2*v.HalfX + 1, H: 2*v.HalfY + 1}
	}
	return core.Size{W: v.Width, H: v.Height}
}

// Start returns the canonical ant start coordinate for the viewport.
func (v Viewport) Start() core.Coord {
	if v.Shape == ShapeCentered {
		return core.Coord{}
	}
	return core.Coord{X: v.Width / 2, Y: v.Height / 2}
}

// Contains reports whether c lies inside the viewport.
func (v Viewport) Contains(c core.Coord) bool {
	lo, hi := v.Min(), v.Max()
	return c.X >= lo.X && c.X <= hi.X && c.Y >= lo.Y && c.Y <= hi.Y
}

// Index returns the row-major buffer index of c, with row 0 at the northern
// edge. ok is false when c is not visible.
func (v Viewport) Index(c core.Coord) (int, bool) {
	if !v.Contains(c) {
		return 0, false
	}
	size := v.Size()
	row := v.Max().Y - c.Y
	col := c.X - v.Min().X
	return row*size.W + col, true
}

// CoordAt is the inverse of Index.
func (v Viewport) CoordAt(i int) core.Coord {
	size := v.Size()
	row, col := i/size.W, i%size.W
	return core.Coord{X: v.Min().X + col, Y: v.Max().Y - row}
}

// Geometry maps visible cells onto a pixel display area.
type Geometry struct {
	Cols     int
	Rows     int
	CellSize int
	OffsetX  int
	OffsetY  int
	Area     core.Size

	min core.Coord
	max core.Coord
}

// ComputeGeometry fits the viewport into area. A zero area falls back to
// DefaultCellSize and sizes the area to the grid. The viewport is clamped
// first.
func ComputeGeometry(v Viewport, area core.Size) Geometry {
	v = v.Clamp()
	size := v.Size()
	g := Geometry{Cols: size.W, Rows: size.H, min: v.Min(), max: v.Max()}
	if area.W <= 0 || area.H <= 0 {
		g.CellSize = DefaultCellSize
		g.Area = core.Size{W: size.W * DefaultCellSize, H: size.H * DefaultCellSize}
		return g
	}
	cell := area.W / size.W
	if byRows := area.H / size.H; byRows < cell {
		cell = byRows
	}
	if cell < 1 {
		cell = 1
	}
	g.CellSize = cell
	g.Area = area
	g.OffsetX = (area.W - size.W*cell) / 2
	g.OffsetY = (area.H - size.H*cell) / 2
	return g
}

// ToPixel returns the top-left pixel of the cell at c.
func (g Geometry) ToPixel(c core.Coord) (int, int) {
	x := g.OffsetX + (c.X-g.min.X)*g.CellSize
	y := g.OffsetY + (g.max.Y-c.Y)*g.CellSize
	return x, y
}

// FromPixel returns the cell under the pixel (px, py).
func (g Geometry) FromPixel(px, py int) (core.Coord, bool) {
	if g.CellSize <= 0 {
		return core.Coord{}, false
	}
	dx, dy := px-g.OffsetX, py-g.OffsetY
	if dx < 0 || dy < 0 {
		return core.Coord{}, false
	}
	col, row := dx/g.CellSize, dy/g.CellSize
	if col >= g.Cols || row >= g.Rows {
		return core.Coord{}, false
	}
	return core.Coord{X: g.min.X + col, Y: g.max.Y - row}, true
}

// GridWidth returns the pixel width covered by cells.
func (g Geometry) GridWidth() int { return g.Cols * g.CellSize }

// GridHeight returns the pixel height covered by cells.
func (g Geometry) GridHeight() int { return g.Rows * g.CellSize }
