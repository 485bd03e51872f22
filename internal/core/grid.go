package core

import "github.com/zyedidia/generic/mapset"

// Grid stores the black cells of the lattice. Anything not in the set is white.
type Grid struct {
	black mapset.Set[Coord]
}

// NewGrid returns an all-white grid.
func NewGrid() *Grid {
	return &Grid{black: mapset.New[Coord]()}
}

// IsBlack reports whether c is currently black.
func (g *Grid) IsBlack(c Coord) bool { return g.black.Has(c) }

// Toggle flips the color of c and reports whether it is now black.
func (g *Grid) Toggle(c Coord) bool {
	if g.black.Has(c) {
		g.black.Remove(c)
		return false
	}
	g.black.Put(c)
	return true
}

// Clear turns every cell white.
func (g *Grid) Clear() {
	g.black = mapset.New[Coord]()
}

// Len returns the number of black cells.
func (g *Grid) Len() int { return g.black.Size() }

// Each calls fn for every black cell in unspecified order.
func (g *Grid) Each(fn func(c Coord)) {
	g.black.Each(fn)
}

// Bounds returns the inclusive bounding box of the black cells. ok is false
// when the grid is empty.
func (g *Grid) Bounds() (lo, hi Coord, ok bool) {
	g.black.Each(func(c Coord) {
		if !ok {
			lo, hi, ok = c, c, true
			return
		}
		if c.X < lo.X {
			lo.X = c.X
		}
		if c.Y < lo.Y {
			lo.Y = c.Y
		}
		if c.X > hi.X {
			hi.X = c.X
		}
		if c.Y > hi.Y {
			hi.Y = c.Y
		}
	})
	return lo, hi, ok
}
