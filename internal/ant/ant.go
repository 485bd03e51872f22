package ant

import (
	"errors"

	"langton/internal/core"
)

// ErrShapeMismatch is returned when a viewport of a different shape is
// requested after construction.
var ErrShapeMismatch = errors.New("ant: viewport shape is fixed at construction")

// Ant is the single walker of the automaton.
type Ant struct {
	Pos     core.Coord
	Heading core.Heading
}

// Engine runs Langton's Ant on an unbounded lattice. It is not safe for
// concurrent use; one goroutine owns it.
type Engine struct {
	name string

	grid  *core.Grid
	ant   Ant
	steps int

	view Viewport
	area core.Size
	geom Geometry

	observers []Observer
}

// New returns an engine with an empty grid and the ant at the start
// coordinate of the configured viewport, facing north.
func New(cfg Config) *Engine {
	view := cfg.Viewport()
	cell := cfg.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	size := view.Size()
	area := core.Size{W: size.W * cell, H: size.H * cell}
	e := &Engine{
		name: "langton",
		grid: core.NewGrid(),
		view: view,
		area: area,
		geom: ComputeGeometry(view, area),
	}
	if view.Shape == ShapeCentered {
		e.name = "langton-centered"
	}
	e.ant = Ant{Pos: view.Start(), Heading: core.North}
	return e
}

// Name returns the variant identifier.
func (e *Engine) Name() string { return e.name }

// Subscribe registers an observer for step, reset and viewport events.
func (e *Engine) Subscribe(o Observer) {
	if o == nil {
		return
	}
	e.observers = append(e.observers, o)
}

// Reset clears the grid and returns the ant to its start position facing
// north. The viewport is kept.
func (e *Engine) Reset() ResetEvent {
	cleared := make([]core.Coord, 0, e.grid.Len())
	e.grid.Each(func(c core.Coord) { cleared = append(cleared, c) })
	e.grid.Clear()
	e.ant = Ant{Pos: e.view.Start(), Heading: core.North}
	e.steps = 0

	ev := ResetEvent{Cleared: cleared, Ant: e.ant.Pos}
	for _, o := range e.observers {
		o.OnReset(ev)
	}
	return ev
}

// Step applies one transition: flip the current cell, turn clockwise on
// white or counterclockwise on black, then move along the new heading.
func (e *Engine) Step() StepEvent {
	prev := e.ant.Pos
	if e.grid.Toggle(prev) {
		e.ant.Heading = e.ant.Heading.TurnClockwise()
	} else {
		e.ant.Heading = e.ant.Heading.TurnCounterclockwise()
	}
	e.ant.Pos = prev.Add(e.ant.Heading.Delta())
	e.steps++

	ev := StepEvent{
		Step:        e.steps,
		Prev:        prev,
		PrevBlack:   e.grid.IsBlack(prev),
		PrevVisible: e.view.Contains(prev),
		Next:        e.ant.Pos,
		NextVisible: e.view.Contains(e.ant.Pos),
		Heading:     e.ant.Heading,
	}
	for _, o := range e.observers {
		o.OnStep(ev)
	}
	return ev
}

// Run performs n steps without building per-step events for the caller.
func (e *Engine) Run(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}

// ConfigureViewport swaps the visible window. The grid and the ant are left
// untouched so cells simulated off-screen keep their colors.
func (e *Engine) ConfigureViewport(v Viewport) error {
	if v.Shape != e.view.Shape {
		return ErrShapeMismatch
	}
	e.view = v.Clamp()
	e.relayout()
	return nil
}

// SetZoom sets the half-extent of a centered viewport.
func (e *Engine) SetZoom(zoom int) error {
	return e.ConfigureViewport(CenteredViewport(zoom, zoom))
}

// Zoom returns the half-extent of a centered viewport, or zero for a
// rectangle.
func (e *Engine) Zoom() int {
	if e.view.Shape != ShapeCentered {
		return 0
	}
	return e.view.HalfX
}

// SetDisplayArea records the pixel area available to renderers and
// recomputes the geometry.
func (e *Engine) SetDisplayArea(w, h int) {
	area := core.Size{W: w, H: h}
	if area == e.area {
		return
	}
	e.area = area
	e.relayout()
}

func (e *Engine) relayout() {
	e.geom = ComputeGeometry(e.view, e.area)
	ev := ViewportEvent{Viewport: e.view, Geometry: e.geom}
	for _, o := range e.observers {
		o.OnViewport(ev)
	}
}

// IsVisible reports whether c lies inside the active viewport.
func (e *Engine) IsVisible(c core.Coord) bool { return e.view.Contains(c) }

// IsBlack reports the color of c.
func (e *Engine) IsBlack(c core.Coord) bool { return e.grid.IsBlack(c) }

// Ant returns the current ant state.
func (e *Engine) Ant() Ant { return e.ant }

// Steps returns the number of transitions since the last reset.
func (e *Engine) Steps() int { return e.steps }

// BlackCount returns the number of black cells.
func (e *Engine) BlackCount() int { return e.grid.Len() }

// Grid exposes the underlying cell store for read-only inspection.
func (e *Engine) Grid() *core.Grid { return e.grid }

// Viewport returns the active viewport.
func (e *Engine) Viewport() Viewport { return e.view }

// Geometry returns the active pixel geometry.
func (e *Engine) Geometry() Geometry { return e.geom }

// Factory constructs an Engine from a flag-style configuration map.
type Factory func(cfg map[string]string) *Engine

var variants = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	variants[name] = f
}

// Variants exposes the registry of available engine factories.
func Variants() map[string]Factory {
	return variants
}

func init() {
	Register("langton", func(cfg map[string]string) *Engine {
		c := FromMap(cfg)
		c.Shape = ShapeRect
		return New(c)
	})
	Register("langton-centered", func(cfg map[string]string) *Engine {
		c := FromMap(cfg)
		c.Shape = ShapeCentered
		return New(c)
	})
}
