package ant

import "langton/internal/core"

// StepEvent describes the two cells touched by one transition.
type StepEvent struct {
	Step int

	Prev        core.Coord
	PrevBlack   bool
	PrevVisible bool

	Next        core.Coord
	NextVisible bool

	Heading core.Heading
}

// ResetEvent asks renderers to repaint everything white and draw the ant.
// Cleared holds the cells that were black before the reset.
type ResetEvent struct {
	Cleared []core.Coord
	Ant     core.Coord
}

// ViewportEvent asks renderers for a full repaint under new geometry.
type ViewportEvent struct {
	Viewport Viewport
	Geometry Geometry
}

// Observer receives engine notifications. Calls happen synchronously from
// the goroutine driving the engine.
type Observer interface {
	OnStep(StepEvent)
	OnReset(ResetEvent)
	OnViewport(ViewportEvent)
}
