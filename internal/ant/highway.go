package ant

import "langton/internal/core"

// HighwayPeriod is the number of steps in one repetition of the highway.
const HighwayPeriod = 104

// HighwayProbe watches ant positions and detects the diagonal highway: the
// displacement over the last HighwayPeriod steps stays the same (±2, ±2) for
// at least two full periods.
type HighwayProbe struct {
	ring   [HighwayPeriod]core.Coord
	filled int
	next   int

	last   core.Coord
	streak int

	found  bool
	onset  int
	offset core.Coord
}

// Observe records the ant position after step number step.
func (p *HighwayProbe) Observe(step int, pos core.Coord) {
	if p.filled < HighwayPeriod {
		p.ring[p.next] = pos
		p.next = (p.next + 1) % HighwayPeriod
		p.filled++
		return
	}
	d := pos.Sub(p.ring[p.next])
	p.ring[p.next] = pos
	p.next = (p.next + 1) % HighwayPeriod

	if isHighwayOffset(d) && d == p.last {
		p.streak++
	} else {
		p.streak = 0
	}
	p.last = d

	if !p.found && p.streak >= 2*HighwayPeriod {
		p.found = true
		p.offset = d
		p.onset = step - p.streak - HighwayPeriod
	}
}

// OnStep lets the probe subscribe to an Engine.
func (p *HighwayProbe) OnStep(ev StepEvent) { p.Observe(ev.Step, ev.Next) }

// OnReset forgets everything seen so far.
func (p *HighwayProbe) OnReset(ResetEvent) { *p = HighwayProbe{} }

// OnViewport is a no-op; the probe does not depend on the viewport.
func (p *HighwayProbe) OnViewport(ViewportEvent) {}

// Found reports whether the highway has been detected.
func (p *HighwayProbe) Found() bool { return p.found }

// Onset returns the estimated step at which the highway started.
func (p *HighwayProbe) Onset() int { return p.onset }

// Offset returns the displacement of the ant over one highway period.
func (p *HighwayProbe) Offset() core.Coord { return p.offset }

func isHighwayOffset(d core.Coord) bool {
	return (d.X == 2 || d.X == -2) && (d.Y == 2 || d.Y == -2)
}
