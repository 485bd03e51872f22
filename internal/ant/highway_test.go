package ant

import (
	"testing"

	"langton/internal/core"
)

func TestHighwayEmerges(t *testing.T) {
	e := newCentered(50)
	probe := &HighwayProbe{}
	e.Subscribe(probe)

	for e.Steps() < 12000 && !probe.Found() {
		e.Step()
	}
	if !probe.Found() {
		t.Fatal("highway not detected within 12000 steps")
	}
	if onset := probe.Onset(); onset < 9900 || onset > 10100 {
		t.Fatalf("highway onset at step %d, expected close to 10000", onset)
	}
	if off := probe.Offset(); off != (core.Coord{X: -2, Y: -2}) {
		t.Fatalf("highway period offset %+v, want (-2,-2)", off)
	}
}

func TestHighwayPatternRepeats(t *testing.T) {
	e := newCentered(50)
	e.Run(12000)

	before := e.Ant()
	const radius = 5
	var window []bool
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			window = append(window, e.IsBlack(before.Pos.Add(core.Coord{X: dx, Y: dy})))
		}
	}

	e.Run(HighwayPeriod)
	after := e.Ant()
	shift := after.Pos.Sub(before.Pos)
	if shift != (core.Coord{X: -2, Y: -2}) || after.Heading != before.Heading {
		t.Fatalf("after one period ant moved by %+v heading %s->%s", shift, before.Heading, after.Heading)
	}
	i := 0
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			c := after.Pos.Add(core.Coord{X: dx, Y: dy})
			if e.IsBlack(c) != window[i] {
				t.Fatalf("cell %+v does not repeat the highway pattern", c)
			}
			i++
		}
	}
}

func TestHighwayProbeResets(t *testing.T) {
	e := newCentered(5)
	probe := &HighwayProbe{}
	e.Subscribe(probe)
	e.Run(10500)
	if !probe.Found() {
		t.Fatal("expected highway by step 10500")
	}
	e.Reset()
	if probe.Found() || probe.Onset() != 0 {
		t.Fatal("reset must clear the probe")
	}
}
