package core

import "testing"

func TestGridToggleAndClear(t *testing.T) {
	g := NewGrid()
	c := Coord{X: -3, Y: 1 << 40}

	if g.IsBlack(c) {
		t.Fatal("new grid must be white everywhere")
	}
	if !g.Toggle(c) {
		t.Fatal("toggling a white cell must make it black")
	}
	if !g.IsBlack(c) || g.Len() != 1 {
		t.Fatalf("expected one black cell, got len=%d", g.Len())
	}
	if g.Toggle(c) {
		t.Fatal("toggling a black cell must make it white")
	}
	if g.IsBlack(c) || g.Len() != 0 {
		t.Fatalf("expected empty grid, got len=%d", g.Len())
	}

	g.Toggle(Coord{X: 1, Y: 1})
	g.Toggle(Coord{X: 2, Y: 2})
	g.Clear()
	if g.Len() != 0 || g.IsBlack(Coord{X: 1, Y: 1}) {
		t.Fatal("Clear must remove every black cell")
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid()
	if _, _, ok := g.Bounds(); ok {
		t.Fatal("empty grid must not report bounds")
	}
	for _, c := range []Coord{{X: 3, Y: -2}, {X: -5, Y: 4}, {X: 0, Y: 0}} {
		g.Toggle(c)
	}
	lo, hi, ok := g.Bounds()
	if !ok {
		t.Fatal("expected bounds for non-empty grid")
	}
	if lo != (Coord{X: -5, Y: -2}) || hi != (Coord{X: 3, Y: 4}) {
		t.Fatalf("bounds = %+v..%+v", lo, hi)
	}
}

func TestGridEachVisitsEveryBlackCell(t *testing.T) {
	g := NewGrid()
	want := map[Coord]bool{{X: 1}: true, {Y: -1}: true, {X: 7, Y: 7}: true}
	for c := range want {
		g.Toggle(c)
	}
	seen := map[Coord]bool{}
	g.Each(func(c Coord) { seen[c] = true })
	if len(seen) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(seen), len(want))
	}
	for c := range want {
		if !seen[c] {
			t.Fatalf("cell %+v not visited", c)
		}
	}
}
