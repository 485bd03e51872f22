package core

import "testing"

func TestParameterControlAdjust(t *testing.T) {
	ctrl := ParameterControl{Key: "zoom", Type: ParamTypeInt, Step: 5, Min: 1, Max: 20, HasMin: true, HasMax: true}

	if got := ctrl.Adjust(10, 1); got != 15 {
		t.Fatalf("10+5 = %d", got)
	}
	if got := ctrl.Adjust(18, 1); got != 20 {
		t.Fatalf("expected clamp to max, got %d", got)
	}
	if got := ctrl.Adjust(3, -1); got != 1 {
		t.Fatalf("expected clamp to min, got %d", got)
	}
	if ctrl.CanAdjust(20, 1) {
		t.Fatal("cannot grow past max")
	}
	if !ctrl.CanAdjust(20, -1) {
		t.Fatal("should shrink from max")
	}
	if ctrl.CanAdjust(5, 0) {
		t.Fatal("zero direction never adjusts")
	}

	unbounded := ParameterControl{Key: "w", Type: ParamTypeInt}
	if got := unbounded.Adjust(7, -1); got != 6 {
		t.Fatalf("default step must be 1, got %d", got)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{IntParam("speed", "Speed", 100)}},
		{Name: "B", Params: []Parameter{StringParam("heading", "Heading", "north"), BoolParam("running", "Running", true)}},
	}}
	if p, ok := snap.Lookup("heading"); !ok || p.Value != "north" {
		t.Fatalf("lookup heading = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("running"); !ok || p.Value != "true" {
		t.Fatalf("lookup running = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key must not be found")
	}
}
