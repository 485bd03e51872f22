package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"langton/internal/ant"
	"langton/internal/core"
	"langton/pkg/api"
)

func newController(shape ant.Shape) *Controller {
	cfg := ant.DefaultConfig()
	cfg.Shape = shape
	cfg.HalfExtent = 10
	return NewController(ant.New(cfg), core.NewFixedStep(100))
}

func TestControllerAdvanceRespectsRunningFlag(t *testing.T) {
	c := newController(ant.ShapeRect)
	now := time.Unix(50, 0)
	if n := c.Advance(now); n != 0 || c.Engine().Steps() != 0 {
		t.Fatalf("stopped controller ran %d steps", n)
	}

	c.Start()
	c.Advance(now)
	c.Advance(now.Add(100 * time.Millisecond))
	if got := c.Engine().Steps(); got != 11 {
		t.Fatalf("steps = %d, want 11", got)
	}

	c.Reset()
	if !c.Running() {
		t.Fatal("reset must not change the running flag")
	}
	if c.Engine().Steps() != 0 {
		t.Fatal("reset must clear the step counter")
	}

	c.Toggle()
	if c.Running() {
		t.Fatal("toggle must stop a running controller")
	}
}

func TestControllerSlowDownStopsAtMinimum(t *testing.T) {
	c := newController(ant.ShapeRect)
	c.SetSpeed(10)
	if got := c.SetSpeed(c.Speed() - 10); got != core.MinSpeed {
		t.Fatalf("slowing down from 10 gave speed %d, want %d", got, core.MinSpeed)
	}
	if got := c.SetSpeed(c.Speed() - 10); got != core.MinSpeed {
		t.Fatalf("slowing down below the minimum gave speed %d", got)
	}
}

func TestControllerApply(t *testing.T) {
	c := newController(ant.ShapeCentered)

	for _, cmd := range []api.ClientCommand{
		{Action: api.ActionStep},
		{Action: api.ActionStep},
		{Action: api.ActionSpeed, Value: 5000},
		{Action: api.ActionZoom, Value: 4},
		{Action: api.ActionStart},
	} {
		if err := c.Apply(cmd); err != nil {
			t.Fatalf("%+v: %v", cmd, err)
		}
	}
	if c.Engine().Steps() != 2 || c.Speed() != core.MaxSpeed || c.Engine().Zoom() != 4 || !c.Running() {
		t.Fatalf("unexpected state: %s", c.Summary())
	}

	err := c.Apply(api.ClientCommand{Action: api.ActionResize, Width: 5, Height: 5})
	if !errors.Is(err, ant.ErrShapeMismatch) {
		t.Fatalf("resize on centered viewport: %v", err)
	}
	if err := c.Apply(api.ClientCommand{Action: "warp"}); !errors.Is(err, api.ErrUnknownAction) {
		t.Fatalf("unknown action: %v", err)
	}

	if err := c.Apply(api.ClientCommand{Action: api.ActionReset}); err != nil {
		t.Fatal(err)
	}
	if c.Engine().Steps() != 0 || c.Engine().Zoom() != 4 {
		t.Fatal("reset must clear history but keep the zoom")
	}
}

func TestControllerZoom(t *testing.T) {
	centered := newController(ant.ShapeCentered)
	if err := centered.Zoom(3); err != nil {
		t.Fatal(err)
	}
	if centered.Engine().Zoom() != 7 {
		t.Fatalf("zoom in by 3 from 10 = %d, want 7", centered.Engine().Zoom())
	}
	if err := centered.Zoom(100); err != nil {
		t.Fatal(err)
	}
	if centered.Engine().Zoom() != ant.MinZoom {
		t.Fatalf("zoom must clamp at %d, got %d", ant.MinZoom, centered.Engine().Zoom())
	}

	rect := newController(ant.ShapeRect)
	if err := rect.Zoom(-2); err != nil {
		t.Fatal(err)
	}
	if v := rect.Engine().Viewport(); v.Width != 60 || v.Height != 60 {
		t.Fatalf("zoom out on rectangle = %dx%d, want 60x60", v.Width, v.Height)
	}
}

func TestControllerParameters(t *testing.T) {
	c := newController(ant.ShapeRect)
	if !c.SetIntParameter("speed", 250) || c.Speed() != 250 {
		t.Fatalf("speed = %d", c.Speed())
	}
	if !c.SetIntParameter("w", 30) || c.Engine().Viewport().Width != 30 {
		t.Fatal("width not routed to the engine")
	}
	snap := c.Parameters()
	if p, ok := snap.Lookup("speed"); !ok || p.Value != "250" {
		t.Fatalf("speed parameter %+v", p)
	}
	if p, ok := snap.Lookup("running"); !ok || p.Value != "false" {
		t.Fatalf("running parameter %+v", p)
	}
	controls := c.ParameterControls()
	if len(controls) != 3 || controls[0].Key != "speed" {
		t.Fatalf("controls %+v", controls)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-variant", "langton-centered", "-half", "12", "-speed", "40", "-paused"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != "langton-centered" || cfg.Half != 12 || cfg.Speed != 40 || !cfg.Paused {
		t.Fatalf("parsed %+v", cfg)
	}
	factory, ok := ant.Variants()[cfg.Variant]
	if !ok {
		t.Fatalf("variant %q not registered", cfg.Variant)
	}
	e := factory(cfg.EngineConfig())
	if e.Zoom() != 12 {
		t.Fatalf("zoom = %d, want 12", e.Zoom())
	}
}
