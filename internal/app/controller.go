package app

import (
	"fmt"
	"time"

	"langton/internal/ant"
	"langton/internal/core"
	"langton/pkg/api"
	"langton/pkg/logger"

	"github.com/sirupsen/logrus"
)

// rectZoomStep is how many cells a rectangle grows or shrinks per zoom notch.
const rectZoomStep = 5

// Controller binds one engine to one scheduler and exposes the user-level
// commands shared by the GUI and the stream server. Like the engine it is
// owned by a single goroutine.
type Controller struct {
	engine *ant.Engine
	clock  *core.FixedStep
	log    *logrus.Entry
}

// NewController wires e to clock.
func NewController(e *ant.Engine, clock *core.FixedStep) *Controller {
	return &Controller{
		engine: e,
		clock:  clock,
		log:    logger.Log.WithField("variant", e.Name()),
	}
}

// Engine returns the controlled engine.
func (c *Controller) Engine() *ant.Engine { return c.engine }

// Running reports whether the scheduler is running.
func (c *Controller) Running() bool { return c.clock.Running() }

// Speed returns the scheduler speed value.
func (c *Controller) Speed() int { return c.clock.Speed() }

// Start resumes stepping.
func (c *Controller) Start() {
	if c.clock.Running() {
		return
	}
	c.clock.Start()
	c.log.WithField("step", c.engine.Steps()).Debug("started")
}

// Stop pauses stepping.
func (c *Controller) Stop() {
	if !c.clock.Running() {
		return
	}
	c.clock.Stop()
	c.log.WithField("step", c.engine.Steps()).Debug("stopped")
}

// Toggle flips between running and stopped.
func (c *Controller) Toggle() {
	if c.clock.Running() {
		c.Stop()
		return
	}
	c.Start()
}

// Reset clears the engine. The running flag is kept.
func (c *Controller) Reset() {
	ev := c.engine.Reset()
	c.log.WithFields(logrus.Fields{
		"cleared": len(ev.Cleared),
		"running": c.clock.Running(),
	}).Info("reset")
}

// StepOnce performs a single transition regardless of the scheduler.
func (c *Controller) StepOnce() ant.StepEvent {
	return c.engine.Step()
}

// Advance performs the steps that are due at now and returns how many ran.
func (c *Controller) Advance(now time.Time) int {
	n := c.clock.Advance(now)
	c.engine.Run(n)
	return n
}

// SetSpeed changes the scheduler speed and returns the clamped value.
func (c *Controller) SetSpeed(speed int) int {
	applied := c.clock.SetSpeed(speed)
	c.log.WithField("speed", applied).Debug("speed changed")
	return applied
}

// Zoom shows fewer cells for positive notches and more for negative ones.
func (c *Controller) Zoom(notches int) error {
	if notches == 0 {
		return nil
	}
	v := c.engine.Viewport()
	if v.Shape == ant.ShapeCentered {
		return c.SetZoom(v.HalfX - notches)
	}
	return c.Resize(v.Width-notches*rectZoomStep, v.Height-notches*rectZoomStep)
}

// SetZoom sets the half-extent of a centered viewport.
func (c *Controller) SetZoom(zoom int) error {
	if err := c.engine.SetZoom(zoom); err != nil {
		return fmt.Errorf("zoom %d: %w", zoom, err)
	}
	c.log.WithField("zoom", c.engine.Zoom()).Debug("viewport changed")
	return nil
}

// Resize sets the dimensions of a rectangular viewport.
func (c *Controller) Resize(w, h int) error {
	if err := c.engine.ConfigureViewport(ant.RectViewport(w, h)); err != nil {
		return fmt.Errorf("resize %dx%d: %w", w, h, err)
	}
	v := c.engine.Viewport()
	c.log.WithFields(logrus.Fields{"w": v.Width, "h": v.Height}).Debug("viewport changed")
	return nil
}

// Apply executes a remote command.
func (c *Controller) Apply(cmd api.ClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	switch cmd.Action {
	case api.ActionStart:
		c.Start()
	case api.ActionStop:
		c.Stop()
	case api.ActionReset:
		c.Reset()
	case api.ActionStep:
		c.StepOnce()
	case api.ActionSpeed:
		c.SetSpeed(cmd.Value)
	case api.ActionZoom:
		return c.SetZoom(cmd.Value)
	case api.ActionResize:
		return c.Resize(cmd.Width, cmd.Height)
	}
	return nil
}

// Parameters merges the engine snapshot with the scheduler state.
func (c *Controller) Parameters() core.ParameterSnapshot {
	snap := c.engine.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Scheduler",
		Params: []core.Parameter{
			core.IntParam("speed", "Speed", c.clock.Speed()),
			core.BoolParam("running", "Running", c.clock.Running()),
		},
	})
	return snap
}

// ParameterControls lists the HUD-adjustable values.
func (c *Controller) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "speed", Label: "Speed", Type: core.ParamTypeInt, Step: 10, Min: core.MinSpeed, Max: core.MaxSpeed, HasMin: true, HasMax: true},
	}
	return append(controls, c.engine.ParameterControls()...)
}

// SetIntParameter routes HUD adjustments to the scheduler or the engine.
func (c *Controller) SetIntParameter(key string, value int) bool {
	if key == "speed" {
		c.SetSpeed(value)
		return true
	}
	return c.engine.SetIntParameter(key, value)
}

// Summary is a one-line description of the current state.
func (c *Controller) Summary() string {
	a := c.engine.Ant()
	return fmt.Sprintf("step=%d ant=(%d,%d) heading=%s black=%d speed=%d",
		c.engine.Steps(), a.Pos.X, a.Pos.Y, a.Heading, c.engine.BlackCount(), c.clock.Speed())
}

// Name returns the engine variant name.
func (c *Controller) Name() string { return c.engine.Name() }
