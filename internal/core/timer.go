package core

import "time"

const (
	// MinSpeed and MaxSpeed bound the user-adjustable speed value.
	MinSpeed = 1
	MaxSpeed = 1000
	// DefaultSpeed yields the classic 10ms step interval.
	DefaultSpeed = 100
	// MaxBurst caps how many steps a single Advance may report.
	MaxBurst = 1000
)

// FixedStep schedules automaton steps at a fixed interval derived from a
// speed value: interval = 1000/speed milliseconds. The owner polls Advance
// from its loop and performs that many steps; stopping simply means Advance
// reports zero until Start is called again.
type FixedStep struct {
	speed       int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	running     bool
}

// NewFixedStep constructs a stopped FixedStep controller for the given speed.
// A zero speed selects DefaultSpeed.
func NewFixedStep(speed int) *FixedStep {
	if speed == 0 {
		speed = DefaultSpeed
	}
	fs := &FixedStep{}
	fs.SetSpeed(speed)
	return fs
}

// SetSpeed changes the step rate and returns the clamped value that was
// applied. It is safe to call from the main loop.
func (f *FixedStep) SetSpeed(speed int) int {
	speed = ClampInt(speed, MinSpeed, MaxSpeed)
	f.speed = speed
	f.step = time.Second / time.Duration(speed)
	return speed
}

// Speed returns the active speed value.
func (f *FixedStep) Speed() int { return f.speed }

// Interval returns the delay between two steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Running reports whether steps are currently being scheduled.
func (f *FixedStep) Running() bool { return f.running }

// Start resumes scheduling. The first Advance after Start reports a step
// immediately.
func (f *FixedStep) Start() {
	if f.running {
		return
	}
	f.running = true
	f.accumulator = f.step
	f.last = time.Time{}
}

// Stop cancels the pending steps.
func (f *FixedStep) Stop() {
	f.running = false
	f.accumulator = 0
	f.last = time.Time{}
}

// Advance reports how many steps are due at now.
func (f *FixedStep) Advance(now time.Time) int {
	if !f.running {
		return 0
	}
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	if f.accumulator < f.step {
		return 0
	}
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if n > MaxBurst {
		n = MaxBurst
		f.accumulator = 0
	}
	return n
}

// ClampInt restricts v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
