package marquee

import (
	"math"
	"time"
)

// State is the animation driver lifecycle state
type State uint8

const (
	StateIdle State = iota
	StateMeasuring
	StateRunning
	StatePaused
	StateStopped
)

var stateNames = [...]string{"idle", "measuring", "running", "paused", "stopped"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Driver advances the scroll offset of one marquee instance
// Not safe for concurrent use: owned by the instance and mutated only from its frame callback
//
// Idle -> Measuring -> Running <-> Paused -> Stopped
type Driver struct {
	state State

	unit   Extent
	offset float64
	last   time.Time // Anchor for the next delta, reset on every transition into Running

	rate    float64 // Literal cells/s, 0 when duration-driven
	dur     time.Duration
	sign    int
	maxStep time.Duration

	held bool // Pause requested, applied on entering Running

	// OnWrap receives the number of whole repeat units crossed in a tick
	OnWrap func(wraps int)
}

// NewDriver creates an idle driver for a normalized config
func NewDriver(cfg Config) *Driver {
	d := &Driver{}
	d.configure(cfg)
	return d
}

func (d *Driver) configure(cfg Config) {
	d.rate = cfg.Speed
	if math.IsNaN(d.rate) || math.IsInf(d.rate, 0) || d.rate < 0 {
		d.rate = 0
	}
	d.dur = cfg.Duration
	if d.dur <= 0 {
		d.dur = MinDuration
	}
	d.sign = cfg.Sign()
	d.maxStep = cfg.MaxStep
	if d.maxStep <= 0 {
		d.maxStep = DefaultMaxStep
	}
}

// State returns the current lifecycle state
func (d *Driver) State() State {
	return d.state
}

// Offset returns the wrapped offset, always in [0, unit) once measured
func (d *Driver) Offset() float64 {
	return d.offset
}

// Unit returns the cached repeat unit, Unmeasured while measuring
func (d *Driver) Unit() Extent {
	return d.unit
}

// Velocity returns the signed rate in cells per second
// Positive velocity grows the offset, which moves content toward the axis origin
func (d *Driver) Velocity() float64 {
	if !d.unit.Valid() {
		return 0
	}
	rate := d.rate
	if rate <= 0 {
		rate = float64(d.unit) / d.dur.Seconds()
	}
	return -float64(d.sign) * rate
}

// Start moves an idle driver into Measuring, called on mount
func (d *Driver) Start() {
	if d.state == StateIdle {
		d.state = StateMeasuring
	}
}

// SetUnit supplies a measurement, an invalid unit keeps the driver measuring
func (d *Driver) SetUnit(unit Extent, now time.Time) {
	if d.state != StateMeasuring {
		return
	}
	if !unit.Valid() {
		return
	}
	d.unit = unit
	d.offset = 0
	d.last = now
	if d.held {
		d.state = StatePaused
	} else {
		d.state = StateRunning
	}
}

// Invalidate drops the cached unit and restarts measurement
// Used on direction, reverse or content change
func (d *Driver) Invalidate() {
	if d.state == StateIdle || d.state == StateStopped {
		return
	}
	d.unit = Unmeasured
	d.offset = 0
	d.last = time.Time{}
	d.state = StateMeasuring
}

// Reconfigure applies a new config and restarts measurement
func (d *Driver) Reconfigure(cfg Config) {
	if d.state == StateStopped {
		return
	}
	d.configure(cfg)
	d.Invalidate()
}

// Tick advances the offset to now and returns it
// Delta is clamped to [0, MaxStep] and the wrap is a Euclidean modulo, so any delta stays in range
func (d *Driver) Tick(now time.Time) float64 {
	if d.state != StateRunning {
		return d.offset
	}

	dt := now.Sub(d.last)
	d.last = now
	if dt <= 0 {
		return d.offset
	}
	if dt > d.maxStep {
		dt = d.maxStep
	}

	u := float64(d.unit)
	next := d.offset + d.Velocity()*dt.Seconds()
	wraps := int(math.Abs(math.Floor(next / u)))

	next = math.Mod(next, u)
	if next < 0 {
		next += u
	}
	// Float rounding can land exactly on u after the negative fixup
	if next >= u {
		next = 0
	}
	d.offset = next

	if wraps > 0 && d.OnWrap != nil {
		d.OnWrap(wraps)
	}
	return d.offset
}

// Pause freezes the offset, no-op unless running
// While measuring the request is remembered and applied once the unit arrives
func (d *Driver) Pause() {
	d.held = true
	if d.state == StateRunning {
		d.state = StatePaused
	}
}

// Resume continues from the frozen offset, delta is measured from now
func (d *Driver) Resume(now time.Time) {
	d.held = false
	if d.state == StatePaused {
		d.last = now
		d.state = StateRunning
	}
}

// Stop is terminal, no further offset writes happen
func (d *Driver) Stop() {
	d.state = StateStopped
	d.OnWrap = nil
}
