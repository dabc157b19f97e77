package marquee

import "time"

// Hold is a reason the driver is paused
type Hold uint8

const (
	HoldHover  Hold = 1 << iota // Pointer inside bounds with PauseOnHover
	HoldHidden                  // Host not visible (terminal focus lost)
	HoldOffscreen               // Instance bounds outside the host viewport
	HoldFrozen                  // Host-wide freeze
)

// Controller maps interaction events onto driver pause/resume
// Transitions are immediate and idempotent, the driver is paused while any hold is active
type Controller struct {
	driver       *Driver
	pauseOnHover bool
	holds        Hold
	hovered      bool
}

// NewController binds a controller to a driver
func NewController(d *Driver, pauseOnHover bool) *Controller {
	return &Controller{driver: d, pauseOnHover: pauseOnHover}
}

// Hovered reports pointer presence regardless of PauseOnHover
func (c *Controller) Hovered() bool {
	return c.hovered
}

// Holds returns the active hold set
func (c *Controller) Holds() Hold {
	return c.holds
}

// HoverEnter pauses when PauseOnHover is configured
func (c *Controller) HoverEnter(now time.Time) {
	c.hovered = true
	if c.pauseOnHover {
		c.set(HoldHover, true, now)
	}
}

// HoverLeave releases the hover hold
func (c *Controller) HoverLeave(now time.Time) {
	c.hovered = false
	c.set(HoldHover, false, now)
}

// SetVisible pauses on visibility loss and resumes on return
func (c *Controller) SetVisible(visible bool, now time.Time) {
	c.set(HoldHidden, !visible, now)
}

// SetOnscreen pauses while the instance is scrolled out of view
func (c *Controller) SetOnscreen(onscreen bool, now time.Time) {
	c.set(HoldOffscreen, !onscreen, now)
}

// SetFrozen applies a host-wide freeze
func (c *Controller) SetFrozen(frozen bool, now time.Time) {
	c.set(HoldFrozen, frozen, now)
}

// SetPauseOnHover rebinds the hover option, releasing a stale hover hold
func (c *Controller) SetPauseOnHover(enabled bool, now time.Time) {
	c.pauseOnHover = enabled
	c.set(HoldHover, enabled && c.hovered, now)
}

func (c *Controller) set(h Hold, on bool, now time.Time) {
	prev := c.holds
	if on {
		c.holds |= h
	} else {
		c.holds &^= h
	}
	switch {
	case prev == 0 && c.holds != 0:
		c.driver.Pause()
	case prev != 0 && c.holds == 0:
		c.driver.Resume(now)
	}
}
