package sim

import (
	"context"
	"time"
)

// Clock is virtual time plus the end of the current power window.
// It implements lamp.Sleeper.
type Clock struct {
	now      time.Duration
	powerEnd time.Duration
	powered  bool
}

// Now returns virtual time since the simulation started.
func (c *Clock) Now() time.Duration { return c.now }

// Powered reports whether a power window is open.
func (c *Clock) Powered() bool { return c.powered }

// PowerOn opens a window of length hold starting now.
func (c *Clock) PowerOn(hold time.Duration) {
	c.powered = true
	c.powerEnd = c.now + hold
}

// PowerOff closes the window at the current time.
func (c *Clock) PowerOff() { c.powered = false }

// Advance moves time forward while power is off.
func (c *Clock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Sleep advances by d. If the window closes first, time stops at the
// window's end and Sleep reports false.
func (c *Clock) Sleep(ctx context.Context, d time.Duration) bool {
	if !c.powered || ctx.Err() != nil {
		return false
	}
	if c.now+d >= c.powerEnd {
		c.now = c.powerEnd
		return false
	}
	c.now += d
	return true
}
