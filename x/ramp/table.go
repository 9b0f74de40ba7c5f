package ramp

import (
	"time"

	"offtime-go/types"
)

// Step applies the level at the current position.
type Step func(level uint8)

// Tick waits for d and reports whether to continue (false => power gone or cancelled).
type Tick func(d time.Duration) bool

// Cursor walks table positions under a traversal policy.
// The zero value is not usable; use NewCursor.
type Cursor struct {
	n     int
	pos   int
	phase int // RiseFall: step within one 2n-1 long cycle
	tr    types.Traversal
}

// NewCursor returns a cursor over n positions, starting at 0.
// Unknown traversals behave as Rising. n < 1 is treated as 1.
func NewCursor(n int, tr types.Traversal) *Cursor {
	if n < 1 {
		n = 1
	}
	return &Cursor{n: n, tr: tr}
}

// Pos returns the current position.
func (c *Cursor) Pos() int { return c.pos }

// Advance moves to the next position and returns it.
// RiseFall shows the top position twice and the bottom once per cycle:
// 0..n-1, n-1..1, then 0 again.
func (c *Cursor) Advance() int {
	if c.n == 1 {
		return 0
	}
	if c.tr != types.RiseFall {
		c.pos++
		if c.pos == c.n {
			c.pos = 0
		}
		return c.pos
	}
	c.phase++
	if c.phase == 2*c.n-1 {
		c.phase = 0
	}
	if c.phase < c.n {
		c.pos = c.phase
	} else {
		c.pos = 2*c.n - 1 - c.phase
	}
	return c.pos
}

// Walk sweeps table synchronously (caller-driven): set the level at the
// current position, wait one step, advance. It returns the number of
// levels applied once tick reports false. An empty table applies nothing.
func Walk(table []uint8, tr types.Traversal, step time.Duration, tick Tick, set Step) int {
	if len(table) == 0 {
		return 0
	}
	c := NewCursor(len(table), tr)
	applied := 0
	for {
		set(table[c.Pos()])
		applied++
		if !tick(step) {
			return applied
		}
		c.Advance()
	}
}
