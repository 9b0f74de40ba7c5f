// Package pwmout drives the light's intensity register: an 8-bit level
// written to one PWM channel and scaled onto the slice's counter top.
package pwmout

import "offtime-go/x/mathx"

// DefaultFreqHz is the fixed PWM frequency; high enough to be flicker-free.
const DefaultFreqHz = 20_000

// Controller is one PWM slice as the output sees it.
type Controller interface {
	Top() uint32
	Set(channel uint8, value uint32)
}

// Output implements lamp.Output on one channel of a controller.
type Output struct {
	ctrl      Controller
	ch        uint8 // 0 => A, 1 => B
	activeLow bool
	level     uint8
}

// NewOutput wraps an already configured controller.
func NewOutput(ctrl Controller, ch uint8, activeLow bool) *Output {
	return &Output{ctrl: ctrl, ch: ch & 1, activeLow: activeLow}
}

// Set writes level; 0 is dark and 255 is full on.
func (o *Output) Set(level uint8) {
	o.ctrl.Set(o.ch, Duty(level, o.ctrl.Top(), o.activeLow))
	o.level = level
}

// Level returns the last level written.
func (o *Output) Level() uint8 { return o.level }

// Duty maps an 8-bit level onto [0, top], inverted for active-low drivers.
func Duty(level uint8, top uint32, activeLow bool) uint32 {
	d := uint32(mathx.Rescale(uint32(level), 255, top))
	if activeLow {
		return top - d
	}
	return d
}
