package sim

import "time"

// Sample is one write to the output register.
type Sample struct {
	At    time.Duration
	Level uint8
}

// Output records every level written. It implements lamp.Output.
type Output struct {
	clock   *Clock
	level   uint8
	Samples []Sample
}

func NewOutput(clock *Clock) *Output { return &Output{clock: clock} }

func (o *Output) Set(level uint8) {
	o.level = level
	o.Samples = append(o.Samples, Sample{At: o.clock.Now(), Level: level})
}

// Level returns the level currently shown.
func (o *Output) Level() uint8 { return o.level }

// Dark records the light going out at power loss without a register write.
func (o *Output) Dark() {
	o.level = 0
	o.Samples = append(o.Samples, Sample{At: o.clock.Now()})
}
