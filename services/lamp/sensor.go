package lamp

import "offtime-go/types"

// Sensor interprets the decay flag. The flag is read at most once per boot
// and must be read before it is re-armed; Sense does both in that order.
type Sensor struct {
	mem   NoInit
	class types.Class
	read  bool
}

func NewSensor(mem NoInit) *Sensor { return &Sensor{mem: mem} }

// Classify reads the flag on first use and returns the cached verdict after that.
func (s *Sensor) Classify() types.Class {
	if !s.read {
		s.read = true
		if s.mem.Load(SlotDecay) == 0 {
			s.class = types.ShortPress
		} else {
			s.class = types.FullReset
		}
	}
	return s.class
}

// Arm clears the flag so the next boot measures the off-time from now.
func (s *Sensor) Arm() { s.mem.Store(SlotDecay, 0) }

// Sense classifies, then arms.
func (s *Sensor) Sense() types.Class {
	c := s.Classify()
	s.Arm()
	return c
}
