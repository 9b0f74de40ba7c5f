package sim

import (
	"math/rand/v2"
	"time"

	"offtime-go/services/lamp"
)

// DefaultWindow is the nominal time the decoupling capacitor keeps SRAM
// contents after power is removed.
const DefaultWindow = 500 * time.Millisecond

// Capacitor models uninitialised RAM that keeps its contents through a short
// power gap. It implements lamp.NoInit.
type Capacitor struct {
	cells  [lamp.NumSlots]uint8
	window time.Duration
	rng    *rand.Rand
}

// NewCapacitor returns a cold (fully decayed) capacitor. window <= 0 selects
// DefaultWindow.
func NewCapacitor(window time.Duration, seed uint64) *Capacitor {
	if window <= 0 {
		window = DefaultWindow
	}
	c := &Capacitor{window: window, rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
	c.decay()
	return c
}

func (c *Capacitor) Load(s lamp.Slot) uint8     { return c.cells[s] }
func (c *Capacitor) Store(s lamp.Slot, v uint8) { c.cells[s] = v }

// Window returns the retention threshold.
func (c *Capacitor) Window() time.Duration { return c.window }

// Drain applies a power gap. Gaps shorter than the window keep every cell.
func (c *Capacitor) Drain(gap time.Duration) {
	if gap >= c.window {
		c.decay()
	}
}

// decay sets random bits in every cell. Bits drift towards 1, so the
// decay flag always ends up non-zero.
func (c *Capacitor) decay() {
	for i := range c.cells {
		c.cells[i] |= uint8(c.rng.Uint32())
	}
	c.cells[lamp.SlotDecay] |= 1 << c.rng.IntN(8)
}
