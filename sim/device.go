package sim

import (
	"context"
	"time"

	"offtime-go/errcode"
	"offtime-go/services/lamp"
	"offtime-go/types"
)

// Options tune the hardware models. Zero values select defaults.
type Options struct {
	Window     time.Duration // capacitor retention
	WriteCycle time.Duration // EEPROM write time
	Seed       uint64        // decay pattern seed
}

// Boot is what one power-on did.
type Boot struct {
	At       time.Duration // power-on time
	Hold     time.Duration // how long power stayed on
	Decision lamp.Decision
	Level    uint8 // level showing when power went away
	Writes   int   // output writes during this boot
}

// Device is a simulated light: one profile wired to modelled hardware.
type Device struct {
	Profile *types.Profile
	Clock   *Clock
	Cap     *Capacitor
	EEPROM  *EEPROM
	Out     *Output
}

// New builds a cold device (capacitor decayed, EEPROM erased).
func New(p *types.Profile, opt Options) *Device {
	clk := &Clock{}
	return &Device{
		Profile: p,
		Clock:   clk,
		Cap:     NewCapacitor(opt.Window, opt.Seed),
		EEPROM:  NewEEPROM(clk, opt.WriteCycle),
		Out:     NewOutput(clk),
	}
}

// On powers the device for hold and runs one boot to its end.
func (d *Device) On(hold time.Duration) (Boot, error) {
	b := Boot{At: d.Clock.Now(), Hold: hold}
	first := len(d.Out.Samples)

	d.Clock.PowerOn(hold)
	err := lamp.Boot(context.Background(), d.Profile, lamp.Env{
		Out:        d.Out,
		Mem:        d.Cap,
		Store:      d.EEPROM,
		Sleep:      d.Clock,
		OnDecision: func(x lamp.Decision) { b.Decision = x },
	})
	// Time not consumed by the boot itself passes with the light on.
	d.Clock.Advance(b.At + hold - d.Clock.Now())
	d.Clock.PowerOff()

	b.Level = d.Out.Level()
	b.Writes = len(d.Out.Samples) - first
	d.Out.Dark()
	if errcode.Of(err) != errcode.PowerLost {
		return b, err
	}
	return b, nil
}

// Off leaves the device unpowered for gap.
func (d *Device) Off(gap time.Duration) {
	d.Clock.Advance(gap)
	d.Cap.Drain(gap)
}

// PersistedMode returns the mode the next boot will read back. A mode
// address outside the chip reads as 0xFF, like a floating bus.
func (d *Device) PersistedMode() uint8 {
	if d.Profile.Persist == types.PersistVolatile {
		return d.Cap.Load(lamp.SlotMode)
	}
	v, err := d.EEPROM.Peek(d.Profile.ModeAddr)
	if err != nil {
		return 0xFF
	}
	return v
}
