package lamp

import (
	"context"
	"time"

	"offtime-go/x/timex"
)

// Output is the light's single intensity register. A written level holds
// until the next write.
type Output interface {
	Set(level uint8)
}

// Slot names one byte of the volatile tier.
type Slot uint8

const (
	SlotDecay Slot = iota // decay flag: zero means power was absent only briefly
	SlotLevel             // last level shown by the ramp
	SlotMode              // next mode, for profiles without an EEPROM
	NumSlots
)

// NoInit is the fast tier: bytes that are not cleared at startup and that
// keep their contents only across a short power interruption.
type NoInit interface {
	Load(s Slot) uint8
	Store(s Slot, v uint8)
}

// Store is the slow tier: byte-addressable memory that survives full power
// loss. WaitReady must succeed before a write is issued.
type Store interface {
	WaitReady(ctx context.Context) error
	ReadByte(addr uint16) (uint8, error)
	WriteByte(addr uint16, v uint8) error
}

// Sleeper paces behaviours. Sleep reports false once power is gone (on a
// host: the context ended or the simulated power window closed).
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) bool
}

// RealSleeper sleeps on the wall clock.
type RealSleeper struct{}

func (RealSleeper) Sleep(ctx context.Context, d time.Duration) bool { return timex.Sleep(ctx, d) }

// Env bundles the collaborators of one boot.
type Env struct {
	Out   Output
	Mem   NoInit
	Store Store // may be nil for volatile-persist profiles
	Sleep Sleeper

	// OnDecision, if set, observes the mode choice after it is persisted
	// and before dispatch.
	OnDecision func(Decision)
}
