package types

import "time"

// ------------------------
// Boot classification
// ------------------------

// Class is the Decay Sensor's verdict on the power-off interval that preceded this boot.
type Class string

const (
	// ShortPress: the decay flag was still zero, so power was absent only briefly.
	ShortPress Class = "short_press"
	// FullReset: the flag decayed (long power-off) or this is a cold boot.
	FullReset Class = "full_reset"
)

func (c Class) String() string { return string(c) }

// ------------------------
// Modes
// ------------------------

type ModeKind string

const (
	ModeFixed  ModeKind = "fixed"  // constant level
	ModeRamp   ModeKind = "ramp"   // interactive brightness sweep
	ModeResume ModeKind = "resume" // level last shown by the ramp
)

func (k ModeKind) String() string { return string(k) }

type ModeSpec struct {
	Kind  ModeKind `json:"kind" yaml:"kind"`
	Level uint8    `json:"level,omitempty" yaml:"level,omitempty"` // ModeFixed only
}

func Fixed(level uint8) ModeSpec { return ModeSpec{Kind: ModeFixed, Level: level} }
func Ramp() ModeSpec             { return ModeSpec{Kind: ModeRamp} }
func Resume() ModeSpec           { return ModeSpec{Kind: ModeResume} }

// MemoryPolicy decides what a FullReset boot does with the persisted mode.
type MemoryPolicy string

const (
	ForgetOnReset   MemoryPolicy = "forget"   // restart from mode 0
	RememberOnReset MemoryPolicy = "remember" // resume the same mode, no advance
)

// Persist selects where the mode index lives between boots.
type Persist string

const (
	PersistEEPROM   Persist = "eeprom"   // survives full power loss
	PersistVolatile Persist = "volatile" // uninitialised RAM, lost with the decay flag
)

// ------------------------
// Ramp
// ------------------------

// Traversal is the order in which the ramp visits table positions.
type Traversal string

const (
	Rising   Traversal = "rising"    // 0..N-1, 0..N-1, ...
	RiseFall Traversal = "rise_fall" // 0..N-1, N-1..1, 0..N-1, ...
)

type RampSpec struct {
	Curve     string    `json:"curve" yaml:"curve"`
	Traversal Traversal `json:"traversal" yaml:"traversal"`
	StepMs    uint16    `json:"step_ms" yaml:"step_ms"`
}

// Step returns the delay between ramp positions.
func (r RampSpec) Step() time.Duration { return time.Duration(r.StepMs) * time.Millisecond }
