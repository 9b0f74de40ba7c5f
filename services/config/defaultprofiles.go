package config

import "offtime-go/types"

// -----------------------------------------------------------------------------
// Embedded profiles
//
// Key: profile name (the value compiled in as SelectedName)
// Val: the profile. Lookup hands out copies, so these stay read-only.
// -----------------------------------------------------------------------------

// nanjg6 is the classic six-mode layout: four fixed levels, the ramp, and
// the level picked on the ramp. A full power-off forgets the mode.
var nanjg6 = types.Profile{
	Name: "nanjg6",
	Modes: []types.ModeSpec{
		types.Fixed(0xFF),
		types.Fixed(0x40),
		types.Fixed(0x10),
		types.Fixed(0x04),
		types.Ramp(),
		types.Resume(),
	},
	Memory:   types.ForgetOnReset,
	Persist:  types.PersistEEPROM,
	ModeAddr: 0x0000,
	Ramp: types.RampSpec{
		Curve:     "sin_squared_half",
		Traversal: types.RiseFall,
		StepMs:    30,
	},
}

var embeddedProfiles = map[string]types.Profile{
	"nanjg6": nanjg6,

	"nanjg6_memory": func() types.Profile {
		p := nanjg6
		p.Name = "nanjg6_memory"
		p.Memory = types.RememberOnReset
		return p
	}(),

	"basic4": {
		Name: "basic4",
		Modes: []types.ModeSpec{
			types.Fixed(0xFF),
			types.Fixed(0x40),
			types.Ramp(),
			types.Resume(),
		},
		Memory:   types.RememberOnReset,
		Persist:  types.PersistEEPROM,
		ModeAddr: 0x0000,
		Ramp: types.RampSpec{
			Curve:     "squared",
			Traversal: types.Rising,
			StepMs:    60,
		},
	},

	// No EEPROM: the mode lives next to the decay flag and is lost with it.
	"volatile4": {
		Name: "volatile4",
		Modes: []types.ModeSpec{
			types.Fixed(0xFF),
			types.Fixed(0x10),
			types.Ramp(),
			types.Resume(),
		},
		Memory:  types.ForgetOnReset,
		Persist: types.PersistVolatile,
		Ramp: types.RampSpec{
			Curve:     "sin_squared_half",
			Traversal: types.RiseFall,
			StepMs:    30,
		},
	},
}
