package config

import (
	"offtime-go/curves"
	"offtime-go/errcode"
	"offtime-go/types"
	"offtime-go/x/strx"
)

// MaxModes bounds the mode table. The index is persisted as one byte but a
// single-switch light past a dozen modes is unusable.
const MaxModes = 16

// EmbeddedProfileLookup allows overriding how profiles are resolved.
var EmbeddedProfileLookup = func(name string) (types.Profile, bool) {
	p, ok := embeddedProfiles[name]
	return p, ok
}

// Names lists the embedded profiles.
func Names() []string {
	out := make([]string, 0, len(embeddedProfiles))
	for n := range embeddedProfiles {
		out = append(out, n)
	}
	return out
}

// Selected returns the profile compiled in via build tags.
func Selected() (*types.Profile, error) { return Lookup(SelectedName) }

// Lookup returns a validated copy of the named profile.
func Lookup(name string) (*types.Profile, error) {
	p, ok := EmbeddedProfileLookup(name)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownProfile, Op: "config.Lookup", Msg: name}
	}
	cp := clone(p)
	if err := Validate(cp); err != nil {
		return nil, err
	}
	return cp, nil
}

func clone(p types.Profile) *types.Profile {
	p.Modes = append([]types.ModeSpec(nil), p.Modes...)
	return &p
}

// Canonicalize fills defaults and normalises enum spellings in place.
func Canonicalize(p *types.Profile) {
	p.Name = strx.Coalesce(p.Name, "custom")
	p.Memory = types.MemoryPolicy(strx.Coalesce(strx.Normalize(string(p.Memory)), string(types.ForgetOnReset)))
	p.Persist = types.Persist(strx.Coalesce(strx.Normalize(string(p.Persist)), string(types.PersistEEPROM)))
	p.Ramp.Traversal = types.Traversal(strx.Coalesce(strx.Normalize(string(p.Ramp.Traversal)), string(types.RiseFall)))
	p.Ramp.Curve = strx.Coalesce(strx.Normalize(p.Ramp.Curve), curves.Default)
	if p.Ramp.StepMs == 0 {
		p.Ramp.StepMs = 30
	}
	for i := range p.Modes {
		p.Modes[i].Kind = types.ModeKind(strx.Normalize(string(p.Modes[i].Kind)))
	}
}

// Validate checks that p can be dispatched as written. It does not
// canonicalise; call Canonicalize first for hand-written profiles.
func Validate(p *types.Profile) error {
	if p == nil {
		return invalid("nil profile")
	}
	if n := len(p.Modes); n == 0 || n > MaxModes {
		return invalid("mode count must be 1..16")
	}
	var ramps, resumes int
	for _, m := range p.Modes {
		switch m.Kind {
		case types.ModeFixed:
		case types.ModeRamp:
			ramps++
		case types.ModeResume:
			resumes++
		default:
			return invalid("unknown mode kind: " + string(m.Kind))
		}
	}
	if ramps > 1 || resumes > 1 {
		return invalid("at most one ramp and one resume mode")
	}
	if resumes == 1 && ramps == 0 {
		return invalid("resume mode needs a ramp mode to record a level")
	}
	switch p.Memory {
	case types.ForgetOnReset, types.RememberOnReset:
	default:
		return invalid("unknown memory policy: " + string(p.Memory))
	}
	switch p.Persist {
	case types.PersistEEPROM:
	case types.PersistVolatile:
		if p.Memory == types.RememberOnReset {
			return invalid("volatile persistence cannot remember across a full reset")
		}
	default:
		return invalid("unknown persistence: " + string(p.Persist))
	}
	if ramps == 1 {
		if t, ok := curves.Lookup(p.Ramp.Curve); !ok || len(t) == 0 {
			return &errcode.E{C: errcode.UnknownCurve, Op: "config.Validate", Msg: p.Ramp.Curve}
		}
		switch p.Ramp.Traversal {
		case types.Rising, types.RiseFall:
		default:
			return invalid("unknown traversal: " + string(p.Ramp.Traversal))
		}
		if p.Ramp.StepMs == 0 || p.Ramp.StepMs > 1000 {
			return invalid("ramp step must be 1..1000 ms")
		}
	}
	return nil
}

func invalid(msg string) error {
	return &errcode.E{C: errcode.InvalidProfile, Op: "config.Validate", Msg: msg}
}
