package types

// Profile is the compile-time configuration of one driver build.
// len(Modes) is the mode count; indices outside it are never dispatched.
type Profile struct {
	Name     string       `json:"name" yaml:"name"`
	Modes    []ModeSpec   `json:"modes" yaml:"modes"`
	Memory   MemoryPolicy `json:"memory" yaml:"memory"`
	Persist  Persist      `json:"persist" yaml:"persist"`
	ModeAddr uint16       `json:"mode_addr" yaml:"mode_addr"` // EEPROM address of the persisted mode
	Ramp     RampSpec     `json:"ramp" yaml:"ramp"`
}

// Count returns the number of modes as a byte-sized index bound.
func (p *Profile) Count() uint8 { return uint8(len(p.Modes)) }

// Has reports whether any mode is of kind k.
func (p *Profile) Has(k ModeKind) bool {
	for _, m := range p.Modes {
		if m.Kind == k {
			return true
		}
	}
	return false
}
