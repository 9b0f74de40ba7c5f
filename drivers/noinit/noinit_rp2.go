//go:build rp2040 || rp2350

package noinit

import (
	"runtime/volatile"
	"unsafe"

	"offtime-go/services/lamp"
)

// Cells implements lamp.NoInit over the reserved RAM.
type Cells struct{}

func cell(s lamp.Slot) *volatile.Register8 {
	return (*volatile.Register8)(unsafe.Pointer(uintptr(Base) + uintptr(s)))
}

func (Cells) Load(s lamp.Slot) uint8 {
	if s >= Size {
		return 0xFF
	}
	return cell(s).Get()
}

func (Cells) Store(s lamp.Slot, v uint8) {
	if s >= Size {
		return
	}
	cell(s).Set(v)
}

var (
	_ lamp.NoInit = Cells{}
	_ [Size - lamp.NumSlots]struct{}
)
