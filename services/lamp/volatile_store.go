package lamp

import "context"

// VolatileStore keeps the mode in SlotMode instead of an EEPROM. The
// address is ignored. After a long power-off the byte is garbage, which
// mode normalisation absorbs.
type VolatileStore struct {
	Mem NoInit
}

func (VolatileStore) WaitReady(context.Context) error { return nil }

func (s VolatileStore) ReadByte(uint16) (uint8, error) { return s.Mem.Load(SlotMode), nil }

func (s VolatileStore) WriteByte(_ uint16, v uint8) error {
	s.Mem.Store(SlotMode, v)
	return nil
}
