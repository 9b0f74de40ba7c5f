package lamp

import (
	"context"
	"errors"
	"time"
)

type fakeMem [NumSlots]uint8

func (m *fakeMem) Load(s Slot) uint8     { return m[s] }
func (m *fakeMem) Store(s Slot, v uint8) { m[s] = v }

type fakeStore struct {
	bytes    map[uint16]uint8
	writes   int
	readErr  error
	writeErr error
	readyErr error
}

func newFakeStore() *fakeStore { return &fakeStore{bytes: map[uint16]uint8{}} }

func (s *fakeStore) WaitReady(context.Context) error { return s.readyErr }

func (s *fakeStore) ReadByte(addr uint16) (uint8, error) {
	if s.readErr != nil {
		return 0xEE, s.readErr
	}
	return s.bytes[addr], nil
}

func (s *fakeStore) WriteByte(addr uint16, v uint8) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes++
	s.bytes[addr] = v
	return nil
}

type fakeOut struct{ levels []uint8 }

func (o *fakeOut) Set(l uint8) { o.levels = append(o.levels, l) }

func (o *fakeOut) last() (uint8, bool) {
	if len(o.levels) == 0 {
		return 0, false
	}
	return o.levels[len(o.levels)-1], true
}

// budgetSleeper allows n sleeps, then reports power loss.
type budgetSleeper struct {
	n     int
	slept []time.Duration
}

func (b *budgetSleeper) Sleep(_ context.Context, d time.Duration) bool {
	if b.n <= 0 {
		return false
	}
	b.n--
	b.slept = append(b.slept, d)
	return true
}

var errBus = errors.New("bus nack")
