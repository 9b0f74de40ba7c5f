package sim

import (
	"context"
	"time"

	"offtime-go/errcode"
)

// DefaultWriteCycle is a typical AT24Cxx internal write time.
const DefaultWriteCycle = 5 * time.Millisecond

// EEPROM models a small byte-addressed EEPROM on the virtual clock. Fresh
// cells read 0xFF, as on an erased chip. It implements lamp.Store.
type EEPROM struct {
	clock     *Clock
	mem       [256]uint8
	cycle     time.Duration
	busyUntil time.Duration
	Writes    int
}

// NewEEPROM returns an erased chip. cycle <= 0 selects DefaultWriteCycle.
func NewEEPROM(clock *Clock, cycle time.Duration) *EEPROM {
	if cycle <= 0 {
		cycle = DefaultWriteCycle
	}
	e := &EEPROM{clock: clock, cycle: cycle}
	for i := range e.mem {
		e.mem[i] = 0xFF
	}
	return e
}

// Peek returns a cell without timing checks.
func (e *EEPROM) Peek(addr uint16) (uint8, error) {
	if err := e.inRange(addr, "sim.EEPROM.Peek"); err != nil {
		return 0, err
	}
	return e.mem[addr], nil
}

// Poke sets a cell without timing checks.
func (e *EEPROM) Poke(addr uint16, v uint8) error {
	if err := e.inRange(addr, "sim.EEPROM.Poke"); err != nil {
		return err
	}
	e.mem[addr] = v
	return nil
}

func (e *EEPROM) busy() bool { return e.clock.Now() < e.busyUntil }

// WaitReady sleeps on the virtual clock until the write cycle ends.
func (e *EEPROM) WaitReady(ctx context.Context) error {
	for e.busy() {
		if !e.clock.Sleep(ctx, time.Millisecond) {
			return &errcode.E{C: errcode.NotReady, Op: "sim.EEPROM.WaitReady", Err: errcode.PowerLost}
		}
	}
	return nil
}

func (e *EEPROM) ReadByte(addr uint16) (uint8, error) {
	if err := e.check(addr, "sim.EEPROM.ReadByte"); err != nil {
		return 0, err
	}
	return e.mem[addr], nil
}

func (e *EEPROM) WriteByte(addr uint16, v uint8) error {
	if err := e.check(addr, "sim.EEPROM.WriteByte"); err != nil {
		return err
	}
	e.mem[addr] = v
	e.Writes++
	e.busyUntil = e.clock.Now() + e.cycle
	return nil
}

func (e *EEPROM) inRange(addr uint16, op string) error {
	if int(addr) >= len(e.mem) {
		return &errcode.E{C: errcode.InvalidParams, Op: op, Msg: "address out of range"}
	}
	return nil
}

func (e *EEPROM) check(addr uint16, op string) error {
	if err := e.inRange(addr, op); err != nil {
		return err
	}
	if e.busy() {
		return &errcode.E{C: errcode.StoreFault, Op: op, Msg: "nack: write cycle in progress"}
	}
	return nil
}
