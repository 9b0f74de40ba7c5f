// Package eeprom keeps small values in an AT24Cxx I²C EEPROM.
//
// It wraps tinygo.org/x/drivers/at24cx and adds the ready wait the chip
// needs after a write: during its internal write cycle (up to ~5 ms) the
// device does not acknowledge its address, so WaitReady polls with a
// harmless one-byte read until the chip answers.
//
//	d := eeprom.New(machine.I2C0, eeprom.Config{})
//	if err := d.WaitReady(ctx); err == nil {
//		_ = d.WriteByte(0x0000, mode)
//	}
package eeprom

import (
	"context"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/at24cx"

	"offtime-go/errcode"
)

// Config controls addressing and the ready wait. All fields are optional.
type Config struct {
	// Address defaults to at24cx.Address (0x57) if zero.
	Address uint16
	// Size is the capacity in bytes. Default 4096 (AT24C32).
	Size uint16
	// PageSize defaults to 32.
	PageSize uint16
	// Poll is the delay between readiness probes. Default 1 ms.
	Poll time.Duration
	// ReadyTimeout bounds WaitReady. Default 20 ms (several write cycles).
	ReadyTimeout time.Duration
}

// Device is an AT24Cxx with a ready wait.
type Device struct {
	dev   at24cx.Device
	cfg   Config
	sleep func(time.Duration)
}

// New creates the device object. The I2C bus must already be configured.
// It does not touch the chip.
func New(bus drivers.I2C, cfg Config) *Device {
	if cfg.Size == 0 {
		cfg.Size = 4096
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 32
	}
	if cfg.Poll <= 0 {
		cfg.Poll = time.Millisecond
	}
	if cfg.ReadyTimeout <= 0 {
		cfg.ReadyTimeout = 20 * time.Millisecond
	}
	d := &Device{dev: at24cx.New(bus), cfg: cfg, sleep: time.Sleep}
	if cfg.Address != 0 {
		d.dev.Address = cfg.Address
	}
	d.dev.Configure(at24cx.Config{PageSize: cfg.PageSize, EndRAMAddress: cfg.Size})
	return d
}

// WaitReady blocks until the chip acknowledges, ReadyTimeout passes
// (errcode.Timeout) or ctx ends.
func (d *Device) WaitReady(ctx context.Context) error {
	deadline := time.Now().Add(d.cfg.ReadyTimeout)
	for {
		if _, err := d.dev.ReadByte(0); err == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return &errcode.E{C: errcode.NotReady, Op: "eeprom.WaitReady", Err: err}
		}
		if !time.Now().Before(deadline) {
			return &errcode.E{C: errcode.Timeout, Op: "eeprom.WaitReady"}
		}
		d.sleep(d.cfg.Poll)
	}
}

// ReadByte reads one byte.
func (d *Device) ReadByte(addr uint16) (uint8, error) {
	if addr >= d.cfg.Size {
		return 0, &errcode.E{C: errcode.InvalidParams, Op: "eeprom.ReadByte", Msg: "address out of range"}
	}
	v, err := d.dev.ReadByte(addr)
	if err != nil {
		return 0, errcode.Wrap(errcode.StoreFault, "eeprom.ReadByte", err)
	}
	return v, nil
}

// WriteByte starts a one-byte write. The chip is busy afterwards; call
// WaitReady before the next access.
func (d *Device) WriteByte(addr uint16, v uint8) error {
	if addr >= d.cfg.Size {
		return &errcode.E{C: errcode.InvalidParams, Op: "eeprom.WriteByte", Msg: "address out of range"}
	}
	if err := d.dev.WriteByte(addr, v); err != nil {
		return errcode.Wrap(errcode.StoreFault, "eeprom.WriteByte", err)
	}
	return nil
}
