//go:build rp2040 || rp2350

package pwmout

import (
	"machine"

	"offtime-go/errcode"
	"offtime-go/x/timex"
)

// Config selects the pin and polarity. FreqHz 0 means DefaultFreqHz.
type Config struct {
	Pin       machine.Pin
	FreqHz    uint32
	ActiveLow bool
}

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Top() uint32
	Set(channel uint8, value uint32)
}

func pwmGroupBySlice(slice uint8) (pwmCtrl, bool) {
	switch slice {
	case 0:
		return machine.PWM0, true
	case 1:
		return machine.PWM1, true
	case 2:
		return machine.PWM2, true
	case 3:
		return machine.PWM3, true
	case 4:
		return machine.PWM4, true
	case 5:
		return machine.PWM5, true
	case 6:
		return machine.PWM6, true
	case 7:
		return machine.PWM7, true
	}
	return nil, false
}

// Configure claims cfg.Pin for PWM, sets the slice period and returns the
// output dark.
func Configure(cfg Config) (*Output, error) {
	slice, err := machine.PWMPeripheral(cfg.Pin)
	if err != nil {
		return nil, errcode.Wrap(errcode.InvalidParams, "pwmout.Configure", err)
	}
	ctrl, ok := pwmGroupBySlice(slice)
	if !ok {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "pwmout.Configure", Msg: "slice out of range"}
	}
	freq := cfg.FreqHz
	if freq == 0 {
		freq = DefaultFreqHz
	}
	if err := ctrl.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(freq)}); err != nil {
		return nil, errcode.Wrap(errcode.Error, "pwmout.Configure", err)
	}
	cfg.Pin.Configure(machine.PinConfig{Mode: machine.PinPWM})

	// Channel within the slice: even pin => A(0), odd pin => B(1).
	o := NewOutput(ctrl, uint8(cfg.Pin&1), cfg.ActiveLow)
	o.Set(0)
	return o, nil
}
