//go:build rp2040 || rp2350

// Command offtime-fw is the light's firmware: one boot cycle per power-on,
// with the mode chosen by how long the power was off.
package main

import (
	"context"
	"time"

	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"

	"offtime-go/drivers/eeprom"
	"offtime-go/drivers/noinit"
	"offtime-go/drivers/pwmout"
	"offtime-go/services/config"
	"offtime-go/services/lamp"
	"offtime-go/types"
	"offtime-go/x/logx"
)

const (
	ledPin   = machine.GPIO15 // driver gate (Pico pinout)
	traceBps = 115200
)

func main() {
	// Trace goes to UART1 (TX=GP8) so USB enumeration never delays the boot.
	trace := uartx.UART1
	if err := trace.Configure(uartx.UARTConfig{
		BaudRate: traceBps,
		TX:       uartx.UART1_TX_PIN,
		RX:       uartx.UART1_RX_PIN,
	}); err == nil {
		logx.Output = func(line string) {
			_, _ = trace.Write([]byte(line))
			_, _ = trace.Write([]byte("\r\n"))
		}
	}

	p, err := config.Selected()
	if err != nil {
		logx.Warn("main", "profile", "err", err)
		halt()
	}

	out, err := pwmout.Configure(pwmout.Config{Pin: ledPin})
	if err != nil {
		logx.Warn("main", "pwm", "err", err)
		halt()
	}

	env := lamp.Env{Out: out, Mem: noinit.Cells{}}
	if p.Persist != types.PersistVolatile {
		bus := machine.I2C0
		if err := bus.Configure(machine.I2CConfig{
			SDA:       machine.I2C0_SDA_PIN,
			SCL:       machine.I2C0_SCL_PIN,
			Frequency: 400 * machine.KHz,
		}); err != nil {
			logx.Warn("main", "i2c", "err", err)
		}
		env.Store = eeprom.New(bus, eeprom.Config{})
	}

	err = lamp.Boot(context.Background(), p, env)
	logx.Warn("main", "boot returned", "err", err)
	halt()
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
