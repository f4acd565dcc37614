//go:build rp2040 || rp2350

package main

import (
	"machine"

	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
)

// pwmPeripheral is an interface for PWM hardware peripherals.
// This abstracts over TinyGo's unexported *pwmGroup type.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// rpPWMDriver drives the RP2040's 8 hardware PWM slices.
// GPIO pin N maps to slice (N >> 1) & 0x7, channel N & 1.
type rpPWMDriver struct {
	peripherals map[uint8]pwmPeripheral
	channels    map[uint32]uint8
}

func newPWMDriver() *rpPWMDriver {
	return &rpPWMDriver{
		peripherals: make(map[uint8]pwmPeripheral),
		channels:    make(map[uint32]uint8),
	}
}

// ConfigureSquareWave programs a slice from a divider/wrap/level triple.
// TinyGo's machine.PWM API is period-based, so the triple is converted:
// period_ns = clkDiv * (wrap+1) * 1e9 / 125 MHz, and the level is scaled
// against the slice's actual top value.
func (d *rpPWMDriver) ConfigureSquareWave(pin core.PWMPin, clkDiv float32, wrap, level uint16) error {
	pinNum := uint32(pin)
	sliceNum := uint8((pinNum >> 1) & 0x7)

	pwm, ok := d.peripherals[sliceNum]
	if !ok {
		pwm = slicePeripheral(sliceNum)
		d.peripherals[sliceNum] = pwm
	}

	counts := float64(clkDiv) * float64(uint32(wrap)+1)
	period := uint64(counts * 1000000000 / 125000000)
	if err := pwm.Configure(machine.PWMConfig{Period: period}); err != nil {
		return err
	}

	ch, err := pwm.Channel(machine.Pin(pinNum))
	if err != nil {
		return err
	}
	d.channels[pinNum] = ch

	top := uint64(pwm.Top())
	duty := uint64(level) * (top + 1) / uint64(uint32(wrap)+1)
	pwm.Set(ch, uint32(duty))
	return nil
}

// Disable holds the pin low. TinyGo has no direct way to detach a slice;
// a zero duty keeps the output inactive.
func (d *rpPWMDriver) Disable(pin core.PWMPin) error {
	pinNum := uint32(pin)
	ch, ok := d.channels[pinNum]
	if !ok {
		return nil
	}
	sliceNum := uint8((pinNum >> 1) & 0x7)
	if pwm, ok := d.peripherals[sliceNum]; ok {
		pwm.Set(ch, 0)
	}
	delete(d.channels, pinNum)
	return nil
}

// slicePeripheral returns the PWM peripheral for a slice number.
// TinyGo defines PWM0-PWM7 as global variables of type *pwmGroup.
func slicePeripheral(sliceNum uint8) pwmPeripheral {
	switch sliceNum {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return machine.PWM0
	}
}
