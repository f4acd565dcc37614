//go:build rp2040 || rp2350

package main

import (
	"machine"

	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
)

// rpGPIODriver drives pins through TinyGo's machine package.
type rpGPIODriver struct{}

func newGPIODriver() rpGPIODriver { return rpGPIODriver{} }

func (rpGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (rpGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (rpGPIODriver) SetPin(pin core.GPIOPin, value bool) {
	machine.Pin(pin).Set(value)
}

func (rpGPIODriver) ReadPin(pin core.GPIOPin) bool {
	return machine.Pin(pin).Get()
}
