//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"

	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
)

// rpADCDriver implements core.ADCDriver using TinyGo's machine.ADC.
type rpADCDriver struct {
	// Per-channel TinyGo ADC handles.
	channels map[core.ADCChannelID]*machine.ADC
}

func newADCDriver() *rpADCDriver {
	return &rpADCDriver{channels: make(map[core.ADCChannelID]*machine.ADC)}
}

func (d *rpADCDriver) Init() error {
	machine.InitADC()
	return nil
}

// ConfigureChannel sets up one of the four external ADC inputs.
func (d *rpADCDriver) ConfigureChannel(ch core.ADCChannelID) error {
	if _, ok := d.channels[ch]; ok {
		// already configured
		return nil
	}

	var adc machine.ADC
	switch ch {
	case 0:
		adc = machine.ADC{Pin: machine.ADC0}
	case 1:
		adc = machine.ADC{Pin: machine.ADC1}
	case 2:
		adc = machine.ADC{Pin: machine.ADC2}
	case 3:
		adc = machine.ADC{Pin: machine.ADC3}
	default:
		return errors.New("unsupported ADC channel")
	}

	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		return err
	}

	d.channels[ch] = &adc
	return nil
}

// ReadRaw returns a raw 12-bit ADC value (0-4095) from a channel.
func (d *rpADCDriver) ReadRaw(ch core.ADCChannelID) (core.ADCValue, error) {
	adc, ok := d.channels[ch]
	if !ok {
		if err := d.ConfigureChannel(ch); err != nil {
			return 0, err
		}
		adc = d.channels[ch]
	}

	// TinyGo rp2040 ADC returns a 12-bit value (0..4095).
	return core.ADCValue(adc.Get()), nil
}
