package device

import "github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"

// handlePowerButton flips the power latch on a debounced press of the
// dedicated power button.
func (c *Controller) handlePowerButton(nowMS uint32) {
	if !c.buttonPressed(c.cfg.Pins.ButtonPower, inputPower, nowMS) {
		return
	}
	c.togglePower(nowMS)
	if c.powerOn {
		c.printf("Power ON\n")
	} else {
		c.printf("Power OFF\n")
	}
}

// togglePower flips the latch. The OFF-to-ON edge forces the device
// back to single-step mode; this is the one path that can leave UART
// control without its own exit logic running first.
func (c *Controller) togglePower(nowMS uint32) {
	was := c.powerOn
	c.setPowerState(!c.powerOn)
	if !was && c.powerOn {
		c.SetMode(ModeSingleStep, nowMS)
		c.printf("Power ON - automatically switched to Mode 1 (Single Step)\n")
	}
}

// setPowerState latches the state and drives the output line. The line
// is inverted: low means powered on.
func (c *Controller) setPowerState(on bool) {
	c.powerOn = on
	c.hw.GPIO.SetPin(core.GPIOPin(c.cfg.Pins.PowerOutput), !on)
	c.hw.GPIO.SetPin(core.GPIOPin(c.cfg.Pins.LEDPowerOn), on)
}

// PowerOn reports the power latch state.
func (c *Controller) PowerOn() bool { return c.powerOn }
