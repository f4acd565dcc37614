package device

import (
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/clockgen"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
)

// updateLEDs recomputes the mode and activity indicators as a pure
// function of current state. Reset and power LEDs are driven by their
// own update paths.
func (c *Controller) updateLEDs() {
	g := c.hw.GPIO
	p := c.cfg.Pins

	g.SetPin(core.GPIOPin(p.LEDSingleStep), c.mode == ModeSingleStep)
	g.SetPin(core.GPIOPin(p.LEDLowFreq), c.mode == ModeLowFreq)
	g.SetPin(core.GPIOPin(p.LEDHighFreq), c.mode == ModeHighFreq)
	g.SetPin(core.GPIOPin(p.LEDUARTMode), c.mode == ModeUARTControl)

	active := c.gen.Method() == clockgen.MethodPWM || c.gen.Level()
	g.SetPin(core.GPIOPin(p.LEDClockActivity), active)
}
