package device

import (
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/button"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
)

// Debounced input IDs. The UART-entry gesture shares the tracker with
// the physical buttons.
const (
	inputSingleStep = button.InputID("mode-single-step")
	inputLowFreq    = button.InputID("mode-low-freq")
	inputHighFreq   = button.InputID("mode-high-freq")
	inputReset      = button.InputID("reset")
	inputPower      = button.InputID("power")
	inputUARTEntry  = button.InputID("uart-entry")
)

// buttonPressed reads an active-low button and debounces it.
func (c *Controller) buttonPressed(pin uint32, id button.InputID, nowMS uint32) bool {
	asserted := !c.hw.GPIO.ReadPin(core.GPIOPin(pin))
	return c.debounce.Pressed(id, asserted, nowMS)
}

// handleButtons routes the three mode-select buttons. The single-step
// button does double duty: in single-step mode it toggles the output,
// from any other mode it selects single-step.
func (c *Controller) handleButtons(nowMS uint32) {
	if c.buttonPressed(c.cfg.Pins.ButtonSingleStep, inputSingleStep, nowMS) {
		if c.mode == ModeSingleStep {
			c.gen.Toggle()
			c.singleStepActive = true
		} else {
			c.SetMode(ModeSingleStep, nowMS)
		}
	}

	if c.buttonPressed(c.cfg.Pins.ButtonLowFreq, inputLowFreq, nowMS) {
		c.SetMode(ModeLowFreq, nowMS)
	}

	if c.buttonPressed(c.cfg.Pins.ButtonHighFreq, inputHighFreq, nowMS) {
		c.SetMode(ModeHighFreq, nowMS)
	}
}

// anyButtonPressed reports the raw (undebounced) state of the three
// mode-select buttons; UART control mode exits on any of them.
func (c *Controller) anyButtonPressed() bool {
	g := c.hw.GPIO
	p := c.cfg.Pins
	return !g.ReadPin(core.GPIOPin(p.ButtonSingleStep)) ||
		!g.ReadPin(core.GPIOPin(p.ButtonLowFreq)) ||
		!g.ReadPin(core.GPIOPin(p.ButtonHighFreq))
}

// checkUARTEntry enters UART control mode when a byte arrives on the
// console while another mode is active. The gesture is debounced like
// a button and the triggering byte is consumed.
func (c *Controller) checkUARTEntry(nowMS uint32) {
	if _, ok := c.hw.Console.TryReadByte(); !ok {
		return
	}
	if c.debounce.Pressed(inputUARTEntry, true, nowMS) {
		c.SetMode(ModeUARTControl, nowMS)
	}
}
