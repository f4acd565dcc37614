// Package device implements the control core of the multimode clock
// source: the mode state machine, the reset-pulse sequencer, the power
// latch and the UART remote-control interpreter, tied together by a
// cooperative polling loop.
package device

import (
	"fmt"

	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/button"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/clockgen"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/config"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
)

// Controller owns all mutable device state. All methods must be called
// from a single goroutine; timestamps are captured once per poll and
// passed down, never re-read mid-operation.
type Controller struct {
	cfg *config.Config
	hw  core.Hardware

	gen      *clockgen.Generator
	debounce *button.Debouncer

	mode             Mode
	prevMode         Mode
	singleStepActive bool

	powerOn bool

	// Reset sequencer. session is nil when no pulse is in flight.
	session         *resetSession
	resetOutputHigh bool
	resetDone       bool
	resetDoneAtMS   uint32

	// UART control session.
	uartRunning    bool
	uartFrequency  uint32
	cmdBuf         [cmdBufferSize]byte
	cmdLen         int
	uartDeadlineMS uint32
}

// New wires a controller to its hardware and configures every pin to
// its quiescent state: buttons pulled up, LEDs off, clock output low,
// reset output high, power output high (power off, inverted line).
func New(cfg *config.Config, hw core.Hardware) (*Controller, error) {
	c := &Controller{
		cfg:             cfg,
		hw:              hw,
		debounce:        button.NewDebouncer(cfg.Timing.DebounceDelayMS),
		resetOutputHigh: true,
	}
	c.gen = clockgen.New(hw.GPIO, hw.PWM, hw.Timers,
		core.GPIOPin(cfg.Pins.ClockOutput), core.GPIOPin(cfg.Pins.LEDClockActivity))

	if err := c.configurePins(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) configurePins() error {
	p := c.cfg.Pins
	g := c.hw.GPIO

	inputs := []uint32{p.ButtonSingleStep, p.ButtonLowFreq, p.ButtonHighFreq, p.ButtonReset, p.ButtonPower}
	for _, pin := range inputs {
		if err := g.ConfigureInputPullUp(core.GPIOPin(pin)); err != nil {
			return err
		}
	}

	outputs := []uint32{
		p.LEDClockActivity, p.LEDSingleStep, p.LEDLowFreq, p.LEDHighFreq,
		p.LEDUARTMode, p.LEDResetLow, p.LEDResetHigh, p.LEDPowerOn,
		p.ClockOutput, p.ResetOutput, p.PowerOutput,
	}
	for _, pin := range outputs {
		if err := g.ConfigureOutput(core.GPIOPin(pin)); err != nil {
			return err
		}
	}

	// Idle-high lines: reset output, and the inverted power line
	// (high = powered off).
	g.SetPin(core.GPIOPin(p.ResetOutput), true)
	g.SetPin(core.GPIOPin(p.PowerOutput), true)

	if err := c.hw.ADC.Init(); err != nil {
		return err
	}
	return c.hw.ADC.ConfigureChannel(core.ADCChannelID(p.PotentiometerChannel))
}

// Mode reports the active mode.
func (c *Controller) Mode() Mode { return c.mode }

// Poll runs one iteration of the control loop. nowMS is a monotonic
// millisecond timestamp captured by the caller.
func (c *Controller) Poll(nowMS uint32) {
	// Mode-button handling is mutually exclusive with UART control:
	// while the remote session is active, a mode button exits it back
	// to the remembered mode instead of selecting a mode directly.
	if c.mode == ModeUARTControl {
		c.handleUARTControl(nowMS)
	} else {
		c.handleButtons(nowMS)
		c.checkUARTEntry(nowMS)
	}

	c.handleResetButton(nowMS)
	c.handlePowerButton(nowMS)

	if c.mode == ModeLowFreq {
		c.updateLowFrequency(nowMS)
	}

	c.updateResetState(nowMS)
	c.updateResetLEDs(nowMS)
}

// SetMode switches the active mode. The transition is atomic with
// respect to the polling loop: generation is stopped, any UART session
// is cleared, the output line is forced low, and the new mode's entry
// action runs before the method returns.
func (c *Controller) SetMode(mode Mode, nowMS uint32) {
	c.gen.Stop()

	if c.mode == ModeUARTControl {
		c.resetUARTControlState()
	}

	c.prevMode = c.mode
	c.mode = mode
	c.singleStepActive = false
	c.gen.SetOutput(false)

	switch mode {
	case ModeSingleStep:
		// Idle: frequency stays 0 until the button is pressed.

	case ModeLowFreq:
		c.updateLowFrequency(nowMS)

	case ModeHighFreq:
		_ = c.gen.StartFixedHighSpeed()

	case ModeUARTControl:
		c.uartDeadlineMS = nowMS + c.cfg.Timing.UARTMenuTimeoutMS
		c.showUARTMenu()
	}

	c.updateLEDs()
	c.printStatus()
}

// updateLowFrequency resamples the potentiometer and retunes the
// generator when the mapped frequency changed. Out-of-range targets
// are clamped by the mapping, never rejected: the potentiometer has no
// channel to report an error to.
func (c *Controller) updateLowFrequency(nowMS uint32) {
	raw, err := c.hw.ADC.ReadRaw(core.ADCChannelID(c.cfg.Pins.PotentiometerChannel))
	if err != nil {
		return
	}
	freq := clockgen.FrequencyFromPot(uint16(raw))
	if freq != c.gen.Frequency() {
		_ = c.gen.SetFrequency(freq)
		c.printStatus()
	}
}

// printf writes to the remote-control console.
func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.hw.Console, format, args...)
}
