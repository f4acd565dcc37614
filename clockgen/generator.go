package clockgen

import (
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
)

// Method identifies how the clock output is currently being generated.
type Method uint8

const (
	// MethodNone means the output line is idle.
	MethodNone Method = iota

	// MethodSoftwareToggle means a repeating timer flips the line.
	MethodSoftwareToggle

	// MethodPWM means a hardware slice drives the line.
	MethodPWM
)

// Generator drives the single clock output line. Exactly one generation
// method is active at a time; every retune stops the previous method
// before starting the next.
type Generator struct {
	gpio   core.GPIODriver
	pwm    core.PWMDriver
	timers core.TimerDriver

	clockPin    core.GPIOPin
	activityLED core.GPIOPin

	level     bool
	frequency uint32
	method    Method
	toggler   core.RepeatingTimer
}

// New returns a generator for the given output pin. The activity LED
// mirrors the output level (or PWM activity) as a pure display.
func New(gpio core.GPIODriver, pwm core.PWMDriver, timers core.TimerDriver, clockPin, activityLED core.GPIOPin) *Generator {
	return &Generator{
		gpio:        gpio,
		pwm:         pwm,
		timers:      timers,
		clockPin:    clockPin,
		activityLED: activityLED,
	}
}

// Level reports the current output level. Meaningful for the idle and
// software-toggle methods; under PWM the line is hardware-driven.
func (g *Generator) Level() bool { return g.level }

// Frequency reports the advisory target frequency in Hz, 0 when idle.
func (g *Generator) Frequency() uint32 { return g.frequency }

// Method reports the active generation method.
func (g *Generator) Method() Method { return g.method }

// SetOutput drives the output line to the given level and mirrors it on
// the activity LED.
func (g *Generator) SetOutput(level bool) {
	g.level = level
	g.gpio.SetPin(g.clockPin, level)
	g.gpio.SetPin(g.activityLED, level)
}

// Toggle flips the output line once (single-step mode and the remote
// "toggle" command).
func (g *Generator) Toggle() {
	g.SetOutput(!g.level)
}

// SetFrequency retunes the output to targetHz. A target of 0 stops
// generation. Targets below the PWM floor are toggled in software at
// half-period; everything else is handed to the hardware slice with
// parameters from SolveDutyParams.
func (g *Generator) SetFrequency(targetHz uint32) error {
	g.stopGeneration()
	g.frequency = targetHz
	if targetHz == 0 {
		return nil
	}

	if targetHz < MinPWMHz {
		periodUS := 1000000 / (targetHz * 2)
		t, err := g.timers.StartRepeating(periodUS, g.Toggle)
		if err != nil {
			return err
		}
		g.toggler = t
		g.method = MethodSoftwareToggle
		return nil
	}

	return g.startPWM(SolveDutyParams(targetHz))
}

// StartFixedHighSpeed drives the fixed 1 MHz output using the constant
// divider/wrap pair, bypassing the solver.
func (g *Generator) StartFixedHighSpeed() error {
	g.stopGeneration()
	g.frequency = HighSpeedHz
	return g.startPWM(DutyParams{ClkDiv: HighSpeedDivider, Wrap: HighSpeedWrap, Level: HighSpeedLevel})
}

// StartRemote retunes the output for a remote-control frequency using
// the free-form solver.
func (g *Generator) StartRemote(targetHz uint32) error {
	g.stopGeneration()
	g.frequency = targetHz
	return g.startPWM(SolveRemoteDutyParams(targetHz))
}

// Halt stops the active generation method but leaves the output line
// at its last level, so manual toggling can pick up from there. The
// stored frequency is cleared.
func (g *Generator) Halt() {
	g.stopGeneration()
	g.frequency = 0
}

// Stop halts whichever generation method is active and releases the
// output line low. Idempotent.
func (g *Generator) Stop() {
	g.stopGeneration()
	g.frequency = 0
	g.SetOutput(false)
}

func (g *Generator) startPWM(p DutyParams) error {
	if err := g.pwm.ConfigureSquareWave(core.PWMPin(g.clockPin), p.ClkDiv, p.Wrap, p.Level); err != nil {
		return err
	}
	g.method = MethodPWM
	g.gpio.SetPin(g.activityLED, true)
	return nil
}

// stopGeneration cancels the active method without touching the stored
// frequency. The software-toggle path leaves the line at its last
// level; the PWM path releases it low.
func (g *Generator) stopGeneration() {
	if g.toggler != nil {
		g.toggler.Cancel()
		g.toggler = nil
	}
	if g.method == MethodPWM {
		g.pwm.Disable(core.PWMPin(g.clockPin))
		g.SetOutput(false)
	}
	g.method = MethodNone
}
