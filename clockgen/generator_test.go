package clockgen_test

import (
	"testing"

	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/clockgen"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/sim"
)

const (
	testClockPin    = core.GPIOPin(9)
	testActivityLED = core.GPIOPin(5)
)

func newTestGenerator() (*clockgen.Generator, *sim.GPIO, *sim.PWM, *sim.Timers) {
	gpio := sim.NewGPIO()
	pwm := sim.NewPWM()
	timers := sim.NewTimers()
	g := clockgen.New(gpio, pwm, timers, testClockPin, testActivityLED)
	return g, gpio, pwm, timers
}

func TestGeneratorSoftwareToggle(t *testing.T) {
	g, gpio, _, timers := newTestGenerator()

	if err := g.SetFrequency(5); err != nil {
		t.Fatalf("SetFrequency(5): %v", err)
	}
	if g.Method() != clockgen.MethodSoftwareToggle {
		t.Fatalf("method = %v, want software toggle", g.Method())
	}
	if timers.Active() != 1 {
		t.Fatalf("active timers = %d, want 1", timers.Active())
	}
	// 5 Hz means a level flip every half period, 100 ms.
	if timers.LastPeriodUS() != 100000 {
		t.Errorf("timer period = %d us, want 100000", timers.LastPeriodUS())
	}

	timers.Fire()
	if !g.Level() || !gpio.Level(testClockPin) {
		t.Errorf("after one fire, level = %v pin = %v, want both high", g.Level(), gpio.Level(testClockPin))
	}
	if !gpio.Level(testActivityLED) {
		t.Errorf("activity LED should mirror a high output")
	}
	timers.Fire()
	if g.Level() || gpio.Level(testClockPin) {
		t.Errorf("after two fires, level = %v pin = %v, want both low", g.Level(), gpio.Level(testClockPin))
	}
}

func TestGeneratorPWM(t *testing.T) {
	g, gpio, pwm, timers := newTestGenerator()

	if err := g.SetFrequency(1000); err != nil {
		t.Fatalf("SetFrequency(1000): %v", err)
	}
	if g.Method() != clockgen.MethodPWM {
		t.Fatalf("method = %v, want PWM", g.Method())
	}
	if timers.Active() != 0 {
		t.Errorf("active timers = %d, want 0", timers.Active())
	}

	slice := pwm.Slice(core.PWMPin(testClockPin))
	if !slice.Enabled {
		t.Fatalf("slice not enabled")
	}
	want := clockgen.SolveDutyParams(1000)
	if slice.ClkDiv != want.ClkDiv || slice.Wrap != want.Wrap || slice.Level != want.Level {
		t.Errorf("slice = %+v, want %+v", slice, want)
	}
	if !gpio.Level(testActivityLED) {
		t.Errorf("activity LED should be lit while PWM runs")
	}
}

func TestGeneratorRetuneCancelsTimer(t *testing.T) {
	g, _, pwm, timers := newTestGenerator()

	if err := g.SetFrequency(3); err != nil {
		t.Fatalf("SetFrequency(3): %v", err)
	}
	if err := g.SetFrequency(500); err != nil {
		t.Fatalf("SetFrequency(500): %v", err)
	}
	if timers.Active() != 0 {
		t.Errorf("active timers after retune = %d, want 0", timers.Active())
	}
	if !pwm.Slice(core.PWMPin(testClockPin)).Enabled {
		t.Errorf("slice should be enabled after retune")
	}
}

func TestGeneratorStop(t *testing.T) {
	g, gpio, pwm, timers := newTestGenerator()

	if err := g.SetFrequency(1000); err != nil {
		t.Fatalf("SetFrequency(1000): %v", err)
	}
	g.Stop()
	if g.Method() != clockgen.MethodNone {
		t.Errorf("method after Stop = %v, want none", g.Method())
	}
	if g.Frequency() != 0 {
		t.Errorf("frequency after Stop = %d, want 0", g.Frequency())
	}
	if pwm.Slice(core.PWMPin(testClockPin)).Enabled {
		t.Errorf("slice still enabled after Stop")
	}
	if gpio.Level(testClockPin) {
		t.Errorf("output pin still high after Stop")
	}

	// Stop again with nothing running.
	g.Stop()
	if timers.Active() != 0 {
		t.Errorf("active timers = %d, want 0", timers.Active())
	}
}

func TestGeneratorHaltKeepsLevel(t *testing.T) {
	g, gpio, _, timers := newTestGenerator()

	if err := g.SetFrequency(5); err != nil {
		t.Fatalf("SetFrequency(5): %v", err)
	}
	timers.Fire()
	if !g.Level() {
		t.Fatalf("setup: level should be high after one fire")
	}

	g.Halt()
	if g.Method() != clockgen.MethodNone {
		t.Errorf("method after Halt = %v, want none", g.Method())
	}
	if g.Frequency() != 0 {
		t.Errorf("frequency after Halt = %d, want 0", g.Frequency())
	}
	if timers.Active() != 0 {
		t.Errorf("active timers = %d, want 0", timers.Active())
	}
	if !g.Level() || !gpio.Level(testClockPin) {
		t.Errorf("Halt must leave the output at its last level")
	}
}

func TestGeneratorFixedHighSpeed(t *testing.T) {
	g, _, pwm, _ := newTestGenerator()

	if err := g.StartFixedHighSpeed(); err != nil {
		t.Fatalf("StartFixedHighSpeed: %v", err)
	}
	if g.Frequency() != clockgen.HighSpeedHz {
		t.Errorf("frequency = %d, want %d", g.Frequency(), clockgen.HighSpeedHz)
	}
	slice := pwm.Slice(core.PWMPin(testClockPin))
	if slice.ClkDiv != clockgen.HighSpeedDivider || slice.Wrap != clockgen.HighSpeedWrap || slice.Level != clockgen.HighSpeedLevel {
		t.Errorf("slice = %+v, want the fixed 1 MHz pair", slice)
	}
}

func TestGeneratorStartRemote(t *testing.T) {
	g, _, pwm, _ := newTestGenerator()

	if err := g.StartRemote(10000); err != nil {
		t.Fatalf("StartRemote(10000): %v", err)
	}
	slice := pwm.Slice(core.PWMPin(testClockPin))
	want := clockgen.SolveRemoteDutyParams(10000)
	if slice.ClkDiv != want.ClkDiv || slice.Wrap != want.Wrap || slice.Level != want.Level {
		t.Errorf("slice = %+v, want %+v", slice, want)
	}
	if slice.Wrap != 1000 {
		t.Errorf("remote solve at 10 kHz should keep the seeded wrap of 1000, got %d", slice.Wrap)
	}
}

func TestGeneratorZeroFrequencyStops(t *testing.T) {
	g, _, _, timers := newTestGenerator()

	if err := g.SetFrequency(4); err != nil {
		t.Fatalf("SetFrequency(4): %v", err)
	}
	if err := g.SetFrequency(0); err != nil {
		t.Fatalf("SetFrequency(0): %v", err)
	}
	if g.Method() != clockgen.MethodNone {
		t.Errorf("method = %v, want none", g.Method())
	}
	if timers.Active() != 0 {
		t.Errorf("active timers = %d, want 0", timers.Active())
	}
}
