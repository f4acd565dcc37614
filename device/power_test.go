package device

import (
	"strings"
	"testing"

	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
)

func TestPowerButtonToggles(t *testing.T) {
	r := newRig(t)
	powerLine := core.GPIOPin(r.cfg.Pins.PowerOutput)
	powerLED := core.GPIOPin(r.cfg.Pins.LEDPowerOn)

	r.press(r.cfg.Pins.ButtonPower)
	r.c.Poll(100)
	r.release(r.cfg.Pins.ButtonPower)

	if !r.c.PowerOn() {
		t.Fatalf("power should be on after first press")
	}
	if r.gpio.Level(powerLine) {
		t.Errorf("power line should be driven low when on")
	}
	if !r.gpio.Level(powerLED) {
		t.Errorf("power LED should be lit when on")
	}
	if !strings.Contains(r.console.Output(), "Power ON") {
		t.Errorf("missing power report:\n%s", r.console.Output())
	}

	r.press(r.cfg.Pins.ButtonPower)
	r.c.Poll(200)
	r.release(r.cfg.Pins.ButtonPower)

	if r.c.PowerOn() {
		t.Fatalf("power should be off after second press")
	}
	if !r.gpio.Level(powerLine) {
		t.Errorf("power line should return high when off")
	}
	if !strings.Contains(r.console.Output(), "Power OFF") {
		t.Errorf("missing power report:\n%s", r.console.Output())
	}
}

func TestPowerOnForcesSingleStep(t *testing.T) {
	r := newRig(t)

	r.adc.Set(core.ADCChannelID(r.cfg.Pins.PotentiometerChannel), 4095)
	r.c.SetMode(ModeLowFreq, 0)

	r.press(r.cfg.Pins.ButtonPower)
	r.c.Poll(100)
	r.release(r.cfg.Pins.ButtonPower)

	if r.c.Mode() != ModeSingleStep {
		t.Fatalf("mode = %v, want single step after power-on edge", r.c.Mode())
	}
	if !strings.Contains(r.console.Output(), "Power ON - automatically switched to Mode 1 (Single Step)") {
		t.Errorf("missing mode switch report:\n%s", r.console.Output())
	}
}

func TestPowerOffKeepsMode(t *testing.T) {
	r := newRig(t)

	r.press(r.cfg.Pins.ButtonPower)
	r.c.Poll(100)
	r.release(r.cfg.Pins.ButtonPower)

	r.c.SetMode(ModeHighFreq, 200)

	r.press(r.cfg.Pins.ButtonPower)
	r.c.Poll(300)
	r.release(r.cfg.Pins.ButtonPower)

	if r.c.PowerOn() {
		t.Fatalf("power should be off")
	}
	if r.c.Mode() != ModeHighFreq {
		t.Errorf("mode = %v, want unchanged high frequency", r.c.Mode())
	}
}
