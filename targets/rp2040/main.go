//go:build rp2040 || rp2350

package main

import (
	"time"

	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/config"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/device"
)

func main() {
	cfg := config.Default()

	hw := core.Hardware{
		GPIO:    newGPIODriver(),
		ADC:     newADCDriver(),
		PWM:     newPWMDriver(),
		Timers:  newTimerDriver(),
		Console: newUSBConsole(),
		Mirror:  newMirrorUART(),
	}

	ctrl, err := device.New(cfg, hw)
	if err != nil {
		// Pin setup cannot fail on this board; if it somehow does there
		// is nothing to fall back to.
		for {
			time.Sleep(time.Second)
		}
	}

	start := time.Now()
	interval := time.Duration(cfg.Timing.UpdateIntervalMS) * time.Millisecond
	for {
		ctrl.Poll(uint32(time.Since(start).Milliseconds()))
		time.Sleep(interval)
	}
}
