// clocksim runs the clock source control core against in-memory
// hardware so the command interpreter can be exercised on a
// workstation. Standard input feeds the device console byte for byte:
// the first keystroke enters UART control mode, after which the full
// command set (menu, freq, reset, power ...) behaves as on the bench.
package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/pkg/profile"

	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/config"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/device"
	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/sim"
)

func main() {
	pot := flag.Int("pot", 2048, "potentiometer reading (0-4095)")
	mirror := flag.Bool("mirror", false, "copy status blocks to stderr like the bench UART")
	runFor := flag.Duration("run", 0, "exit after this duration (0 = run until interrupted)")
	prof := flag.Bool("profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *pot < 0 || *pot > 4095 {
		log.Fatalf("pot value %d out of range 0-4095", *pot)
	}
	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg := config.Default()
	adc := sim.NewADC()
	adc.Set(core.ADCChannelID(cfg.Pins.PotentiometerChannel), core.ADCValue(*pot))

	var mu sync.Mutex
	var mirrorOut io.Writer
	if *mirror {
		mirrorOut = os.Stderr
	}

	hw := core.Hardware{
		GPIO:    sim.NewGPIO(),
		ADC:     adc,
		PWM:     sim.NewPWM(),
		Timers:  lockedTimers{mu: &mu},
		Console: newStdinConsole(),
		Mirror:  mirrorOut,
	}

	ctrl, err := device.New(cfg, hw)
	if err != nil {
		log.Fatalf("device init: %v", err)
	}

	start := time.Now()
	var deadline time.Time
	if *runFor > 0 {
		deadline = start.Add(*runFor)
	}

	ticker := time.NewTicker(time.Duration(cfg.Timing.UpdateIntervalMS) * time.Millisecond)
	defer ticker.Stop()
	for now := range ticker.C {
		if !deadline.IsZero() && now.After(deadline) {
			return
		}
		mu.Lock()
		ctrl.Poll(uint32(time.Since(start).Milliseconds()))
		mu.Unlock()
	}
}

// stdinConsole adapts standard input/output to core.ByteStream. A
// reader goroutine feeds a channel so TryReadByte never blocks the
// polling loop.
type stdinConsole struct {
	in chan byte
}

func newStdinConsole() *stdinConsole {
	s := &stdinConsole{in: make(chan byte, 256)}
	go func() {
		r := bufio.NewReader(os.Stdin)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.in)
				return
			}
			s.in <- b
		}
	}()
	return s
}

func (s *stdinConsole) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (s *stdinConsole) TryReadByte() (byte, bool) {
	select {
	case b, ok := <-s.in:
		if !ok {
			return 0, false
		}
		return b, true
	default:
		return 0, false
	}
}

// lockedTimers drives software-toggle callbacks from real goroutines
// but runs them under the same lock as the polling loop, since the
// controller is single-threaded by contract.
type lockedTimers struct {
	mu *sync.Mutex
}

type lockedTimer struct {
	stop chan struct{}
	once sync.Once
}

func (t *lockedTimer) Cancel() {
	t.once.Do(func() { close(t.stop) })
}

func (lt lockedTimers) StartRepeating(periodMicros uint32, fn func()) (core.RepeatingTimer, error) {
	t := &lockedTimer{stop: make(chan struct{})}
	ticker := time.NewTicker(time.Duration(periodMicros) * time.Microsecond)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				lt.mu.Lock()
				select {
				case <-t.stop:
					lt.mu.Unlock()
					return
				default:
				}
				fn()
				lt.mu.Unlock()
			}
		}
	}()
	return t, nil
}
