// Package sim provides in-memory implementations of the core driver
// interfaces for package tests and the host simulator.
package sim

import (
	"bytes"

	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
)

// GPIO is an in-memory pin bank. Inputs configured with a pull-up read
// high until a test drives them low with SetInput.
type GPIO struct {
	levels map[core.GPIOPin]bool
}

// NewGPIO returns an empty pin bank.
func NewGPIO() *GPIO {
	return &GPIO{levels: make(map[core.GPIOPin]bool)}
}

func (g *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	g.levels[pin] = false
	return nil
}

func (g *GPIO) ConfigureInputPullUp(pin core.GPIOPin) error {
	g.levels[pin] = true
	return nil
}

func (g *GPIO) SetPin(pin core.GPIOPin, value bool) {
	g.levels[pin] = value
}

func (g *GPIO) ReadPin(pin core.GPIOPin) bool {
	return g.levels[pin]
}

// SetInput drives an input pin from the test side. Active-low buttons
// are pressed with level false.
func (g *GPIO) SetInput(pin core.GPIOPin, level bool) {
	g.levels[pin] = level
}

// Level reports the current level of any pin.
func (g *GPIO) Level(pin core.GPIOPin) bool {
	return g.levels[pin]
}

// ADC is an in-memory sample source.
type ADC struct {
	values map[core.ADCChannelID]core.ADCValue
}

// NewADC returns an ADC with all channels reading 0.
func NewADC() *ADC {
	return &ADC{values: make(map[core.ADCChannelID]core.ADCValue)}
}

func (a *ADC) Init() error                              { return nil }
func (a *ADC) ConfigureChannel(core.ADCChannelID) error { return nil }

func (a *ADC) ReadRaw(ch core.ADCChannelID) (core.ADCValue, error) {
	return a.values[ch], nil
}

// Set fixes the raw value a channel will report.
func (a *ADC) Set(ch core.ADCChannelID, v core.ADCValue) {
	a.values[ch] = v
}

// SliceConfig is the last square-wave configuration applied to a pin.
type SliceConfig struct {
	ClkDiv  float32
	Wrap    uint16
	Level   uint16
	Enabled bool
}

// PWM records slice configurations instead of generating anything.
type PWM struct {
	slices map[core.PWMPin]SliceConfig
}

// NewPWM returns an idle PWM recorder.
func NewPWM() *PWM {
	return &PWM{slices: make(map[core.PWMPin]SliceConfig)}
}

func (p *PWM) ConfigureSquareWave(pin core.PWMPin, clkDiv float32, wrap, level uint16) error {
	p.slices[pin] = SliceConfig{ClkDiv: clkDiv, Wrap: wrap, Level: level, Enabled: true}
	return nil
}

func (p *PWM) Disable(pin core.PWMPin) error {
	c := p.slices[pin]
	c.Enabled = false
	p.slices[pin] = c
	return nil
}

// Slice reports the last configuration applied to a pin.
func (p *PWM) Slice(pin core.PWMPin) SliceConfig {
	return p.slices[pin]
}

// Timers is a manually-fired timer driver: callbacks run only when the
// test calls Fire, keeping everything on one goroutine.
type Timers struct {
	timers []*manualTimer
}

type manualTimer struct {
	periodUS  uint32
	fn        func()
	cancelled bool
}

func (t *manualTimer) Cancel() { t.cancelled = true }

// NewTimers returns an empty timer driver.
func NewTimers() *Timers {
	return &Timers{}
}

func (tm *Timers) StartRepeating(periodMicros uint32, fn func()) (core.RepeatingTimer, error) {
	t := &manualTimer{periodUS: periodMicros, fn: fn}
	tm.timers = append(tm.timers, t)
	return t, nil
}

// Fire invokes every live callback once, as if each timer's period had
// elapsed.
func (tm *Timers) Fire() {
	for _, t := range tm.timers {
		if !t.cancelled {
			t.fn()
		}
	}
}

// Active reports the number of timers that have not been cancelled.
func (tm *Timers) Active() int {
	n := 0
	for _, t := range tm.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// LastPeriodUS reports the period of the most recently started timer.
func (tm *Timers) LastPeriodUS() uint32 {
	if len(tm.timers) == 0 {
		return 0
	}
	return tm.timers[len(tm.timers)-1].periodUS
}

// Stream is an in-memory console: tests queue input with Push and
// inspect everything the device wrote with Output.
type Stream struct {
	in  []byte
	out bytes.Buffer
}

// NewStream returns an empty console.
func NewStream() *Stream {
	return &Stream{}
}

func (s *Stream) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stream) TryReadByte() (byte, bool) {
	if len(s.in) == 0 {
		return 0, false
	}
	b := s.in[0]
	s.in = s.in[1:]
	return b, true
}

// Push queues bytes for the device to read.
func (s *Stream) Push(data string) {
	s.in = append(s.in, data...)
}

// Output returns everything written so far.
func (s *Stream) Output() string {
	return s.out.String()
}

// ClearOutput discards the captured output.
func (s *Stream) ClearOutput() {
	s.out.Reset()
}
