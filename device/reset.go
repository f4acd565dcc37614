package device

import "github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"

// resetSession tracks one in-flight reset pulse. edgeWait is fixed at
// creation from the mode active at that instant and never re-read,
// even if the mode changes mid-pulse.
type resetSession struct {
	startedAtMS uint32
	cycles      uint32
	edgeWait    bool
	lastLevel   bool
}

// handleResetButton triggers a reset pulse on a debounced press of the
// dedicated reset button. A press while a pulse is in flight is
// ignored.
func (c *Controller) handleResetButton(nowMS uint32) {
	if !c.buttonPressed(c.cfg.Pins.ButtonReset, inputReset, nowMS) {
		return
	}
	if c.session == nil {
		c.startResetPulse(nowMS)
		c.printf("Reset pulse initiated\n")
	}
}

// startResetPulse drives the reset line low and opens a session. In
// single-step mode completion is decided by counting output edges; in
// every other mode by an elapsed-time budget.
func (c *Controller) startResetPulse(nowMS uint32) {
	c.session = &resetSession{
		startedAtMS: nowMS,
		edgeWait:    c.mode == ModeSingleStep,
		lastLevel:   c.gen.Level(),
	}
	c.setResetOutput(false)
	c.printf("Reset pulse started, mode: %d\n", c.mode+1)
}

// updateResetState advances the in-flight reset session by one poll.
func (c *Controller) updateResetState(nowMS uint32) {
	s := c.session
	if s == nil {
		return
	}

	if s.edgeWait {
		level := c.gen.Level()
		if !s.lastLevel && level {
			s.cycles++
			c.printf("Reset cycle %d/%d (Mode 1)\n", s.cycles, c.cfg.Frequency.ResetCycles)
			if s.cycles >= c.cfg.Frequency.ResetCycles {
				c.finishResetPulse(nowMS)
				c.printf("Reset pulse complete (Mode 1)\n")
			}
		}
		s.lastLevel = level
		return
	}

	elapsed := nowMS - s.startedAtMS
	if elapsed >= c.resetBudgetMS() {
		c.finishResetPulse(nowMS)
		c.printf("Reset pulse complete (Mode %d, %dms)\n", c.mode+1, elapsed)
	}
}

// resetBudgetMS computes how long the reset line must stay low for the
// required number of output cycles at the currently active frequency.
// An idle or undeterminable frequency falls back to a 60 ms budget;
// the result is floored at 10 ms so the pulse stays visible.
func (c *Controller) resetBudgetMS() uint32 {
	var freq uint32
	switch c.mode {
	case ModeLowFreq:
		freq = c.gen.Frequency()
	case ModeHighFreq:
		freq = c.cfg.Frequency.HighFreqOutput
	case ModeUARTControl:
		freq = c.uartFrequency
	}

	cycles := c.cfg.Frequency.ResetCycles
	required := uint32(60)
	if freq > 0 {
		required = (cycles*1000 + freq - 1) / freq
	}
	if required < 10 {
		required = 10
	}
	return required
}

func (c *Controller) finishResetPulse(nowMS uint32) {
	c.setResetOutput(true)
	c.session = nil
	c.resetDone = true
	c.resetDoneAtMS = nowMS
}

func (c *Controller) setResetOutput(high bool) {
	c.resetOutputHigh = high
	c.hw.GPIO.SetPin(core.GPIOPin(c.cfg.Pins.ResetOutput), high)
}

// updateResetLEDs drives the two reset indicators: one mirrors the
// asserted (low) reset line, the other lights for a fixed window after
// a pulse completes.
func (c *Controller) updateResetLEDs(nowMS uint32) {
	g := c.hw.GPIO
	p := c.cfg.Pins

	g.SetPin(core.GPIOPin(p.LEDResetLow), !c.resetOutputHigh)

	if c.resetDone && nowMS-c.resetDoneAtMS < c.cfg.Timing.ResetHighLEDMS {
		g.SetPin(core.GPIOPin(p.LEDResetHigh), true)
		return
	}
	c.resetDone = false
	g.SetPin(core.GPIOPin(p.LEDResetHigh), false)
}
