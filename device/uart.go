package device

import (
	"strconv"
	"strings"
)

// cmdBufferSize bounds the assembled command line. Printable input
// beyond capacity is dropped, never buffered.
const cmdBufferSize = 32

// handleUARTControl runs one poll of UART control mode: exit on any
// mode button or on deadline expiry, then drain the console and
// assemble command lines byte by byte. Every received byte pushes the
// session deadline out again.
func (c *Controller) handleUARTControl(nowMS uint32) {
	if c.anyButtonPressed() {
		prev := c.prevMode
		c.printf("Button pressed - returning to %s mode\n", prev)
		c.SetMode(prev, nowMS)
		return
	}

	if nowMS > c.uartDeadlineMS {
		prev := c.prevMode
		c.printf("UART menu timeout - returning to %s mode\n", prev)
		c.SetMode(prev, nowMS)
		return
	}

	for {
		b, ok := c.hw.Console.TryReadByte()
		if !ok {
			return
		}
		c.uartDeadlineMS = nowMS + c.cfg.Timing.UARTMenuTimeoutMS

		switch {
		case b == '\r' || b == '\n':
			if c.cmdLen > 0 {
				line := string(c.cmdBuf[:c.cmdLen])
				c.printf("\n")
				c.processCommand(line, nowMS)
				c.cmdLen = 0
			} else {
				c.printf("Cmd> ")
			}

		case b == '\b' || b == 127:
			if c.cmdLen > 0 {
				c.cmdLen--
				c.printf("\b \b")
			}

		case c.cmdLen < cmdBufferSize-1 && b >= 32 && b < 127:
			c.cmdBuf[c.cmdLen] = b
			c.cmdLen++
			c.hw.Console.Write([]byte{b})
		}
		// Other control characters are ignored.
	}
}

// showUARTMenu prints the remote-control command menu.
func (c *Controller) showUARTMenu() {
	c.printf("\n=== UART Control Mode ===\n")
	c.printf("Commands:\n")
	c.printf("  stop      - Stop the clock\n")
	c.printf("  toggle    - Toggle clock state once\n")
	c.printf("  freq <Hz> - Set frequency (1Hz to 1MHz) and run\n")
	c.printf("  reset     - Trigger reset pulse (%d clock cycles)\n", c.cfg.Frequency.ResetCycles)
	c.printf("  power on  - Turn power ON\n")
	c.printf("  power off - Turn power OFF\n")
	c.printf("  menu      - Show this menu again\n")
	c.printf("  status    - Show current status\n")
	c.printf("\nPress any button to return to previous mode\n")
	c.printf("Mode will timeout after 30 seconds of inactivity\n")
	c.printf("\nCmd> ")
}

// processCommand dispatches one assembled line. Malformed or
// out-of-range input is reported on the console and mutates nothing.
func (c *Controller) processCommand(cmd string, nowMS uint32) {
	cmd = strings.TrimLeft(cmd, " ")

	switch {
	case cmd == "stop":
		c.gen.Stop()
		c.uartRunning = false
		c.printf("Clock stopped\n")

	case cmd == "toggle":
		c.gen.Halt()
		c.gen.Toggle()
		c.uartRunning = false
		if c.gen.Level() {
			c.printf("Clock toggled to HIGH\n")
		} else {
			c.printf("Clock toggled to LOW\n")
		}

	case strings.HasPrefix(cmd, "freq "):
		if !c.commandFreq(strings.TrimLeft(cmd[5:], " ")) {
			return
		}

	case cmd == "menu":
		c.showUARTMenu()

	case cmd == "status":
		c.printStatus()

	case cmd == "reset":
		if c.session == nil {
			c.startResetPulse(nowMS)
			c.printf("Reset pulse initiated via UART\n")
		} else {
			c.printf("Reset pulse already active\n")
		}

	case cmd == "power on":
		wasOn := c.powerOn
		c.setPowerState(true)
		c.printf("Power turned ON\n")
		if !wasOn {
			c.SetMode(ModeSingleStep, nowMS)
			c.printf("Automatically switched to Mode 1 (Single Step)\n")
		}

	case cmd == "power off":
		c.setPowerState(false)
		c.printf("Power turned OFF\n")

	case cmd == "":
		// Empty after stripping spaces: nothing to do.

	default:
		c.printf("Unknown command: %s\n", cmd)
		c.printf("Type 'menu' for help\n")
	}

	c.printf("Cmd> ")
}

// commandFreq validates and applies a "freq <Hz>" argument. The return
// value reports whether the prompt should follow (a missing argument
// suppresses it).
func (c *Controller) commandFreq(arg string) bool {
	if len(arg) == 0 {
		c.printf("Missing frequency value. Usage: freq <Hz>\n")
		return false
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		c.printf("Invalid frequency format. Use numbers only.\n")
		return true
	}

	min := int(c.cfg.Frequency.MinUARTFreq)
	max := int(c.cfg.Frequency.MaxUARTFreq)
	if n < min || n > max {
		c.printf("Invalid frequency. Range: %d Hz to %d Hz\n", min, max)
		return true
	}

	freq := uint32(n)
	c.uartFrequency = freq
	_ = c.gen.StartRemote(freq)
	c.uartRunning = true
	c.printf("Frequency set to %d Hz and running\n", freq)
	return true
}

// resetUARTControlState clears the command session on exit from UART
// control mode: line buffer, running flag and remembered frequency.
func (c *Controller) resetUARTControlState() {
	c.uartRunning = false
	c.uartFrequency = 0
	c.cmdLen = 0
}
