package device

import (
	"fmt"
	"io"

	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/clockgen"
)

// printStatus emits the bordered status block on the remote-control
// console and mirrors it on the secondary status stream.
func (c *Controller) printStatus() {
	c.writeStatus(c.hw.Console)
	if c.hw.Mirror != nil {
		c.writeStatus(c.hw.Mirror)
	}
}

func (c *Controller) writeStatus(w io.Writer) {
	fmt.Fprintf(w, "\n=== Clock Source Status ===\n")

	switch c.mode {
	case ModeSingleStep:
		fmt.Fprintf(w, "Mode: Single Step\n")
		if c.singleStepActive {
			fmt.Fprintf(w, "Status: Active\n")
		} else {
			fmt.Fprintf(w, "Status: Waiting for button press\n")
		}

	case ModeLowFreq:
		fmt.Fprintf(w, "Mode: Low Frequency\n")
		fmt.Fprintf(w, "Frequency: %d Hz\n", c.gen.Frequency())

	case ModeHighFreq:
		fmt.Fprintf(w, "Mode: High Frequency\n")
		fmt.Fprintf(w, "Frequency: %d Hz (1MHz)\n", c.gen.Frequency())

	case ModeUARTControl:
		fmt.Fprintf(w, "Mode: UART Control\n")
		if c.uartRunning && c.uartFrequency > 0 {
			fmt.Fprintf(w, "Frequency: %d Hz\n", c.uartFrequency)
			fmt.Fprintf(w, "Status: Running\n")
		} else {
			fmt.Fprintf(w, "Status: Stopped\n")
		}
	}

	switch {
	case c.gen.Method() == clockgen.MethodPWM:
		fmt.Fprintf(w, "Clock State: PWM Active\n")
	case c.gen.Level():
		fmt.Fprintf(w, "Clock State: HIGH\n")
	default:
		fmt.Fprintf(w, "Clock State: LOW\n")
	}

	if c.powerOn {
		fmt.Fprintf(w, "Power State: ON\n")
	} else {
		fmt.Fprintf(w, "Power State: OFF\n")
	}

	fmt.Fprintf(w, "===========================\n\n")
}
