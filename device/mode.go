package device

// Mode is the active clock mode. Exactly one mode is active at any
// instant; only Controller.SetMode changes it.
type Mode uint8

const (
	// ModeSingleStep toggles the output once per button press.
	ModeSingleStep Mode = iota

	// ModeLowFreq follows the potentiometer over 1 Hz - 100 kHz.
	ModeLowFreq

	// ModeHighFreq outputs a fixed 1 MHz square wave.
	ModeHighFreq

	// ModeUARTControl hands the device to the remote command channel.
	ModeUARTControl
)

func (m Mode) String() string {
	switch m {
	case ModeSingleStep:
		return "Single Step"
	case ModeLowFreq:
		return "Low Frequency"
	case ModeHighFreq:
		return "High Frequency"
	case ModeUARTControl:
		return "UART Control"
	}
	return "Unknown"
}
