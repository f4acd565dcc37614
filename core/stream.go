package core

import "io"

// ByteStream is a bidirectional text channel with non-blocking reads,
// such as the USB CDC console on the target or an in-memory buffer in
// tests.
type ByteStream interface {
	io.Writer

	// TryReadByte returns the next received byte if one is buffered.
	// It never blocks.
	TryReadByte() (byte, bool)
}

// Hardware bundles every driver the control core needs. It is built by
// target-specific code (or by the simulator) and passed to the device
// controller, which owns all state mutation.
type Hardware struct {
	GPIO   GPIODriver
	ADC    ADCDriver
	PWM    PWMDriver
	Timers TimerDriver

	// Console is the bidirectional remote-control channel.
	Console ByteStream

	// Mirror receives a copy of every status report. May be nil.
	Mirror io.Writer
}
