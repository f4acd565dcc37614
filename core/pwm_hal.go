package core

// PWMPin identifies a hardware pin capable of PWM output
type PWMPin uint32

// PWMDriver is the abstract PWM interface that the control core uses.
// It follows the RP2040 slice model: each output is driven by a clock
// divider, a 16-bit wrap counter and a channel compare level.
type PWMDriver interface {
	// ConfigureSquareWave routes the pin to its PWM slice and starts
	// free-running generation with the given divider/wrap/level triple.
	// Reconfiguring an already-running pin retunes it in place.
	ConfigureSquareWave(pin PWMPin, clkDiv float32, wrap uint16, level uint16) error

	// Disable stops PWM generation on the pin and returns it to GPIO
	// output mode driven low. Disabling an idle pin is a no-op.
	Disable(pin PWMPin) error
}
