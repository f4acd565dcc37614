package core

// ADCChannelID identifies an ADC input channel
type ADCChannelID uint8

// ADCValue is a raw 12-bit conversion result (0-4095)
type ADCValue uint16

// ADCDriver is the abstract ADC interface that the control core uses.
type ADCDriver interface {
	// Init prepares the ADC peripheral for sampling
	Init() error

	// ConfigureChannel sets up a specific ADC channel (pin mux, etc.)
	ConfigureChannel(ch ADCChannelID) error

	// ReadRaw returns a raw 12-bit ADC value (0-4095) from a channel
	ReadRaw(ch ADCChannelID) (ADCValue, error)
}
