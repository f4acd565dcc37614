package config

import "encoding/json"

// PinConfig assigns GPIO pin numbers and the ADC channel for the board.
type PinConfig struct {
	ButtonSingleStep uint32 `json:"button_single_step"`
	ButtonLowFreq    uint32 `json:"button_low_freq"`
	ButtonHighFreq   uint32 `json:"button_high_freq"`
	ButtonReset      uint32 `json:"button_reset"`
	ButtonPower      uint32 `json:"button_power"`

	LEDClockActivity uint32 `json:"led_clock_activity"`
	LEDSingleStep    uint32 `json:"led_single_step"`
	LEDLowFreq       uint32 `json:"led_low_freq"`
	LEDHighFreq      uint32 `json:"led_high_freq"`
	LEDUARTMode      uint32 `json:"led_uart_mode"`
	LEDResetLow      uint32 `json:"led_reset_low"`
	LEDResetHigh     uint32 `json:"led_reset_high"`
	LEDPowerOn       uint32 `json:"led_power_on"`

	ClockOutput uint32 `json:"clock_output"`
	ResetOutput uint32 `json:"reset_output"`
	PowerOutput uint32 `json:"power_output"`

	PotentiometerChannel uint8 `json:"potentiometer_channel"`
}

// TimingConfig holds the polling and timeout intervals in milliseconds.
type TimingConfig struct {
	DebounceDelayMS   uint32 `json:"debounce_delay_ms"`
	UpdateIntervalMS  uint32 `json:"update_interval_ms"`
	UARTMenuTimeoutMS uint32 `json:"uart_menu_timeout_ms"`
	ResetHighLEDMS    uint32 `json:"reset_high_led_ms"`
}

// FrequencyConfig holds the output frequency ranges in Hz.
type FrequencyConfig struct {
	MinLowFreq       uint32 `json:"min_low_freq"`
	MaxLowFreqRange1 uint32 `json:"max_low_freq_range1"`
	MaxLowFreqRange2 uint32 `json:"max_low_freq_range2"`
	HighFreqOutput   uint32 `json:"high_freq_output"`
	MinUARTFreq      uint32 `json:"min_uart_freq"`
	MaxUARTFreq      uint32 `json:"max_uart_freq"`
	ResetCycles      uint32 `json:"reset_cycles"`
}

// Config is the full device configuration.
type Config struct {
	Pins      PinConfig       `json:"pins"`
	Timing    TimingConfig    `json:"timing"`
	Frequency FrequencyConfig `json:"frequency"`
}

// Default returns the board's stock configuration.
func Default() *Config {
	return &Config{
		Pins: PinConfig{
			ButtonSingleStep: 2,
			ButtonLowFreq:    3,
			ButtonHighFreq:   4,
			ButtonReset:      11,
			ButtonPower:      12,

			LEDClockActivity: 5,
			LEDSingleStep:    6,
			LEDLowFreq:       7,
			LEDHighFreq:      8,
			LEDUARTMode:      10,
			LEDResetLow:      18,
			LEDResetHigh:     19,
			LEDPowerOn:       20,

			ClockOutput: 9,
			ResetOutput: 13,
			PowerOutput: 14,

			PotentiometerChannel: 0, // ADC0, GPIO 26
		},
		Timing: TimingConfig{
			DebounceDelayMS:   50,
			UpdateIntervalMS:  10,
			UARTMenuTimeoutMS: 30000,
			ResetHighLEDMS:    250,
		},
		Frequency: FrequencyConfig{
			MinLowFreq:       1,
			MaxLowFreqRange1: 100,
			MaxLowFreqRange2: 100000,
			HighFreqOutput:   1000000,
			MinUARTFreq:      1,
			MaxUARTFreq:      1000000,
			ResetCycles:      6,
		},
	}
}

// Load parses a JSON configuration and fills missing values with the
// stock defaults.
func Load(jsonData []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills zero-valued fields with the stock configuration.
// No stock pin assignment uses GPIO 0, so zero is free as a sentinel.
func applyDefaults(cfg *Config) {
	def := Default()

	p, dp := &cfg.Pins, &def.Pins
	fill(&p.ButtonSingleStep, dp.ButtonSingleStep)
	fill(&p.ButtonLowFreq, dp.ButtonLowFreq)
	fill(&p.ButtonHighFreq, dp.ButtonHighFreq)
	fill(&p.ButtonReset, dp.ButtonReset)
	fill(&p.ButtonPower, dp.ButtonPower)
	fill(&p.LEDClockActivity, dp.LEDClockActivity)
	fill(&p.LEDSingleStep, dp.LEDSingleStep)
	fill(&p.LEDLowFreq, dp.LEDLowFreq)
	fill(&p.LEDHighFreq, dp.LEDHighFreq)
	fill(&p.LEDUARTMode, dp.LEDUARTMode)
	fill(&p.LEDResetLow, dp.LEDResetLow)
	fill(&p.LEDResetHigh, dp.LEDResetHigh)
	fill(&p.LEDPowerOn, dp.LEDPowerOn)
	fill(&p.ClockOutput, dp.ClockOutput)
	fill(&p.ResetOutput, dp.ResetOutput)
	fill(&p.PowerOutput, dp.PowerOutput)

	t, dt := &cfg.Timing, &def.Timing
	fill(&t.DebounceDelayMS, dt.DebounceDelayMS)
	fill(&t.UpdateIntervalMS, dt.UpdateIntervalMS)
	fill(&t.UARTMenuTimeoutMS, dt.UARTMenuTimeoutMS)
	fill(&t.ResetHighLEDMS, dt.ResetHighLEDMS)

	f, df := &cfg.Frequency, &def.Frequency
	fill(&f.MinLowFreq, df.MinLowFreq)
	fill(&f.MaxLowFreqRange1, df.MaxLowFreqRange1)
	fill(&f.MaxLowFreqRange2, df.MaxLowFreqRange2)
	fill(&f.HighFreqOutput, df.HighFreqOutput)
	fill(&f.MinUARTFreq, df.MinUARTFreq)
	fill(&f.MaxUARTFreq, df.MaxUARTFreq)
	fill(&f.ResetCycles, df.ResetCycles)
}

func fill(v *uint32, def uint32) {
	if *v == 0 {
		*v = def
	}
}
