package device

import "testing"

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeSingleStep, "Single Step"},
		{ModeLowFreq, "Low Frequency"},
		{ModeHighFreq, "High Frequency"},
		{ModeUARTControl, "UART Control"},
	}

	for _, test := range tests {
		if got := test.mode.String(); got != test.want {
			t.Errorf("Mode(%d).String() = %q, want %q", test.mode, got, test.want)
		}
	}
}
