package clockgen

// ReferenceClockHz is the system clock rate feeding the PWM slices.
const ReferenceClockHz = 125000000

// Fixed slice parameters for the 1 MHz high-speed output. The pair is
// a board constant, not a solver result: divider 125 with wrap 1 and a
// level of 1 gives 50% duty at exactly 1 MHz.
const (
	HighSpeedHz      = 1000000
	HighSpeedDivider = 125
	HighSpeedWrap    = 1
	HighSpeedLevel   = 1
)

// MinPWMHz is the practical floor of the PWM hardware: with the divider
// and wrap counter both at their maxima the slice runs at about 7.5 Hz.
// Targets below this rate need software toggling instead.
const MinPWMHz = 8

const maxWrap = 65535

// DutyParams is one slice configuration for a 50% duty square wave.
type DutyParams struct {
	ClkDiv float32
	Wrap   uint16
	Level  uint16
}

// SolveDutyParams computes slice parameters for the potentiometer-driven
// and fixed-frequency paths. The solve is banded: the divider is pinned
// at its maximum for low rates to keep the wrap counter in range, and
// the wrap is pinned at 124 for high rates to keep duty resolution.
// Targets below MinPWMHz clamp to the slice's floor rate.
func SolveDutyParams(targetHz uint32) DutyParams {
	switch {
	case targetHz == HighSpeedHz:
		return DutyParams{ClkDiv: HighSpeedDivider, Wrap: HighSpeedWrap, Level: HighSpeedLevel}

	case targetHz < MinPWMHz:
		return DutyParams{ClkDiv: 255, Wrap: maxWrap, Level: maxWrap / 2}

	case targetHz < 1000:
		wrap := ReferenceClockHz/(255*targetHz) - 1
		if wrap > maxWrap {
			wrap = maxWrap
		}
		return DutyParams{ClkDiv: 255, Wrap: uint16(wrap), Level: uint16(wrap / 2)}

	default:
		div := ReferenceClockHz / (targetHz * 125)
		if div < 1 {
			wrap := ReferenceClockHz/targetHz - 1
			if wrap > maxWrap {
				wrap = maxWrap
			}
			return DutyParams{ClkDiv: 1, Wrap: uint16(wrap), Level: uint16(wrap / 2)}
		}
		return DutyParams{ClkDiv: float32(div), Wrap: 124, Level: 62}
	}
}

// SolveRemoteDutyParams computes slice parameters for the free-form
// remote-control frequency path. It seeds the wrap counter at 1000 for
// duty resolution, shrinks it when the divider would exceed 255 and
// grows it when the divider would fall below 1.
//
// This solver intentionally disagrees with SolveDutyParams at the same
// target frequency; both algorithms ship and both are kept as-is.
func SolveRemoteDutyParams(targetHz uint32) DutyParams {
	sysClock := float32(ReferenceClockHz)
	target := float32(targetHz)

	wrap := uint32(1000)
	div := sysClock / (target * float32(wrap+1))

	if div > 255 {
		w := uint32(sysClock/(target*255)) - 1
		if w < 1 {
			w = 1
		}
		if w > maxWrap {
			w = maxWrap
		}
		wrap = w
		div = sysClock / (target * float32(wrap+1))
	}

	if div < 1 {
		w := uint32(sysClock/target) - 1
		if w > maxWrap {
			w = maxWrap
		}
		wrap = w
		div = 1
	}

	if wrap < 2 {
		wrap = 2
	}

	return DutyParams{ClkDiv: div, Wrap: uint16(wrap), Level: uint16(wrap / 2)}
}
