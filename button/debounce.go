// Package button provides edge debouncing for an open set of inputs:
// physical buttons and button-like gestures such as the UART-entry
// keystroke.
package button

// InputID names one debounced input source. IDs are independent; an
// accepted event on one never affects another's window.
type InputID string

// Debouncer records the last accepted event time per input and accepts
// a new event only after the debounce window has elapsed.
type Debouncer struct {
	delayMS uint32
	last    map[InputID]uint32
}

// NewDebouncer returns a debouncer with the given window in ms.
func NewDebouncer(delayMS uint32) *Debouncer {
	return &Debouncer{
		delayMS: delayMS,
		last:    make(map[InputID]uint32),
	}
}

// Pressed reports whether an assertion of the input should be accepted
// as a press. It returns true only when the input is currently asserted
// and at least the debounce window has passed since the last accepted
// press of the same input; the first-ever assertion is always accepted.
// On a true return the acceptance time is stamped; a false return has
// no side effects.
func (d *Debouncer) Pressed(id InputID, asserted bool, nowMS uint32) bool {
	if !asserted {
		return false
	}
	if last, seen := d.last[id]; seen && nowMS-last < d.delayMS {
		return false
	}
	d.last[id] = nowMS
	return true
}
