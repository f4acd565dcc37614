package button

import "testing"

func TestDebouncerAcceptsFirstPress(t *testing.T) {
	d := NewDebouncer(50)
	if !d.Pressed("reset", true, 0) {
		t.Errorf("first press at t=0 should be accepted")
	}
}

func TestDebouncerOncePerWindow(t *testing.T) {
	d := NewDebouncer(50)

	tests := []struct {
		now  uint32
		want bool
	}{
		{100, true},
		{120, false},
		{149, false},
		{150, true},
		{151, false},
		{250, true},
	}

	for _, test := range tests {
		got := d.Pressed("mode", true, test.now)
		if got != test.want {
			t.Errorf("Pressed at t=%d = %v, want %v", test.now, got, test.want)
		}
	}
}

func TestDebouncerIndependentInputs(t *testing.T) {
	d := NewDebouncer(50)

	if !d.Pressed("a", true, 100) {
		t.Fatalf("press on a should be accepted")
	}
	if !d.Pressed("b", true, 110) {
		t.Errorf("press on b should not be blocked by a's window")
	}
	if d.Pressed("a", true, 120) {
		t.Errorf("press on a inside its own window should be rejected")
	}
}

func TestDebouncerIgnoresReleased(t *testing.T) {
	d := NewDebouncer(50)

	if d.Pressed("power", false, 100) {
		t.Fatalf("released input must not register")
	}
	// A released poll must not stamp the window either.
	if !d.Pressed("power", true, 110) {
		t.Errorf("press after a released poll should be accepted")
	}
}
