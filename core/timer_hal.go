package core

// RepeatingTimer is a handle to a scheduled recurring callback.
type RepeatingTimer interface {
	// Cancel stops the timer. Cancel is synchronous and idempotent:
	// after it returns no further callbacks are delivered.
	Cancel()
}

// TimerDriver schedules recurring callbacks, typically backed by a
// hardware alarm on the target and by a manual trigger in tests.
type TimerDriver interface {
	// StartRepeating invokes fn every periodMicros microseconds until
	// the returned timer is cancelled.
	StartRepeating(periodMicros uint32, fn func()) (RepeatingTimer, error)
}
