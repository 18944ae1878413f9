package clock

import "time"

// Timestamp is a point in time expressed as a signed count of nanoseconds.
// Its origin depends on the clock variant: for RealClock it is an arbitrary
// anchor fixed at process start (only monotonicity is promised), while for
// VirtualClock the origin is whatever the owner chooses.
type Timestamp int64

// Clock is the time source used by every time-dependent component. Callers
// depend only on this interface so the same code can run against real time in
// production and fully scripted time in tests and replay.
type Clock interface {
	// Now returns the current timestamp according to the active source.
	// It never fails and has no side effects beyond the read itself.
	Now() Timestamp

	// IsVirtual reports whether the source is the controllable variant.
	// Generic code can use it to refuse a must-be-deterministic path when
	// it is handed a real clock.
	IsVirtual() bool
}

// monotonicEpoch anchors RealClock readings. time.Since uses the runtime's
// monotonic reading, so values derived from it never decrease within a
// process lifetime even if the wall clock is stepped.
var monotonicEpoch = time.Now()

// RealClock reads the system's monotonic clock. It is stateless and safe for
// concurrent use; each call is an independent read with no shared mutable
// state.
type RealClock struct{}

// Now returns nanoseconds of monotonic time elapsed since process start.
func (RealClock) Now() Timestamp {
	return Timestamp(time.Since(monotonicEpoch))
}

// IsVirtual always reports false for the real variant.
func (RealClock) IsVirtual() bool {
	return false
}
