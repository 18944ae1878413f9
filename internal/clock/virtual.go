package clock

import "time"

// VirtualClock is the controllable clock variant. It holds a single timestamp
// that changes only through Advance and SetTime; repeated reads between
// mutations always return the same value.
//
// VirtualClock is not synchronized. The intended usage is single-owner: one
// test or simulation driver advances it, and readers run on the same
// goroutine or behind the owner's own lock. Components that need concurrent
// access must serialize calls themselves.
type VirtualClock struct {
	current Timestamp
}

// NewVirtualClock returns a virtual clock starting at timestamp 0. The zero
// value of VirtualClock is equivalent.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// NewVirtualClockAt returns a virtual clock starting at the given timestamp.
func NewVirtualClockAt(start Timestamp) *VirtualClock {
	return &VirtualClock{current: start}
}

// Now returns the held timestamp verbatim.
func (c *VirtualClock) Now() Timestamp {
	return c.current
}

// IsVirtual always reports true for the controllable variant.
func (c *VirtualClock) IsVirtual() bool {
	return true
}

// Advance adds d to the held timestamp. Negative and zero deltas are
// accepted without validation: replay and simulation scenarios legitimately
// rewind, so monotonicity is deliberately not policed here. An owner whose
// consumers require non-decreasing time must uphold that itself.
func (c *VirtualClock) Advance(d time.Duration) {
	c.current += Timestamp(d)
}

// SetTime overwrites the held timestamp unconditionally, with the same
// permissiveness as Advance: no ordering constraint is enforced against the
// prior value.
func (c *VirtualClock) SetTime(absolute Timestamp) {
	c.current = absolute
}
