package clock

import (
	"testing"
	"time"
)

func TestNewVirtualClock_DefaultsToZero(t *testing.T) {
	c := NewVirtualClock()

	if got := c.Now(); got != 0 {
		t.Errorf("Now() = %d, want 0 before any mutation", got)
	}
}

func TestVirtualClock_ZeroValue_ReadsZero(t *testing.T) {
	var c VirtualClock

	if got := c.Now(); got != 0 {
		t.Errorf("Now() = %d, want 0 for zero-value clock", got)
	}
}

func TestNewVirtualClockAt_StartsAtGivenTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		start Timestamp
	}{
		{"Zero", 0},
		{"Positive", 1_000_000_000},
		{"Negative", -42},
		{"Large", 1 << 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewVirtualClockAt(tt.start)
			if got := c.Now(); got != tt.start {
				t.Errorf("Now() = %d, want %d", got, tt.start)
			}
		})
	}
}

func TestVirtualClock_Now_StableWithoutMutation(t *testing.T) {
	c := NewVirtualClockAt(123_456_789)

	first := c.Now()
	for i := 0; i < 100; i++ {
		if got := c.Now(); got != first {
			t.Fatalf("Now() = %d on read %d, want stable %d", got, i, first)
		}
	}
}

func TestVirtualClock_Advance_Additive(t *testing.T) {
	tests := []struct {
		name  string
		start Timestamp
		delta time.Duration
		want  Timestamp
	}{
		{"OneSecondForward", 0, time.Second, 1_000_000_000},
		{"Zero", 500, 0, 500},
		{"Backward", 1_000_000_000, -300 * time.Millisecond, 700_000_000},
		{"BackwardPastZero", 100, -time.Microsecond, -900},
		{"FromNegative", -1000, 2 * time.Nanosecond, -998},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewVirtualClockAt(tt.start)
			c.Advance(tt.delta)
			if got := c.Now(); got != tt.want {
				t.Errorf("Now() after Advance(%v) = %d, want %d", tt.delta, got, tt.want)
			}
		})
	}
}

func TestVirtualClock_Advance_Accumulates(t *testing.T) {
	c := NewVirtualClock()

	c.Advance(time.Second)
	c.Advance(time.Second)
	c.Advance(-500 * time.Millisecond)

	if got, want := c.Now(), Timestamp(1_500_000_000); got != want {
		t.Errorf("Now() = %d, want %d", got, want)
	}
}

func TestVirtualClock_SetTime_OverwritesUnconditionally(t *testing.T) {
	tests := []struct {
		name     string
		start    Timestamp
		absolute Timestamp
	}{
		{"Forward", 0, 5_000_000_000},
		{"BackwardRewind", 5_000_000_000, 1},
		{"ToNegative", 100, -100},
		{"SameValue", 42, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewVirtualClockAt(tt.start)
			c.SetTime(tt.absolute)
			if got := c.Now(); got != tt.absolute {
				t.Errorf("Now() after SetTime(%d) = %d, want %d", tt.absolute, got, tt.absolute)
			}
		})
	}
}

func TestVirtualClock_IsVirtual_TrueThroughout(t *testing.T) {
	c := NewVirtualClock()

	if !c.IsVirtual() {
		t.Error("IsVirtual() = false at construction, want true")
	}
	c.Advance(time.Hour)
	if !c.IsVirtual() {
		t.Error("IsVirtual() = false after Advance, want true")
	}
	c.SetTime(-1)
	if !c.IsVirtual() {
		t.Error("IsVirtual() = false after SetTime, want true")
	}
}

// TestVirtualClock_Scenario walks the canonical advance/set sequence used by
// the demo program.
func TestVirtualClock_Scenario(t *testing.T) {
	c := NewVirtualClockAt(0)

	c.Advance(time.Second)
	if got, want := c.Now(), Timestamp(1_000_000_000); got != want {
		t.Fatalf("Now() after Advance(1s) = %d, want %d", got, want)
	}

	c.SetTime(5_000_000_000)
	if got, want := c.Now(), Timestamp(5_000_000_000); got != want {
		t.Fatalf("Now() after SetTime(5s) = %d, want %d", got, want)
	}
}

func TestVirtualClock_ImplementsClock(t *testing.T) {
	var _ Clock = (*VirtualClock)(nil)
}
