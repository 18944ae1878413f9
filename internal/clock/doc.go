// Package clock provides the time source abstraction used throughout Tectra.
//
// Two variants implement the Clock interface:
//   - RealClock: backed by the system's monotonic clock, for production
//   - VirtualClock: a caller-controlled timestamp, for deterministic tests,
//     replay, and simulation
//
// Consumers take a Clock and never branch on the variant, so the same
// scheduler, journal, or timeout logic runs unchanged against either source.
// Timestamps are int64 nanosecond counts with variant-dependent origin; only
// the real variant promises monotonicity.
//
// Example usage:
//
//	// Production code
//	var clk clock.Clock = clock.RealClock{}
//	start := clk.Now()
//
//	// Test code
//	clk := clock.NewVirtualClockAt(0)
//	clk.Advance(time.Second)
//	clk.SetTime(5_000_000_000)
package clock
