// Package collector implements a Prometheus collector for clock observations.
//
// This package exposes the state of the active clock source as metrics. It
// implements the prometheus.Collector interface and manages a background
// sampler that periodically reads the clock.
//
// The collector exposes the following metrics:
//   - tectra_clock_timestamp_nanoseconds: Last observed timestamp with variant label
//   - tectra_clock_virtual: Whether the active clock is controllable (1) or real (0)
//   - up: Whether the clock has been sampled at least once, with variant label
//   - tectra_clock_samples_total: Total samples taken with variant label
//   - tectra_clock_last_sample_timestamp_seconds: Wall time of the last sample
//   - tectra_clock_sample_count: Sample count as a gauge for the status page
//   - tectra_build_info: Build version information
//
// The main type is ClockCollector, which:
//   - Samples the configured clock in the background at a fixed interval
//   - In virtual mode, also drives the clock by advancing it one step per tick,
//     acting as the single owner the VirtualClock contract requires
//   - Caches observations under an RWMutex so Prometheus scrapes never touch
//     the clock itself
//
// Example usage:
//
//	clk := clock.NewVirtualClockAt(0)
//	collector := collector.NewClockCollector(clk, cfg, log)
//
//	prometheus.MustRegister(collector)
//
//	ctx := context.Background()
//	collector.StartSampler(ctx)
package collector
