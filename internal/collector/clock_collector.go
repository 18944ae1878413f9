package collector

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tectra-hft/tectra/internal/clock"
	"github.com/tectra-hft/tectra/internal/config"
	"github.com/tectra-hft/tectra/internal/logger"
	"github.com/tectra-hft/tectra/internal/version"
)

// Variant label values
const (
	VariantReal    = "real"
	VariantVirtual = "virtual"
)

// ClockCollector implements prometheus.Collector over a clock source.
//
// All reads of the underlying clock happen on the sampler goroutine; Collect
// serves the cached observation under an RWMutex. This keeps the
// unsynchronized VirtualClock single-owner even though Prometheus scrapes
// arrive on arbitrary goroutines.
type ClockCollector struct {
	clk    clock.Clock
	vclk   *clock.VirtualClock // non-nil only in virtual mode; driven by the sampler
	step   time.Duration       // virtual-time delta applied per sample
	cfg    *config.Config
	logger *logger.Logger

	// Metrics
	timestampMetric   *prometheus.Desc
	virtualMetric     *prometheus.Desc
	upMetric          *prometheus.Desc
	lastSampleMetric  *prometheus.Desc
	sampleCountMetric *prometheus.Desc
	samplesTotal      *prometheus.CounterVec
	buildInfo         *prometheus.GaugeVec

	// State
	mu              sync.RWMutex
	lastObservation clock.Timestamp
	lastSample      time.Time
	sampleCount     int64
	isReady         bool
	samplerStarted  atomic.Bool // Prevent multiple sampler goroutines
}

// NewClockCollector creates a collector over the given clock. If clk is a
// *clock.VirtualClock the sampler also drives it, applying the configured
// step before each observation.
func NewClockCollector(clk clock.Clock, cfg *config.Config, log *logger.Logger) *ClockCollector {
	samplesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tectra_clock_samples_total",
			Help: "Total number of clock samples taken since startup",
		},
		[]string{"variant"},
	)

	buildInfo := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tectra_build_info",
			Help: "Build version information",
		},
		[]string{"version", "git_commit", "build_date", "go_version"},
	)

	versionInfo := version.Info()
	buildInfo.With(prometheus.Labels{
		"version":    versionInfo["version"],
		"git_commit": versionInfo["git_commit"],
		"build_date": versionInfo["build_date"],
		"go_version": versionInfo["go_version"],
	}).Set(1)

	vclk, _ := clk.(*clock.VirtualClock)
	var step time.Duration
	if cfg.Virtual.StepNS != nil {
		step = time.Duration(*cfg.Virtual.StepNS)
	}

	return &ClockCollector{
		clk:    clk,
		vclk:   vclk,
		step:   step,
		cfg:    cfg,
		logger: log,
		timestampMetric: prometheus.NewDesc(
			"tectra_clock_timestamp_nanoseconds",
			"Last observed clock timestamp in nanoseconds. Origin depends on the variant: process start for real, caller-chosen for virtual.",
			[]string{"variant"},
			nil,
		),
		virtualMetric: prometheus.NewDesc(
			"tectra_clock_virtual",
			"Whether the active clock is the controllable variant (1 = virtual, 0 = real)",
			nil,
			nil,
		),
		upMetric: prometheus.NewDesc(
			"up",
			"Was the clock sampled at least once (1 = yes, 0 = not yet)",
			[]string{"variant"},
			nil,
		),
		lastSampleMetric: prometheus.NewDesc(
			"tectra_clock_last_sample_timestamp_seconds",
			"Unix timestamp of the last clock sample",
			[]string{"variant"},
			nil,
		),
		sampleCountMetric: prometheus.NewDesc(
			"tectra_clock_sample_count",
			"Number of clock samples taken, as a gauge for the status page",
			[]string{"variant"},
			nil,
		),
		samplesTotal: samplesTotal,
		buildInfo:    buildInfo,
	}
}

// Variant returns the metric label for the active clock variant.
func (c *ClockCollector) Variant() string {
	if c.clk.IsVirtual() {
		return VariantVirtual
	}
	return VariantReal
}

// Describe implements prometheus.Collector
func (c *ClockCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.timestampMetric
	ch <- c.virtualMetric
	ch <- c.upMetric
	ch <- c.lastSampleMetric
	ch <- c.sampleCountMetric
	c.samplesTotal.Describe(ch)
	c.buildInfo.Describe(ch)
}

// Collect implements prometheus.Collector. It serves only cached state and
// never touches the underlying clock.
func (c *ClockCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	variant := c.Variant()

	ch <- prometheus.MustNewConstMetric(
		c.timestampMetric,
		prometheus.GaugeValue,
		float64(c.lastObservation),
		variant,
	)

	virtualValue := 0.0
	if c.clk.IsVirtual() {
		virtualValue = 1.0
	}
	ch <- prometheus.MustNewConstMetric(
		c.virtualMetric,
		prometheus.GaugeValue,
		virtualValue,
	)

	upValue := 0.0
	if c.isReady {
		upValue = 1.0
	}
	ch <- prometheus.MustNewConstMetric(
		c.upMetric,
		prometheus.GaugeValue,
		upValue,
		variant,
	)

	if !c.lastSample.IsZero() {
		ch <- prometheus.MustNewConstMetric(
			c.lastSampleMetric,
			prometheus.GaugeValue,
			float64(c.lastSample.Unix()),
			variant,
		)
	}

	ch <- prometheus.MustNewConstMetric(
		c.sampleCountMetric,
		prometheus.GaugeValue,
		float64(c.sampleCount),
		variant,
	)

	c.samplesTotal.Collect(ch)
	c.buildInfo.Collect(ch)
}

// StartSampler starts a goroutine that samples the clock at the configured
// interval. Uses an atomic flag to prevent multiple sampler goroutines.
// The sampler goroutine is the sole toucher of a virtual clock instance.
func (c *ClockCollector) StartSampler(ctx context.Context) {
	if !c.samplerStarted.CompareAndSwap(false, true) {
		c.logger.Warn("Sampler already started, skipping")
		return
	}

	// Initial sample, so the collector is ready before the first tick
	c.sample()

	ticker := time.NewTicker(time.Duration(c.cfg.SampleIntervalMS) * time.Millisecond)
	go func() {
		defer ticker.Stop()
		defer c.samplerStarted.Store(false) // Reset on exit
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Stopping clock sampler")
				return
			case <-ticker.C:
				c.sample()
			}
		}
	}()
}

// sample drives the virtual clock (if active) and caches one observation.
func (c *ClockCollector) sample() {
	if c.vclk != nil {
		c.vclk.Advance(c.step)
	}

	obs := c.clk.Now()
	variant := c.Variant()
	c.samplesTotal.With(prometheus.Labels{"variant": variant}).Inc()

	c.mu.Lock()
	c.lastObservation = obs
	c.lastSample = time.Now()
	c.sampleCount++
	c.isReady = true
	c.mu.Unlock()

	c.logger.Debug("Sampled clock",
		"variant", variant,
		"timestamp_ns", int64(obs))
}

// IsReady returns true if the collector has sampled the clock at least once
func (c *ClockCollector) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// LastObservation returns the most recently cached clock timestamp
func (c *ClockCollector) LastObservation() clock.Timestamp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastObservation
}

// LastSampleTime returns the wall time of the last sample
func (c *ClockCollector) LastSampleTime() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastSample
}

// SampleCount returns the number of samples taken since startup
func (c *ClockCollector) SampleCount() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sampleCount
}
