package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tectra-hft/tectra/internal/clock"
	"github.com/tectra-hft/tectra/internal/collector"
	"github.com/tectra-hft/tectra/internal/config"
	"github.com/tectra-hft/tectra/internal/logger"
	"github.com/tectra-hft/tectra/internal/server"
	"github.com/tectra-hft/tectra/internal/version"
)

const (
	// DefaultShutdownTimeout is the maximum time to wait for graceful shutdown
	DefaultShutdownTimeout = 30 * time.Second
)

var (
	configPath = flag.String("config", "config.yaml", "Path to configuration file")
	demoMode   = flag.Bool("demo", false, "Exercise both clock variants and exit")
)

func main() {
	flag.Parse()

	if *demoMode {
		runDemo()
		return
	}

	// Load configuration first (need log level from config)
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logger
	logger := logger.New(cfg.LogLevel)
	logger.Info("Tectra clock service starting",
		"version", version.Version,
		"config_path", *configPath)

	logger.Info("Configuration loaded successfully",
		"clock_mode", cfg.ClockMode,
		"sample_interval_ms", cfg.SampleIntervalMS,
		"http_port", cfg.HTTPPort)

	// Build the configured clock source
	var clk clock.Clock
	if cfg.IsVirtual() {
		clk = clock.NewVirtualClockAt(clock.Timestamp(cfg.Virtual.StartTimeNS))
		logger.Info("Using virtual clock",
			"start_time_ns", cfg.Virtual.StartTimeNS,
			"step_ns", *cfg.Virtual.StepNS)
	} else {
		clk = clock.RealClock{}
		logger.Info("Using real monotonic clock")
	}

	// Create clock collector
	clockCollector := collector.NewClockCollector(clk, cfg, logger)

	// Register collector with Prometheus
	if err := prometheus.Register(clockCollector); err != nil {
		logger.Error("Failed to register collector", "error", err)
		os.Exit(1)
	}
	logger.Info("Collector registered with Prometheus")

	// Register Go runtime metrics (memory, goroutines, GC stats)
	if err := prometheus.Register(prometheus.NewGoCollector()); err != nil {
		logger.Warn("Failed to register Go collector", "error", err)
	}

	// Register process metrics (CPU, memory, file descriptors)
	if err := prometheus.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{})); err != nil {
		logger.Warn("Failed to register process collector", "error", err)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start background clock sampling
	logger.Info("Starting clock sampler")
	clockCollector.StartSampler(ctx)

	// Create and start HTTP server
	logger.Info("Creating HTTP server", "port", cfg.HTTPPort)
	srv := server.NewServer(cfg, clockCollector, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("Server error", "error", err)
		os.Exit(1)

	case sig := <-shutdown:
		logger.Info("Received shutdown signal, starting graceful shutdown", "signal", sig.String())

		// Stop the sampler
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error during server shutdown", "error", err)
			os.Exit(1)
		}

		logger.Info("Server stopped gracefully")
	}
}

// runDemo exercises both clock variants interactively. It is not part of the
// clock contract; it exists to show the two sources behaving side by side.
func runDemo() {
	fmt.Printf("%s - clock abstraction demo\n\n", version.String())

	fmt.Println("=== Real clock ===")
	real := clock.RealClock{}

	t1 := real.Now()
	time.Sleep(100 * time.Millisecond)
	t2 := real.Now()

	fmt.Printf("Time elapsed: %d ms\n", (t2-t1)/1_000_000)
	fmt.Printf("Is virtual: %v\n\n", real.IsVirtual())

	fmt.Println("=== Virtual clock ===")
	virtual := clock.NewVirtualClockAt(0)

	fmt.Printf("Initial time: %d ns\n", virtual.Now())

	virtual.Advance(time.Second)
	fmt.Printf("After Advance(1s): %d ns\n", virtual.Now())

	virtual.SetTime(5_000_000_000)
	fmt.Printf("After SetTime(5s): %d ns\n", virtual.Now())
	fmt.Printf("Is virtual: %v\n", virtual.IsVirtual())
}
