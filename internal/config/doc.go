// Package config provides configuration management for the Tectra clock service.
//
// This package handles loading configuration from YAML files, applying
// environment variable overrides, setting defaults, and validating the
// configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (highest priority)
//  2. YAML configuration file
//  3. Default values (lowest priority)
//
// Supported environment variables:
//   - TECTRA_CLOCK_MODE: Clock variant to run ("real" or "virtual")
//   - TECTRA_SAMPLE_INTERVAL_MS: Sampler interval in milliseconds (minimum: 10)
//   - TECTRA_HTTP_PORT: HTTP server port (1-65535)
//   - TECTRA_LOG_LEVEL: Log level (debug, info, warn, error)
//   - TECTRA_VIRTUAL_START_NS: Starting virtual timestamp in nanoseconds
//   - TECTRA_VIRTUAL_STEP_NS: Virtual-time delta applied per sample (signed)
//
// Example configuration file (config.yaml):
//
//	clock_mode: virtual
//	sample_interval_ms: 1000
//	http_port: 8080
//	log_level: "info"
//
//	virtual:
//	  start_time_ns: 0
//	  step_ns: 1000000000   # 1s of virtual time per sample; 0 freezes, negative rewinds
//
// Example usage:
//
//	cfg, err := config.Load("config.yaml")
//	if err != nil {
//		log.Fatalf("Failed to load config: %v", err)
//	}
//
//	fmt.Printf("Clock mode: %s\n", cfg.ClockMode)
package config
