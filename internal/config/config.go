package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Clock modes
const (
	ModeReal    = "real"
	ModeVirtual = "virtual"
)

// Configuration validation constants
const (
	MinSampleInterval = 10    // Minimum sample interval in milliseconds
	MinPort           = 1     // Minimum valid port number
	MaxPort           = 65535 // Maximum valid port number

	// Default values
	DefaultClockMode      = ModeReal
	DefaultSampleInterval = 1000 // 1 second in milliseconds
	DefaultHTTPPort       = 8080
	DefaultLogLevel       = "info"
	DefaultVirtualStepNS  = 1_000_000_000 // advance 1s of virtual time per sample
)

// Virtual holds settings for the controllable clock variant. StepNS is the
// signed nanosecond delta the sampler applies per tick; zero freezes the
// clock and negative values rewind it, both intentionally permitted.
type Virtual struct {
	StartTimeNS int64  `yaml:"start_time_ns"`
	StepNS      *int64 `yaml:"step_ns"` // Pointer to distinguish an explicit 0 from unset
}

// Config represents the application configuration
type Config struct {
	ClockMode        string  `yaml:"clock_mode"` // real | virtual
	Virtual          Virtual `yaml:"virtual"`
	SampleIntervalMS int     `yaml:"sample_interval_ms"`
	HTTPPort         int     `yaml:"http_port"`
	LogLevel         string  `yaml:"log_level"`
}

// IsVirtual reports whether the configured clock mode is the controllable
// variant.
func (c *Config) IsVirtual() bool {
	return c.ClockMode == ModeVirtual
}

// Load loads configuration from a YAML file and applies environment variable overrides
func Load(path string) (*Config, error) {
	// #nosec G304 -- Config file path is provided by the operator via CLI flag, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("environment variable error: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for configuration
func applyDefaults(cfg *Config) {
	if cfg.ClockMode == "" {
		cfg.ClockMode = DefaultClockMode
	}
	if cfg.SampleIntervalMS == 0 {
		cfg.SampleIntervalMS = DefaultSampleInterval
	}
	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = DefaultHTTPPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	// Only apply the step default if it is unset, not if it is explicitly 0
	if cfg.Virtual.StepNS == nil {
		step := int64(DefaultVirtualStepNS)
		cfg.Virtual.StepNS = &step
	}
}

// applyEnvOverrides applies environment variable overrides to configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("TECTRA_CLOCK_MODE"); val != "" {
		cfg.ClockMode = strings.ToLower(strings.TrimSpace(val))
	}

	if val := os.Getenv("TECTRA_SAMPLE_INTERVAL_MS"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid TECTRA_SAMPLE_INTERVAL_MS: must be an integer, got %q", val)
		}
		cfg.SampleIntervalMS = i
	}

	if val := os.Getenv("TECTRA_HTTP_PORT"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid TECTRA_HTTP_PORT: must be an integer, got %q", val)
		}
		cfg.HTTPPort = i
	}

	if val := os.Getenv("TECTRA_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}

	if val := os.Getenv("TECTRA_VIRTUAL_START_NS"); val != "" {
		i, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TECTRA_VIRTUAL_START_NS: must be an integer, got %q", val)
		}
		cfg.Virtual.StartTimeNS = i
	}

	if val := os.Getenv("TECTRA_VIRTUAL_STEP_NS"); val != "" {
		i, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TECTRA_VIRTUAL_STEP_NS: must be an integer, got %q", val)
		}
		cfg.Virtual.StepNS = &i
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.ClockMode != ModeReal && cfg.ClockMode != ModeVirtual {
		return fmt.Errorf("clock_mode must be %q or %q, got %q", ModeReal, ModeVirtual, cfg.ClockMode)
	}

	if cfg.SampleIntervalMS <= 0 {
		return fmt.Errorf("sample_interval_ms must be positive, got %d", cfg.SampleIntervalMS)
	}

	if cfg.SampleIntervalMS < MinSampleInterval {
		return fmt.Errorf("sample_interval_ms must be at least %d milliseconds", MinSampleInterval)
	}

	if cfg.HTTPPort < MinPort || cfg.HTTPPort > MaxPort {
		return fmt.Errorf("http_port must be between %d and %d", MinPort, MaxPort)
	}

	// Virtual start and step are intentionally unvalidated: any signed value
	// is a legal virtual timestamp, and negative steps drive replay/rewind.

	return nil
}
