// Package config handles YAML configuration for dsctl with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultCacheTTL is the listing cache TTL when none is configured.
const DefaultCacheTTL = 300

// Config is the root configuration structure. Values resolve in order:
// built-in defaults, then the YAML file, then environment variables.
// Command-line flags override all of these at the call site.
type Config struct {
	// OCI connection
	OCIConfigPath string `yaml:"oci_config_path" env:"DSCTL_OCI_CONFIG"`
	Profile       string `yaml:"profile" env:"DSCTL_PROFILE"`
	Region        string `yaml:"region" env:"DSCTL_REGION"`
	Tenancy       string `yaml:"tenancy" env:"DSCTL_TENANCY"`

	// Default compartment for name resolution, a name or an OCID.
	Compartment string `yaml:"compartment" env:"DSCTL_COMPARTMENT"`

	// Listing cache: TTL in seconds, 0 disables caching entirely.
	CacheTTL *int   `yaml:"cache_ttl" env:"DSCTL_CACHE_TTL"`
	CacheDir string `yaml:"cache_dir" env:"DSCTL_CACHE_DIR"`

	LogLevel string     `yaml:"log_level" env:"DSCTL_LOG_LEVEL"`
	OTEL     OTELConfig `yaml:"otel"`
}

// OTELConfig holds OpenTelemetry settings.
type OTELConfig struct {
	Endpoint    string        `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool          `yaml:"insecure" env:"DSCTL_OTEL_INSECURE"`
	ServiceName string        `yaml:"service_name"`
	Traces      TracesConfig  `yaml:"traces"`
	Metrics     MetricsConfig `yaml:"metrics"`
}

// TracesConfig holds tracing settings.
type TracesConfig struct {
	Enabled    bool    `yaml:"enabled" env:"DSCTL_TRACES_ENABLED"`
	SampleRate float64 `yaml:"sample_rate"`
}

// MetricsConfig holds metrics settings.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"DSCTL_METRICS_ENABLED"`
}

// Load reads the config file at path, fills defaults and applies
// environment overrides. An empty path means no file: defaults plus
// environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.CacheTTL == nil {
		ttl := DefaultCacheTTL
		cfg.CacheTTL = &ttl
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = filepath.Join(os.TempDir(), "dsctl-cache")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.OTEL.ServiceName == "" {
		cfg.OTEL.ServiceName = "dsctl"
	}
	if cfg.OTEL.Traces.SampleRate == 0 {
		cfg.OTEL.Traces.SampleRate = 1.0
	}
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.CacheTTL != nil && *c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative (got %d)", *c.CacheTTL)
	}
	if c.OTEL.Traces.SampleRate < 0.0 || c.OTEL.Traces.SampleRate > 1.0 {
		return fmt.Errorf("otel: traces.sample_rate must be between 0.0 and 1.0 (got %v)", c.OTEL.Traces.SampleRate)
	}
	return nil
}

// TTL returns the cache TTL as a duration. Zero disables caching.
func (c *Config) TTL() time.Duration {
	if c.CacheTTL == nil {
		return DefaultCacheTTL * time.Second
	}
	return time.Duration(*c.CacheTTL) * time.Second
}
