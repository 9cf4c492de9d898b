package config

import (
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(l.config)
	}

	// Validate once every source has been applied
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides; nil fields are unset
type ConfigOverrides struct {
	// Log overrides
	LogDir      *string
	LogFilename *string

	// Storage overrides
	Backend    *string
	DBFilename *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool

	// Output overrides
	OutputFormat *string
}

// Apply copies every set override into config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.LogDir != nil {
		config.Log.Dir = *o.LogDir
	}
	if o.LogFilename != nil {
		config.Log.Filename = *o.LogFilename
	}

	if o.Backend != nil {
		config.Storage.Backend = *o.Backend
	}
	if o.DBFilename != nil {
		config.Storage.DBFilename = *o.DBFilename
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}

	if o.OutputFormat != nil {
		config.Output.Format = *o.OutputFormat
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
