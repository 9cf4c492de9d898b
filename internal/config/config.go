package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all configuration options for the time tracker application
type Config struct {
	Log         LogConfig
	Storage     StorageConfig
	Application ApplicationConfig
	Output      OutputConfig
}

// LogConfig locates the time log
type LogConfig struct {
	Dir            string `env:"TT_LOG_DIR"`
	Filename       string `env:"TT_LOG_FILENAME"`
	DirPermissions uint32 `env:"TT_LOG_DIR_PERMISSIONS"`
}

// StorageConfig selects and tunes the log store
type StorageConfig struct {
	Backend    string `env:"TT_STORAGE_BACKEND"`
	DBFilename string `env:"TT_DB_FILENAME"`
	Locking    bool   `env:"TT_STORAGE_LOCKING"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TT_APP_TIMEOUT"`
	Verbose bool          `env:"TT_APP_VERBOSE"`
}

// OutputConfig controls how reports are printed
type OutputConfig struct {
	Format string `env:"TT_OUTPUT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Log: LogConfig{
			Dir:            homeDir,
			Filename:       "timetracker.txt",
			DirPermissions: 0755,
		},
		Storage: StorageConfig{
			Backend:    BackendFile,
			DBFilename: "timetracker.db",
			Locking:    true,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
		Output: OutputConfig{
			Format: OutputText,
		},
	}
}

// GetLogPath returns the full path to the text log file
func (c *Config) GetLogPath() string {
	return filepath.Join(c.Log.Dir, c.Log.Filename)
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Log.Dir, c.Storage.DBFilename)
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values keep the current setting.
func (c *Config) LoadFromEnvironment() error {
	// Log configuration
	if dir := os.Getenv("TT_LOG_DIR"); dir != "" {
		c.Log.Dir = dir
	}
	if filename := os.Getenv("TT_LOG_FILENAME"); filename != "" {
		c.Log.Filename = filename
	}
	if perms := os.Getenv("TT_LOG_DIR_PERMISSIONS"); perms != "" {
		c.Log.DirPermissions = ParseUint32WithFallback(perms, 8, c.Log.DirPermissions)
	}

	// Storage configuration
	if backend := os.Getenv("TT_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if filename := os.Getenv("TT_DB_FILENAME"); filename != "" {
		c.Storage.DBFilename = filename
	}
	if locking := os.Getenv("TT_STORAGE_LOCKING"); locking != "" {
		c.Storage.Locking = ParseBoolWithFallback(locking, c.Storage.Locking)
	}

	// Application configuration
	if timeout := os.Getenv("TT_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TT_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	// Output configuration
	if format := os.Getenv("TT_OUTPUT_FORMAT"); format != "" {
		c.Output.Format = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate log configuration
	if c.Log.Dir == "" {
		return &ConfigError{Field: "log.dir", Message: "log directory cannot be empty"}
	}
	if c.Log.Filename == "" {
		return &ConfigError{Field: "log.filename", Message: "log filename cannot be empty"}
	}
	if c.Log.DirPermissions == 0 || c.Log.DirPermissions > 0777 {
		return &ConfigError{Field: "log.dir_permissions", Message: "directory permissions must be between 0001 and 0777"}
	}

	// Validate storage configuration
	switch c.Storage.Backend {
	case BackendFile:
	case BackendSQLite:
		if c.Storage.DBFilename == "" {
			return &ConfigError{Field: "storage.db_filename", Message: "database filename cannot be empty"}
		}
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be \"file\" or \"sqlite\""}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	// Validate output configuration
	if c.Output.Format != OutputText && c.Output.Format != OutputJSON {
		return &ConfigError{Field: "output.format", Message: "output format must be \"text\" or \"json\""}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
