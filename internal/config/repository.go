package config

import (
	"fmt"
	"os"

	"timetracker/internal/repository"
	"timetracker/internal/repository/file"
	"timetracker/internal/repository/memory"
	"timetracker/internal/repository/sqlite"
)

// CreateStore opens the log store selected by config.Storage.Backend
func CreateStore(config *Config) (repository.LogStore, error) {
	switch config.Storage.Backend {
	case BackendSQLite:
		if err := os.MkdirAll(config.Log.Dir, os.FileMode(config.Log.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		store, err := sqlite.New(config.GetDatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store, nil
	case BackendFile, "":
		store, err := file.New(config.GetLogPath(), file.Options{
			DirPerm: os.FileMode(config.Log.DirPermissions),
			Locking: config.Storage.Locking,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize log file: %w", err)
		}
		return store, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: fmt.Sprintf("unknown backend %q", config.Storage.Backend)}
	}
}

// CreateTestStore creates an in-memory store seeded with lines
func CreateTestStore(lines ...string) repository.LogStore {
	return memory.New(lines...)
}
