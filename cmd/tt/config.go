package main

import (
	"fmt"
	"os"
	"path/filepath"

	"timetracker/internal/config"
	"timetracker/internal/repository"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// StoreFactory creates log stores based on environment
type StoreFactory struct {
	env Environment
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment) *StoreFactory {
	return &StoreFactory{env: env}
}

// CreateStore creates a log store for cfg based on the current environment
func (sf *StoreFactory) CreateStore(cfg *config.Config) (repository.LogStore, error) {
	switch sf.env {
	case Development:
		return sf.createDevelopmentStore(cfg)
	case Testing:
		return sf.createTestingStore()
	default:
		return sf.createProductionStore(cfg)
	}
}

// createDevelopmentStore keeps the log in the working directory
func (sf *StoreFactory) createDevelopmentStore(cfg *config.Config) (repository.LogStore, error) {
	dev := *cfg
	dir, err := filepath.Abs(".")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	dev.Log.Dir = dir

	store, err := config.CreateStore(&dev)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development store: %w", err)
	}
	return store, nil
}

// createTestingStore uses an in-memory log that is discarded on exit
func (sf *StoreFactory) createTestingStore() (repository.LogStore, error) {
	return config.CreateTestStore(), nil
}

// createProductionStore uses the configured log location
func (sf *StoreFactory) createProductionStore(cfg *config.Config) (repository.LogStore, error) {
	store, err := config.CreateStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	return store, nil
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("TT_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
