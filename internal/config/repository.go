package config

import (
	"context"
	"fmt"

	"task-manager/internal/errors"
	"task-manager/internal/repository"
	"task-manager/internal/repository/sqlite"
)

// CreateRepository creates the task store selected by the configuration
func CreateRepository(ctx context.Context, config *Config) (repository.TaskRepository, error) {
	switch config.Store.Backend {
	case BackendMemory:
		return repository.NewMemoryRepository(), nil
	case BackendSQLite:
		repo, err := sqlite.New(ctx, config.Store.SQLiteDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		return repo, nil
	default:
		return nil, errors.NewInvalidInputError("store.backend", config.Store.Backend, "unsupported backend")
	}
}
