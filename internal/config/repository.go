package config

import (
	"context"
	"fmt"
	"os"

	"task-tracker/internal/repository"
	"task-tracker/internal/repository/file"
	"task-tracker/internal/repository/memory"
	"task-tracker/internal/repository/sqlite"
)

// Repository is an opened storage backend together with the task
// repository layered over it.
type Repository struct {
	Backend string
	KV      repository.KVStore
	Tasks   *repository.TaskRepository
	closer  func() error
}

// Close releases the backend.
func (r *Repository) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}

// CreateRepository opens the backend named by config.Storage.Backend
func CreateRepository(ctx context.Context, config *Config) (*Repository, error) {
	var (
		kv     repository.KVStore
		closer func() error
	)

	switch config.Storage.Backend {
	case BackendSQLite:
		if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		db, err := sqlite.New(ctx, config.GetDatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		kv, closer = db, db.Close
	case BackendFile:
		store, err := file.New(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file store: %w", err)
		}
		kv = store
	case BackendMemory:
		kv = memory.New()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}

	tasks := repository.NewTaskRepository(kv, config.Storage.Key,
		repository.WithCorruptBackup(config.Storage.PreserveCorrupt))

	return &Repository{
		Backend: config.Storage.Backend,
		KV:      kv,
		Tasks:   tasks,
		closer:  closer,
	}, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() *Repository {
	kv := memory.New()
	return &Repository{
		Backend: BackendMemory,
		KV:      kv,
		Tasks:   repository.NewTaskRepository(kv, repository.DefaultKey),
	}
}
