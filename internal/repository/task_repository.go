package repository

import (
	"context"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

// CorruptSuffix is appended to the key when a malformed payload is set aside.
const CorruptSuffix = ".corrupt"

// TaskRepository loads and saves the task collection under one key.
type TaskRepository struct {
	kv              KVStore
	key             string
	preserveCorrupt bool
}

// Option configures a TaskRepository.
type Option func(*TaskRepository)

// WithCorruptBackup copies a malformed payload to key+CorruptSuffix before
// it is reported, so the next save does not destroy it.
func WithCorruptBackup(enabled bool) Option {
	return func(r *TaskRepository) {
		r.preserveCorrupt = enabled
	}
}

// NewTaskRepository returns a repository over kv. An empty key means DefaultKey.
func NewTaskRepository(kv KVStore, key string, opts ...Option) *TaskRepository {
	if key == "" {
		key = DefaultKey
	}
	r := &TaskRepository{kv: kv, key: key, preserveCorrupt: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key returns the key the collection is stored under.
func (r *TaskRepository) Key() string {
	return r.key
}

// Load reads and decodes the collection. It returns a NotFound app error
// when nothing was saved yet and a CorruptData app error when the payload
// does not decode.
func (r *TaskRepository) Load(ctx context.Context) ([]domain.Task, error) {
	data, err := r.kv.Get(ctx, r.key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, err
		}
		return nil, errors.NewStorageError("read "+r.key, err)
	}

	tasks, err := DecodeTasks(data)
	if err != nil {
		if r.preserveCorrupt {
			r.backup(ctx, data)
		}
		return nil, errors.NewCorruptDataError(r.key, err)
	}

	logging.Debugf("repository: loaded %d tasks from %s\n", len(tasks), r.key)
	return tasks, nil
}

// Save encodes tasks and replaces the stored collection.
func (r *TaskRepository) Save(ctx context.Context, tasks []domain.Task) error {
	data, err := EncodeTasks(tasks)
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}
	return r.kv.Set(ctx, r.key, data)
}

func (r *TaskRepository) backup(ctx context.Context, data []byte) {
	backupKey := r.key + CorruptSuffix
	if err := r.kv.Set(ctx, backupKey, data); err != nil {
		logging.Warnf("could not preserve malformed tasks under %s: %v", backupKey, err)
		return
	}
	logging.Debugf("repository: preserved malformed payload under %s\n", backupKey)
}
