// Package store holds the canonical in-memory task collection and keeps it in
// sync with a persistence backend.
package store

import (
	"context"
	stderrors "errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

const maxIDAttempts = 8

// errUnread is the cause of every commit refused after a failed read.
var errUnread = stderrors.New("saved tasks were never read, refusing to overwrite them")

// Persistence loads and saves the whole task collection.
//
// Load returns a NotFound app error when nothing was saved yet and a
// CorruptData app error when the saved payload cannot be decoded.
type Persistence interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}

// State is the lifecycle state of a Store.
type State int

const (
	StateLoading State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "loading"
}

// LoadStatus records how Init obtained the initial collection.
type LoadStatus string

const (
	LoadStatusPending     LoadStatus = "pending"
	LoadStatusLoaded      LoadStatus = "loaded"
	LoadStatusEmpty       LoadStatus = "empty"
	LoadStatusCorrupt     LoadStatus = "corrupt"
	LoadStatusUnavailable LoadStatus = "unavailable"
)

// Store owns the task collection. It is safe for concurrent use.
//
// Mutations update memory first and then commit a copy of the collection.
// Memory stays authoritative when a commit fails. A store whose initial read
// failed never commits, since the durable copy may still hold valid tasks.
type Store struct {
	persistence  Persistence
	now          func() time.Time
	newID        IDGenerator
	report       Reporter
	writeTimeout time.Duration

	mu         sync.RWMutex
	tasks      []domain.Task
	state      State
	loadStatus LoadStatus
	version    uint64

	initOnce sync.Once
	ready    chan struct{}

	// saveMu serializes commits. savedVersion is the newest version written.
	saveMu       sync.Mutex
	savedVersion uint64
}

// New creates a Store in the loading state. Call Init before mutating it.
func New(p Persistence, opts ...Option) *Store {
	s := &Store{
		persistence: p,
		now:         time.Now,
		newID:       NewID,
		report:      logReporter,
		tasks:       []domain.Task{},
		state:       StateLoading,
		loadStatus:  LoadStatusPending,
		ready:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads the persisted collection and moves the store to ready. Missing,
// malformed or unreadable data leaves the store empty; the latter two are
// reported as diagnostics. After an unreadable load no commit is attempted.
// Calls after the first do nothing.
func (s *Store) Init(ctx context.Context) LoadStatus {
	s.initOnce.Do(func() {
		tasks, status := s.load(ctx)

		s.mu.Lock()
		s.tasks = tasks
		s.loadStatus = status
		s.state = StateReady
		s.mu.Unlock()

		logging.Debugf("store: ready with %d tasks (%s)\n", len(tasks), status)
		close(s.ready)
	})
	return s.LoadStatus()
}

func (s *Store) load(ctx context.Context) ([]domain.Task, LoadStatus) {
	tasks, err := s.persistence.Load(ctx)
	switch {
	case err == nil:
		if tasks == nil {
			tasks = []domain.Task{}
		}
		return tasks, LoadStatusLoaded
	case errors.IsErrorType(err, errors.ErrorTypeNotFound):
		return []domain.Task{}, LoadStatusEmpty
	case errors.IsErrorType(err, errors.ErrorTypeCorruptData):
		s.report(Diagnostic{Kind: DiagnosticCorruptData, Err: err})
		return []domain.Task{}, LoadStatusCorrupt
	default:
		s.report(Diagnostic{Kind: DiagnosticLoadFailed, Err: err})
		return []domain.Task{}, LoadStatusUnavailable
	}
}

// Ready is closed once Init has finished.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// State returns the lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// LoadStatus returns how the initial collection was obtained.
func (s *Store) LoadStatus() LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadStatus
}

// Snapshot returns a copy of the collection in insertion order.
func (s *Store) Snapshot() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

// Task returns the task with the given id.
func (s *Store) Task(id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return domain.Task{}, false
}

// AddTask creates a task from draft with a fresh id and timestamps. The
// draft is stored as given; validating it is the caller's job.
//
// A failed commit returns a non-fatal storage error together with the task,
// which is already part of the collection.
func (s *Store) AddTask(ctx context.Context, draft domain.TaskDraft) (domain.Task, error) {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return domain.Task{}, errors.ErrNotReady
	}

	id, err := s.uniqueID()
	if err != nil {
		s.mu.Unlock()
		return domain.Task{}, err
	}

	task := draft.NewTask(id, s.timestamp())
	s.tasks = append(s.tasks, task)
	snapshot, version := s.bump()
	s.mu.Unlock()

	logging.Debugf("store: added task %s\n", task.ID)
	return task, s.commit(ctx, snapshot, version)
}

// UpdateTask merges patch into the task with the given id. An unknown id is
// not an error: it reports false and writes nothing.
func (s *Store) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, bool, error) {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return domain.Task{}, false, errors.ErrNotReady
	}

	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		logging.Debugf("store: update of unknown task %s ignored\n", id)
		return domain.Task{}, false, nil
	}

	updated := s.tasks[i].Apply(patch, s.timestamp())
	s.tasks[i] = updated
	snapshot, version := s.bump()
	s.mu.Unlock()

	return updated, true, s.commit(ctx, snapshot, version)
}

// DeleteTask removes the task with the given id. An unknown id reports false
// and writes nothing, so deleting twice is harmless.
func (s *Store) DeleteTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return false, errors.ErrNotReady
	}

	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)
	snapshot, version := s.bump()
	s.mu.Unlock()

	return true, s.commit(ctx, snapshot, version)
}

// timestamp is the current time at the precision the wire format keeps.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool { return t.ID == id })
}

// uniqueID must be called with mu held.
func (s *Store) uniqueID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
		logging.Debugf("store: discarding colliding id %q\n", id)
	}
	return "", errors.WrapError(fmt.Errorf("%d candidates collided", maxIDAttempts),
		errors.ErrorTypeInternal, "could not generate a unique task id")
}

// bump must be called with mu held.
func (s *Store) bump() ([]domain.Task, uint64) {
	s.version++
	return slices.Clone(s.tasks), s.version
}

// commit writes snapshot unless a newer version has already been written.
func (s *Store) commit(ctx context.Context, snapshot []domain.Task, version uint64) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if version <= s.savedVersion {
		logging.Debugf("store: skipping stale snapshot v%d (saved v%d)\n", version, s.savedVersion)
		return nil
	}

	if s.LoadStatus() == LoadStatusUnavailable {
		appErr := errors.NewStorageError("save tasks", errUnread)
		s.report(Diagnostic{Kind: DiagnosticSaveFailed, Err: appErr})
		return appErr
	}

	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}

	if err := s.persistence.Save(ctx, snapshot); err != nil {
		var appErr *errors.AppError
		if stderrors.Is(err, context.DeadlineExceeded) {
			appErr = errors.NewTimeoutError("save tasks", s.writeTimeout)
			appErr.Cause = err
		} else {
			appErr = errors.NewStorageError("save tasks", err)
		}
		s.report(Diagnostic{Kind: DiagnosticSaveFailed, Err: appErr})
		return appErr
	}

	s.savedVersion = version
	logging.Debugf("store: saved v%d with %d tasks\n", version, len(snapshot))
	return nil
}
