// Package api is the collaborator layer between user-facing commands and the
// task store. It validates input, turns unknown ids into not-found errors and
// runs the query engine over store snapshots.
package api

import (
	"context"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/query"
	"task-tracker/internal/store"
	"task-tracker/internal/validation"
)

// TaskAPI defines the operations available to commands.
//
// Mutations that reach memory but fail to persist return the result together
// with a non-fatal error (see errors.IsNonFatal).
type TaskAPI interface {
	// Task operations
	AddTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	AddTasks(ctx context.Context, drafts []domain.TaskDraft) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)

	// Views
	ListTasks(ctx context.Context, filter domain.FilterOptions, sort domain.SortOptions) ([]domain.Task, error)
	Stats(ctx context.Context) (query.Stats, error)
	CategoryBreakdown(ctx context.Context) (map[domain.Category]int, error)
	Overdue(ctx context.Context) ([]domain.Task, error)
}

type apiImpl struct {
	store         *store.Store
	taskValidator *validation.TaskValidator
	now           func() time.Time
}

// New creates a TaskAPI over s. A nil cfg uses default validation limits.
func New(s *store.Store, cfg *config.Config) TaskAPI {
	validator := validation.NewTaskValidator()
	if cfg != nil {
		validator = validation.NewTaskValidatorWithConfig(cfg)
	}
	return &apiImpl{
		store:         s,
		taskValidator: validator,
		now:           time.Now,
	}
}

// awaitReady blocks until the store has loaded or ctx ends.
func (a *apiImpl) awaitReady(ctx context.Context) error {
	select {
	case <-a.store.Ready():
		return nil
	default:
	}
	select {
	case <-a.store.Ready():
		return nil
	case <-ctx.Done():
		return errors.ErrNotReady
	}
}

func (a *apiImpl) AddTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	draft = a.taskValidator.NormalizeDraft(draft)
	if err := a.taskValidator.ValidateDraft(draft); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}
	if err := a.awaitReady(ctx); err != nil {
		return nil, err
	}

	task, err := a.store.AddTask(ctx, draft)
	if err != nil && !errors.IsNonFatal(err) {
		return nil, err
	}
	return &task, err
}

// AddTasks validates every draft before adding any. A save failure does not
// stop the remaining drafts; the last such failure is returned.
func (a *apiImpl) AddTasks(ctx context.Context, drafts []domain.TaskDraft) ([]domain.Task, error) {
	normalized := make([]domain.TaskDraft, len(drafts))
	for i, draft := range drafts {
		normalized[i] = a.taskValidator.NormalizeDraft(draft)
		if err := a.taskValidator.ValidateDraft(normalized[i]); err != nil {
			return nil, errors.NewValidationError("invalid task", err).WithContext("index", i)
		}
	}
	if err := a.awaitReady(ctx); err != nil {
		return nil, err
	}

	added := make([]domain.Task, 0, len(drafts))
	var saveErr error
	for _, draft := range normalized {
		task, err := a.store.AddTask(ctx, draft)
		if err != nil {
			if !errors.IsNonFatal(err) {
				return added, err
			}
			saveErr = err
		}
		added = append(added, task)
	}
	return added, saveErr
}

func (a *apiImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if err := a.awaitReady(ctx); err != nil {
		return nil, err
	}
	task, ok := a.store.Task(id)
	if !ok {
		return nil, errors.NewNotFoundError("task", id)
	}
	return &task, nil
}

func (a *apiImpl) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	patch = a.taskValidator.NormalizePatch(patch)
	if err := a.taskValidator.ValidatePatch(patch); err != nil {
		return nil, errors.NewValidationError("invalid task update", err)
	}
	if err := a.awaitReady(ctx); err != nil {
		return nil, err
	}

	task, found, err := a.store.UpdateTask(ctx, id, patch)
	if !found && err == nil {
		return nil, errors.NewNotFoundError("task", id)
	}
	if err != nil && !errors.IsNonFatal(err) {
		return nil, err
	}
	return &task, err
}

func (a *apiImpl) SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error) {
	return a.UpdateTask(ctx, id, domain.StatusPatch(status))
}

// DeleteTask reports whether a task was removed. Deleting an unknown id is
// not an error.
func (a *apiImpl) DeleteTask(ctx context.Context, id string) (bool, error) {
	if err := a.awaitReady(ctx); err != nil {
		return false, err
	}
	return a.store.DeleteTask(ctx, id)
}

func (a *apiImpl) ListTasks(ctx context.Context, filter domain.FilterOptions, sort domain.SortOptions) ([]domain.Task, error) {
	if err := a.awaitReady(ctx); err != nil {
		return nil, err
	}
	return query.Process(a.store.Snapshot(), filter, sort), nil
}

func (a *apiImpl) Stats(ctx context.Context) (query.Stats, error) {
	if err := a.awaitReady(ctx); err != nil {
		return query.Stats{}, err
	}
	return query.ComputeStats(a.store.Snapshot()), nil
}

func (a *apiImpl) CategoryBreakdown(ctx context.Context) (map[domain.Category]int, error) {
	if err := a.awaitReady(ctx); err != nil {
		return nil, err
	}
	return query.CountByCategory(a.store.Snapshot()), nil
}

func (a *apiImpl) Overdue(ctx context.Context) ([]domain.Task, error) {
	if err := a.awaitReady(ctx); err != nil {
		return nil, err
	}
	return query.Overdue(a.store.Snapshot(), a.now()), nil
}
