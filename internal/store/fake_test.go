package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"task-tracker/internal/domain"
)

type fakePersistence struct {
	mu        sync.Mutex
	loadTasks []domain.Task
	loadErr   error
	saveErr   error
	saveHook  func(ctx context.Context) error
	loads     int
	saves     [][]domain.Task
}

func (f *fakePersistence) Load(ctx context.Context) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return slices.Clone(f.loadTasks), nil
}

func (f *fakePersistence) Save(ctx context.Context, tasks []domain.Task) error {
	if f.saveHook != nil {
		if err := f.saveHook(ctx); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves = append(f.saves, slices.Clone(tasks))
	return nil
}

func (f *fakePersistence) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saves)
}

func (f *fakePersistence) lastSaved() []domain.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saves) == 0 {
		return nil
	}
	return f.saves[len(f.saves)-1]
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// sequenceIDs returns the given ids in order, then numbered ids.
func sequenceIDs(ids ...string) IDGenerator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		defer func() { n++ }()
		if n < len(ids) {
			return ids[n]
		}
		return fmt.Sprintf("id-%d", n)
	}
}

type diagnosticLog struct {
	mu    sync.Mutex
	items []Diagnostic
}

func (l *diagnosticLog) report(d Diagnostic) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, d)
}

func (l *diagnosticLog) kinds() []DiagnosticKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	kinds := make([]DiagnosticKind, len(l.items))
	for i, d := range l.items {
		kinds[i] = d.Kind
	}
	return kinds
}
