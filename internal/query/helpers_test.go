package query

import (
	"time"

	"task-tracker/internal/domain"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func task(id string, mutate ...func(*domain.Task)) domain.Task {
	t := domain.Task{
		ID:        id,
		Title:     "Task " + id,
		Category:  domain.CategoryAgile,
		Priority:  domain.PriorityMedium,
		Status:    domain.StatusToDo,
		DueDate:   domain.NewDate(2025, 6, 10),
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
	for _, m := range mutate {
		m(&t)
	}
	return t
}

func withTitle(title string) func(*domain.Task) {
	return func(t *domain.Task) { t.Title = title }
}

func withNotes(notes string) func(*domain.Task) {
	return func(t *domain.Task) { t.Notes = notes }
}

func withCategory(c domain.Category) func(*domain.Task) {
	return func(t *domain.Task) { t.Category = c }
}

func withStatus(s domain.Status) func(*domain.Task) {
	return func(t *domain.Task) { t.Status = s }
}

func withPriority(p domain.Priority) func(*domain.Task) {
	return func(t *domain.Task) { t.Priority = p }
}

func withDue(d domain.Date) func(*domain.Task) {
	return func(t *domain.Task) { t.DueDate = d }
}

func withCreated(at time.Time) func(*domain.Task) {
	return func(t *domain.Task) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func categoryPtr(c domain.Category) *domain.Category { return &c }

func statusPtr(s domain.Status) *domain.Status { return &s }
