package query

import (
	"time"

	"task-tracker/internal/domain"
)

// IsOverdue reports whether a task with the given due date and status is late
// at now. Completed tasks and tasks without a due date are never overdue.
// A due date counts from midnight UTC at its start, so a task due today is
// overdue once that moment has passed.
func IsOverdue(due domain.Date, status domain.Status, now time.Time) bool {
	if status == domain.StatusCompleted || due.IsZero() {
		return false
	}
	return due.Time().Before(now)
}

// Overdue returns the overdue tasks in input order.
func Overdue(tasks []domain.Task, now time.Time) []domain.Task {
	overdue := make([]domain.Task, 0)
	for _, task := range tasks {
		if IsOverdue(task.DueDate, task.Status, now) {
			overdue = append(overdue, task)
		}
	}
	return overdue
}
