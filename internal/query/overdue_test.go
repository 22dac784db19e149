package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"task-tracker/internal/domain"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	today := domain.DateOf(now)
	yesterday := today.AddDays(-1)
	tomorrow := today.AddDays(1)

	tests := []struct {
		name     string
		due      domain.Date
		status   domain.Status
		expected bool
	}{
		{"yesterday and to do", yesterday, domain.StatusToDo, true},
		{"yesterday and in progress", yesterday, domain.StatusInProgress, true},
		{"yesterday and completed", yesterday, domain.StatusCompleted, false},
		{"tomorrow", tomorrow, domain.StatusToDo, false},
		{"today after midnight", today, domain.StatusToDo, true},
		{"no due date", domain.Date{}, domain.StatusToDo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsOverdue(tt.due, tt.status, now))
		})
	}
}

func TestIsOverdue_AtExactStartOfDay(t *testing.T) {
	midnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsOverdue(domain.DateOf(midnight), domain.StatusToDo, midnight))
	assert.True(t, IsOverdue(domain.DateOf(midnight), domain.StatusToDo, midnight.Add(time.Nanosecond)))
}

func TestOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	tasks := []domain.Task{
		task("late", withDue(domain.NewDate(2025, 6, 1))),
		task("done", withDue(domain.NewDate(2025, 6, 1)), withStatus(domain.StatusCompleted)),
		task("future", withDue(domain.NewDate(2025, 7, 1))),
		task("late2", withDue(domain.NewDate(2025, 6, 14)), withStatus(domain.StatusInProgress)),
	}

	assert.Equal(t, []string{"late", "late2"}, ids(Overdue(tasks, now)))
}
