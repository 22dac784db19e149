package query

import (
	"math"

	"task-tracker/internal/domain"
)

// Stats summarizes completion progress for a task list.
type Stats struct {
	Total                int `json:"total"`
	Completed            int `json:"completed"`
	InProgress           int `json:"inProgress"`
	Todo                 int `json:"todo"`
	CompletionPercentage int `json:"completionPercentage"`
}

// ComputeStats counts tasks per status. CompletionPercentage is
// completed/total*100 rounded to the nearest integer, or 0 for an empty list.
func ComputeStats(tasks []domain.Task) Stats {
	stats := Stats{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusToDo:
			stats.Todo++
		}
	}
	if stats.Total > 0 {
		stats.CompletionPercentage = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}

// CountByCategory returns the number of tasks in each category present in tasks.
func CountByCategory(tasks []domain.Task) map[domain.Category]int {
	counts := make(map[domain.Category]int)
	for _, task := range tasks {
		counts[task.Category]++
	}
	return counts
}
