package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"task-tracker/internal/domain"
)

// TimestampLayout is the wire layout of createdAt and updatedAt: ISO-8601
// UTC with millisecond precision. Finer timestamps read from a payload keep
// their digits.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// taskRecord is the persisted shape of a task. Field order is the wire order.
type taskRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	DueDate   string `json:"dueDate"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toRecord(t domain.Task) taskRecord {
	return taskRecord{
		ID:        t.ID,
		Title:     t.Title,
		Category:  t.Category.String(),
		Priority:  t.Priority.String(),
		Status:    t.Status.String(),
		DueDate:   t.DueDate.String(),
		Notes:     t.Notes,
		CreatedAt: formatTimestamp(t.CreatedAt),
		UpdatedAt: formatTimestamp(t.UpdatedAt),
	}
}

func (r taskRecord) toTask() (domain.Task, error) {
	if r.ID == "" {
		return domain.Task{}, fmt.Errorf("task without id")
	}

	category := domain.Category(r.Category)
	if !category.IsValid() {
		return domain.Task{}, fmt.Errorf("task %s: unknown category %q", r.ID, r.Category)
	}
	priority := domain.Priority(r.Priority)
	if !priority.IsValid() {
		return domain.Task{}, fmt.Errorf("task %s: unknown priority %q", r.ID, r.Priority)
	}
	status := domain.Status(r.Status)
	if !status.IsValid() {
		return domain.Task{}, fmt.Errorf("task %s: unknown status %q", r.ID, r.Status)
	}

	var due domain.Date
	if err := due.UnmarshalText([]byte(r.DueDate)); err != nil {
		return domain.Task{}, fmt.Errorf("task %s: %w", r.ID, err)
	}
	createdAt, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %s: createdAt: %w", r.ID, err)
	}
	updatedAt, err := parseTimestamp(r.UpdatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %s: updatedAt: %w", r.ID, err)
	}

	return domain.Task{
		ID:        r.ID,
		Title:     r.Title,
		Category:  category,
		Priority:  priority,
		Status:    status,
		DueDate:   due,
		Notes:     r.Notes,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// EncodeTasks renders tasks as a compact JSON array.
func EncodeTasks(tasks []domain.Task) ([]byte, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, toRecord(t))
	}
	return json.Marshal(records)
}

// DecodeTasks parses a JSON array written by EncodeTasks. Any record with an
// unknown enum label, an unparsable date or a repeated id fails the whole
// payload.
func DecodeTasks(data []byte) ([]domain.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, fmt.Errorf("payload is not a JSON array")
	}

	tasks := make([]domain.Task, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		task, err := r.toTask()
		if err != nil {
			return nil, err
		}
		if seen[task.ID] {
			return nil, fmt.Errorf("duplicate task id %s", task.ID)
		}
		seen[task.ID] = true
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// formatTimestamp writes milliseconds, or every digit the value carries when
// it is finer than that, so decoded payloads encode back to the same instants.
func formatTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()%int(time.Millisecond) != 0 {
		return t.Format(time.RFC3339Nano)
	}
	return t.Format(TimestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
