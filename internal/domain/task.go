package domain

import (
	"strings"
	"time"
)

// Task represents a trackable work item in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID        string
	Title     string
	Category  Category
	Priority  Priority
	Status    Status
	DueDate   Date
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompleted reports whether the task is in the Completed status.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsValid checks if the task has the fields every persisted task carries.
func (t Task) IsValid() bool {
	if t.ID == "" || strings.TrimSpace(t.Title) == "" || t.DueDate.IsZero() {
		return false
	}
	if !t.Category.IsValid() || !t.Priority.IsValid() || !t.Status.IsValid() {
		return false
	}
	return !t.UpdatedAt.Before(t.CreatedAt)
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// Apply merges the set fields of p over t and stamps UpdatedAt.
// ID and CreatedAt are never changed; UpdatedAt never moves before CreatedAt.
func (t Task) Apply(p TaskPatch, now time.Time) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	t.UpdatedAt = laterOf(now, t.CreatedAt)
	return t
}

// TaskDraft is a task's field set without identity and timestamps,
// supplied when creating a task.
type TaskDraft struct {
	Title    string
	Category Category
	Priority Priority
	Status   Status
	DueDate  Date
	Notes    string
}

// Defaults a new task form starts from.
const (
	DefaultCategory = CategorySMS
	DefaultPriority = PriorityMedium
	DefaultStatus   = StatusToDo
)

// NewDraft returns a draft with the given title and due date and the
// default category, priority and status.
func NewDraft(title string, due Date) TaskDraft {
	return TaskDraft{
		Title:    title,
		Category: DefaultCategory,
		Priority: DefaultPriority,
		Status:   DefaultStatus,
		DueDate:  due,
	}
}

// NewTask builds a task from the draft with the given identity and creation time.
func (d TaskDraft) NewTask(id string, now time.Time) Task {
	return Task{
		ID:        id,
		Title:     d.Title,
		Category:  d.Category,
		Priority:  d.Priority,
		Status:    d.Status,
		DueDate:   d.DueDate,
		Notes:     d.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Draft returns the editable fields of t.
func (t Task) Draft() TaskDraft {
	return TaskDraft{
		Title:    t.Title,
		Category: t.Category,
		Priority: t.Priority,
		Status:   t.Status,
		DueDate:  t.DueDate,
		Notes:    t.Notes,
	}
}

// TaskPatch holds a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title    *string
	Category *Category
	Priority *Priority
	Status   *Status
	DueDate  *Date
	Notes    *string
}

// IsEmpty reports whether the patch sets no field.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Category == nil && p.Priority == nil &&
		p.Status == nil && p.DueDate == nil && p.Notes == nil
}

// StatusPatch returns a patch that only changes the status.
func StatusPatch(s Status) TaskPatch {
	return TaskPatch{Status: &s}
}

func laterOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
