package domain

import (
	"strings"

	"task-tracker/internal/errors"
)

// AllLabel is the filter sentinel meaning "do not restrict by this field".
const AllLabel = "All"

// Category is the work stream a task belongs to.
type Category string

const (
	CategorySMS        Category = "SMS"
	CategoryOutlook    Category = "Outlook"
	CategoryJIRA       Category = "JIRA"
	CategoryAgile      Category = "Agile"
	CategoryBOPS       Category = "BOPS"
	CategoryDSAProcess Category = "DSA Process"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategorySMS,
	CategoryOutlook,
	CategoryJIRA,
	CategoryAgile,
	CategoryBOPS,
	CategoryDSAProcess,
}

// String returns the category label.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory parses a category label, ignoring case and surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	label := strings.TrimSpace(s)
	for _, known := range Categories {
		if strings.EqualFold(label, string(known)) {
			return known, nil
		}
	}
	return "", errors.NewInvalidInputError("category", s, "unknown category")
}

// ParseCategoryFilter parses a category filter value. Empty input and "All"
// both mean no restriction and yield nil.
func ParseCategoryFilter(s string) (*Category, error) {
	if isMatchAll(s) {
		return nil, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Priority orders tasks by urgency.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists every priority from highest to lowest.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// String returns the priority label.
func (p Priority) String() string {
	return string(p)
}

// Rank returns 3 for High, 2 for Medium, 1 for Low and 0 for anything else.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// ParsePriority parses a priority label, ignoring case and surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	label := strings.TrimSpace(s)
	for _, known := range Priorities {
		if strings.EqualFold(label, string(known)) {
			return known, nil
		}
	}
	return "", errors.NewInvalidInputError("priority", s, "unknown priority")
}

// Status is where a task sits in its lifecycle. Any status may move to any other.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every status in workflow order.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusCompleted}

// String returns the status label.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus parses a status label. Besides the exact labels it accepts
// the compact forms "todo" and "in-progress" for command-line use.
func ParseStatus(s string) (Status, error) {
	label := strings.TrimSpace(s)
	for _, known := range Statuses {
		if strings.EqualFold(label, string(known)) {
			return known, nil
		}
	}
	switch strings.ToLower(label) {
	case "todo", "to-do":
		return StatusToDo, nil
	case "in-progress", "inprogress", "doing":
		return StatusInProgress, nil
	case "done":
		return StatusCompleted, nil
	}
	return "", errors.NewInvalidInputError("status", s, "unknown status")
}

// ParseStatusFilter parses a status filter value. Empty input and "All"
// both mean no restriction and yield nil.
func ParseStatusFilter(s string) (*Status, error) {
	if isMatchAll(s) {
		return nil, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func isMatchAll(s string) bool {
	label := strings.TrimSpace(s)
	return label == "" || strings.EqualFold(label, AllLabel)
}
