package domain

import (
	"strings"

	"task-tracker/internal/errors"
)

// FilterOptions restricts a task list. A nil Category or Status matches
// every task, which is also what the "All" label parses to.
type FilterOptions struct {
	Category    *Category
	Status      *Status
	SearchQuery string
}

// SortBy names the single key a task list is ordered by.
type SortBy string

const (
	SortByDueDate  SortBy = "dueDate"
	SortByPriority SortBy = "priority"
	SortByCreated  SortBy = "created"
)

// SortOrder is the direction applied to the computed comparison.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortOptions selects the sort key and direction.
type SortOptions struct {
	SortBy SortBy
	Order  SortOrder
}

// DefaultSortOptions orders by due date, ascending.
func DefaultSortOptions() SortOptions {
	return SortOptions{SortBy: SortByDueDate, Order: OrderAsc}
}

// ParseSortBy parses a sort key. "due" and "createdAt" are accepted aliases.
func ParseSortBy(s string) (SortBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "duedate", "due", "due-date":
		return SortByDueDate, nil
	case "priority":
		return SortByPriority, nil
	case "created", "createdat", "created-at":
		return SortByCreated, nil
	}
	return "", errors.NewInvalidInputError("sortBy", s, "expected dueDate, priority or created")
}

// ParseSortOrder parses a sort direction.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return OrderAsc, nil
	case "desc", "descending":
		return OrderDesc, nil
	}
	return "", errors.NewInvalidInputError("order", s, "expected asc or desc")
}
