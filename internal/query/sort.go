package query

import (
	"slices"

	"task-tracker/internal/domain"
)

// Sort returns a stably sorted copy of tasks.
//
// Due dates and creation times compare chronologically. Priority compares as
// rank(b) - rank(a), so OrderAsc lists High first and OrderDesc lists Low
// first. OrderDesc negates whatever the key comparison yields. An empty Order
// means OrderAsc, matching DefaultSortOptions. An unknown key leaves the
// input order untouched.
func Sort(tasks []domain.Task, opts domain.SortOptions) []domain.Task {
	sorted := slices.Clone(tasks)
	if sorted == nil {
		sorted = []domain.Task{}
	}
	if opts.Order == "" {
		opts.Order = domain.OrderAsc
	}
	cmp := comparator(opts.SortBy)
	slices.SortStableFunc(sorted, func(a, b domain.Task) int {
		c := cmp(a, b)
		if opts.Order == domain.OrderDesc {
			return -c
		}
		return c
	})
	return sorted
}

func comparator(by domain.SortBy) func(a, b domain.Task) int {
	switch by {
	case domain.SortByDueDate:
		return func(a, b domain.Task) int {
			return a.DueDate.Compare(b.DueDate)
		}
	case domain.SortByPriority:
		return func(a, b domain.Task) int {
			return b.Priority.Rank() - a.Priority.Rank()
		}
	case domain.SortByCreated:
		return func(a, b domain.Task) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	default:
		return func(domain.Task, domain.Task) int { return 0 }
	}
}

// Process filters and then sorts, producing the list a consumer displays.
func Process(tasks []domain.Task, filter domain.FilterOptions, sortOpts domain.SortOptions) []domain.Task {
	return Sort(Filter(tasks, filter), sortOpts)
}
