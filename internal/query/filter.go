package query

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"task-tracker/internal/domain"
)

// Filter returns the tasks matching every predicate in opts, in input order.
//
// Category and status match when unset or equal. The search predicate is
// active only when the query is non-blank after trimming; it then matches a
// case-insensitive substring of the title, the notes or the category label.
func Filter(tasks []domain.Task, opts domain.FilterOptions) []domain.Task {
	m := newMatcher(opts)
	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if m.matches(task) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

type matcher struct {
	opts   domain.FilterOptions
	caser  cases.Caser
	query  string
	search bool
}

func newMatcher(opts domain.FilterOptions) *matcher {
	m := &matcher{
		opts:  opts,
		caser: cases.Lower(language.Und),
	}
	if strings.TrimSpace(opts.SearchQuery) != "" {
		m.search = true
		m.query = m.fold(opts.SearchQuery)
	}
	return m
}

func (m *matcher) matches(task domain.Task) bool {
	if m.opts.Category != nil && task.Category != *m.opts.Category {
		return false
	}
	if m.opts.Status != nil && task.Status != *m.opts.Status {
		return false
	}
	if !m.search {
		return true
	}
	return strings.Contains(m.fold(task.Title), m.query) ||
		strings.Contains(m.fold(task.Notes), m.query) ||
		strings.Contains(m.fold(task.Category.String()), m.query)
}

func (m *matcher) fold(s string) string {
	return m.caser.String(norm.NFC.String(s))
}
