package cli

import (
	"context"
	"fmt"
	"strings"

	"task-tracker/internal/domain"
	"task-tracker/internal/query"
)

// ListOptions holds the flags of the list command. Empty fields fall back
// to no filtering and the configured default order.
type ListOptions struct {
	Category string
	Status   string
	SortBy   string
	Order    string
	Overdue  bool
}

// ListCommand handles the list command
type ListCommand struct {
	app  *App
	opts ListOptions
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App, opts ListOptions) *ListCommand {
	return &ListCommand{app: app, opts: opts}
}

// Execute runs the list command. The arguments form the search text.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	filter, sortOpts, err := c.options(strings.Join(args, " "))
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	tasks, err := c.app.api.ListTasks(ctx, filter, sortOpts)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}
	if c.opts.Overdue {
		tasks = query.Overdue(tasks, timeNow())
	}

	return c.printTasks(tasks)
}

func (c *ListCommand) options(search string) (domain.FilterOptions, domain.SortOptions, error) {
	filter := domain.FilterOptions{SearchQuery: search}
	sortOpts := c.app.config.DefaultSortOptions()

	category, err := domain.ParseCategoryFilter(c.opts.Category)
	if err != nil {
		return filter, sortOpts, err
	}
	filter.Category = category

	status, err := domain.ParseStatusFilter(c.opts.Status)
	if err != nil {
		return filter, sortOpts, err
	}
	filter.Status = status

	if c.opts.SortBy != "" {
		if sortOpts.SortBy, err = domain.ParseSortBy(c.opts.SortBy); err != nil {
			return filter, sortOpts, err
		}
	}
	if c.opts.Order != "" {
		if sortOpts.Order, err = domain.ParseSortOrder(c.opts.Order); err != nil {
			return filter, sortOpts, err
		}
	}
	return filter, sortOpts, nil
}

// printTasks prints one line per task:
// id  title  category  priority  status  due date
// Overdue tasks are flagged after their due date.
func (c *ListCommand) printTasks(tasks []domain.Task) error {
	if len(tasks) == 0 {
		fmt.Fprintln(c.app.out, "No tasks found")
		return nil
	}

	width := c.app.config.Display.TitleWidth
	now := timeNow()
	for _, task := range tasks {
		due := c.app.formatDate(task.DueDate)
		if query.IsOverdue(task.DueDate, task.Status, now) {
			due += " (overdue)"
		}
		fmt.Fprintf(c.app.out, "%-8s  %-*s  %-11s  %-6s  %-11s  %s\n",
			shortID(task.ID), width, truncate(task.Title, width),
			task.Category, task.Priority, task.Status, due)
	}
	return nil
}
