package cli

import (
	"context"
	"fmt"
	"strings"

	"task-tracker/internal/domain"
)

// AddOptions holds the flags of the add command
type AddOptions struct {
	Due      string
	Category string
	Priority string
	Status   string
	Notes    string
}

// AddCommand handles the add command
type AddCommand struct {
	app  *App
	opts AddOptions
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, opts AddOptions) *AddCommand {
	return &AddCommand{app: app, opts: opts}
}

// Execute runs the add command. The arguments form the title.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	draft, err := c.draft(strings.Join(args, " "))
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	task, err := c.app.api.AddTask(ctx, draft)
	if err := c.app.settle("add task", err); err != nil {
		return err
	}

	fmt.Fprintf(c.app.out, "Added task %s: %s (due %s)\n", shortID(task.ID), task.Title, c.app.formatDate(task.DueDate))
	return nil
}

// draft builds a draft from the form defaults and the given flags
func (c *AddCommand) draft(title string) (domain.TaskDraft, error) {
	draft := domain.NewDraft(title, domain.Date{})
	draft.Notes = c.opts.Notes

	if c.opts.Due != "" {
		due, err := parseDueDate(c.opts.Due)
		if err != nil {
			return draft, err
		}
		draft.DueDate = due
	}
	if c.opts.Category != "" {
		category, err := domain.ParseCategory(c.opts.Category)
		if err != nil {
			return draft, err
		}
		draft.Category = category
	}
	if c.opts.Priority != "" {
		priority, err := domain.ParsePriority(c.opts.Priority)
		if err != nil {
			return draft, err
		}
		draft.Priority = priority
	}
	if c.opts.Status != "" {
		status, err := domain.ParseStatus(c.opts.Status)
		if err != nil {
			return draft, err
		}
		draft.Status = status
	}
	return draft, nil
}
