package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// UpdateOptions holds the flags of the update command. Nil fields were not
// given and stay unchanged.
type UpdateOptions struct {
	Title    *string
	Due      *string
	Category *string
	Priority *string
	Status   *string
	Notes    *string
}

// UpdateCommand handles the update command
type UpdateCommand struct {
	app  *App
	opts UpdateOptions
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App, opts UpdateOptions) *UpdateCommand {
	return &UpdateCommand{app: app, opts: opts}
}

// Execute applies the given flags to the task named by args[0]
func (c *UpdateCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return c.app.errorHandler.HandleSimple(errUsage("update <id> [flags]"))
	}

	patch, err := c.patch()
	if err != nil {
		return c.app.errorHandler.Handle("update task", err)
	}
	if patch.IsEmpty() {
		return c.app.errorHandler.Handle("update task",
			errors.NewInvalidInputError("flags", "", "nothing to update"))
	}

	task, err := c.app.resolveTask(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("update task", err)
	}

	updated, err := c.app.api.UpdateTask(ctx, task.ID, patch)
	if err := c.app.settle("update task", err); err != nil {
		return err
	}

	fmt.Fprintf(c.app.out, "Updated task %s: %s\n", shortID(updated.ID), updated.Title)
	return nil
}

func (c *UpdateCommand) patch() (domain.TaskPatch, error) {
	var patch domain.TaskPatch

	patch.Title = c.opts.Title
	patch.Notes = c.opts.Notes

	if c.opts.Due != nil {
		due, err := parseDueDate(*c.opts.Due)
		if err != nil {
			return patch, err
		}
		patch.DueDate = &due
	}
	if c.opts.Category != nil {
		category, err := domain.ParseCategory(*c.opts.Category)
		if err != nil {
			return patch, err
		}
		patch.Category = &category
	}
	if c.opts.Priority != nil {
		priority, err := domain.ParsePriority(*c.opts.Priority)
		if err != nil {
			return patch, err
		}
		patch.Priority = &priority
	}
	if c.opts.Status != nil {
		status, err := domain.ParseStatus(*c.opts.Status)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}
	return patch, nil
}

func errUsage(usage string) error {
	return errors.NewInvalidInputError("arguments", "", "usage: tasks "+usage)
}
