package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/seed"
)

// SeedOptions holds the flags of the seed command
type SeedOptions struct {
	File  string
	Force bool
}

// SeedCommand handles the seed command
type SeedCommand struct {
	app  *App
	opts SeedOptions
}

// NewSeedCommand creates a new seed command handler
func NewSeedCommand(app *App, opts SeedOptions) *SeedCommand {
	return &SeedCommand{app: app, opts: opts}
}

// Execute adds the example tasks, or the tasks of a seed file. A non-empty
// list is left alone unless Force is set.
func (c *SeedCommand) Execute(ctx context.Context, args []string) error {
	if !c.opts.Force {
		existing, err := c.app.api.Stats(ctx)
		if err != nil {
			return c.app.errorHandler.Handle("seed tasks", err)
		}
		if existing.Total > 0 {
			fmt.Fprintf(c.app.out, "Task list already has %d tasks; use --force to add more.\n", existing.Total)
			return nil
		}
	}

	drafts, err := c.drafts()
	if err != nil {
		return c.app.errorHandler.Handle("seed tasks", err)
	}
	if len(drafts) == 0 {
		fmt.Fprintln(c.app.out, "No tasks to add.")
		return nil
	}

	added, err := c.app.api.AddTasks(ctx, drafts)
	if err := c.app.settle("seed tasks", err); err != nil {
		return err
	}

	fmt.Fprintf(c.app.out, "Added %d tasks\n", len(added))
	return nil
}

func (c *SeedCommand) drafts() ([]domain.TaskDraft, error) {
	if c.opts.File == "" {
		return seed.Examples(timeNow()), nil
	}
	drafts, err := seed.LoadFile(c.opts.File, timeNow())
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			appErr.WithContext("file", c.opts.File)
		}
		return nil, err
	}
	return drafts, nil
}
