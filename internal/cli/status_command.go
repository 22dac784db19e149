package cli

import (
	"context"
	"fmt"
	"strings"

	"task-tracker/internal/domain"
)

// StatusCommand handles the status command
type StatusCommand struct {
	app *App
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{app: app}
}

// Execute moves the task named by args[0] to the status named by the rest
// of the arguments, so "tasks status 1a2b in progress" works unquoted.
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return c.app.errorHandler.HandleSimple(errUsage("status <id> <status>"))
	}

	status, err := domain.ParseStatus(strings.Join(args[1:], " "))
	if err != nil {
		return c.app.errorHandler.Handle("change status", err)
	}

	task, err := c.app.resolveTask(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("change status", err)
	}

	updated, err := c.app.api.SetStatus(ctx, task.ID, status)
	if err := c.app.settle("change status", err); err != nil {
		return err
	}

	fmt.Fprintf(c.app.out, "%s is now %s\n", updated.Title, updated.Status)
	return nil
}
