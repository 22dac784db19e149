package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/domain"
	"task-tracker/internal/query"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app *App
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app}
}

// Execute prints every field of the task named by args[0]
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return c.app.errorHandler.HandleSimple(errUsage("show <id>"))
	}

	task, err := c.app.resolveTask(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("show task", err)
	}

	c.printTask(*task)
	return nil
}

func (c *ShowCommand) printTask(task domain.Task) {
	out := c.app.out
	due := fmt.Sprintf("%s (%s)", c.app.formatDate(task.DueDate), dueLabel(task.DueDate))
	if query.IsOverdue(task.DueDate, task.Status, timeNow()) {
		due += ", overdue"
	}

	fmt.Fprintf(out, "%s\n", task.Title)
	fmt.Fprintf(out, "  ID:        %s\n", task.ID)
	fmt.Fprintf(out, "  Category:  %s\n", task.Category)
	fmt.Fprintf(out, "  Priority:  %s\n", task.Priority)
	fmt.Fprintf(out, "  Status:    %s\n", task.Status)
	fmt.Fprintf(out, "  Due:       %s\n", due)
	fmt.Fprintf(out, "  Created:   %s\n", relativeTime(task.CreatedAt))
	fmt.Fprintf(out, "  Updated:   %s\n", relativeTime(task.UpdatedAt))
	if task.Notes != "" {
		fmt.Fprintf(out, "  Notes:     %s\n", task.Notes)
	}
}
