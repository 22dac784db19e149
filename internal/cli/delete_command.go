package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
	yes bool
}

// NewDeleteCommand creates a new delete command handler. With yes set the
// confirmation prompt is skipped.
func NewDeleteCommand(app *App, yes bool) *DeleteCommand {
	return &DeleteCommand{app: app, yes: yes}
}

// Execute deletes the task named by args[0] after confirmation
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return c.app.errorHandler.HandleSimple(errUsage("delete <id>"))
	}

	task, err := c.app.resolveTask(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}

	if !c.yes && !c.confirm(fmt.Sprintf("Delete %q? [y/N]: ", task.Title)) {
		fmt.Fprintln(c.app.out, "Delete cancelled.")
		return nil
	}

	deleted, err := c.app.api.DeleteTask(ctx, task.ID)
	if err := c.app.settle("delete task", err); err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintln(c.app.out, "Task was already deleted.")
		return nil
	}

	fmt.Fprintf(c.app.out, "Deleted task: %s\n", task.Title)
	return nil
}

// confirm prompts on out and reads one answer line from in
func (c *DeleteCommand) confirm(prompt string) bool {
	fmt.Fprint(c.app.out, prompt)

	scanner := bufio.NewScanner(c.app.in)
	if !scanner.Scan() {
		fmt.Fprintln(c.app.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
