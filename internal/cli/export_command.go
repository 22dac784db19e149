package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository"
	"task-tracker/internal/seed"
)

// Export formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app    *App
	format string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App, format string) *ExportCommand {
	return &ExportCommand{app: app, format: format}
}

// Execute writes every task to out in the chosen format. JSON uses the
// persisted record layout and YAML the seed file layout, so both can be
// loaded back.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.app.api.ListTasks(ctx, domain.FilterOptions{}, c.app.config.DefaultSortOptions())
	if err != nil {
		return c.app.errorHandler.Handle("export tasks", err)
	}

	switch strings.ToLower(c.format) {
	case FormatJSON:
		err = c.outputJSON(tasks)
	case FormatCSV:
		err = c.outputCSV(tasks)
	case FormatYAML:
		err = c.outputYAML(tasks)
	default:
		err = errors.NewInvalidInputError("format", c.format, "supported formats are json, csv and yaml")
	}
	if err != nil {
		return c.app.errorHandler.Handle("export tasks", err)
	}
	return nil
}

func (c *ExportCommand) outputJSON(tasks []domain.Task) error {
	data, err := repository.EncodeTasks(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	_, err = fmt.Fprintf(c.app.out, "%s\n", data)
	return err
}

// outputCSV writes a header row and one row per task
func (c *ExportCommand) outputCSV(tasks []domain.Task) error {
	writer := csv.NewWriter(c.app.out)

	header := []string{"ID", "Title", "Category", "Priority", "Status", "Due Date", "Notes", "Created At", "Updated At"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		row := []string{
			task.ID,
			task.Title,
			task.Category.String(),
			task.Priority.String(),
			task.Status.String(),
			task.DueDate.String(),
			task.Notes,
			task.CreatedAt.UTC().Format(repository.TimestampLayout),
			task.UpdatedAt.UTC().Format(repository.TimestampLayout),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (c *ExportCommand) outputYAML(tasks []domain.Task) error {
	drafts := make([]domain.TaskDraft, len(tasks))
	for i, task := range tasks {
		drafts[i] = task.Draft()
	}
	data, err := seed.Marshal(drafts)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	_, err = c.app.out.Write(data)
	return err
}
