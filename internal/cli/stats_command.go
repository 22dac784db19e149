package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/domain"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app *App
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

// Execute prints status counts, overdue tasks and the category breakdown
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	stats, err := c.app.api.Stats(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("compute stats", err)
	}
	overdue, err := c.app.api.Overdue(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("compute stats", err)
	}
	byCategory, err := c.app.api.CategoryBreakdown(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("compute stats", err)
	}

	out := c.app.out
	fmt.Fprintf(out, "%-13s %d\n", "Total:", stats.Total)
	fmt.Fprintf(out, "%-13s %d\n", "To Do:", stats.Todo)
	fmt.Fprintf(out, "%-13s %d\n", "In Progress:", stats.InProgress)
	fmt.Fprintf(out, "%-13s %d (%d%%)\n", "Completed:", stats.Completed, stats.CompletionPercentage)
	fmt.Fprintf(out, "%-13s %d\n", "Overdue:", len(overdue))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "By category:")
	for _, category := range domain.Categories {
		fmt.Fprintf(out, "  %-12s %d\n", category, byCategory[category])
	}
	return nil
}
