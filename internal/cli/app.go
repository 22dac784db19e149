package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/store"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

const shortIDLength = 8

var dueShorthand = regexp.MustCompile(`^([+-]?\d+)(d|w|mo)$`)

// App represents the main CLI application
type App struct {
	api          api.TaskAPI
	config       *config.Config
	errorHandler *ErrorHandler

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp creates a new CLI application instance with dependency injection.
// A nil cfg uses the defaults.
func NewApp(apiInstance api.TaskAPI, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		api:          apiInstance,
		config:       cfg,
		errorHandler: NewErrorHandler(),
		in:           os.Stdin,
		out:          os.Stdout,
		errOut:       os.Stderr,
	}
}

// SetIO replaces the streams commands read from and write to
func (a *App) SetIO(in io.Reader, out, errOut io.Writer) {
	a.in = in
	a.out = out
	a.errOut = errOut
}

// OpenStore opens the configured backend and loads the task store from it.
// The returned repository must be closed by the caller.
func OpenStore(ctx context.Context, cfg *config.Config) (*store.Store, *config.Repository, error) {
	repo, err := config.CreateRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	s := store.New(repo.Tasks, store.WithWriteTimeout(cfg.GetWriteTimeout()))
	status := s.Init(ctx)
	logging.Debugf("loaded tasks from %s backend (key %s): %s\n", repo.Backend, repo.Tasks.Key(), status)

	return s, repo, nil
}

// settle turns an api error into the command's result. Errors that only cost
// durability were already reported by the store and do not fail the command.
func (a *App) settle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.IsNonFatal(err) {
		logging.Debugf("%s: %v\n", operation, err)
		return nil
	}
	if errors.ShouldLogError(err) {
		logging.Debugf("%s failed [%s]: %v\n", operation, a.errorHandler.GetErrorCode(err), err)
	}
	return a.errorHandler.Handle(operation, err)
}

// resolveTask finds a task by full id or by a unique id prefix or suffix,
// so the short ids shown by list can be typed back.
func (a *App) resolveTask(ctx context.Context, ref string) (*domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.NewInvalidInputError("id", ref, "task id is required")
	}

	task, err := a.api.GetTask(ctx, ref)
	if err == nil {
		return task, nil
	}
	if !a.errorHandler.IsNotFoundError(err) {
		return nil, err
	}

	tasks, err := a.api.ListTasks(ctx, domain.FilterOptions{}, domain.DefaultSortOptions())
	if err != nil {
		return nil, err
	}
	var matches []domain.Task
	for _, t := range tasks {
		if strings.HasSuffix(t.ID, ref) || strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return nil, errors.NewNotFoundError("task", ref)
	case 1:
		return &matches[0], nil
	default:
		return nil, errors.NewInvalidInputError("id", ref, fmt.Sprintf("matches %d tasks, use more characters", len(matches)))
	}
}

// today returns the current calendar date. Overdue checks count from UTC
// midnight, so relative due dates do too.
func today() domain.Date {
	return domain.DateOf(timeNow().UTC())
}

// parseDueDate accepts YYYY-MM-DD, "today", "tomorrow", "yesterday" or an
// offset from today like 3d, -1d, 2w or 1mo.
func parseDueDate(s string) (domain.Date, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	switch value {
	case "today":
		return today(), nil
	case "tomorrow":
		return today().AddDays(1), nil
	case "yesterday":
		return today().AddDays(-1), nil
	}

	if matches := dueShorthand.FindStringSubmatch(value); matches != nil {
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return domain.Date{}, errors.NewInvalidInputError("due", s, "invalid number of days")
		}
		switch matches[2] {
		case "w":
			n *= 7
		case "mo":
			n *= 30
		}
		return today().AddDays(n), nil
	}

	due, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, errors.NewInvalidInputError("due", s, "expected YYYY-MM-DD, today, tomorrow or an offset like 3d")
	}
	return due, nil
}

// formatDate renders d with the configured display format
func (a *App) formatDate(d domain.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Time().Format(a.config.Display.DateFormat)
}

// dueLabel describes a due date relative to today
func dueLabel(d domain.Date) string {
	if d.IsZero() {
		return ""
	}
	now := today()
	if d.Compare(now) == 0 {
		return "today"
	}
	return humanize.RelTime(d.Time(), now.Time(), "ago", "from now")
}

// relativeTime renders a timestamp like "3 minutes ago"
func relativeTime(t time.Time) string {
	return humanize.RelTime(t, timeNow(), "ago", "from now")
}

// shortID returns the trailing characters of an id. Version 7 UUIDs start
// with a timestamp, so their tails are the distinctive part.
func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[len(id)-shortIDLength:]
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
