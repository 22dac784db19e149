package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/store"
)

// setupTestAPI returns an api over a loaded in-memory store
func setupTestAPI(t *testing.T, opts ...store.Option) api.TaskAPI {
	t.Helper()
	repo := config.CreateTestRepository()
	s := store.New(repo.Tasks, opts...)
	require.Equal(t, store.LoadStatusEmpty, s.Init(context.Background()))
	return api.New(s, nil)
}

// runCommand executes args against a fresh root command and returns stdout.
// input is what prompts read.
func runCommand(t *testing.T, apiInstance api.TaskAPI, input string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommandWithAPI(apiInstance, config.NewConfig())
	out := &bytes.Buffer{}
	root.SetIO(strings.NewReader(input), out, &bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute(context.Background())
	return out.String(), err
}

func mustAdd(t *testing.T, apiInstance api.TaskAPI, title string, category domain.Category, due domain.Date) *domain.Task {
	t.Helper()
	draft := domain.NewDraft(title, due)
	draft.Category = category
	task, err := apiInstance.AddTask(context.Background(), draft)
	require.NoError(t, err)
	return task
}

func stubNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = prev })
}

func TestParseDueDate(t *testing.T) {
	stubNow(t, time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC))

	tests := []struct {
		input string
		want  domain.Date
	}{
		{"2025-07-01", domain.NewDate(2025, 7, 1)},
		{" 2025-07-01 ", domain.NewDate(2025, 7, 1)},
		{"today", domain.NewDate(2025, 6, 15)},
		{"Tomorrow", domain.NewDate(2025, 6, 16)},
		{"yesterday", domain.NewDate(2025, 6, 14)},
		{"3d", domain.NewDate(2025, 6, 18)},
		{"+3d", domain.NewDate(2025, 6, 18)},
		{"-1d", domain.NewDate(2025, 6, 14)},
		{"2w", domain.NewDate(2025, 6, 29)},
		{"1mo", domain.NewDate(2025, 7, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDueDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDueDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "next week", "3x", "2025-13-01", "d"} {
		t.Run(input, func(t *testing.T) {
			_, err := parseDueDate(input)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput), "got %v", err)
		})
	}
}

func TestToday_UsesUTC(t *testing.T) {
	stubNow(t, time.Date(2025, 6, 15, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)))
	assert.Equal(t, domain.NewDate(2025, 6, 16), today())
}

func TestDueLabel(t *testing.T) {
	stubNow(t, time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, "today", dueLabel(domain.NewDate(2025, 6, 15)))
	assert.Equal(t, "3 days from now", dueLabel(domain.NewDate(2025, 6, 18)))
	assert.Equal(t, "2 days ago", dueLabel(domain.NewDate(2025, 6, 13)))
	assert.Equal(t, "", dueLabel(domain.Date{}))
}

func TestFormatDate(t *testing.T) {
	cfg := config.NewConfig()
	app := NewApp(nil, cfg)

	assert.Equal(t, "Jul 1, 2025", app.formatDate(domain.NewDate(2025, 7, 1)))
	assert.Equal(t, "-", app.formatDate(domain.Date{}))

	cfg.Display.DateFormat = "02/01/2006"
	assert.Equal(t, "01/07/2025", app.formatDate(domain.NewDate(2025, 7, 1)))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "7d8e9fab", shortID("018f2b6e-7c1d-7a3e-9f10-5b6c7d8e9fab"))
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "12345678", shortID("0012345678"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exactly10!", 10, "exactly10!"},
		{"cut", "a much longer title", 8, "a much …"},
		{"runes", "Überprüfung", 5, "Über…"},
		{"no limit", "anything", 0, "anything"},
		{"single", "abc", 1, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.width))
		})
	}
}

func TestResolveTask(t *testing.T) {
	apiInstance := setupTestAPI(t, store.WithIDGenerator(sequence(
		"task-0001-alpha",
		"task-0002-beta",
	)))
	mustAdd(t, apiInstance, "Alpha", domain.CategorySMS, domain.NewDate(2025, 7, 1))
	mustAdd(t, apiInstance, "Beta", domain.CategoryJIRA, domain.NewDate(2025, 7, 2))

	app := NewApp(apiInstance, nil)
	ctx := context.Background()

	task, err := app.resolveTask(ctx, "task-0002-beta")
	require.NoError(t, err)
	assert.Equal(t, "Beta", task.Title)

	task, err = app.resolveTask(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", task.Title)

	task, err = app.resolveTask(ctx, "task-0001")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", task.Title)

	_, err = app.resolveTask(ctx, "task-")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	assert.Contains(t, err.Error(), "matches 2 tasks")

	_, err = app.resolveTask(ctx, "gamma")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	_, err = app.resolveTask(ctx, "  ")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func sequence(ids ...string) store.IDGenerator {
	next := 0
	return func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}
}

func TestSettle(t *testing.T) {
	app := NewApp(nil, nil)

	assert.NoError(t, app.settle("add task", nil))
	assert.NoError(t, app.settle("add task", errors.NewStorageError("save tasks", assert.AnError)))

	err := app.settle("add task", errors.NewNotFoundError("task", "x"))
	require.Error(t, err)
	assert.Equal(t, "failed to add task: task not found: x", err.Error())
}

func TestSettle_LogsOnlySystemErrors(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.SetOutput(&buf)
	logging.SetVerbose(true)
	t.Cleanup(func() {
		logging.SetOutput(prev)
		logging.SetVerbose(false)
	})
	app := NewApp(nil, nil)

	internal := errors.WrapError(stderrors.New("8 candidates collided"), errors.ErrorTypeInternal, "could not generate a unique task id")
	err := app.settle("add task", internal)
	require.Error(t, err)
	assert.Equal(t, "failed to add task: could not generate a unique task id", err.Error())
	assert.Contains(t, buf.String(), "add task failed [internal]")
	assert.Contains(t, buf.String(), "8 candidates collided")

	buf.Reset()
	require.Error(t, app.settle("show task", errors.NewNotFoundError("task", "x")))
	assert.Empty(t, buf.String())
}
