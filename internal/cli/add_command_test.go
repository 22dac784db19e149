package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
)

func TestAddCommand(t *testing.T) {
	apiInstance := setupTestAPI(t)

	out, err := runCommand(t, apiInstance, "", "add", "Prepare", "JIRA", "tickets",
		"--due", "2025-07-01", "-c", "jira", "-p", "high", "-n", "five tickets")
	require.NoError(t, err)
	assert.Contains(t, out, "Prepare JIRA tickets (due Jul 1, 2025)")

	tasks, err := apiInstance.ListTasks(context.Background(), domain.FilterOptions{}, domain.DefaultSortOptions())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Prepare JIRA tickets", tasks[0].Title)
	assert.Equal(t, domain.CategoryJIRA, tasks[0].Category)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, domain.StatusToDo, tasks[0].Status)
	assert.Equal(t, "five tickets", tasks[0].Notes)
	assert.Contains(t, out, shortID(tasks[0].ID))
}

func TestAddCommand_Defaults(t *testing.T) {
	apiInstance := setupTestAPI(t)

	_, err := runCommand(t, apiInstance, "", "add", "Plain task", "--due", "today")
	require.NoError(t, err)

	tasks, err := apiInstance.ListTasks(context.Background(), domain.FilterOptions{}, domain.DefaultSortOptions())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.CategorySMS, tasks[0].Category)
	assert.Equal(t, domain.PriorityMedium, tasks[0].Priority)
	assert.Equal(t, domain.StatusToDo, tasks[0].Status)
	assert.Equal(t, today(), tasks[0].DueDate)
}

func TestAddCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing due date",
			args:    []string{"add", "No due date"},
			wantErr: "failed to add task: dueDate is required",
		},
		{
			name:    "blank title",
			args:    []string{"add", "   ", "--due", "today"},
			wantErr: "failed to add task: title is required",
		},
		{
			name:    "unknown category",
			args:    []string{"add", "Task", "--due", "today", "-c", "Email"},
			wantErr: "failed to add task: invalid input for category: unknown category",
		},
		{
			name:    "bad due date",
			args:    []string{"add", "Task", "--due", "soon"},
			wantErr: "failed to add task: invalid input for due",
		},
		{
			name:    "no title",
			args:    []string{"add"},
			wantErr: "requires at least 1 arg(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiInstance := setupTestAPI(t)

			_, err := runCommand(t, apiInstance, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			tasks, listErr := apiInstance.ListTasks(context.Background(), domain.FilterOptions{}, domain.DefaultSortOptions())
			require.NoError(t, listErr)
			assert.Empty(t, tasks)
		})
	}
}
