package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
)

func TestStatusCommand(t *testing.T) {
	tests := []struct {
		args []string
		want domain.Status
	}{
		{[]string{"done"}, domain.StatusCompleted},
		{[]string{"in", "progress"}, domain.StatusInProgress},
		{[]string{"In Progress"}, domain.StatusInProgress},
		{[]string{"todo"}, domain.StatusToDo},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			apiInstance := setupTestAPI(t)
			task := mustAdd(t, apiInstance, "Agile retro prep", domain.CategoryAgile, today())
			if tt.want == domain.StatusToDo {
				_, err := apiInstance.SetStatus(t.Context(), task.ID, domain.StatusCompleted)
				require.NoError(t, err)
			}

			args := append([]string{"status", shortID(task.ID)}, tt.args...)
			out, err := runCommand(t, apiInstance, "", args...)
			require.NoError(t, err)
			assert.Equal(t, "Agile retro prep is now "+tt.want.String()+"\n", out)

			updated, err := apiInstance.GetTask(t.Context(), task.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, updated.Status)
		})
	}
}

func TestStatusCommand_Errors(t *testing.T) {
	apiInstance := setupTestAPI(t)
	task := mustAdd(t, apiInstance, "Task", domain.CategorySMS, today())

	_, err := runCommand(t, apiInstance, "", "status", task.ID, "blocked")
	require.Error(t, err)
	assert.Equal(t, "failed to change status: invalid input for status: unknown status", err.Error())

	_, err = runCommand(t, apiInstance, "", "status", "missing", "done")
	require.Error(t, err)
	assert.Equal(t, "failed to change status: task not found: missing", err.Error())

	_, err = runCommand(t, apiInstance, "", "status", task.ID)
	require.Error(t, err)
}
