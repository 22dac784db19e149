package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
)

func TestDeleteCommand(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		flags       []string
		wantOutput  string
		wantDeleted bool
	}{
		{
			name:        "confirmed",
			input:       "y\n",
			wantOutput:  "Delete \"Outlook summary\"? [y/N]: Deleted task: Outlook summary\n",
			wantDeleted: true,
		},
		{
			name:        "confirmed with yes",
			input:       "YES\n",
			wantOutput:  "Delete \"Outlook summary\"? [y/N]: Deleted task: Outlook summary\n",
			wantDeleted: true,
		},
		{
			name:       "declined",
			input:      "n\n",
			wantOutput: "Delete \"Outlook summary\"? [y/N]: Delete cancelled.\n",
		},
		{
			name:       "empty answer",
			input:      "\n",
			wantOutput: "Delete \"Outlook summary\"? [y/N]: Delete cancelled.\n",
		},
		{
			name:       "no input",
			input:      "",
			wantOutput: "Delete \"Outlook summary\"? [y/N]: \nDelete cancelled.\n",
		},
		{
			name:        "skip prompt",
			flags:       []string{"--yes"},
			wantOutput:  "Deleted task: Outlook summary\n",
			wantDeleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiInstance := setupTestAPI(t)
			task := mustAdd(t, apiInstance, "Outlook summary", domain.CategoryOutlook, today())

			args := append([]string{"delete", shortID(task.ID)}, tt.flags...)
			out, err := runCommand(t, apiInstance, tt.input, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, out)

			_, getErr := apiInstance.GetTask(t.Context(), task.ID)
			assert.Equal(t, tt.wantDeleted, getErr != nil)
		})
	}
}

func TestDeleteCommand_UnknownID(t *testing.T) {
	apiInstance := setupTestAPI(t)

	_, err := runCommand(t, apiInstance, "y\n", "delete", "missing")
	require.Error(t, err)
	assert.Equal(t, "failed to delete task: task not found: missing", err.Error())
}
