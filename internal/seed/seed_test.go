package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

var now = time.Date(2025, 6, 15, 22, 0, 0, 0, time.UTC)

func TestExamples(t *testing.T) {
	drafts := Examples(now)

	require.Len(t, drafts, 8)
	first := drafts[0]
	assert.Equal(t, "Complete DSA Training Module 1", first.Title)
	assert.Equal(t, domain.CategoryDSAProcess, first.Category)
	assert.Equal(t, domain.PriorityHigh, first.Priority)
	assert.Equal(t, domain.StatusInProgress, first.Status)
	assert.Equal(t, domain.NewDate(2025, 6, 18), first.DueDate)

	assert.Equal(t, domain.NewDate(2025, 6, 13), drafts[7].DueDate)

	categories := make(map[domain.Category]bool)
	for _, d := range drafts {
		categories[d.Category] = true
		assert.NotEmpty(t, d.Notes)
	}
	assert.Len(t, categories, len(domain.Categories))
}

func TestLoad(t *testing.T) {
	doc := `
tasks:
  - title: Relative
    category: jira
    priority: low
    status: done
    dueInDays: -3
  - title: Absolute
    dueDate: 2025-07-01
    dueInDays: 1
    notes: wins over relative
`
	drafts, err := Load(strings.NewReader(doc), now)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, domain.TaskDraft{
		Title:    "Relative",
		Category: domain.CategoryJIRA,
		Priority: domain.PriorityLow,
		Status:   domain.StatusCompleted,
		DueDate:  domain.NewDate(2025, 6, 12),
	}, drafts[0])

	assert.Equal(t, domain.TaskDraft{
		Title:    "Absolute",
		Category: domain.CategorySMS,
		Priority: domain.PriorityMedium,
		Status:   domain.StatusToDo,
		DueDate:  domain.NewDate(2025, 7, 1),
		Notes:    "wins over relative",
	}, drafts[1])
}

func TestLoad_RelativeDatesUseUTC(t *testing.T) {
	late := time.Date(2025, 6, 15, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	doc := "tasks:\n  - title: Tomorrow\n    dueInDays: 1\n"

	drafts, err := Load(strings.NewReader(doc), late)

	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2025, 6, 17), drafts[0].DueDate)
}

func TestLoad_Empty(t *testing.T) {
	drafts, err := Load(strings.NewReader(""), now)
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "tasks: [unclosed"},
		{"unknown field", "tasks:\n  - title: x\n    dueInDays: 1\n    owner: me\n"},
		{"unknown category", "tasks:\n  - title: x\n    category: Email\n    dueInDays: 1\n"},
		{"unknown priority", "tasks:\n  - title: x\n    priority: Urgent\n    dueInDays: 1\n"},
		{"bad date", "tasks:\n  - title: x\n    dueDate: next week\n"},
		{"no due date", "tasks:\n  - title: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc), now)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - title: From disk\n    dueInDays: 0\n"), 0o600))

	drafts, err := LoadFile(path, now)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, domain.NewDate(2025, 6, 15), drafts[0].DueDate)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), now)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestMarshal_RoundTrip(t *testing.T) {
	drafts := Examples(now)

	data, err := Marshal(drafts)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dueDate: \"2025-06-18\"")

	again, err := Load(strings.NewReader(string(data)), now.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, drafts, again)
}
