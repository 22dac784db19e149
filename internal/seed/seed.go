// Package seed reads task drafts from YAML seed files. An example file is
// embedded for populating an empty list.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

//go:embed examples.yaml
var examplesYAML []byte

// File is the document layout of a seed file.
type File struct {
	Tasks []Entry `yaml:"tasks"`
}

// Entry is one task in a seed file. DueDate wins over DueInDays when both
// are set. Omitted category, priority and status take the form defaults.
type Entry struct {
	Title     string `yaml:"title"`
	Category  string `yaml:"category,omitempty"`
	Priority  string `yaml:"priority,omitempty"`
	Status    string `yaml:"status,omitempty"`
	DueDate   string `yaml:"dueDate,omitempty"`
	DueInDays *int   `yaml:"dueInDays,omitempty"`
	Notes     string `yaml:"notes,omitempty"`
}

// Examples returns the embedded example tasks with due dates relative to now.
func Examples(now time.Time) []domain.TaskDraft {
	drafts, err := Load(bytes.NewReader(examplesYAML), now)
	if err != nil {
		panic(fmt.Sprintf("embedded examples are invalid: %v", err))
	}
	return drafts
}

// LoadFile reads a seed file from disk.
func LoadFile(path string, now time.Time) ([]domain.TaskDraft, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewInvalidInputError("file", path, err.Error())
	}
	defer f.Close()
	return Load(f, now)
}

// Load parses a seed document. Relative due dates count from now's UTC date.
func Load(r io.Reader, now time.Time) ([]domain.TaskDraft, error) {
	var doc File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return []domain.TaskDraft{}, nil
		}
		return nil, errors.NewInvalidInputError("seed", "", fmt.Sprintf("malformed YAML: %v", err))
	}

	today := domain.DateOf(now.UTC())
	drafts := make([]domain.TaskDraft, 0, len(doc.Tasks))
	for i, entry := range doc.Tasks {
		draft, err := entry.draft(today)
		if err != nil {
			if appErr, ok := errors.AsAppError(err); ok {
				appErr.WithContext("index", i)
			}
			return nil, err
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

func (e Entry) draft(today domain.Date) (domain.TaskDraft, error) {
	draft := domain.NewDraft(e.Title, domain.Date{})
	draft.Notes = e.Notes

	if e.Category != "" {
		c, err := domain.ParseCategory(e.Category)
		if err != nil {
			return domain.TaskDraft{}, err
		}
		draft.Category = c
	}
	if e.Priority != "" {
		p, err := domain.ParsePriority(e.Priority)
		if err != nil {
			return domain.TaskDraft{}, err
		}
		draft.Priority = p
	}
	if e.Status != "" {
		s, err := domain.ParseStatus(e.Status)
		if err != nil {
			return domain.TaskDraft{}, err
		}
		draft.Status = s
	}

	switch {
	case e.DueDate != "":
		due, err := domain.ParseDate(e.DueDate)
		if err != nil {
			return domain.TaskDraft{}, err
		}
		draft.DueDate = due
	case e.DueInDays != nil:
		draft.DueDate = today.AddDays(*e.DueInDays)
	default:
		return domain.TaskDraft{}, errors.NewInvalidInputError("dueDate", e.Title, "seed entry needs dueDate or dueInDays")
	}

	return draft, nil
}

// Marshal renders drafts as a seed document with absolute due dates.
func Marshal(drafts []domain.TaskDraft) ([]byte, error) {
	doc := File{Tasks: make([]Entry, 0, len(drafts))}
	for _, d := range drafts {
		doc.Tasks = append(doc.Tasks, Entry{
			Title:    d.Title,
			Category: d.Category.String(),
			Priority: d.Priority.String(),
			Status:   d.Status.String(),
			DueDate:  d.DueDate.String(),
			Notes:    d.Notes,
		})
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
