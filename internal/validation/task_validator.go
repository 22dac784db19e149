package validation

import (
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

// Field names reported in FieldError.Field
const (
	FieldTitle    = "title"
	FieldCategory = "category"
	FieldPriority = "priority"
	FieldStatus   = "status"
	FieldDueDate  = "dueDate"
	FieldNotes    = "notes"
)

// TaskValidator checks task form input before it reaches the store
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTitle validates a task title
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()
	tv.checkTitle(validationError, title)
	return validationError.OrNil()
}

// ValidateNotes validates free-form notes
func (tv *TaskValidator) ValidateNotes(notes string) error {
	validationError := NewValidationError()
	tv.checkNotes(validationError, notes)
	return validationError.OrNil()
}

// ValidateDraft validates every field of a new task
func (tv *TaskValidator) ValidateDraft(draft domain.TaskDraft) error {
	validationError := NewValidationError()

	tv.checkTitle(validationError, draft.Title)
	tv.checkCategory(validationError, draft.Category)
	tv.checkPriority(validationError, draft.Priority)
	tv.checkStatus(validationError, draft.Status)
	if draft.DueDate.IsZero() {
		validationError.AddRequiredError(FieldDueDate)
	}
	tv.checkNotes(validationError, draft.Notes)

	return validationError.OrNil()
}

// ValidatePatch validates the fields a patch sets. Unset fields are not checked.
func (tv *TaskValidator) ValidatePatch(patch domain.TaskPatch) error {
	validationError := NewValidationError()

	if patch.Title != nil {
		tv.checkTitle(validationError, *patch.Title)
	}
	if patch.Category != nil {
		tv.checkCategory(validationError, *patch.Category)
	}
	if patch.Priority != nil {
		tv.checkPriority(validationError, *patch.Priority)
	}
	if patch.Status != nil {
		tv.checkStatus(validationError, *patch.Status)
	}
	if patch.DueDate != nil && patch.DueDate.IsZero() {
		validationError.AddRequiredError(FieldDueDate)
	}
	if patch.Notes != nil {
		tv.checkNotes(validationError, *patch.Notes)
	}

	return validationError.OrNil()
}

// NormalizeDraft trims surrounding whitespace from the text fields
func (tv *TaskValidator) NormalizeDraft(draft domain.TaskDraft) domain.TaskDraft {
	draft.Title = tv.validator.TrimAndValidateString(draft.Title)
	draft.Notes = tv.validator.TrimAndValidateString(draft.Notes)
	return draft
}

// NormalizePatch trims surrounding whitespace from the text fields a patch sets
func (tv *TaskValidator) NormalizePatch(patch domain.TaskPatch) domain.TaskPatch {
	if patch.Title != nil {
		title := tv.validator.TrimAndValidateString(*patch.Title)
		patch.Title = &title
	}
	if patch.Notes != nil {
		notes := tv.validator.TrimAndValidateString(*patch.Notes)
		patch.Notes = &notes
	}
	return patch
}

func (tv *TaskValidator) checkTitle(ve *ValidationError, title string) {
	trimmed := tv.validator.TrimAndValidateString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		ve.AddRequiredError(FieldTitle)
		return
	}
	if !tv.validator.IsValidTitleLength(trimmed) {
		ve.AddInvalidLengthError(FieldTitle, trimmed, 0, tv.validator.TitleMaxLength())
	}
	if !tv.validator.IsSingleLine(trimmed) {
		ve.AddInvalidCharacterError(FieldTitle, trimmed)
	}
}

func (tv *TaskValidator) checkNotes(ve *ValidationError, notes string) {
	if !tv.validator.IsValidNotesLength(notes) {
		ve.AddInvalidLengthError(FieldNotes, notes, 0, tv.validator.NotesMaxLength())
	}
}

func (tv *TaskValidator) checkCategory(ve *ValidationError, c domain.Category) {
	if c == "" {
		ve.AddRequiredError(FieldCategory)
	} else if !c.IsValid() {
		ve.AddInvalidValueError(FieldCategory, c, "unknown category")
	}
}

func (tv *TaskValidator) checkPriority(ve *ValidationError, p domain.Priority) {
	if p == "" {
		ve.AddRequiredError(FieldPriority)
	} else if !p.IsValid() {
		ve.AddInvalidValueError(FieldPriority, p, "unknown priority")
	}
}

func (tv *TaskValidator) checkStatus(ve *ValidationError, s domain.Status) {
	if s == "" {
		ve.AddRequiredError(FieldStatus)
	} else if !s.IsValid() {
		ve.AddInvalidValueError(FieldStatus, s, "unknown status")
	}
}
