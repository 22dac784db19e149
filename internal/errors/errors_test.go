package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewStorageError(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := NewStorageError("save tasks", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: save tasks" {
		t.Errorf("NewStorageError message = %v", err.Message)
	}
	if err.Code != "STORAGE_ERROR" {
		t.Errorf("NewStorageError code = %v, want STORAGE_ERROR", err.Code)
	}
	if err.Cause != cause {
		t.Errorf("NewStorageError cause = %v, want %v", err.Cause, cause)
	}
	operation, ok := err.GetContext("operation")
	if !ok || operation != "save tasks" {
		t.Errorf("NewStorageError should set operation context")
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "abc")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: abc" {
		t.Errorf("NewNotFoundError message = %v", err.Message)
	}
	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "abc" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewCorruptDataError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewCorruptDataError("dsa-tasks", cause)

	if err.Type != ErrorTypeCorruptData {
		t.Errorf("NewCorruptDataError type = %v, want %v", err.Type, ErrorTypeCorruptData)
	}
	if err.Code != "CORRUPT_DATA" {
		t.Errorf("NewCorruptDataError code = %v", err.Code)
	}
	key, ok := err.GetContext("key")
	if !ok || key != "dsa-tasks" {
		t.Errorf("NewCorruptDataError should set key context")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("priority", "Urgent", "unknown priority")

	if err.Message != "invalid input for priority: unknown priority" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}
	value, ok := err.GetContext("value")
	if !ok || value != "Urgent" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeStorage, "wrapped message")

	if err.Code != "storage" {
		t.Errorf("WrapError code = %v, want storage", err.Code)
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsErrorType(t *testing.T) {
	wrapped := fmt.Errorf("commit: %w", NewStorageError("save", nil))

	if !IsErrorType(wrapped, ErrorTypeStorage) {
		t.Errorf("IsErrorType should see through fmt wrapping")
	}
	if IsErrorType(wrapped, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return false for different type")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeStorage) {
		t.Errorf("IsErrorType should return false for regular error")
	}
}

func TestIsNonFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Storage error", NewStorageError("save", nil), true},
		{"Corrupt data", NewCorruptDataError("dsa-tasks", nil), true},
		{"Timeout", NewTimeoutError("save", "5s"), true},
		{"Not ready", ErrNotReady, false},
		{"Internal", WrapError(errors.New("collided"), ErrorTypeInternal, "no id"), false},
		{"Validation", NewValidationError("bad", nil), false},
		{"Regular error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNonFatal(tt.err); got != tt.expected {
				t.Errorf("IsNonFatal() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Validation error", NewValidationError("invalid input", nil), "invalid input"},
		{"Not found error", NewNotFoundError("task", "123"), "task not found: 123"},
		{"Storage error", NewStorageError("save", errors.New("full")), "Changes could not be saved. They are kept for this session."},
		{"Not ready error", ErrNotReady, "Tasks are still loading. Please try again."},
		{"Internal error", WrapError(errors.New("collided"), ErrorTypeInternal, "could not generate a unique task id"), "could not generate a unique task id"},
		{"Regular error", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(ErrNotReady) != "NOT_READY" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Not found error", NewNotFoundError("task", "123"), false},
		{"Invalid input error", NewInvalidInputError("status", "x", "unknown"), false},
		{"Storage error", NewStorageError("save", nil), true},
		{"Corrupt data error", NewCorruptDataError("dsa-tasks", nil), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
