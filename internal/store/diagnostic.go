package store

import (
	"fmt"

	"task-tracker/internal/logging"
)

// DiagnosticKind identifies a non-fatal condition the store recovered from.
type DiagnosticKind int

const (
	// DiagnosticCorruptData means the persisted payload could not be decoded.
	DiagnosticCorruptData DiagnosticKind = iota
	// DiagnosticLoadFailed means the persisted payload could not be read.
	// The store then keeps changes in memory only.
	DiagnosticLoadFailed
	// DiagnosticSaveFailed means a commit did not reach durable storage.
	DiagnosticSaveFailed
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticCorruptData:
		return "corrupt_data"
	case DiagnosticLoadFailed:
		return "load_failed"
	case DiagnosticSaveFailed:
		return "save_failed"
	default:
		return "unknown"
	}
}

// Diagnostic describes a recovered failure. In-memory state stays usable.
type Diagnostic struct {
	Kind DiagnosticKind
	Err  error
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagnosticCorruptData:
		return fmt.Sprintf("saved tasks are malformed, starting empty: %v", d.Err)
	case DiagnosticLoadFailed:
		return fmt.Sprintf("saved tasks could not be read, starting empty without saving: %v", d.Err)
	case DiagnosticSaveFailed:
		return fmt.Sprintf("tasks could not be saved, changes kept in memory: %v", d.Err)
	default:
		return fmt.Sprintf("%s: %v", d.Kind, d.Err)
	}
}

// Reporter receives diagnostics.
type Reporter func(Diagnostic)

func logReporter(d Diagnostic) {
	logging.Warnf("%s", d)
}
