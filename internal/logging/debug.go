package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

var (
	mu      sync.Mutex
	output  io.Writer = os.Stderr
	verbose atomic.Bool
)

// SetVerbose turns debug output on regardless of TASKS_DEBUG
func SetVerbose(enabled bool) {
	verbose.Store(enabled)
}

// SetOutput redirects debug and warning output, returning the previous writer
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

// DebugEnabled returns true if debug mode is enabled via TASKS_DEBUG environment variable
// or SetVerbose
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv("TASKS_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		write(fmt.Sprintf(format, args...))
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		write(fmt.Sprintln(args...))
	}
}

// Warnf prints a non-fatal diagnostic regardless of debug mode
func Warnf(format string, args ...interface{}) {
	write("warning: " + fmt.Sprintf(format, args...) + "\n")
}

func write(s string) {
	mu.Lock()
	defer mu.Unlock()
	io.WriteString(output, s)
}
