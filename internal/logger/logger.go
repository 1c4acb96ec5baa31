// Package logger provides diagnostic logging for the runbooks CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to make the scrape and cache pipeline visible.
// Errors are always printed: when the MCP server runs over stdio,
// stdout belongs to the protocol, so stderr is the only safe channel.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log output. Defaults to os.Stderr; tests swap in
// a buffer and restore os.Stderr afterwards.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// logf writes a tagged line to the current writer. Caller holds mu.
func logf(tag, format string, args ...any) {
	fmt.Fprintf(output, "["+tag+"] "+format+"\n", args...)
}

// Debug prints a message when verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		logf("DEBUG", format, args...)
	}
}

// Info prints an informational message when verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		logf("INFO", format, args...)
	}
}

// Warn prints a warning when verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		logf("WARN", format, args...)
	}
}

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logf("ERROR", format, args...)
}

// Section prints a section header when verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
