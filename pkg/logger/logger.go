// Package logger provides namespaced debug logging controlled by the DEBUG
// environment variable, in the style of the node debug package.
//
// Loggers are created with a namespace like "workflow:step" and are silent
// unless DEBUG matches the namespace. DEBUG holds comma-separated patterns
// where "*" matches any suffix and a leading "-" negates a pattern:
//
//	DEBUG=*                   enable everything
//	DEBUG=workflow:*          enable the workflow namespace
//	DEBUG=workflow:*,cli:*    enable multiple namespaces
//	DEBUG=*,-workflow:step    enable everything except workflow:step
//
// Output goes to stderr as "<namespace> <message> +<elapsed>" where the
// elapsed suffix is the time since the logger last printed.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger writes debug messages for a single namespace.
type Logger struct {
	namespace string
	enabled   bool

	mu   sync.Mutex
	last time.Time
}

// New creates a logger for the given namespace. Enablement is decided once,
// from the DEBUG environment variable at creation time.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   matches(os.Getenv("DEBUG"), namespace),
	}
}

// Enabled reports whether this logger will produce output.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Print writes a message by concatenating its arguments like fmt.Sprint.
// It is a no-op when the logger is disabled.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

// Printf writes a formatted message using fmt.Sprintf semantics.
// It is a no-op when the logger is disabled.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

func (l *Logger) emit(msg string) {
	l.mu.Lock()
	now := time.Now()
	var elapsed time.Duration
	if !l.last.IsZero() {
		elapsed = now.Sub(l.last)
	}
	l.last = now
	l.mu.Unlock()

	fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, msg, elapsed)
}

// matches implements the DEBUG pattern language: comma-separated patterns,
// "*" as a wildcard, "-" prefix for exclusion. A namespace is enabled when it
// matches at least one positive pattern and no negative pattern.
func matches(debug, namespace string) bool {
	if debug == "" {
		return false
	}

	enabled := false
	for _, pattern := range strings.Split(debug, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		negate := strings.HasPrefix(pattern, "-")
		if negate {
			pattern = pattern[1:]
		}
		if !matchPattern(pattern, namespace) {
			continue
		}
		if negate {
			return false
		}
		enabled = true
	}
	return enabled
}

func matchPattern(pattern, namespace string) bool {
	if pattern == "*" {
		return true
	}
	if suffix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, suffix)
	}
	return pattern == namespace
}
