package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
	forced bool
)

// DebugEnabled returns true if debug mode is enabled via the TM_DEBUG
// environment variable or EnableDebug
func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return forced || os.Getenv("TM_DEBUG") != ""
}

// EnableDebug turns debug output on regardless of TM_DEBUG.
// Passing false falls back to the environment variable.
func EnableDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	forced = enabled
}

// SetOutput redirects debug output and returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	previous := output
	output = w
	return previous
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(output, format, args...)
	}
}

