// Package debug provides conditional debug logging for pathdash.
//
// Debug logging is enabled by setting the PATHDASH_DEBUG environment variable:
//
//	PATHDASH_DEBUG=1 pathdash
//
// The TUI owns the terminal, so set PATHDASH_DEBUG_FILE to send the log to a
// file instead of stderr. When disabled (default), all functions are no-ops.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	enabled bool
	logger  *log.Logger
	closer  io.Closer
)

func init() {
	if os.Getenv("PATHDASH_DEBUG") == "" {
		return
	}
	if path := os.Getenv("PATHDASH_DEBUG_FILE"); path != "" {
		if err := SetFile(path); err == nil {
			return
		}
	}
	SetOutput(os.Stderr)
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetOutput enables logging to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if w == nil {
		enabled = false
		logger = nil
		return
	}
	enabled = true
	logger = log.New(w, "[PATHDASH] ", log.Ltime|log.Lmicroseconds)
}

// SetFile enables logging, appending to the file at path.
func SetFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	SetOutput(f)
	mu.Lock()
	closer = f
	mu.Unlock()
	return nil
}

// Close releases the log file, if any, and disables logging.
func Close() {
	SetOutput(nil)
}

func closeLocked() {
	if closer != nil {
		closer.Close()
		closer = nil
	}
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	Log("%s took %v", name, d)
}

// LogErr logs err with context when both logging is enabled and err is non-nil.
func LogErr(context string, err error) {
	if err == nil {
		return
	}
	Log("%s: %v", context, err)
}
