// Package logger provides the console logger for tidylint diagnostics.
//
// Lint results never go through this package; they are written by the
// report renderer. The logger carries everything else: per-file skip
// warnings, fatal error messages, and debug traces of the discovery
// pipeline. Output is prefixed with [HH:MM:SS] timestamps and filtered
// by level. The logger is safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering.
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

var (
	warnLabel  = color.New(color.FgYellow).Sprint("warning:")
	errorLabel = color.New(color.FgRed).Sprint("error:")
)

// ConsoleLogger writes leveled, timestamped diagnostics to a writer.
// A nil writer silently discards all messages. Color is enabled only
// when the writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing to w at the given
// minimum level. Valid levels are trace, debug, info, warn and error
// (case-insensitive); empty or unknown levels default to info.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		level:       parseLevel(level),
		colorOutput: isTerminal(w),
	}
}

// isTerminal reports whether w is a TTY that supports color. Only
// os.Stdout and os.Stderr are ever considered terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || (f != os.Stdout && f != os.Stderr) {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// parseLevel converts a level name to its numeric value, defaulting to
// info for empty or unknown names.
func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Tracef logs a formatted message at trace level.
func (cl *ConsoleLogger) Tracef(format string, args ...any) {
	cl.logf(levelTrace, "", format, args...)
}

// Debugf logs a formatted message at debug level.
func (cl *ConsoleLogger) Debugf(format string, args ...any) {
	cl.logf(levelDebug, "", format, args...)
}

// Infof logs a formatted message at info level.
func (cl *ConsoleLogger) Infof(format string, args ...any) {
	cl.logf(levelInfo, "", format, args...)
}

// Warnf logs a formatted message at warn level with a colored label
// when writing to a terminal.
func (cl *ConsoleLogger) Warnf(format string, args ...any) {
	cl.logf(levelWarn, "warning:", format, args...)
}

// Errorf logs a formatted message at error level with a colored label
// when writing to a terminal.
func (cl *ConsoleLogger) Errorf(format string, args ...any) {
	cl.logf(levelError, "error:", format, args...)
}

func (cl *ConsoleLogger) logf(level int, label, format string, args ...any) {
	if cl.writer == nil || level < cl.level {
		return
	}

	if cl.colorOutput {
		switch label {
		case "warning:":
			label = warnLabel
		case "error:":
			label = errorLabel
		}
	}

	timestamp := time.Now().Format("15:04:05")
	message := fmt.Sprintf(format, args...)

	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	if label != "" {
		fmt.Fprintf(cl.writer, "[%s] %s %s\n", timestamp, label, message)
	} else {
		fmt.Fprintf(cl.writer, "[%s] %s\n", timestamp, message)
	}
}
