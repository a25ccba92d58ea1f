// Package logger provides leveled console logging for codelens commands.
// Output is timestamped and colorized automatically when writing to a TTY.
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

const (
	levelDebug int = iota
	levelInfo
	levelWarn
	levelError
)

// Logger writes leveled, timestamped messages to a writer. It is safe for
// concurrent use by the Indexer's worker pool.
type Logger struct {
	writer   io.Writer
	level    int
	mutex    sync.Mutex
	useColor bool
}

// New creates a Logger writing to w, filtering below minLevel
// ("debug"|"info"|"warn"|"error", default "info"). Color is enabled
// automatically when w is a TTY.
func New(w io.Writer, minLevel string) *Logger {
	return &Logger{
		writer:   w,
		level:    parseLevel(minLevel),
		useColor: isTerminal(w),
	}
}

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func isTerminal(w io.Writer) bool {
	if w == os.Stdout {
		return isatty.IsTerminal(os.Stdout.Fd())
	}
	if w == os.Stderr {
		return isatty.IsTerminal(os.Stderr.Fd())
	}
	return false
}

func (l *Logger) log(level int, prefix string, c *color.Color, format string, args ...any) {
	if level < l.level || l.writer == nil {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	if l.useColor && c != nil {
		fmt.Fprintf(l.writer, "[%s] %s\n", ts, c.Sprintf("%s %s", prefix, msg))
		return
	}
	fmt.Fprintf(l.writer, "[%s] %s %s\n", ts, prefix, msg)
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(levelDebug, "DEBUG", color.New(color.FgHiBlack), format, args...)
}

// Infof logs an info-level message.
func (l *Logger) Infof(format string, args ...any) {
	l.log(levelInfo, "INFO", color.New(color.FgCyan), format, args...)
}

// Warnf logs a warn-level message.
func (l *Logger) Warnf(format string, args ...any) {
	l.log(levelWarn, "WARN", color.New(color.FgYellow), format, args...)
}

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(levelError, "ERROR", color.New(color.FgRed, color.Bold), format, args...)
}
