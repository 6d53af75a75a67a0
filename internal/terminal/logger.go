package terminal

import (
	"fmt"
	"io"
	"os"
)

// Style represents a log message style.
type Style string

const (
	StyleInfo    Style = "info"
	StyleSuccess Style = "success"
	StyleWarning Style = "warning"
	StyleError   Style = "error"
	StyleDim     Style = "dim"
	StylePhase   Style = "phase"
)

// Logger writes styled, tagged lines to a single diagnostic stream (stderr by default).
type Logger struct {
	out     io.Writer
	verbose bool
}

// NewLogger creates a logger writing to stderr.
func NewLogger() *Logger {
	return &Logger{out: os.Stderr}
}

// NewLoggerTo creates a logger writing to w.
func NewLoggerTo(w io.Writer) *Logger {
	return &Logger{out: w}
}

// SetVerbose enables or disables Debugf output.
func (l *Logger) SetVerbose(v bool) {
	l.verbose = v
}

// Verbose reports whether verbose output is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

func styleColor(style Style) string {
	switch style {
	case StyleSuccess:
		return Green
	case StyleWarning:
		return Yellow
	case StyleError:
		return Red
	case StyleDim:
		return Dim
	case StylePhase:
		return Magenta + Bold
	default:
		return Cyan
	}
}

// Log prints a styled log message.
func (l *Logger) Log(msg string, style Style) {
	tag := fmt.Sprintf("%s[%s%sgpr%s%s]%s",
		Color(Dim), Color(Reset), Color(styleColor(style)), Color(Reset), Color(Dim), Color(Reset))

	switch style {
	case StyleDim:
		msg = Color(Dim) + msg + Color(Reset)
	case StyleWarning:
		msg = Color(Yellow) + "Warning: " + Color(Reset) + msg
	case StyleError:
		msg = Color(Red) + "Error: " + Color(Reset) + msg
	case StylePhase:
		msg = Color(Bold) + msg + Color(Reset)
	}

	fmt.Fprintf(l.out, "%s %s\n", tag, msg)
}

// Logf prints a formatted styled log message.
func (l *Logger) Logf(style Style, format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...), style)
}

// Step prints a numbered pipeline phase header.
func (l *Logger) Step(n int, msg string) {
	l.Logf(StylePhase, "Step %d: %s", n, msg)
}

// Command echoes an external command before it runs.
func (l *Logger) Command(cmdline string) {
	l.Logf(StyleDim, "Running: %s", cmdline)
}

// Debugf prints a dim message only when verbose output is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.Logf(StyleDim, format, args...)
}
