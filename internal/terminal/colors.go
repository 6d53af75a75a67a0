// Package terminal provides styled log output and TTY detection.
package terminal

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// ANSI color codes.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Cyan    = "\033[36m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Red     = "\033[31m"
	Magenta = "\033[35m"
)

var (
	colorMu       sync.RWMutex
	colorsEnabled = true
)

// DisableColors turns off color output globally.
func DisableColors() {
	SetColorsEnabled(false)
}

// EnableColors turns on color output globally.
func EnableColors() {
	SetColorsEnabled(true)
}

// SetColorsEnabled sets the color output state.
func SetColorsEnabled(enabled bool) {
	colorMu.Lock()
	defer colorMu.Unlock()
	colorsEnabled = enabled
}

// ColorsEnabled reports whether colors are currently enabled.
func ColorsEnabled() bool {
	colorMu.RLock()
	defer colorMu.RUnlock()
	return colorsEnabled
}

// Color returns c if colors are enabled, otherwise the empty string.
func Color(c string) string {
	if ColorsEnabled() {
		return c
	}
	return ""
}

// IsTTY returns true if the given file descriptor is a terminal.
func IsTTY(fd int) bool {
	return term.IsTerminal(fd)
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return IsTTY(int(os.Stdout.Fd()))
}

// IsStderrTTY returns true if stderr is a terminal.
func IsStderrTTY() bool {
	return IsTTY(int(os.Stderr.Fd()))
}
