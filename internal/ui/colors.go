// Package ui holds the ANSI styling used for human-facing CLI output.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color and style codes. They are blanked by Disable.
var (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"

	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorWhite  = "\033[97m"
	ColorRed    = "\033[31m"
)

func init() {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		Disable()
	}
}

// Disable turns all styling off, for pipes, files and NO_COLOR
func Disable() {
	ColorReset, ColorBold, ColorDim = "", "", ""
	ColorCyan, ColorGreen, ColorYellow, ColorWhite, ColorRed = "", "", "", "", ""
}

// Info renders a dimmed notice, used for non-fatal warnings on stderr
func Info(s string) string {
	return ColorDim + ColorYellow + s + ColorReset
}

func Error(s string) string {
	return ColorRed + s + ColorReset
}
