// Package cliutil provides shared terminal output helpers for rwtool
// subcommands.
package cliutil

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ColorMode controls when ANSI color codes are emitted.
type ColorMode int

const (
	ColorAuto ColorMode = iota // color when stdout is a terminal
	ColorAlways
	ColorNever
)

// OutputConfig holds process-wide output settings.
type OutputConfig struct {
	ColorMode ColorMode
}

// Output is the global output configuration, adjusted by --color flags.
var Output = OutputConfig{ColorMode: ColorAuto}

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiRed       = "\x1b[31m"
	ansiGreen     = "\x1b[32m"
	ansiYellow    = "\x1b[33m"
	ansiGray      = "\x1b[90m"
	ansiBoldRed   = "\x1b[1;31m"
	ansiBoldGreen = "\x1b[1;32m"
)

func colorEnabled() bool {
	switch Output.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func wrap(code, s string) string {
	if s == "" || !colorEnabled() {
		return s
	}
	return code + s + ansiReset
}

func Bold(s string) string      { return wrap(ansiBold, s) }
func Success(s string) string   { return wrap(ansiGreen, s) }
func Error(s string) string     { return wrap(ansiRed, s) }
func Warning(s string) string   { return wrap(ansiYellow, s) }
func Muted(s string) string     { return wrap(ansiGray, s) }
func BoldRed(s string) string   { return wrap(ansiBoldRed, s) }
func BoldGreen(s string) string { return wrap(ansiBoldGreen, s) }

// ParseColorMode maps a --color flag value to a ColorMode.
// Unrecognized values fall back to auto.
func ParseColorMode(value string) ColorMode {
	switch value {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
