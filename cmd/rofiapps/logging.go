// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/mjklukowski/rofi-apps/internal/config"
)

// newLogger returns the stderr logger used as the slog default. Warnings and
// errors are always shown; --verbose adds debug output.
func newLogger(stderr io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// installLogger routes package-level slog calls to stderr.
func installLogger(stderr io.Writer, verbose bool) {
	slog.SetDefault(slog.New(newLogger(stderr, verbose)))
}
