// Package logging builds the slog loggers used across droidgen.
package logging

import (
	"io"
	"log/slog"
)

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// New returns a text logger writing to w. Debug records are kept only when
// verbose is set; otherwise only warnings and errors get through, so normal
// runs leave stderr to the report.
func New(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		return Nop()
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
