// Package logger installs the process-wide slog handler.
package logger

import (
	"io"
	"log/slog"

	"github.com/OpenTraceLab/OpenTraceVenue/internal/config"
)

// Init sets the default logger from cfg. verbose forces debug level. Logs go
// to w so command output on stdout stays clean.
func Init(cfg config.LoggingConfig, verbose bool, w io.Writer) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.JSONFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))

	slog.With("component", "logger").Debug("Logger initialized",
		"level", level.String(),
		"json_format", cfg.JSONFormat,
	)
}
