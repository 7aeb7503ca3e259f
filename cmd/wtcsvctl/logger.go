package main

import (
	"io"
	"log/slog"
	"os"
)

// logger receives debug diagnostics. It discards everything until
// initLogger enables it.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// initLogger routes debug logs to stderr when enabled.
func initLogger(enabled bool) {
	if !enabled {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
