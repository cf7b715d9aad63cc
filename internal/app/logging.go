package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DebugEnv enables the debug log when set to "1"
const DebugEnv = "TODO_DEBUG"

// DefaultLogFile is where the debug log goes unless overridden
const DefaultLogFile = "todo-debug.log"

// DebugEnabled reports whether the debug log was requested through the
// environment.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) == "1"
}

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OpenLogger returns a JSON logger appending to path. The terminal is
// owned by the TUI, so logs never go to stdout or stderr.
func OpenLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		path = DefaultLogFile
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f, nil
}
