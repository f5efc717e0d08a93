package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// openLogger returns a logger writing to path, or nil when path is empty.
// The TUI owns the terminal, so local runs never log to stderr.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return nil, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossing",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// mustOpenLogger opens the --log-file logger, warning on failure.
func mustOpenLogger() (*log.Logger, func()) {
	logger, closer, err := openLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil, func() {}
	}
	if closer == nil {
		return nil, func() {}
	}
	return logger, func() { closer.Close() }
}
