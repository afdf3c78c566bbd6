package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// openLogger returns a text logger writing to path. An empty path discards
// everything; the terminal belongs to the calculator.
func openLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(h), func() { _ = f.Close() }, nil
}
