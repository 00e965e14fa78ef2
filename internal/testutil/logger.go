package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a slog logger backed by a buffer and the buffer for assertions.
// Debug records are kept so tests can assert on them too.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}
