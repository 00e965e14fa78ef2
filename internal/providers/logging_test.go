package providers

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogWithProviderAddsProviderField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	LogWithProvider(context.Background(), logger, slog.LevelWarn, "espn", "skipping event", "event_id", "42")

	out := buf.String()
	if !strings.Contains(out, "provider=espn") || !strings.Contains(out, "level=WARN") {
		t.Fatalf("unexpected log output %q", out)
	}

	LogWithProvider(context.Background(), nil, slog.LevelInfo, "espn", "ignored")
}
