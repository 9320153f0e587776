package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"padded", " warn ", slog.LevelWarn},
		{"invalid level", "INVALID", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLevel, tt.envValue)
			if level := LevelFromEnv(EnvLevel); level != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, level)
			}
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, "json")

	logger.With("scenario", "solar").Info("run finished", "steps", 10)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "run finished" || entry["scenario"] != "solar" || entry["steps"] != float64(10) {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNewTextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn, "text")

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("expected warn record, got %q", out)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger should not be enabled")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "ctx") != nil {
		t.Error("expected nil for nil error")
	}

	base := errors.New("boom")
	err := WrapError(base, "load %s", "a.yaml")
	if !errors.Is(err, base) {
		t.Error("wrapped error should match base")
	}
	if err.Error() != "load a.yaml: boom" {
		t.Errorf("expected %q, got %q", "load a.yaml: boom", err.Error())
	}
}
