package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestHandlerEmitsOneJSONObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))

	logger.Info("food placement retries exhausted", "retries", 256)
	logger.Warn("second line")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var payload map[string]any
	if err := json.Unmarshal(lines[0], &payload); err != nil {
		t.Fatalf("first line is not valid JSON: %v", err)
	}
	if payload["msg"] != "food placement retries exhausted" {
		t.Errorf("msg = %v", payload["msg"])
	}
	if payload["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", payload["level"])
	}
	if payload["retries"] != float64(256) {
		t.Errorf("retries = %v, want 256", payload["retries"])
	}
}

func TestHandlerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelWarn))

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
}

func TestHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo)).With("session", "abc")

	logger.Info("hello")

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload["session"] != "abc" {
		t.Errorf("session attr = %v, want abc", payload["session"])
	}
}
