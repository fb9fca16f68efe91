package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink closed")
}

func TestMultiHandler_FansOut(t *testing.T) {
	var text, jsonBuf bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&jsonBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		nil,
	)
	logger := slog.New(h).With("run", "r1").WithGroup("schema")

	logger.Debug("loaded", "namespace", "urn:a")
	logger.Warn("replaced", "namespace", "urn:a")

	if strings.Contains(text.String(), "loaded") {
		t.Error("text handler should drop debug records")
	}
	if !strings.Contains(text.String(), "replaced") {
		t.Error("text handler missing warn record")
	}

	lines := strings.Split(strings.TrimSpace(jsonBuf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("json handler got %d records, want 2", len(lines))
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("invalid JSON record: %v", err)
	}
	if rec["run"] != "r1" {
		t.Errorf("run attr = %v, want r1", rec["run"])
	}
	if group, ok := rec["schema"].(map[string]any); !ok || group["namespace"] != "urn:a" {
		t.Errorf("schema group = %v", rec["schema"])
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	h := NewMultiHandler(
		slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info enabled by second handler")
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug disabled")
	}
}

func TestMultiHandler_KeepsGoingOnError(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	h := NewMultiHandler(
		failingHandler{base},
		slog.NewJSONHandler(&buf, nil),
	)

	err := slog.New(h).Handler().Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "msg", 0))
	if err == nil || !strings.Contains(err.Error(), "sink closed") {
		t.Errorf("Handle() error = %v, want sink closed", err)
	}
	if !strings.Contains(buf.String(), "msg") {
		t.Error("second handler should still receive the record")
	}
}
