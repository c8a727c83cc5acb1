package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("%q: want %v, got %v", in, want, got)
		}
	}
}

func TestNew_JSONHandlerHonorsLevelVar(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	logger := New(&buf, level, "json")

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %s", buf.String())
	}
	level.Set(slog.LevelDebug)
	logger.Debug("shown", "k", "v")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rec["msg"] != "shown" || rec["k"] != "v" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNew_TextHandler(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	New(&buf, level, "text").Info("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestFromContext_Fallback(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Fatalf("expected default logger")
	}
	var buf bytes.Buffer
	logger := New(&buf, new(slog.LevelVar), "text")
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Fatalf("expected embedded logger")
	}
}

func TestEnableDebug(t *testing.T) {
	if EnableDebug(context.Background()) {
		t.Fatalf("no level carried")
	}
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	ctx := WithLevel(context.Background(), level)
	if !EnableDebug(ctx) || level.Level() != slog.LevelDebug {
		t.Fatalf("level not lowered: %v", level.Level())
	}
}
