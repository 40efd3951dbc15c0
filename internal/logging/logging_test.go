package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) got %v, expected %v", name, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown", "p", 0.5)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked through warn logger: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "p=0.5") {
		t.Fatalf("warn record missing from output: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected plain output for non-terminal writer: %q", out)
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	Component(New(&buf, slog.LevelInfo), "sweep").Info("started")
	if !strings.Contains(buf.String(), "component=sweep") {
		t.Fatalf("component attribute missing: %q", buf.String())
	}
}
