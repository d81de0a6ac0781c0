package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAdapterWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	log := NewAdapter(base).With("component", "connector")
	log.Warn("connect failed", "kind", "UserRejected")

	out := buf.String()
	for _, want := range []string{"component=connector", "kind=UserRejected", "connect failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %q", out, want)
		}
	}
}

func TestGlobalInitRoutesPackageFunctions(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	Debug("hidden")
	Info("shown", "n", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("info record missing: %q", out)
	}
	NewSlogAdapter().Error("via adapter")
	if !strings.Contains(buf.String(), "via adapter") {
		t.Fatalf("adapter did not use global logger")
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop().With("a", 1)
	l.Error("nothing")

	a, ok := l.(*slogAdapter)
	if !ok {
		t.Fatalf("Nop().With returned %T", l)
	}
	if a.logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("Nop logger must not be enabled at any level")
	}
}
