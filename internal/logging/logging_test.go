package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.WarnLevel,
		"loud":  zapcore.WarnLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("%q: expected %s got %s", in, want, got)
		}
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "info", Format: "json", UTC: true}, &buf)
	logger.Debug("hidden")
	logger.Info("visible")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log: %v", err)
	}
	if entry["msg"] != "visible" || entry["app"] != "conw" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if ts, _ := entry["time"].(string); !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC timestamp, got %q", ts)
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "warn"}, &buf)
	logger.Info("quiet")
	logger.Warn("careful")
	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info should be filtered: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "careful") {
		t.Fatalf("unexpected output %q", out)
	}
}
