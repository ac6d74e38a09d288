package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceVenue/internal/config"
)

func TestInitText(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	Init(config.LoggingConfig{Level: "warn"}, false, &buf)
	slog.Info("hidden")
	slog.Warn("shown", "sector", "Stalls")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line logged at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "sector=Stalls") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestInitVerboseJSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	Init(config.LoggingConfig{Level: "error", JSONFormat: true}, true, &buf)
	slog.Debug("debug line")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want init and debug line: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if rec["msg"] != "debug line" || rec["level"] != "DEBUG" {
		t.Errorf("record = %v", rec)
	}
}

func TestInitBadLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	Init(config.LoggingConfig{Level: "loud"}, false, &buf)
	slog.Debug("hidden")
	slog.Info("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unknown level should fall back to info: %q", out)
	}
}
