package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.JSONFormat {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	want := EditorConfig{HitRadius: 8, EdgeThreshold: 6, Debounce: 250 * time.Millisecond, HistoryLimit: 100}
	if cfg.Editor != want {
		t.Errorf("editor = %+v, want %+v", cfg.Editor, want)
	}
	if cfg.Layout.SeatSize != 14 || cfg.Layout.SeatSpacing != 2 {
		t.Errorf("layout = %+v", cfg.Layout)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "venue.env")
	data := "VENUE_LOG_LEVEL=debug\nVENUE_HIT_RADIUS=12\nVENUE_DEBOUNCE_MS=50\nVENUE_SEAT_SIZE=20\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables that are already set, so register
	// cleanups for everything the file sets.
	for _, k := range []string{"VENUE_LOG_LEVEL", "VENUE_HIT_RADIUS", "VENUE_DEBOUNCE_MS", "VENUE_SEAT_SIZE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Editor.HitRadius != 12 ||
		cfg.Editor.Debounce != 50*time.Millisecond || cfg.Layout.SeatSize != 20 {
		t.Errorf("config = %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.env")); err == nil {
		t.Error("Load of a missing explicit file succeeded")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"level", "VENUE_LOG_LEVEL", "loud", "unknown log level"},
		{"radius", "VENUE_HIT_RADIUS", "0", "VENUE_HIT_RADIUS"},
		{"edge", "VENUE_EDGE_THRESHOLD", "-1", "VENUE_EDGE_THRESHOLD"},
		{"history", "VENUE_HISTORY_LIMIT", "0", "VENUE_HISTORY_LIMIT"},
		{"seat", "VENUE_SEAT_SIZE", "-3", "VENUE_SEAT_SIZE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load("")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestMalformedNumberFallsBack(t *testing.T) {
	t.Setenv("VENUE_HISTORY_LIMIT", "lots")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.HistoryLimit != 100 {
		t.Errorf("history limit = %d, want default 100", cfg.Editor.HistoryLimit)
	}
}
